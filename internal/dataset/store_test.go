package dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"CommodityPulse/internal/collector"
	"CommodityPulse/internal/model"
)

func TestStore_LoadPublishesSnapshot(t *testing.T) {
	st := NewStore(zap.NewNop())
	require.False(t, st.Snapshot().Ready())

	src := &collector.MockSource{Weeks: 60}
	snap, err := st.Load(context.Background(), src)
	require.NoError(t, err)
	require.True(t, snap.Ready())
	require.Equal(t, "mock", snap.Source)
	require.Len(t, snap.Points, 60)
	require.NotEmpty(t, snap.LoadID)
	require.False(t, snap.LoadedAt.IsZero())
	require.NoError(t, snap.Err)

	require.Equal(t, snap.LoadID, st.Snapshot().LoadID)
}

func TestStore_FailedReloadKeepsPreviousData(t *testing.T) {
	st := NewStore(zap.NewNop())
	good := &collector.MockSource{Weeks: 60}
	first, err := st.Load(context.Background(), good)
	require.NoError(t, err)

	boom := errors.New("boom")
	snap, err := st.Load(context.Background(), &collector.MockSource{Err: boom})
	require.ErrorIs(t, err, boom)
	require.Len(t, snap.Points, 60)
	require.Equal(t, first.LoadID, snap.LoadID)
	require.ErrorIs(t, snap.Err, boom)

	// A later successful load clears the recorded error.
	again, err := st.Load(context.Background(), good)
	require.NoError(t, err)
	require.NoError(t, again.Err)
	require.NotEqual(t, first.LoadID, again.LoadID)
}

func TestStore_EmptyDocumentIsALoad(t *testing.T) {
	st := NewStore(zap.NewNop())
	src := &collector.MockSource{Observations: []model.RawObservation{}}
	snap, err := st.Load(context.Background(), src)
	require.NoError(t, err)
	require.True(t, snap.Ready())
	require.Empty(t, snap.Points)
}
