// Package dataset holds the transformed base sequence between loads.
// There is exactly one writer path, load-then-replace; readers get
// value snapshots whose points are immutable after publication.
package dataset

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"CommodityPulse/internal/collector"
	"CommodityPulse/internal/model"
	"CommodityPulse/internal/transform"
)

// Snapshot is one completed load: the transformed sequence plus its
// provenance. After a failed reload, Points still belong to the
// previous good load and Err carries the failure.
type Snapshot struct {
	Points   []model.ProcessedPoint
	Source   string
	LoadID   string
	LoadedAt time.Time
	Err      error
}

// Ready reports whether any load has succeeded.
func (s Snapshot) Ready() bool { return s.LoadID != "" }

// Store guards the latest snapshot.
type Store struct {
	mu   sync.Mutex
	snap Snapshot
	log  *zap.Logger
}

// NewStore creates an empty store.
func NewStore(log *zap.Logger) *Store {
	return &Store{log: log}
}

// Load fetches from the source, transforms the observations, and
// atomically replaces the snapshot. On failure the previous good
// snapshot is kept and the error recorded alongside it.
func (st *Store) Load(ctx context.Context, src collector.Source) (Snapshot, error) {
	observations, err := src.Fetch(ctx)
	if err != nil {
		st.mu.Lock()
		st.snap.Err = err
		snap := st.snap
		st.mu.Unlock()
		st.log.Warn("load failed",
			zap.String("source", src.Name()),
			zap.Error(err))
		return snap, err
	}

	snap := Snapshot{
		Points:   transform.Transform(observations),
		Source:   src.Name(),
		LoadID:   uuid.NewString(),
		LoadedAt: time.Now(),
	}
	st.mu.Lock()
	st.snap = snap
	st.mu.Unlock()

	st.log.Info("data loaded",
		zap.String("source", src.Name()),
		zap.String("load_id", snap.LoadID),
		zap.Int("points", len(snap.Points)))
	return snap, nil
}

// Snapshot returns the current state by value.
func (st *Store) Snapshot() Snapshot {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.snap
}
