package scheduler

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"CommodityPulse/internal/collector"
	"CommodityPulse/internal/dataset"
)

func TestScheduler_RunNowWritesReport(t *testing.T) {
	var buf bytes.Buffer
	store := dataset.NewStore(zap.NewNop())
	s := NewScheduler(context.Background(), store, &collector.MockSource{Weeks: 60}, &buf, zap.NewNop())

	s.RunNow()

	out := buf.String()
	for _, want := range []string{"Source: mock", "60 observations", "Energy"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestScheduler_InsufficientHistoryStillReports(t *testing.T) {
	var buf bytes.Buffer
	store := dataset.NewStore(zap.NewNop())
	s := NewScheduler(context.Background(), store, &collector.MockSource{Weeks: 10}, &buf, zap.NewNop())

	s.RunNow()

	if !strings.Contains(buf.String(), "fewer than 52") {
		t.Errorf("expected insufficient-history line:\n%s", buf.String())
	}
}

func TestScheduler_SkipsReportOnFailedReload(t *testing.T) {
	var buf bytes.Buffer
	store := dataset.NewStore(zap.NewNop())
	s := NewScheduler(context.Background(), store, &collector.MockSource{Err: errors.New("boom")}, &buf, zap.NewNop())

	s.RunNow()

	if buf.Len() != 0 {
		t.Errorf("expected no report after failed reload, got:\n%s", buf.String())
	}
}

func TestScheduler_RegisterRejectsBadSpec(t *testing.T) {
	store := dataset.NewStore(zap.NewNop())
	s := NewScheduler(context.Background(), store, &collector.MockSource{}, &bytes.Buffer{}, zap.NewNop())

	if err := s.Register("every tuesday"); err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
	if err := s.Register("0 0 8 * * 2"); err != nil {
		t.Fatalf("valid spec rejected: %v", err)
	}
}
