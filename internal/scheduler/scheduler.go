// Package scheduler drives monitor mode: cron-triggered reloads of the
// source document with a trends report printed after each one.
package scheduler

import (
	"context"
	"fmt"
	"io"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"CommodityPulse/internal/collector"
	"CommodityPulse/internal/dataset"
	"CommodityPulse/internal/report"
	"CommodityPulse/internal/transform"
)

// Scheduler manages the monitor cron task.
type Scheduler struct {
	Cron   *cron.Cron
	Store  *dataset.Store
	Source collector.Source
	Out    io.Writer

	ctx context.Context
	log *zap.Logger
}

// NewScheduler creates a scheduler that loads through store from src
// and writes reports to out.
func NewScheduler(ctx context.Context, store *dataset.Store, src collector.Source, out io.Writer, log *zap.Logger) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Store:  store,
		Source: src,
		Out:    out,
		ctx:    ctx,
		log:    log,
	}
}

// Register adds the monitor task under the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.monitorTask); err != nil {
		return fmt.Errorf("register monitor task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.log.Info("scheduler stopped")
}

// RunNow executes the monitor task immediately, outside the schedule.
func (s *Scheduler) RunNow() {
	s.monitorTask()
}

func (s *Scheduler) monitorTask() {
	s.log.Info("running monitor task")
	snap, err := s.Store.Load(s.ctx, s.Source)
	if err != nil {
		s.log.Warn("monitor reload failed, skipping report", zap.Error(err))
		return
	}
	text := report.FormatLoadSummary(snap) + "\n" + report.FormatTrends(transform.LatestTrends(snap.Points))
	fmt.Fprintln(s.Out, text)
}
