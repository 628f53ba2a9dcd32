package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"CommodityPulse/internal/dataset"
	"CommodityPulse/internal/scheduler"
)

var immediate bool

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Reload and report on a cron schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := dataset.NewStore(logger)
		sched := scheduler.NewScheduler(cmd.Context(), store, newSource(), os.Stdout, logger)
		if err := sched.Register(cfg.Monitor.Cron); err != nil {
			return err
		}

		if immediate {
			sched.RunNow()
		}
		sched.Start()
		logger.Info("monitor started", zap.String("cron", cfg.Monitor.Cron))

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		logger.Info("shutting down")
		sched.Stop()
		return nil
	},
}

func init() {
	monitorCmd.Flags().BoolVar(&immediate, "immediate", false, "run one cycle at startup")
}
