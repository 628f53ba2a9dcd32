package main

import (
	"context"

	"github.com/spf13/cobra"

	"CommodityPulse/internal/dataset"
	"CommodityPulse/internal/logging"
	"CommodityPulse/internal/ui"
)

var watchFlag bool

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	RunE:  runDashboard,
}

func init() {
	dashboardCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "reload when the data file changes")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	// The alternate screen owns stderr while the dashboard runs, so
	// logs go to a file instead.
	if cfg.Log.File == "" {
		l, err := logging.New(cfg.Log.Level, "data/pulse.log")
		if err == nil {
			logger = l
		}
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	watchPath := ""
	if (watchFlag || cfg.Dashboard.Watch) && !demo && cfg.Source.URL == "" {
		watchPath = cfg.Source.File
	}

	store := dataset.NewStore(logger)
	return ui.Run(ctx, store, newSource(), cfg, watchPath, logger)
}
