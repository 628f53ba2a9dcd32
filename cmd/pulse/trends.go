package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"CommodityPulse/internal/dataset"
	"CommodityPulse/internal/report"
	"CommodityPulse/internal/transform"
)

var (
	fromFlag string
	toFlag   string
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Print the latest year-over-year summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parseDay(fromFlag)
		if err != nil {
			return fmt.Errorf("--from: %w", err)
		}
		to, err := parseDay(toFlag)
		if err != nil {
			return fmt.Errorf("--to: %w", err)
		}

		store := dataset.NewStore(logger)
		snap, err := store.Load(cmd.Context(), newSource())
		if err != nil {
			return err
		}

		points := transform.FilterByRange(snap.Points, from, to)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, report.FormatLoadSummary(snap))
		fmt.Fprintln(out, report.FormatTrends(transform.LatestTrends(points)))
		return nil
	},
}

func init() {
	trendsCmd.Flags().StringVar(&fromFlag, "from", "", "start of the range, YYYY-MM-DD")
	trendsCmd.Flags().StringVar(&toFlag, "to", "", "end of the range, YYYY-MM-DD")
}

func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}
