package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"CommodityPulse/internal/dataset"
	"CommodityPulse/internal/report"
	"CommodityPulse/internal/transform"
)

// check exits non-zero only when the document cannot be loaded at all.
// Findings in a loadable document are reported, not treated as failure.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Audit the observation sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := dataset.NewStore(logger)
		snap, err := store.Load(cmd.Context(), newSource())
		if err != nil {
			return err
		}
		audit := transform.AuditPoints(snap.Points)
		fmt.Fprint(cmd.OutOrStdout(), report.FormatAudit(audit))
		return nil
	},
}
