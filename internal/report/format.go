// Package report renders plain-text reports for the CLI and for
// monitor mode.
package report

import (
	"fmt"
	"math"
	"strings"

	"CommodityPulse/internal/dataset"
	"CommodityPulse/internal/model"
	"CommodityPulse/internal/transform"
)

const dateFormat = "Jan 2, 2006"

// FormatTrends renders the latest-trends summary as a table, one row
// per series. A nil summary (fewer observations than the lookback)
// renders as an explanatory line instead.
func FormatTrends(entries []model.TrendEntry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("No trends summary: fewer than %d observations in range.\n", transform.Lookback)
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-18s %12s %10s\n", "Series", "Latest", "YoY"))
	b.WriteString(strings.Repeat("-", 44) + "\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%-18s %12s %10s %s\n",
			e.Series.Label(), formatValue(e.Value), fmt.Sprintf("%+.2f%%", e.YoY), arrow(e.YoY)))
	}
	return b.String()
}

// FormatLoadSummary renders one line of provenance for a snapshot.
func FormatLoadSummary(snap dataset.Snapshot) string {
	span := "no observations"
	if n := len(snap.Points); n > 0 {
		span = fmt.Sprintf("%d observations, %s to %s",
			n, snap.Points[0].Label, snap.Points[n-1].Label)
	}
	return fmt.Sprintf("Source: %s | %s | loaded %s\n",
		snap.Source, span, snap.LoadedAt.Format("2006-01-02 15:04:05"))
}

// FormatAudit renders the data-quality audit.
func FormatAudit(a transform.Audit) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Data audit: %d observations", a.Points))
	if !a.First.IsZero() {
		b.WriteString(fmt.Sprintf(", %s to %s", a.First.Format(dateFormat), a.Last.Format(dateFormat)))
	}
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  bad date stamps:     %d\n", a.BadDates))
	b.WriteString(fmt.Sprintf("  duplicate stamps:    %d\n", a.Duplicates))
	b.WriteString(fmt.Sprintf("  out-of-order stamps: %d\n", a.OutOfOrder))
	b.WriteString(fmt.Sprintf("  cadence gaps:        %d\n", len(a.Gaps)))
	for _, g := range a.Gaps {
		b.WriteString(fmt.Sprintf("    %s to %s (%d missed weeks)\n",
			g.From.Format(dateFormat), g.To.Format(dateFormat), g.Missed))
	}

	b.WriteString("\n  per series:\n")
	for _, s := range model.AllSeries() {
		b.WriteString(fmt.Sprintf("    %-18s missing %4d   yoy defined %4d/%d\n",
			s.Label(), a.Missing[s], a.YoYDefined[s], a.Points))
	}

	b.WriteString("\n")
	if a.Clean() {
		b.WriteString(fmt.Sprintf("OK: the sequence is clean; the %d-step lookback lines up week for week.\n", transform.Lookback))
	} else {
		b.WriteString("WARNING: the year-over-year lookback counts positions, not weeks.\n")
		b.WriteString("Values downstream of the defects above compare against a shifted prior week.\n")
	}
	return b.String()
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}

func arrow(yoy float64) string {
	switch {
	case yoy > 0:
		return "▲"
	case yoy < 0:
		return "▼"
	default:
		return " "
	}
}
