package transform

import (
	"CommodityPulse/internal/model"
)

// LatestTrends summarizes the most recent point of a filtered sequence:
// one entry per series, in catalog order, carrying the latest raw value
// and the latest year-over-year change. Returns nil when the sequence
// is shorter than Lookback, since no year-over-year value can exist at
// the most recent point of such a window. An undefined change is
// reported as 0; that default belongs to this summary boundary only,
// the underlying point still distinguishes undefined from zero.
func LatestTrends(points []model.ProcessedPoint) []model.TrendEntry {
	if len(points) < Lookback {
		return nil
	}
	last := points[len(points)-1]
	all := model.AllSeries()
	entries := make([]model.TrendEntry, 0, len(all))
	for _, s := range all {
		e := model.TrendEntry{Series: s, Value: last.Value(s)}
		if yoy, ok := last.YoYFor(s); ok {
			e.YoY = yoy
		}
		entries = append(entries, e)
	}
	return entries
}
