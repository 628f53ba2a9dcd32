// Package transform is the time-series core: it normalizes raw weekly
// observations into typed points, derives year-over-year change per
// series, filters by date range, and summarizes latest trends. All
// functions are pure; state such as active bounds or visible series
// belongs to the caller.
package transform

import (
	"math"
	"strconv"
	"strings"
	"time"

	"CommodityPulse/internal/model"
)

// Lookback is the fixed year-over-year offset: 52 weekly observations.
// The comparison is positional, not calendar-based, so a gap in the
// source cadence shifts which prior record is compared. That semantic
// is deliberate; see the audit for making such gaps visible.
const Lookback = 52

const (
	dateLayout  = "2006-01-02"
	labelLayout = "Jan 2, 2006"
)

// Transform normalizes raw observations into processed points, in the
// same order and of the same length as the input. String values that
// fail to parse become NaN for that one field; a date stamp that fails
// to parse leaves the zero time and keeps the raw string as the label.
// Year-over-year change is computed in the same pass: for position i
// and series S it is (cur-prior)/prior*100 against position i-52,
// and left undefined when i < 52, either endpoint is NaN, or the
// prior value is exactly zero.
func Transform(raw []model.RawObservation) []model.ProcessedPoint {
	all := model.AllSeries()
	points := make([]model.ProcessedPoint, len(raw))
	for i, obs := range raw {
		p := model.ProcessedPoint{
			Values: make(map[model.Series]float64, len(all)),
			YoY:    make(map[model.Series]float64, len(all)),
		}
		if ts, err := time.Parse(dateLayout, obs.Date); err == nil {
			p.Date = ts
			p.Label = ts.Format(labelLayout)
		} else {
			p.Label = obs.Date
		}
		for _, s := range all {
			p.Values[s] = parseValue(obs.Values[s.Code()])
		}
		if i >= Lookback {
			prior := points[i-Lookback]
			for _, s := range all {
				cur := p.Values[s]
				prev := prior.Values[s]
				if math.IsNaN(cur) || math.IsNaN(prev) || prev == 0 {
					continue
				}
				p.YoY[s] = (cur - prev) / prev * 100
			}
		}
		points[i] = p
	}
	return points
}

// parseValue converts one string-encoded value; missing or malformed
// text yields NaN, never an error.
func parseValue(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
