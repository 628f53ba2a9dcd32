package transform

import (
	"math"
	"time"

	"CommodityPulse/internal/model"
)

// The year-over-year lookback counts elements, not weeks, so cadence
// defects in the source silently shift which prior record a point is
// compared against. The audit makes those defects visible.

// cadenceTolerance is how far two consecutive stamps may drift apart
// before the step counts as a gap. Weekly sources occasionally shift a
// publication day, so a strict 7-day check would be all noise.
const cadenceTolerance = 10 * 24 * time.Hour

// Gap is one break in the weekly cadence: the stamps on either side and
// the approximate number of missed weekly steps between them.
type Gap struct {
	From   time.Time
	To     time.Time
	Missed int
}

// Audit describes the health of a processed sequence with respect to
// the positional lookback: cadence breaks, ordering defects, and how
// much of each series actually parsed.
type Audit struct {
	Points     int
	First      time.Time
	Last       time.Time
	BadDates   int
	Duplicates int
	OutOfOrder int
	Gaps       []Gap
	// Missing counts NaN values per series (absent or unparseable).
	Missing map[model.Series]int
	// YoYDefined counts points with a defined change per series.
	YoYDefined map[model.Series]int
}

// Clean reports whether the sequence has none of the defects that can
// misalign the lookback.
func (a Audit) Clean() bool {
	return a.BadDates == 0 && a.Duplicates == 0 && a.OutOfOrder == 0 && len(a.Gaps) == 0
}

// AuditPoints inspects a transformed sequence. It never fails; a
// defective sequence just produces a report with findings.
func AuditPoints(points []model.ProcessedPoint) Audit {
	a := Audit{
		Points:     len(points),
		Missing:    make(map[model.Series]int),
		YoYDefined: make(map[model.Series]int),
	}
	all := model.AllSeries()

	var prev time.Time
	for _, p := range points {
		for _, s := range all {
			if math.IsNaN(p.Value(s)) {
				a.Missing[s]++
			}
			if _, ok := p.YoYFor(s); ok {
				a.YoYDefined[s]++
			}
		}
		if p.Date.IsZero() {
			a.BadDates++
			continue
		}
		if a.First.IsZero() {
			a.First = p.Date
		}
		a.Last = p.Date
		if !prev.IsZero() {
			switch delta := p.Date.Sub(prev); {
			case delta == 0:
				a.Duplicates++
			case delta < 0:
				a.OutOfOrder++
			case delta > cadenceTolerance:
				a.Gaps = append(a.Gaps, Gap{
					From:   prev,
					To:     p.Date,
					Missed: int(math.Round(delta.Hours()/(7*24))) - 1,
				})
			}
		}
		prev = p.Date
	}
	return a
}
