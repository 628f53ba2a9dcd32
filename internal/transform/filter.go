package transform

import (
	"time"

	"CommodityPulse/internal/model"
)

// FilterByRange returns the contiguous subsequence of points whose date
// falls within [start, end], both inclusive. A zero time on either side
// leaves that bound open; calling with both bounds open returns the
// input unchanged. The result is a view into the base slice, never a
// mutation or copy of it, and bounds outside the data range simply
// yield fewer (or zero) points. Cut points are located by scanning past
// points without a parsed date, so a retained bad-date point never
// costs its in-range neighbors: one at the boundary falls out under
// that side's bound, one inside the window rides along in the view.
func FilterByRange(points []model.ProcessedPoint, start, end time.Time) []model.ProcessedPoint {
	if start.IsZero() && end.IsZero() {
		return points
	}
	lo := 0
	if !start.IsZero() {
		lo = len(points)
		for i := range points {
			if d := points[i].Date; !d.IsZero() && !d.Before(start) {
				lo = i
				break
			}
		}
	}
	hi := len(points)
	if !end.IsZero() {
		hi = 0
		for i := len(points) - 1; i >= 0; i-- {
			if d := points[i].Date; !d.IsZero() && !d.After(end) {
				hi = i + 1
				break
			}
		}
	}
	if lo >= hi {
		return nil
	}
	return points[lo:hi]
}
