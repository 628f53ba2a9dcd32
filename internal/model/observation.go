package model

import (
	"math"
	"time"
)

// RawObservation is one record as supplied by the source document: a
// date stamp plus string-encoded values keyed by external series code.
// Values arrive as text and are parsed downstream; unknown codes are
// retained here and ignored by the transformer.
type RawObservation struct {
	Date   string
	Values map[string]string
}

// ProcessedPoint is the normalized, derived record for one observation.
type ProcessedPoint struct {
	// Label is the display-formatted date. When the raw date stamp does
	// not parse it falls back to the raw string.
	Label string
	// Date is the parsed date stamp, retained for filtering and sorting.
	// Zero when the raw stamp does not parse.
	Date time.Time
	// Values holds the parsed value per series. Missing or unparseable
	// raw values are NaN.
	Values map[Series]float64
	// YoY holds the year-over-year percentage change per series. A
	// series is absent from the map when the change is undefined:
	// insufficient trailing history, an unparseable endpoint, or a
	// prior value of exactly zero.
	YoY map[Series]float64
}

// Value returns the parsed value for s, NaN if absent.
func (p ProcessedPoint) Value(s Series) float64 {
	v, ok := p.Values[s]
	if !ok {
		return math.NaN()
	}
	return v
}

// YoYFor returns the year-over-year change for s and whether it is
// defined. Undefined is distinct from a legitimate 0% change.
func (p ProcessedPoint) YoYFor(s Series) (float64, bool) {
	v, ok := p.YoY[s]
	return v, ok
}

// TrendEntry summarizes the most recent state of one series: its latest
// raw value and its latest year-over-year change. An undefined change
// is reported as 0 here; this is a presentation default applied at the
// summary boundary, not a data value.
type TrendEntry struct {
	Series Series
	Value  float64
	YoY    float64
}
