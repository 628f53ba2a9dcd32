package model

import (
	"math"
	"testing"
)

func TestSeriesCatalogRoundTrip(t *testing.T) {
	for _, s := range AllSeries() {
		got, ok := SeriesByCode(s.Code())
		if !ok {
			t.Fatalf("SeriesByCode(%q) not found", s.Code())
		}
		if got != s {
			t.Errorf("SeriesByCode(%q) = %v, want %v", s.Code(), got, s)
		}
		if s.Label() == "" || s.Color() == "" {
			t.Errorf("series %v has empty label or color", s)
		}
	}
}

func TestSeriesByCodeUnknown(t *testing.T) {
	if _, ok := SeriesByCode("W.GOLD"); ok {
		t.Error("expected unknown code to miss")
	}
}

func TestAllSeriesOrder(t *testing.T) {
	all := AllSeries()
	if len(all) != 7 {
		t.Fatalf("expected 7 series, got %d", len(all))
	}
	if all[0] != SeriesTotal {
		t.Errorf("first series = %v, want Total", all[0])
	}
	if all[len(all)-1] != SeriesFish {
		t.Errorf("last series = %v, want Fish", all[len(all)-1])
	}
}

func TestProcessedPointValueAbsent(t *testing.T) {
	p := ProcessedPoint{Values: map[Series]float64{SeriesEnergy: 110.5}}
	if got := p.Value(SeriesEnergy); got != 110.5 {
		t.Errorf("Value(Energy) = %v, want 110.5", got)
	}
	if got := p.Value(SeriesFish); !math.IsNaN(got) {
		t.Errorf("Value(Fish) = %v, want NaN", got)
	}
}

func TestProcessedPointYoYForUndefined(t *testing.T) {
	p := ProcessedPoint{YoY: map[Series]float64{SeriesTotal: 0}}
	if v, ok := p.YoYFor(SeriesTotal); !ok || v != 0 {
		t.Errorf("YoYFor(Total) = (%v, %v), want (0, true)", v, ok)
	}
	if _, ok := p.YoYFor(SeriesEnergy); ok {
		t.Error("YoYFor(Energy) should be undefined")
	}
}
