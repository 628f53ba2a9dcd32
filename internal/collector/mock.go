package collector

import (
	"context"
	"math"
	"strconv"
	"time"

	"CommodityPulse/internal/model"
)

// MockSource returns controllable fixed data for development, demo
// mode, and testing.
type MockSource struct {
	Observations []model.RawObservation
	Err          error
	Weeks        int
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Fetch(_ context.Context) ([]model.RawObservation, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Observations != nil {
		return m.Observations, nil
	}
	weeks := m.Weeks
	if weeks <= 0 {
		weeks = 156
	}
	return generateWeekly(weeks), nil
}

var mockBases = map[model.Series]float64{
	model.SeriesTotal:       552,
	model.SeriesNonEnergy:   481,
	model.SeriesEnergy:      706,
	model.SeriesMetals:      624,
	model.SeriesForestry:    328,
	model.SeriesAgriculture: 397,
	model.SeriesFish:        788,
}

// generateWeekly produces a deterministic weekly sequence ending this
// week: a slow upward drift plus a yearly swing, with energy swinging
// harder than the rest.
func generateWeekly(weeks int) []model.RawObservation {
	start := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -7*(weeks-1))
	observations := make([]model.RawObservation, weeks)
	for i := range observations {
		values := make(map[string]string, len(mockBases))
		for _, s := range model.AllSeries() {
			amplitude := 0.03
			if s == model.SeriesEnergy {
				amplitude = 0.12
			}
			phase := 2*math.Pi*float64(i)/52 + float64(s)*0.9
			v := mockBases[s] * (1 + 0.0015*float64(i) + amplitude*math.Sin(phase))
			values[s.Code()] = strconv.FormatFloat(v, 'f', 2, 64)
		}
		observations[i] = model.RawObservation{
			Date:   start.AddDate(0, 0, 7*i).Format("2006-01-02"),
			Values: values,
		}
	}
	return observations
}
