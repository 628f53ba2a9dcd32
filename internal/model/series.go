package model

// Series identifies one tracked commodity price index.
type Series int

const (
	SeriesTotal Series = iota
	SeriesNonEnergy
	SeriesEnergy
	SeriesMetals
	SeriesForestry
	SeriesAgriculture
	SeriesFish
)

// SeriesInfo describes one series: its external code in the source
// document, its display name, and the chart color used by renderers.
type SeriesInfo struct {
	Code  string
	Label string
	Color string
}

// catalog is the single source of truth for series codes, labels and
// colors. Nothing else in the repository hard-codes any of these.
var catalog = [...]SeriesInfo{
	SeriesTotal:       {Code: "W.BCPI", Label: "Total", Color: "#1f77b4"},
	SeriesNonEnergy:   {Code: "W.BCNE", Label: "Non-energy", Color: "#8c564b"},
	SeriesEnergy:      {Code: "W.ENER", Label: "Energy", Color: "#d62728"},
	SeriesMetals:      {Code: "W.MTLS", Label: "Metals & Minerals", Color: "#ff7f0e"},
	SeriesForestry:    {Code: "W.FOPR", Label: "Forestry", Color: "#2ca02c"},
	SeriesAgriculture: {Code: "W.AGRI", Label: "Agriculture", Color: "#bcbd22"},
	SeriesFish:        {Code: "W.FISH", Label: "Fish", Color: "#17becf"},
}

var codeIndex = func() map[string]Series {
	m := make(map[string]Series, len(catalog))
	for s, info := range catalog {
		m[info.Code] = Series(s)
	}
	return m
}()

// AllSeries returns every tracked series in catalog order.
func AllSeries() []Series {
	all := make([]Series, len(catalog))
	for i := range catalog {
		all[i] = Series(i)
	}
	return all
}

// SeriesByCode resolves an external series code like "W.ENER".
func SeriesByCode(code string) (Series, bool) {
	s, ok := codeIndex[code]
	return s, ok
}

// Code returns the external code used in the source document.
func (s Series) Code() string { return catalog[s].Code }

// Label returns the display name.
func (s Series) Label() string { return catalog[s].Label }

// Color returns the chart color as a hex string.
func (s Series) Color() string { return catalog[s].Color }

func (s Series) String() string { return catalog[s].Label }
