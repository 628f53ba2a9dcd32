package ui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"CommodityPulse/internal/collector"
	"CommodityPulse/internal/config"
	"CommodityPulse/internal/dataset"
	"CommodityPulse/internal/model"
	"CommodityPulse/internal/transform"
)

func rampPoints(n int) []model.ProcessedPoint {
	points := make([]model.ProcessedPoint, n)
	start := time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC)
	for i := range points {
		d := start.AddDate(0, 0, 7*i)
		points[i] = model.ProcessedPoint{
			Label: d.Format("Jan 2, 2006"),
			Date:  d,
			Values: map[model.Series]float64{
				model.SeriesTotal: float64(100 + i),
			},
			YoY: map[model.Series]float64{},
		}
	}
	return points
}

func TestParseRangeInput(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad fixture date %q: %v", s, err)
		}
		return d
	}
	tests := []struct {
		name    string
		input   string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{name: "empty", input: "   "},
		{name: "start only", input: "2020-01-01", start: day("2020-01-01")},
		{name: "both", input: "2020-01-01 2020-12-31", start: day("2020-01-01"), end: day("2020-12-31")},
		{name: "open start", input: ". 2020-12-31", end: day("2020-12-31")},
		{name: "open end", input: "2020-01-01 .", start: day("2020-01-01")},
		{name: "garbage", input: "soon", wantErr: true},
		{name: "inverted", input: "2021-01-01 2020-01-01", wantErr: true},
		{name: "too many", input: "a b c", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := parseRangeInput(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseRangeInput(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRangeInput(%q): %v", tt.input, err)
			}
			if !start.Equal(tt.start) || !end.Equal(tt.end) {
				t.Fatalf("parseRangeInput(%q) = %v, %v; want %v, %v", tt.input, start, end, tt.start, tt.end)
			}
		})
	}
}

func TestPlotGrid_DrawsRamp(t *testing.T) {
	spec := chartSpec{
		width:  10,
		height: 4,
		points: rampPoints(40),
		series: []model.Series{model.SeriesTotal},
	}
	cells, colors := plotGrid(spec)
	if len(cells) != 4 || len(cells[0]) != 10 {
		t.Fatalf("grid is %dx%d, want 4x10", len(cells), len(cells[0]))
	}
	drawn := 0
	for row := range cells {
		for col := range cells[row] {
			if cells[row][col] != brailleBase {
				drawn++
				if colors[row][col] != 0 {
					t.Fatalf("cell (%d,%d) colored %d, want series index 0", row, col, colors[row][col])
				}
			}
		}
	}
	if drawn == 0 {
		t.Fatal("ramp drew no cells")
	}
}

func TestPlotGrid_AllValuesMissing(t *testing.T) {
	points := rampPoints(10)
	for i := range points {
		points[i].Values = map[model.Series]float64{model.SeriesTotal: math.NaN()}
	}
	cells, _ := plotGrid(chartSpec{width: 8, height: 3, points: points, series: []model.Series{model.SeriesTotal}})
	for row := range cells {
		for col := range cells[row] {
			if cells[row][col] != brailleBase {
				t.Fatalf("cell (%d,%d) drawn from NaN values", row, col)
			}
		}
	}
}

func TestChartBounds_YoYKeepsZeroInFrame(t *testing.T) {
	points := rampPoints(3)
	for i := range points {
		points[i].YoY = map[model.Series]float64{model.SeriesTotal: 5 + float64(i)}
	}
	minV, maxV, ok := chartBounds(chartSpec{points: points, series: []model.Series{model.SeriesTotal}, yoy: true})
	if !ok {
		t.Fatal("bounds not found")
	}
	if minV > 0 {
		t.Fatalf("minV = %v, want <= 0 in yoy mode", minV)
	}
	if maxV < 7 {
		t.Fatalf("maxV = %v, want >= 7", maxV)
	}
}

func TestRenderChart_EmptyWindow(t *testing.T) {
	out := renderChart(chartSpec{width: 20, height: 5}, DefaultStyles())
	if !strings.Contains(out, "no data in range") {
		t.Fatalf("empty chart rendered %q", out)
	}
}

func TestGuideSource_ListsCatalog(t *testing.T) {
	src := guideSource()
	for _, s := range model.AllSeries() {
		if !strings.Contains(src, s.Code()) {
			t.Fatalf("guide is missing series code %s", s.Code())
		}
	}
}

func testModel(t *testing.T, weeks int) Model {
	t.Helper()
	store := dataset.NewStore(zap.NewNop())
	src := &collector.MockSource{Weeks: weeks}
	cfg := &config.Config{}
	cfg.Dashboard.Range = "max"
	m := NewModel(context.Background(), store, src, cfg, zap.NewNop())

	msg := m.loadCmd()()
	next, _ := m.Update(msg)
	m = next.(Model)
	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 32})
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_LoadsAndRenders(t *testing.T) {
	m := testModel(t, 120)
	view := m.View()
	if !strings.Contains(view, "Commodity Pulse") {
		t.Fatal("header missing")
	}
	if !strings.Contains(view, "Latest trends") {
		t.Fatal("trends sidebar missing")
	}
	if !strings.Contains(view, "Total") {
		t.Fatal("legend missing")
	}
	if !strings.Contains(view, "range max") {
		t.Fatalf("status line missing range, view:\n%s", view)
	}
}

func TestModel_KeyToggles(t *testing.T) {
	m := testModel(t, 120)

	next, _ := m.Update(key("y"))
	m = next.(Model)
	if !strings.Contains(m.View(), "view yoy %") {
		t.Fatal("y did not switch to yoy view")
	}

	next, _ = m.Update(key("t"))
	m = next.(Model)
	if strings.Contains(m.View(), "Latest trends") {
		t.Fatal("t did not hide the trends sidebar")
	}

	next, _ = m.Update(key("]"))
	m = next.(Model)
	if !strings.Contains(m.View(), "range 1y") {
		t.Fatalf("] did not advance the preset, view:\n%s", m.View())
	}
}

func TestModel_CustomRange(t *testing.T) {
	m := testModel(t, 120)

	next, _ := m.Update(key("f"))
	m = next.(Model)
	if !m.inputMode {
		t.Fatal("f did not open the range input")
	}

	next, _ = m.Update(key("2021-01-01 ."))
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.inputMode {
		t.Fatal("enter did not close the range input")
	}
	if !m.customActive {
		t.Fatal("custom range not applied")
	}
	if !strings.Contains(m.View(), "range custom") {
		t.Fatal("status line does not show the custom range")
	}
}

func TestModel_BadRangeInputKeepsPriorBounds(t *testing.T) {
	m := testModel(t, 120)

	next, _ := m.Update(key("f"))
	m = next.(Model)
	next, _ = m.Update(key("not-a-date"))
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if !m.inputMode {
		t.Fatal("bad input should keep the editor open")
	}
	if m.inputErr == "" {
		t.Fatal("bad input produced no hint")
	}
	if m.customActive {
		t.Fatal("bad input must not change the active range")
	}
}

func TestModel_ShortHistoryShowsTrendsHint(t *testing.T) {
	m := testModel(t, 20)
	want := fmt.Sprintf("Needs at least %d", transform.Lookback)
	if !strings.Contains(m.View(), want) {
		t.Fatalf("short history should show the trends hint, view:\n%s", m.View())
	}
}

func TestModel_SeriesToggle(t *testing.T) {
	m := testModel(t, 120)
	next, _ := m.Update(key("1"))
	m = next.(Model)
	if m.visible[model.SeriesTotal] {
		t.Fatal("1 did not hide the first series")
	}
	next, _ = m.Update(key("1"))
	m = next.(Model)
	if !m.visible[model.SeriesTotal] {
		t.Fatal("1 did not restore the first series")
	}
}

func TestModel_FileChangeTriggersReload(t *testing.T) {
	m := testModel(t, 120)
	next, cmd := m.Update(FileChangedMsg{})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("file change did not schedule a reload")
	}
	if m.statusNote == "" {
		t.Fatal("file change left no status note")
	}
	next, _ = m.Update(cmd())
	m = next.(Model)
	if m.statusNote != "" {
		t.Fatal("completed reload did not clear the status note")
	}
}
