package ui

import (
	"fmt"
	"math"
	"strings"

	"CommodityPulse/internal/model"
)

// chartSpec describes one braille chart frame.
type chartSpec struct {
	width  int // cells
	height int // cells
	points []model.ProcessedPoint
	series []model.Series
	yoy    bool
}

// Braille cells pack a 2x4 dot grid. bit layout per Unicode braille:
// (0,0)=0x01 (0,1)=0x02 (0,2)=0x04 (0,3)=0x40
// (1,0)=0x08 (1,1)=0x10 (1,2)=0x20 (1,3)=0x80
var brailleBits = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

const brailleBase = 0x2800

// sampleValue returns the plotted value for a point, or NaN when the
// point has nothing to show for the series in the current mode.
func sampleValue(p model.ProcessedPoint, s model.Series, yoy bool) float64 {
	if yoy {
		v, ok := p.YoYFor(s)
		if !ok {
			return math.NaN()
		}
		return v
	}
	return p.Value(s)
}

// chartBounds scans the window for the value range to plot. In YoY mode
// the zero line is always kept in frame. ok is false when the window has
// no finite value for any plotted series.
func chartBounds(spec chartSpec) (minV, maxV float64, ok bool) {
	minV = math.Inf(1)
	maxV = math.Inf(-1)
	for _, p := range spec.points {
		for _, s := range spec.series {
			v := sampleValue(p, s, spec.yoy)
			if math.IsNaN(v) {
				continue
			}
			minV = math.Min(minV, v)
			maxV = math.Max(maxV, v)
		}
	}
	if minV > maxV {
		return 0, 0, false
	}
	if spec.yoy {
		minV = math.Min(minV, 0)
		maxV = math.Max(maxV, 0)
	}
	if minV == maxV {
		minV--
		maxV++
	}
	return minV, maxV, true
}

// plotGrid rasterizes the window onto a braille canvas. cells holds the
// braille rune per cell, colors the index into spec.series that last drew
// in the cell (-1 when empty). Later series in spec.series draw on top.
func plotGrid(spec chartSpec) (cells [][]rune, colors [][]int) {
	w, h := spec.width, spec.height
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	cells = make([][]rune, h)
	colors = make([][]int, h)
	for row := range cells {
		cells[row] = make([]rune, w)
		colors[row] = make([]int, w)
		for col := range cells[row] {
			cells[row][col] = brailleBase
			colors[row][col] = -1
		}
	}
	minV, maxV, ok := chartBounds(spec)
	if !ok || len(spec.points) == 0 {
		return cells, colors
	}

	dotW, dotH := w*2, h*4
	span := maxV - minV
	setDot := func(x, y, seriesIdx int) {
		cells[y/4][x/2] |= brailleBits[x%2][y%4]
		colors[y/4][x/2] = seriesIdx
	}
	for si, s := range spec.series {
		prevY := -1
		for x := 0; x < dotW; x++ {
			idx := 0
			if dotW > 1 {
				idx = x * (len(spec.points) - 1) / (dotW - 1)
			}
			v := sampleValue(spec.points[idx], s, spec.yoy)
			if math.IsNaN(v) {
				prevY = -1
				continue
			}
			y := int(math.Round((maxV - v) / span * float64(dotH-1)))
			setDot(x, y, si)
			// Fill the vertical run to the previous column so steep
			// moves stay connected.
			if prevY >= 0 && prevY != y {
				lo, hi := prevY, y
				if lo > hi {
					lo, hi = hi, lo
				}
				for fy := lo + 1; fy < hi; fy++ {
					setDot(x, fy, si)
				}
			}
			prevY = y
		}
	}
	return cells, colors
}

// renderChart draws the braille canvas with a value gutter on the left
// and date labels underneath.
func renderChart(spec chartSpec, styles Styles) string {
	const gutter = 9
	minV, maxV, ok := chartBounds(spec)
	if !ok || len(spec.points) == 0 {
		return styles.Muted.Render("no data in range")
	}
	cells, colors := plotGrid(spec)

	var b strings.Builder
	for row := range cells {
		label := strings.Repeat(" ", gutter)
		switch row {
		case 0:
			label = fmt.Sprintf("%*.1f", gutter, maxV)
		case len(cells) - 1:
			label = fmt.Sprintf("%*.1f", gutter, minV)
		case (len(cells) - 1) / 2:
			label = fmt.Sprintf("%*.1f", gutter, (minV+maxV)/2)
		}
		b.WriteString(styles.Muted.Render(label))
		b.WriteString(styles.Muted.Render("┤"))

		// Group consecutive cells of one color into a single styled run.
		col := 0
		for col < len(cells[row]) {
			start := col
			c := colors[row][col]
			for col < len(cells[row]) && colors[row][col] == c {
				col++
			}
			run := string(cells[row][start:col])
			if c >= 0 {
				run = seriesStyle(spec.series[c]).Render(run)
			}
			b.WriteString(run)
		}
		b.WriteString("\n")
	}

	first := spec.points[0].Label
	last := spec.points[len(spec.points)-1].Label
	pad := spec.width - len(first) - len(last)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(strings.Repeat(" ", gutter+1))
	b.WriteString(styles.Muted.Render(first + strings.Repeat(" ", pad) + last))
	return b.String()
}

// renderLegend lists every catalog series with its toggle digit,
// dimming the hidden ones.
func renderLegend(visible map[model.Series]bool, styles Styles) string {
	parts := make([]string, 0, len(model.AllSeries()))
	for i, s := range model.AllSeries() {
		entry := fmt.Sprintf("%d ⣿ %s", i+1, s.Label())
		if visible[s] {
			parts = append(parts, seriesStyle(s).Render(entry))
		} else {
			parts = append(parts, styles.Muted.Render(entry))
		}
	}
	return strings.Join(parts, "   ")
}
