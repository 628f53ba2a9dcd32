package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"CommodityPulse/internal/model"
	"CommodityPulse/internal/transform"
)

const (
	gutterWidth  = 10
	sidebarWidth = 40
)

func (m Model) View() string {
	if m.width == 0 {
		return "starting"
	}
	if m.showGuide {
		return m.guideView.View() + "\n" + m.styles.Help.Render("i/esc close · up/down scroll")
	}
	switch m.state {
	case stateLoading:
		return fmt.Sprintf("\n  %s loading observations from %s\n", m.spinner.View(), m.source.Name())
	case stateFailed:
		return "\n  " + m.styles.Error.Render(fmt.Sprintf("load failed: %v", m.err)) +
			"\n\n  " + m.styles.Help.Render("r retry · q quit")
	}
	return m.viewReady()
}

func (m Model) viewReady() string {
	points := m.window()

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")

	reserved := 4 // header, legend, status, footer
	if m.statusNote != "" {
		reserved++
	}
	if m.inputMode {
		reserved++
	}
	chartHeight := m.height - reserved - 2 // chart carries its own date row
	if chartHeight < 4 {
		chartHeight = 4
	}
	chartWidth := m.width - gutterWidth
	if m.showTrends {
		chartWidth -= sidebarWidth
	}
	if chartWidth < 20 {
		chartWidth = 20
	}

	chart := renderChart(chartSpec{
		width:  chartWidth,
		height: chartHeight,
		points: points,
		series: m.visibleSeries(),
		yoy:    m.yoyMode,
	}, m.styles)
	if m.showTrends {
		chart = lipgloss.JoinHorizontal(lipgloss.Top, chart, m.renderTrends(points))
	}
	b.WriteString(chart)
	b.WriteString("\n")

	b.WriteString(renderLegend(m.visible, m.styles))
	b.WriteString("\n")
	b.WriteString(m.statusLine(points))
	b.WriteString("\n")

	if m.statusNote != "" {
		b.WriteString(m.styles.Warning.Render(m.statusNote))
		b.WriteString("\n")
	}
	if m.inputMode {
		b.WriteString(m.styles.Input.Render(m.rangeInput.View()))
		if m.inputErr != "" {
			b.WriteString("  " + m.styles.Error.Render(m.inputErr))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(
		"1-7 series · [ ] range · f custom · y yoy · t trends · r reload · i guide · q quit"))
	return b.String()
}

func (m Model) header() string {
	info := fmt.Sprintf("%s · %d observations · loaded %s",
		m.source.Name(), len(m.snap.Points), m.snap.LoadedAt.Format("15:04:05"))
	return m.styles.Title.Render("Commodity Pulse") + "  " + m.styles.Muted.Render(info)
}

func (m Model) statusLine(points []model.ProcessedPoint) string {
	mode := "index"
	if m.yoyMode {
		mode = "yoy %"
	}
	span := "empty range"
	if len(points) > 0 {
		span = points[0].Label + " to " + points[len(points)-1].Label
	}
	return m.styles.Status.Render(fmt.Sprintf("range %s · %s · view %s", m.rangeLabel(), span, mode))
}

func (m Model) renderTrends(points []model.ProcessedPoint) string {
	entries := transform.LatestTrends(points)
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Latest trends"))
	b.WriteString("\n")
	if entries == nil {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Needs at least %d\nweeks in range.", transform.Lookback)))
		return m.styles.Panel.Render(b.String())
	}
	for _, e := range entries {
		value := "n/a"
		if !math.IsNaN(e.Value) {
			value = fmt.Sprintf("%.1f", e.Value)
		}
		arrow := " "
		switch {
		case e.YoY > 0:
			arrow = "▲"
		case e.YoY < 0:
			arrow = "▼"
		}
		line := fmt.Sprintf("%s %8s %+6.1f%% %s",
			seriesStyle(e.Series).Render(fmt.Sprintf("%-17s", e.Series.Label())),
			value, e.YoY, arrow)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return m.styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}
