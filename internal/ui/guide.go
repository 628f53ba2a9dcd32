package ui

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"CommodityPulse/internal/model"
)

//go:embed guide.md
var guideMarkdown string

// guideSource appends the series table to the embedded guide so the
// catalog stays the only place codes and labels are defined.
func guideSource() string {
	var b strings.Builder
	b.WriteString(guideMarkdown)
	b.WriteString("\n| Key | Code | Series |\n| --- | --- | --- |\n")
	for i, s := range model.AllSeries() {
		fmt.Fprintf(&b, "| `%d` | `%s` | %s |\n", i+1, s.Code(), s.Label())
	}
	return b.String()
}

// renderGuide renders the guide markdown for the current width. It
// falls back to the raw markdown when the renderer cannot be built.
func renderGuide(width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return guideSource()
	}
	out, err := r.Render(guideSource())
	if err != nil {
		return guideSource()
	}
	return out
}
