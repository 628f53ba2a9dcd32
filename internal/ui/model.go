package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"CommodityPulse/internal/collector"
	"CommodityPulse/internal/config"
	"CommodityPulse/internal/dataset"
	"CommodityPulse/internal/model"
	"CommodityPulse/internal/transform"
	"CommodityPulse/internal/watch"
)

type state int

const (
	stateLoading state = iota
	stateFailed
	stateReady
)

var presetYears = map[string]int{"1y": 1, "5y": 5, "10y": 10, "max": 0}

// Messages produced by background work.
type (
	loadedMsg     struct{ snap dataset.Snapshot }
	loadFailedMsg struct{ err error }

	// FileChangedMsg asks the dashboard to reload. The file watcher
	// sends it through tea.Program.Send.
	FileChangedMsg struct{}
)

// Model is the bubbletea model for the dashboard.
type Model struct {
	ctx    context.Context
	store  *dataset.Store
	source collector.Source
	log    *zap.Logger

	state state
	err   error
	snap  dataset.Snapshot

	width  int
	height int

	spinner    spinner.Model
	rangeInput textinput.Model
	guideView  viewport.Model

	presetIdx    int
	customStart  time.Time
	customEnd    time.Time
	customActive bool

	visible    map[model.Series]bool
	yoyMode    bool
	showTrends bool
	showGuide  bool
	inputMode  bool
	inputErr   string
	statusNote string

	styles Styles
}

// NewModel builds the dashboard model. The context bounds background
// loads triggered from the UI.
func NewModel(ctx context.Context, store *dataset.Store, src collector.Source, cfg *config.Config, log *zap.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD YYYY-MM-DD"
	ti.Prompt = "range: "
	ti.CharLimit = 21
	ti.Width = 28

	visible := make(map[model.Series]bool)
	for _, s := range cfg.VisibleSeries() {
		visible[s] = true
	}
	presetIdx := 0
	for i, p := range config.RangePresets {
		if p == cfg.Dashboard.Range {
			presetIdx = i
		}
	}

	return Model{
		ctx:        ctx,
		store:      store,
		source:     src,
		log:        log,
		state:      stateLoading,
		spinner:    sp,
		rangeInput: ti,
		guideView:  viewport.New(80, 20),
		presetIdx:  presetIdx,
		visible:    visible,
		showTrends: true,
		styles:     DefaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.store.Load(m.ctx, m.source)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{snap: snap}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.guideView.Width = msg.Width
		m.guideView.Height = msg.Height - 2
		if m.showGuide {
			m.guideView.SetContent(renderGuide(msg.Width - 4))
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		m.state = stateReady
		m.snap = msg.snap
		m.err = nil
		m.statusNote = ""
		return m, nil

	case loadFailedMsg:
		if m.snap.Ready() {
			// Keep showing the previous snapshot.
			m.statusNote = fmt.Sprintf("reload failed: %v", msg.err)
			m.state = stateReady
			return m, nil
		}
		m.state = stateFailed
		m.err = msg.err
		return m, nil

	case FileChangedMsg:
		m.statusNote = "data file changed, reloading"
		return m, m.loadCmd()

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showGuide {
		switch msg.String() {
		case "i", "esc", "q":
			m.showGuide = false
			return m, nil
		}
		var cmd tea.Cmd
		m.guideView, cmd = m.guideView.Update(msg)
		return m, cmd
	}

	if m.inputMode {
		switch msg.String() {
		case "esc":
			m.inputMode = false
			m.inputErr = ""
			m.rangeInput.Blur()
			return m, nil
		case "enter":
			start, end, err := parseRangeInput(m.rangeInput.Value())
			if err != nil {
				m.inputErr = err.Error()
				return m, nil
			}
			m.inputMode = false
			m.inputErr = ""
			m.rangeInput.Blur()
			if start.IsZero() && end.IsZero() && strings.TrimSpace(m.rangeInput.Value()) == "" {
				m.customActive = false
				return m, nil
			}
			m.customStart, m.customEnd = start, end
			m.customActive = true
			return m, nil
		}
		var cmd tea.Cmd
		m.rangeInput, cmd = m.rangeInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "r":
		m.statusNote = "reloading"
		if m.state == stateFailed {
			m.state = stateLoading
			return m, tea.Batch(m.spinner.Tick, m.loadCmd())
		}
		return m, m.loadCmd()
	case "i":
		m.showGuide = true
		m.guideView.SetContent(renderGuide(m.width - 4))
		m.guideView.GotoTop()
		return m, nil
	}

	if m.state != stateReady {
		return m, nil
	}

	switch msg.String() {
	case "]", "right":
		m.customActive = false
		m.presetIdx = (m.presetIdx + 1) % len(config.RangePresets)
	case "[", "left":
		m.customActive = false
		m.presetIdx = (m.presetIdx + len(config.RangePresets) - 1) % len(config.RangePresets)
	case "f", "/":
		m.inputMode = true
		m.inputErr = ""
		m.rangeInput.Focus()
		return m, textinput.Blink
	case "y":
		m.yoyMode = !m.yoyMode
	case "t":
		m.showTrends = !m.showTrends
	case "1", "2", "3", "4", "5", "6", "7":
		idx := int(msg.String()[0] - '1')
		all := model.AllSeries()
		if idx < len(all) {
			m.visible[all[idx]] = !m.visible[all[idx]]
		}
	}
	return m, nil
}

// bounds resolves the active date window: the custom range when one is
// set, otherwise the preset measured back from the newest observation.
func (m Model) bounds() (time.Time, time.Time) {
	if m.customActive {
		return m.customStart, m.customEnd
	}
	years := presetYears[config.RangePresets[m.presetIdx]]
	if years == 0 || len(m.snap.Points) == 0 {
		return time.Time{}, time.Time{}
	}
	last := m.snap.Points[len(m.snap.Points)-1].Date
	if last.IsZero() {
		return time.Time{}, time.Time{}
	}
	return last.AddDate(-years, 0, 0), time.Time{}
}

// window returns the points inside the active range.
func (m Model) window() []model.ProcessedPoint {
	start, end := m.bounds()
	return transform.FilterByRange(m.snap.Points, start, end)
}

func (m Model) visibleSeries() []model.Series {
	out := make([]model.Series, 0, len(model.AllSeries()))
	for _, s := range model.AllSeries() {
		if m.visible[s] {
			out = append(out, s)
		}
	}
	return out
}

func (m Model) rangeLabel() string {
	if m.customActive {
		return "custom"
	}
	return config.RangePresets[m.presetIdx]
}

// parseRangeInput parses "start end" where either side may be "." for
// an open bound. A single date sets the start only. An empty input is
// valid and clears the custom range.
func parseRangeInput(s string) (start, end time.Time, err error) {
	const layout = "2006-01-02"
	parse := func(tok string) (time.Time, error) {
		if tok == "." {
			return time.Time{}, nil
		}
		return time.Parse(layout, tok)
	}
	fields := strings.Fields(s)
	switch len(fields) {
	case 0:
		return time.Time{}, time.Time{}, nil
	case 1:
		start, err = parse(fields[0])
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("bad date %q, want YYYY-MM-DD", fields[0])
		}
		return start, time.Time{}, nil
	case 2:
		start, err = parse(fields[0])
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("bad date %q, want YYYY-MM-DD", fields[0])
		}
		end, err = parse(fields[1])
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("bad date %q, want YYYY-MM-DD", fields[1])
		}
		if !start.IsZero() && !end.IsZero() && end.Before(start) {
			return time.Time{}, time.Time{}, errors.New("start is after end")
		}
		return start, end, nil
	default:
		return time.Time{}, time.Time{}, errors.New("want at most two dates")
	}
}

// Run starts the dashboard program and blocks until the user quits.
// When watchPath is set, changes to that file trigger a reload.
func Run(ctx context.Context, store *dataset.Store, src collector.Source, cfg *config.Config, watchPath string, log *zap.Logger) error {
	p := tea.NewProgram(NewModel(ctx, store, src, cfg, log), tea.WithAltScreen())
	if watchPath != "" {
		w := watch.New(watchPath, 0, func() { p.Send(FileChangedMsg{}) }, log)
		if err := w.Start(ctx); err != nil {
			log.Warn("file watch unavailable", zap.Error(err))
		} else {
			defer w.Stop()
		}
	}
	_, err := p.Run()
	return err
}
