// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paleosky/paleosky/internal/astro"
	"github.com/paleosky/paleosky/internal/sim"
)

// Msg types for Bubble Tea
type (
	// alignmentResultMsg carries a finished alignment search.
	alignmentResultMsg struct {
		sightLine string
		result    astro.SearchResult
		err       error
	}
)

// Model is the root Bubble Tea model: a full-screen sky view over one scene.
type Model struct {
	scene *sim.Scene

	width  int
	height int
	ready  bool

	// Camera position (center of view)
	camAz float64
	camEl float64

	// Focused sight-line index into the site's list, -1 when none.
	focusIdx int

	// In-flight alignment search
	searching bool
	statusMsg string

	snapshot sim.Snapshot
}

// New creates the root UI model for a scene.
func New(scene *sim.Scene) Model {
	m := Model{
		scene:    scene,
		camAz:    180,
		camEl:    30,
		focusIdx: -1,
	}
	m.snapshot = scene.Snapshot()
	if len(m.snapshot.Site.SightLines) > 0 {
		m.focusIdx = 0
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case alignmentResultMsg:
		m.searching = false
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("search failed: %v", msg.err)
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("%s best aligns in year %d (%.2f° off, %d iters)",
			msg.sightLine, msg.result.Year, msg.result.ErrorDeg, msg.result.Iterations)
		ts := m.scene.Time()
		ts.Year = msg.result.Year
		m.scene.SetTime(ts)
		m.snapshot = m.scene.Snapshot()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Camera pan
	case "left":
		m.camAz = wrapAz(m.camAz - 10)
	case "right":
		m.camAz = wrapAz(m.camAz + 10)
	case "up":
		m.camEl = clampEl(m.camEl + 5)
	case "down":
		m.camEl = clampEl(m.camEl - 5)

	// Time stepping
	case "y":
		m.scene.StepYears(-100)
		m.refresh()
	case "Y":
		m.scene.StepYears(100)
		m.refresh()
	case "d":
		m.scene.StepDays(-1)
		m.refresh()
	case "D":
		m.scene.StepDays(1)
		m.refresh()
	case "h":
		m.scene.StepHours(-1)
		m.refresh()
	case "H":
		m.scene.StepHours(1)
		m.refresh()

	case "g":
		m.scene.JumpToDawn()
		m.refresh()
		m.statusMsg = "jumped to civil dawn"

	case "tab":
		if n := len(m.snapshot.Site.SightLines); n > 0 {
			m.focusIdx = (m.focusIdx + 1) % n
			m.statusMsg = ""
		}

	case "a":
		return m.startSearch()
	}

	return m, nil
}

func (m *Model) refresh() {
	m.snapshot = m.scene.Snapshot()
	m.statusMsg = ""
}

// startSearch launches the alignment search for the focused sight-line as a
// background command so the UI stays responsive.
func (m Model) startSearch() (tea.Model, tea.Cmd) {
	if m.searching || m.focusIdx < 0 {
		return m, nil
	}
	sl := m.snapshot.Site.SightLines[m.focusIdx]
	if sl.Star == "" {
		m.statusMsg = fmt.Sprintf("%s has no target star to search for", sl.Name)
		return m, nil
	}

	year := m.scene.Time().Year
	opts := astro.DefaultSearchOptions(year, year-10000, year+10000)

	m.searching = true
	m.statusMsg = fmt.Sprintf("searching alignment epoch for %s...", sl.Name)

	scene := m.scene
	name := sl.Name
	return m, func() tea.Msg {
		res, err := scene.SearchAlignment(context.Background(), name, opts)
		return alignmentResultMsg{sightLine: name, result: res, err: err}
	}
}

func wrapAz(az float64) float64 {
	for az < 0 {
		az += 360
	}
	for az >= 360 {
		az -= 360
	}
	return az
}

func clampEl(el float64) float64 {
	if el < -10 {
		return -10
	}
	if el > 90 {
		return 90
	}
	return el
}
