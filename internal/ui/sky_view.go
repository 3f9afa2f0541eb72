package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/paleosky/paleosky/internal/astro"
)

const (
	// Field of view in degrees
	fovAz = 120.0 // horizontal FOV
	fovEl = 60.0  // vertical FOV

	// Star glyphs by magnitude
	glyphStarBright  = '✶' // mag < 1.5
	glyphStarMedium  = '✸' // mag 1.5-3.0
	glyphStarDim     = '·' // mag >= 3.0
	glyphSegment     = '∙'
	glyphSightLine   = '◎'
	glyphSun         = '☉'

	// Star colors (grayscale so markers stand out)
	colorStarBright  = "255" // bright white
	colorStarMedium  = "250" // medium gray
	colorStarDim     = "244" // dim gray
	colorSegment     = "60"  // muted purple
	colorSightLine   = "229" // bright gold
	colorSun         = "220"
	colorHorizon     = "60"
	colorCardinal    = "252"
	colorBackground  = "236"
)

// View renders the full-screen sky view.
func (m Model) View() string {
	if !m.ready {
		return "initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Sky view requires larger terminal"
	}

	// Reserve lines for header and status
	viewHeight := m.height - 4
	viewWidth := m.width

	canvas := m.renderSkyCanvas(viewWidth, viewHeight)

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(canvas)
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorSightLine))

	title := titleStyle.Render("Paleosky")
	siteStr := accentStyle.Render(m.snapshot.Site.Name)

	ts := m.snapshot.Time
	month, day := astro.MonthDayFromDayOfYear(ts.Year, ts.DayOfYear)
	timeStr := dimStyle.Render(fmt.Sprintf("year %d  %02d-%02d  %05.2fh UTC",
		ts.Year, month, day, ts.HourUTC))

	compass := dimStyle.Render(fmt.Sprintf("Az:%.0f° El:%.0f°", m.camAz, m.camEl))

	return fmt.Sprintf("%s | %s | %s | %s", title, siteStr, timeStr, compass)
}

func (m Model) renderStatus() string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorSightLine))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	if m.statusMsg != "" {
		return accentStyle.Render(m.statusMsg)
	}

	if m.focusIdx >= 0 && m.focusIdx < len(m.snapshot.Alignments) {
		a := m.snapshot.Alignments[m.focusIdx]
		line := fmt.Sprintf(">>> %s", a.SightLine)
		if a.Star != "" {
			line += fmt.Sprintf(" → %s (%.2f° off)", a.Star, a.ErrorDeg)
		}
		if a.Constellation != "" {
			line += fmt.Sprintf(" | through %s", a.Constellation)
		}
		return accentStyle.Render(line) + "\n" +
			dimStyle.Render("    ←→↑↓ pan  y/Y year  d/D day  h/H hour  g dawn  tab sight-line  a search  q quit")
	}

	return dimStyle.Render("←→↑↓ pan  y/Y year  d/D day  h/H hour  g dawn  q quit")
}

func (m Model) renderSkyCanvas(width, height int) string {
	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = colorBackground
		}
	}

	horizonY := height - 2

	// Constellation segments first so stars draw over them.
	for _, seg := range m.snapshot.Segments {
		m.drawSegment(canvas, colors, width, horizonY, seg.A, seg.B)
	}

	// Stars
	for _, star := range m.snapshot.Stars {
		hd := astro.HorizontalFromVector(star.Dir)
		if hd.AltDeg() <= 0 {
			continue
		}
		x, y, visible := m.projectToScreen(hd.AzDeg(), hd.AltDeg(), width, height)
		if !visible || x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}
		glyph, color := starGlyph(star.Mag)
		canvas[y][x] = glyph
		colors[y][x] = color
	}

	// Sun, when above the horizon
	if m.snapshot.Sun.AltDeg() > 0 {
		if x, y, ok := m.projectToScreen(m.snapshot.Sun.AzDeg(), m.snapshot.Sun.AltDeg(), width, height); ok {
			if x >= 0 && x < width && y >= 0 && y < horizonY {
				canvas[y][x] = glyphSun
				colors[y][x] = colorSun
			}
		}
	}

	// Sight-line markers
	for i, sl := range m.snapshot.Site.SightLines {
		x, y, visible := m.projectToScreen(sl.AzDeg, sl.AltDeg, width, height)
		if !visible || x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}
		canvas[y][x] = glyphSightLine
		colors[y][x] = colorSightLine
		if i == m.focusIdx {
			m.drawLabel(canvas, colors, width, horizonY, x+2, y, "◄ "+sl.Name)
		}
	}

	// Horizon line
	for x := 0; x < width; x++ {
		canvas[horizonY][x] = '─'
		colors[horizonY][x] = colorHorizon
	}

	// Cardinal directions on horizon
	m.drawCardinal(canvas, colors, width, height, "N", 0)
	m.drawCardinal(canvas, colors, width, height, "E", 90)
	m.drawCardinal(canvas, colors, width, height, "S", 180)
	m.drawCardinal(canvas, colors, width, height, "W", 270)

	// Observer marker at bottom center
	stationX := width / 2
	stationY := height - 1
	if stationY >= 0 && stationX >= 0 && stationX < width {
		canvas[stationY][stationX] = '▲'
		colors[stationY][stationX] = "46"
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// drawSegment interpolates a constellation segment between its projected
// endpoints. Segments that cross behind the camera are skipped rather than
// wrapped across the screen.
func (m Model) drawSegment(canvas [][]rune, colors [][]lipgloss.Color, width, horizonY int, a, b astro.Vec3) {
	ha := astro.HorizontalFromVector(a)
	hb := astro.HorizontalFromVector(b)
	if ha.AltDeg() <= 0 && hb.AltDeg() <= 0 {
		return
	}

	x1, y1, v1 := m.projectToScreen(ha.AzDeg(), ha.AltDeg(), width, horizonY+2)
	x2, y2, v2 := m.projectToScreen(hb.AzDeg(), hb.AltDeg(), width, horizonY+2)
	if !v1 || !v2 {
		return
	}

	steps := max(abs(x2-x1), abs(y2-y1))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x1 + int(math.Round(t*float64(x2-x1)))
		y := y1 + int(math.Round(t*float64(y2-y1)))
		if x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}
		if canvas[y][x] == ' ' {
			canvas[y][x] = glyphSegment
			colors[y][x] = colorSegment
		}
	}
}

func (m Model) drawLabel(canvas [][]rune, colors [][]lipgloss.Color, width, horizonY, startX, y int, text string) {
	for i, r := range []rune(text) {
		x := startX + i
		if x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}
		canvas[y][x] = r
		colors[y][x] = colorSightLine
	}
}

// starGlyph returns the glyph and color for a star based on its magnitude.
// Brighter stars (lower magnitude) get more prominent symbols.
func starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 1.5:
		return glyphStarBright, colorStarBright
	case mag < 3.0:
		return glyphStarMedium, colorStarMedium
	default:
		return glyphStarDim, colorStarDim
	}
}

func (m Model) drawCardinal(canvas [][]rune, colors [][]lipgloss.Color, width, height int, label string, az float64) {
	x, _, visible := m.projectToScreen(az, 0, width, height)
	if !visible {
		return
	}
	y := height - 2 // horizon line

	if x >= 0 && x < width && y >= 0 && y < height {
		canvas[y][x] = rune(label[0])
		colors[y][x] = colorCardinal
	}
}

// projectToScreen converts az/el to screen coordinates relative to camera.
func (m Model) projectToScreen(az, el float64, width, height int) (int, int, bool) {
	dAz := normalizeAngle(az - m.camAz)
	dEl := el - m.camEl

	if dAz < -fovAz/2 || dAz > fovAz/2 {
		return 0, 0, false
	}
	if dEl < -fovEl/2 || dEl > fovEl/2 {
		return 0, 0, false
	}

	// X: -fovAz/2..+fovAz/2 -> 0..width
	// Y: +fovEl/2..-fovEl/2 -> 0..horizonY (inverted, higher el = higher on screen)
	horizonY := height - 2

	x := int((dAz + fovAz/2) / fovAz * float64(width))
	y := int((fovEl/2 - dEl) / fovEl * float64(horizonY))

	return x, y, true
}

// normalizeAngle wraps angle to -180..+180 range
func normalizeAngle(a float64) float64 {
	for a > 180 {
		a -= 360
	}
	for a < -180 {
		a += 360
	}
	return a
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
