package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stardodge/internal/config"
	"github.com/vovakirdan/stardodge/internal/core"
	"github.com/vovakirdan/stardodge/internal/sim"
)

// Entity glyphs.
const (
	playerChar   = '◉'
	asteroidChar = '●'
	alienChar    = '◈'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// drawFrame renders the current snapshot into the screen buffer.
func drawFrame(dst *core.Screen, cfg config.SimConfig, snap sim.Snapshot, menuCursor int, announcement string) {
	dst.Clear()

	drawField(dst, cfg, snap)

	switch snap.Phase {
	case sim.PhaseMenu:
		drawMenu(dst, snap.Difficulty, menuCursor)
	case sim.PhaseGameOver:
		drawGameOver(dst, announcement)
	}
}

// drawField draws the obstacles, the player, and the HUD line.
func drawField(dst *core.Screen, cfg config.SimConfig, snap sim.Snapshot) {
	for _, ob := range snap.Obstacles {
		char := asteroidChar
		color := core.ColorOrange
		if ob.Kind == sim.KindAlien {
			char = alienChar
			color = core.ColorBrightMagenta
		}
		if ob.Scored {
			color = core.ColorGray
		}
		drawCircle(dst, cfg, ob.X, ob.Y, ob.Radius, char, color)
	}

	p := snap.Player
	drawCircle(dst, cfg, p.Pos.X, p.Pos.Y, p.Radius, playerChar, core.ColorBrightCyan)

	hud := fmt.Sprintf(" Score: %d   Difficulty: %s ", snap.Score, snap.Difficulty)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)
}

// drawCircle rasterizes a field-space circle onto the cell grid. Every cell
// whose center falls inside the circle is filled; small circles always get
// at least their center cell.
func drawCircle(dst *core.Screen, cfg config.SimConfig, fx, fy, radius float64, char rune, color core.Color) {
	sx := float64(dst.Width()) / cfg.Field.Width
	sy := float64(dst.Height()) / cfg.Field.Height

	cx := int(fx * sx)
	cy := int(fy * sy)
	rx := core.Max(int(radius*sx), 0)
	ry := core.Max(int(radius*sy), 0)

	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			// Cell center back in field units
			px := (float64(cx+dx) + 0.5) / sx
			py := (float64(cy+dy) + 0.5) / sy
			if core.Dist(core.Vec2{X: px, Y: py}, core.Vec2{X: fx, Y: fy}) <= radius {
				dst.SetCell(cx+dx, cy+dy, char, color)
			}
		}
	}
	dst.SetCell(cx, cy, char, color)
}

// drawMenu draws the difficulty picker over the field.
func drawMenu(dst *core.Screen, current config.Difficulty, cursor int) {
	lines := []string{
		"STAR DODGER",
		"",
		"Select difficulty:",
	}
	for i, d := range menuDifficulties {
		marker := "  "
		if i == cursor {
			marker = "▸ "
		}
		name := string(d)
		if d == current {
			name += " ✦"
		}
		lines = append(lines, marker+name)
	}
	lines = append(lines, "", "enter: start   q: quit")

	drawCenteredBox(dst, lines)
}

// drawGameOver draws the end-of-round overlay with the announcement line.
func drawGameOver(dst *core.Screen, announcement string) {
	drawCenteredBox(dst, []string{
		announcement,
		"",
		"Press R to restart",
	})
}

// drawCenteredBox draws a bordered message box in the center of the screen.
func drawCenteredBox(dst *core.Screen, lines []string) {
	w := dst.Width()
	h := dst.Height()

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 6
	boxH := len(lines) + 2
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	for i, l := range lines {
		lx := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(lx, boxY+1+i, l, core.ColorBrightWhite)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
