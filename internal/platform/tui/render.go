package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sakhare12/selfstalker/internal/core"
	"github.com/sakhare12/selfstalker/internal/stalker"
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

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
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

// hudRows is the number of screen rows reserved above the arena.
const hudRows = 1

// DrawSnapshot renders an engine snapshot onto the screen buffer. The arena
// uses world coordinates; everything scales to the cell grid here, with one
// row reserved for the HUD.
func DrawSnapshot(s *core.Screen, snap stalker.Snapshot) {
	s.Clear()

	switch snap.Phase {
	case stalker.PhaseMenu:
		drawMenu(s, snap)
		return
	case stalker.PhasePlaying, stalker.PhasePaused, stalker.PhaseGameOver:
		drawArena(s, snap)
	}

	drawHUD(s, snap)

	switch snap.Phase {
	case stalker.PhasePaused:
		drawPauseOverlay(s)
	case stalker.PhaseGameOver:
		drawGameOverOverlay(s, snap)
	}
}

func drawArena(s *core.Screen, snap stalker.Snapshot) {
	w, h := s.Width(), s.Height()-hudRows
	if w < 1 || h < 1 || snap.ArenaW <= 0 || snap.ArenaH <= 0 {
		return
	}
	sx := float64(w) / snap.ArenaW
	sy := float64(h) / snap.ArenaH

	// Screen shake: a horizontal jitter whose direction flips each tick and
	// whose amplitude follows the decaying shake value.
	shakeX := 0
	if snap.Shake >= 1 {
		shakeX = 1
		if snap.Tick%2 == 0 {
			shakeX = -1
		}
	}

	plot := func(p core.Vec2, r rune, c core.Color) {
		x := int(p.X*sx) + shakeX
		y := int(p.Y*sy) + hudRows
		if x >= 0 && x < w && y >= hudRows && y < s.Height() {
			s.SetColored(x, y, r, c)
		}
	}

	// Back to front: trail, obstacles, pickup, particles, shadow, player.
	for i, p := range snap.Trail {
		if i%6 == 0 {
			plot(p, '·', core.ColorGray)
		}
	}
	for _, ob := range snap.Obstacles {
		plot(ob.Pos, ob.Symbol, core.ColorGreen)
	}
	if snap.HasPickup {
		plot(snap.Pickup.Pos, '◉', core.ColorBrightYellow)
	}
	for _, pt := range snap.Particles {
		col := pt.Color
		if pt.Life < 0.4 {
			col = core.ColorGray
		}
		plot(pt.Pos, '*', col)
	}
	if snap.HasShadow {
		plot(snap.Shadow, '▓', core.ColorBrightMagenta)
	}

	playerColor := core.ColorBrightCyan
	if snap.Hidden {
		playerColor = core.ColorGray
	}
	plot(snap.Player, '@', playerColor)
}

func drawHUD(s *core.Screen, snap stalker.Snapshot) {
	hud := fmt.Sprintf(" Score: %d   Best: %d", snap.Score, snap.HighScore)
	s.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	if snap.Hidden {
		s.DrawTextColored(s.Width()-10, 0, "[hidden]", core.ColorGreen)
	}
}

func drawMenu(s *core.Screen, snap stalker.Snapshot) {
	cy := s.Height() / 2
	s.DrawTextCentered(cy-4, "S E L F   S T A L K E R")
	s.DrawTextCentered(cy-2, "You can't hide from yourself.")
	s.DrawTextCentered(cy, "Collect pickups. Your own trail hunts you.")
	s.DrawTextCentered(cy+1, "Obstacles conceal you. Touching them kills you.")
	if snap.HighScore > 0 {
		s.DrawTextCentered(cy+3, fmt.Sprintf("Best: %d", snap.HighScore))
	}
	s.DrawTextCentered(cy+5, "enter: play   q: quit")
}

func drawPauseOverlay(s *core.Screen) {
	cy := s.Height() / 2
	s.DrawTextCentered(cy, "P A U S E D")
	s.DrawTextCentered(cy+2, "p: resume   b: menu")
}

func drawGameOverOverlay(s *core.Screen, snap stalker.Snapshot) {
	cy := s.Height() / 2
	s.DrawTextCentered(cy-3, "C A U G H T")
	s.DrawTextCentered(cy-1, fmt.Sprintf("Score: %d   Best: %d", snap.Score, snap.HighScore))

	epitaph := snap.Epitaph
	if snap.EpitaphPending {
		epitaph = "..."
	}
	if epitaph != "" {
		s.DrawTextCentered(cy+1, epitaph)
	}

	s.DrawTextCentered(cy+3, "r: again   b: menu   q: quit")
}
