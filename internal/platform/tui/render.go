package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. Piece colors use the exact
// palette so terminals with true color match the canvas frontend.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorNone: lipgloss.NewStyle(),
		core.ColorGray: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorDim:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
	for _, c := range []core.Color{
		core.ColorRed, core.ColorGreen, core.ColorBlue, core.ColorYellow,
		core.ColorMagenta, core.ColorCyan, core.ColorOrange, core.ColorWhite,
	} {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.String()))
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

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
				style = colorStyles[core.ColorNone]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
