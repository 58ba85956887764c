package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Terminal layout constants
const (
	cellW    = 2  // Characters per board cell
	panelW   = 22 // HUD panel width
	panelGap = 2
)

// RenderOptions carries HUD data that lives outside the session.
type RenderOptions struct {
	Best   int    // Best stored score, 0 if unknown
	Player string // Shown in the HUD when set
	Trail  bool   // Paint the drop trail below the active piece
}

// Render draws a frame into a character screen: the well on the left, the HUD
// panel on the right, and an overlay for idle and game over.
func Render(dst *core.Screen, f Frame, opts RenderOptions) {
	dst.Clear()

	wellW := f.Width*cellW + 2
	wellH := f.Height + 2
	totalW := wellW + panelGap + panelW
	if dst.Width() < wellW || dst.Height() < wellH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", wellW, wellH))
		return
	}

	ox := core.Clamp((dst.Width()-totalW)/2, 0, dst.Width())
	oy := core.Clamp((dst.Height()-wellH)/2, 0, dst.Height())

	dst.DrawBox(core.NewRect(ox, oy, wellW, wellH), core.ColorGray)
	renderWell(dst, f, opts, ox+1, oy+1)
	if dst.Width() >= totalW {
		renderHUD(dst, f, opts, ox+wellW+panelGap, oy)
	}

	switch f.Phase {
	case PhaseIdle:
		renderOverlay(dst, "BLOCKFALL", "Press Enter to start")
	case PhaseGameOver:
		renderOverlay(dst, fmt.Sprintf("Game Over - Score: %d", f.Score), "Press R to restart")
	}
}

func renderWell(dst *core.Screen, f Frame, opts RenderOptions, x0, y0 int) {
	put := func(p Point, r rune, c core.Color) {
		for i := range cellW {
			dst.SetCell(x0+p.X*cellW+i, y0+p.Y, r, c)
		}
	}

	if opts.Trail && f.Phase == PhasePlaying {
		for _, p := range f.Trail() {
			put(p, '░', core.ColorDim)
		}
	}

	for y, row := range f.Cells {
		for x, c := range row {
			if c != core.ColorNone {
				put(Point{X: x, Y: y}, '█', c)
			}
		}
	}

	if f.Piece != nil {
		for _, p := range f.PieceCells() {
			put(p, '█', f.Piece.Color)
		}
	}
}

func renderHUD(dst *core.Screen, f Frame, opts RenderOptions, x, y int) {
	lines := []struct {
		text  string
		color core.Color
	}{
		{"BLOCKFALL", core.ColorCyan},
		{"", core.ColorNone},
		{fmt.Sprintf("Score  %d", f.Score), core.ColorWhite},
		{fmt.Sprintf("Lines  %d", f.Lines), core.ColorWhite},
		{fmt.Sprintf("Best   %d", max(opts.Best, f.Score)), core.ColorYellow},
		{fmt.Sprintf("Speed  %dms", f.IntervalMS), core.ColorGray},
	}
	if opts.Player != "" {
		lines = append(lines, struct {
			text  string
			color core.Color
		}{fmt.Sprintf("Player %s", opts.Player), core.ColorGray})
	}

	controls := []string{
		"",
		"←/→   move",
		"↑     rotate",
		"↓     soft drop",
		"Enter start",
		"R     restart",
		"Q     quit",
	}

	row := y
	for _, l := range lines {
		dst.DrawTextColored(x, row, l.text, l.color)
		row++
	}
	for _, c := range controls {
		dst.DrawTextColored(x, row, c, core.ColorGray)
		row++
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	cx, cy := dst.Bounds().Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorNone)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorGray)
}
