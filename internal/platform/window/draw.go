package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var (
	background = color.RGBA{R: 16, G: 16, B: 24, A: 255}
	wellColor  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	panelColor = color.RGBA{R: 28, G: 28, B: 40, A: 255}
	trailColor = color.RGBA{R: 255, G: 255, B: 255, A: 20}
	glossColor = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	dimOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

// rgba converts a palette color to an opaque image color.
func rgba(c core.Color) color.RGBA {
	v := c.RGB()
	return color.RGBA{R: v.R, G: v.G, B: v.B, A: 255}
}

// glossInset returns the inset of the translucent highlight inside a block.
func glossInset(size int) float32 {
	return float32(size) / 5
}

// Draw paints the well, the active piece, the HUD and any overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	f := g.session.Frame()
	bs := g.blockSize
	wellW := float32(f.Width * bs)

	vector.DrawFilledRect(screen, 0, 0, wellW, float32(f.Height*bs), wellColor, false)
	vector.DrawFilledRect(screen, wellW, 0, panelW, float32(f.Height*bs), panelColor, false)

	if g.trail && f.Phase == blockfall.PhasePlaying {
		for _, p := range f.Trail() {
			vector.DrawFilledRect(screen, float32(p.X*bs), float32(p.Y*bs), float32(bs), float32(bs), trailColor, false)
		}
	}

	for y, row := range f.Cells {
		for x, c := range row {
			if c != core.ColorNone {
				g.drawBlock(screen, x, y, c)
			}
		}
	}
	if f.Piece != nil {
		for _, p := range f.PieceCells() {
			g.drawBlock(screen, p.X, p.Y, f.Piece.Color)
		}
	}

	g.drawHUD(screen, f, int(wellW)+12)

	switch f.Phase {
	case blockfall.PhaseIdle:
		g.drawOverlay(screen, "BLOCKFALL", "Press Enter to start")
	case blockfall.PhaseGameOver:
		g.drawOverlay(screen, fmt.Sprintf("Game Over - Score: %d", f.Score), "Press R to restart")
	}
}

// drawBlock paints one cell with a 1px gap and a gloss square.
func (g *Game) drawBlock(screen *ebiten.Image, x, y int, c core.Color) {
	bs := float32(g.blockSize)
	px, py := float32(x)*bs, float32(y)*bs

	vector.DrawFilledRect(screen, px+1, py+1, bs-2, bs-2, rgba(c), false)
	inset := glossInset(g.blockSize)
	vector.DrawFilledRect(screen, px+inset, py+inset, bs/2-inset, bs/2-inset, glossColor, false)
}

func (g *Game) drawHUD(screen *ebiten.Image, f blockfall.Frame, x int) {
	lines := []string{
		"BLOCKFALL",
		"",
		fmt.Sprintf("Score  %d", f.Score),
		fmt.Sprintf("Lines  %d", f.Lines),
		fmt.Sprintf("Best   %d", max(g.best, f.Score)),
		fmt.Sprintf("Speed  %dms", f.IntervalMS),
	}
	if g.player != "" {
		lines = append(lines, "Player "+g.player)
	}
	lines = append(lines,
		"",
		"Arrows  move",
		"Up      rotate",
		"Down    soft drop",
		"Enter   start",
		"R       restart",
		"Esc     quit",
	)

	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x, 12+i*16)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image, line1, line2 string) {
	w, h := g.Size()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), dimOverlay, false)

	// DebugPrint glyphs are 6x16.
	ebitenutil.DebugPrintAt(screen, line1, (w-len(line1)*6)/2, h/2-20)
	ebitenutil.DebugPrintAt(screen, line2, (w-len(line2)*6)/2, h/2+4)
}
