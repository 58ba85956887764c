package blockfall

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

func countCells(scr *core.Screen, r rune, c core.Color) int {
	n := 0
	for y := range scr.Height() {
		for x := range scr.Width() {
			cell := scr.GetCell(x, y)
			if cell.Rune == r && cell.Color == c {
				n++
			}
		}
	}
	return n
}

func TestRenderIdle(t *testing.T) {
	scr := core.NewScreen(80, 24)
	Render(scr, NewSession(config.Default(), 1).Frame(), RenderOptions{})

	out := scr.String()
	assert.Contains(t, out, "Press Enter to start")
	assert.Contains(t, out, "Score  0")
}

func TestRenderPlaying(t *testing.T) {
	s := newScriptedSession(KindI)
	s.Start()
	scr := core.NewScreen(80, 24)

	Render(scr, s.Frame(), RenderOptions{Best: 900, Player: "ada"})
	out := scr.String()
	assert.Equal(t, 4*cellW, countCells(scr, '█', core.ColorRed), "I piece")
	assert.Zero(t, countCells(scr, '░', core.ColorDim))
	assert.Contains(t, out, "Best   900")
	assert.Contains(t, out, "Player ada")
	assert.NotContains(t, out, "Press Enter")

	Render(scr, s.Frame(), RenderOptions{Trail: true})
	assert.Equal(t, 4*19*cellW, countCells(scr, '░', core.ColorDim))
}

func TestRenderGameOver(t *testing.T) {
	f := Frame{Width: 10, Height: 20, Cells: NewBoard(10, 20).Rows(), Phase: PhaseGameOver, Score: 700}
	scr := core.NewScreen(80, 24)
	Render(scr, f, RenderOptions{})

	out := scr.String()
	assert.Contains(t, out, "Game Over - Score: 700")
	assert.Contains(t, out, "Press R to restart")
}

func TestRenderTooSmall(t *testing.T) {
	scr := core.NewScreen(30, 10)
	Render(scr, NewSession(config.Default(), 1).Frame(), RenderOptions{})
	assert.Contains(t, scr.String(), "Window too small")
}

func TestFrameTrail(t *testing.T) {
	f := Frame{
		Width:  10,
		Height: 20,
		Piece:  &Piece{Shape: parseShape("XXX", ".X."), X: 0, Y: 17},
	}

	require.Len(t, f.PieceCells(), 4)
	assert.ElementsMatch(t, []Point{
		{0, 18}, {0, 19},
		{1, 19},
		{2, 18}, {2, 19},
	}, f.Trail())
}

func TestFrameIsCopy(t *testing.T) {
	s := newScriptedSession(KindO)
	s.Start()
	f := s.Frame()
	f.Cells[19][0] = core.ColorRed
	f.Piece.Shape[0][0] = false

	assert.False(t, s.engine.board.Occupied(0, 19))
	assert.True(t, strings.HasPrefix(s.Snapshot().PieceShape, "XX"))
}
