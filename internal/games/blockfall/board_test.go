package blockfall

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestClearLines(t *testing.T) {
	tests := []struct {
		name    string
		pattern []string // bottom rows of a 4x6 board
		cleared int
		want    []string // bottom rows after clearing
	}{
		{
			name:    "nothing full",
			pattern: []string{"#.#.", "###."},
			cleared: 0,
			want:    []string{"#.#.", "###."},
		},
		{
			name:    "bottom row",
			pattern: []string{".#..", "####"},
			cleared: 1,
			want:    []string{"....", ".#.."},
		},
		{
			name:    "two adjacent rows",
			pattern: []string{"#...", "####", "####"},
			cleared: 2,
			want:    []string{"....", "....", "#..."},
		},
		{
			name:    "non-adjacent rows",
			pattern: []string{"####", ".#..", "####", "#..#"},
			cleared: 2,
			want:    []string{"....", "....", ".#..", "#..#"},
		},
		{
			name:    "three rows with gaps between",
			pattern: []string{"####", "#...", "####", "..#.", "####"},
			cleared: 3,
			want:    []string{"....", "....", "....", "#...", "..#."},
		},
		{
			name:    "every row full",
			pattern: []string{"####", "####", "####", "####", "####", "####"},
			cleared: 6,
			want:    []string{"....", "....", "....", "....", "....", "...."},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFrom(t, 4, 6, tc.pattern...)
			n := b.ClearLines()
			assert.Equal(t, tc.cleared, n)

			want := append(emptyRows(6-len(tc.want), 4), tc.want...)
			assert.Equal(t, strings.Join(want, "\n"), b.String())
			assert.Equal(t, 6, b.Height(), "row count is invariant")
		})
	}
}

func TestClearLinesMatchesFilter(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const w, h = 5, 12

	for trial := range 200 {
		b := NewBoard(w, h)
		for y := range h {
			full := rng.Intn(3) == 0
			for x := range w {
				if full || rng.Intn(2) == 0 {
					b.cells[y][x] = core.Color(1 + rng.Intn(7))
				}
			}
		}

		// Expected: non-full rows keep their order, padded with empty rows on top.
		var kept [][]core.Color
		for y := range h {
			if !b.rowFull(y) {
				kept = append(kept, append([]core.Color(nil), b.cells[y]...))
			}
		}
		want := make([][]core.Color, h-len(kept))
		for i := range want {
			want[i] = make([]core.Color, w)
		}
		want = append(want, kept...)

		n := b.ClearLines()
		require.Equal(t, h-len(kept), n, "trial %d", trial)
		require.Equal(t, want, b.Rows(), "trial %d", trial)
	}
}

func TestMergeWritesColor(t *testing.T) {
	b := NewBoard(10, 20)
	b.Merge(Piece{Shape: parseShape("XXX", ".X."), Color: core.ColorBlue, X: 2, Y: 5})

	assert.Equal(t, core.ColorBlue, b.Cell(2, 5))
	assert.Equal(t, core.ColorBlue, b.Cell(3, 5))
	assert.Equal(t, core.ColorBlue, b.Cell(4, 5))
	assert.Equal(t, core.ColorBlue, b.Cell(3, 6))
	assert.False(t, b.Occupied(2, 6))
	assert.False(t, b.Occupied(4, 6))
}

func TestMergeSkipsRowsAboveBoard(t *testing.T) {
	b := NewBoard(10, 20)
	b.Merge(Piece{Shape: parseShape("X", "X"), Color: core.ColorRed, X: 0, Y: -1})

	assert.True(t, b.Occupied(0, 0))
	assert.Equal(t, 1, strings.Count(b.String(), "#"))
}

func TestBoardReset(t *testing.T) {
	b := boardFrom(t, 4, 4, "####", "#..#")
	b.Reset()
	assert.Equal(t, strings.Join(emptyRows(4, 4), "\n"), b.String())
}

func TestCellOutOfBounds(t *testing.T) {
	b := boardFrom(t, 4, 4, "####")
	assert.Equal(t, core.ColorNone, b.Cell(-1, 3))
	assert.Equal(t, core.ColorNone, b.Cell(4, 3))
	assert.Equal(t, core.ColorNone, b.Cell(0, 4))
	assert.Equal(t, core.ColorRed, b.Cell(0, 3))
}
