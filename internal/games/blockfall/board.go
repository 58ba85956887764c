package blockfall

import (
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Board is the fixed-size grid of locked cells.
// A cell holding core.ColorNone is empty; any other color is occupied.
type Board struct {
	width  int
	height int
	cells  [][]core.Color // cells[y][x], row 0 at the top
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]core.Color, height)
	for y := range b.cells {
		b.cells[y] = make([]core.Color, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Occupied reports whether an in-bounds cell is filled.
// Bounds checking is the caller's job.
func (b *Board) Occupied(x, y int) bool {
	return b.cells[y][x] != core.ColorNone
}

// Cell returns the color at (x, y), or ColorNone outside the board.
func (b *Board) Cell(x, y int) core.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return core.ColorNone
	}
	return b.cells[y][x]
}

// Merge locks a piece into the board. The caller must have checked that the
// placement is collision-free. Cells above the top row are dropped.
func (b *Board) Merge(p Piece) {
	p.each(func(x, y int) {
		if y < 0 || x < 0 || x >= b.width || y >= b.height {
			return
		}
		b.cells[y][x] = p.Color
	})
}

// ClearLines removes every full row, shifting the rows above it down and
// inserting an empty row at the top. Returns the number of rows removed.
func (b *Board) ClearLines() int {
	cleared := 0
	for y := b.height - 1; y >= 0; y-- {
		if !b.rowFull(y) {
			continue
		}
		row := b.cells[y]
		copy(b.cells[1:y+1], b.cells[:y])
		clear(row)
		b.cells[0] = row
		cleared++
		y++ // the row above now sits at y
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c == core.ColorNone {
			return false
		}
	}
	return true
}

// Reset empties every cell.
func (b *Board) Reset() {
	for y := range b.cells {
		clear(b.cells[y])
	}
}

// Rows returns a copy of the grid.
func (b *Board) Rows() [][]core.Color {
	rows := make([][]core.Color, b.height)
	for y := range b.cells {
		rows[y] = append([]core.Color(nil), b.cells[y]...)
	}
	return rows
}

// String renders the board as rows of '#' and '.' joined by newlines.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c == core.ColorNone {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
	}
	return sb.String()
}
