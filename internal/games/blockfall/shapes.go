// Package blockfall implements the falling-block simulation: the board, the
// piece engine, and the session state machine that hosts drive.
package blockfall

import (
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Shape is a rows x columns occupancy matrix.
type Shape [][]bool

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// KindCount is the size of the shape catalog.
const KindCount = 7

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return "?"
	}
	return "IOTLJSZ"[k : k+1]
}

// Tetromino pairs a rotation-zero shape with its fixed color.
type Tetromino struct {
	Kind  Kind
	Shape Shape
	Color core.Color
}

var catalog = [KindCount]Tetromino{
	{KindI, parseShape("XXXX"), core.ColorRed},
	{KindO, parseShape("XX", "XX"), core.ColorGreen},
	{KindT, parseShape("XXX", ".X."), core.ColorBlue},
	{KindL, parseShape("XXX", "X.."), core.ColorYellow},
	{KindJ, parseShape("XXX", "..X"), core.ColorMagenta},
	{KindS, parseShape("XX.", ".XX"), core.ColorCyan},
	{KindZ, parseShape(".XX", "XX."), core.ColorOrange},
}

// Lookup returns a copy of the catalog entry for k.
func Lookup(k Kind) Tetromino {
	t := catalog[k]
	t.Shape = t.Shape.Clone()
	return t
}

// parseShape builds a shape from rows where 'X' marks an occupied cell.
func parseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, ch := range row {
			s[y][x] = ch == 'X'
		}
	}
	return s
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for y := range s {
		c[y] = append([]bool(nil), s[y]...)
	}
	return c
}

// Equal reports whether two shapes have the same dimensions and cells.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(o[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the shape with 'X' and '.' rows separated by '/'.
func (s Shape) String() string {
	rows := make([]string, len(s))
	for y, row := range s {
		var b strings.Builder
		for _, v := range row {
			if v {
				b.WriteByte('X')
			} else {
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "/")
}

// RotateClockwise returns the shape turned 90 degrees clockwise:
// new[i][j] = old[rows-1-j][i]. The input is not modified.
func RotateClockwise(s Shape) Shape {
	rows, cols := s.Height(), s.Width()
	out := make(Shape, cols)
	for i := range cols {
		out[i] = make([]bool, rows)
		for j := range rows {
			out[i][j] = s[rows-1-j][i]
		}
	}
	return out
}
