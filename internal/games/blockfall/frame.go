package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// Point is a board coordinate.
type Point struct {
	X, Y int
}

// Frame is an immutable copy of everything a renderer paints.
type Frame struct {
	Width, Height int
	Cells         [][]core.Color // Locked cells, Cells[y][x]
	Piece         *Piece         // Active piece; nil while idle
	Phase         Phase
	Score         int
	Lines         int
	IntervalMS    int
}

// Frame captures the session for rendering.
func (s *Session) Frame() Frame {
	f := Frame{
		Width:      s.engine.Board().Width(),
		Height:     s.engine.Board().Height(),
		Cells:      s.engine.Board().Rows(),
		Phase:      s.phase,
		Score:      s.engine.Score(),
		Lines:      s.engine.Lines(),
		IntervalMS: s.engine.IntervalMS(),
	}
	if s.phase != PhaseIdle {
		p := s.engine.Piece()
		f.Piece = &p
	}
	return f
}

// PieceCells returns the on-board cells of the active piece.
func (f Frame) PieceCells() []Point {
	if f.Piece == nil {
		return nil
	}
	var pts []Point
	f.Piece.each(func(x, y int) {
		if x >= 0 && x < f.Width && y >= 0 && y < f.Height {
			pts = append(pts, Point{X: x, Y: y})
		}
	})
	return pts
}

// Trail returns the cells from just below each piece cell down to the floor,
// skipping cells covered by the piece itself.
func (f Frame) Trail() []Point {
	cells := f.PieceCells()
	covered := make(map[Point]bool, len(cells))
	for _, p := range cells {
		covered[p] = true
	}

	var trail []Point
	seen := make(map[Point]bool)
	for _, p := range cells {
		for y := p.Y + 1; y < f.Height; y++ {
			pt := Point{X: p.X, Y: y}
			if covered[pt] || seen[pt] {
				continue
			}
			seen[pt] = true
			trail = append(trail, pt)
		}
	}
	return trail
}

// Snapshot captures the session state for determinism checks and debugging.
type Snapshot struct {
	Epoch      uint64
	Phase      Phase
	Score      int
	Lines      int
	IntervalMS int
	Piece      Kind
	PieceX     int
	PieceY     int
	PieceShape string
	Board      string
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	p := s.engine.Piece()
	return Snapshot{
		Epoch:      s.epoch,
		Phase:      s.phase,
		Score:      s.engine.Score(),
		Lines:      s.engine.Lines(),
		IntervalMS: s.engine.IntervalMS(),
		Piece:      p.Kind,
		PieceX:     p.X,
		PieceY:     p.Y,
		PieceShape: p.Shape.String(),
		Board:      s.engine.Board().String(),
	}
}
