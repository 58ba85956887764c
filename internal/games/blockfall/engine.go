package blockfall

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// Piece is the active falling tetromino. X and Y locate the top-left corner
// of its shape matrix in board coordinates.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color core.Color
	X, Y  int
}

// each calls fn with the board coordinates of every occupied cell.
func (p Piece) each(fn func(x, y int)) {
	for row := range p.Shape {
		for col, filled := range p.Shape[row] {
			if filled {
				fn(p.X+col, p.Y+row)
			}
		}
	}
}

// Picker chooses the kind of the next piece.
type Picker func() Kind

// UniformPicker draws uniformly from the catalog.
func UniformPicker(rng *rand.Rand) Picker {
	return func() Kind {
		return Kind(rng.Intn(KindCount))
	}
}

// EventKind classifies the outcome of a gravity step.
type EventKind int

const (
	EventNone     EventKind = iota // Nothing happened (not playing)
	EventMoved                     // Piece fell one row
	EventLocked                    // Piece locked; Lines rows cleared; next piece spawned
	EventGameOver                  // Piece locked and the next spawn collided
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventMoved:
		return "moved"
	case EventLocked:
		return "locked"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is the result of one gravity step.
type Event struct {
	Kind  EventKind
	Lines int // Rows cleared by the lock, if any
}

// Engine owns the board and the single active piece for one game.
type Engine struct {
	board  *Board
	piece  Piece
	pick   Picker
	curve  config.SpeedCurve
	points int

	score      int
	lines      int
	intervalMS int
	over       bool
}

// NewEngine creates an engine with an empty board and no active piece.
// Call Spawn before stepping.
func NewEngine(cfg config.Config, pick Picker) *Engine {
	curve := config.NewSpeedCurve(cfg.Speed)
	return &Engine{
		board:      NewBoard(cfg.Board.Width, cfg.Board.Height),
		pick:       pick,
		curve:      curve,
		points:     cfg.Scoring.PointsPerLine,
		intervalMS: curve.IntervalMS(0),
	}
}

// Spawn replaces the active piece with a random one at the top center.
// It does not check for a spawn collision.
func (e *Engine) Spawn() Piece {
	t := Lookup(e.pick())
	e.piece = Piece{
		Kind:  t.Kind,
		Shape: t.Shape,
		Color: t.Color,
		X:     e.board.Width()/2 - t.Shape.Width()/2,
		Y:     0,
	}
	return e.piece
}

// Collides reports whether shape, placed at the active piece position plus
// (dx, dy), leaves the board sideways or through the floor, or overlaps a
// locked cell. Rows above the board never collide with locked cells.
func (e *Engine) Collides(dx, dy int, shape Shape) bool {
	for row := range shape {
		for col, filled := range shape[row] {
			if !filled {
				continue
			}
			x := e.piece.X + col + dx
			y := e.piece.Y + row + dy
			if x < 0 || x >= e.board.Width() || y >= e.board.Height() {
				return true
			}
			if y >= 0 && e.board.Occupied(x, y) {
				return true
			}
		}
	}
	return false
}

// TryMove shifts the active piece when the target is free.
func (e *Engine) TryMove(dx, dy int) bool {
	if e.Collides(dx, dy, e.piece.Shape) {
		return false
	}
	e.piece.X += dx
	e.piece.Y += dy
	return true
}

// Rotate turns the active piece clockwise in place. A rotation that would
// collide is discarded.
func (e *Engine) Rotate() bool {
	rotated := RotateClockwise(e.piece.Shape)
	if e.Collides(0, 0, rotated) {
		return false
	}
	e.piece.Shape = rotated
	return true
}

// Step applies one row of gravity. When the piece cannot fall it is merged,
// full rows are cleared, score and speed are updated, and the next piece is
// spawned. A colliding spawn ends the game; later steps do nothing.
func (e *Engine) Step() Event {
	if e.over {
		return Event{}
	}
	if e.TryMove(0, 1) {
		return Event{Kind: EventMoved}
	}

	e.board.Merge(e.piece)
	n := e.board.ClearLines()
	if n > 0 {
		e.score += n * e.points
		e.lines += n
		e.intervalMS = e.curve.IntervalMS(e.score)
	}

	e.Spawn()
	if e.Collides(0, 0, e.piece.Shape) {
		e.over = true
		return Event{Kind: EventGameOver, Lines: n}
	}
	return Event{Kind: EventLocked, Lines: n}
}

// Board returns the engine's board.
func (e *Engine) Board() *Board {
	return e.board
}

// Piece returns a copy of the active piece.
func (e *Engine) Piece() Piece {
	p := e.piece
	p.Shape = p.Shape.Clone()
	return p
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Lines returns the number of rows cleared so far.
func (e *Engine) Lines() int {
	return e.lines
}

// IntervalMS returns the current gravity interval in milliseconds.
func (e *Engine) IntervalMS() int {
	return e.intervalMS
}

// Over reports whether a spawn has collided.
func (e *Engine) Over() bool {
	return e.over
}
