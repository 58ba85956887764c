package blockfall

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// Phase is the session state machine: Idle -> Playing -> GameOver.
// Start re-enters Playing from any phase.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Listener receives score and terminal-state notifications.
// Both methods run synchronously inside Start, Apply or Tick.
type Listener interface {
	// ScoreChanged is called with the new score whenever it changes,
	// including the reset to 0 on start.
	ScoreChanged(score int)

	// GameOver is called exactly once per game with the final score.
	GameOver(score int)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnScore    func(score int)
	OnGameOver func(score int)
}

// ScoreChanged implements Listener.
func (l ListenerFuncs) ScoreChanged(score int) {
	if l.OnScore != nil {
		l.OnScore(score)
	}
}

// GameOver implements Listener.
func (l ListenerFuncs) GameOver(score int) {
	if l.OnGameOver != nil {
		l.OnGameOver(score)
	}
}

// Session holds all mutable state for one player: the engine of the current
// game, the phase, and the tick epoch. Sessions are independent; hosts may run
// as many as they like, but each one must be driven from a single goroutine.
type Session struct {
	cfg       config.Config
	rng       *rand.Rand
	picker    func(*rand.Rand) Picker
	engine    *Engine
	phase     Phase
	epoch     uint64
	listeners []Listener
}

// NewSession creates an idle session. The seed makes the sequence of games
// reproducible.
func NewSession(cfg config.Config, seed int64) *Session {
	return &Session{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		picker: UniformPicker,
		engine: NewEngine(cfg, nil),
	}
}

// Subscribe registers a listener.
func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Start begins a new game, discarding any game in progress. The engine is
// rebuilt before the epoch advances, so a tick armed for the previous game
// can be recognised as stale by comparing epochs.
func (s *Session) Start() {
	engine := NewEngine(s.cfg, s.picker(rand.New(rand.NewSource(s.rng.Int63()))))
	engine.Spawn()

	s.engine = engine
	s.phase = PhasePlaying
	s.epoch++
	s.notifyScore()

	if engine.Collides(0, 0, engine.piece.Shape) {
		engine.over = true
		s.finish()
	}
}

// Apply executes a player command. Start is honoured in every phase; the
// movement commands only while playing. Returns whether state changed.
func (s *Session) Apply(a core.Action) bool {
	if a == core.ActionStart {
		s.Start()
		return true
	}
	if s.phase != PhasePlaying || !a.Playing() {
		return false
	}

	switch a {
	case core.ActionLeft:
		return s.engine.TryMove(-1, 0)
	case core.ActionRight:
		return s.engine.TryMove(1, 0)
	case core.ActionSoftDrop:
		return s.engine.TryMove(0, 1)
	case core.ActionRotate:
		return s.engine.Rotate()
	}
	return false
}

// Tick is the gravity entry point. Hosts call it once per elapsed Interval
// while the phase is Playing; outside play it does nothing.
func (s *Session) Tick() Event {
	if s.phase != PhasePlaying {
		return Event{}
	}

	ev := s.engine.Step()
	if ev.Lines > 0 {
		s.notifyScore()
	}
	if ev.Kind == EventGameOver {
		s.finish()
	}
	return ev
}

func (s *Session) finish() {
	s.phase = PhaseGameOver
	for _, l := range s.listeners {
		l.GameOver(s.engine.Score())
	}
}

func (s *Session) notifyScore() {
	for _, l := range s.listeners {
		l.ScoreChanged(s.engine.Score())
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Epoch identifies the current game. It increments on every Start.
func (s *Session) Epoch() uint64 {
	return s.epoch
}

// Interval returns the current gravity interval.
func (s *Session) Interval() time.Duration {
	return time.Duration(s.engine.IntervalMS()) * time.Millisecond
}

// Score returns the score of the current or last game.
func (s *Session) Score() int {
	return s.engine.Score()
}

// Lines returns the rows cleared in the current or last game.
func (s *Session) Lines() int {
	return s.engine.Lines()
}

// Config returns the session's configuration.
func (s *Session) Config() config.Config {
	return s.cfg
}

// State returns the host-facing summary.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.engine.Score(),
		Lines:    s.engine.Lines(),
		Playing:  s.phase == PhasePlaying,
		GameOver: s.phase == PhaseGameOver,
	}
}
