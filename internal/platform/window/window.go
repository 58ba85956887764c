// Package window provides the ebiten canvas frontend for blockfall.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// panelW is the HUD width in pixels to the right of the well.
const panelW = 180

// Options configures the canvas frontend.
type Options struct {
	Player string
	Store  *storage.Store // Optional; nil disables high scores
	Logger *log.Logger    // Optional; nil discards
}

// keyBindings maps ebiten keys to game commands in priority order.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyArrowDown, core.ActionSoftDrop},
	{ebiten.KeyS, core.ActionSoftDrop},
	{ebiten.KeyArrowUp, core.ActionRotate},
	{ebiten.KeyW, core.ActionRotate},
	{ebiten.KeyX, core.ActionRotate},
	{ebiten.KeyEnter, core.ActionStart},
	{ebiten.KeyR, core.ActionStart},
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
}

// Game implements ebiten.Game on top of a session.
type Game struct {
	session *blockfall.Session
	clock   blockfall.FrameClock
	logger  *log.Logger
	player  string
	best    int

	blockSize int
	trail     bool
	frame     time.Duration // Simulated time per Update

	// justPressed reports edge-triggered key presses; replaced in tests.
	justPressed func(ebiten.Key) bool
}

// New wires a session to the canvas. The final score of every game is saved
// to the store when one is given.
func New(session *blockfall.Session, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	cfg := session.Config()

	g := &Game{
		session:     session,
		logger:      opts.Logger,
		player:      opts.Player,
		blockSize:   cfg.Window.BlockSize,
		trail:       cfg.Window.Trail,
		frame:       time.Second / ebiten.DefaultTPS,
		justPressed: inpututil.IsKeyJustPressed,
	}

	if opts.Store != nil {
		best, err := opts.Store.HighScore()
		if err != nil {
			g.logger.Warn("could not load high score", "error", err)
		}
		g.best = best
	}

	session.Subscribe(blockfall.ListenerFuncs{
		OnGameOver: func(score int) {
			g.logger.Info("game over", "player", g.player, "score", score, "lines", session.Lines())
			g.best = max(g.best, score)
			if opts.Store == nil || score == 0 {
				return
			}
			if _, err := opts.Store.SaveScore(g.player, score, session.Lines()); err != nil {
				g.logger.Error("could not save score", "error", err)
			}
		},
	})
	return g
}

// action returns the first bound key pressed this frame.
func (g *Game) action() core.Action {
	for _, b := range keyBindings {
		if g.justPressed(b.key) {
			return b.action
		}
	}
	return core.ActionNone
}

// Update applies input and advances gravity by one frame.
func (g *Game) Update() error {
	switch a := g.action(); a {
	case core.ActionNone:
	case core.ActionQuit:
		return ebiten.Termination
	default:
		g.session.Apply(a)
	}

	for _, ev := range g.clock.Advance(g.session, g.frame) {
		if ev.Lines > 0 {
			g.logger.Debug("lines cleared", "lines", ev.Lines, "score", g.session.Score())
		}
	}
	return nil
}

// Layout returns the fixed logical canvas size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.Size()
}

// Size returns the canvas size in pixels: the well plus the HUD panel.
func (g *Game) Size() (int, int) {
	cfg := g.session.Config()
	return cfg.Board.Width*g.blockSize + panelW, cfg.Board.Height * g.blockSize
}

// Run opens the window and blocks until it is closed.
func Run(session *blockfall.Session, opts Options) error {
	g := New(session, opts)
	w, h := g.Size()

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("blockfall")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
