// Package config provides YAML-based game configuration loading and the
// speed curve for blockfall.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config contains all tunables for a blockfall session and its frontends.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Scoring ScoringConfig `yaml:"scoring"`
	Speed   SpeedConfig   `yaml:"speed"`
	Window  WindowConfig  `yaml:"window"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScoringConfig defines points awarded on a lock.
type ScoringConfig struct {
	PointsPerLine int `yaml:"points_per_line"`
}

// SpeedConfig defines the gravity interval curve.
type SpeedConfig struct {
	InitialMS     int     `yaml:"initial_ms"`
	MinMS         int     `yaml:"min_ms"`
	DecayPerPoint float64 `yaml:"decay_per_point"` // Milliseconds removed per point scored
}

// WindowConfig defines canvas frontend parameters.
type WindowConfig struct {
	BlockSize int  `yaml:"block_size"` // Pixels per cell
	Trail     bool `yaml:"trail"`      // Paint the drop trail under the active piece
}

// Validate checks that the config describes a playable game.
func (c Config) Validate() error {
	switch {
	case c.Board.Width < 4:
		return fmt.Errorf("%w: board.width %d is below 4", ErrInvalid, c.Board.Width)
	case c.Board.Height < 4:
		return fmt.Errorf("%w: board.height %d is below 4", ErrInvalid, c.Board.Height)
	case c.Scoring.PointsPerLine < 0:
		return fmt.Errorf("%w: scoring.points_per_line must not be negative", ErrInvalid)
	case c.Speed.MinMS <= 0:
		return fmt.Errorf("%w: speed.min_ms must be positive", ErrInvalid)
	case c.Speed.InitialMS < c.Speed.MinMS:
		return fmt.Errorf("%w: speed.initial_ms %d is below speed.min_ms %d", ErrInvalid, c.Speed.InitialMS, c.Speed.MinMS)
	case c.Speed.DecayPerPoint < 0:
		return fmt.Errorf("%w: speed.decay_per_point must not be negative", ErrInvalid)
	case c.Window.BlockSize <= 0:
		return fmt.Errorf("%w: window.block_size must be positive", ErrInvalid)
	}
	return nil
}
