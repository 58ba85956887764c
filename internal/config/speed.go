package config

import (
	"math"
	"time"
)

// SpeedCurve maps a score to the gravity tick interval.
// The interval falls linearly with score and never drops below the floor.
type SpeedCurve struct {
	cfg SpeedConfig
}

// NewSpeedCurve creates a curve from the speed section of a config.
func NewSpeedCurve(cfg SpeedConfig) SpeedCurve {
	return SpeedCurve{cfg: cfg}
}

// IntervalMS returns max(min, floor(initial - score*decay)) in milliseconds.
func (c SpeedCurve) IntervalMS(score int) int {
	// epsilon keeps 1000 - 500*0.8 at 600 despite 0.8 having no exact binary form
	raw := math.Floor(float64(c.cfg.InitialMS) - float64(score)*c.cfg.DecayPerPoint + 1e-9)
	return int(math.Max(float64(c.cfg.MinMS), raw))
}

// Interval returns IntervalMS as a duration.
func (c SpeedCurve) Interval(score int) time.Duration {
	return time.Duration(c.IntervalMS(score)) * time.Millisecond
}
