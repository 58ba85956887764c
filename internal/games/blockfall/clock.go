package blockfall

import "time"

// FrameClock drives a session from a frame-stepped loop. Each Advance adds the
// frame's elapsed time and fires as many ticks as the session interval allows.
// A new epoch discards time accumulated for the previous game.
type FrameClock struct {
	epoch   uint64
	elapsed time.Duration
}

// Advance feeds dt into the clock and returns the events of the ticks it fired.
func (c *FrameClock) Advance(s *Session, dt time.Duration) []Event {
	if c.epoch != s.Epoch() {
		c.epoch = s.Epoch()
		c.elapsed = 0
	}
	if s.Phase() != PhasePlaying {
		c.elapsed = 0
		return nil
	}

	c.elapsed += dt
	var events []Event
	for s.Phase() == PhasePlaying && c.elapsed >= s.Interval() {
		c.elapsed -= s.Interval()
		events = append(events, s.Tick())
	}
	return events
}
