package blockfall

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

func TestFrameClockIdle(t *testing.T) {
	var c FrameClock
	s := NewSession(config.Default(), 1)
	assert.Nil(t, c.Advance(s, 10*time.Second))
}

func TestFrameClockAccumulates(t *testing.T) {
	var c FrameClock
	s := newScriptedSession(KindO)
	s.Start()

	assert.Empty(t, c.Advance(s, 500*time.Millisecond))
	assert.Equal(t, []Event{{Kind: EventMoved}}, c.Advance(s, 500*time.Millisecond))
	assert.Len(t, c.Advance(s, 2500*time.Millisecond), 2)
	assert.Equal(t, 3, s.Snapshot().PieceY)
}

func TestFrameClockResetsOnRestart(t *testing.T) {
	var c FrameClock
	s := newScriptedSession(KindO)
	s.Start()

	c.Advance(s, 900*time.Millisecond)
	s.Apply(core.ActionStart)

	assert.Empty(t, c.Advance(s, 600*time.Millisecond), "time from the old game is discarded")
	assert.Len(t, c.Advance(s, 400*time.Millisecond), 1)
}

func TestFrameClockStopsAtGameOver(t *testing.T) {
	var c FrameClock
	s := newScriptedSession(KindO)
	s.Start()
	spawnBlocker(s)

	events := c.Advance(s, time.Minute)
	require.Len(t, events, 1)
	assert.Equal(t, EventGameOver, events[0].Kind)
	assert.Nil(t, c.Advance(s, time.Minute))
}
