package blockfall

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// sequence returns a picker that yields kinds in order and then repeats the last one.
func sequence(kinds ...Kind) Picker {
	i := 0
	return func() Kind {
		k := kinds[min(i, len(kinds)-1)]
		i++
		return k
	}
}

// newScriptedSession returns a session whose games spawn the given kinds.
func newScriptedSession(kinds ...Kind) *Session {
	s := NewSession(config.Default(), 1)
	s.picker = func(*rand.Rand) Picker { return sequence(kinds...) }
	return s
}

// boardFrom builds a board whose bottom rows match pattern ('#' filled, '.' empty).
func boardFrom(t *testing.T, width, height int, pattern ...string) *Board {
	t.Helper()
	b := NewBoard(width, height)
	top := height - len(pattern)
	for i, row := range pattern {
		require.Len(t, row, width, "pattern row %d", i)
		for x, ch := range row {
			if ch == '#' {
				b.cells[top+i][x] = core.ColorRed
			}
		}
	}
	return b
}

// emptyRows returns n rows of dots for expected board strings.
func emptyRows(n, width int) []string {
	rows := make([]string, n)
	for i := range rows {
		b := make([]byte, width)
		for x := range b {
			b[x] = '.'
		}
		rows[i] = string(b)
	}
	return rows
}

// dropToLock ticks until the active piece locks and returns the lock event.
func dropToLock(t *testing.T, s *Session) Event {
	t.Helper()
	for range 100 {
		ev := s.Tick()
		if ev.Kind != EventMoved {
			return ev
		}
	}
	t.Fatal("piece never locked")
	return Event{}
}

func repeat(s *Session, a core.Action, n int) {
	for range n {
		s.Apply(a)
	}
}
