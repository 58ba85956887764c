package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/blockfall/internal/storage"
)

func TestScoreRows(t *testing.T) {
	when := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	rows := ScoreRows([]storage.ScoreEntry{
		{Player: "ada", Score: 900, Lines: 9, CreatedAt: when},
		{Player: "bob", Score: 100, Lines: 1},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	want := []string{"#1", "ada", "900", "9", "Mar 14 09:26"}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("rows[0][%d] = %q, want %q", i, rows[0][i], w)
		}
	}
	if rows[1][0] != "#2" || rows[1][4] != "-" {
		t.Errorf("unexpected second row: %v", rows[1])
	}
}

func TestScoreColumnsGrowPlayer(t *testing.T) {
	narrow := ScoreColumns(40)
	wide := ScoreColumns(120)
	if wide[1].Width <= narrow[1].Width {
		t.Errorf("player column should grow with width: %d vs %d", wide[1].Width, narrow[1].Width)
	}
	if len(wide) != 5 {
		t.Errorf("expected 5 columns, got %d", len(wide))
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("expected empty message without a store")
	}
}

func TestScoreboardShowsStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore("ada", 300, 3)
	store.SaveScore("bob", 100, 1)

	m := NewScoreboardModel(store, 100, 30)
	view := m.View()
	if !strings.Contains(view, "2 games") {
		t.Errorf("expected stats line in view:\n%s", view)
	}
	if !strings.Contains(view, "ada") {
		t.Errorf("expected player in table:\n%s", view)
	}
}
