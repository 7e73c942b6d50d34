package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spacallax/internal/config"
	"github.com/vovakirdan/spacallax/internal/storage"
)

func TestScoreboardCyclesDifficulties(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	for _, s := range []int{120, 340, 90} {
		if _, err := store.SaveScore("medium", "ann", s); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}
	if _, err := store.SaveScore("hard", "", 500); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	m := NewScoreboardModel(store, config.Medium, 100, 30)
	if m.Rows() != 3 {
		t.Errorf("medium rows = %d, expected 3", m.Rows())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(ScoreboardModel)
	if m.Difficulty() != config.Hard {
		t.Fatalf("Difficulty = %v, expected Hard", m.Difficulty())
	}
	if m.Rows() != 1 {
		t.Errorf("hard rows = %d, expected 1", m.Rows())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(ScoreboardModel)
	if m.Rows() != 0 {
		t.Errorf("insane rows = %d, expected 0", m.Rows())
	}
	if view := m.View(); view == "" {
		t.Error("View should not be empty")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should leave the board")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, config.Difficulty(-1), 60, 20)
	if m.Difficulty() != config.Medium {
		t.Errorf("Difficulty = %v, expected Medium", m.Difficulty())
	}
	if m.Rows() != 0 {
		t.Errorf("Rows = %d, expected 0", m.Rows())
	}
}

func TestScoreboardView(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveScore("easy", "", 250); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	m := NewScoreboardModel(store, config.Easy, 140, 30)
	view := m.View()
	for _, want := range []string{"SPACALLAX HIGH SCORES", "Easy", "Unbeatable", "local", "Runs: 1  Best: 250"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if want := config.Easy.Prev(); m.Difficulty() != want {
		t.Errorf("Difficulty after shift+tab = %v, expected %v", m.Difficulty(), want)
	}
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("empty difficulty should show the placeholder")
	}
}
