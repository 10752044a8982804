package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flow/internal/storage"
)

func historyUpdate(t *testing.T, m HistoryModel, msg tea.Msg) (HistoryModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	hm, ok := next.(HistoryModel)
	if !ok {
		t.Fatalf("Update returned %T, want HistoryModel", next)
	}
	return hm, cmd
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0.0s"},
		{1500 * time.Millisecond, "1.5s"},
		{12340 * time.Millisecond, "12.3s"},
		{59960 * time.Millisecond, "1:00.0"},
		{95 * time.Second, "1:35.0"},
		{10*time.Minute + 4200*time.Millisecond, "10:04.2"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestHistoryLoadsPerMode(t *testing.T) {
	store := openTestStore(t)
	recs := []storage.ClearRecord{
		{RunID: "a", GameID: "flow", Level: 1, GridSize: 5, Pairs: 3, Duration: 9 * time.Second},
		{RunID: "a", GameID: "flow", Level: 2, GridSize: 5, Pairs: 3, Duration: 4 * time.Second, Attempts: 1},
		{RunID: "b", GameID: "flow_impossible", Level: 7, GridSize: 6, Pairs: 6, Duration: 80 * time.Second},
	}
	for _, rec := range recs {
		if _, err := store.SaveClear(rec); err != nil {
			t.Fatalf("SaveClear failed: %v", err)
		}
	}

	m := NewHistoryModel(store, 100, 40)
	if len(m.clears) != 2 {
		t.Fatalf("easy clears = %d, want 2", len(m.clears))
	}
	if m.clears[0].Duration != 4*time.Second {
		t.Errorf("fastest first: got %v", m.clears[0].Duration)
	}
	view := m.View()
	for _, want := range []string{"FASTEST CLEARS", "Clears: 2", "Runs: 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = historyUpdate(t, m, runeKey("s"))
	if !m.recent || m.clears[0].Level != 2 {
		t.Errorf("recent order should put level 2 first, got %+v", m.clears[0])
	}

	m, _ = historyUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if len(m.clears) != 0 {
		t.Errorf("hard clears = %d, want 0", len(m.clears))
	}
	if !strings.Contains(m.View(), "No levels cleared yet") {
		t.Error("empty mode should say so")
	}

	m, _ = historyUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if len(m.clears) != 1 || m.clears[0].Level != 7 {
		t.Errorf("impossible clears = %+v", m.clears)
	}

	m, _ = historyUpdate(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = historyUpdate(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = historyUpdate(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2 after wrapping back", m.cursor)
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)
	if !strings.Contains(m.View(), "History is unavailable") {
		t.Error("missing store should be reported")
	}

	back, cmd := historyUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.IsGoingBack() || cmd == nil {
		t.Error("esc should go back")
	}
	quit, _ := historyUpdate(t, m, runeKey("q"))
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
}
