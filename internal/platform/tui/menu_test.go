package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flow/internal/storage"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, want MenuModel", next)
	}
	return mm, cmd
}

func TestMenuListsModesWithBestLevel(t *testing.T) {
	store := openTestStore(t)
	for _, level := range []int{1, 4, 2} {
		if _, err := store.SaveClear(storage.ClearRecord{
			RunID: "run", GameID: "flow_hard", Level: level, GridSize: 6, Pairs: 4, Duration: time.Second,
		}); err != nil {
			t.Fatalf("SaveClear failed: %v", err)
		}
	}

	m := NewMenuModel(store, testConfig())
	if len(m.items) != 3 {
		t.Fatalf("items = %d, want 3", len(m.items))
	}
	wantIDs := []string{"flow", "flow_hard", "flow_impossible"}
	for i, id := range wantIDs {
		if m.items[i].GameID != id {
			t.Errorf("item %d = %q, want %q", i, m.items[i].GameID, id)
		}
	}
	if m.items[1].Best != 4 {
		t.Errorf("hard best = %d, want 4", m.items[1].Best)
	}
	if m.items[0].Best != 0 {
		t.Errorf("easy best = %d, want 0", m.items[0].Best)
	}

	view := m.View()
	for _, want := range []string{"F L O W", "best: level 4", "History", "Start level: < 1 >"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMenuSelectWithStartLevel(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.StartLevel() != 1 {
		t.Errorf("start level = %d, want 1 (clamped)", m.StartLevel())
	}
	for i := 0; i < 4; i++ {
		m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("selecting should end the menu program")
	}

	res := m.Result()
	if res.GameID != "flow_impossible" {
		t.Errorf("game = %q, want flow_impossible", res.GameID)
	}
	if res.StartLevel != 5 {
		t.Errorf("start level = %d, want 5", res.StartLevel)
	}
	if res.Quit || res.WantsHistory {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestMenuHistoryEntry(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	for i := 0; i < 10; i++ {
		m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.items) {
		t.Fatalf("cursor = %d, want history entry %d", m.cursor, len(m.items))
	}
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Result().WantsHistory {
		t.Error("enter on history should open it")
	}

	tab := NewMenuModel(nil, testConfig())
	tab, _ = menuUpdate(t, tab, tea.KeyMsg{Type: tea.KeyTab})
	if !tab.Result().WantsHistory {
		t.Error("tab should open history")
	}
}

func TestMenuQuitAndResize(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	m, _ = menuUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 50 {
		t.Errorf("config size = %dx%d, want 120x50", cfg.ScreenW, cfg.ScreenH)
	}

	m, cmd := menuUpdate(t, m, runeKey("q"))
	if cmd == nil || !m.IsQuitting() || !m.Result().Quit {
		t.Error("q should quit the menu")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText = %q, want unchanged", got)
	}
}
