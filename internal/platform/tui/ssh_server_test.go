package tui

import (
	"io"
	"net"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flow/internal/storage"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm, cmd
}

func TestSessionMenuGameMenu(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store := openTestStore(t)
	m := NewSessionModel(store, nil, testConfig())

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.game == nil {
		t.Fatal("enter should start a game")
	}
	if cmd == nil {
		t.Error("starting a game should start its tick loop")
	}
	if got := m.game.game.ID(); got != "flow" {
		t.Errorf("game = %q, want flow", got)
	}

	m, _ = sessionUpdate(t, m, TickMsg(time.Now()))
	if lvl := m.game.State().Level; lvl != 3 {
		t.Errorf("level = %d, want start level 3", lvl)
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.game != nil {
		t.Error("esc in game should return to the menu")
	}
	if m.View() == "" {
		t.Error("menu view should render")
	}
}

func TestSessionHistoryAndQuit(t *testing.T) {
	m := NewSessionModel(nil, nil, testConfig())

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenHistory || m.history == nil {
		t.Fatal("tab should open history")
	}

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Error("esc in history should return to the menu")
	}
	if m.quitting {
		t.Error("leaving history should not end the session")
	}
	_ = cmd

	m, cmd = sessionUpdate(t, m, runeKey("q"))
	if !m.quitting || cmd == nil {
		t.Error("q in menu should end the session")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestSessionTracksWindowSize(t *testing.T) {
	m := NewSessionModel(nil, nil, testConfig())
	m, _ = sessionUpdate(t, m, tea.WindowSizeMsg{Width: 132, Height: 43})
	if m.config.ScreenW != 132 || m.config.ScreenH != 43 {
		t.Errorf("config = %dx%d, want 132x43", m.config.ScreenW, m.config.ScreenH)
	}
	if m.menu.Config().ScreenW != 132 {
		t.Error("menu should see the new size")
	}
}

func newTestServer(t *testing.T, addr string) *SSHServer {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = addr
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "clears.db")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer failed: %v", err)
	}
	return srv
}

func TestListenAndServeReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen failed: %v", err)
	}
	defer busy.Close()

	srv := newTestServer(t, busy.Addr().String())

	result := make(chan error, 1)
	go func() { result <- srv.ListenAndServe() }()

	select {
	case err := <-result:
		if err == nil {
			t.Error("expected an error for a busy address")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe blocked on a busy address")
	}
	if srv.store != nil {
		t.Error("store should be closed after a listen failure")
	}
}

func TestShutdownClosesStoreLast(t *testing.T) {
	srv := newTestServer(t, "127.0.0.1:0")
	store := srv.store
	if store == nil {
		t.Fatal("server should open the clears store")
	}

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if srv.store != nil {
		t.Error("store should be released after Shutdown")
	}
	if _, err := store.SaveClear(storage.ClearRecord{GameID: "flow", Level: 1}); err == nil {
		t.Error("store should be closed after Shutdown")
	}
}
