package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flow/internal/core"
	"github.com/vovakirdan/tui-flow/internal/games/flow"
	"github.com/vovakirdan/tui-flow/internal/games/flow/engine"
	"github.com/vovakirdan/tui-flow/internal/storage"
)

// Start level bounds offered by the menu.
const (
	minStartLevel = 1
	maxStartLevel = 99
)

// MenuItem represents a selectable mode in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        int // Highest cleared level, 0 if none
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int // len(items) selects the history entry
	startLevel  int
	width       int
	height      int
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	theme       FlowTheme
	quitting    bool
	selected    *MenuItem
	openHistory bool
}

// modeDescription is the one-line blurb shown under each mode.
func modeDescription(mode engine.Mode) string {
	switch mode {
	case engine.ModeHard:
		return "Bigger grids and more pairs, sooner."
	case engine.ModeImpossible:
		return "Later levels may be built to be unsolvable."
	default:
		return "Connect matching colors. Grids grow slowly."
	}
}

// NewMenuModel creates a new menu model. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, len(engine.Modes))
	for _, mode := range engine.Modes {
		g := flow.New(mode)
		item := MenuItem{
			GameID:      g.ID(),
			Title:       g.Title(),
			Description: modeDescription(mode),
		}
		if store != nil {
			if best, err := store.HighestLevel(item.GameID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:      items,
		startLevel: minStartLevel,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		theme:      GetFlowTheme(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items) {
			m.cursor++
		}

	case MenuActionLeft:
		if m.startLevel > minStartLevel {
			m.startLevel--
		}

	case MenuActionRight:
		if m.startLevel < maxStartLevel {
			m.startLevel++
		}

	case MenuActionSelect:
		if m.cursor == len(m.items) {
			m.openHistory = true
			return m, tea.Quit
		}
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit // Exit menu to start game

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("F L O W"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a mode"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			line = "> " + item.Title
			style = m.theme.MenuItemActive
		}
		if item.Best > 0 {
			line += fmt.Sprintf("  (best: level %d)", item.Best)
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
		if i == m.cursor {
			b.WriteString(centerText(m.theme.MenuDescription.Render(item.Description), m.width))
			b.WriteString("\n")
		}
	}

	history := "  History"
	style := m.theme.MenuItemNormal
	if m.cursor == len(m.items) {
		history = "> History"
		style = m.theme.MenuItemActive
	}
	b.WriteString("\n")
	b.WriteString(centerText(style.Render(history), m.width))
	b.WriteString("\n\n")

	level := fmt.Sprintf("Start level: < %d >", m.startLevel)
	b.WriteString(centerText(m.theme.MenuItemNormal.Render(level), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Left/Right: Level  |  Enter: Play  |  Tab: History  |  Q: Quit"
	b.WriteString(centerText(m.theme.MenuHint.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// StartLevel returns the chosen start level.
func (m MenuModel) StartLevel() int {
	return m.startLevel
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the history board.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID       string
	StartLevel   int
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return m.Result(), nil
}

// Result summarizes the menu's final state.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{
		Config:     m.Config(),
		StartLevel: m.startLevel,
	}

	switch {
	case m.WantsHistory():
		result.WantsHistory = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}

	return result
}
