package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flow/internal/games/flow"
	"github.com/vovakirdan/tui-flow/internal/games/flow/engine"
	"github.com/vovakirdan/tui-flow/internal/storage"
)

// History board constants
const (
	maxClears = 100 // Max clears to load per mode
)

// HistoryKeyMap defines the key bindings for the history board.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Sort     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Sort, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Sort, k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "fastest/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model listing cleared levels per mode.
type HistoryModel struct {
	modes     []engine.Mode
	cursor    int
	recent    bool // Newest first instead of fastest first
	store     *storage.Store
	clears    []storage.ClearRecord
	stats     *storage.GameStats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	theme     FlowTheme
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewHistoryModel creates a new history model. store may be nil.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := HistoryModel{
		modes:  engine.Modes,
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		theme:  GetFlowTheme(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Level", Width: 6},
		{Title: "Grid", Width: 6},
		{Title: "Time", Width: 9},
		{Title: "Restarts", Width: 9},
		{Title: "Date", Width: 14},
	}

	height := m.height - 12 // title, tabs, stats, help and borders
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.theme.HistoryBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *HistoryModel) gameID() string {
	return flow.GameID(m.modes[m.cursor])
}

// load reads clears and stats for the current mode.
func (m *HistoryModel) load() {
	m.clears, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		if m.recent {
			m.clears, m.loadErr = m.store.RecentClears(m.gameID(), maxClears)
		} else {
			m.clears, m.loadErr = m.store.FastestClears(m.gameID(), maxClears)
		}
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetGameStats(m.gameID())
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current clears.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.clears))
	for i, c := range m.clears {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", c.Level),
			fmt.Sprintf("%dx%d", c.GridSize, c.GridSize),
			formatDuration(c.Duration),
			fmt.Sprintf("%d", c.Attempts),
			c.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history board.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			m.cursor = (m.cursor + 1) % len(m.modes)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.cursor = (m.cursor - 1 + len(m.modes)) % len(m.modes)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Sort):
			m.recent = !m.recent
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history board.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	order := "FASTEST"
	if m.recent {
		order = "RECENT"
	}
	title := fmt.Sprintf("%s CLEARS - %s", order, flow.New(m.modes[m.cursor]).Title())
	b.WriteString(centerText(m.theme.HistoryTitle.Render(title), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.cursor {
			tabs[i] = m.theme.TabActive.Render(mode.Title())
		} else {
			tabs[i] = m.theme.TabInactive.Render(mode.Title())
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	if line := m.statsLine(); line != "" {
		b.WriteString(centerText(m.theme.HistoryStats.Render(line), m.width))
		b.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.HistoryBorder).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	b.WriteString(m.theme.MenuHint.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the current mode.
func (m HistoryModel) statsLine() string {
	if m.stats == nil || m.stats.Clears == 0 {
		return ""
	}
	return fmt.Sprintf("Clears: %d  |  Best level: %d  |  Fastest: %s  |  Average: %s  |  Runs: %d",
		m.stats.Clears, m.stats.HighestLevel,
		formatDuration(m.stats.Fastest), formatDuration(m.stats.Average), m.stats.Runs)
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	switch {
	case m.store == nil:
		return m.theme.HistoryEmpty.Render("History is unavailable.\nThe clears database could not be opened.")
	case m.loadErr != nil:
		return m.theme.HistoryEmpty.Render("Could not load history:\n" + m.loadErr.Error())
	case len(m.clears) == 0:
		return m.theme.HistoryEmpty.Render("No levels cleared yet.\nConnect every pair to record a time!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// formatDuration renders a clear time as m:ss.t or s.t seconds.
func formatDuration(d time.Duration) string {
	tenths := d.Round(100*time.Millisecond) / (100 * time.Millisecond)
	secs := int(tenths / 10)
	frac := int(tenths % 10)
	if secs >= 60 {
		return fmt.Sprintf("%d:%02d.%d", secs/60, secs%60, frac)
	}
	return fmt.Sprintf("%d.%ds", secs, frac)
}

// RunHistory runs the history board.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewHistoryModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
