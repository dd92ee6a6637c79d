package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-nomekop/internal/games/nomekop/sim"
	"github.com/vovakirdan/tui-nomekop/internal/storage"
)

// Journal layout constants
const (
	minWidthForSidebar = 72  // Minimum width to show the starter tally
	sidebarWidth       = 18  // Width of the starter tally sidebar
	maxEntries         = 100 // Max journal entries to load
)

// JournalKeyMap defines the key bindings for the journal screen.
type JournalKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Reload key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Reload, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Reload},
		{k.Back, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "tab", "b"),
			key.WithHelp("esc/tab", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// JournalModel is the Bubble Tea model for the adventure journal screen.
type JournalModel struct {
	store       *storage.Store
	entries     []storage.JournalEntry
	counts      []storage.StarterCount
	loadErr     error
	table       table.Model
	help        help.Model
	keys        JournalKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewJournalModel creates a journal screen. A nil store shows an empty
// journal.
func NewJournalModel(store *storage.Store, width, height int) JournalModel {
	h := help.New()
	h.ShowAll = false

	m := JournalModel{
		store:       store,
		keys:        DefaultJournalKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *JournalModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Trainer", Width: 12},
		{Title: "Starter", Width: 8},
		{Title: "Ticks", Width: 8},
		{Title: "Date", Width: 14},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if tableWidth > 50 {
		columns[0].Width = tableWidth - 34
		if columns[0].Width > 24 {
			columns[0].Width = 24
		}
	}

	height := m.height - 8
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
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the newest entries and the starter tally.
func (m *JournalModel) load() {
	m.entries, m.counts, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.entries, m.loadErr = m.store.Recent(maxEntries)
		if m.loadErr == nil {
			m.counts, m.loadErr = m.store.CountByStarter()
		}
	}
	m.updateTableRows()
}

func (m *JournalModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		player := e.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			player,
			e.Starter,
			fmt.Sprintf("%d", e.Ticks),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Reload):
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("ADVENTURE JOURNAL", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(centerText(m.renderTally(), m.width))
		b.WriteString("\n\n")
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the starter tally in a bordered column.
func (m JournalModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Starters\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	for _, st := range sim.Catalog() {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(st.Color)).Bold(true)
		sb.WriteString(fmt.Sprintf("%s %d\n", style.Render(fmt.Sprintf("%-6s", st.Name)), m.count(string(st.ID))))
	}
	return sidebarStyle.Render(sb.String())
}

// renderTally renders the starter tally on one line.
func (m JournalModel) renderTally() string {
	parts := make([]string, 0, 3)
	for _, st := range sim.Catalog() {
		parts = append(parts, fmt.Sprintf("%s: %d", st.Name, m.count(string(st.ID))))
	}
	return strings.Join(parts, "  ")
}

func (m JournalModel) count(starter string) int {
	for _, c := range m.counts {
		if c.Starter == starter {
			return c.Count
		}
	}
	return 0
}

// renderTableContent renders the table or an explanation of why it is empty.
func (m JournalModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("The journal is unavailable.\nCheck the --db path.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not read the journal:\n" + m.loadErr.Error())
	case len(m.entries) == 0:
		return emptyStyle.Render("No adventures recorded yet.\nVisit the house and pick a starter!")
	}

	return m.table.View()
}

// IsGoingBack returns true if the user wants to return to the game.
func (m JournalModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m JournalModel) IsQuitting() bool {
	return m.quitting
}

// journalProgram wraps JournalModel so the standalone screen exits on back.
type journalProgram struct {
	JournalModel
}

func (p journalProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := p.JournalModel.Update(msg)
	if jm, ok := next.(JournalModel); ok {
		p.JournalModel = jm
	}
	if p.quitting || p.goingBack {
		return p, tea.Quit
	}
	return p, cmd
}

// RunJournal runs the journal as a standalone screen.
func RunJournal(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		journalProgram{NewJournalModel(store, width, height)},
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
