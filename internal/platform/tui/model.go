// Package tui runs Nomekop Town in a terminal with Bubble Tea, locally or
// over SSH. Terminals only report key presses, so the package also emulates
// held movement keys.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-nomekop/internal/core"
	"github.com/vovakirdan/tui-nomekop/internal/registry"
	"github.com/vovakirdan/tui-nomekop/internal/storage"
)

// defaultHoldTicks is used for games that do not say how long a key press
// keeps a direction held.
const defaultHoldTicks = 8

// holdTicker is implemented by games that tune the key hold window.
type holdTicker interface {
	HoldTicks() int
}

// TickMsg advances the simulation by one frame.
type TickMsg time.Time

// tickCmd schedules the next frame at rate frames per second.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(rate, 1)), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Options carries the optional collaborators of a Model.
type Options struct {
	// Player is the name written to journal rows.
	Player string

	// Logger receives game events and storage warnings. Nil discards them.
	Logger *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	player    string
	keys      GameKeyMap
	keyMapper *KeyMapper
	latch     *InputLatch
	help      help.Model
	journal   *JournalModel
	gameState core.GameState
	width     int
	height    int
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultGameKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:      game,
		store:     store,
		logger:    logger,
		config:    cfg,
		player:    opts.Player,
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		latch:     NewInputLatch(defaultHoldTicks),
		help:      h,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.screenHeight())
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if ht, ok := m.game.(holdTicker); ok {
		m.latch.SetHoldTicks(ht.HoldTicks())
	}
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "player", m.player)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.journal != nil {
			return m.updateJournal(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, cmd := m.keyMapper.MapKey(msg)
	switch cmd {
	case CommandQuit:
		m.quitting = true
		return m, tea.Quit
	case CommandJournal:
		jm := NewJournalModel(m.store, m.width, m.height)
		m.journal = &jm
		m.latch.Release()
		return m, nil
	case CommandHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.screenHeight())
		return m, nil
	}

	m.latch.Press(action)
	return m, nil
}

// updateJournal forwards keys to the journal screen until it is closed.
func (m Model) updateJournal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, cmd := m.journal.Update(msg)
	jm, ok := next.(JournalModel)
	if !ok {
		return m, cmd
	}

	switch {
	case jm.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case jm.IsGoingBack():
		m.journal = nil
		return m, nil
	}

	m.journal = &jm
	return m, cmd
}

// handleResize processes window resize events. The world has a fixed size,
// so the game keeps running and is only redrawn at the new scale.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.screenHeight())

	if m.journal != nil {
		next, _ := m.journal.Update(msg)
		if jm, ok := next.(JournalModel); ok {
			m.journal = &jm
		}
	}

	return m, nil
}

// handleTick processes simulation ticks. The game pauses while the journal
// is open.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.journal != nil {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.latch.Frame())
	m.gameState = result.State

	for _, e := range result.Events {
		m.logger.Debug("game event", "kind", e.Kind, "detail", e.Detail, "tick", e.Tick)
		if e.Kind == core.EventStarterChosen {
			m.recordChoice(e)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// recordChoice appends a journal row. The game continues if it fails.
func (m Model) recordChoice(e core.Event) {
	if m.store == nil {
		return
	}
	if _, err := m.store.AppendJournal(m.game.ID(), m.player, e.Detail, e.Tick); err != nil {
		m.logger.Warn("could not write journal entry", "starter", e.Detail, "error", err)
		return
	}
	m.logger.Info("starter chosen", "player", m.player, "starter", e.Detail, "tick", e.Tick)
}

// screenHeight is the terminal height minus the help footer.
func (m Model) screenHeight() int {
	footer := 1
	if m.help.ShowAll {
		footer = 0
		for _, col := range m.keys.FullHelp() {
			footer = max(footer, len(col))
		}
	}
	return max(m.height-footer, 0)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".nomekop", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// JournalOpen reports whether the journal screen is shown.
func (m Model) JournalOpen() bool {
	return m.journal != nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.journal != nil {
		return m.journal.View()
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
