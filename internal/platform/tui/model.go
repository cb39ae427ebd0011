package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/stats"
)

// Game is the contract the platform hosts. The implementation contains
// pure logic with no Bubble Tea dependencies; the platform handles input
// mapping, timing and display.
type Game interface {
	// ID returns a unique identifier, used for screenshots and logs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick. Input is abstracted to
	// platform-level actions; the TimeStep carries the frame clock.
	Step(in core.InputFrame, ts core.TimeStep) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// footerHeight is the rows reserved under the play field for the help bar.
const footerHeight = 1

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	stats      *stats.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	username   string // Set for SSH sessions, empty locally

	elapsed  float64 // Accumulated simulation seconds, drives the idle bob
	runTicks int     // Ticks in the current round, for run duration
	paused   bool
	showing  bool // Session scoreboard overlay visible
	runSaved bool // Whether the finished round was recorded
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game Game, store *stats.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerHeight),
		stats:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
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

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionScores:
		m.showing = !m.showing
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionJump:
		if m.showing {
			m.showing = false
		} else {
			m.inputFrame.Set(core.ActionJump)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-footerHeight))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Pause and the scoreboard overlay freeze the simulation at the
	// platform level; the core never sees either.
	if m.paused || m.showing {
		return m, tickCmd(m.config.TickRate)
	}

	delta := 1.0 / float64(m.config.TickRate)
	m.elapsed += delta

	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame, core.TimeStep{
		Delta:   delta,
		Elapsed: m.elapsed,
	})
	m.gameState = result.State
	m.runTicks++

	if wasOver && !m.gameState.GameOver {
		// Round restarted through the simulation's own transition.
		m.runSaved = false
		m.runTicks = 0
	}

	// Record the finished round once.
	if m.gameState.GameOver && !m.runSaved {
		if m.stats != nil {
			m.stats.Record(stats.Run{
				Player:   m.username,
				Score:    m.gameState.Score,
				Duration: time.Duration(m.runTicks) * time.Second / time.Duration(m.config.TickRate),
			})
		}
		m.runSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".flappy", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showing {
		return renderScoreboard(m.stats, m.config.ScreenW, m.config.ScreenH)
	}

	m.game.Render(m.screen)

	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ")
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, store *stats.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
