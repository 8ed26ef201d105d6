package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stardodge/internal/config"
	"github.com/vovakirdan/stardodge/internal/core"
	"github.com/vovakirdan/stardodge/internal/sim"
)

// menuDifficulties are the menu options, in display order.
var menuDifficulties = []config.Difficulty{
	config.DifficultyEasy,
	config.DifficultyMedium,
	config.DifficultyHard,
}

// Model is the Bubble Tea model driving one simulation session.
// It is the frame driver and input intent resolver: it measures the real
// delta between ticks, reduces key and mouse events into a movement intent,
// and hands both to the simulation.
type Model struct {
	sim    *sim.Sim
	simCfg config.SimConfig
	cfg    core.RuntimeConfig
	screen *core.Screen
	keys   KeyMap
	help   help.Model

	// intent holds the directional axes gathered from key presses since the
	// previous tick; it is cleared after every tick. The pointer target
	// persists until the button is released.
	intent  core.Intent
	pointer core.Pointer

	menuCursor   int
	announcement string
	lastTick     time.Time
	logger       *log.Logger // Optional; set for SSH sessions
	quitting     bool
}

// NewModel creates a session model. If preset is a valid difficulty the
// menu phase is skipped and the round starts immediately.
func NewModel(simCfg config.SimConfig, cfg core.RuntimeConfig, preset config.Difficulty) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	s := sim.New(simCfg, cfg.Seed)

	cursor := 1 // medium
	if preset.IsValid() {
		s.SetDifficulty(preset)
		s.StartRound()
		for i, d := range menuDifficulties {
			if d == preset {
				cursor = i
			}
		}
	}

	return Model{
		sim:        s,
		simCfg:     simCfg,
		cfg:        cfg,
		screen:     core.NewScreen(cfg.ScreenW, fieldRows(cfg.ScreenH)),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		menuCursor: cursor,
	}
}

// fieldRows returns the number of screen rows used for the field viewport,
// leaving one row for the help bar.
func fieldRows(screenH int) int {
	return core.Max(screenH-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, fieldRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input according to the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.sim.Phase() {
	case sim.PhaseMenu:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.menuCursor > 0 {
				m.menuCursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.menuCursor < len(menuDifficulties)-1 {
				m.menuCursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.sim.SetDifficulty(menuDifficulties[m.menuCursor])
			m.sim.StartRound()
		}

	case sim.PhasePlaying:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.intent.Vertical = -1
		case key.Matches(msg, m.keys.Down):
			m.intent.Vertical = 1
		case key.Matches(msg, m.keys.Left):
			m.intent.Horizontal = -1
		case key.Matches(msg, m.keys.Right):
			m.intent.Horizontal = 1
		}

	case sim.PhaseGameOver:
		if key.Matches(msg, m.keys.Restart) {
			m.sim.Restart()
			m.announcement = ""
		}
	}

	return m, nil
}

// handleMouse resolves mouse events into the pointer-follow target.
// Cell-motion reporting only delivers motion while a button is held, so
// press/motion engage the pointer and release disengages it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		fx, fy := m.cellToField(msg.X, msg.Y)
		m.pointer = core.Pointer{Active: true, X: fx, Y: fy}
	case tea.MouseActionRelease:
		m.pointer.Active = false
	}
	return m, nil
}

// cellToField maps a terminal cell to field units, using the cell's center.
func (m Model) cellToField(x, y int) (float64, float64) {
	w := float64(m.screen.Width())
	h := float64(m.screen.Height())
	if w == 0 || h == 0 {
		return 0, 0
	}
	fx := (float64(x) + 0.5) / w * m.simCfg.Field.Width
	fy := (float64(y) + 0.5) / h * m.simCfg.Field.Height
	return fx, fy
}

// handleTick advances the simulation by the real elapsed time.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	dt := 1.0 / float64(m.cfg.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	in := m.intent
	in.Pointer = m.pointer
	result := m.sim.Tick(dt, in)
	m.intent = core.Intent{}

	if result.Outcome == sim.OutcomeCollided {
		m.announcement = fmt.Sprintf("Game over. Score %d", result.FinalScore)
		if m.logger != nil {
			m.logger.Info("round over",
				"score", result.FinalScore,
				"difficulty", m.sim.Difficulty(),
			)
		}
	}

	return m, tickCmd(m.cfg.TickRate)
}

// View renders the field viewport plus the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.sim.Snapshot()
	drawFrame(m.screen, m.simCfg, snap, m.menuCursor, m.announcement)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts a local terminal session and blocks until the user quits.
func Run(simCfg config.SimConfig, cfg core.RuntimeConfig, preset config.Difficulty) error {
	model := NewModel(simCfg, cfg, preset)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
