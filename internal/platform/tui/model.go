package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/dmarkhas/novafall/internal/audio"
	"github.com/dmarkhas/novafall/internal/config"
	"github.com/dmarkhas/novafall/internal/core"
	"github.com/dmarkhas/novafall/internal/sim"
	"github.com/dmarkhas/novafall/internal/storage"
)

// Model is the Bubble Tea model driving a local play session.
type Model struct {
	game   *sim.Game
	screen *core.Screen
	keys   *keyTracker
	stars  *Starfield
	store  *storage.Store
	sound  *audio.Engine
	logger *log.Logger
	cfg    core.RuntimeConfig

	lastTick   time.Time
	muted      bool
	quitting   bool
	scoreSaved bool // Whether the run has been persisted for the current game over
}

// NewModel creates the play model. store and sound may be nil; the game
// then runs without persistence or audio.
func NewModel(tuning config.Tuning, store *storage.Store, sound *audio.Engine, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	game := sim.New(tuning, cfg.Seed)
	if sound != nil {
		game.SetCues(sound)
	}

	// Seed the session best from past runs before the first frame
	if store != nil {
		if best, err := store.BestScore(); err == nil {
			game.SetBestScore(float64(best))
		} else {
			logger.Warn("could not read best score", "error", err)
		}
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   &keyTracker{},
		stars:  NewStarfield(cfg.ScreenW, cfg.ScreenH, cfg.Seed+1),
		store:  store,
		sound:  sound,
		logger: logger,
		cfg:    cfg,
	}
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

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "m":
		m.muted = !m.muted
		if m.sound != nil {
			m.sound.SetMuted(m.muted)
		}
		return m, nil
	}

	switch m.game.Status() {
	case sim.StatusStart:
		if msg.String() == "enter" {
			m.game.Start()
		}
	case sim.StatusGameOver:
		if msg.String() == "r" {
			m.game.Restart()
			m.keys.Reset()
			m.scoreSaved = false
		}
	default:
		m.keys.Press(msg.String(), time.Now())
	}

	return m, nil
}

// handleResize adapts the screen and background to the new terminal size.
// The simulation adopts the new bounds on the next tick.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.cfg.ScreenW = msg.Width
	m.cfg.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.stars.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by the real elapsed frame time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.cfg.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	in := m.keys.Snapshot(now)
	m.game.Step(&in, playBounds(m.cfg.ScreenW, m.cfg.ScreenH), dt)
	m.keys.ConsumeEdge(&in)

	// The background keeps scrolling on the start screen but freezes
	// with the rest of the frame at game over.
	if m.game.Status() != sim.StatusGameOver {
		m.stars.Update(dt)
	}

	m.saveRunOnce()

	return m, tickCmd(m.cfg.TickRate)
}

// saveRunOnce persists the finished run the first time game over is
// observed. Persistence is best-effort; failures are logged and ignored.
func (m *Model) saveRunOnce() {
	if m.game.Status() != sim.StatusGameOver || m.scoreSaved {
		return
	}
	m.scoreSaved = true

	snap := m.game.Snapshot()
	if snap.Score <= 0 || m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(int(snap.Score), snap.Level, snap.Elapsed); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()
	drawSnapshot(m.screen, &snap, m.stars)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local play session.
func Run(tuning config.Tuning, store *storage.Store, sound *audio.Engine, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(tuning, store, sound, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
