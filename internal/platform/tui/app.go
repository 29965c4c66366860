package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Bravine-Kulei/snake-game-learner/internal/config"
	"github.com/Bravine-Kulei/snake-game-learner/internal/core"
	"github.com/Bravine-Kulei/snake-game-learner/internal/game"
	"github.com/Bravine-Kulei/snake-game-learner/internal/stats"
	"github.com/Bravine-Kulei/snake-game-learner/internal/storage"
)

// Options configures the full game flow.
type Options struct {
	Game    config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store   // Optional session history
	Stats   *stats.FileStore // Optional lifetime statistics
	Logger  *log.Logger

	// Word and Difficulty, when both set, skip the setup flow.
	Word       string
	Difficulty game.Difficulty
}

// AppModel manages the full flow: setup -> game -> setup.
// This is the top-level model for both local and SSH play.
type AppModel struct {
	opts     Options
	setup    SetupModel
	play     *PlayModel
	inPlay   bool
	quitting bool
	err      error
}

// NewAppModel creates the top-level model.
func NewAppModel(opts Options) AppModel {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	m := AppModel{
		opts:  opts,
		setup: NewSetupModel(opts.Runtime.ScreenW, opts.Runtime.ScreenH, opts.Runtime.Seed),
	}

	if opts.Word != "" && opts.Difficulty != "" {
		if err := m.startSession(Selection{Word: opts.Word, Difficulty: opts.Difficulty}); err != nil {
			m.err = err
		}
	}

	return m
}

// startSession builds a game session from the selection and switches to
// the play phase.
func (m *AppModel) startSession(sel Selection) error {
	cfg := game.Config{
		Word:         sel.Word,
		Difficulty:   sel.Difficulty,
		GridWidth:    m.opts.Game.Grid.Width,
		GridHeight:   m.opts.Game.Grid.Height,
		Seed:         m.opts.Runtime.Seed,
		MessageTicks: m.opts.Game.Timing.MessageTicks,
		Scoring: game.Scoring{
			LetterPoints:        m.opts.Game.Scoring.LetterPoints,
			LetterTimeLimit:     m.opts.Game.Scoring.LetterTimeLimit,
			CompletionTimeLimit: m.opts.Game.Scoring.CompletionTimeLimit,
			CompletionPerLetter: m.opts.Game.Scoring.CompletionPerLetter,
		},
		Logger: m.opts.Logger,
	}
	if m.opts.Stats != nil {
		cfg.Recorder = m.opts.Stats
	}

	session, err := game.NewSession(cfg)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	play := NewPlayModel(session, m.opts.Store, m.opts.Runtime)
	m.play = &play
	m.inPlay = true
	return nil
}

// Init initializes the active phase.
func (m AppModel) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	if m.inPlay && m.play != nil {
		return m.play.Init()
	}
	return m.setup.Init()
}

// Update handles messages for the active phase.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	if m.inPlay && m.play != nil {
		return m.updatePlay(msg)
	}
	return m.updateSetup(msg)
}

// updateSetup handles the setup phase.
func (m AppModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSetup, cmd := m.setup.Update(msg)
	if setupModel, ok := newSetup.(SetupModel); ok {
		m.setup = setupModel
	}

	if m.setup.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if sel := m.setup.Selected(); sel != nil {
		// Fresh seed per session so repeated words play differently
		m.opts.Runtime.Seed = time.Now().UnixNano()
		if err := m.startSession(*sel); err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.play.Init()
	}

	return m, cmd
}

// updatePlay handles the game phase.
func (m AppModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if playModel, ok := newModel.(PlayModel); ok {
		m.play = &playModel
	}

	if m.play.BackToMenu() {
		m.inPlay = false
		m.play = nil
		m.setup = NewSetupModel(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH, time.Now().UnixNano())
		return m, m.setup.Init()
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the active phase.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inPlay && m.play != nil {
		return m.play.View()
	}
	return m.setup.View()
}

// Err returns the error that terminated the app, if any.
func (m AppModel) Err() error {
	return m.err
}

// Run starts the Bubble Tea program with the full game flow.
func Run(opts Options) error {
	model := NewAppModel(opts)
	if model.err != nil {
		return model.err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if app, ok := final.(AppModel); ok && app.err != nil {
		return app.err
	}
	return nil
}
