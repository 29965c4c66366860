package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bravine-Kulei/snake-game-learner/internal/core"
	"github.com/Bravine-Kulei/snake-game-learner/internal/game"
	"github.com/Bravine-Kulei/snake-game-learner/internal/storage"
)

// PlayModel is the Bubble Tea model for one play session.
type PlayModel struct {
	session    *game.Session
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	snap       game.Snapshot
	keyMapper  *KeyMapper
	progress   progress.Model
	quitting   bool
	backToMenu bool
	saved      bool // Whether the session row has been written
}

// NewPlayModel creates a play model around an already-constructed session.
func NewPlayModel(session *game.Session, store *storage.Store, cfg core.RuntimeConfig) PlayModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30

	return PlayModel{
		session: session,
		// The last screen line is reserved for the progress bar
		screen:     core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-1)),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		snap:       session.Snapshot(),
		keyMapper:  NewKeyMapper(),
		progress:   bar,
	}
}

// Init starts the tick loop.
func (m PlayModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		// A quit mid-session still leaves a trace in the history
		if !m.snap.Terminal() && !m.saved {
			m.saveSession(storage.OutcomeQuit)
		}
		m.quitting = true
		return m, tea.Quit
	}

	// B returns to the word picker once the session is over
	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack && m.snap.Terminal() {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m PlayModel) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.snap.Terminal() {
		m.session.Reset(time.Now().UnixNano())
		m.snap = m.session.Snapshot()
		m.saved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.session.Step(m.inputFrame)
	m.snap = m.session.Snapshot()

	// Save the session row once, when it first becomes terminal
	if m.snap.Terminal() && !m.saved {
		m.saveSession(outcomeFor(m.snap))
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveSession writes the history row. Best effort: failures never
// interrupt play.
func (m *PlayModel) saveSession(outcome string) {
	m.saved = true
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveSession(storage.SessionEntry{
		Word:       m.snap.Word,
		Difficulty: string(m.snap.Difficulty),
		Score:      m.snap.Score,
		Letters:    m.snap.LettersCollected,
		Outcome:    outcome,
	})
}

// outcomeFor maps a terminal snapshot to its history outcome.
func outcomeFor(snap game.Snapshot) string {
	switch {
	case snap.State == game.StateWon:
		return storage.OutcomeWon
	case snap.WordCompleted:
		return storage.OutcomeCompleted
	default:
		return storage.OutcomeGameOver
	}
}

// View renders the game.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	drawSession(m.screen, m.snap)

	percent := 0.0
	if n := len(m.snap.Word); n > 0 {
		percent = float64(m.snap.LettersCollected) / float64(n)
	}
	return RenderScreen(m.screen) + "\n  " + m.progress.ViewAs(percent)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested a new word.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}
