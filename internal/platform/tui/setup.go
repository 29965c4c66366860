package tui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bravine-Kulei/snake-game-learner/internal/game"
	"github.com/Bravine-Kulei/snake-game-learner/internal/words"
)

// setupPhase tracks which screen of the setup flow is active.
type setupPhase int

const (
	phaseDifficulty setupPhase = iota
	phaseSource
	phaseWordList
	phaseCustomWord
)

// Selection holds the user's choices from the setup flow.
type Selection struct {
	Word       string
	Difficulty game.Difficulty
}

// SetupModel walks the player through difficulty and word selection.
type SetupModel struct {
	phase      setupPhase
	difficulty game.Difficulty
	diffCursor int
	srcCursor  int
	wordCursor int
	wordList   []string
	input      textinput.Model
	errMsg     string
	width      int
	height     int
	keyMapper  *KeyMapper
	rng        *rand.Rand
	selection  *Selection
	quitting   bool
}

// NewSetupModel creates a setup model. The seed drives random word picks.
func NewSetupModel(width, height int, seed int64) SetupModel {
	ti := textinput.New()
	ti.Placeholder = "type a word"
	ti.CharLimit = 24
	ti.Width = 24

	return SetupModel{
		width:     width,
		height:    height,
		input:     ti,
		keyMapper: NewKeyMapper(),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.phase == phaseCustomWord {
		return m.handleCustomWordKey(msg)
	}

	action := m.keyMapper.MapKeyToMenuAction(msg)
	switch m.phase {
	case phaseDifficulty:
		return m.handleDifficultyKey(action)
	case phaseSource:
		return m.handleSourceKey(action)
	case phaseWordList:
		return m.handleWordListKey(action)
	}
	return m, nil
}

func (m SetupModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	diffs := game.Difficulties()

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.diffCursor > 0 {
			m.diffCursor--
		}
	case MenuActionDown:
		if m.diffCursor < len(diffs)-1 {
			m.diffCursor++
		}
	case MenuActionSelect:
		m.difficulty = diffs[m.diffCursor]
		m.phase = phaseSource
		m.srcCursor = 0
	}
	return m, nil
}

func (m SetupModel) handleSourceKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.phase = phaseDifficulty
	case MenuActionUp:
		if m.srcCursor > 0 {
			m.srcCursor--
		}
	case MenuActionDown:
		if m.srcCursor < 2 { // Random, From list, Custom
			m.srcCursor++
		}
	case MenuActionSelect:
		switch m.srcCursor {
		case 0: // Random word
			w, err := words.Random(m.rng, m.difficulty)
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.selection = &Selection{Word: w, Difficulty: m.difficulty}
			return m, tea.Quit
		case 1: // Pick from the list
			m.wordList = words.ForDifficulty(m.difficulty)
			m.wordCursor = 0
			m.phase = phaseWordList
		case 2: // Type a custom word
			m.input.SetValue("")
			m.errMsg = ""
			m.phase = phaseCustomWord
			return m, m.input.Focus()
		}
	}
	return m, nil
}

func (m SetupModel) handleWordListKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.phase = phaseSource
	case MenuActionUp:
		if m.wordCursor > 0 {
			m.wordCursor--
		}
	case MenuActionDown:
		if m.wordCursor < len(m.wordList)-1 {
			m.wordCursor++
		}
	case MenuActionSelect:
		if len(m.wordList) > 0 {
			m.selection = &Selection{Word: m.wordList[m.wordCursor], Difficulty: m.difficulty}
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleCustomWordKey routes keys to the text input, intercepting only
// the flow-control keys so letters like q stay typeable.
func (m SetupModel) handleCustomWordKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.input.Blur()
		m.errMsg = ""
		m.phase = phaseSource
		return m, nil
	case "enter":
		word := words.Normalize(m.input.Value())
		if err := words.Validate(word); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.selection = &Selection{Word: word, Difficulty: m.difficulty}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the active setup screen.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseSource:
		return m.viewSource()
	case phaseWordList:
		return m.viewWordList()
	case phaseCustomWord:
		return m.viewCustomWord()
	default:
		return m.viewDifficulty()
	}
}

func (m SetupModel) viewDifficulty() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S P E L L I N G   S N A K E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	labels := []string{
		"Easy    (short words, x1 bonus)",
		"Medium  (longer words, x2 bonus)",
		"Hard    (long words, x3 bonus)",
	}
	for i, label := range labels {
		cursor := "  "
		if i == m.diffCursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Q: Quit", m.width))

	return b.String()
}

func (m SetupModel) viewSource() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: %s", m.difficulty), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose your word:", m.width))
	b.WriteString("\n\n")

	options := []string{
		"Surprise me (random word)",
		"Pick from the list",
		"Type my own word",
	}
	for i, opt := range options {
		cursor := "  "
		if i == m.srcCursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt, m.width))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.errMsg, m.width))
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m SetupModel) viewWordList() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("%s words", strings.ToUpper(string(m.difficulty))), m.width))
	b.WriteString("\n\n")

	for i, w := range m.wordList {
		cursor := "  "
		if i == m.wordCursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%2d. %s", cursor, i+1, w), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m SetupModel) viewCustomWord() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("Type a word to spell:", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.errMsg, m.width))
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Start  |  Esc: Back", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *Selection {
	return m.selection
}

// IsQuitting returns true if the user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}
