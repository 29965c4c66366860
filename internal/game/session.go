package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Bravine-Kulei/snake-game-learner/internal/core"
)

// Recorder is the statistics collaborator, notified once per completed
// word. Calls are fire-and-forget: a failing recorder must never abort or
// stall the tick.
type Recorder interface {
	RecordCompletion(word string, difficulty Difficulty, score int) error
}

// Scoring holds the point constants for letter pickups and word completion.
type Scoring struct {
	LetterPoints        int // Base points per collected letter
	LetterTimeLimit     int // Seconds under which a pickup earns a speed bonus
	CompletionTimeLimit int // Seconds under which completion earns a time bonus
	CompletionPerLetter int // Flat completion bonus per letter of the word
}

// DefaultScoring returns the standard point values.
func DefaultScoring() Scoring {
	return Scoring{
		LetterPoints:        10,
		LetterTimeLimit:     20,
		CompletionTimeLimit: 100,
		CompletionPerLetter: 20,
	}
}

// Config carries everything a session needs. Word and Difficulty come from
// the menu collaborator; the rest have working defaults.
type Config struct {
	Word         string
	Difficulty   Difficulty
	GridWidth    int // Defaults to 20
	GridHeight   int // Defaults to 10
	Seed         int64
	MessageTicks int // Ticks an encouragement stays on screen, defaults to 10
	Scoring      Scoring
	Clock        Clock       // Defaults to SystemClock
	Recorder     Recorder    // Optional
	Logger       *log.Logger // Defaults to log.Default()
}

// Session owns one snake plus the letter pickup, score, word progress and
// terminal flags, and advances them one discrete simulation step per tick.
// It performs no I/O of its own beyond notifying the Recorder.
type Session struct {
	snake   *Snake
	food    *Position // nil means absent (full-grid win)
	letters []rune    // normalized target word
	word    string

	width      int
	height     int
	difficulty Difficulty
	scoring    Scoring

	score            int
	lettersCollected int
	wordCompleted    bool
	gameOver         bool
	won              bool
	paused           bool
	hintShown        bool

	tick         uint64
	message      string
	messageTicks int
	messageLimit int

	startedAt  time.Time
	lastPickup time.Time

	rng      *rand.Rand
	clock    Clock
	recorder Recorder
	logger   *log.Logger
}

// NewSession validates the configuration and creates a running session.
// An empty target word is rejected: the core refuses to start without one.
func NewSession(cfg Config) (*Session, error) {
	word := strings.ToLower(strings.TrimSpace(cfg.Word))
	if word == "" {
		return nil, errors.New("game: target word must not be empty")
	}
	if _, err := ParseDifficulty(string(cfg.Difficulty)); err != nil {
		return nil, err
	}

	if cfg.GridWidth == 0 {
		cfg.GridWidth = 20
	}
	if cfg.GridHeight == 0 {
		cfg.GridHeight = 10
	}
	if cfg.GridWidth < 2 || cfg.GridHeight < 2 {
		return nil, fmt.Errorf("game: grid %dx%d is too small", cfg.GridWidth, cfg.GridHeight)
	}
	if cfg.MessageTicks == 0 {
		cfg.MessageTicks = 10
	}
	if cfg.Scoring == (Scoring{}) {
		cfg.Scoring = DefaultScoring()
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	s := &Session{
		letters:      []rune(word),
		word:         word,
		width:        cfg.GridWidth,
		height:       cfg.GridHeight,
		difficulty:   cfg.Difficulty,
		scoring:      cfg.Scoring,
		messageLimit: cfg.MessageTicks,
		clock:        cfg.Clock,
		recorder:     cfg.Recorder,
		logger:       cfg.Logger,
	}
	s.Reset(cfg.Seed)
	return s, nil
}

// Reset discards the session's play state and starts over with a fresh
// seed. The target word, difficulty and grid are kept.
func (s *Session) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.snake = NewSnake(Position{Row: s.height / 2, Col: s.width / 2})
	s.score = 0
	s.lettersCollected = 0
	s.wordCompleted = false
	s.gameOver = false
	s.won = false
	s.paused = false
	s.hintShown = false
	s.tick = 0
	s.message = ""
	s.messageTicks = 0
	now := s.clock.Now()
	s.startedAt = now
	s.lastPickup = now
	s.spawnFood()
}

// Step advances the simulation by one tick: apply tick-boundary input,
// move the snake, resolve collisions, then pickups. No-op once terminal.
func (s *Session) Step(in core.InputFrame) {
	if s.gameOver || s.won {
		return
	}

	s.applyInput(in)
	if s.paused {
		return
	}

	s.tick++
	if s.messageTicks > 0 {
		s.messageTicks--
		if s.messageTicks == 0 {
			s.message = ""
		}
	}

	s.snake.Move()

	// Collision is terminal: no further effects this tick, even if the
	// head also landed on the food cell.
	if s.snake.CollidesWithWall(s.width, s.height) || s.snake.CollidesWithSelf() {
		s.gameOver = true
		s.setMessage("Game over! Press R to restart.")
		s.messageTicks = 0 // Terminal messages do not expire
		return
	}

	if s.food != nil && s.snake.Head() == *s.food {
		s.collectLetter()
	}
}

// applyInput handles direction intents and toggles buffered since the
// previous tick.
func (s *Session) applyInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		s.ChangeDirection(DirUp)
	case in.Has(core.ActionDown):
		s.ChangeDirection(DirDown)
	case in.Has(core.ActionLeft):
		s.ChangeDirection(DirLeft)
	case in.Has(core.ActionRight):
		s.ChangeDirection(DirRight)
	}

	if in.Has(core.ActionPause) {
		s.TogglePause()
	}
	if in.Has(core.ActionHint) {
		s.ToggleHint()
	}
}

// ChangeDirection forwards to the snake's reversal-guarded turn. It is a
// no-op while the session is paused or terminal.
func (s *Session) ChangeDirection(d Direction) {
	if s.paused || s.gameOver || s.won {
		return
	}
	s.snake.ChangeDirection(d)
}

// TogglePause flips the paused flag. Terminal sessions cannot pause.
func (s *Session) TogglePause() {
	if s.gameOver || s.won {
		return
	}
	s.paused = !s.paused
}

// ToggleHint flips the next-letter hint. Purely a display concern.
func (s *Session) ToggleHint() {
	if s.gameOver || s.won {
		return
	}
	s.hintShown = !s.hintShown
}

// collectLetter handles a pickup: grow, score with the time bonus, advance
// word progress, then respawn the food.
func (s *Session) collectLetter() {
	s.snake.Grow()

	now := s.clock.Now()
	elapsed := now.Sub(s.lastPickup)
	bonus := int(float64(s.scoring.LetterTimeLimit) - elapsed.Seconds())
	if bonus < 0 {
		bonus = 0
	}
	s.score += s.scoring.LetterPoints + bonus*s.difficulty.Multiplier()
	s.lastPickup = now

	if s.lettersCollected < len(s.letters) {
		s.lettersCollected++
	}

	s.setMessage(Encouragements[s.rng.Intn(len(Encouragements))])

	if s.lettersCollected == len(s.letters) && !s.wordCompleted {
		s.completeWord(now)
	}

	s.spawnFood()
}

// completeWord awards the completion bonus and notifies the statistics
// collaborator. This fires exactly once per session, at the moment the
// last letter is collected, regardless of how the session ends later.
func (s *Session) completeWord(now time.Time) {
	total := now.Sub(s.startedAt)
	bonus := int(float64(s.scoring.CompletionTimeLimit) - total.Seconds())
	if bonus < 0 {
		bonus = 0
	}
	s.score += bonus + s.scoring.CompletionPerLetter*len(s.letters)
	s.wordCompleted = true
	s.setMessage(fmt.Sprintf("You spelled %s!", strings.ToUpper(s.word)))

	if s.recorder != nil {
		if err := s.recorder.RecordCompletion(s.word, s.difficulty, s.score); err != nil {
			s.logger.Warn("could not record word completion",
				"word", s.word, "difficulty", s.difficulty, "err", err)
		}
	}
}

// spawnFood places the next letter pickup uniformly among cells not
// occupied by the snake. An exhausted grid is the WON terminal state, not
// an error.
func (s *Session) spawnFood() {
	var empty []Position
	for r := 0; r < s.height; r++ {
		for c := 0; c < s.width; c++ {
			p := Position{Row: r, Col: c}
			if !s.snake.Occupies(p) {
				empty = append(empty, p)
			}
		}
	}

	if len(empty) == 0 {
		s.food = nil
		s.won = true
		s.setMessage("Amazing! You filled the entire grid!")
		s.messageTicks = 0
		return
	}

	p := empty[s.rng.Intn(len(empty))]
	s.food = &p
}

func (s *Session) setMessage(msg string) {
	s.message = msg
	s.messageTicks = s.messageLimit
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Progress returns how many letters of the target word have been
// collected, clamped to the word length.
func (s *Session) Progress() int {
	return core.Min(s.lettersCollected, len(s.letters))
}

// Word returns the normalized target word.
func (s *Session) Word() string {
	return s.word
}

// Difficulty returns the session difficulty.
func (s *Session) Difficulty() Difficulty {
	return s.difficulty
}

// NextLetter returns the letter the current food stands for, or 0 once the
// word is complete. Food position is random but its semantic identity is
// always the next required letter.
func (s *Session) NextLetter() rune {
	if s.lettersCollected >= len(s.letters) {
		return 0
	}
	return s.letters[s.lettersCollected]
}

// Terminal reports whether the session reached GAME_OVER or WON.
func (s *Session) Terminal() bool {
	return s.gameOver || s.won
}
