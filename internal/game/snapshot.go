package game

// State represents the session's position in its lifecycle.
type State string

const (
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateGameOver State = "game_over"
	StateWon      State = "won"
)

// Snapshot is the read-only per-tick view handed to renderers. It is
// self-consistent: the session only mutates between Step calls, never
// while a reader holds a snapshot.
type Snapshot struct {
	Tick             uint64
	GridWidth        int
	GridHeight       int
	Body             []Position // Head first; copied, safe to keep
	Head             Position
	Food             *Position // nil when the grid is full
	NextLetter       rune      // 0 once the word is complete
	Word             string
	Difficulty       Difficulty
	Score            int
	LettersCollected int
	WordCompleted    bool
	State            State
	Message          string
	MessageTicks     int // Remaining display ticks; 0 for terminal messages
	HintShown        bool
}

// Snapshot captures the current state for rendering and testing.
func (s *Session) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case s.won:
		state = StateWon
	case s.gameOver:
		state = StateGameOver
	case s.paused:
		state = StatePaused
	}

	body := make([]Position, len(s.snake.Body()))
	copy(body, s.snake.Body())

	var food *Position
	if s.food != nil {
		f := *s.food
		food = &f
	}

	return Snapshot{
		Tick:             s.tick,
		GridWidth:        s.width,
		GridHeight:       s.height,
		Body:             body,
		Head:             s.snake.Head(),
		Food:             food,
		NextLetter:       s.NextLetter(),
		Word:             s.word,
		Difficulty:       s.difficulty,
		Score:            s.score,
		LettersCollected: s.Progress(),
		WordCompleted:    s.wordCompleted,
		State:            state,
		Message:          s.message,
		MessageTicks:     s.messageTicks,
		HintShown:        s.hintShown,
	}
}

// Terminal reports whether the snapshot is in a terminal state.
func (sn Snapshot) Terminal() bool {
	return sn.State == StateGameOver || sn.State == StateWon
}

// SegmentLetter returns the letter shown at body index i (1-indexed from
// the segment right behind the head): word[i-1] while i is within the
// word, 0 for the head and for undecorated segments beyond it. Pickup
// order matches word order, so the mapping is always consistent.
func (sn Snapshot) SegmentLetter(i int) rune {
	letters := []rune(sn.Word)
	if i < 1 || i > len(letters) {
		return 0
	}
	return letters[i-1]
}
