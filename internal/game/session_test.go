package game

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Bravine-Kulei/snake-game-learner/internal/core"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type recorderSpy struct {
	calls []recordedCompletion
	err   error
}

type recordedCompletion struct {
	word       string
	difficulty Difficulty
	score      int
}

func (r *recorderSpy) RecordCompletion(word string, difficulty Difficulty, score int) error {
	r.calls = append(r.calls, recordedCompletion{word, difficulty, score})
	return r.err
}

func newTestSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	if cfg.Difficulty == "" {
		cfg.Difficulty = DifficultyEasy
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

func step(s *Session) {
	s.Step(core.NewInputFrame())
}

func TestNewSessionRejectsEmptyWord(t *testing.T) {
	_, err := NewSession(Config{Word: "", Difficulty: DifficultyEasy})
	if err == nil {
		t.Error("NewSession should reject an empty target word")
	}

	_, err = NewSession(Config{Word: "   ", Difficulty: DifficultyEasy})
	if err == nil {
		t.Error("NewSession should reject a blank target word")
	}
}

func TestNewSessionRejectsUnknownDifficulty(t *testing.T) {
	_, err := NewSession(Config{Word: "cat", Difficulty: "impossible"})
	if err == nil {
		t.Error("NewSession should reject an unknown difficulty")
	}
}

func TestNewSessionNormalizesWord(t *testing.T) {
	s := newTestSession(t, Config{Word: "  CaT ", Clock: newFakeClock()})
	if s.Word() != "cat" {
		t.Errorf("Word() = %q, want %q", s.Word(), "cat")
	}
}

func TestNewSessionStartsSnakeAtCenter(t *testing.T) {
	s := newTestSession(t, Config{Word: "cat", GridWidth: 20, GridHeight: 10, Clock: newFakeClock()})
	snap := s.Snapshot()

	if snap.Head != (Position{Row: 5, Col: 10}) {
		t.Errorf("Head = %v, want grid center (5,10)", snap.Head)
	}
	if len(snap.Body) != 1 {
		t.Errorf("len(Body) = %d, want 1", len(snap.Body))
	}
	if snap.Food == nil {
		t.Error("a fresh session must have food on the grid")
	}
	if snap.State != StateRunning {
		t.Errorf("State = %q, want running", snap.State)
	}
}

func TestStepMovesHeadByDirectionVector(t *testing.T) {
	s := newTestSession(t, Config{Word: "cat", Clock: newFakeClock()})
	s.food = nil // Keep the tick pickup-free
	before := s.snake.Head()

	step(s)

	want := before.Step(s.snake.Direction())
	if s.snake.Head() != want {
		t.Errorf("Head = %v, want %v", s.snake.Head(), want)
	}
	if s.snake.Len() != 1 {
		t.Errorf("Len = %d, want 1 (no pickup this tick)", s.snake.Len())
	}
}

func TestStepAppliesBufferedDirection(t *testing.T) {
	s := newTestSession(t, Config{Word: "cat", Clock: newFakeClock()})
	s.food = nil
	before := s.snake.Head()

	in := core.NewInputFrame()
	in.Set(core.ActionDown)
	s.Step(in)

	if s.snake.Head() != before.Step(DirDown) {
		t.Errorf("Head = %v, want one cell down", s.snake.Head())
	}
}

func TestStepIgnoresReversalInput(t *testing.T) {
	s := newTestSession(t, Config{Word: "cat", Clock: newFakeClock()})
	s.food = nil
	before := s.snake.Head()

	in := core.NewInputFrame()
	in.Set(core.ActionLeft) // Opposite of the initial right heading
	s.Step(in)

	if s.snake.Head() != before.Step(DirRight) {
		t.Errorf("Head = %v, reversal must be silently ignored", s.snake.Head())
	}
}

func TestPickupScoresWithTimeBonus(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(t, Config{Word: "cat", Difficulty: DifficultyMedium, Clock: clock})

	// Food directly in front of the head, pickup 5 simulated seconds in.
	ahead := s.snake.Head().Step(DirRight)
	s.food = &ahead
	clock.advance(5 * time.Second)

	step(s)

	// 10 base + (20-5) bonus * 2 (medium)
	if s.Score() != 10+15*2 {
		t.Errorf("Score = %d, want %d", s.Score(), 10+15*2)
	}
	if s.Progress() != 1 {
		t.Errorf("Progress = %d, want 1", s.Progress())
	}
}

func TestPickupAfterTimeLimitScoresBasePointsOnly(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(t, Config{Word: "cat", Clock: clock})

	ahead := s.snake.Head().Step(DirRight)
	s.food = &ahead
	clock.advance(45 * time.Second)

	step(s)

	if s.Score() != 10 {
		t.Errorf("Score = %d, want 10 (time bonus floors at zero)", s.Score())
	}
}

func TestPickupGrowthAppearsOnFollowingTick(t *testing.T) {
	s := newTestSession(t, Config{Word: "cat", Clock: newFakeClock()})

	ahead := s.snake.Head().Step(DirRight)
	s.food = &ahead
	step(s)

	if s.snake.Len() != 1 {
		t.Errorf("Len = %d right after pickup, want 1 (growth deferred)", s.snake.Len())
	}

	s.food = nil
	step(s)

	if s.snake.Len() != 2 {
		t.Errorf("Len = %d one tick later, want 2", s.snake.Len())
	}
}

func TestLettersCollectedInWordOrder(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(t, Config{Word: "cat", GridWidth: 20, GridHeight: 10, Clock: clock})

	want := []rune{'c', 'a', 't'}
	for i, letter := range want {
		if s.NextLetter() != letter {
			t.Fatalf("pickup %d: NextLetter = %q, want %q", i, s.NextLetter(), letter)
		}
		ahead := s.snake.Head().Step(s.snake.Direction())
		s.food = &ahead
		step(s)
	}

	if s.NextLetter() != 0 {
		t.Errorf("NextLetter = %q after the word, want 0", s.NextLetter())
	}
	if s.Progress() != 3 {
		t.Errorf("Progress = %d, want 3", s.Progress())
	}
}

func TestLettersCollectedNeverExceedsWordLength(t *testing.T) {
	s := newTestSession(t, Config{Word: "ab", GridWidth: 20, GridHeight: 10, Clock: newFakeClock()})

	// Keep feeding the snake well past the word length.
	for i := 0; i < 6; i++ {
		ahead := s.snake.Head().Step(s.snake.Direction())
		if ahead.Col >= 20 {
			s.snake.ChangeDirection(DirDown)
			ahead = s.snake.Head().Step(DirDown)
		}
		s.food = &ahead
		step(s)
		if s.Terminal() {
			break
		}
	}

	if s.Progress() > 2 {
		t.Errorf("Progress = %d, must never exceed the word length", s.Progress())
	}
}

func TestWordCompletionBonusAndScenario(t *testing.T) {
	// Target "cat", easy, every pickup at least 20 simulated seconds apart:
	// score = 3*10 + max(0, 100-total) + 3*20.
	clock := newFakeClock()
	rec := &recorderSpy{}
	s := newTestSession(t, Config{Word: "cat", Clock: clock, Recorder: rec})

	for i := 0; i < 3; i++ {
		clock.advance(25 * time.Second)
		ahead := s.snake.Head().Step(s.snake.Direction())
		s.food = &ahead
		step(s)
	}

	// Total elapsed 75s: completion bonus = 25 + 60.
	want := 30 + 25 + 60
	if s.Score() != want {
		t.Errorf("Score = %d, want %d", s.Score(), want)
	}

	if len(rec.calls) != 1 {
		t.Fatalf("recorder called %d times, want exactly once", len(rec.calls))
	}
	call := rec.calls[0]
	if call.word != "cat" || call.difficulty != DifficultyEasy || call.score != want {
		t.Errorf("recorded %+v, want word=cat difficulty=easy score=%d", call, want)
	}
}

func TestCompletionRecordedOncePerWord(t *testing.T) {
	rec := &recorderSpy{}
	s := newTestSession(t, Config{Word: "a", GridWidth: 10, GridHeight: 10, Clock: newFakeClock(), Recorder: rec})

	for i := 0; i < 4; i++ {
		ahead := s.snake.Head().Step(s.snake.Direction())
		s.food = &ahead
		step(s)
	}

	if len(rec.calls) != 1 {
		t.Errorf("recorder called %d times, want once despite further pickups", len(rec.calls))
	}
}

func TestRecorderFailureDoesNotAbortTheTick(t *testing.T) {
	rec := &recorderSpy{err: errors.New("disk full")}
	s := newTestSession(t, Config{Word: "a", Clock: newFakeClock(), Recorder: rec})

	ahead := s.snake.Head().Step(DirRight)
	s.food = &ahead
	step(s)

	if s.Terminal() {
		t.Error("a failing recorder must not end the session")
	}
	if s.Score() == 0 {
		t.Error("scoring must proceed even when the recorder fails")
	}
}

func TestWallCollisionIsTerminal(t *testing.T) {
	s := newTestSession(t, Config{Word: "cat", GridWidth: 20, GridHeight: 10, Clock: newFakeClock()})
	s.snake = &Snake{body: []Position{{Row: 0, Col: 19}}, direction: DirRight, bodyLength: 1}
	s.food = nil

	step(s)

	snap := s.Snapshot()
	if snap.State != StateGameOver {
		t.Errorf("State = %q, want game_over after leaving the grid", snap.State)
	}
}

func TestSelfCollisionTerminalWithoutScoringOverlappedFood(t *testing.T) {
	// Head crosses into its own third segment; food sits on the same cell.
	// Collision is terminal and must win over the pickup.
	s := newTestSession(t, Config{Word: "cat", GridWidth: 20, GridHeight: 10, Clock: newFakeClock()})
	s.snake = &Snake{
		body: []Position{
			{Row: 5, Col: 5}, // Head, moving right
			{Row: 6, Col: 5},
			{Row: 6, Col: 6},
			{Row: 5, Col: 6}, // Head will land here
			{Row: 4, Col: 6},
		},
		direction:  DirRight,
		bodyLength: 5,
	}
	s.food = &Position{Row: 5, Col: 6}

	step(s)

	snap := s.Snapshot()
	if snap.State != StateGameOver {
		t.Fatalf("State = %q, want game_over", snap.State)
	}
	if snap.Score != 0 {
		t.Errorf("Score = %d, the overlapped food must not be scored", snap.Score)
	}
	if snap.LettersCollected != 0 {
		t.Errorf("LettersCollected = %d, want 0", snap.LettersCollected)
	}
}

func TestFullGridBecomesWonNotGameOver(t *testing.T) {
	// 2x2 grid, snake about to occupy every cell after the final pickup.
	s := newTestSession(t, Config{Word: "abcd", GridWidth: 2, GridHeight: 2, Clock: newFakeClock()})
	s.snake = &Snake{
		body: []Position{
			{Row: 0, Col: 1}, // Head
			{Row: 0, Col: 0},
			{Row: 1, Col: 0},
		},
		direction:     DirDown,
		pendingGrowth: true,
		bodyLength:    4,
	}
	s.lettersCollected = 3
	s.food = &Position{Row: 1, Col: 1}

	step(s)

	snap := s.Snapshot()
	if snap.State != StateWon {
		t.Fatalf("State = %q, want won", snap.State)
	}
	if snap.Food != nil {
		t.Error("Food must be absent in the won state")
	}
}

func TestTerminalStateFreezesTheSession(t *testing.T) {
	s := newTestSession(t, Config{Word: "cat", GridWidth: 20, GridHeight: 10, Clock: newFakeClock()})
	s.snake = &Snake{body: []Position{{Row: 0, Col: 19}}, direction: DirRight, bodyLength: 1}
	step(s)

	before := s.Snapshot()
	if before.State != StateGameOver {
		t.Fatalf("setup: State = %q, want game_over", before.State)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionDown)
	in.Set(core.ActionPause)
	for i := 0; i < 10; i++ {
		s.Step(in)
	}

	after := s.Snapshot()
	if after.Score != before.Score || after.Head != before.Head || len(after.Body) != len(before.Body) {
		t.Error("a terminal session must not mutate on further steps")
	}
	if after.Tick != before.Tick {
		t.Error("a terminal session must not keep ticking")
	}
}

func TestPausePreventsSimulation(t *testing.T) {
	s := newTestSession(t, Config{Word: "cat", Clock: newFakeClock()})
	s.food = nil
	head := s.snake.Head()

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	s.Step(in)

	if s.Snapshot().State != StatePaused {
		t.Fatalf("State = %q, want paused", s.Snapshot().State)
	}

	// Steps and direction changes do nothing while paused.
	step(s)
	s.ChangeDirection(DirDown)
	if s.snake.Head() != head {
		t.Error("the snake must not move while paused")
	}
	if s.snake.Direction() != DirRight {
		t.Error("direction changes are no-ops while paused")
	}

	// Unpause resumes ticking.
	s.Step(in)
	step(s)
	if s.snake.Head() == head {
		t.Error("the snake should move again after unpausing")
	}
}

func TestHintToggle(t *testing.T) {
	s := newTestSession(t, Config{Word: "cat", Clock: newFakeClock()})
	s.food = nil

	in := core.NewInputFrame()
	in.Set(core.ActionHint)
	s.Step(in)

	if !s.Snapshot().HintShown {
		t.Error("hint should be shown after toggling")
	}

	s.Step(in)
	if s.Snapshot().HintShown {
		t.Error("hint should be hidden after toggling twice")
	}
}

func TestFoodNeverSpawnsOnSnake(t *testing.T) {
	s := newTestSession(t, Config{Word: "abcdefgh", GridWidth: 6, GridHeight: 6, Seed: 7, Clock: newFakeClock()})

	for i := 0; i < 100; i++ {
		s.spawnFood()
		if s.food == nil {
			t.Fatal("food absent on a grid with empty cells")
		}
		if s.snake.Occupies(*s.food) {
			t.Fatalf("food spawned on the snake at %v", *s.food)
		}
		if s.food.Row < 0 || s.food.Row >= 6 || s.food.Col < 0 || s.food.Col >= 6 {
			t.Fatalf("food out of bounds at %v", *s.food)
		}
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	run := func() Snapshot {
		clock := newFakeClock()
		s := newTestSession(t, Config{Word: "snake", GridWidth: 20, GridHeight: 10, Seed: 12345, Clock: clock})
		in := core.NewInputFrame()
		// Steer a small clockwise box that stays on the grid.
		turns := []core.Action{core.ActionDown, core.ActionLeft, core.ActionUp, core.ActionRight}
		for i := 0; i < 60; i++ {
			in.Clear()
			if i%2 == 1 {
				in.Set(turns[(i/2)%len(turns)])
			}
			clock.advance(200 * time.Millisecond)
			s.Step(in)
		}
		return s.Snapshot()
	}

	a, b := run(), run()

	if a.Head != b.Head || a.Score != b.Score || a.State != b.State {
		t.Errorf("same seed diverged: %+v vs %+v", a, b)
	}
	if (a.Food == nil) != (b.Food == nil) {
		t.Fatal("food presence diverged")
	}
	if a.Food != nil && *a.Food != *b.Food {
		t.Errorf("food diverged: %v vs %v", *a.Food, *b.Food)
	}
}

func TestResetStartsOver(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(t, Config{Word: "cat", GridWidth: 20, GridHeight: 10, Clock: clock})

	ahead := s.snake.Head().Step(DirRight)
	s.food = &ahead
	step(s)
	s.snake = &Snake{body: []Position{{Row: 0, Col: 19}}, direction: DirRight, bodyLength: 1}
	step(s)

	if !s.Terminal() {
		t.Fatal("setup: session should be terminal")
	}

	s.Reset(99)

	snap := s.Snapshot()
	if snap.State != StateRunning {
		t.Errorf("State = %q after reset, want running", snap.State)
	}
	if snap.Score != 0 || snap.LettersCollected != 0 {
		t.Error("reset must zero score and progress")
	}
	if snap.Head != (Position{Row: 5, Col: 10}) {
		t.Errorf("Head = %v after reset, want the grid center", snap.Head)
	}
	if snap.Word != "cat" {
		t.Error("reset must keep the target word")
	}
}

func TestMessageCountdownExpires(t *testing.T) {
	s := newTestSession(t, Config{Word: "cat", MessageTicks: 3, Clock: newFakeClock()})

	ahead := s.snake.Head().Step(DirRight)
	s.food = &ahead
	step(s)

	snap := s.Snapshot()
	if snap.Message == "" || snap.MessageTicks != 3 {
		t.Fatalf("pickup should set a message with a countdown, got %+v", snap)
	}

	s.food = nil
	for i := 0; i < 3; i++ {
		step(s)
	}

	if s.Snapshot().Message != "" {
		t.Error("message should expire after its countdown")
	}
}

func TestSnapshotSegmentLetters(t *testing.T) {
	s := newTestSession(t, Config{Word: "cat", Clock: newFakeClock()})
	snap := s.Snapshot()

	want := map[int]rune{0: 0, 1: 'c', 2: 'a', 3: 't', 4: 0}
	for i, letter := range want {
		if got := snap.SegmentLetter(i); got != letter {
			t.Errorf("SegmentLetter(%d) = %q, want %q", i, got, letter)
		}
	}
}

func TestSnapshotBodyIsACopy(t *testing.T) {
	s := newTestSession(t, Config{Word: "cat", Clock: newFakeClock()})
	s.food = nil

	snap := s.Snapshot()
	head := snap.Body[0]
	step(s)

	if snap.Body[0] != head {
		t.Error("a snapshot must not change when the session steps")
	}
}
