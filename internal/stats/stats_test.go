package stats

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Bravine-Kulei/snake-game-learner/internal/game"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stats.json")
	fs, err := NewFileStore(path, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return fs
}

func TestLoadMissingFileYieldsZeroedRecord(t *testing.T) {
	fs := newTestStore(t)
	rec := fs.Load()

	if rec.WordsCompleted != 0 || rec.TotalScore != 0 {
		t.Errorf("fresh record = %+v, want zeroes", rec)
	}
	for _, d := range game.Difficulties() {
		if _, ok := rec.WordsByDifficulty[string(d)]; !ok {
			t.Errorf("difficulty map missing %q", d)
		}
	}
}

func TestLoadCorruptFileYieldsZeroedRecord(t *testing.T) {
	fs := newTestStore(t)
	if err := os.WriteFile(fs.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	rec := fs.Load()
	if rec.WordsCompleted != 0 {
		t.Errorf("WordsCompleted = %d, want 0 for a corrupt file", rec.WordsCompleted)
	}
}

func TestRecordCompletionAccumulates(t *testing.T) {
	fs := newTestStore(t)

	if err := fs.RecordCompletion("cat", game.DifficultyEasy, 115); err != nil {
		t.Fatalf("RecordCompletion: %v", err)
	}
	if err := fs.RecordCompletion("snake", game.DifficultyMedium, 210); err != nil {
		t.Fatalf("RecordCompletion: %v", err)
	}

	rec := fs.Load()
	if rec.WordsCompleted != 2 {
		t.Errorf("WordsCompleted = %d, want 2", rec.WordsCompleted)
	}
	if rec.TotalScore != 325 {
		t.Errorf("TotalScore = %d, want 325", rec.TotalScore)
	}
	if rec.WordsByDifficulty["easy"] != 1 || rec.WordsByDifficulty["medium"] != 1 {
		t.Errorf("WordsByDifficulty = %v", rec.WordsByDifficulty)
	}
	if !rec.Contains("cat") || !rec.Contains("snake") {
		t.Errorf("CompletedWords = %v", rec.CompletedWords)
	}
}

func TestRecordCompletionDeduplicatesWordsButCountsCompletions(t *testing.T) {
	fs := newTestStore(t)
	for i := 0; i < 3; i++ {
		if err := fs.RecordCompletion("cat", game.DifficultyEasy, 100); err != nil {
			t.Fatalf("RecordCompletion: %v", err)
		}
	}

	rec := fs.Load()
	if rec.WordsCompleted != 3 {
		t.Errorf("WordsCompleted = %d, want 3", rec.WordsCompleted)
	}
	if len(rec.CompletedWords) != 1 {
		t.Errorf("CompletedWords = %v, want the word listed once", rec.CompletedWords)
	}
}

func TestFileIsWellFormedJSON(t *testing.T) {
	fs := newTestStore(t)
	if err := fs.RecordCompletion("rocket", game.DifficultyMedium, 250); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fs.Path())
	if err != nil {
		t.Fatal(err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		t.Fatalf("stats file is not valid JSON: %v", err)
	}
	if rec.TotalScore != 250 {
		t.Errorf("TotalScore on disk = %d, want 250", rec.TotalScore)
	}
}

func TestLoadSurvivesPartialDocument(t *testing.T) {
	fs := newTestStore(t)
	// Older files may predate some fields; missing maps must be filled in.
	if err := os.WriteFile(fs.Path(), []byte(`{"words_completed": 4}`), 0o644); err != nil {
		t.Fatal(err)
	}

	rec := fs.Load()
	if rec.WordsCompleted != 4 {
		t.Errorf("WordsCompleted = %d, want 4", rec.WordsCompleted)
	}
	if rec.WordsByDifficulty == nil || rec.CompletedWords == nil {
		t.Error("missing fields must be initialized on load")
	}
}
