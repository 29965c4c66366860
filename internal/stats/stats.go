// Package stats persists lifetime player statistics as a single JSON
// document, updated once per completed word.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/Bravine-Kulei/snake-game-learner/internal/game"
)

// Record is the on-disk statistics document.
type Record struct {
	WordsCompleted   int            `json:"words_completed"`
	TotalScore       int            `json:"total_score"`
	WordsByDifficulty map[string]int `json:"words_by_difficulty"`
	CompletedWords   []string       `json:"completed_words"`
}

// NewRecord returns a zeroed record with the difficulty map pre-filled,
// so display code never has to nil-check it.
func NewRecord() Record {
	byDiff := make(map[string]int, 3)
	for _, d := range game.Difficulties() {
		byDiff[string(d)] = 0
	}
	return Record{
		WordsByDifficulty: byDiff,
		CompletedWords:    []string{},
	}
}

// Contains reports whether the word was completed before.
func (r Record) Contains(word string) bool {
	for _, w := range r.CompletedWords {
		if w == word {
			return true
		}
	}
	return false
}

// FileStore reads and updates the statistics file. It implements
// game.Recorder. A missing or corrupt file is treated as a fresh record,
// never as an error.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *log.Logger
}

// NewFileStore creates a store for the given path. "~/" is expanded to
// the user's home directory.
func NewFileStore(path string, logger *log.Logger) (*FileStore, error) {
	if logger == nil {
		logger = log.Default()
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("expand home dir: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create stats dir: %w", err)
		}
	}
	return &FileStore{path: path, logger: logger}, nil
}

// Path returns the resolved statistics file path.
func (fs *FileStore) Path() string {
	return fs.path
}

// Load reads the statistics file. A missing or unreadable file yields a
// zeroed record.
func (fs *FileStore) Load() Record {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.load()
}

func (fs *FileStore) load() Record {
	rec := NewRecord()
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if !os.IsNotExist(err) {
			fs.logger.Warn("could not read stats file, starting fresh", "path", fs.path, "err", err)
		}
		return rec
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		fs.logger.Warn("stats file is corrupt, starting fresh", "path", fs.path, "err", err)
		return NewRecord()
	}
	if rec.WordsByDifficulty == nil {
		rec.WordsByDifficulty = NewRecord().WordsByDifficulty
	}
	if rec.CompletedWords == nil {
		rec.CompletedWords = []string{}
	}
	return rec
}

// RecordCompletion folds one completed word into the statistics and
// writes the file back atomically.
func (fs *FileStore) RecordCompletion(word string, difficulty game.Difficulty, score int) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	rec := fs.load()
	rec.WordsCompleted++
	rec.TotalScore += score
	rec.WordsByDifficulty[string(difficulty)]++
	if !rec.Contains(word) {
		rec.CompletedWords = append(rec.CompletedWords, word)
	}

	if err := fs.write(rec); err != nil {
		return fmt.Errorf("record completion: %w", err)
	}
	return nil
}

// write replaces the stats file via a temp file and rename, so a crash
// mid-write never leaves a truncated document behind.
func (fs *FileStore) write(rec Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(fs.path), ".stats-*.json")
	if err != nil {
		return fmt.Errorf("create temp stats file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp stats file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp stats file: %w", err)
	}
	if err := os.Rename(tmp.Name(), fs.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace stats file: %w", err)
	}
	return nil
}
