// Package score persists the high score and games-played counter. Calls
// are fire-and-forget: storage failures are logged and swallowed, never
// propagated into the simulation.
package score

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Recorder is the persistence collaborator the game calls out to on game
// over.
type Recorder interface {
	UpdateHighScore(final int)
	IncrementGamesPlayed()
}

// Discard is a Recorder that drops everything. Useful in tests.
type Discard struct{}

func (Discard) UpdateHighScore(int)    {}
func (Discard) IncrementGamesPlayed() {}

// record is the on-disk shape of the score file.
type record struct {
	HighScore   int `yaml:"high_score"`
	GamesPlayed int `yaml:"games_played"`
}

// FileStore keeps the score record in a YAML file. Safe for concurrent use;
// SSH sessions share one store per process.
type FileStore struct {
	mu     sync.Mutex
	path   string
	rec    record
	logger *log.Logger
}

// Open loads the score record at path, creating parent directories as
// needed. A missing or unreadable file starts an empty record; the error is
// logged, not returned, because score storage must never block play.
func Open(path string, logger *log.Logger) *FileStore {
	s := &FileStore{path: path, logger: logger}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("score file unreadable, starting fresh", "path", path, "err", err)
		}
		return s
	}
	if err := yaml.Unmarshal(data, &s.rec); err != nil {
		logger.Warn("score file corrupt, starting fresh", "path", path, "err", err)
		s.rec = record{}
	}
	return s
}

// DefaultPath returns the per-user score file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "starfall_scores.yaml"
	}
	return filepath.Join(home, ".starfall", "scores.yaml")
}

// HighScore returns the best score seen so far.
func (s *FileStore) HighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.HighScore
}

// GamesPlayed returns the number of completed games.
func (s *FileStore) GamesPlayed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.GamesPlayed
}

// UpdateHighScore records final if it beats the stored high score.
func (s *FileStore) UpdateHighScore(final int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if final <= s.rec.HighScore {
		return
	}
	s.rec.HighScore = final
	s.flushLocked()
}

// IncrementGamesPlayed bumps the games-played counter.
func (s *FileStore) IncrementGamesPlayed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.GamesPlayed++
	s.flushLocked()
}

func (s *FileStore) flushLocked() {
	data, err := yaml.Marshal(&s.rec)
	if err != nil {
		s.logger.Warn("score marshal failed", "err", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.logger.Warn("score dir create failed", "path", s.path, "err", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.logger.Warn("score write failed", "path", s.path, "err", err)
	}
}
