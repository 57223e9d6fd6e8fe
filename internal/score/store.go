// Package score persists the high score as a single decimal integer.
package score

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DefaultPath is the score file used when none is configured.
const DefaultPath = "highest_score.txt"

// ErrNegative is returned for scores below zero.
var ErrNegative = errors.New("score: negative high score")

// Store reads and writes the high score file.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path is the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load returns the saved high score. A missing file is a score of zero
// and no error; any other problem also yields zero, along with the reason.
func (s *Store) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return 0, fmt.Errorf("parse high score %s: %w", s.path, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("parse high score %s: %w", s.path, ErrNegative)
	}
	return n, nil
}

// Save overwrites the file with n.
func (s *Store) Save(n int) error {
	if n < 0 {
		return ErrNegative
	}
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	return nil
}
