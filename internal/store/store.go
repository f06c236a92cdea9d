// Package store persists the task collection to a single JSON file.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"todo/internal/models"
)

// FileStore reads and writes the full task collection at a fixed path.
// The path is injected so tests can point it at a temp directory.
type FileStore struct {
	path string
}

// New returns a store backed by the file at path.
func New(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the task collection from disk. A missing file yields an empty
// collection. A file that cannot be parsed yields an empty collection and an
// error; the file itself is left untouched so the data can still be
// recovered by hand before the next save overwrites it.
func (s *FileStore) Load() ([]models.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return tasks, nil
}

// Save serializes the full collection and overwrites the file. There is no
// atomic-write guarantee; a crash mid-write is caught by the Load error
// path on the next run.
func (s *FileStore) Save(tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize tasks: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}
