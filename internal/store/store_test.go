package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"todo/internal/models"
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "tasks.json"))
}

func TestLoadMissingFile(t *testing.T) {
	s := tempStore(t)

	tasks, err := s.Load()
	if err != nil {
		t.Fatalf("Load() on missing file failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Load() on missing file = %d tasks, want 0", len(tasks))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := tempStore(t)

	created := models.NewTimestamp(time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local))
	want := []models.Task{
		{ID: 1, Name: "Fix bug", Priority: models.PriorityHigh, CreatedAt: created},
		{ID: 2, Name: "Buy milk", Priority: models.PriorityMedium, Done: true, CreatedAt: created},
	}

	if err := s.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Load() = %d tasks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Name != want[i].Name ||
			got[i].Priority != want[i].Priority || got[i].Done != want[i].Done {
			t.Errorf("task %d = %+v, want %+v", i, got[i], want[i])
		}
		if !got[i].CreatedAt.Equal(want[i].CreatedAt.Time) {
			t.Errorf("task %d created_at = %v, want %v", i, got[i].CreatedAt, want[i].CreatedAt)
		}
	}
}

func TestLoadMalformedFile(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	tasks, err := s.Load()
	if err == nil {
		t.Fatal("Load() on malformed file should return an error")
	}
	if len(tasks) != 0 {
		t.Errorf("Load() on malformed file = %d tasks, want 0", len(tasks))
	}

	// The file on disk must be untouched.
	data, readErr := os.ReadFile(s.Path())
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(data) != "{not json" {
		t.Error("Load() must not modify the file on disk")
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := tempStore(t)

	if err := s.Save([]models.Task{{ID: 1, Name: "First", Priority: models.PriorityLow, CreatedAt: models.Now()}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(nil); err != nil {
		t.Fatal(err)
	}

	tasks, err := s.Load()
	if err != nil {
		t.Fatalf("Load() after empty Save() failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Save(nil) should leave an empty collection, got %d tasks", len(tasks))
	}
}

func TestStoreFileIsHumanReadable(t *testing.T) {
	s := tempStore(t)
	if err := s.Save([]models.Task{{ID: 1, Name: "Call mom", Priority: models.PriorityHigh, CreatedAt: models.Now()}}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{`"id"`, `"name"`, `"priority"`, `"done"`, `"created_at"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("store file missing field %s:\n%s", field, data)
		}
	}
}

func TestSaveUnwritablePathFails(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing", "dir", "tasks.json"))
	if err := s.Save([]models.Task{{ID: 1, Name: "x", Priority: models.PriorityLow, CreatedAt: models.Now()}}); err == nil {
		t.Error("Save() into a nonexistent directory should fail")
	}
}
