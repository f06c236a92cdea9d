// Package export renders the task collection into a markdown document.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"todo/internal/models"
)

// ErrNothingToExport is returned when the collection is empty.
var ErrNothingToExport = errors.New("no tasks to export")

// filenameLayout keeps subsequent exports from overwriting each other
// (second-resolution collisions accepted).
const filenameLayout = "20060102_150405"

// Exporter writes export documents into Dir.
type Exporter struct {
	Dir string

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

// New returns an exporter writing into dir.
func New(dir string) *Exporter {
	return &Exporter{Dir: dir, now: time.Now}
}

// WithClock overrides the exporter's clock. Tests use this to pin the
// generated filename and header timestamp.
func (e *Exporter) WithClock(now func() time.Time) *Exporter {
	e.now = now
	return e
}

// Export writes a markdown document with a pending and a completed section,
// preserving the collection order within each section, and returns the
// generated filename.
func (e *Exporter) Export(tasks []models.Task) (string, error) {
	if len(tasks) == 0 {
		return "", ErrNothingToExport
	}

	now := e.now()
	filename := filepath.Join(e.Dir, fmt.Sprintf("todo_export_%s.md", now.Format(filenameLayout)))

	var b strings.Builder
	b.WriteString("# Todo List\n\n")
	fmt.Fprintf(&b, "Exported on: %s\n\n", now.Format(models.TimeLayout))

	b.WriteString("## Pending Tasks\n\n")
	for _, t := range tasks {
		if !t.Done {
			writeItem(&b, "- [ ] ", t)
		}
	}

	b.WriteString("\n## Completed Tasks\n\n")
	for _, t := range tasks {
		if t.Done {
			writeItem(&b, "- [x] ", t)
		}
	}

	if err := os.WriteFile(filename, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return filename, nil
}

func writeItem(b *strings.Builder, checkbox string, t models.Task) {
	b.WriteString(checkbox)
	if t.Priority.Valid() {
		fmt.Fprintf(b, "[!%s] ", t.Priority)
	}
	b.WriteString(t.Name)
	b.WriteString("\n")
}
