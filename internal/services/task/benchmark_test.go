package task

import (
	"fmt"
	"testing"

	"todo/internal/models"
)

// ============================================================================
// BENCHMARK SETUP HELPERS
// ============================================================================

// discardStore avoids measuring disk I/O in sort benchmarks
type discardStore struct{}

func (discardStore) Load() ([]models.Task, error) { return nil, nil }
func (discardStore) Save([]models.Task) error     { return nil }

// benchmarkTasks builds a worst-case-ish collection: reverse priority order
// with alternating completion flags.
func benchmarkTasks(n int) []models.Task {
	priorities := []models.Priority{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}
	tasks := make([]models.Task, n)
	for i := range tasks {
		tasks[i] = models.Task{
			ID:       i + 1,
			Name:     fmt.Sprintf("task %d", i+1),
			Priority: priorities[i%len(priorities)],
			Done:     i%2 == 0,
		}
	}
	return tasks
}

func BenchmarkSortTasks(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("n=%d", size), func(b *testing.B) {
			s := &service{store: discardStore{}, tasks: benchmarkTasks(size)}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.sortTasks()
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	s := NewService(discardStore{}, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Add(fmt.Sprintf("task %d", i), models.PriorityMedium); err != nil {
			b.Fatal(err)
		}
	}
}
