package task

import (
	"fmt"
	"sort"

	"todo/internal/models"
)

// Store persists the task collection between invocations.
type Store interface {
	Load() ([]models.Task, error)
	Save([]models.Task) error
}

// Service defines all task-related business operations
type Service interface {
	// Write operations. Each persists through the store on success and
	// leaves the collection sorted (pending before done, then by priority
	// rank) as a post-condition.
	Add(name string, priority models.Priority) (*models.Task, error)
	Delete(id int) (*models.Task, error)
	Update(req UpdateRequest) (*models.Task, error)
	ToggleDone(id int) (*models.Task, error)

	// Read operations
	List() []models.Task

	// Save forces a persist without mutation.
	Save() error
}

// UpdateRequest encapsulates all data needed to update a task.
// Fields with pointers are optional - nil means don't update.
type UpdateRequest struct {
	ID       int
	Name     *string
	Priority *models.Priority
}

// service implements Service interface
type service struct {
	store Store
	tasks []models.Task
}

// NewService creates a service over an initial collection, normally the
// result of Store.Load. The collection is sorted on construction so a
// hand-edited store file lists in the expected order.
func NewService(store Store, initial []models.Task) Service {
	s := &service{store: store, tasks: initial}
	s.sortTasks()
	return s
}

// Add validates the priority, assigns the next free id and appends the task
func (s *service) Add(name string, priority models.Priority) (*models.Task, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if priority == "" {
		priority = models.DefaultPriority
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	created := models.Task{
		ID:        s.nextID(),
		Name:      name,
		Priority:  priority,
		CreatedAt: models.Now(),
	}
	s.tasks = append(s.tasks, created)
	s.sortTasks()

	if err := s.persist(); err != nil {
		return nil, err
	}
	return s.snapshot(created.ID), nil
}

// Delete removes the task with the given id. Remaining ids are not
// renumbered.
func (s *service) Delete(id int) (*models.Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrTaskNotFound
	}

	removed := s.tasks[idx]
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)

	if err := s.persist(); err != nil {
		return nil, err
	}
	return &removed, nil
}

// Update replaces the given fields of the task with the given id. An
// invalid priority aborts the whole update: the name is left unchanged too.
func (s *service) Update(req UpdateRequest) (*models.Task, error) {
	t := s.find(req.ID)
	if t == nil {
		return nil, ErrTaskNotFound
	}

	// Priority validation gates before any field is written.
	if req.Priority != nil && !req.Priority.Valid() {
		return nil, ErrInvalidPriority
	}
	if req.Name != nil && *req.Name == "" {
		return nil, ErrEmptyName
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	s.sortTasks()

	if err := s.persist(); err != nil {
		return nil, err
	}
	return s.snapshot(req.ID), nil
}

// ToggleDone flips the completion flag of the task with the given id.
func (s *service) ToggleDone(id int) (*models.Task, error) {
	t := s.find(id)
	if t == nil {
		return nil, ErrTaskNotFound
	}

	t.Done = !t.Done
	s.sortTasks()

	if err := s.persist(); err != nil {
		return nil, err
	}
	return s.snapshot(id), nil
}

// List returns a copy of the collection in its current (sorted) order.
func (s *service) List() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Save persists the collection without mutating it.
func (s *service) Save() error {
	return s.persist()
}

// sortTasks restores the ordering invariant: pending tasks before completed
// ones, then ascending priority rank. The sort is stable so ties keep their
// relative order.
func (s *service) sortTasks() {
	sort.SliceStable(s.tasks, func(i, j int) bool {
		a, b := s.tasks[i], s.tasks[j]
		if a.Done != b.Done {
			return !a.Done
		}
		return a.Priority.Rank() < b.Priority.Rank()
	})
}

// nextID is one past the collection size. After deletions that value can
// collide with a surviving task, so it is bumped until free; ids of deleted
// tasks are never handed out again downward.
func (s *service) nextID() int {
	id := len(s.tasks) + 1
	for s.indexOf(id) >= 0 {
		id++
	}
	return id
}

func (s *service) indexOf(id int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *service) find(id int) *models.Task {
	if idx := s.indexOf(id); idx >= 0 {
		return &s.tasks[idx]
	}
	return nil
}

// snapshot returns a copy so callers cannot mutate the collection through
// the returned pointer.
func (s *service) snapshot(id int) *models.Task {
	if t := s.find(id); t != nil {
		cp := *t
		return &cp
	}
	return nil
}

func (s *service) persist() error {
	if err := s.store.Save(s.tasks); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}
