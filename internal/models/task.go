package models

// Task is a single to-do entry. JSON field names match the store file
// exactly so the file stays hand-editable.
type Task struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Priority  Priority  `json:"priority"`
	Done      bool      `json:"done"`
	CreatedAt Timestamp `json:"created_at"`
}

// GetID returns the task ID. Quiet-mode output relies on this.
func (t Task) GetID() int {
	return t.ID
}

// Status returns the human-readable completion state.
func (t Task) Status() string {
	if t.Done {
		return "completed"
	}
	return "pending"
}
