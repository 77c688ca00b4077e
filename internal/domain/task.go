package domain

import (
	"task-tracker/internal/idgen"
)

// Task represents a task in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID   string
	Name string
	Done bool
}

// NewTask creates a new, not yet completed Task with a freshly generated ID.
func NewTask(name string) Task {
	return Task{
		ID:   idgen.Generate(),
		Name: name,
		Done: false,
	}
}

// Mark returns the single-character completion marker.
func (t Task) Mark() string {
	if t.Done {
		return "X"
	}
	return " "
}

// DisplayLine renders the task as a list line, e.g. "[ ] a1b2c3d4 Buy milk".
func (t Task) DisplayLine() string {
	return "[" + t.Mark() + "] " + t.ID + " " + t.Name
}
