package domain

import (
	"fmt"
	"time"
)

// CreatedDateFormat is the timestamp layout stored with every task.
const CreatedDateFormat = "2006-01-02 15:04:05"

// timeNow is a variable so tests can pin the clock
var timeNow = time.Now

// Task represents a single to-do item in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	Name        string
	Priority    Priority
	Completed   bool
	CreatedDate string
}

// NewTask creates a new Task with the given name and priority,
// stamped with the current local time.
func NewTask(name string, priority Priority) Task {
	return NewTaskAt(name, priority, timeNow().Format(CreatedDateFormat))
}

// NewTaskAt creates a Task with an explicit creation timestamp.
// Used when reconstructing tasks from persisted records.
func NewTaskAt(name string, priority Priority, createdDate string) Task {
	if createdDate == "" {
		createdDate = timeNow().Format(CreatedDateFormat)
	}
	return Task{
		Name:        name,
		Priority:    priority,
		CreatedDate: createdDate,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Name != ""
}

// String renders the task as a single display line: status marker,
// fixed-width priority label, name, and the date portion of the
// creation timestamp.
func (t Task) String() string {
	return t.Render(6)
}

// Render is String with a configurable priority label width. An unknown
// priority label longer than the width loses its alignment but still
// renders.
func (t Task) Render(priorityWidth int) string {
	status := "[ ]"
	if t.Completed {
		status = "[DONE]"
	}
	return fmt.Sprintf("%s (P: %-*s) %s (Created: %s)", status, priorityWidth, string(t.Priority), t.Name, t.createdDatePortion())
}

// ToggleComplete flips the completion flag.
func (t *Task) ToggleComplete() {
	t.Completed = !t.Completed
}

// MarkComplete sets the completion flag.
func (t *Task) MarkComplete() {
	t.Completed = true
}

// createdDatePortion returns the first 10 characters of the creation
// timestamp, the date part of the stored layout. Shorter values from
// hand-edited files are returned as-is.
func (t Task) createdDatePortion() string {
	if len(t.CreatedDate) > 10 {
		return t.CreatedDate[:10]
	}
	return t.CreatedDate
}
