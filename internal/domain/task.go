// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// Task represents a single to-do item.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created   time.Time `json:"createdAt"`           // Creation time, immutable
	Updated   time.Time `json:"updatedAt,omitzero"`  // Last mutation time, zero until first mutation
	ID        string    `json:"id"`                  // Unique identifier, immutable
	Text      string    `json:"text"`                // Display text (trimmed, never empty)
	Completed bool      `json:"completed"`           // Completion flag
}

// NormalizeText trims surrounding whitespace from task text.
// Returns the trimmed text and whether anything remains.
func NormalizeText(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	return trimmed, trimmed != ""
}

// CloneTasks returns a shallow copy of the collection so callers can hold
// a snapshot without aliasing the owner's backing array.
func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}

// IndexByID returns the position of the task with the given ID, or -1.
func IndexByID(tasks []Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
