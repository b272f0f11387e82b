package domain

import (
	"fmt"
	"strings"
)

// TaskID is the opaque identifier of a task. It is assigned once at
// creation and never reused.
type TaskID string

// String returns the identifier text
func (id TaskID) String() string {
	return string(id)
}

// Task is a single unit of work on the board
type Task struct {
	ID       TaskID
	Title    string
	Priority Priority
}

// NewTask builds a task with a trimmed title, rejecting blank titles,
// empty IDs and unknown priorities.
func NewTask(id TaskID, title string, priority Priority) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrBlankTitle
	}
	if strings.TrimSpace(string(id)) == "" {
		return Task{}, ErrEmptyID
	}
	if !priority.Valid() {
		return Task{}, fmt.Errorf("%w: %d", ErrInvalidPriority, int(priority))
	}
	return Task{ID: id, Title: title, Priority: priority}, nil
}

// validate checks a task that did not come through NewTask
func (t Task) validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrBlankTitle
	}
	if strings.TrimSpace(t.Title) != t.Title {
		return ErrUntrimmedTitle
	}
	if strings.TrimSpace(string(t.ID)) == "" {
		return ErrEmptyID
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPriority, int(t.Priority))
	}
	return nil
}

// Priority is an optional task priority. The zero value means no
// priority has been set.
type Priority int

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

// String returns the persisted name of the priority, or "" for none
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return ""
	}
}

// Label returns the display string
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "None"
	}
}

// IsSet reports whether a priority was chosen
func (p Priority) IsSet() bool {
	return p != PriorityNone
}

// Valid reports whether p is one of the known priorities (including none)
func (p Priority) Valid() bool {
	return p >= PriorityNone && p <= PriorityHigh
}

// ParsePriority converts a persisted priority name. An empty string
// yields PriorityNone.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "":
		return PriorityNone, nil
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	default:
		return PriorityNone, fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
}
