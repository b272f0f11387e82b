package domain

import (
	"fmt"
	"slices"
)

// ColumnKey identifies one of the three fixed board columns
type ColumnKey int

const (
	ColumnTodo ColumnKey = iota
	ColumnInProgress
	ColumnDone

	columnCount = 3
)

// ColumnKeys lists every column key in display order
var ColumnKeys = [columnCount]ColumnKey{ColumnTodo, ColumnInProgress, ColumnDone}

// String returns the persisted key of the column
func (k ColumnKey) String() string {
	switch k {
	case ColumnTodo:
		return "todo"
	case ColumnInProgress:
		return "inProgress"
	case ColumnDone:
		return "done"
	default:
		return fmt.Sprintf("column(%d)", int(k))
	}
}

// DefaultName returns the label a fresh board uses for the column
func (k ColumnKey) DefaultName() string {
	switch k {
	case ColumnTodo:
		return "Todo"
	case ColumnInProgress:
		return "In Progress"
	case ColumnDone:
		return "Done"
	default:
		return ""
	}
}

// Valid reports whether k is one of the fixed column keys
func (k ColumnKey) Valid() bool {
	return k >= ColumnTodo && k < columnCount
}

// ParseColumnKey converts a persisted column key
func ParseColumnKey(s string) (ColumnKey, error) {
	for _, k := range ColumnKeys {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, s)
}

// Column is an ordered, named holder of tasks. A Column value is never
// modified after construction.
type Column struct {
	key   ColumnKey
	name  string
	items []Task
}

// NewColumn builds a column holding a copy of tasks
func NewColumn(key ColumnKey, name string, tasks []Task) Column {
	return Column{key: key, name: name, items: slices.Clone(tasks)}
}

// Key returns the column key
func (c Column) Key() ColumnKey {
	return c.key
}

// Name returns the display label
func (c Column) Name() string {
	return c.name
}

// Len returns the number of tasks in the column
func (c Column) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the column holds no tasks
func (c Column) IsEmpty() bool {
	return len(c.items) == 0
}

// Task returns the task at index
func (c Column) Task(index int) (Task, bool) {
	if index < 0 || index >= len(c.items) {
		return Task{}, false
	}
	return c.items[index], true
}

// Tasks returns a copy of the column's tasks in order
func (c Column) Tasks() []Task {
	return slices.Clone(c.items)
}

// IndexOf returns the position of the task with id, or -1
func (c Column) IndexOf(id TaskID) int {
	return slices.IndexFunc(c.items, func(t Task) bool { return t.ID == id })
}

// Equal reports whether both columns have the same key, name and tasks
func (c Column) Equal(other Column) bool {
	return c.key == other.key && c.name == other.name && slices.Equal(c.items, other.items)
}

// without returns a copy of the column with the task at index removed
func (c Column) without(index int) Column {
	items := make([]Task, 0, len(c.items)-1)
	items = append(items, c.items[:index]...)
	items = append(items, c.items[index+1:]...)
	return Column{key: c.key, name: c.name, items: items}
}

// with returns a copy of the column with task appended
func (c Column) with(task Task) Column {
	items := make([]Task, 0, len(c.items)+1)
	items = append(items, c.items...)
	items = append(items, task)
	return Column{key: c.key, name: c.name, items: items}
}
