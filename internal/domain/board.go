// Package domain contains the board state engine: tasks, the three fixed
// columns, and the pure operations that move tasks between them.
package domain

import (
	"fmt"
	"strings"
)

// Board is the aggregate root: exactly one column per ColumnKey.
//
// Board is a value. Every operation returns a new Board and leaves the
// receiver untouched; columns that an operation does not affect are
// shared with the previous value.
type Board struct {
	columns [columnCount]Column
}

// DefaultBoard returns three empty columns with their default names
func DefaultBoard() Board {
	return EmptyBoard(ColumnNames{})
}

// ColumnNames overrides column labels for a fresh board. Blank fields
// keep the default label.
type ColumnNames struct {
	Todo       string
	InProgress string
	Done       string
}

func (n ColumnNames) nameFor(key ColumnKey) string {
	var name string
	switch key {
	case ColumnTodo:
		name = n.Todo
	case ColumnInProgress:
		name = n.InProgress
	case ColumnDone:
		name = n.Done
	}
	if strings.TrimSpace(name) == "" {
		return key.DefaultName()
	}
	return name
}

// EmptyBoard returns three empty columns labelled with names
func EmptyBoard(names ColumnNames) Board {
	var b Board
	for _, key := range ColumnKeys {
		b.columns[key] = Column{key: key, name: names.nameFor(key), items: []Task{}}
	}
	return b
}

// NewBoard assembles a board from exactly one column per key and
// validates it. It is the entry point for untrusted data such as a
// decoded snapshot.
func NewBoard(columns ...Column) (Board, error) {
	if len(columns) != columnCount {
		return Board{}, fmt.Errorf("%w: want %d columns, got %d", ErrInvalidBoard, columnCount, len(columns))
	}

	var b Board
	var seen [columnCount]bool
	for _, col := range columns {
		if !col.key.Valid() {
			return Board{}, fmt.Errorf("%w: %w", ErrInvalidBoard, &IntentError{Op: "build", Column: col.key, Err: ErrUnknownColumn})
		}
		if seen[col.key] {
			return Board{}, fmt.Errorf("%w: column %s given twice", ErrInvalidBoard, col.key)
		}
		seen[col.key] = true
		if col.items == nil {
			col.items = []Task{}
		}
		b.columns[col.key] = col
	}

	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Column returns the column for key. An unknown key yields an empty
// zero Column.
func (b Board) Column(key ColumnKey) Column {
	if !key.Valid() {
		return Column{}
	}
	return b.columns[key]
}

// Columns returns the columns in display order
func (b Board) Columns() []Column {
	cols := make([]Column, 0, columnCount)
	for _, key := range ColumnKeys {
		cols = append(cols, b.columns[key])
	}
	return cols
}

// Len returns the number of tasks on the board
func (b Board) Len() int {
	n := 0
	for _, col := range b.columns {
		n += len(col.items)
	}
	return n
}

// Counts returns the number of tasks per column
func (b Board) Counts() map[ColumnKey]int {
	counts := make(map[ColumnKey]int, columnCount)
	for _, key := range ColumnKeys {
		counts[key] = len(b.columns[key].items)
	}
	return counts
}

// Find locates the task with id
func (b Board) Find(id TaskID) (ColumnKey, int, bool) {
	for _, key := range ColumnKeys {
		if idx := b.columns[key].IndexOf(id); idx >= 0 {
			return key, idx, true
		}
	}
	return 0, 0, false
}

// Contains reports whether a task with id is on the board
func (b Board) Contains(id TaskID) bool {
	_, _, ok := b.Find(id)
	return ok
}

// Equal reports whether both boards hold the same columns and tasks in
// the same order.
func (b Board) Equal(other Board) bool {
	for _, key := range ColumnKeys {
		if !b.columns[key].Equal(other.columns[key]) {
			return false
		}
	}
	return true
}

// Validate checks that every column is named, that every task is well
// formed and that no task ID appears more than once across the board.
func (b Board) Validate() error {
	seen := make(map[TaskID]ColumnKey, b.Len())
	for _, key := range ColumnKeys {
		col := b.columns[key]
		if col.key != key {
			return fmt.Errorf("%w: slot %s holds column %s", ErrInvalidBoard, key, col.key)
		}
		if strings.TrimSpace(col.name) == "" {
			return fmt.Errorf("%w: %w", ErrInvalidBoard, &IntentError{Op: "validate", Column: key, Index: -1, Err: ErrBlankName})
		}
		for i, task := range col.items {
			if err := task.validate(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidBoard, &IntentError{Op: "validate", Column: key, Index: i, Err: err})
			}
			if prev, dup := seen[task.ID]; dup {
				return fmt.Errorf("%w: task %s in both %s and %s", ErrInvalidBoard, task.ID, prev, key)
			}
			seen[task.ID] = key
		}
	}
	return nil
}
