package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrUnknownColumn   = errors.New("unknown column")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrBlankTitle      = errors.New("blank title")
	ErrUntrimmedTitle  = errors.New("title has surrounding whitespace")
	ErrBlankName       = errors.New("blank column name")
	ErrEmptyID         = errors.New("empty task id")
	ErrDuplicateTask   = errors.New("duplicate task id")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidBoard    = errors.New("invalid board")
)

// IntentError reports a rejected board operation
type IntentError struct {
	Op     string    // Operation: "add", "move", "delete", ...
	Column ColumnKey // Column the operation addressed
	Index  int       // Position within the column, -1 when not applicable
	Err    error     // Underlying sentinel
}

func (e *IntentError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s [%s#%d]: %v", e.Op, e.Column, e.Index, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Column, e.Err)
}

func (e *IntentError) Unwrap() error {
	return e.Err
}

// IsCallerBug reports whether err signals that the caller and the board
// disagree about what is on screen, as opposed to an ignorable intent.
func IsCallerBug(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange) || errors.Is(err, ErrUnknownColumn)
}
