package domain

// MoveIntent asks for the task at Index in Source to be moved to the
// end of Dest.
type MoveIntent struct {
	Source ColumnKey
	Index  int
	Dest   ColumnKey
}

// Move applies a move intent and returns the resulting board.
//
// A move within one column is not supported and returns the receiver
// unchanged with a nil error. Unknown columns and out-of-range indexes
// are rejected with an *IntentError and the receiver is returned.
func (b Board) Move(in MoveIntent) (Board, error) {
	if !in.Source.Valid() {
		return b, &IntentError{Op: "move", Column: in.Source, Index: in.Index, Err: ErrUnknownColumn}
	}
	if !in.Dest.Valid() {
		return b, &IntentError{Op: "move", Column: in.Dest, Index: in.Index, Err: ErrUnknownColumn}
	}

	src := b.columns[in.Source]
	task, ok := src.Task(in.Index)
	if !ok {
		return b, &IntentError{Op: "move", Column: in.Source, Index: in.Index, Err: ErrIndexOutOfRange}
	}

	if in.Source == in.Dest {
		return b, nil
	}

	next := b
	next.columns[in.Source] = src.without(in.Index)
	next.columns[in.Dest] = b.columns[in.Dest].with(task)
	return next, nil
}

// Add appends task to the todo column
func (b Board) Add(task Task) (Board, error) {
	if err := task.validate(); err != nil {
		return b, &IntentError{Op: "add", Column: ColumnTodo, Index: -1, Err: err}
	}
	if b.Contains(task.ID) {
		return b, &IntentError{Op: "add", Column: ColumnTodo, Index: -1, Err: ErrDuplicateTask}
	}

	next := b
	next.columns[ColumnTodo] = b.columns[ColumnTodo].with(task)
	return next, nil
}

// Delete removes the task at index from the column key
func (b Board) Delete(key ColumnKey, index int) (Board, error) {
	if !key.Valid() {
		return b, &IntentError{Op: "delete", Column: key, Index: index, Err: ErrUnknownColumn}
	}
	col := b.columns[key]
	if index < 0 || index >= col.Len() {
		return b, &IntentError{Op: "delete", Column: key, Index: index, Err: ErrIndexOutOfRange}
	}

	next := b
	next.columns[key] = col.without(index)
	return next, nil
}
