// Package navigation provides cursor and navigation state management
package navigation

import (
	"github.com/riordanpawley/papan/internal/domain"
)

// Position is a computed location on the board
type Position struct {
	Column domain.ColumnKey
	Index  int  // Index within the column
	Valid  bool // False when the column is empty
}

// Cursor tracks the selected task by ID so the selection follows a task
// across moves. FallbackColumn is used once the task is gone.
type Cursor struct {
	TaskID         domain.TaskID
	FallbackColumn domain.ColumnKey
	// FallbackIndex keeps the row after a delete so the cursor lands on
	// the next task instead of jumping to the top.
	FallbackIndex int
}

// FindPosition computes where the cursor is on b
func (c *Cursor) FindPosition(b domain.Board) Position {
	if c.TaskID != "" {
		if key, idx, ok := b.Find(c.TaskID); ok {
			return Position{Column: key, Index: idx, Valid: true}
		}
	}

	key := c.FallbackColumn
	if !key.Valid() {
		key = domain.ColumnTodo
	}
	n := b.Column(key).Len()
	if n == 0 {
		return Position{Column: key, Index: 0, Valid: false}
	}
	idx := clamp(c.FallbackIndex, 0, n-1)
	return Position{Column: key, Index: idx, Valid: true}
}

// SetTask points the cursor at a task
func (c *Cursor) SetTask(id domain.TaskID, key domain.ColumnKey, index int) {
	c.TaskID = id
	c.FallbackColumn = key
	c.FallbackIndex = index
}

// Sync re-anchors the cursor after the board changed. It returns the
// resolved position.
func (c *Cursor) Sync(b domain.Board) Position {
	pos := c.FindPosition(b)
	c.selectAt(b, pos.Column, pos.Index)
	return pos
}

// MoveVertical moves up or down within a column, clamping at the ends
func (c *Cursor) MoveVertical(b domain.Board, delta int) domain.TaskID {
	pos := c.FindPosition(b)
	if !pos.Valid {
		return c.TaskID
	}

	n := b.Column(pos.Column).Len()
	c.selectAt(b, pos.Column, clamp(pos.Index+delta, 0, n-1))
	return c.TaskID
}

// MoveHorizontal moves to an adjacent column keeping the row where the
// target column is long enough.
func (c *Cursor) MoveHorizontal(b domain.Board, delta int) domain.TaskID {
	pos := c.FindPosition(b)
	target := clamp(int(pos.Column)+delta, 0, len(domain.ColumnKeys)-1)
	c.selectAt(b, domain.ColumnKey(target), pos.Index)
	return c.TaskID
}

// JumpToStart moves to the first task in the current column
func (c *Cursor) JumpToStart(b domain.Board) domain.TaskID {
	pos := c.FindPosition(b)
	c.selectAt(b, pos.Column, 0)
	return c.TaskID
}

// JumpToEnd moves to the last task in the current column
func (c *Cursor) JumpToEnd(b domain.Board) domain.TaskID {
	pos := c.FindPosition(b)
	c.selectAt(b, pos.Column, b.Column(pos.Column).Len()-1)
	return c.TaskID
}

// JumpToColumn moves to column key keeping the relative row
func (c *Cursor) JumpToColumn(b domain.Board, key domain.ColumnKey) domain.TaskID {
	if !key.Valid() {
		return c.TaskID
	}
	pos := c.FindPosition(b)
	c.selectAt(b, key, pos.Index)
	return c.TaskID
}

// selectAt selects the task at index in key, clamped to the column. An
// empty column clears the task selection.
func (c *Cursor) selectAt(b domain.Board, key domain.ColumnKey, index int) {
	col := b.Column(key)
	c.FallbackColumn = key
	if col.IsEmpty() {
		c.TaskID = ""
		c.FallbackIndex = 0
		return
	}
	index = clamp(index, 0, col.Len()-1)
	task, _ := col.Task(index)
	c.TaskID = task.ID
	c.FallbackIndex = index
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Service manages navigation state
type Service struct {
	cursor Cursor
}

// NewService creates a new navigation service
func NewService() *Service {
	return &Service{}
}

// GetCursor returns the current cursor
func (s *Service) GetCursor() *Cursor {
	return &s.cursor
}

// GetPosition returns the computed position of the cursor on b
func (s *Service) GetPosition(b domain.Board) Position {
	return s.cursor.FindPosition(b)
}

// GetCurrentTask returns the selected task
func (s *Service) GetCurrentTask(b domain.Board) (domain.Task, Position, bool) {
	pos := s.cursor.FindPosition(b)
	if !pos.Valid {
		return domain.Task{}, pos, false
	}
	task, ok := b.Column(pos.Column).Task(pos.Index)
	return task, pos, ok
}

// Sync re-anchors the cursor after the board changed
func (s *Service) Sync(b domain.Board) {
	s.cursor.Sync(b)
}

// MoveDown moves cursor down in current column
func (s *Service) MoveDown(b domain.Board) {
	s.cursor.MoveVertical(b, 1)
}

// MoveUp moves cursor up in current column
func (s *Service) MoveUp(b domain.Board) {
	s.cursor.MoveVertical(b, -1)
}

// MoveLeft moves cursor to left column
func (s *Service) MoveLeft(b domain.Board) {
	s.cursor.MoveHorizontal(b, -1)
}

// MoveRight moves cursor to right column
func (s *Service) MoveRight(b domain.Board) {
	s.cursor.MoveHorizontal(b, 1)
}

// GotoTop moves cursor to first task in column
func (s *Service) GotoTop(b domain.Board) {
	s.cursor.JumpToStart(b)
}

// GotoBottom moves cursor to last task in column
func (s *Service) GotoBottom(b domain.Board) {
	s.cursor.JumpToEnd(b)
}

// GotoColumn moves cursor to column key
func (s *Service) GotoColumn(b domain.Board, key domain.ColumnKey) {
	s.cursor.JumpToColumn(b, key)
}

// GotoFirstColumn moves cursor to first column
func (s *Service) GotoFirstColumn(b domain.Board) {
	s.cursor.JumpToColumn(b, domain.ColumnTodo)
}

// GotoLastColumn moves cursor to last column
func (s *Service) GotoLastColumn(b domain.Board) {
	s.cursor.JumpToColumn(b, domain.ColumnDone)
}

// SelectTask selects a task by ID. It reports false when the task is
// not on the board.
func (s *Service) SelectTask(b domain.Board, id domain.TaskID) bool {
	key, idx, ok := b.Find(id)
	if !ok {
		return false
	}
	s.cursor.SetTask(id, key, idx)
	return true
}
