// Package editor provides editing mode state: whether a card is grabbed
// and which column it would be dropped into.
package editor

import (
	"github.com/riordanpawley/papan/internal/domain"
	"github.com/riordanpawley/papan/internal/types"
)

// Re-export Mode type for convenience
type Mode = types.Mode

// Mode constants
const (
	ModeNormal = types.ModeNormal
	ModeMove   = types.ModeMove
)

// Grab is a card picked up in move mode
type Grab struct {
	Source domain.ColumnKey
	Index  int
	Target domain.ColumnKey
}

// Service manages editing state
type Service struct {
	mode Mode
	grab Grab
}

// NewService creates a new editor service in normal mode
func NewService() *Service {
	return &Service{mode: ModeNormal}
}

// GetMode returns the current mode
func (s *Service) GetMode() Mode {
	return s.mode
}

// IsNormal returns true if in normal mode
func (s *Service) IsNormal() bool {
	return s.mode == ModeNormal
}

// IsMove returns true while a card is grabbed
func (s *Service) IsMove() bool {
	return s.mode == ModeMove
}

// EnterNormal switches to normal mode, dropping any grab
func (s *Service) EnterNormal() {
	s.mode = ModeNormal
	s.grab = Grab{}
}

// GrabTask picks up the card at index in src. The drop target starts
// at the source column.
func (s *Service) GrabTask(src domain.ColumnKey, index int) {
	s.mode = ModeMove
	s.grab = Grab{Source: src, Index: index, Target: src}
}

// GetGrab returns the grabbed card, or false outside move mode
func (s *Service) GetGrab() (Grab, bool) {
	if s.mode != ModeMove {
		return Grab{}, false
	}
	return s.grab, true
}

// ShiftTarget moves the drop target delta columns, clamped to the board
func (s *Service) ShiftTarget(delta int) {
	if s.mode != ModeMove {
		return
	}
	target := int(s.grab.Target) + delta
	last := len(domain.ColumnKeys) - 1
	if target < 0 {
		target = 0
	}
	if target > last {
		target = last
	}
	s.grab.Target = domain.ColumnKey(target)
}

// SetTarget sets the drop target. Unknown columns are ignored.
func (s *Service) SetTarget(key domain.ColumnKey) {
	if s.mode != ModeMove || !key.Valid() {
		return
	}
	s.grab.Target = key
}

// Cancel leaves move mode without moving anything
func (s *Service) Cancel() {
	s.EnterNormal()
}

// Drop leaves move mode and returns the move to perform. It reports
// false when nothing was grabbed.
func (s *Service) Drop() (domain.MoveIntent, bool) {
	grab, ok := s.GetGrab()
	s.EnterNormal()
	if !ok {
		return domain.MoveIntent{}, false
	}
	return domain.MoveIntent{Source: grab.Source, Index: grab.Index, Dest: grab.Target}, true
}
