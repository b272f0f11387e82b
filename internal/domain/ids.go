package domain

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDSource mints task identifiers
type IDSource interface {
	NewID() TaskID
}

// UUIDSource mints time-ordered UUIDv7 identifiers
type UUIDSource struct{}

// NewID returns a fresh UUIDv7, falling back to a random UUIDv4 if the
// clock-based generator fails.
func (UUIDSource) NewID() TaskID {
	id, err := uuid.NewV7()
	if err != nil {
		return TaskID(uuid.NewString())
	}
	return TaskID(id.String())
}

// SequenceSource mints "<prefix>-<n>" identifiers. Useful in tests and
// for deterministic fixtures.
type SequenceSource struct {
	Prefix string
	next   atomic.Uint64
}

// NewID returns the next identifier in the sequence
func (s *SequenceSource) NewID() TaskID {
	n := s.next.Add(1)
	return TaskID(fmt.Sprintf("%s-%d", s.Prefix, n))
}
