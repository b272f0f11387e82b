// Package types contains shared types used across the application.
package types

// Mode represents the current input mode
type Mode int

const (
	ModeNormal Mode = iota
	// ModeMove is active while a card is grabbed and a destination
	// column is being chosen
	ModeMove
	// ModeOverlay is active while a dialog has focus
	ModeOverlay
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeMove:
		return "MOVE"
	case ModeOverlay:
		return "DIALOG"
	default:
		return "UNKNOWN"
	}
}
