// Package overlay provides the modal dialogs drawn over the board:
// add-task form, delete confirmation and keybinding help.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}

// SelectionMsg is sent when an overlay produces an answer
type SelectionMsg struct {
	Key   string
	Value any
}
