// Package toast renders the transient messages shown above the status
// bar: rejected board intents, deletes and timer expiry.
package toast

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/papan/internal/types"
	"github.com/riordanpawley/papan/internal/ui/styles"
)

const (
	// MaxVisible caps how many toasts are stacked at once
	MaxVisible = 3

	maxWidth = 40
	minWidth = 20
)

// Renderer draws toasts in the bottom-right corner
type Renderer struct {
	styles *styles.Styles
}

// New creates a renderer with the given styles
func New(s *styles.Styles) *Renderer {
	return &Renderer{styles: s}
}

// Visible returns the toasts still live at now, newest last, keeping
// at most MaxVisible of them.
func Visible(toasts []types.Toast, now time.Time) []types.Toast {
	var live []types.Toast
	for _, t := range toasts {
		if !t.Expired(now) {
			live = append(live, t)
		}
	}
	if len(live) > MaxVisible {
		live = live[len(live)-MaxVisible:]
	}
	return live
}

// Render stacks the toasts visible at now for a terminal width columns
// wide. It returns "" when nothing is visible.
func (r *Renderer) Render(toasts []types.Toast, now time.Time, width int) string {
	live := Visible(toasts, now)
	if len(live) == 0 {
		return ""
	}

	w := min(max(width/3, minWidth), maxWidth, width)
	rendered := make([]string, 0, len(live))
	for _, t := range live {
		style := r.styleFor(t.Level)
		// Width excludes the border
		style = style.Width(max(w-style.GetHorizontalBorderSize(), 1))
		rendered = append(rendered, style.Render(Icon(t.Level)+" "+t.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// Icon returns the marker shown before a message
func Icon(level types.ToastLevel) string {
	switch level {
	case types.ToastSuccess:
		return "✓"
	case types.ToastWarning:
		return "!"
	case types.ToastError:
		return "✗"
	default:
		return "•"
	}
}

func (r *Renderer) styleFor(level types.ToastLevel) lipgloss.Style {
	switch level {
	case types.ToastSuccess:
		return r.styles.ToastSuccess
	case types.ToastWarning:
		return r.styles.ToastWarning
	case types.ToastError:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}
