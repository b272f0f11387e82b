package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/papan/internal/domain"
	"github.com/riordanpawley/papan/internal/types"
	"github.com/riordanpawley/papan/internal/ui/board"
	"github.com/riordanpawley/papan/internal/ui/statusbar"
	"github.com/riordanpawley/papan/internal/ui/toast"
)

const (
	// timerWidth is the side panel width in the wide layout
	timerWidth = 40
	// wideLayout is the terminal width from which the timer sits beside
	// the board instead of above it
	wideLayout = 110
)

// Mode returns the input mode shown in the status bar
func (m Model) Mode() types.Mode {
	if !m.overlayStack.IsEmpty() {
		return types.ModeOverlay
	}
	return m.editor.GetMode()
}

// grab converts the editor's grab for the board renderer
func (m Model) grab() *board.Grab {
	g, ok := m.editor.GetGrab()
	if !ok {
		return nil
	}
	return &board.Grab{Source: g.Source, Index: g.Index, Target: g.Target}
}

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	statusBarView := statusbar.New(m.Mode(), m.width, m.styles).
		WithInfo(m.statusInfo()).
		Render()
	bodyHeight := m.height - lipgloss.Height(statusBarView)

	if !m.overlayStack.IsEmpty() {
		return lipgloss.JoinVertical(lipgloss.Left, m.overlayStack.View(m.width, bodyHeight), statusBarView)
	}

	var toastView string
	if rendered := toast.New(m.styles).Render(m.toasts, m.now(), m.width); rendered != "" {
		toastView = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, rendered)
		bodyHeight -= lipgloss.Height(toastView)
	}

	parts := []string{m.renderBody(bodyHeight)}
	if toastView != "" {
		parts = append(parts, toastView)
	}
	parts = append(parts, statusBarView)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderBody lays out the board and the timer panel in height lines
func (m Model) renderBody(height int) string {
	b := m.ctrl.Board()
	pos := m.nav.GetPosition(b)
	cursor := board.Cursor{Column: pos.Column, Task: pos.Index, Valid: pos.Valid}

	if m.width >= wideLayout {
		panel := m.timerPanel.Render(m.ctrl.Timer(), timerWidth)
		boardView := board.Render(b, cursor, m.grab(), m.styles, m.width-timerWidth, height)
		body := lipgloss.JoinHorizontal(lipgloss.Top, boardView, panel)
		return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(body)
	}

	panel := m.timerPanel.Render(m.ctrl.Timer(), m.width)
	boardHeight := max(0, height-lipgloss.Height(panel))
	boardView := board.Render(b, cursor, m.grab(), m.styles, m.width, boardHeight)
	body := lipgloss.JoinVertical(lipgloss.Left, panel, boardView)
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(body)
}

// statusInfo summarises the board and timer for the status bar
func (m Model) statusInfo() string {
	b := m.ctrl.Board()
	counts := b.Counts()

	parts := make([]string, 0, len(domain.ColumnKeys)+1)
	for _, key := range domain.ColumnKeys {
		parts = append(parts, fmt.Sprintf("%s %d", b.Column(key).Name(), counts[key]))
	}

	t := m.ctrl.Timer()
	state := "⏸"
	if t.Running() {
		state = "▶"
	}
	parts = append(parts, fmt.Sprintf("%s %s %s", state, t.Mode().Label(), t.Clock()))

	if g, ok := m.editor.GetGrab(); ok {
		parts = append([]string{"→ " + b.Column(g.Target).Name()}, parts...)
	}
	return strings.Join(parts, " · ")
}
