// Package timer renders the pomodoro panel
package timer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/papan/internal/core/pomodoro"
	"github.com/riordanpawley/papan/internal/ui/styles"
)

// Panel renders the timer state. It holds no timer state of its own.
type Panel struct {
	bar    progress.Model
	styles *styles.Styles
}

// New creates a Panel
func New(s *styles.Styles) Panel {
	bar := progress.New(
		progress.WithGradient(string(styles.Peach), string(styles.Mauve)),
		progress.WithoutPercentage(),
	)
	return Panel{bar: bar, styles: s}
}

// Render renders t in a box at most width cells wide
func (p Panel) Render(t pomodoro.Timer, width int) string {
	s := p.styles

	var tabs []string
	for _, m := range pomodoro.Modes {
		style := s.TimerTab
		if m == t.Mode() {
			style = s.TimerTabActive
		}
		tabs = append(tabs, style.Render(m.Label()))
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	state := s.TimerPaused.Render("⏸ paused")
	switch {
	case t.Running():
		state = s.TimerRunning.Render("▶ running")
	case t.Expired():
		state = s.TimerRunning.Render("✓ done")
	}
	clockRow := lipgloss.JoinHorizontal(lipgloss.Top, s.TimerClock.Render(t.Clock()), "  ", state)

	// Panel border (2) and padding (4)
	inner := width - 6
	if w := lipgloss.Width(tabRow); inner < w {
		inner = w
	}
	bar := p.bar
	bar.Width = inner

	counter := s.TimerCounter.Render(fmt.Sprintf("Pomodoros completed: %d", t.Completed()))

	content := lipgloss.JoinVertical(lipgloss.Left,
		tabRow,
		"",
		clockRow,
		bar.ViewAs(t.Progress()),
		counter,
	)
	return s.TimerPanel.Render(content)
}
