package board

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/papan/internal/domain"
	"github.com/riordanpawley/papan/internal/ui/styles"
)

// renderCard renders a task card
func renderCard(task domain.Task, col domain.Column, isCursor, isGrabbed bool, width int, s *styles.Styles) string {
	cardStyle := s.Card
	if isGrabbed {
		cardStyle = s.CardGrabbed
	} else if isCursor {
		cardStyle = s.CardActive
	}
	// Width excludes the border
	cardStyle = cardStyle.Width(width - 2)

	// Cursor indicator
	marker := ""
	if isCursor {
		marker = "▶ "
	}

	// Account for padding (2) and border (2)
	title := truncate(task.Title, width-4-lipgloss.Width(marker))
	titleLine := marker + s.TaskTitle.Render(title)

	status := s.StatusBadge(col.Key()).Render("● " + col.Name())
	badgeLine := status
	if task.Priority.IsSet() {
		priority := s.PriorityBadge(task.Priority).Render(task.Priority.Label())
		badgeLine = lipgloss.JoinHorizontal(lipgloss.Left, priority, " ", status)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, badgeLine)
	return cardStyle.Render(content)
}

// RenderCard is the exported version for testing
func RenderCard(task domain.Task, col domain.Column, isCursor, isGrabbed bool, width int, s *styles.Styles) string {
	return renderCard(task, col, isCursor, isGrabbed, width, s)
}

// truncate shortens s to max display cells, ending with an ellipsis
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
