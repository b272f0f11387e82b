package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/papan/internal/domain"
	"github.com/riordanpawley/papan/internal/ui/styles"
)

// renderColumn renders a column header followed by its cards
func renderColumn(
	col domain.Column,
	cursorTask int,
	isActive bool,
	grab *Grab,
	width int,
	height int,
	s *styles.Styles,
) string {
	headerStyle := s.ColumnHeader
	if isActive {
		headerStyle = s.ColumnHeaderActive
	}

	// Header, e.g. "─ Todo [3] ─────"
	count := s.CountBadge.Render(strconv.Itoa(col.Len()))
	headerText := headerStyle.Render("─ "+col.Name()) + " " + count + " "
	remaining := width - lipgloss.Width(headerText) - 2
	if remaining > 0 {
		headerText += s.Separator.Render(strings.Repeat("─", remaining))
	}

	columnStyle := s.Column
	if grab != nil && grab.Target == col.Key() {
		columnStyle = s.ColumnTarget
	}

	// Inner height excludes the header line and the column border
	inner := height - 3
	if inner < cardHeight {
		inner = cardHeight
	}

	var content string
	if col.IsEmpty() {
		content = s.EmptyColumn.Render("No tasks")
	} else {
		content = renderCards(col, cursorTask, grab, width-4, inner, s)
	}

	body := columnStyle.Width(width - 2).Height(inner).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, headerText, body)
}

// renderCards renders the window of cards that keeps the cursor visible
func renderCards(col domain.Column, cursorTask int, grab *Grab, cardWidth, height int, s *styles.Styles) string {
	tasks := col.Tasks()
	start, end := visibleRange(len(tasks), cursorTask, height)

	var lines []string
	if start > 0 {
		lines = append(lines, s.StatusHint.Render(fmt.Sprintf("↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		isCursor := i == cursorTask
		isGrabbed := grab != nil && grab.Source == col.Key() && grab.Index == i
		lines = append(lines, renderCard(tasks[i], col, isCursor, isGrabbed, cardWidth, s))
	}
	if end < len(tasks) {
		lines = append(lines, s.StatusHint.Render(fmt.Sprintf("↓ %d more", len(tasks)-end)))
	}
	return strings.Join(lines, "\n")
}

// visibleRange returns the [start, end) slice of n cards that fits in
// height lines and contains cursor. One line at each end is kept for
// the overflow markers.
func visibleRange(n, cursor, height int) (int, int) {
	fit := (height - 2) / cardHeight
	if fit < 1 {
		fit = 1
	}
	if n <= fit {
		return 0, n
	}
	if cursor < 0 {
		cursor = 0
	}
	start := cursor - fit + 1
	if start < 0 {
		start = 0
	}
	end := start + fit
	if end > n {
		end = n
		start = n - fit
	}
	return start, end
}
