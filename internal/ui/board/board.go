// Package board renders the three-column task board
package board

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/papan/internal/domain"
	"github.com/riordanpawley/papan/internal/ui/styles"
)

// Render renders every column of b side by side. grab is nil outside
// move mode.
func Render(
	b domain.Board,
	cursor Cursor,
	grab *Grab,
	s *styles.Styles,
	width int,
	height int,
) string {
	columns := b.Columns()
	columnWidth := width / len(columns)

	var columnStrings []string
	for _, col := range columns {
		isActive := col.Key() == cursor.Column
		cursorTask := -1
		if isActive && cursor.Valid {
			cursorTask = cursor.Task
		}

		columnStr := renderColumn(col, cursorTask, isActive, grab, columnWidth, height, s)

		// Force consistent width using lipgloss Width
		sized := lipgloss.NewStyle().Width(columnWidth).Render(columnStr)
		columnStrings = append(columnStrings, sized)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columnStrings...)
}
