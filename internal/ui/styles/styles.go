package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/papan/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Board
	Column             lipgloss.Style
	ColumnTarget       lipgloss.Style
	ColumnHeader       lipgloss.Style
	ColumnHeaderActive lipgloss.Style
	CountBadge         lipgloss.Style
	EmptyColumn        lipgloss.Style

	// Cards
	Card        lipgloss.Style
	CardActive  lipgloss.Style
	CardGrabbed lipgloss.Style
	TaskTitle   lipgloss.Style

	// Timer
	TimerPanel     lipgloss.Style
	TimerClock     lipgloss.Style
	TimerTab       lipgloss.Style
	TimerTabActive lipgloss.Style
	TimerRunning   lipgloss.Style
	TimerPaused    lipgloss.Style
	TimerCounter   lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusMove lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	Separator lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Column: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		ColumnTarget: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(Mauve).
			Padding(0, 1),

		ColumnHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			Padding(0, 1),

		ColumnHeaderActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			Padding(0, 1),

		CountBadge: lipgloss.NewStyle().
			Foreground(Base).
			Background(Overlay1).
			Padding(0, 1),

		EmptyColumn: lipgloss.NewStyle().
			Foreground(Overlay0).
			Italic(true),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		CardActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1),

		CardGrabbed: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(Mauve).
			Padding(0, 1),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Text),

		TimerPanel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Padding(0, 2),

		TimerClock: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		TimerTab: lipgloss.NewStyle().
			Foreground(Overlay1).
			Padding(0, 1),

		TimerTabActive: lipgloss.NewStyle().
			Foreground(Base).
			Background(Peach).
			Bold(true).
			Padding(0, 1),

		TimerRunning: lipgloss.NewStyle().
			Foreground(Green),

		TimerPaused: lipgloss.NewStyle().
			Foreground(Overlay1),

		TimerCounter: lipgloss.NewStyle().
			Foreground(Subtext0),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusMove: lipgloss.NewStyle().
			Background(Mauve).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		Separator: lipgloss.NewStyle().
			Foreground(Surface1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}

// PriorityBadge returns the badge style for a priority
func (s *Styles) PriorityBadge(p domain.Priority) lipgloss.Style {
	color, ok := PriorityColors[p]
	if !ok {
		color = Overlay0
	}
	return lipgloss.NewStyle().
		Foreground(Base).
		Background(color).
		Padding(0, 1).
		Bold(true)
}

// StatusBadge returns the badge style marking which column a card is in
func (s *Styles) StatusBadge(key domain.ColumnKey) lipgloss.Style {
	color, ok := ColumnColors[key]
	if !ok {
		color = Overlay0
	}
	return lipgloss.NewStyle().Foreground(color)
}
