package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/papan/internal/domain"
	"github.com/riordanpawley/papan/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Overlay is the base overlay container style
	Overlay lipgloss.Style
	// Title is the overlay title style
	Title lipgloss.Style
	// MenuItem is the default menu item style
	MenuItem lipgloss.Style
	// MenuItemActive is the highlighted/selected menu item style
	MenuItemActive lipgloss.Style
	// MenuKey is the style for keybinding hints
	MenuKey lipgloss.Style
	// Separator is the style for divider lines
	Separator lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
	// Category is the style for help section headers
	Category lipgloss.Style
	// Label is the style for form field labels
	Label lipgloss.Style
	// LabelActive is the label of the focused form field
	LabelActive lipgloss.Style
	// Danger highlights destructive confirmations
	Danger lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2).
			Background(styles.Base).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(styles.Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),

		Category: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(styles.Subtext1),

		LabelActive: lipgloss.NewStyle().
			Foreground(styles.Mauve).
			Bold(true),

		Danger: lipgloss.NewStyle().
			Foreground(styles.Red).
			Bold(true),
	}
}

// PriorityOption renders one entry of the priority picker
func (s *Styles) PriorityOption(p domain.Priority, selected bool) string {
	style := s.MenuItem
	if selected {
		style = lipgloss.NewStyle().
			Foreground(styles.PriorityColors[p]).
			Bold(true).
			Underline(true)
	}
	return style.Render(p.Label())
}
