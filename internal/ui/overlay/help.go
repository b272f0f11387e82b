package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory represents a category of keybindings
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

// Categories lists every keybinding the board responds to
var Categories = []KeyCategory{
	{
		Name: "Navigation",
		Bindings: []KeyBinding{
			{Key: "h/l", Description: "Move between columns"},
			{Key: "j/k", Description: "Move up/down in column"},
			{Key: "g/G", Description: "First/last task in column"},
			{Key: "1-3", Description: "Jump to column"},
		},
	},
	{
		Name: "Tasks",
		Bindings: []KeyBinding{
			{Key: "a", Description: "Add a task to Todo"},
			{Key: "d", Description: "Delete the selected task"},
			{Key: "m/Space", Description: "Grab the selected task"},
		},
	},
	{
		Name: "Move mode",
		Bindings: []KeyBinding{
			{Key: "h/l, 1-3", Description: "Choose destination column"},
			{Key: "Space/Enter", Description: "Drop the task"},
			{Key: "Esc", Description: "Cancel the move"},
		},
	},
	{
		Name: "Timer",
		Bindings: []KeyBinding{
			{Key: "t", Description: "Start/pause"},
			{Key: "r", Description: "Reset"},
			{Key: "f", Description: "Focus (pomodoro)"},
			{Key: "b", Description: "Short break"},
			{Key: "B", Description: "Long break"},
		},
	},
	{
		Name: "Other",
		Bindings: []KeyBinding{
			{Key: "?", Description: "Help (this screen)"},
			{Key: "q", Description: "Quit"},
			{Key: "Ctrl+L", Description: "Refresh screen"},
		},
	},
}

// HelpOverlay displays keybinding reference
type HelpOverlay struct {
	styles     *Styles
	scroll     int
	maxScroll  int
	viewHeight int
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		styles:     New(),
		viewHeight: 20,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Leave room for the frame, title and scroll hint
		h.viewHeight = max(5, msg.Height-10)
		return h, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "?":
			return h, func() tea.Msg { return CloseOverlayMsg{} }

		case "j", "down":
			if h.scroll < h.maxScroll {
				h.scroll++
			}
			return h, nil

		case "k", "up":
			if h.scroll > 0 {
				h.scroll--
			}
			return h, nil

		case "g":
			h.scroll = 0
			return h, nil

		case "G":
			h.scroll = h.maxScroll
			return h, nil
		}
	}

	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	var content strings.Builder
	for i, cat := range Categories {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(h.styles.Category.Render(cat.Name + ":"))
		content.WriteString("\n")

		for _, binding := range cat.Bindings {
			key := h.styles.MenuKey.Width(12).Render(binding.Key)
			content.WriteString("  " + key + h.styles.MenuItem.Render(binding.Description) + "\n")
		}
	}

	lines := strings.Split(strings.TrimRight(content.String(), "\n"), "\n")
	h.maxScroll = max(0, len(lines)-h.viewHeight)
	h.scroll = min(h.scroll, h.maxScroll)

	end := min(h.scroll+h.viewHeight, len(lines))
	result := strings.Join(lines[h.scroll:end], "\n")

	if h.maxScroll > 0 {
		scrollInfo := h.styles.Footer.Render(
			lipgloss.JoinHorizontal(
				lipgloss.Left,
				"[",
				h.styles.MenuKey.Render("j/k"),
				" to scroll, ",
				h.styles.MenuKey.Render("g/G"),
				" to jump]",
			),
		)
		result += "\n" + scrollInfo
	}

	return result
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 50, h.viewHeight + 4
}
