package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/papan/internal/domain"
)

// TaskCreatedMsg is emitted when the add-task form is submitted
type TaskCreatedMsg struct {
	Title    string
	Priority domain.Priority
}

const (
	focusTitle = iota
	focusPriority
	focusCount
)

var priorityCycle = []domain.Priority{
	domain.PriorityNone,
	domain.PriorityLow,
	domain.PriorityMedium,
	domain.PriorityHigh,
}

// AddTaskOverlay is the form behind the add key: a title and an
// optional priority. New tasks always land in the first column.
type AddTaskOverlay struct {
	title      textinput.Model
	priority   domain.Priority
	focusIndex int
	styles     *Styles
}

// NewAddTaskOverlay creates a new add-task form with the title focused
func NewAddTaskOverlay() *AddTaskOverlay {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 50

	return &AddTaskOverlay{
		title:      ti,
		priority:   domain.PriorityNone,
		focusIndex: focusTitle,
		styles:     New(),
	}
}

// Init initializes the overlay
func (a *AddTaskOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (a *AddTaskOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return a, func() tea.Msg { return CloseOverlayMsg{} }

		case "enter", "ctrl+s":
			return a, a.submit()

		case "tab", "shift+tab", "down", "up":
			a.focusIndex = (a.focusIndex + 1) % focusCount
			if a.focusIndex == focusTitle {
				a.title.Focus()
			} else {
				a.title.Blur()
			}
			return a, nil

		case "ctrl+p":
			a.cyclePriority(1)
			return a, nil
		}

		if a.focusIndex == focusPriority {
			switch keyMsg.String() {
			case "l", "right", " ":
				a.cyclePriority(1)
			case "h", "left":
				a.cyclePriority(-1)
			case "0", "1", "2", "3":
				a.priority = priorityCycle[keyMsg.String()[0]-'0']
			}
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.title, cmd = a.title.Update(msg)
	return a, cmd
}

func (a *AddTaskOverlay) cyclePriority(step int) {
	n := len(priorityCycle)
	a.priority = priorityCycle[(int(a.priority)+step+n)%n]
}

// submit emits the new task and closes the form. A blank title does nothing.
func (a *AddTaskOverlay) submit() tea.Cmd {
	title := strings.TrimSpace(a.title.Value())
	if title == "" {
		return nil
	}

	created := TaskCreatedMsg{Title: title, Priority: a.priority}
	return tea.Batch(
		func() tea.Msg { return created },
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// View renders the form
func (a *AddTaskOverlay) View() string {
	var b strings.Builder

	b.WriteString(a.label("Title", focusTitle))
	b.WriteString("\n")
	b.WriteString(a.title.View())
	b.WriteString("\n\n")

	b.WriteString(a.label("Priority", focusPriority))
	b.WriteString("\n")
	options := make([]string, 0, len(priorityCycle))
	for _, p := range priorityCycle {
		options = append(options, a.styles.PriorityOption(p, p == a.priority))
	}
	b.WriteString(strings.Join(options, "  "))
	b.WriteString("\n\n")

	b.WriteString(a.styles.Separator.Render(strings.Repeat("─", 50)))
	b.WriteString("\n")

	hints := []string{
		a.styles.MenuKey.Render("Tab") + " " + a.styles.Footer.Render("Switch field"),
		a.styles.MenuKey.Render("Ctrl+P") + " " + a.styles.Footer.Render("Priority"),
		a.styles.MenuKey.Render("Enter") + " " + a.styles.Footer.Render("Add"),
		a.styles.MenuKey.Render("Esc") + " " + a.styles.Footer.Render("Cancel"),
	}
	b.WriteString(a.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

func (a *AddTaskOverlay) label(text string, field int) string {
	if a.focusIndex == field {
		return a.styles.LabelActive.Render(text + ":")
	}
	return a.styles.Label.Render(text + ":")
}

// Title returns the overlay title
func (a *AddTaskOverlay) Title() string {
	return "Add Task"
}

// Size returns the overlay dimensions
func (a *AddTaskOverlay) Size() (width, height int) {
	return 60, 14
}
