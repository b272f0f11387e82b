// Package app contains the main application model and TEA implementation.
package app

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/papan/internal/core/controller"
	"github.com/riordanpawley/papan/internal/core/pomodoro"
	"github.com/riordanpawley/papan/internal/domain"
	"github.com/riordanpawley/papan/internal/services/editor"
	"github.com/riordanpawley/papan/internal/services/navigation"
	"github.com/riordanpawley/papan/internal/types"
	"github.com/riordanpawley/papan/internal/ui/overlay"
	"github.com/riordanpawley/papan/internal/ui/styles"
	"github.com/riordanpawley/papan/internal/ui/timer"
)

// tickInterval is the timer resolution
const tickInterval = time.Second

// tickMsg is one scheduled timer second. epoch is the controller epoch
// at the time the tick was scheduled.
type tickMsg struct {
	epoch uint64
}

// toastExpireMsg asks the model to drop expired toasts
type toastExpireMsg struct{}

// deleteTarget is carried through the delete confirmation
type deleteTarget struct {
	id    domain.TaskID
	title string
}

// Model is the main application state
type Model struct {
	ctrl *controller.Controller
	nav  *navigation.Service

	// UI state
	editor       *editor.Service
	overlayStack *overlay.Stack
	toasts       []types.Toast

	// Terminal size
	width  int
	height int

	styles     *styles.Styles
	timerPanel timer.Panel
	logger     *slog.Logger
	now        func() time.Time
}

// New creates the application model around ctrl
func New(ctrl *controller.Controller, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	s := styles.New()

	m := Model{
		ctrl:         ctrl,
		nav:          navigation.NewService(),
		editor:       editor.NewService(),
		overlayStack: overlay.NewStack(),
		styles:       s,
		timerPanel:   timer.New(s),
		logger:       logger,
		now:          time.Now,
	}
	m.nav.Sync(ctrl.Board())
	return m
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("papan")
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.overlayStack.Update(msg)

	case tickMsg:
		return m.handleTick(msg)

	case toastExpireMsg:
		m.pruneToasts()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		if m.editor.IsMove() {
			return m.handleMoveKey(msg)
		}
		return m.handleNormalKey(msg)

	case overlay.CloseOverlayMsg:
		return m, m.overlayStack.Update(msg)

	case overlay.TaskCreatedMsg:
		return m.addTask(msg.Title, msg.Priority)

	case overlay.SelectionMsg:
		m.overlayStack.Pop()
		if result, ok := msg.Value.(overlay.ConfirmResult); ok && result.Confirmed {
			if target, ok := result.Payload.(deleteTarget); ok {
				return m.deleteTask(target)
			}
		}
		return m, nil
	}

	if !m.overlayStack.IsEmpty() {
		// Cursor blink and other overlay-internal messages
		return m, m.overlayStack.Update(msg)
	}
	return m, nil
}

// scheduleTick arms one timer second for epoch
func scheduleTick(epoch uint64) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{epoch: epoch}
	})
}

// handleTick advances the timer. A stale tick ends its chain; an
// accepted tick re-arms while the timer keeps running.
func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	res := m.ctrl.TickIfCurrent(msg.epoch)
	if !res.Accepted {
		return m, nil
	}
	if res.Expired {
		m.logger.Debug("timer interval finished", "mode", res.Timer.Mode())
		cmd := m.addToast(types.ToastSuccess, expiryMessage(res.Timer.Mode()))
		return m, cmd
	}
	if res.Timer.Running() {
		return m, scheduleTick(m.ctrl.Epoch())
	}
	return m, nil
}

func expiryMessage(mode pomodoro.Mode) string {
	if mode == pomodoro.ModePomodoro {
		return "Pomodoro complete. Time for a break."
	}
	return fmt.Sprintf("%s over. Back to work.", mode.Label())
}

// timerCmd returns the tick to schedule after a timer intent
func (m Model) timerCmd(t pomodoro.Timer) tea.Cmd {
	if t.Running() {
		return scheduleTick(m.ctrl.Epoch())
	}
	return nil
}

// addToast shows a toast and schedules its removal
func (m *Model) addToast(level types.ToastLevel, message string) tea.Cmd {
	m.toasts = append(m.toasts, types.NewToast(level, message, m.now(), types.DefaultToastTTL))
	return tea.Tick(types.DefaultToastTTL, func(time.Time) tea.Msg {
		return toastExpireMsg{}
	})
}

func (m *Model) pruneToasts() {
	now := m.now()
	var kept []types.Toast
	for _, t := range m.toasts {
		if !t.Expired(now) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

// rejectLevel picks the toast level for a rejected intent. A stale
// index or column means the screen and the board disagree.
func rejectLevel(err error) types.ToastLevel {
	if domain.IsCallerBug(err) {
		return types.ToastError
	}
	return types.ToastWarning
}

func (m Model) addTask(title string, priority domain.Priority) (tea.Model, tea.Cmd) {
	before := m.ctrl.Board().Len()
	b, err := m.ctrl.AddTaskWithPriority(title, priority)
	if err != nil {
		cmd := m.addToast(rejectLevel(err), fmt.Sprintf("Could not add task: %v", err))
		return m, cmd
	}

	// Blank titles are ignored and leave the selection alone
	if b.Len() > before {
		todo := b.Column(domain.ColumnTodo)
		if task, ok := todo.Task(todo.Len() - 1); ok {
			m.nav.SelectTask(b, task.ID)
		}
	}
	m.nav.Sync(b)
	return m, nil
}

func (m Model) deleteTask(target deleteTarget) (tea.Model, tea.Cmd) {
	b := m.ctrl.Board()
	key, idx, ok := b.Find(target.id)
	if !ok {
		cmd := m.addToast(types.ToastWarning, "Task no longer exists")
		return m, cmd
	}

	b, err := m.ctrl.DeleteTask(key, idx)
	m.nav.Sync(b)
	if err != nil {
		cmd := m.addToast(rejectLevel(err), fmt.Sprintf("Could not delete task: %v", err))
		return m, cmd
	}
	cmd := m.addToast(types.ToastInfo, fmt.Sprintf("Deleted %q", target.title))
	return m, cmd
}
