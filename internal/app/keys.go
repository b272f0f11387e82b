package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/papan/internal/core/pomodoro"
	"github.com/riordanpawley/papan/internal/domain"
	"github.com/riordanpawley/papan/internal/ui/overlay"
)

// columnForKey maps the digit keys to columns
func columnForKey(k string) (domain.ColumnKey, bool) {
	switch k {
	case "1":
		return domain.ColumnTodo, true
	case "2":
		return domain.ColumnInProgress, true
	case "3":
		return domain.ColumnDone, true
	}
	return 0, false
}

// handleNormalKey processes keyboard input in normal mode
func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := m.ctrl.Board()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "ctrl+l":
		return m, tea.ClearScreen

	// Navigation
	case "j", "down":
		m.nav.MoveDown(b)
	case "k", "up":
		m.nav.MoveUp(b)
	case "h", "left":
		m.nav.MoveLeft(b)
	case "l", "right":
		m.nav.MoveRight(b)
	case "g", "home":
		m.nav.GotoTop(b)
	case "G", "end":
		m.nav.GotoBottom(b)
	case "1", "2", "3":
		key, _ := columnForKey(msg.String())
		m.nav.GotoColumn(b, key)

	// Board intents
	case "a":
		return m, m.overlayStack.Push(overlay.NewAddTaskOverlay())

	case "d", "x":
		task, _, ok := m.nav.GetCurrentTask(b)
		if !ok {
			return m, nil
		}
		dialog := overlay.NewConfirmDialog("Delete task", fmt.Sprintf("Delete %q?", task.Title)).
			WithPayload(deleteTarget{id: task.ID, title: task.Title})
		return m, m.overlayStack.Push(dialog)

	case "m", " ":
		_, pos, ok := m.nav.GetCurrentTask(b)
		if !ok {
			return m, nil
		}
		m.editor.GrabTask(pos.Column, pos.Index)

	case "?":
		return m, m.overlayStack.Push(overlay.NewHelpOverlay())

	// Timer intents
	case "t":
		return m, m.timerCmd(m.ctrl.TimerToggle())
	case "r":
		m.ctrl.TimerReset()
	case "f":
		m.ctrl.TimerSwitchMode(pomodoro.ModePomodoro)
	case "b":
		m.ctrl.TimerSwitchMode(pomodoro.ModeShortBreak)
	case "B":
		m.ctrl.TimerSwitchMode(pomodoro.ModeLongBreak)
	}

	return m, nil
}

// handleMoveKey picks the destination column for the grabbed task
func (m Model) handleMoveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.editor.Cancel()

	case "h", "left":
		m.editor.ShiftTarget(-1)

	case "l", "right":
		m.editor.ShiftTarget(1)

	case "1", "2", "3":
		key, _ := columnForKey(msg.String())
		m.editor.SetTarget(key)

	case " ", "enter", "m":
		return m.drop()
	}

	return m, nil
}

// drop commits the move and leaves move mode. The cursor follows the
// task to its new column.
func (m Model) drop() (tea.Model, tea.Cmd) {
	intent, ok := m.editor.Drop()
	if !ok {
		return m, nil
	}

	b, err := m.ctrl.MoveTask(intent.Source, intent.Index, intent.Dest)
	m.nav.Sync(b)
	if err != nil {
		cmd := m.addToast(rejectLevel(err), fmt.Sprintf("Could not move task: %v", err))
		return m, cmd
	}
	return m, nil
}
