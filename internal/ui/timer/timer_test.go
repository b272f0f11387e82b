package timer

import (
	"testing"

	"github.com/riordanpawley/papan/internal/core/pomodoro"
	"github.com/riordanpawley/papan/internal/ui/styles"
	"github.com/stretchr/testify/assert"
)

func TestPanel_RenderPaused(t *testing.T) {
	p := New(styles.New())
	out := p.Render(pomodoro.New(pomodoro.DefaultDurations()), 60)

	assert.Contains(t, out, "25:00")
	assert.Contains(t, out, "Focus")
	assert.Contains(t, out, "Short Break")
	assert.Contains(t, out, "Long Break")
	assert.Contains(t, out, "paused")
	assert.Contains(t, out, "Pomodoros completed: 0")
}

func TestPanel_RenderRunningAndDone(t *testing.T) {
	p := New(styles.New())

	running := pomodoro.New(pomodoro.DefaultDurations()).Start()
	running, _ = running.Tick()
	out := p.Render(running, 60)
	assert.Contains(t, out, "24:59")
	assert.Contains(t, out, "running")

	done := pomodoro.New(pomodoro.Durations{Pomodoro: 1}).Start()
	done, _ = done.Tick()
	out = p.Render(done, 60)
	assert.Contains(t, out, "00:00")
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "Pomodoros completed: 1")
}

func TestPanel_ProgressChanges(t *testing.T) {
	p := New(styles.New())
	timer := pomodoro.New(pomodoro.Durations{Pomodoro: 4}).Start()

	before := p.Render(timer, 60)
	timer, _ = timer.Tick()
	timer, _ = timer.Tick()
	after := p.Render(timer, 60)

	assert.NotEqual(t, before, after)
}

func TestPanel_NarrowWidth(t *testing.T) {
	p := New(styles.New())
	// Should not panic
	_ = p.Render(pomodoro.New(pomodoro.DefaultDurations()), 0)
}
