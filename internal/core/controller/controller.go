// Package controller owns the live board and timer. Every user intent
// goes through it: the pure domain operation is applied, a changed
// board is committed to storage, and timer expiry raises a
// notification.
package controller

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/riordanpawley/papan/internal/core/pomodoro"
	"github.com/riordanpawley/papan/internal/domain"
	"github.com/riordanpawley/papan/internal/services/notify"
)

const (
	defaultSaveTimeout   = 2 * time.Second
	defaultNotifyTimeout = 5 * time.Second
)

// Persister loads and saves the board
type Persister interface {
	Load(ctx context.Context) domain.Board
	Save(ctx context.Context, b domain.Board) error
}

// TickResult reports what a scheduled tick did
type TickResult struct {
	Timer    pomodoro.Timer
	Accepted bool // false when the tick belonged to an older epoch
	Expired  bool // true when this tick ran the interval out
}

// Controller is the top-level state holder. It is not safe for
// concurrent use; the TUI calls it from its update loop only.
type Controller struct {
	board    domain.Board
	timer    pomodoro.Timer
	epoch    uint64
	persist  Persister
	notifier notify.Notifier
	ids      domain.IDSource
	logger   *slog.Logger

	saveTimeout   time.Duration
	notifyTimeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option configures a Controller
type Option func(*Controller)

// WithNotifier sets the expiry notifier
func WithNotifier(n notify.Notifier) Option {
	return func(c *Controller) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithIDSource sets the task ID generator
func WithIDSource(ids domain.IDSource) Option {
	return func(c *Controller) {
		if ids != nil {
			c.ids = ids
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDurations sets the timer mode lengths
func WithDurations(d pomodoro.Durations) Option {
	return func(c *Controller) {
		c.timer = pomodoro.New(d)
	}
}

// WithNotifyTimeout bounds each notification delivery
func WithNotifyTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.notifyTimeout = d
		}
	}
}

// New loads the board through persist and returns a ready controller
// with a paused pomodoro timer.
func New(ctx context.Context, persist Persister, opts ...Option) *Controller {
	c := &Controller{
		timer:         pomodoro.New(pomodoro.DefaultDurations()),
		persist:       persist,
		notifier:      notify.Nop{},
		ids:           domain.UUIDSource{},
		logger:        slog.Default(),
		saveTimeout:   defaultSaveTimeout,
		notifyTimeout: defaultNotifyTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())

	c.board = persist.Load(ctx)
	c.logger.Info("board ready", "tasks", c.board.Len())
	return c
}

// Board returns the committed board
func (c *Controller) Board() domain.Board {
	return c.board
}

// Timer returns the current timer state
func (c *Controller) Timer() pomodoro.Timer {
	return c.timer
}

// Epoch identifies the current tick chain. A tick scheduled under an
// older epoch is ignored.
func (c *Controller) Epoch() uint64 {
	return c.epoch
}

// AddTask appends a new task with text as its title to todo. Blank
// text is ignored.
func (c *Controller) AddTask(text string) (domain.Board, error) {
	return c.AddTaskWithPriority(text, domain.PriorityNone)
}

// AddTaskWithPriority appends a new task with the given priority.
// Blank text is ignored.
func (c *Controller) AddTaskWithPriority(text string, priority domain.Priority) (domain.Board, error) {
	if strings.TrimSpace(text) == "" {
		return c.board, nil
	}

	task, err := domain.NewTask(c.ids.NewID(), text, priority)
	if err != nil {
		return c.board, err
	}
	next, err := c.board.Add(task)
	if err != nil {
		return c.board, err
	}

	c.commit("add", next)
	return c.board, nil
}

// DeleteTask removes the task at index in column key
func (c *Controller) DeleteTask(key domain.ColumnKey, index int) (domain.Board, error) {
	next, err := c.board.Delete(key, index)
	if err != nil {
		c.logger.Warn("delete rejected", "column", key, "index", index, "error", err)
		return c.board, err
	}

	c.commit("delete", next)
	return c.board, nil
}

// MoveTask moves the task at index in src to the end of dst. Moving
// within one column leaves the board unchanged.
func (c *Controller) MoveTask(src domain.ColumnKey, index int, dst domain.ColumnKey) (domain.Board, error) {
	next, err := c.board.Move(domain.MoveIntent{Source: src, Index: index, Dest: dst})
	if err != nil {
		c.logger.Warn("move rejected", "from", src, "index", index, "to", dst, "error", err)
		return c.board, err
	}

	c.commit("move", next)
	return c.board, nil
}

// commit installs next and saves it when it differs from the current
// board. Save failures are logged; the in-memory board stays current.
func (c *Controller) commit(op string, next domain.Board) {
	if next.Equal(c.board) {
		return
	}
	c.board = next

	ctx, cancel := context.WithTimeout(c.ctx, c.saveTimeout)
	defer cancel()
	if err := c.persist.Save(ctx, next); err != nil {
		c.logger.Error("failed to save board", "op", op, "error", err)
		return
	}
	c.logger.Debug("board committed", "op", op, "tasks", next.Len())
}

// TimerStart resumes the countdown and opens a new tick epoch
func (c *Controller) TimerStart() pomodoro.Timer {
	c.timer = c.timer.Start()
	c.epoch++
	return c.timer
}

// TimerPause pauses the countdown
func (c *Controller) TimerPause() pomodoro.Timer {
	c.timer = c.timer.Pause()
	c.epoch++
	return c.timer
}

// TimerToggle starts a paused timer and pauses a running one
func (c *Controller) TimerToggle() pomodoro.Timer {
	if c.timer.Running() {
		return c.TimerPause()
	}
	return c.TimerStart()
}

// TimerReset pauses and restores the full length of the current mode
func (c *Controller) TimerReset() pomodoro.Timer {
	c.timer = c.timer.Reset()
	c.epoch++
	return c.timer
}

// TimerSwitchMode pauses in mode m at its full length
func (c *Controller) TimerSwitchMode(m pomodoro.Mode) pomodoro.Timer {
	c.timer = c.timer.SwitchMode(m)
	c.epoch++
	return c.timer
}

// TimerTick advances the timer by one second regardless of epoch
func (c *Controller) TimerTick() pomodoro.Timer {
	return c.tick().Timer
}

// TickIfCurrent advances the timer only when epoch matches the current
// tick chain.
func (c *Controller) TickIfCurrent(epoch uint64) TickResult {
	if epoch != c.epoch {
		return TickResult{Timer: c.timer}
	}
	return c.tick()
}

func (c *Controller) tick() TickResult {
	mode := c.timer.Mode()
	next, expired := c.timer.Tick()
	c.timer = next
	if !expired {
		return TickResult{Timer: next, Accepted: true}
	}

	c.epoch++
	c.logger.Info("timer expired", "mode", mode, "completed", next.Completed())
	if mode == pomodoro.ModePomodoro {
		c.notifyAsync("Pomodoro complete", "Time for a break.")
	}
	return TickResult{Timer: next, Accepted: true, Expired: true}
}

// notifyAsync delivers a notification off the caller's goroutine.
// Failures are logged and never touch board or timer state.
func (c *Controller) notifyAsync(title, body string) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(c.ctx, c.notifyTimeout)
		defer cancel()
		if err := c.notifier.Notify(ctx, title, body); err != nil {
			c.logger.Warn("notification failed", "error", err)
		}
	}()
}

// Close waits for in-flight notifications
func (c *Controller) Close() {
	c.wg.Wait()
	c.cancel()
}
