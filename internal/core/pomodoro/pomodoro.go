// Package pomodoro implements the focus/break countdown as a value-typed
// state machine. It knows nothing about scheduling: a caller delivers
// one Tick per elapsed wall-clock second.
package pomodoro

import (
	"fmt"
	"time"
)

// Mode is the kind of interval being timed
type Mode int

const (
	ModePomodoro Mode = iota
	ModeShortBreak
	ModeLongBreak
)

// Modes lists every mode in display order
var Modes = []Mode{ModePomodoro, ModeShortBreak, ModeLongBreak}

// String returns the stable name of the mode
func (m Mode) String() string {
	switch m {
	case ModePomodoro:
		return "pomodoro"
	case ModeShortBreak:
		return "shortBreak"
	case ModeLongBreak:
		return "longBreak"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Label returns the display string
func (m Mode) Label() string {
	switch m {
	case ModePomodoro:
		return "Focus"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is a known mode
func (m Mode) Valid() bool {
	return m >= ModePomodoro && m <= ModeLongBreak
}

// Durations holds the full length of each mode in whole seconds
type Durations struct {
	Pomodoro   int
	ShortBreak int
	LongBreak  int
}

// DefaultDurations returns 25/5/15 minutes
func DefaultDurations() Durations {
	return Durations{
		Pomodoro:   1500,
		ShortBreak: 300,
		LongBreak:  900,
	}
}

// For returns the length of mode in seconds
func (d Durations) For(m Mode) int {
	switch m {
	case ModeShortBreak:
		return d.ShortBreak
	case ModeLongBreak:
		return d.LongBreak
	default:
		return d.Pomodoro
	}
}

// withDefaults replaces non-positive durations with the defaults
func (d Durations) withDefaults() Durations {
	def := DefaultDurations()
	if d.Pomodoro <= 0 {
		d.Pomodoro = def.Pomodoro
	}
	if d.ShortBreak <= 0 {
		d.ShortBreak = def.ShortBreak
	}
	if d.LongBreak <= 0 {
		d.LongBreak = def.LongBreak
	}
	return d
}

// Timer is the countdown state. Every transition returns a new Timer.
type Timer struct {
	durations Durations
	mode      Mode
	running   bool
	remaining int
	completed int
}

// New returns a paused pomodoro timer at full length
func New(d Durations) Timer {
	d = d.withDefaults()
	return Timer{
		durations: d,
		mode:      ModePomodoro,
		remaining: d.Pomodoro,
	}
}

// Mode returns the current mode
func (t Timer) Mode() Mode { return t.mode }

// Running reports whether the countdown is active
func (t Timer) Running() bool { return t.running }

// Remaining returns the seconds left in the current interval
func (t Timer) Remaining() int { return t.remaining }

// Completed returns how many pomodoros have run to zero
func (t Timer) Completed() int { return t.completed }

// Durations returns the configured mode lengths
func (t Timer) Durations() Durations { return t.durations }

// Expired reports whether the current interval has run out
func (t Timer) Expired() bool { return t.remaining == 0 }

// Total returns the full length of the current mode in seconds
func (t Timer) Total() int {
	return t.durations.For(t.mode)
}

// Progress returns the elapsed fraction of the interval in [0, 1]
func (t Timer) Progress() float64 {
	total := t.Total()
	if total <= 0 {
		return 0
	}
	return float64(total-t.remaining) / float64(total)
}

// Clock formats the remaining time as MM:SS
func (t Timer) Clock() string {
	return FormatClock(t.remaining)
}

// FormatClock formats whole seconds as MM:SS. Minutes are not wrapped
// into hours.
func FormatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	d := time.Duration(secs) * time.Second
	m := int(d / time.Minute)
	s := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Start resumes the countdown. An expired interval stays paused until
// it is reset or the mode is switched.
func (t Timer) Start() Timer {
	if t.remaining == 0 {
		return t
	}
	t.running = true
	return t
}

// Pause stops the countdown without touching the remaining time
func (t Timer) Pause() Timer {
	t.running = false
	return t
}

// Reset pauses and restores the full length of the current mode
func (t Timer) Reset() Timer {
	t.running = false
	t.remaining = t.durations.For(t.mode)
	return t
}

// SwitchMode pauses in mode m at its full length. Unknown modes leave
// the timer unchanged.
func (t Timer) SwitchMode(m Mode) Timer {
	if !m.Valid() {
		return t
	}
	t.mode = m
	return t.Reset()
}

// Tick counts down one second. The returned flag is true exactly when
// this tick ran the interval out.
func (t Timer) Tick() (Timer, bool) {
	if !t.running || t.remaining == 0 {
		return t, false
	}

	t.remaining--
	if t.remaining > 0 {
		return t, false
	}

	t.running = false
	if t.mode == ModePomodoro {
		t.completed++
	}
	return t, true
}
