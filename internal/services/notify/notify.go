// Package notify delivers out-of-band alerts when a timer interval ends
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"sync"
)

// ErrUnsupported is returned when no desktop notifier exists for the OS
var ErrUnsupported = errors.New("desktop notifications not supported")

// Notifier delivers a single alert
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// Nop discards every notification
type Nop struct{}

// Notify does nothing
func (Nop) Notify(context.Context, string, string) error { return nil }

// Desktop shows a native notification through the platform's CLI tool:
// notify-send on Linux, osascript on macOS.
type Desktop struct {
	runner CommandRunner
	goos   string
	app    string
}

// NewDesktop returns a Desktop notifier for the running OS
func NewDesktop(app string) *Desktop {
	return &Desktop{runner: ExecRunner{}, goos: runtime.GOOS, app: app}
}

// NewDesktopWithRunner returns a Desktop notifier with an injected runner
// and target OS.
func NewDesktopWithRunner(runner CommandRunner, goos, app string) *Desktop {
	return &Desktop{runner: runner, goos: goos, app: app}
}

// Notify shows title and body
func (d *Desktop) Notify(ctx context.Context, title, body string) error {
	switch d.goos {
	case "linux", "freebsd", "openbsd":
		args := []string{}
		if d.app != "" {
			args = append(args, "--app-name="+d.app)
		}
		args = append(args, title, body)
		return d.runner.Run(ctx, "notify-send", args...)
	case "darwin":
		script := fmt.Sprintf("display notification %s with title %s", strconv.Quote(body), strconv.Quote(title))
		return d.runner.Run(ctx, "osascript", "-e", script)
	default:
		return fmt.Errorf("%w on %s", ErrUnsupported, d.goos)
	}
}

// Bell rings the terminal bell
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell returns a Bell writing to w
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Notify writes a BEL character
func (b *Bell) Notify(ctx context.Context, _, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := io.WriteString(b.w, "\a")
	return err
}

// Multi delivers to every notifier and joins their errors
type Multi []Notifier

// Notify calls each notifier in order
func (m Multi) Notify(ctx context.Context, title, body string) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, title, body); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
