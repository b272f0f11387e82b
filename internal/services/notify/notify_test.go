package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	calls []call
	err   error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	f.calls = append(f.calls, call{name: name, args: args})
	return f.err
}

type notifierFunc func(ctx context.Context, title, body string) error

func (f notifierFunc) Notify(ctx context.Context, title, body string) error {
	return f(ctx, title, body)
}

func TestDesktop_Linux(t *testing.T) {
	runner := &fakeRunner{}
	d := NewDesktopWithRunner(runner, "linux", "papan")

	require.NoError(t, d.Notify(context.Background(), "Focus done", "Time for a break"))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "notify-send", runner.calls[0].name)
	assert.Equal(t, []string{"--app-name=papan", "Focus done", "Time for a break"}, runner.calls[0].args)
}

func TestDesktop_Darwin(t *testing.T) {
	runner := &fakeRunner{}
	d := NewDesktopWithRunner(runner, "darwin", "papan")

	require.NoError(t, d.Notify(context.Background(), "Focus done", `Say "hi"`))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "osascript", runner.calls[0].name)
	assert.Equal(t, []string{"-e", `display notification "Say \"hi\"" with title "Focus done"`}, runner.calls[0].args)
}

func TestDesktop_Unsupported(t *testing.T) {
	runner := &fakeRunner{}
	d := NewDesktopWithRunner(runner, "plan9", "")

	err := d.Notify(context.Background(), "t", "b")
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Empty(t, runner.calls)
}

func TestDesktop_RunnerError(t *testing.T) {
	boom := errors.New("no notification daemon")
	d := NewDesktopWithRunner(&fakeRunner{err: boom}, "linux", "")

	assert.ErrorIs(t, d.Notify(context.Background(), "t", "b"), boom)
}

func TestBell(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)

	require.NoError(t, b.Notify(context.Background(), "t", "b"))
	assert.Equal(t, "\a", buf.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, b.Notify(ctx, "t", "b"))
	assert.Equal(t, "\a", buf.String())
}

func TestMulti(t *testing.T) {
	first := errors.New("first")
	var delivered []string

	m := Multi{
		notifierFunc(func(_ context.Context, title, _ string) error {
			delivered = append(delivered, "a:"+title)
			return first
		}),
		nil,
		Nop{},
		notifierFunc(func(_ context.Context, title, _ string) error {
			delivered = append(delivered, "b:"+title)
			return nil
		}),
	}

	err := m.Notify(context.Background(), "done", "")
	assert.ErrorIs(t, err, first)
	assert.Equal(t, []string{"a:done", "b:done"}, delivered)

	assert.NoError(t, Multi{Nop{}}.Notify(context.Background(), "", ""))
}
