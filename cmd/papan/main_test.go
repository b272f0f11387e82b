package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/riordanpawley/papan/internal/config"
	"github.com/riordanpawley/papan/internal/services/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	opts, _, err := parseFlags([]string{
		"--store", "sqlite",
		"--store-path", "/tmp/board.db",
		"--log-level", "debug",
		"--no-notify",
		"-c", "cfg.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, "sqlite", opts.store)
	assert.Equal(t, "/tmp/board.db", opts.storePath)
	assert.Equal(t, "debug", opts.logLevel)
	assert.Equal(t, "cfg.yaml", opts.configPath)
	assert.True(t, opts.noNotify)
	assert.False(t, opts.help)
}

func TestParseFlags_Errors(t *testing.T) {
	_, _, err := parseFlags([]string{"--bogus"})
	assert.Error(t, err)

	_, _, err = parseFlags([]string{"extra"})
	assert.EqualError(t, err, "unexpected argument: extra")
}

func TestRun_HelpAndVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.NoError(t, run([]string{"--help"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage:")
	assert.Contains(t, stderr.String(), "--store-path")

	stderr.Reset()
	require.NoError(t, run([]string{"-h"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "--no-notify")

	require.NoError(t, run([]string{"--version"}, &stdout, &stderr))
	assert.Equal(t, "papan dev\n", stdout.String())
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "papan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
version: 1
storage:
  backend: file
  path: /tmp/from-file.json
timer:
  pomodoroMinutes: 50
`), 0644))

	cfg, err := loadConfig(&options{
		configPath: path,
		store:      "memory",
		logFile:    "",
		logLevel:   "warn",
		noNotify:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/from-file.json", cfg.Storage.Path)
	assert.Equal(t, 50, cfg.Timer.PomodoroMinutes)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Notifications.Desktop)
	assert.False(t, cfg.Notifications.Bell)
}

func TestLoadConfig_InvalidOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "papan.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 1}`), 0644))

	_, err := loadConfig(&options{configPath: path, store: "redis"})
	assert.ErrorContains(t, err, "storage.backend")

	_, err = loadConfig(&options{configPath: filepath.Join(t.TempDir(), "missing.json")})
	assert.ErrorContains(t, err, "failed to load config")
}

func TestNewNotifier(t *testing.T) {
	var bell bytes.Buffer

	assert.Equal(t, notify.Nop{}, newNotifier(config.NotifyConfig{}, &bell))

	n := newNotifier(config.NotifyConfig{Bell: true}, &bell)
	multi, ok := n.(notify.Multi)
	require.True(t, ok)
	assert.Len(t, multi, 1)
	require.NoError(t, n.Notify(t.Context(), "Pomodoro complete", ""))
	assert.Equal(t, "\a", bell.String())

	n = newNotifier(config.NotifyConfig{Desktop: true, Bell: true}, &bell)
	assert.Len(t, n.(notify.Multi), 2)
}

func TestRun_WriteConfig(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "papan.json")
	require.NoError(t, os.WriteFile(src, []byte(`{
		// shorter focus blocks
		"timer": {"pomodoroMinutes": 40},
	}`), 0644))
	out := filepath.Join(dir, "out", "papan.yaml")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-c", src, "--store", "sqlite", "--no-notify", "--write-config", out}, &stdout, &stderr))
	assert.Equal(t, "wrote "+out+"\n", stdout.String())

	written, err := config.LoadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", written.Storage.Backend)
	assert.Equal(t, 40, written.Timer.PomodoroMinutes)
	assert.False(t, written.Notifications.Desktop)
	assert.False(t, written.Notifications.Bell)
}
