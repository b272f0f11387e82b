package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/riordanpawley/papan/internal/core/pomodoro"
	"github.com/riordanpawley/papan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test storage defaults
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "kanban-data", cfg.Storage.Key)
	assert.Equal(t, "board.json", filepath.Base(cfg.Storage.Path))

	// Test timer defaults
	assert.Equal(t, pomodoro.DefaultDurations(), cfg.Timer.Durations())

	// Test board defaults
	assert.Equal(t, domain.ColumnNames{Todo: "Todo", InProgress: "In Progress", Done: "Done"}, cfg.Board.Columns.Names())

	// Test notifications defaults
	assert.True(t, cfg.Notifications.Desktop)
	assert.True(t, cfg.Notifications.Bell)
	assert.Equal(t, 5, cfg.Notifications.TimeoutSeconds)

	// Test log defaults
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.NotEmpty(t, cfg.Log.File)

	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromJSONWithComments(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `{
  // keep the board next to the project
  "storage": {
    "backend": "sqlite",
    "path": "./papan.db",
  },
  "timer": {
    "pomodoroMinutes": 50, /* long focus */
  },
  "notifications": {
    "desktop": false
  }
}`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".papan.json"), []byte(configContent), 0644))

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	// Check custom values
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "./papan.db", cfg.Storage.Path)
	assert.Equal(t, 50, cfg.Timer.PomodoroMinutes)
	assert.False(t, cfg.Notifications.Desktop)

	// Check defaults are kept
	assert.Equal(t, "kanban-data", cfg.Storage.Key)
	assert.Equal(t, 5, cfg.Timer.ShortBreakMinutes)
	assert.True(t, cfg.Notifications.Bell)
	assert.Equal(t, "Done", cfg.Board.Columns.Done)
}

func TestLoadConfigFromYAML(t *testing.T) {
	for _, name := range []string{".papan.yaml", ".papan.yml"} {
		t.Run(name, func(t *testing.T) {
			tmpDir := t.TempDir()

			configContent := `
version: 1
board:
  columns:
    todo: Backlog
    done: Selesai
timer:
  shortBreakMinutes: 10
log:
  level: debug
  format: logfmt
`
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte(configContent), 0644))

			cfg, err := LoadConfig(tmpDir)
			require.NoError(t, err)

			assert.Equal(t, "Backlog", cfg.Board.Columns.Todo)
			assert.Equal(t, "In Progress", cfg.Board.Columns.InProgress)
			assert.Equal(t, "Selesai", cfg.Board.Columns.Done)
			assert.Equal(t, 10, cfg.Timer.ShortBreakMinutes)
			assert.Equal(t, 25, cfg.Timer.PomodoroMinutes)
			assert.Equal(t, "debug", cfg.Log.Level)
			assert.Equal(t, "logfmt", cfg.Log.Format)
		})
	}
}

func TestLoadConfigPriority(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".papan.json"), []byte(`{"storage":{"key":"from-json"}}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".papan.yaml"), []byte("storage:\n  key: from-yaml\n"), 0644))

	// Load config - should prefer .papan.json
	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.Storage.Key)
}

func TestLoadConfigNoFiles(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{
			name:    "broken json",
			file:    ".papan.json",
			content: "{\n  \"storage\": {\n    \"backend\": \"file\"\n  // missing closing brace\n}",
			wantErr: "failed to parse .papan.json",
		},
		{
			name:    "broken yaml",
			file:    ".papan.yaml",
			content: "storage: [unterminated",
			wantErr: "failed to parse .papan.yaml",
		},
		{
			name:    "unknown backend",
			file:    ".papan.json",
			content: `{"storage":{"backend":"redis"}}`,
			wantErr: "storage.backend",
		},
		{
			name:    "negative timer",
			file:    ".papan.yml",
			content: "timer:\n  longBreakMinutes: -3\n",
			wantErr: "timer.longBreakMinutes",
		},
		{
			name:    "bad log level",
			file:    ".papan.json",
			content: `{"log":{"level":"loud"}}`,
			wantErr: "log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, tt.file), []byte(tt.content), 0644))

			_, err := LoadConfig(tmpDir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveConfig(t *testing.T) {
	for _, name := range []string{"saved.json", "saved.yaml"} {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "nested", name)

			cfg := DefaultConfig()
			cfg.Storage.Backend = "sqlite"
			cfg.Timer.LongBreakMinutes = 20
			cfg.Board.Columns.InProgress = "Doing"
			cfg.Notifications.Bell = false

			require.NoError(t, SaveConfig(cfg, configPath))

			reloaded, err := LoadFile(configPath)
			require.NoError(t, err)
			assert.Equal(t, cfg, reloaded)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	partial := &Config{
		Storage: StorageConfig{Backend: "memory"},
		Timer:   TimerConfig{PomodoroMinutes: 45},
		Board:   BoardConfig{Columns: ColumnsConfig{Todo: "Backlog"}},
	}

	merged := MergeWithDefaults(partial)

	// Check custom values preserved
	assert.Equal(t, "memory", merged.Storage.Backend)
	assert.Equal(t, 45, merged.Timer.PomodoroMinutes)
	assert.Equal(t, "Backlog", merged.Board.Columns.Todo)

	// Check defaults filled in
	assert.Equal(t, "kanban-data", merged.Storage.Key)
	assert.NotEmpty(t, merged.Storage.Path)
	assert.Equal(t, 15, merged.Timer.LongBreakMinutes)
	assert.Equal(t, "In Progress", merged.Board.Columns.InProgress)
	assert.Equal(t, 5, merged.Notifications.TimeoutSeconds)
	assert.Equal(t, "info", merged.Log.Level)

	// Booleans are not defaulted
	assert.False(t, merged.Notifications.Desktop)
}

func TestTimerConfigDurations(t *testing.T) {
	d := TimerConfig{PomodoroMinutes: 1, ShortBreakMinutes: 2, LongBreakMinutes: 3}.Durations()
	assert.Equal(t, pomodoro.Durations{Pomodoro: 60, ShortBreak: 120, LongBreak: 180}, d)
}
