package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/riordanpawley/papan/internal/core/pomodoro"
	"github.com/riordanpawley/papan/internal/domain"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// FileNames lists the project config files in lookup order
var FileNames = []string{".papan.json", ".papan.yaml", ".papan.yml"}

// Config represents the full papan configuration
type Config struct {
	Storage       StorageConfig `json:"storage" yaml:"storage"`
	Timer         TimerConfig   `json:"timer" yaml:"timer"`
	Board         BoardConfig   `json:"board" yaml:"board"`
	Notifications NotifyConfig  `json:"notifications" yaml:"notifications"`
	Log           LogConfig     `json:"log" yaml:"log"`
}

// StorageConfig selects where the board is persisted
type StorageConfig struct {
	Backend string `json:"backend" yaml:"backend"` // file, sqlite or memory
	Path    string `json:"path" yaml:"path"`
	Key     string `json:"key" yaml:"key"`
}

// TimerConfig holds interval lengths in minutes
type TimerConfig struct {
	PomodoroMinutes   int `json:"pomodoroMinutes" yaml:"pomodoroMinutes"`
	ShortBreakMinutes int `json:"shortBreakMinutes" yaml:"shortBreakMinutes"`
	LongBreakMinutes  int `json:"longBreakMinutes" yaml:"longBreakMinutes"`
}

// Durations converts the timer settings to whole seconds
func (t TimerConfig) Durations() pomodoro.Durations {
	return pomodoro.Durations{
		Pomodoro:   t.PomodoroMinutes * 60,
		ShortBreak: t.ShortBreakMinutes * 60,
		LongBreak:  t.LongBreakMinutes * 60,
	}
}

// BoardConfig holds the labels used for a fresh board
type BoardConfig struct {
	Columns ColumnsConfig `json:"columns" yaml:"columns"`
}

// ColumnsConfig names each column
type ColumnsConfig struct {
	Todo       string `json:"todo" yaml:"todo"`
	InProgress string `json:"inProgress" yaml:"inProgress"`
	Done       string `json:"done" yaml:"done"`
}

// Names converts to domain column names
func (c ColumnsConfig) Names() domain.ColumnNames {
	return domain.ColumnNames{Todo: c.Todo, InProgress: c.InProgress, Done: c.Done}
}

// NotifyConfig contains notification settings
type NotifyConfig struct {
	Desktop        bool `json:"desktop" yaml:"desktop"`
	Bell           bool `json:"bell" yaml:"bell"`
	TimeoutSeconds int  `json:"timeoutSeconds" yaml:"timeoutSeconds"`
}

// LogConfig contains logging settings
type LogConfig struct {
	File   string `json:"file" yaml:"file"`
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // text, logfmt or json
}

// DataDir returns the directory papan keeps its files in
func DataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".papan"
	}
	return filepath.Join(homeDir, ".papan")
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	dataDir := DataDir()

	return &Config{
		Storage: StorageConfig{
			Backend: "file",
			Path:    filepath.Join(dataDir, "board.json"),
			Key:     "kanban-data",
		},
		Timer: TimerConfig{
			PomodoroMinutes:   25,
			ShortBreakMinutes: 5,
			LongBreakMinutes:  15,
		},
		Board: BoardConfig{
			Columns: ColumnsConfig{
				Todo:       "Todo",
				InProgress: "In Progress",
				Done:       "Done",
			},
		},
		Notifications: NotifyConfig{
			Desktop:        true,
			Bell:           true,
			TimeoutSeconds: 5,
		},
		Log: LogConfig{
			File:   filepath.Join(dataDir, "papan.log"),
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from the project directory, trying
// each of FileNames in order. Without a config file the defaults are
// returned.
func LoadConfig(projectPath string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(projectPath, name)
		cfg, err := LoadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return DefaultConfig(), nil
}

// LoadFile loads a single config file. The format follows the
// extension: .yaml/.yml are YAML, anything else is JSON with comments
// and trailing commas allowed.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	default:
		data = jsonc.ToJSON(data)
	}

	cfg, err := ParseVersionedConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return cfg, nil
}

// yamlToJSON re-encodes a YAML document as JSON so both formats share
// the versioned parse path.
func yamlToJSON(data []byte) ([]byte, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}
	return json.Marshal(raw)
}

// SaveConfig saves configuration to the specified path with version
// information. A .yaml or .yml path is written as YAML.
func SaveConfig(cfg *Config, path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = MarshalVersionedYAML(cfg)
	default:
		data, err = MarshalVersionedConfig(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// Merge Storage config
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = defaults.Storage.Backend
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaults.Storage.Path
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = defaults.Storage.Key
	}

	// Merge Timer config
	if cfg.Timer.PomodoroMinutes == 0 {
		cfg.Timer.PomodoroMinutes = defaults.Timer.PomodoroMinutes
	}
	if cfg.Timer.ShortBreakMinutes == 0 {
		cfg.Timer.ShortBreakMinutes = defaults.Timer.ShortBreakMinutes
	}
	if cfg.Timer.LongBreakMinutes == 0 {
		cfg.Timer.LongBreakMinutes = defaults.Timer.LongBreakMinutes
	}

	// Merge Board config
	if cfg.Board.Columns.Todo == "" {
		cfg.Board.Columns.Todo = defaults.Board.Columns.Todo
	}
	if cfg.Board.Columns.InProgress == "" {
		cfg.Board.Columns.InProgress = defaults.Board.Columns.InProgress
	}
	if cfg.Board.Columns.Done == "" {
		cfg.Board.Columns.Done = defaults.Board.Columns.Done
	}

	// Merge Notifications config
	if cfg.Notifications.TimeoutSeconds == 0 {
		cfg.Notifications.TimeoutSeconds = defaults.Notifications.TimeoutSeconds
	}

	// Merge Log config
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = defaults.Log.Format
	}

	return cfg
}

// Validate reports settings that cannot be used
func (c *Config) Validate() error {
	var errs []error

	switch c.Storage.Backend {
	case "file", "sqlite", "memory":
	default:
		errs = append(errs, fmt.Errorf("storage.backend: unknown backend %q", c.Storage.Backend))
	}

	for name, minutes := range map[string]int{
		"timer.pomodoroMinutes":   c.Timer.PomodoroMinutes,
		"timer.shortBreakMinutes": c.Timer.ShortBreakMinutes,
		"timer.longBreakMinutes":  c.Timer.LongBreakMinutes,
	} {
		if minutes < 0 {
			errs = append(errs, fmt.Errorf("%s: must be positive, got %d", name, minutes))
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "logfmt", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
