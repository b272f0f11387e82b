// papan is a personal kanban board with a built-in pomodoro timer.
//
// The board has three columns (Todo, In Progress, Done) and is saved
// after every change to a local store: a JSON file by default, or a
// SQLite database with --store sqlite.
//
// Usage:
//
//	papan [flags]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/papan/internal/app"
	"github.com/riordanpawley/papan/internal/config"
	"github.com/riordanpawley/papan/internal/core/controller"
	"github.com/riordanpawley/papan/internal/domain"
	"github.com/riordanpawley/papan/internal/logging"
	"github.com/riordanpawley/papan/internal/services/notify"
	"github.com/riordanpawley/papan/internal/services/persistence"
	"github.com/riordanpawley/papan/internal/services/storage"
	"github.com/spf13/pflag"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options are the command-line overrides. Empty values keep the
// config file setting.
type options struct {
	configPath  string
	store       string
	storePath   string
	logFile     string
	logLevel    string
	noNotify    bool
	writeConfig string
	help        bool
	showVersion bool
}

func parseFlags(args []string) (*options, *pflag.FlagSet, error) {
	var opts options

	flagSet := pflag.NewFlagSet("papan", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVarP(&opts.configPath, "config", "c", "", "config file (default: .papan.json, .papan.yaml or .papan.yml in the current directory)")
	flagSet.StringVar(&opts.store, "store", "", "storage backend: file, sqlite or memory")
	flagSet.StringVar(&opts.storePath, "store-path", "", "path of the board file or database")
	flagSet.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flagSet.BoolVar(&opts.noNotify, "no-notify", false, "disable desktop notifications and the terminal bell")
	flagSet.StringVar(&opts.writeConfig, "write-config", "", "write the effective config to this file (.json, .yaml or .yml) and exit")
	flagSet.BoolVarP(&opts.help, "help", "h", false, "show help")
	flagSet.BoolVar(&opts.showVersion, "version", false, "print the version and exit")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			opts.help = true
			return &opts, flagSet, nil
		}
		return nil, flagSet, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return nil, flagSet, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	return &opts, flagSet, nil
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.store != "" {
		cfg.Storage.Backend = opts.store
	}
	if opts.storePath != "" {
		cfg.Storage.Path = opts.storePath
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.noNotify {
		cfg.Notifications.Desktop = false
		cfg.Notifications.Bell = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newNotifier builds the expiry notifier from the config. bell is
// where the terminal bell is written.
func newNotifier(cfg config.NotifyConfig, bell io.Writer) notify.Notifier {
	var notifiers notify.Multi
	if cfg.Desktop {
		notifiers = append(notifiers, notify.NewDesktop("papan"))
	}
	if cfg.Bell {
		notifiers = append(notifiers, notify.NewBell(bell))
	}
	if len(notifiers) == 0 {
		return notify.Nop{}
	}
	return notifiers
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, flagSet, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opts.help {
		printHelp(stderr, flagSet)
		return nil
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "papan %s\n", version)
		return nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if opts.writeConfig != "" {
		if err := config.SaveConfig(cfg, opts.writeConfig); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", opts.writeConfig)
		return nil
	}

	logger, logCloser, err := logging.Open(cfg.Log.File, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	store, err := storage.Open(storage.Kind(cfg.Storage.Backend), cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close store", "error", err)
		}
	}()
	logger.Info("starting papan",
		"version", version,
		"backend", cfg.Storage.Backend,
		"path", cfg.Storage.Path,
	)

	adapter := persistence.New(store,
		persistence.WithKey(cfg.Storage.Key),
		persistence.WithFallback(domain.EmptyBoard(cfg.Board.Columns.Names())),
		persistence.WithLogger(logger),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctrl := controller.New(ctx, adapter,
		controller.WithNotifier(newNotifier(cfg.Notifications, stderr)),
		controller.WithLogger(logger),
		controller.WithDurations(cfg.Timer.Durations()),
		controller.WithNotifyTimeout(time.Duration(cfg.Notifications.TimeoutSeconds)*time.Second),
	)
	defer ctrl.Close()

	program := tea.NewProgram(app.New(ctrl, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprint(w, `papan: a kanban board with a pomodoro timer.

Usage:
  papan [flags]

Examples:
  # Use the defaults (~/.papan/board.json)
  papan

  # Keep the board in SQLite
  papan --store sqlite --store-path ~/.papan/board.db

  # Try it out without touching disk
  papan --store memory --no-notify

  # Start a config file from the current settings
  papan --store sqlite --write-config .papan.yaml

Flags:
`)
	fmt.Fprint(w, flagSet.FlagUsages())
}
