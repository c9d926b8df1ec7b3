package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/config"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/format"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/infrastructure/environment"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/infrastructure/prefs"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/ports"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/theme"
)

// logToFileAnnotation marks commands that own the terminal and therefore
// write logs to the configured log file instead of stderr.
const logToFileAnnotation = "pulsemetrics/log-to-file"

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config   *config.Config
	Logger   ports.Logger
	Detector ports.EnvironmentDetector

	closers []io.Closer
}

func newAppContext() *AppContext {
	return &AppContext{}
}

// setup loads configuration and builds the logger for cmd. It runs once per
// process from the root command's PersistentPreRunE.
func (a *AppContext) setup(cmd *cobra.Command, flags *rootFlags) error {
	if a.Config == nil {
		cfg, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		a.Config = cfg
	}

	if a.Logger == nil {
		logger, err := a.buildLogger(cmd, flags.verbose)
		if err != nil {
			return err
		}
		a.Logger = logger
	}

	if a.Detector == nil {
		a.Detector = environment.NewTerminalDetector(os.Stdout)
	}
	return nil
}

func (a *AppContext) buildLogger(cmd *cobra.Command, verbose bool) (ports.Logger, error) {
	level := a.Config.Log.Level
	writer := cmd.ErrOrStderr()

	if cmd.Annotations[logToFileAnnotation] == "true" {
		if a.Config.Log.File == "" {
			return logging.NewNoOpLogger(), nil
		}
		if err := os.MkdirAll(filepath.Dir(a.Config.Log.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		file, err := os.OpenFile(a.Config.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.closers = append(a.closers, file)
		writer = file
	} else if !verbose {
		// stdout carries command output; keep stderr for problems only
		level = "warn"
	}

	if verbose {
		level = "debug"
	}

	logger, err := logging.New(logging.Options{
		Writer:        writer,
		Level:         level,
		HumanReadable: !a.Config.Log.JSON,
		Layer:         "presentation",
		Component:     "cli",
	})
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// CommandContext returns a context carrying a fresh correlation ID and a
// logger scoped to the named command.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	logger := a.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return ctx, logger.With("command", name)
}

// Formatter builds the formatter for the configured locale.
func (a *AppContext) Formatter() (*format.Formatter, error) {
	locale, err := a.Config.FormatLocale()
	if err != nil {
		return nil, err
	}
	return format.New(locale), nil
}

// Resolver returns an unmounted theme resolver backed by the preference file.
func (a *AppContext) Resolver(logger ports.Logger) (*theme.Resolver, error) {
	store, err := prefs.NewFileStore(a.Config.PreferencesPath)
	if err != nil {
		return nil, err
	}
	return theme.NewResolver(store, a.Detector, theme.WithLogger(logger)), nil
}

// Close releases files opened during setup.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}
