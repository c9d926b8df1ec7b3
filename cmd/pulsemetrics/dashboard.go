package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/dataset"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/ports"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/selector"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/tui/dashboard"
)

type dashboardOptions struct {
	rangeKey string

	// input and output override the terminal; set by tests.
	input  io.Reader
	output io.Writer
}

func newDashboardCmd(app *AppContext) *cobra.Command {
	opts := &dashboardOptions{}

	cmd := &cobra.Command{
		Use:         "dashboard",
		Short:       "Launch the interactive dashboard",
		Long:        `Launch the interactive TUI dashboard with KPI cards, revenue and acquisition charts, and theme preferences.`,
		Annotations: map[string]string{logToFileAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeDashboard(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.rangeKey, "range", "r", "", "Initial range: 7d, 30d or 90d (default from config)")

	return cmd
}

func executeDashboard(cmd *cobra.Command, app *AppContext, opts *dashboardOptions) error {
	ctx, logger := app.CommandContext(cmd, "command.dashboard")
	logger.Info(ctx, "launching dashboard")

	err := runDashboard(ctx, app, logger, opts)
	if err != nil {
		logger.Error(ctx, "dashboard command failed", "error", err)
	}
	return err
}

func runDashboard(ctx context.Context, app *AppContext, logger ports.Logger, opts *dashboardOptions) error {
	rangeKey, err := resolveRange(app, opts.rangeKey)
	if err != nil {
		return err
	}

	formatter, err := app.Formatter()
	if err != nil {
		return err
	}

	resolver, err := app.Resolver(logger)
	if err != nil {
		return fmt.Errorf("failed to open preferences: %w", err)
	}
	state := resolver.Mount(ctx)
	logger.Info(ctx, "dashboard loaded", "range", rangeKey.String(), "theme_preference", state.Preference.String(), "theme", state.Label())

	m := dashboard.NewModel(dashboard.Options{
		Context:        ctx,
		Selector:       selector.New(rangeKey),
		Resolver:       resolver,
		Formatter:      formatter,
		ExportCooldown: app.Config.ExportCooldown,
		Logger:         logger,
	})
	defer m.Teardown()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithMouseCellMotion()}
	if opts.input != nil || opts.output != nil {
		programOpts = append(programOpts, tea.WithInput(opts.input), tea.WithOutput(opts.output))
	} else {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(m, programOpts...)
	if _, err := p.Run(); err != nil {
		logger.Error(ctx, "dashboard execution failed", "error", err)
		return fmt.Errorf("failed to run dashboard: %w", err)
	}

	logger.Info(ctx, "dashboard closed")
	return nil
}

// resolveRange prefers the flag over the configured default.
func resolveRange(app *AppContext, flag string) (dataset.RangeKey, error) {
	if flag == "" {
		return app.Config.Range(), nil
	}
	return dataset.ParseRange(flag)
}
