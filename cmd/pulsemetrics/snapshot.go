package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/dataset"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/presenter"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/selector"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

type snapshotOptions struct {
	rangeKey string
	output   string
}

func newSnapshotCmd(app *AppContext) *cobra.Command {
	opts := &snapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print the formatted dashboard for a range without starting the TUI",
		Example: `  pulsemetrics snapshot
  pulsemetrics snapshot --range 90d --output yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.snapshot")

			if opts.output != outputText && opts.output != outputYAML {
				return fmt.Errorf("invalid output %q: expected %s or %s", opts.output, outputText, outputYAML)
			}

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

			sel := selector.New(rangeKey)
			snap := presenter.Build(sel.Current(), sel.Bundle(), formatter)
			snap.Theme = state.Label()

			logger.Debug(ctx, "snapshot built", "range", rangeKey.String(), "output", opts.output)
			return writeSnapshot(cmd.OutOrStdout(), snap, opts.output)
		},
	}

	cmd.Flags().StringVarP(&opts.rangeKey, "range", "r", "", fmt.Sprintf("Range to render (default from config, %s when unset)", dataset.DefaultRange()))
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "Output format: text or yaml")

	return cmd
}

func writeSnapshot(w io.Writer, snap presenter.Snapshot, output string) error {
	if output == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		return enc.Close()
	}

	_, err := io.WriteString(w, snap.Text())
	return err
}
