package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/theme"
)

func newThemeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the persisted theme preference",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeGet(cmd, app)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the stored preference and the resolved theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeGet(cmd, app)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark|system>",
		Short:     "Persist a theme preference",
		Args:      cobra.ExactArgs(1),
		ValidArgs: preferenceNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			pref, err := theme.ParsePreference(args[0])
			if err != nil {
				return err
			}
			return runThemeChange(cmd, app, "command.theme.set", func(ctx context.Context, r *theme.Resolver) (theme.State, error) {
				return r.Set(ctx, pref)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "cycle",
		Short: "Advance the preference light, dark, system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeChange(cmd, app, "command.theme.cycle", func(ctx context.Context, r *theme.Resolver) (theme.State, error) {
				return r.Cycle(ctx)
			})
		},
	})

	return cmd
}

func runThemeGet(cmd *cobra.Command, app *AppContext) error {
	ctx, logger := app.CommandContext(cmd, "command.theme.get")

	resolver, err := app.Resolver(logger)
	if err != nil {
		return fmt.Errorf("failed to open preferences: %w", err)
	}
	printThemeState(cmd.OutOrStdout(), resolver.Mount(ctx))
	return nil
}

func runThemeChange(cmd *cobra.Command, app *AppContext, name string, change func(context.Context, *theme.Resolver) (theme.State, error)) error {
	ctx, logger := app.CommandContext(cmd, name)

	resolver, err := app.Resolver(logger)
	if err != nil {
		return fmt.Errorf("failed to open preferences: %w", err)
	}
	resolver.Mount(ctx)

	state, err := change(ctx, resolver)
	if err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}

	logger.Info(ctx, "theme preference updated", "preference", state.Preference.String(), "theme", state.Label())
	printThemeState(cmd.OutOrStdout(), state)
	return nil
}

func printThemeState(w io.Writer, state theme.State) {
	fmt.Fprintf(w, "preference: %s\n", state.Preference)
	fmt.Fprintf(w, "resolved:   %s\n", state.Label())
}

func preferenceNames() []string {
	prefs := theme.Preferences()
	names := make([]string, 0, len(prefs))
	for _, p := range prefs {
		names = append(names, p.String())
	}
	return names
}
