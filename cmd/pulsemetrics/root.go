package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd(app *AppContext) *cobra.Command {
	flags := &rootFlags{}
	dashOpts := &dashboardOptions{}

	cmd := &cobra.Command{
		Use:           "pulsemetrics",
		Short:         "PulseMetrics renders the analytics command center in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations:   map[string]string{logToFileAnnotation: "true"},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the dashboard
			if len(args) == 0 {
				return executeDashboard(cmd, app, dashOpts)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to config.yaml (default: user config dir)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().StringVarP(&dashOpts.rangeKey, "range", "r", "", "Initial dashboard range: 7d, 30d or 90d (default from config)")

	cmd.AddCommand(newDashboardCmd(app))
	cmd.AddCommand(newSnapshotCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
