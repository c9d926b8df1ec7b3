package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/infrastructure/environment"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/ports"
)

func TestDashboardQuitsOnQ(t *testing.T) {
	env := newTestEnv(t, "30d")

	app := newAppContext()
	app.Detector = environment.StaticDetector{Dark: false, Available: true}
	t.Cleanup(app.Close)

	require.NoError(t, app.setup(newDashboardCmd(app), &rootFlags{configPath: env.configPath}))

	screen := &bytes.Buffer{}
	cmd := newDashboardCmd(app)
	ctx, logger := app.CommandContext(cmd, "command.dashboard")
	err := runDashboard(ctx, app, logger, &dashboardOptions{
		input:  strings.NewReader("q"),
		output: screen,
	})
	require.NoError(t, err)
	assert.Contains(t, screen.String(), "Command Center Overview")

	logData, err := os.ReadFile(env.logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logData), "dashboard loaded")
}

func TestDashboardRejectsUnknownRange(t *testing.T) {
	env := newTestEnv(t, "7d")

	_, err := env.execute(t, "dashboard", "--range", "1y")
	require.Error(t, err)
}

func TestCommandContextCarriesCorrelationID(t *testing.T) {
	app := newAppContext()
	ctx, logger := app.CommandContext(newSnapshotCmd(app), "command.snapshot")

	require.NotNil(t, logger)
	assert.NotEmpty(t, ports.GetCorrelationID(ctx))
}

func TestRootRejectsUnknownRange(t *testing.T) {
	env := newTestEnv(t, "7d")

	_, err := env.execute(t, "--range", "2w")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2w")
}
