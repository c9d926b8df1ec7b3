package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/infrastructure/environment"
)

type testEnv struct {
	dir        string
	configPath string
	prefsPath  string
	logPath    string
}

func newTestEnv(t *testing.T, defaultRange string) testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	env := testEnv{
		dir:        dir,
		configPath: filepath.Join(dir, "config.yaml"),
		prefsPath:  filepath.Join(dir, "state", "preferences.yaml"),
		logPath:    filepath.Join(dir, "logs", "pulsemetrics.log"),
	}
	body := fmt.Sprintf(`locale: en-US
currency_symbol: "$"
default_range: %s
export_cooldown: 1400ms
preferences_path: %s
log:
  level: info
  file: %s
`, defaultRange, env.prefsPath, env.logPath)
	require.NoError(t, os.WriteFile(env.configPath, []byte(body), 0o644))
	return env
}

// execute runs the root command against env with a dark system theme.
func (e testEnv) execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newAppContext()
	app.Detector = environment.StaticDetector{Dark: true, Available: true}
	t.Cleanup(app.Close)

	root := newRootCmd(app)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--config", e.configPath}, args...))

	err := root.Execute()
	return out.String(), err
}
