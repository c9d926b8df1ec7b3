package environment

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/ports"
)

var (
	_ ports.EnvironmentDetector = (*TerminalDetector)(nil)
	_ ports.EnvironmentDetector = StaticDetector{}
)

func TestTerminalDetectorNonTTYIsUnavailable(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	detector := NewTerminalDetector(f)
	_, ok := detector.SystemTheme(context.Background())
	assert.False(t, ok)
}

func TestTerminalDetectorReportsBackground(t *testing.T) {
	detector := NewTerminalDetector(os.Stdout)
	detector.isTTY = func(int) bool { return true }
	detector.darkBack = func() bool { return true }

	dark, ok := detector.SystemTheme(context.Background())
	assert.True(t, ok)
	assert.True(t, dark)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok = detector.SystemTheme(ctx)
	assert.False(t, ok)
}

func TestStaticDetector(t *testing.T) {
	dark, ok := StaticDetector{Dark: true, Available: true}.SystemTheme(context.Background())
	assert.True(t, dark)
	assert.True(t, ok)

	_, ok = StaticDetector{}.SystemTheme(context.Background())
	assert.False(t, ok)
}
