package prefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/ports"
	apperrors "github.com/alexisbeaulieu97/pulsemetrics/pkg/errors"
)

var (
	_ ports.PreferenceStore = (*FileStore)(nil)
	_ ports.PreferenceStore = (*MemoryStore)(nil)
)

func TestFileStoreMissingFileLoadsEmpty(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "nested", FileName))
	require.NoError(t, err)

	value, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, value)
	assert.DirExists(t, filepath.Dir(store.Path()))
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	store, err := NewFileStore(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "dark"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "theme: dark\n", string(data))
	assert.NoFileExists(t, path+".tmp")

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	value, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", value)

	require.NoError(t, store.Save(ctx, "system"))
	value, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "system", value)
}

func TestFileStoreKeepsUnknownValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("theme: solarized\n"), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)
	value, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "solarized", value)
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("theme: [unterminated\n"), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.Error(t, err)

	var prefErr *apperrors.PreferenceError
	require.ErrorAs(t, err, &prefErr)
	assert.Equal(t, "load", prefErr.Op)

	var parseErr *apperrors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestFileStoreSaveFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	store, err := NewFileStore(path)
	require.NoError(t, err)

	// a directory where the temp file should go makes the write fail
	require.NoError(t, os.Mkdir(path+".tmp", 0o755))

	err = store.Save(context.Background(), "light")
	var prefErr *apperrors.PreferenceError
	require.ErrorAs(t, err, &prefErr)
	assert.Equal(t, "save", prefErr.Op)
	assert.Equal(t, path, prefErr.Path)
}

func TestFileStoreEmptyPath(t *testing.T) {
	_, err := NewFileStore("")
	require.Error(t, err)
}

func TestFileStoreHonoursCancelledContext(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Save(ctx, "dark"), context.Canceled)
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore("light")
	ctx := context.Background()

	value, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "light", value)

	require.NoError(t, store.Save(ctx, "dark"))
	value, _ = store.Load(ctx)
	assert.Equal(t, "dark", value)
	assert.Equal(t, 1, store.Writes())
}
