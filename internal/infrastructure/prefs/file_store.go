// Package prefs provides adapters for ports.PreferenceStore.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/pulsemetrics/pkg/errors"
)

// FileName is the default preference file name inside the config directory.
const FileName = "preferences.yaml"

// preferenceFile is the on-disk shape.
type preferenceFile struct {
	Theme string `yaml:"theme"`
}

// FileStore persists the theme preference to a YAML file.
type FileStore struct {
	path string
	mu   sync.RWMutex
}

// NewFileStore creates a FileStore at path, creating its directory.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, apperrors.NewPreferenceError("open", path, errors.New("path is empty"))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, apperrors.NewPreferenceError("open", path, fmt.Errorf("create directory: %w", err))
	}
	return &FileStore{path: path}, nil
}

// Path returns the file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored theme value. A missing file yields "".
func (s *FileStore) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", apperrors.NewPreferenceError("load", s.path, err)
	}

	var file preferenceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return "", apperrors.NewPreferenceError("load", s.path, apperrors.NewParseError(s.path, 0, err))
	}
	return file.Theme, nil
}

// Save writes value atomically.
func (s *FileStore) Save(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(preferenceFile{Theme: value})
	if err != nil {
		return apperrors.NewPreferenceError("save", s.path, fmt.Errorf("marshal: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return apperrors.NewPreferenceError("save", s.path, fmt.Errorf("write temporary file: %w", err))
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return apperrors.NewPreferenceError("save", s.path, fmt.Errorf("rename temporary file: %w", err))
	}
	return nil
}
