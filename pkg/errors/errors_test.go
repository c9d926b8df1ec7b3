package errors

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("config.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "config.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: config.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("config.yaml", 0, stdErrors.New("bad"))
	require.Equal(t, "parse error: config.yaml: bad", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("default_range", "must be one of 7d 30d 90d", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "default_range", validationErr.Field)
	require.Equal(t, "validation error: default_range: must be one of 7d 30d 90d", err.Error())
}

func TestPreferenceErrorWrapsCause(t *testing.T) {
	t.Parallel()

	err := NewPreferenceError("save", "/tmp/preferences.yaml", fs.ErrPermission)

	var prefErr *PreferenceError
	require.ErrorAs(t, err, &prefErr)
	require.Equal(t, "save", prefErr.Op)
	require.ErrorIs(t, err, fs.ErrPermission)
	require.Contains(t, err.Error(), "/tmp/preferences.yaml")

	var cfgErr *ConfigError
	require.False(t, stdErrors.As(err, &cfgErr))
}

func TestConfigErrorWrapsCause(t *testing.T) {
	t.Parallel()

	cause := stdErrors.New("yaml: line 3: did not find expected key")
	err := NewConfigError("/etc/pulsemetrics/config.yaml", cause)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "config error: /etc/pulsemetrics/config.yaml: yaml: line 3: did not find expected key", err.Error())
	require.Equal(t, "config error: boom", NewConfigError("", stdErrors.New("boom")).Error())
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var prefErr *PreferenceError
	var cfgErr *ConfigError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Empty(t, prefErr.Error())
	require.Nil(t, prefErr.Unwrap())
	require.Empty(t, cfgErr.Error())
	require.Nil(t, cfgErr.Unwrap())
}
