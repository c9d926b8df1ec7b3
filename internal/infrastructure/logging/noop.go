package logging

import (
	"context"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/ports"
)

// discard drops every entry. Used by tests and when the dashboard has no log
// file configured.
type discard struct{}

func (discard) Debug(context.Context, string, ...interface{}) {}
func (discard) Info(context.Context, string, ...interface{}) {}
func (discard) Warn(context.Context, string, ...interface{}) {}
func (discard) Error(context.Context, string, ...interface{}) {}
func (d discard) With(...interface{}) ports.Logger { return d }

// NewNoOpLogger returns a ports.Logger that discards all log entries.
func NewNoOpLogger() ports.Logger {
	return discard{}
}
