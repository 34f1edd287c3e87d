// Package logging provides the logger fallbacks used when no provider is
// configured.
package logging

import (
	"context"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// NoOp returns a logger that drops every entry. It satisfies the Logger
// contract so components can operate without nil checks when logging is
// not configured.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
