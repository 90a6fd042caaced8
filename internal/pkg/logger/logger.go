// Package logger adapts charmbracelet/log to the ports.Logger interface used
// throughout the application.
package logger

import (
	"io"
	"os"
	"sort"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/doeshing/uniterm/internal/ports"
)

// CharmLogger writes structured log lines to stderr. Field maps are flattened
// into sorted keyvals so lines stay stable across runs.
type CharmLogger struct {
	inner *charmlog.Logger
}

var _ ports.Logger = (*CharmLogger)(nil)

// New creates a logger at the named level. Unknown or empty names fall back
// to warn; UNITERM_DEBUG=1 forces debug regardless of configuration.
func New(level string) *CharmLogger {
	inner := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "uniterm",
	})
	inner.SetLevel(parseLevel(level))
	if debug := os.Getenv("UNITERM_DEBUG"); debug == "1" || strings.EqualFold(debug, "true") {
		inner.SetLevel(charmlog.DebugLevel)
	}
	return &CharmLogger{inner: inner}
}

// Nop returns a logger that discards everything. Used in tests and anywhere
// a ports.Logger is required but output is unwanted.
func Nop() *CharmLogger {
	inner := charmlog.New(io.Discard)
	return &CharmLogger{inner: inner}
}

func parseLevel(level string) charmlog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return charmlog.DebugLevel
	case "info":
		return charmlog.InfoLevel
	case "warn", "warning":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.WarnLevel
	}
}

func (l *CharmLogger) Debug(msg string, fields map[string]interface{}) {
	l.inner.Debug(msg, keyvals(fields)...)
}

func (l *CharmLogger) Info(msg string, fields map[string]interface{}) {
	l.inner.Info(msg, keyvals(fields)...)
}

func (l *CharmLogger) Warn(msg string, fields map[string]interface{}) {
	l.inner.Warn(msg, keyvals(fields)...)
}

func (l *CharmLogger) Error(msg string, err error, fields map[string]interface{}) {
	kv := keyvals(fields)
	if err != nil {
		kv = append(kv, "error", err)
	}
	l.inner.Error(msg, kv...)
}

func keyvals(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	kv := make([]interface{}, 0, len(keys)*2)
	for _, key := range keys {
		kv = append(kv, key, fields[key])
	}
	return kv
}
