package domain

import (
	"fmt"
	"strings"
)

// Builtin identifies a terminal-native command that is intercepted before
// dialect translation ever sees it.
type Builtin string

const (
	BuiltinHelp    Builtin = "help"
	BuiltinExit    Builtin = "exit"
	BuiltinQuit    Builtin = "quit"
	BuiltinHistory Builtin = "history"
	BuiltinClear   Builtin = "clear"
)

// ParseBuiltin matches a pipeline-stage verb against the builtin set.
// Matching is case-insensitive on the verb alone; arguments are ignored.
func ParseBuiltin(verb string) (Builtin, bool) {
	switch strings.ToLower(verb) {
	case "help":
		return BuiltinHelp, true
	case "exit":
		return BuiltinExit, true
	case "quit":
		return BuiltinQuit, true
	case "history":
		return BuiltinHistory, true
	case "clear":
		return BuiltinClear, true
	default:
		return "", false
	}
}

// StageKind classifies the outcome of translating one pipeline stage.
type StageKind string

const (
	// StageExecutable means the stage translated to host command text.
	StageExecutable StageKind = "executable"
	// StageNote means the stage translated to an explanatory no-op that is
	// displayed but never executed.
	StageNote StageKind = "note"
	// StageBuiltin means the stage was intercepted as a terminal builtin.
	StageBuiltin StageKind = "builtin"
)

// StageResult is the translation outcome for a single pipeline stage.
type StageResult struct {
	Input   string
	Kind    StageKind
	Output  string
	Builtin Builtin
}

// Translation aggregates per-stage outcomes for one submitted line.
// Executable stages are rejoined into Command; note stages are collected for
// display; builtin stages surface as events the terminal interprets.
type Translation struct {
	Source   Dialect
	Host     Dialect
	Stages   []StageResult
	Command  string
	Notes    []string
	Builtins []Builtin
}

// HasCommand reports whether any executable text survived translation.
func (t Translation) HasCommand() bool {
	return t.Command != ""
}

// RequestsQuit reports whether an exit/quit builtin appeared in the line.
func (t Translation) RequestsQuit() bool {
	return t.hasBuiltin(BuiltinExit) || t.hasBuiltin(BuiltinQuit)
}

// RequestsHelp reports whether the help builtin appeared in the line.
func (t Translation) RequestsHelp() bool {
	return t.hasBuiltin(BuiltinHelp)
}

// RequestsHistory reports whether the history builtin appeared in the line.
func (t Translation) RequestsHistory() bool {
	return t.hasBuiltin(BuiltinHistory)
}

// RequestsClear reports whether the clear builtin appeared in the line.
func (t Translation) RequestsClear() bool {
	return t.hasBuiltin(BuiltinClear)
}

func (t Translation) hasBuiltin(b Builtin) bool {
	for _, candidate := range t.Builtins {
		if candidate == b {
			return true
		}
	}
	return false
}

// FallbackPolicy decides what the mapper emits for a verb it has no rule for.
type FallbackPolicy string

const (
	// FallbackPassthrough forwards the stage to the host shell unchanged.
	FallbackPassthrough FallbackPolicy = "passthrough"
	// FallbackDiagnostic replaces the stage with an advisory note
	// explaining that the verb has no known equivalent.
	FallbackDiagnostic FallbackPolicy = "diagnostic"
)

// ParseFallbackPolicy normalizes a configured fallback policy name.
func ParseFallbackPolicy(value string) (FallbackPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "passthrough":
		return FallbackPassthrough, nil
	case "diagnostic":
		return FallbackDiagnostic, nil
	default:
		return "", fmt.Errorf("unknown fallback policy %q (expected passthrough or diagnostic)", value)
	}
}
