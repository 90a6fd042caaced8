package domain

import "context"

// LineRequest captures one submitted terminal line together with its context.
type LineRequest struct {
	Context context.Context
	Line    string
	Debug   bool
}

// LineResult is the canonical outcome propagated back to the terminal for
// rendering. The service never prints; everything the user should see is here.
type LineResult struct {
	Raw             string
	Expanded        string
	WasExpanded     bool
	RecallFailed    bool
	Translation     Translation
	RiskAssessment  RiskAssessment
	Blocked         bool
	Declined        bool
	HistoryListing  []HistoryEntry
	ShowHelp        bool
	ClearScreen     bool
	ExecutionResult *ExecutionResult
	Quit            bool
}

// HistoryEntry pairs a recall index with its stored line. Index is the same
// 1-based number that !n accepts.
type HistoryEntry struct {
	Index int
	Line  string
}

// ExecutionResult wraps details from the command executor.
type ExecutionResult struct {
	Ran        bool
	Stdout     string
	Stderr     string
	ExitCode   int
	DurationMS int64
	Err        error
}

// TerminalService exposes the use-case boundary for handling one line.
type TerminalService interface {
	HandleLine(LineRequest) (LineResult, error)
}
