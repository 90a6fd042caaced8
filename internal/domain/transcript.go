package domain

import "time"

// TranscriptRecord captures one submitted line after it made it through the
// pipeline: what the user typed, what it became, and how execution went.
type TranscriptRecord struct {
	Timestamp       time.Time `json:"timestamp"`
	SessionID       string    `json:"session_id"`
	SourceDialect   Dialect   `json:"source_dialect"`
	HostDialect     Dialect   `json:"host_dialect"`
	Raw             string    `json:"raw"`
	Command         string    `json:"command"`
	Executed        bool      `json:"executed"`
	Success         bool      `json:"success"`
	ExitCode        int       `json:"exit_code"`
	RiskLevel       RiskLevel `json:"risk_level"`
	ExecutionTimeMS int64     `json:"execution_time_ms"`
}
