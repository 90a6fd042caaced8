package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Timeout and duration constants
const (
	// DefaultTimeoutSeconds is the default timeout for command execution
	DefaultTimeoutSeconds = 30
	// DefaultAdvisorTimeout bounds one diagnostic advisor round trip
	DefaultAdvisorTimeout = 15 * time.Second
	// DefaultHTTPClientTimeout is the timeout for HTTP client requests
	DefaultHTTPClientTimeout = 60 * time.Second
)

// Session history constants
const (
	// DefaultHistoryCapacity bounds the in-session history ring
	DefaultHistoryCapacity = 1000
	// DefaultHistoryListLimit is how many entries the history builtin shows
	DefaultHistoryListLimit = 100
)

// Transcript constants
const (
	// DefaultTranscriptLimit is the default number of transcript records to display
	DefaultTranscriptLimit = 20
	// DefaultTranscriptSearchLimit is the default number of search results to return
	DefaultTranscriptSearchLimit = 50
	// MaxTranscriptAnalysisRecords is the maximum number of records to analyze
	MaxTranscriptAnalysisRecords = 1000
)

// Advisor constants
const (
	// DefaultMaxTokens is the default maximum number of tokens for one diagnostic
	DefaultMaxTokens = 256
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
