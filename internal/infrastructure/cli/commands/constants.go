package commands

// Error messages
const (
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrTranscriptUnavailable    = "transcript store unavailable"
	ErrSearchTermRequired       = "search term required"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgNoTranscriptRecorded     = "No transcript recorded yet."
)
