package dialect

import "strings"

// Verbs with no host equivalent are rendered in a comment/no-op form rather
// than being dropped: "rem ..." in the Windows dialect, "true" in POSIX.
// The pipeline routes anything in these forms to display instead of the
// host shell.
const (
	windowsNotePrefix = "rem "
	posixNoOp         = "true"
)

// Note renders an explanatory message in the comment form shared by both
// rule tables.
func Note(msg string) string {
	return windowsNotePrefix + msg
}

// IsNote reports whether a translated command is display-only.
func IsNote(command string) bool {
	if strings.HasPrefix(command, windowsNotePrefix) {
		return true
	}
	return command == posixNoOp || strings.HasPrefix(command, posixNoOp+" ")
}
