package session

import (
	"strconv"
	"strings"

	"github.com/doeshing/uniterm/internal/ports"
)

// Expand resolves a "!!" or "!n" recall reference against the history.
// Lines that are not recall references come back unchanged. ok is false
// only when a reference points at nothing: "!!" with no history, or "!n"
// outside the retained range.
func Expand(line string, history ports.SessionHistory) (expanded string, ok bool) {
	if !strings.HasPrefix(line, "!") {
		return line, true
	}
	if line == "!!" {
		return history.Last()
	}
	if n, isRef := recallIndex(line[1:]); isRef {
		return history.At(n)
	}
	return line, true
}

// recallIndex parses the numeric part of a "!n" reference. Anything that is
// not all digits is not a reference, so "!abc" stays a literal line.
func recallIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
