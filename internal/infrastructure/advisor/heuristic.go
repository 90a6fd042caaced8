package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/doeshing/uniterm/internal/dialect"
	"github.com/doeshing/uniterm/internal/domain"
	"github.com/doeshing/uniterm/internal/ports"
)

type heuristicAdvisor struct{}

// NewHeuristicAdvisor returns the offline advisor used when no model is
// configured or reachable. It only knows two tricks: recognizing verbs typed
// in the host's own dialect, and a short list of well-known near-misses.
func NewHeuristicAdvisor() ports.Advisor {
	return &heuristicAdvisor{}
}

func (a *heuristicAdvisor) Name() string {
	return "heuristic"
}

func (a *heuristicAdvisor) Explain(_ context.Context, req ports.AdvisorRequest) (string, error) {
	verb := strings.ToLower(req.Verb)

	// A verb the reverse direction maps is most likely a host-dialect
	// command typed out of habit.
	if dialect.HasRule(req.Host, req.Host.Other(), verb) {
		return fmt.Sprintf("'%s' already looks like a %s command and may run unchanged", req.Verb, req.Host), nil
	}

	if hint, ok := hostHints(req.Host)[verb]; ok {
		return hint, nil
	}
	return "", nil
}

func hostHints(host domain.Dialect) map[string]string {
	if host == domain.DialectWindows {
		return windowsHints
	}
	return posixHints
}

// windowsHints cover POSIX verbs without a mapping rule, suggesting what a
// Windows user would reach for instead.
var windowsHints = map[string]string{
	"grep":   "findstr searches file contents on Windows",
	"man":    "try 'help <command>' or '<command> /?' on Windows",
	"which":  "'where' locates executables on Windows",
	"ln":     "'mklink' creates links on Windows",
	"sed":    "cmd has no stream editor; PowerShell's -replace is the closest fit",
	"awk":    "cmd has no field processor; consider PowerShell or findstr",
	"env":    "'set' lists environment variables on Windows",
	"export": "'set NAME=value' assigns environment variables in cmd",
}

// posixHints cover Windows verbs without a mapping rule.
var posixHints = map[string]string{
	"findstr": "grep searches file contents on POSIX shells",
	"where":   "'which' locates executables on POSIX shells",
	"help":    "try 'man <command>' on POSIX shells",
	"ver":     "'uname -a' prints system and kernel versions",
	"attrib":  "'chmod' changes file modes on POSIX shells",
	"mklink":  "'ln -s' creates symbolic links on POSIX shells",
	"set":     "'env' lists environment variables; 'export NAME=value' assigns them",
}
