package dialect

import (
	"strings"

	"github.com/doeshing/uniterm/internal/domain"
)

// windowsToPosix maps cmd.exe verbs onto POSIX equivalents. cmd is
// case-insensitive, so keys are matched against the lowercased verb; slash
// flags are matched case-insensitively for the same reason.
var windowsToPosix = map[string]rewriteFunc{
	"dir":              rewriteDir,
	"type":             verbFor("cat"),
	"copy":             verbFor("cp"),
	"move":             verbFor("mv"),
	"del":              verbFor("rm"),
	"erase":            verbFor("rm"),
	"rmdir":            verbFor("rm -r"),
	"mkdir":            verbFor("mkdir"),
	"cls":              bare("clear"),
	"whoami":           bare("whoami"),
	"systeminfo":       verbFor("uname -a"),
	"hostname":         bare("hostname"),
	"date":             bare("date"),
	"netstat":          verbFor("netstat -tulnp"),
	"tasklist":         verbFor("ps aux"),
	"taskkill":         rewriteTaskkill,
	"ipconfig":         verbFor("ifconfig"),
	"ping":             verbFor("ping"),
	"curl":             verbFor("curl"),
	"ssh":              verbFor("ssh"),
	"scp":              verbFor("scp"),
	"powershell":       rewritePowershell,
	"wmic":             verbFor("df -h"),
	"tar":              verbFor("tar"),
	"compress-archive": verbFor("tar"),
	"rem":              bare(posixNoOp),
	"history":          bare("history"),
	"start":            verbFor("xdg-open"),
}

func rewriteDir(rest string) string {
	all := hasSlashFlag(rest, "/a")
	owner := hasSlashFlag(rest, "/q")
	operands := withoutSlashFlags(rest, "/a", "/q")
	switch {
	case all && owner:
		return withRest("ls -la", operands)
	case all:
		return withRest("ls -a", operands)
	case owner:
		return withRest("ls -l", operands)
	}
	return withRest("ls", operands)
}

func rewriteTaskkill(rest string) string {
	pid, ok := valueAfterSlashFlag(rest, "/PID")
	if !ok {
		return Note(withRest("cannot map taskkill: check args", rest))
	}
	if hasSlashFlag(rest, "/F") {
		return "kill -9 " + pid
	}
	return "kill " + pid
}

// rewritePowershell unwraps the "-Command" form emitted by the opposite
// table so a recalled translation round-trips to the inner pipeline.
func rewritePowershell(rest string) string {
	inner := strings.TrimSpace(rest)
	if tok := domain.SplitVerb(inner); strings.EqualFold(tok.Verb, "-Command") {
		inner = strings.TrimSpace(tok.Remainder)
	}
	if len(inner) >= 2 && inner[0] == '"' && inner[len(inner)-1] == '"' {
		inner = inner[1 : len(inner)-1]
	}
	if inner == "" {
		return Note("powershell with no command")
	}
	return inner
}
