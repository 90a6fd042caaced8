// Package domain defines core business entities and value objects for uniterm.
//
// This file contains shell dialect definitions used throughout the application.
// The domain layer is independent of infrastructure concerns and represents pure
// business logic and data structures.
package domain

import (
	"fmt"
	"runtime"
	"strings"
)

// Dialect identifies a shell command dialect. uniterm translates between the
// two dialects it knows: POSIX sh-style commands and Windows cmd-style commands.
type Dialect string

const (
	DialectPosix   Dialect = "posix"
	DialectWindows Dialect = "windows"
)

// ParseDialect normalizes user-facing dialect names. A few aliases are
// accepted so config files and flags stay forgiving.
func ParseDialect(value string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "posix", "bash", "sh", "linux", "unix":
		return DialectPosix, nil
	case "windows", "cmd", "win", "dos", "batch":
		return DialectWindows, nil
	default:
		return "", fmt.Errorf("unknown dialect %q (expected posix or windows)", value)
	}
}

// HostDialect reports the dialect native to the machine uniterm runs on.
func HostDialect() Dialect {
	if runtime.GOOS == "windows" {
		return DialectWindows
	}
	return DialectPosix
}

// Valid reports whether the dialect is one of the two known values.
func (d Dialect) Valid() bool {
	return d == DialectPosix || d == DialectWindows
}

// Other returns the opposite dialect.
func (d Dialect) Other() Dialect {
	if d == DialectWindows {
		return DialectPosix
	}
	return DialectWindows
}

// Prompt returns the interactive prompt shown for a source dialect.
func (d Dialect) Prompt() string {
	if d == DialectWindows {
		return "cmd> "
	}
	return "bash> "
}

// ShellInvocation returns the host shell binary and the flag that introduces
// a command string ("sh -c" on POSIX hosts, "cmd /C" on Windows hosts).
func (d Dialect) ShellInvocation() (binary string, flag string) {
	if d == DialectWindows {
		return "cmd", "/C"
	}
	return "sh", "-c"
}

func (d Dialect) String() string {
	return string(d)
}
