package dialect

import (
	"strconv"
	"strings"
)

// Token-level flag scanning shared by the rule tables. None of this is a
// real argument parser; combined values ("-n5") and quoted operands are out
// of scope for a best-effort rewrite.

// withRest joins a command head with the remainder when one exists.
func withRest(head, rest string) string {
	if rest == "" {
		return head
	}
	return head + " " + rest
}

// lastField returns the final whitespace-separated token of s, or "".
func lastField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// shortFlags gathers the letters of every "-abc" style token, so "ls -la"
// and "ls -l -a" present the same flag set.
func shortFlags(rest string) string {
	var letters strings.Builder
	for _, field := range strings.Fields(rest) {
		if len(field) > 1 && field[0] == '-' && field[1] != '-' {
			letters.WriteString(field[1:])
		}
	}
	return letters.String()
}

// withoutShortFlags drops every "-abc" style token whose letters all belong
// to set, leaving the operands.
func withoutShortFlags(rest, set string) string {
	fields := strings.Fields(rest)
	kept := fields[:0]
	for _, field := range fields {
		if isShortFlagToken(field, set) {
			continue
		}
		kept = append(kept, field)
	}
	return strings.Join(kept, " ")
}

func isShortFlagToken(token, set string) bool {
	if len(token) < 2 || token[0] != '-' || token[1] == '-' {
		return false
	}
	for _, r := range token[1:] {
		if !strings.ContainsRune(set, r) {
			return false
		}
	}
	return true
}

// takeCountFlag extracts "<flag> N" from rest, returning N and the surviving
// tokens. ok is false when the flag is absent or not followed by a number.
func takeCountFlag(rest, flag string) (n int, remainder string, ok bool) {
	fields := strings.Fields(rest)
	for i, field := range fields {
		if field != flag || i+1 >= len(fields) {
			continue
		}
		value, err := strconv.Atoi(fields[i+1])
		if err != nil {
			continue
		}
		kept := make([]string, 0, len(fields)-2)
		kept = append(kept, fields[:i]...)
		kept = append(kept, fields[i+2:]...)
		return value, strings.Join(kept, " "), true
	}
	return 0, rest, false
}

// hasSlashFlag reports whether rest carries a cmd-style flag token, matched
// case-insensitively the way cmd.exe does.
func hasSlashFlag(rest, flag string) bool {
	for _, field := range strings.Fields(rest) {
		if strings.EqualFold(field, flag) {
			return true
		}
	}
	return false
}

// withoutSlashFlags drops the named cmd-style flag tokens from rest.
func withoutSlashFlags(rest string, drop ...string) string {
	fields := strings.Fields(rest)
	kept := fields[:0]
	for _, field := range fields {
		dropped := false
		for _, flag := range drop {
			if strings.EqualFold(field, flag) {
				dropped = true
				break
			}
		}
		if !dropped {
			kept = append(kept, field)
		}
	}
	return strings.Join(kept, " ")
}

// valueAfterSlashFlag returns the token following a cmd-style flag.
func valueAfterSlashFlag(rest, flag string) (string, bool) {
	fields := strings.Fields(rest)
	for i, field := range fields {
		if strings.EqualFold(field, flag) && i+1 < len(fields) {
			return fields[i+1], true
		}
	}
	return "", false
}
