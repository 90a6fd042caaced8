package domain

import "strings"

// Token is a command line split into its leading verb and everything after it.
// The remainder keeps its original spelling, quotes included.
type Token struct {
	Verb      string
	Remainder string
}

// SplitVerb splits one command into verb + remainder. The scan honors single
// and double quotes so a quoted region never terminates the verb, and a
// closing quote inside the remainder never disturbs it. Surrounding
// whitespace is trimmed; interior remainder spacing is preserved verbatim.
func SplitVerb(command string) Token {
	trimmed := strings.TrimSpace(command)
	if trimmed == "" {
		return Token{}
	}

	var quote rune
	end := len(trimmed)
scan:
	for i, r := range trimmed {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == ' ' || r == '\t':
			end = i
			break scan
		}
	}

	return Token{
		Verb:      trimmed[:end],
		Remainder: strings.TrimLeft(trimmed[end:], " \t"),
	}
}

// Rejoin reassembles the token into a single command line.
func (t Token) Rejoin() string {
	if t.Remainder == "" {
		return t.Verb
	}
	return t.Verb + " " + t.Remainder
}

// Empty reports whether the token carries no verb at all.
func (t Token) Empty() bool {
	return t.Verb == ""
}
