package domain_test

import (
	"testing"

	"github.com/doeshing/uniterm/internal/domain"
)

// TestSplitVerb tests verb/remainder tokenization
func TestSplitVerb(t *testing.T) {
	tests := []struct {
		name          string
		line          string
		wantVerb      string
		wantRemainder string
	}{
		{
			name:     "bare verb",
			line:     "ls",
			wantVerb: "ls",
		},
		{
			name:          "verb with arguments",
			line:          "ls -la /tmp",
			wantVerb:      "ls",
			wantRemainder: "-la /tmp",
		},
		{
			name:     "surrounding whitespace trimmed",
			line:     "   pwd   ",
			wantVerb: "pwd",
		},
		{
			name:          "interior remainder spacing preserved",
			line:          "echo a   b",
			wantVerb:      "echo",
			wantRemainder: "a   b",
		},
		{
			name:          "double quotes keep remainder intact",
			line:          `grep "a b" file.txt`,
			wantVerb:      "grep",
			wantRemainder: `"a b" file.txt`,
		},
		{
			name:     "quoted verb stays one token",
			line:     `"my prog" --flag`,
			wantVerb: `"my prog"`,
			wantRemainder: "--flag",
		},
		{
			name:          "single quotes honored",
			line:          `touch 'a file'`,
			wantVerb:      "touch",
			wantRemainder: `'a file'`,
		},
		{
			name:          "tab separator",
			line:          "cat\tfile",
			wantVerb:      "cat",
			wantRemainder: "file",
		},
		{
			name: "empty line",
			line: "",
		},
		{
			name: "whitespace only",
			line: "   \t  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := domain.SplitVerb(tt.line)

			if tok.Verb != tt.wantVerb {
				t.Errorf("Verb = %q, want %q", tok.Verb, tt.wantVerb)
			}
			if tok.Remainder != tt.wantRemainder {
				t.Errorf("Remainder = %q, want %q", tok.Remainder, tt.wantRemainder)
			}
		})
	}
}

// TestToken_Rejoin tests that rejoin restores verb and remainder
func TestToken_Rejoin(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "verb only", line: "pwd", want: "pwd"},
		{name: "verb and remainder", line: "ls -l", want: "ls -l"},
		{name: "quoted remainder", line: `grep "a b" f`, want: `grep "a b" f`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.SplitVerb(tt.line).Rejoin(); got != tt.want {
				t.Errorf("Rejoin() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestParseBuiltin tests builtin verb matching
func TestParseBuiltin(t *testing.T) {
	tests := []struct {
		verb string
		want domain.Builtin
		ok   bool
	}{
		{verb: "help", want: domain.BuiltinHelp, ok: true},
		{verb: "EXIT", want: domain.BuiltinExit, ok: true},
		{verb: "Quit", want: domain.BuiltinQuit, ok: true},
		{verb: "history", want: domain.BuiltinHistory, ok: true},
		{verb: "clear", want: domain.BuiltinClear, ok: true},
		{verb: "ls", ok: false},
		{verb: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.verb, func(t *testing.T) {
			got, ok := domain.ParseBuiltin(tt.verb)
			if ok != tt.ok {
				t.Fatalf("ParseBuiltin(%q) ok = %v, want %v", tt.verb, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseBuiltin(%q) = %s, want %s", tt.verb, got, tt.want)
			}
		})
	}
}
