package cli

import "testing"

func TestControlKeyNote(t *testing.T) {
	tests := []struct {
		line    string
		matched bool
	}{
		{line: "CTRL + C", matched: true},
		{line: "CTRL+C", matched: true},
		{line: "ctrl+c", matched: true},
		{line: "Ctrl + D", matched: true},
		{line: "ctrl + z", matched: true},
		{line: "ctrl", matched: false},
		{line: "ctrl+x", matched: false},
		{line: "control+c", matched: false},
	}

	for _, tt := range tests {
		note, ok := controlKeyNote(tt.line)
		if ok != tt.matched {
			t.Errorf("controlKeyNote(%q) matched = %v, want %v", tt.line, ok, tt.matched)
		}
		if ok && note == "" {
			t.Errorf("controlKeyNote(%q) returned empty advisory", tt.line)
		}
	}
}
