package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/doeshing/uniterm/internal/domain"
	"github.com/doeshing/uniterm/internal/ports"
)

// Prompter implements ConfirmationPrompter using stdin/stdout.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter constructs a prompter referencing stdio.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Enabled indicates the prompter is interactive.
func (p *Prompter) Enabled() bool {
	return true
}

// Confirm asks the user for confirmation based on guardrail action. High and
// critical risks demand a typed 'yes'; lower confirmations accept y/yes.
// Safe-level confirmations (the always-confirm setting) skip the risk banner
// and read as a plain question.
func (p *Prompter) Confirm(action domain.GuardrailAction, level domain.RiskLevel, command string, reasons []string) (bool, error) {
	if level != domain.RiskSafe || len(reasons) > 0 {
		fmt.Fprintf(p.out, "\n⚠️  %s risk detected (%s)\n", strings.ToUpper(string(level)), action)
		for _, reason := range reasons {
			fmt.Fprintf(p.out, " - %s\n", reason)
		}
	}
	fmt.Fprintf(p.out, "Command:\n  %s\n", command)

	if action != domain.ActionConfirm {
		return false, nil
	}
	if requiresExplicitConfirmation(level) {
		return p.askExplicit()
	}
	return p.ask("[y/N]: ")
}

func (p *Prompter) ask(prompt string) (bool, error) {
	fmt.Fprint(p.out, "Continue? ", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return false, err
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes", nil
}

func (p *Prompter) askExplicit() (bool, error) {
	fmt.Fprint(p.out, "Type 'yes' to confirm (or anything else to cancel): ")
	line, err := p.in.ReadString('\n')
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(line) == "yes", nil
}

func requiresExplicitConfirmation(level domain.RiskLevel) bool {
	return level == domain.RiskHigh || level == domain.RiskCritical
}

var _ ports.ConfirmationPrompter = (*Prompter)(nil)
