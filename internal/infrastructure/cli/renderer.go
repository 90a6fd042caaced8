package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"

	"github.com/doeshing/uniterm/internal/domain"
)

// clearScreen is the ANSI erase-display + cursor-home sequence. It replaces
// the cls/clear subprocess the terminal would otherwise have to spawn.
const clearScreen = "\033[2J\033[H"

// Renderer prints interactive-loop output in the terminal's own voice.
// Colors route through fatih/color so the global color mode applies.
type Renderer struct {
	out     io.Writer
	blocked *color.Color
	warning *color.Color
	muted   *color.Color
}

// NewRenderer constructs a renderer writing to out (stdout when nil).
func NewRenderer(out io.Writer) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	return &Renderer{
		out:     out,
		blocked: color.New(color.FgRed, color.Bold),
		warning: color.New(color.FgYellow),
		muted:   color.New(color.Faint),
	}
}

// Banner prints the startup header.
func (r *Renderer) Banner(source, host domain.Dialect) {
	fmt.Fprintln(r.out, "Universal Terminal — Full mapping")
	fmt.Fprintln(r.out, "--------------------------------")
	fmt.Fprintf(r.out, "Host detected: %s\n", hostLabel())
	if source != host {
		fmt.Fprintf(r.out, "Translating %s -> %s\n", source, host)
	}
	fmt.Fprintln(r.out, "Type commands in the chosen dialect. Type 'exit' to quit. 'history' shows recent commands.")
}

// Note prints a bracketed advisory line.
func (r *Renderer) Note(text string) {
	fmt.Fprintf(r.out, "[Note] %s\n", text)
}

// Error prints a line-handling failure without ending the session.
func (r *Renderer) Error(err error) {
	r.blocked.Fprintf(r.out, "Error: %v\n", err)
}

// Goodbye prints the session sign-off.
func (r *Renderer) Goodbye() {
	fmt.Fprintln(r.out, "Goodbye.")
}

// Result prints everything one handled line produced, in the order the
// terminal has always shown it: recall outcome, expansion echo, builtin
// output, translation notes, guardrail verdict, command echo, execution
// output.
func (r *Renderer) Result(result domain.LineResult) {
	if result.RecallFailed {
		fmt.Fprintln(r.out, "No such history entry.")
		return
	}
	if result.WasExpanded {
		fmt.Fprintf(r.out, "[Expanded] %s\n", result.Expanded)
	}

	if result.ShowHelp {
		r.Help()
	}
	if result.ClearScreen {
		fmt.Fprint(r.out, clearScreen)
	}
	for _, entry := range result.HistoryListing {
		fmt.Fprintf(r.out, "%d  %s\n", entry.Index, entry.Line)
	}

	for _, note := range result.Translation.Notes {
		fmt.Fprintf(r.out, "[Translated note] %s\n", note)
	}

	if !result.Translation.HasCommand() {
		return
	}

	if result.Blocked {
		r.blocked.Fprintf(r.out, "Blocked: %s\n", result.Translation.Command)
		for _, reason := range result.RiskAssessment.Reasons {
			fmt.Fprintf(r.out, " - %s\n", reason)
		}
		return
	}

	if result.RiskAssessment.Action == domain.ActionWarn {
		r.warning.Fprintf(r.out, "⚠️  %s risk detected\n", strings.ToUpper(string(result.RiskAssessment.Level)))
		for _, reason := range result.RiskAssessment.Reasons {
			fmt.Fprintf(r.out, " - %s\n", reason)
		}
	}

	if result.Declined {
		fmt.Fprintln(r.out, "Cancelled.")
		return
	}

	fmt.Fprintf(r.out, "[Translated ->] %s\n", result.Translation.Command)

	if result.ExecutionResult != nil {
		r.renderExecution(result.ExecutionResult)
	}
}

// Help prints the builtin help block.
func (r *Renderer) Help() {
	fmt.Fprintln(r.out, "Universal Terminal — Help")
	fmt.Fprintln(r.out, "-------------------------")
	fmt.Fprintln(r.out, "Built-in commands:")
	fmt.Fprintln(r.out, "  exit, quit       : Exit the terminal")
	fmt.Fprintln(r.out, "  history          : Show last 100 commands")
	fmt.Fprintln(r.out, "  clear            : Clear the screen")
	fmt.Fprintln(r.out, "  !!               : Repeat last command")
	fmt.Fprintln(r.out, "  !<num>           : Repeat command number <num> from history")
	fmt.Fprintln(r.out, "  help             : Show this help message")
	fmt.Fprintln(r.out, "")
	fmt.Fprintln(r.out, "Command translation:")
	fmt.Fprintln(r.out, "  You can type commands in your chosen dialect (Windows CMD or Linux Bash)")
	fmt.Fprintln(r.out, "  Common commands like ls, dir, cp, move, rm, del, cat, etc., are mapped to the host OS")
	fmt.Fprintln(r.out, "  Piped commands (using |) are supported and translated")
	fmt.Fprintln(r.out, "  A pipe inside quotes still splits the line, so quote-heavy pipelines may translate oddly")
}

func (r *Renderer) renderExecution(exec *domain.ExecutionResult) {
	if exec.Err != nil && !exec.Ran {
		fmt.Fprintln(r.out, "Failed to run command on host shell.")
		return
	}
	if exec.Stdout != "" {
		fmt.Fprint(r.out, ensureTrailingNewline(exec.Stdout))
	}
	if exec.Stderr != "" {
		fmt.Fprint(r.out, ensureTrailingNewline(exec.Stderr))
	}
	if exec.ExitCode != 0 {
		r.muted.Fprintf(r.out, "[exit status %d]\n", exec.ExitCode)
	}
}

func ensureTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

func hostLabel() string {
	if runtime.GOOS == "windows" {
		return "Windows"
	}
	return "Unix-like (Linux/macOS)"
}
