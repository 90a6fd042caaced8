package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/doeshing/uniterm/internal/app"
	"github.com/doeshing/uniterm/internal/domain"
	"github.com/doeshing/uniterm/internal/pkg/filesystem"
)

// RunTerminal drives the interactive loop: read a line, hand it to the
// terminal service, render the result, until exit/quit or EOF.
func RunTerminal(ctx context.Context, container *app.Container, verbose bool) error {
	svc := container.TerminalService
	svc.Prompter = NewPrompter(nil, nil)

	renderer := NewRenderer(nil)
	renderer.Banner(container.Source, container.Host)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 color.New(color.FgCyan).Sprint(container.Source.Prompt()),
		HistoryFile:            filepath.Join(filesystem.UserHomeDir(), ".uniterm", "repl_history"),
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return fmt.Errorf("initialize readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if note, ok := controlKeyNote(line); ok {
			renderer.Note(note)
			continue
		}

		result, err := handleLine(ctx, svc, line, verbose)
		if err != nil {
			renderer.Error(err)
			continue
		}

		renderer.Result(result)
		if result.Expanded != "" {
			rl.SaveHistory(result.Expanded)
		}
		if result.Quit {
			break
		}
	}

	renderer.Goodbye()
	return nil
}

// handleLine routes one line through the terminal service with SIGINT wired
// to context cancellation, so Ctrl-C stops the running command instead of
// the whole session.
func handleLine(ctx context.Context, svc domain.TerminalService, line string, verbose bool) (domain.LineResult, error) {
	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	return svc.HandleLine(domain.LineRequest{
		Context: runCtx,
		Line:    line,
		Debug:   verbose,
	})
}

// controlKeyNote matches literal "CTRL + C" style lines and returns the
// advisory the terminal prints for them. Spacing and case are ignored.
func controlKeyNote(line string) (string, bool) {
	switch strings.ToUpper(strings.ReplaceAll(line, " ", "")) {
	case "CTRL+C":
		return "To send an interrupt to a running process, press Ctrl-C on your keyboard while it's running.", true
	case "CTRL+D":
		return "Ctrl-D sends EOF in UNIX shells (pressing it here won't exit the terminal session). Use 'exit' to quit.", true
	case "CTRL+Z":
		return "Ctrl-Z suspends a process in UNIX; job control not fully supported across OS translations.", true
	}
	return "", false
}
