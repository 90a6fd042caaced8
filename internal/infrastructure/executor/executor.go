// Package executor runs translated commands through the host shell.
package executor

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/doeshing/uniterm/internal/domain"
	"github.com/doeshing/uniterm/internal/ports"
)

// HostExecutor spawns the host shell for each translated line. Pipes inside
// the line are handled by the shell itself, so a rejoined pipeline runs as
// one invocation.
type HostExecutor struct {
	shell   string
	flag    string
	timeout time.Duration
}

var _ ports.CommandExecutor = (*HostExecutor)(nil)

// NewHostExecutor builds an executor for the host dialect. SHELL (POSIX) or
// COMSPEC (Windows) override the dialect default; timeoutSeconds <= 0 means
// no deadline.
func NewHostExecutor(host domain.Dialect, timeoutSeconds int) *HostExecutor {
	shell, flag := host.ShellInvocation()
	if host == domain.DialectWindows {
		if comspec := os.Getenv("COMSPEC"); comspec != "" {
			shell = comspec
		}
	} else if env := os.Getenv("SHELL"); env != "" {
		shell = env
	}

	var timeout time.Duration
	if timeoutSeconds > 0 {
		timeout = time.Duration(timeoutSeconds) * time.Second
	}
	return &HostExecutor{shell: shell, flag: flag, timeout: timeout}
}

// Execute implements ports.CommandExecutor. A non-zero exit is a normal
// outcome reported through the result; the error return is reserved for the
// shell not running at all.
func (e *HostExecutor) Execute(ctx context.Context, command string) (domain.ExecutionResult, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	c := exec.CommandContext(ctx, e.shell, e.flag, command)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()
	duration := time.Since(start).Milliseconds()

	result := domain.ExecutionResult{
		Ran:        err == nil,
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: duration,
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		result.Ran = true
		result.ExitCode = exitErr.ExitCode()
		result.Err = err
		return result, nil
	}
	if err != nil {
		result.Err = err
		return result, err
	}
	return result, nil
}
