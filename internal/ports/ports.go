// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). Following the Ports and Adapters (Hexagonal) pattern,
// these interfaces allow the application to remain independent of specific
// implementations like databases, HTTP clients, or CLI frameworks.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., Advisor, ConfigProvider)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/uniterm/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.uniterm/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// LineTranslator turns one submitted line into per-stage translation results.
// Implementations split on pipes, intercept builtins, and consult the dialect
// mapping tables.
type LineTranslator interface {
	Translate(ctx context.Context, line string) domain.Translation
}

// AdvisorFactory builds advisor instances based on model definitions.
// It abstracts the creation of different advisor backends (Anthropic, OpenAI,
// Ollama, offline heuristic).
type AdvisorFactory interface {
	ForModel(domain.ModelDefinition) (Advisor, error)
}

// Advisor explains a verb the mapping tables do not cover. The returned text
// is shown as a note; it is never executed.
type Advisor interface {
	Name() string
	Explain(ctx context.Context, req AdvisorRequest) (string, error)
}

// AdvisorRequest carries everything an advisor needs to produce a diagnostic.
type AdvisorRequest struct {
	Verb   string
	Line   string
	Source domain.Dialect
	Host   domain.Dialect
}

// SecurityService evaluates commands against security rules before execution.
// This implements the guardrail system that warns users about potentially
// harmful translated commands.
type SecurityService interface {
	Evaluate(command string) (domain.RiskAssessment, error)
}

// CommandExecutor runs translated commands through the host shell.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) (domain.ExecutionResult, error)
}

// Clipboard copies text into the system clipboard so a translated command
// can be pasted into a real shell.
type Clipboard interface {
	Enabled() bool
	Copy(text string) error
}

// ConfirmationPrompter handles interactive user confirmations for risky
// operations. Used by the guardrail system to get user approval before
// executing dangerous commands.
type ConfirmationPrompter interface {
	Confirm(action domain.GuardrailAction, risk domain.RiskLevel, command string, reasons []string) (bool, error)
	Enabled() bool
}

// SessionHistory is the bounded in-session command ring behind the history
// builtin and bang recall.
type SessionHistory interface {
	Append(line string)
	Len() int
	At(index int) (string, bool)
	Last() (string, bool)
	Entries(limit int) []domain.HistoryEntry
}

// TranscriptRepository persists executed-line records across sessions.
type TranscriptRepository interface {
	Save(record domain.TranscriptRecord) error
	Records(limit int, search string) ([]domain.TranscriptRecord, error)
	Clear() error
	ExportJSON(dest string) error
	Path() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
