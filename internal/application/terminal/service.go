// Package terminal implements the interactive line-handling use case: recall
// expansion, history append, dialect translation, the guardrail gate, and
// host execution.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doeshing/uniterm/internal/domain"
	"github.com/doeshing/uniterm/internal/ports"
	"github.com/doeshing/uniterm/internal/session"
)

// Service orchestrates one submitted line end-to-end. It never prints:
// everything the user should see comes back in the LineResult.
type Service struct {
	Translator ports.LineTranslator
	History    ports.SessionHistory
	Security   ports.SecurityService
	Executor   ports.CommandExecutor
	Prompter   ports.ConfirmationPrompter
	Transcript ports.TranscriptRepository
	Logger     ports.Logger

	SessionID string
	Config    domain.Config
}

var _ domain.TerminalService = (*Service)(nil)

// HandleLine processes one submitted line. The order is fixed: expansion
// happens before the line is recorded, so history holds the expanded form
// and a later !n recalls what actually ran; translation happens after the
// append, so a submitted history line lists itself.
func (s *Service) HandleLine(req domain.LineRequest) (domain.LineResult, error) {
	if s.Translator == nil || s.History == nil || s.Security == nil ||
		s.Executor == nil || s.Logger == nil {
		return domain.LineResult{}, errors.New("terminal.Service dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	result := domain.LineResult{Raw: req.Line}

	line := strings.TrimSpace(req.Line)
	if line == "" {
		return result, nil
	}

	expanded, ok := session.Expand(line, s.History)
	if !ok {
		result.RecallFailed = true
		return result, nil
	}
	result.Expanded = expanded
	result.WasExpanded = expanded != line

	s.History.Append(expanded)

	translation := s.Translator.Translate(ctx, expanded)
	result.Translation = translation
	result.Quit = translation.RequestsQuit()
	result.ShowHelp = translation.RequestsHelp()
	result.ClearScreen = translation.RequestsClear()
	if translation.RequestsHistory() {
		result.HistoryListing = s.History.Entries(s.Config.HistoryListLimit())
	}

	s.Logger.Debug("translated line", map[string]interface{}{
		"source":  string(translation.Source),
		"host":    string(translation.Host),
		"command": translation.Command,
		"notes":   len(translation.Notes),
	})

	if !translation.HasCommand() {
		return result, nil
	}

	risk := domain.RiskAssessment{Level: domain.RiskSafe, Action: domain.ActionAllow}
	if s.Config.IsSecurityEnabled() {
		evaluated, err := s.Security.Evaluate(translation.Command)
		if err != nil {
			return result, fmt.Errorf("security evaluate: %w", err)
		}
		risk = evaluated
	}
	result.RiskAssessment = risk

	if risk.Action == domain.ActionBlock {
		result.Blocked = true
		s.record(result, nil)
		return result, nil
	}

	if !s.Config.IsExecutionEnabled() {
		s.record(result, nil)
		return result, nil
	}

	proceed, err := s.confirmIfNeeded(risk, translation.Command)
	if err != nil {
		return result, fmt.Errorf("confirm execution: %w", err)
	}
	if !proceed {
		result.Declined = true
		s.record(result, nil)
		return result, nil
	}

	execResult, err := s.Executor.Execute(ctx, translation.Command)
	result.ExecutionResult = &execResult
	s.record(result, &execResult)
	if err != nil {
		return result, fmt.Errorf("execute command: %w", err)
	}
	return result, nil
}

// confirmIfNeeded gates execution on the prompter. The guardrail's confirm
// action and the always-confirm setting both land here; the latter upgrades
// the action so the prompter actually asks. Non-interactive runs never
// execute commands that need confirmation.
func (s *Service) confirmIfNeeded(risk domain.RiskAssessment, command string) (bool, error) {
	action := risk.Action
	if action != domain.ActionConfirm {
		if !s.Config.ShouldConfirmBeforeExecution() {
			return true, nil
		}
		action = domain.ActionConfirm
	}
	if s.Prompter == nil || !s.Prompter.Enabled() {
		return false, nil
	}
	return s.Prompter.Confirm(action, risk.Level, command, risk.Reasons)
}

// record persists one translated command to the transcript. Persistence
// failures are logged and never interrupt the session.
func (s *Service) record(result domain.LineResult, exec *domain.ExecutionResult) {
	if s.Transcript == nil {
		return
	}

	record := domain.TranscriptRecord{
		Timestamp:     time.Now(),
		SessionID:     s.SessionID,
		SourceDialect: result.Translation.Source,
		HostDialect:   result.Translation.Host,
		Raw:           result.Raw,
		Command:       result.Translation.Command,
		RiskLevel:     result.RiskAssessment.Level,
	}
	if exec != nil {
		record.Executed = exec.Ran
		record.Success = exec.Ran && exec.Err == nil && exec.ExitCode == 0
		record.ExitCode = exec.ExitCode
		record.ExecutionTimeMS = exec.DurationMS
	}

	if err := s.Transcript.Save(record); err != nil {
		s.Logger.Warn("transcript save failed", map[string]interface{}{"error": err.Error()})
	}
}
