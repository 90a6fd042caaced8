package terminal

import (
	"context"
	"testing"

	"github.com/doeshing/uniterm/internal/domain"
	"github.com/doeshing/uniterm/internal/ports"
	"github.com/doeshing/uniterm/internal/session"
)

func executableConfig() domain.Config {
	return domain.Config{
		Security:  domain.SecuritySettings{Enabled: true},
		Execution: domain.ExecutionSettings{Enabled: true},
	}
}

func TestHandleLineExecutesTranslatedCommand(t *testing.T) {
	executor := &stubExecutor{result: domain.ExecutionResult{Ran: true}}
	transcript := &stubTranscript{}
	svc := &Service{
		Translator: stubTranslator{translation: domain.Translation{
			Source:  domain.DialectPosix,
			Host:    domain.DialectWindows,
			Command: "dir /a /q /tmp",
		}},
		History:    session.NewStore(10),
		Security:   stubSecurity{risk: domain.RiskAssessment{Action: domain.ActionAllow}},
		Executor:   executor,
		Transcript: transcript,
		Logger:     nopLogger{},
		SessionID:  "s-1",
		Config:     executableConfig(),
	}

	result, err := svc.HandleLine(domain.LineRequest{Context: context.Background(), Line: "ls -la /tmp"})
	if err != nil {
		t.Fatalf("HandleLine() error = %v", err)
	}
	if !executor.called {
		t.Fatal("executor was not called")
	}
	if executor.gotCommand != "dir /a /q /tmp" {
		t.Fatalf("executed %q", executor.gotCommand)
	}
	if result.ExecutionResult == nil || !result.ExecutionResult.Ran {
		t.Fatalf("expected execution result, got %+v", result.ExecutionResult)
	}
	if len(transcript.saved) != 1 {
		t.Fatalf("expected 1 transcript record, got %d", len(transcript.saved))
	}
	record := transcript.saved[0]
	if !record.Executed || !record.Success || record.Command != "dir /a /q /tmp" {
		t.Fatalf("unexpected transcript record %+v", record)
	}
}

func TestHandleLineEmptyLineIsNoop(t *testing.T) {
	translator := &countingTranslator{}
	svc := newService(translator, &stubExecutor{})

	result, err := svc.HandleLine(domain.LineRequest{Line: "   "})
	if err != nil {
		t.Fatalf("HandleLine() error = %v", err)
	}
	if translator.calls != 0 {
		t.Fatal("translator should not run for blank input")
	}
	if result.Quit || result.Translation.HasCommand() {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestHandleLineRecallFailureIsNotStored(t *testing.T) {
	translator := &countingTranslator{}
	svc := newService(translator, &stubExecutor{})

	result, err := svc.HandleLine(domain.LineRequest{Line: "!5"})
	if err != nil {
		t.Fatalf("HandleLine() error = %v", err)
	}
	if !result.RecallFailed {
		t.Fatal("expected recall failure")
	}
	if translator.calls != 0 {
		t.Fatal("failed recall must not reach translation")
	}
	if svc.History.Len() != 0 {
		t.Fatal("failed recall must not be stored")
	}
}

func TestHandleLineExpandsBeforeAppend(t *testing.T) {
	executor := &stubExecutor{}
	svc := newService(stubTranslator{translation: domain.Translation{Command: "ls -la"}}, executor)
	svc.History.Append("ls -la")

	result, err := svc.HandleLine(domain.LineRequest{Line: "!!"})
	if err != nil {
		t.Fatalf("HandleLine() error = %v", err)
	}
	if !result.WasExpanded || result.Expanded != "ls -la" {
		t.Fatalf("expansion missing: %+v", result)
	}
	if svc.History.Len() != 2 {
		t.Fatalf("expected expanded line appended, Len = %d", svc.History.Len())
	}
	if last, _ := svc.History.Last(); last != "ls -la" {
		t.Fatalf("history stores %q, want expanded form", last)
	}
}

func TestHandleLineBlocksOnGuardrail(t *testing.T) {
	executor := &stubExecutor{}
	transcript := &stubTranscript{}
	svc := newService(stubTranslator{translation: domain.Translation{Command: "rm -rf /"}}, executor)
	svc.Security = stubSecurity{risk: domain.RiskAssessment{
		Level:  domain.RiskCritical,
		Action: domain.ActionBlock,
	}}
	svc.Transcript = transcript

	result, err := svc.HandleLine(domain.LineRequest{Line: "rm -rf /"})
	if err != nil {
		t.Fatalf("HandleLine() error = %v", err)
	}
	if !result.Blocked {
		t.Fatal("expected blocked result")
	}
	if executor.called {
		t.Fatal("blocked command must not execute")
	}
	if len(transcript.saved) != 1 || transcript.saved[0].Executed {
		t.Fatalf("expected non-executed transcript record, got %+v", transcript.saved)
	}
}

func TestHandleLineDeclinedConfirmation(t *testing.T) {
	executor := &stubExecutor{}
	prompter := &stubPrompter{enabled: true, approve: false}
	svc := newService(stubTranslator{translation: domain.Translation{Command: "rmdir /s /q build"}}, executor)
	svc.Security = stubSecurity{risk: domain.RiskAssessment{
		Level:  domain.RiskHigh,
		Action: domain.ActionConfirm,
	}}
	svc.Prompter = prompter

	result, err := svc.HandleLine(domain.LineRequest{Line: "rm -rf build"})
	if err != nil {
		t.Fatalf("HandleLine() error = %v", err)
	}
	if !prompter.called {
		t.Fatal("prompter was not consulted")
	}
	if !result.Declined {
		t.Fatal("expected declined result")
	}
	if executor.called {
		t.Fatal("declined command must not execute")
	}
}

func TestHandleLineConfirmationNeedsPrompter(t *testing.T) {
	executor := &stubExecutor{}
	svc := newService(stubTranslator{translation: domain.Translation{Command: "rmdir /s /q build"}}, executor)
	svc.Security = stubSecurity{risk: domain.RiskAssessment{Action: domain.ActionConfirm}}
	svc.Prompter = &stubPrompter{enabled: false}

	result, err := svc.HandleLine(domain.LineRequest{Line: "rm -rf build"})
	if err != nil {
		t.Fatalf("HandleLine() error = %v", err)
	}
	if !result.Declined || executor.called {
		t.Fatal("confirmation without a prompter must decline")
	}
}

func TestHandleLineSecurityDisabledSkipsGuardrail(t *testing.T) {
	executor := &stubExecutor{result: domain.ExecutionResult{Ran: true}}
	svc := newService(stubTranslator{translation: domain.Translation{Command: "rm -rf /"}}, executor)
	svc.Security = stubSecurity{risk: domain.RiskAssessment{
		Level:  domain.RiskCritical,
		Action: domain.ActionBlock,
	}}
	svc.Config.Security.Enabled = false

	result, err := svc.HandleLine(domain.LineRequest{Line: "rm -rf /"})
	if err != nil {
		t.Fatalf("HandleLine() error = %v", err)
	}
	if result.Blocked {
		t.Fatal("disabled guardrail must not block")
	}
	if !executor.called {
		t.Fatal("command should execute when the guardrail is off")
	}
}

func TestHandleLineAlwaysConfirmSetting(t *testing.T) {
	executor := &stubExecutor{result: domain.ExecutionResult{Ran: true}}
	prompter := &stubPrompter{enabled: true, approve: true}
	svc := newService(stubTranslator{translation: domain.Translation{Command: "dir"}}, executor)
	svc.Config.Execution.ConfirmBeforeExecute = true
	svc.Prompter = prompter

	result, err := svc.HandleLine(domain.LineRequest{Line: "ls"})
	if err != nil {
		t.Fatalf("HandleLine() error = %v", err)
	}
	if !prompter.called {
		t.Fatal("always-confirm must consult the prompter")
	}
	if prompter.gotAction != domain.ActionConfirm {
		t.Fatalf("prompter saw action %q, want confirm", prompter.gotAction)
	}
	if result.Declined || !executor.called {
		t.Fatal("approved command must execute")
	}
}

func TestHandleLineExecutionDisabled(t *testing.T) {
	executor := &stubExecutor{}
	svc := newService(stubTranslator{translation: domain.Translation{Command: "dir"}}, executor)
	svc.Config = domain.Config{}

	result, err := svc.HandleLine(domain.LineRequest{Line: "ls"})
	if err != nil {
		t.Fatalf("HandleLine() error = %v", err)
	}
	if executor.called {
		t.Fatal("execution disabled must not call executor")
	}
	if result.Blocked || result.Declined {
		t.Fatalf("disabled execution is not a block/decline: %+v", result)
	}
}

func TestHandleLineHistoryListingIncludesCurrentLine(t *testing.T) {
	svc := newService(stubTranslator{translation: domain.Translation{
		Builtins: []domain.Builtin{domain.BuiltinHistory},
	}}, &stubExecutor{})
	svc.History.Append("pwd")

	result, err := svc.HandleLine(domain.LineRequest{Line: "history"})
	if err != nil {
		t.Fatalf("HandleLine() error = %v", err)
	}
	if len(result.HistoryListing) != 2 {
		t.Fatalf("expected 2 entries, got %+v", result.HistoryListing)
	}
	if result.HistoryListing[1].Line != "history" {
		t.Fatalf("listing should include the history line itself, got %+v", result.HistoryListing)
	}
}

func TestHandleLineQuit(t *testing.T) {
	svc := newService(stubTranslator{translation: domain.Translation{
		Builtins: []domain.Builtin{domain.BuiltinExit},
	}}, &stubExecutor{})

	result, err := svc.HandleLine(domain.LineRequest{Line: "exit"})
	if err != nil {
		t.Fatalf("HandleLine() error = %v", err)
	}
	if !result.Quit {
		t.Fatal("expected quit request")
	}
}

func TestHandleLineMissingDependencies(t *testing.T) {
	svc := &Service{}
	if _, err := svc.HandleLine(domain.LineRequest{Line: "ls"}); err == nil {
		t.Fatal("expected dependency error")
	}
}

func newService(translator ports.LineTranslator, executor *stubExecutor) *Service {
	return &Service{
		Translator: translator,
		History:    session.NewStore(10),
		Security:   stubSecurity{risk: domain.RiskAssessment{Action: domain.ActionAllow}},
		Executor:   executor,
		Logger:     nopLogger{},
		SessionID:  "s-test",
		Config:     executableConfig(),
	}
}

type stubTranslator struct {
	translation domain.Translation
}

func (s stubTranslator) Translate(context.Context, string) domain.Translation {
	return s.translation
}

type countingTranslator struct {
	calls int
}

func (c *countingTranslator) Translate(context.Context, string) domain.Translation {
	c.calls++
	return domain.Translation{}
}

type stubSecurity struct {
	risk domain.RiskAssessment
	err  error
}

func (s stubSecurity) Evaluate(string) (domain.RiskAssessment, error) {
	return s.risk, s.err
}

type stubExecutor struct {
	result     domain.ExecutionResult
	err        error
	called     bool
	gotCommand string
}

func (s *stubExecutor) Execute(_ context.Context, command string) (domain.ExecutionResult, error) {
	s.called = true
	s.gotCommand = command
	return s.result, s.err
}

type stubPrompter struct {
	enabled   bool
	approve   bool
	called    bool
	gotAction domain.GuardrailAction
}

func (s *stubPrompter) Confirm(action domain.GuardrailAction, _ domain.RiskLevel, _ string, _ []string) (bool, error) {
	s.called = true
	s.gotAction = action
	return s.approve, nil
}

func (s *stubPrompter) Enabled() bool { return s.enabled }

type stubTranscript struct {
	saved []domain.TranscriptRecord
	err   error
}

func (s *stubTranscript) Save(record domain.TranscriptRecord) error {
	s.saved = append(s.saved, record)
	return s.err
}

func (s *stubTranscript) Records(int, string) ([]domain.TranscriptRecord, error) { return nil, nil }
func (s *stubTranscript) Clear() error                                           { return nil }
func (s *stubTranscript) ExportJSON(string) error                                { return nil }
func (s *stubTranscript) Path() string                                           { return "" }

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}
