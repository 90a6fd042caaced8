package security

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/doeshing/uniterm/internal/domain"
)

func TestGuardrailBlocksCriticalCommands(t *testing.T) {
	guardrail, err := NewGuardrail("")
	if err != nil {
		t.Fatalf("NewGuardrail error: %v", err)
	}

	result, err := guardrail.Evaluate("rm -rf /")
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}

	if result.Action != domain.ActionBlock || result.Level != domain.RiskCritical {
		t.Fatalf("expected critical block, got %+v", result)
	}
}

func TestGuardrailAllowsSafeCommand(t *testing.T) {
	guardrail, err := NewGuardrail("")
	if err != nil {
		t.Fatalf("NewGuardrail error: %v", err)
	}

	result, err := guardrail.Evaluate("dir /a /q /tmp")
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}

	if result.Level != domain.RiskSafe || result.Action != domain.ActionAllow {
		t.Fatalf("expected safe, got %+v", result)
	}
}

func TestGuardrailFlagsWindowsHostCommands(t *testing.T) {
	guardrail, err := NewGuardrail("")
	if err != nil {
		t.Fatalf("NewGuardrail error: %v", err)
	}

	result, err := guardrail.Evaluate("rmdir /s /q C:\\")
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if result.Action != domain.ActionBlock {
		t.Fatalf("expected drive-root delete blocked, got %+v", result)
	}

	result, err = guardrail.Evaluate("rmdir /s /q build")
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if result.Action != domain.ActionWarn || result.Level != domain.RiskMedium {
		t.Fatalf("expected warn for recursive delete, got %+v", result)
	}
}

func TestGuardrailCustomRulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guardrail.yaml")
	rules := `rules:
  danger_patterns:
    - pattern: "shutdown"
      level: high
      message: "Shutting down the machine"
      action: confirm
`
	if err := os.WriteFile(path, []byte(rules), 0o600); err != nil {
		t.Fatalf("write rules: %v", err)
	}

	guardrail, err := NewGuardrail(path)
	if err != nil {
		t.Fatalf("NewGuardrail error: %v", err)
	}

	result, err := guardrail.Evaluate("shutdown /s")
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if result.Action != domain.ActionConfirm || result.Level != domain.RiskHigh {
		t.Fatalf("expected confirm from custom rule, got %+v", result)
	}
	if len(result.Reasons) != 1 || result.Reasons[0] != "Shutting down the machine" {
		t.Fatalf("unexpected reasons %v", result.Reasons)
	}

	// a custom file replaces the defaults entirely
	result, err = guardrail.Evaluate("rm -rf /")
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if result.Action != domain.ActionAllow {
		t.Fatalf("defaults should not apply with custom rules, got %+v", result)
	}
}
