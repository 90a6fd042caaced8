// Package config validates the uniterm configuration beyond what YAML
// parsing catches.
package config

import (
	"fmt"
	"strings"

	"github.com/doeshing/uniterm/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := cfg.ValidateConsistency(); err != nil {
		return err
	}
	if err := validateTerminal(cfg.Terminal); err != nil {
		return err
	}
	if err := validateAdvisor(cfg.Advisor); err != nil {
		return err
	}
	if err := validateSecurity(cfg.Security); err != nil {
		return err
	}
	if err := validateExecution(cfg.Execution); err != nil {
		return err
	}
	if err := validateLogging(cfg.Logging); err != nil {
		return err
	}
	return nil
}

func validateTerminal(term domain.TerminalSettings) error {
	switch strings.ToLower(term.Color) {
	case "", "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("terminal.color must be auto|always|never, got %s", term.Color)
	}
}

func validateAdvisor(advisor domain.AdvisorSettings) error {
	for _, model := range advisor.Models {
		if model.Name == "" {
			return fmt.Errorf("advisor model entries need a name")
		}
		if model.Kind() != domain.ProviderKindHeuristic && model.Endpoint == "" && model.Provider != "" {
			return fmt.Errorf("advisor model %s declares provider %s but no endpoint", model.Name, model.Provider)
		}
		if model.MaxTokens < 0 {
			return fmt.Errorf("advisor model %s: max_tokens must be >= 0", model.Name)
		}
	}
	return nil
}

func validateSecurity(sec domain.SecuritySettings) error {
	if sec.Enabled && sec.RulesFile == "" {
		return fmt.Errorf("security.rules_file must be set when security is enabled")
	}
	return nil
}

func validateExecution(exec domain.ExecutionSettings) error {
	if exec.TimeoutSeconds < 0 {
		return fmt.Errorf("execution.timeout must be >= 0")
	}
	return nil
}

func validateLogging(logging domain.LoggingSettings) error {
	switch strings.ToLower(logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug|info|warn|error, got %s", logging.Level)
	}
}
