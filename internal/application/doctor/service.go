// Package doctor checks that a uniterm installation can actually do its job:
// parse its config, reach the host shell, compile guardrail rules, and write
// transcript records.
package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/doeshing/uniterm/internal/domain"
	"github.com/doeshing/uniterm/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider  ports.ConfigProvider
	SecurityService ports.SecurityService
	Transcript      ports.TranscriptRepository
	Host            domain.Dialect
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := cfg.ValidateConsistency(); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("loaded, format %s", formatVersion(cfg))))
	}

	checks = append(checks, s.dialectCheck(cfg))
	checks = append(checks, s.hostShellCheck())
	checks = append(checks, s.guardrailCheck(cfg))
	checks = append(checks, transcriptCheck(s.Transcript))
	checks = append(checks, advisorCheck(cfg))

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) dialectCheck(cfg domain.Config) domain.HealthCheck {
	source, err := cfg.SourceDialect()
	if err != nil {
		return fail("Dialect", err.Error())
	}
	if source == s.Host {
		return ok("Dialect", fmt.Sprintf("%s matches host; commands pass through", source))
	}
	return ok("Dialect", fmt.Sprintf("translating %s -> %s", source, s.Host))
}

func (s *Service) hostShellCheck() domain.HealthCheck {
	binary, _ := s.Host.ShellInvocation()
	path, err := exec.LookPath(binary)
	if err != nil {
		return fail("Host shell", fmt.Sprintf("%s not found in PATH", binary))
	}
	return ok("Host shell", path)
}

func (s *Service) guardrailCheck(cfg domain.Config) domain.HealthCheck {
	if !cfg.IsSecurityEnabled() {
		return warn("Guardrail", "disabled in config")
	}
	if s.SecurityService == nil {
		return warn("Guardrail", "security service not initialized")
	}
	if _, err := s.SecurityService.Evaluate("ls"); err != nil {
		return fail("Guardrail", err.Error())
	}
	return ok("Guardrail", "rules loaded")
}

func transcriptCheck(store ports.TranscriptRepository) domain.HealthCheck {
	if store == nil {
		return warn("Transcript", "store not initialized")
	}
	dir := filepath.Dir(store.Path())
	if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
		return fail("Transcript", fmt.Sprintf("cannot create %s: %v", dir, err))
	}
	probe := filepath.Join(dir, ".uniterm-doctor")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return fail("Transcript", fmt.Sprintf("cannot write in %s: %v", dir, err))
	}
	os.Remove(probe)
	return ok("Transcript", fmt.Sprintf("%s writable", dir))
}

func advisorCheck(cfg domain.Config) domain.HealthCheck {
	model, selected := cfg.AdvisorModel()
	if !selected {
		return ok("Advisor", "offline heuristic")
	}
	switch model.Kind() {
	case domain.ProviderKindAnthropic:
		if envMissing(model.AuthEnvVar, "ANTHROPIC_API_KEY") {
			return warn("Advisor", "ANTHROPIC_API_KEY missing")
		}
	case domain.ProviderKindOpenAI:
		if envMissing(model.AuthEnvVar, "OPENAI_API_KEY") {
			return warn("Advisor", "OPENAI_API_KEY missing")
		}
	}
	return ok("Advisor", fmt.Sprintf("model %s (%s)", model.Name, model.Kind()))
}

func formatVersion(cfg domain.Config) string {
	if cfg.ConfigFormatVersion == "" {
		return "1"
	}
	return cfg.ConfigFormatVersion
}

func envMissing(primary, fallback string) bool {
	if primary != "" && os.Getenv(primary) != "" {
		return false
	}
	if fallback != "" && os.Getenv(fallback) != "" {
		return false
	}
	return true
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
