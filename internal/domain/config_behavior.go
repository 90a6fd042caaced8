package domain

import "fmt"

// Rich Domain Model: 將業務邏輯封裝在 Domain 實體中
// 符合 Clean Code 原則 - 貧血模型 → 富領域模型

// SourceDialect resolves the dialect the user types in. An unset value
// defaults to posix; an invalid value is an error so the session never starts
// with a dialect the mapper does not know.
func (c *Config) SourceDialect() (Dialect, error) {
	if c.Terminal.Dialect == "" {
		return DialectPosix, nil
	}
	return ParseDialect(c.Terminal.Dialect)
}

// FallbackPolicy resolves the unresolved-verb policy for the session.
func (c *Config) FallbackPolicy() (FallbackPolicy, error) {
	return ParseFallbackPolicy(c.Translation.Fallback)
}

// ColorMode returns the configured color mode with default fallback.
func (c *Config) ColorMode() string {
	switch c.Terminal.Color {
	case "always", "never":
		return c.Terminal.Color
	default:
		return "auto"
	}
}

// HistoryCapacity returns the session history ring size.
func (c *Config) HistoryCapacity() int {
	if c.History.Capacity <= 0 {
		return DefaultHistoryCapacity
	}
	return c.History.Capacity
}

// HistoryListLimit returns how many entries the history builtin shows.
func (c *Config) HistoryListLimit() int {
	if c.History.ListLimit <= 0 {
		return DefaultHistoryListLimit
	}
	return c.History.ListLimit
}

// FindModelByName searches the advisor models by name.
// Returns the model definition and true if found, empty model and false otherwise.
func (c *Config) FindModelByName(name string) (ModelDefinition, bool) {
	for _, model := range c.Advisor.Models {
		if model.Name == name {
			return model, true
		}
	}
	return ModelDefinition{}, false
}

// HasModel checks if an advisor model with the given name exists.
func (c *Config) HasModel(name string) bool {
	_, exists := c.FindModelByName(name)
	return exists
}

// AdvisorModel resolves the configured advisor model. The second return is
// false when no model is selected and the heuristic advisor should be used.
func (c *Config) AdvisorModel() (ModelDefinition, bool) {
	if c.Advisor.Model == "" {
		return ModelDefinition{}, false
	}
	return c.FindModelByName(c.Advisor.Model)
}

// IsSecurityEnabled checks if security guardrails are enabled.
func (c *Config) IsSecurityEnabled() bool {
	return c.Security.Enabled
}

// IsExecutionEnabled checks whether translated commands actually run.
// When false the terminal becomes translate-and-show only.
func (c *Config) IsExecutionEnabled() bool {
	return c.Execution.Enabled
}

// ShouldConfirmBeforeExecution checks if user confirmation is required before
// every execution, independent of guardrail findings.
func (c *Config) ShouldConfirmBeforeExecution() bool {
	return c.Execution.ConfirmBeforeExecute
}

// GetTimeoutSeconds returns the command execution timeout in seconds.
func (c *Config) GetTimeoutSeconds() int {
	if c.Execution.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds
	}
	return c.Execution.TimeoutSeconds
}

// LogLevel returns the configured log level with default fallback.
func (c *Config) LogLevel() string {
	if c.Logging.Level == "" {
		return "info"
	}
	return c.Logging.Level
}

// ValidateConsistency checks the internal consistency of the configuration.
// Returns an error on contradictions a loader hydrate cannot repair.
func (c *Config) ValidateConsistency() error {
	if _, err := c.SourceDialect(); err != nil {
		return err
	}
	if _, err := c.FallbackPolicy(); err != nil {
		return err
	}
	if c.Advisor.Model != "" && !c.HasModel(c.Advisor.Model) {
		return fmt.Errorf("advisor model %s does not exist in models list", c.Advisor.Model)
	}
	if c.History.Capacity < 0 {
		return fmt.Errorf("history.capacity must be >= 0")
	}
	if c.History.ListLimit < 0 {
		return fmt.Errorf("history.list_limit must be >= 0")
	}
	return nil
}
