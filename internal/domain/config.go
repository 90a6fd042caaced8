package domain

// Config mirrors ~/.uniterm/config.yaml.
type Config struct {
	ConfigFormatVersion string              `yaml:"config_format_version"`
	Terminal            TerminalSettings    `yaml:"terminal"`
	History             HistorySettings     `yaml:"history"`
	Translation         TranslationSettings `yaml:"translation"`
	Advisor             AdvisorSettings     `yaml:"advisor"`
	Security            SecuritySettings    `yaml:"security"`
	Execution           ExecutionSettings   `yaml:"execution"`
	Logging             LoggingSettings     `yaml:"logging"`
}

// TerminalSettings captures interactive session toggles.
type TerminalSettings struct {
	Dialect string `yaml:"dialect"`
	Color   string `yaml:"color"`
}

// HistorySettings bounds the in-session history ring.
type HistorySettings struct {
	Capacity  int `yaml:"capacity"`
	ListLimit int `yaml:"list_limit"`
}

// TranslationSettings configures mapper behavior for unresolved verbs.
type TranslationSettings struct {
	Fallback string `yaml:"fallback"`
}

// AdvisorSettings selects the diagnostic advisor used by the diagnostic
// fallback policy. An empty model name means the offline heuristic.
type AdvisorSettings struct {
	Model  string            `yaml:"model"`
	Models []ModelDefinition `yaml:"models"`
}

// SecuritySettings defines guardrail behavior.
type SecuritySettings struct {
	Enabled   bool   `yaml:"enabled"`
	RulesFile string `yaml:"rules_file"`
}

// ExecutionSettings controls how translated commands run.
type ExecutionSettings struct {
	Enabled              bool `yaml:"enabled"`
	ConfirmBeforeExecute bool `yaml:"confirm_before_execute"`
	TimeoutSeconds       int  `yaml:"timeout"`
}

// LoggingSettings tunes diagnostic output.
type LoggingSettings struct {
	Level string `yaml:"level"`
}
