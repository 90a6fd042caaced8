package domain

import "strings"

// ProviderKind enumerates the advisor backends uniterm can talk to.
type ProviderKind string

const (
	ProviderKindAnthropic ProviderKind = "anthropic"
	ProviderKindOpenAI    ProviderKind = "openai"
	ProviderKindOllama    ProviderKind = "ollama"
	ProviderKindHeuristic ProviderKind = "heuristic"
	ProviderKindUnknown   ProviderKind = "unknown"
)

// ModelDefinition describes an advisor model declared in the config file.
// Advisors are only consulted when the translation fallback policy is
// "diagnostic" and a verb has no mapping rule.
type ModelDefinition struct {
	Name       string `yaml:"name"`
	Provider   string `yaml:"provider"`
	Endpoint   string `yaml:"endpoint"`
	AuthEnvVar string `yaml:"auth_env_var"`
	ModelID    string `yaml:"model_id"`
	MaxTokens  int    `yaml:"max_tokens"`
}

// Kind resolves the provider kind, preferring the explicit provider field and
// falling back to endpoint/name sniffing for configs that omit it.
func (m ModelDefinition) Kind() ProviderKind {
	switch m.Provider {
	case "anthropic":
		return ProviderKindAnthropic
	case "openai":
		return ProviderKindOpenAI
	case "ollama":
		return ProviderKindOllama
	case "heuristic":
		return ProviderKindHeuristic
	}
	return inferProviderKind(m.Endpoint, m.Name)
}

func inferProviderKind(endpoint string, name string) ProviderKind {
	nameLower := strings.ToLower(name)

	switch {
	case strings.Contains(endpoint, "anthropic.com"):
		return ProviderKindAnthropic
	case strings.Contains(endpoint, "openai.com"):
		return ProviderKindOpenAI
	case strings.Contains(nameLower, "ollama"), strings.Contains(endpoint, "11434"), strings.Contains(endpoint, "localhost"):
		return ProviderKindOllama
	default:
		return ProviderKindUnknown
	}
}
