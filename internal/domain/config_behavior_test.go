package domain_test

import (
	"testing"

	"github.com/doeshing/uniterm/internal/domain"
)

// TestConfig_SourceDialect tests resolving the configured source dialect
func TestConfig_SourceDialect(t *testing.T) {
	tests := []struct {
		name      string
		config    domain.Config
		want      domain.Dialect
		wantError bool
	}{
		{
			name:   "defaults to posix when unset",
			config: domain.Config{},
			want:   domain.DialectPosix,
		},
		{
			name: "resolves windows",
			config: domain.Config{
				Terminal: domain.TerminalSettings{Dialect: "windows"},
			},
			want: domain.DialectWindows,
		},
		{
			name: "accepts alias cmd",
			config: domain.Config{
				Terminal: domain.TerminalSettings{Dialect: "cmd"},
			},
			want: domain.DialectWindows,
		},
		{
			name: "accepts alias bash",
			config: domain.Config{
				Terminal: domain.TerminalSettings{Dialect: "bash"},
			},
			want: domain.DialectPosix,
		},
		{
			name: "rejects unknown dialect",
			config: domain.Config{
				Terminal: domain.TerminalSettings{Dialect: "fish"},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialect, err := tt.config.SourceDialect()

			if tt.wantError {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			if dialect != tt.want {
				t.Errorf("got dialect %s, want %s", dialect, tt.want)
			}
		})
	}
}

// TestConfig_FallbackPolicy tests resolving the unresolved-verb policy
func TestConfig_FallbackPolicy(t *testing.T) {
	tests := []struct {
		name      string
		config    domain.Config
		want      domain.FallbackPolicy
		wantError bool
	}{
		{
			name:   "defaults to passthrough when unset",
			config: domain.Config{},
			want:   domain.FallbackPassthrough,
		},
		{
			name: "resolves diagnostic",
			config: domain.Config{
				Translation: domain.TranslationSettings{Fallback: "diagnostic"},
			},
			want: domain.FallbackDiagnostic,
		},
		{
			name: "rejects unknown policy",
			config: domain.Config{
				Translation: domain.TranslationSettings{Fallback: "guess"},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := tt.config.FallbackPolicy()

			if tt.wantError {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			if policy != tt.want {
				t.Errorf("got policy %s, want %s", policy, tt.want)
			}
		})
	}
}

// TestConfig_HistoryLimits tests history ring defaults
func TestConfig_HistoryLimits(t *testing.T) {
	tests := []struct {
		name          string
		config        domain.Config
		wantCapacity  int
		wantListLimit int
	}{
		{
			name:          "defaults applied for zero values",
			config:        domain.Config{},
			wantCapacity:  domain.DefaultHistoryCapacity,
			wantListLimit: domain.DefaultHistoryListLimit,
		},
		{
			name: "explicit values respected",
			config: domain.Config{
				History: domain.HistorySettings{Capacity: 10, ListLimit: 5},
			},
			wantCapacity:  10,
			wantListLimit: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.HistoryCapacity(); got != tt.wantCapacity {
				t.Errorf("HistoryCapacity() = %d, want %d", got, tt.wantCapacity)
			}
			if got := tt.config.HistoryListLimit(); got != tt.wantListLimit {
				t.Errorf("HistoryListLimit() = %d, want %d", got, tt.wantListLimit)
			}
		})
	}
}

// TestConfig_AdvisorModel tests advisor model resolution
func TestConfig_AdvisorModel(t *testing.T) {
	cfg := domain.Config{
		Advisor: domain.AdvisorSettings{
			Model: "claude",
			Models: []domain.ModelDefinition{
				{Name: "claude", ModelID: "claude-3-5-sonnet"},
				{Name: "local", Provider: "ollama"},
			},
		},
	}

	model, ok := cfg.AdvisorModel()
	if !ok {
		t.Fatal("expected advisor model to resolve")
	}
	if model.ModelID != "claude-3-5-sonnet" {
		t.Errorf("got model ID %s, want claude-3-5-sonnet", model.ModelID)
	}

	cfg.Advisor.Model = ""
	if _, ok := cfg.AdvisorModel(); ok {
		t.Error("expected heuristic fallback when no model selected")
	}
}

// TestConfig_ValidateConsistency tests configuration consistency validation
func TestConfig_ValidateConsistency(t *testing.T) {
	tests := []struct {
		name      string
		config    domain.Config
		wantError bool
	}{
		{
			name:      "empty configuration is consistent",
			config:    domain.Config{},
			wantError: false,
		},
		{
			name: "invalid: advisor model doesn't exist",
			config: domain.Config{
				Advisor: domain.AdvisorSettings{Model: "nonexistent"},
			},
			wantError: true,
		},
		{
			name: "invalid: bad dialect",
			config: domain.Config{
				Terminal: domain.TerminalSettings{Dialect: "tcsh"},
			},
			wantError: true,
		},
		{
			name: "invalid: negative history capacity",
			config: domain.Config{
				History: domain.HistorySettings{Capacity: -1},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.ValidateConsistency()

			if tt.wantError {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

// TestModelDefinition_Kind tests provider kind resolution
func TestModelDefinition_Kind(t *testing.T) {
	tests := []struct {
		name  string
		model domain.ModelDefinition
		want  domain.ProviderKind
	}{
		{
			name:  "explicit provider wins",
			model: domain.ModelDefinition{Provider: "ollama", Endpoint: "https://api.anthropic.com/v1/messages"},
			want:  domain.ProviderKindOllama,
		},
		{
			name:  "anthropic endpoint sniffed",
			model: domain.ModelDefinition{Endpoint: "https://api.anthropic.com/v1/messages"},
			want:  domain.ProviderKindAnthropic,
		},
		{
			name:  "openai endpoint sniffed",
			model: domain.ModelDefinition{Endpoint: "https://api.openai.com/v1/chat/completions"},
			want:  domain.ProviderKindOpenAI,
		},
		{
			name:  "localhost means ollama",
			model: domain.ModelDefinition{Endpoint: "http://localhost:11434/v1/chat/completions"},
			want:  domain.ProviderKindOllama,
		},
		{
			name:  "unknown otherwise",
			model: domain.ModelDefinition{Endpoint: "https://example.com"},
			want:  domain.ProviderKindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.model.Kind(); got != tt.want {
				t.Errorf("Kind() = %s, want %s", got, tt.want)
			}
		})
	}
}
