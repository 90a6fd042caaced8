// Package advisor produces short diagnostics for verbs the mapping tables do
// not cover. Backends range from a local offline heuristic to hosted chat
// models; all of them return a single sentence that is rendered as a note and
// never executed.
package advisor

import (
	"net/http"

	"github.com/doeshing/uniterm/internal/domain"
	"github.com/doeshing/uniterm/internal/ports"
)

type Factory struct {
	httpClient *http.Client
}

func NewFactory() *Factory {
	return &Factory{
		httpClient: &http.Client{Timeout: domain.DefaultHTTPClientTimeout},
	}
}

// ForModel builds the advisor for one model definition. Hosted backends are
// wrapped with the on-disk advice cache; the heuristic is local and needs no
// caching.
func (f *Factory) ForModel(model domain.ModelDefinition) (ports.Advisor, error) {
	switch model.Kind() {
	case domain.ProviderKindAnthropic:
		return NewCachedAdvisor(newHTTPAdvisor("anthropic", model, f.httpClient, anthropicAdapter())), nil
	case domain.ProviderKindOpenAI:
		return NewCachedAdvisor(newHTTPAdvisor("openai", model, f.httpClient, openaiAdapter())), nil
	case domain.ProviderKindOllama:
		return NewCachedAdvisor(newHTTPAdvisor("ollama", model, f.httpClient, ollamaAdapter())), nil
	default:
		return NewHeuristicAdvisor(), nil
	}
}

var _ ports.AdvisorFactory = (*Factory)(nil)
