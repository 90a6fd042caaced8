package advisor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/doeshing/uniterm/internal/domain"
	"github.com/doeshing/uniterm/internal/ports"
)

func TestFactoryRoutesProviders(t *testing.T) {
	factory := NewFactory()

	cases := []struct {
		model domain.ModelDefinition
		want  string
	}{
		{domain.ModelDefinition{Name: "claude", Endpoint: "https://api.anthropic.com/v1/messages"}, "anthropic"},
		{domain.ModelDefinition{Name: "gpt", Endpoint: "https://api.openai.com/v1/chat/completions"}, "openai"},
		{domain.ModelDefinition{Name: "llama", Endpoint: "http://localhost:11434/v1/chat/completions"}, "ollama"},
		{domain.ModelDefinition{Name: "offline", Provider: "heuristic"}, "heuristic"},
		{domain.ModelDefinition{}, "heuristic"},
	}

	for _, tc := range cases {
		advisor, err := factory.ForModel(tc.model)
		if err != nil {
			t.Fatalf("ForModel(%q) failed: %v", tc.model.Name, err)
		}
		if advisor.Name() != tc.want {
			t.Errorf("ForModel(%q) selected %q, want %q", tc.model.Name, advisor.Name(), tc.want)
		}
	}
}

func TestHeuristicRecognizesHostVerb(t *testing.T) {
	advisor := NewHeuristicAdvisor()
	advice, err := advisor.Explain(context.Background(), ports.AdvisorRequest{
		Verb:   "dir",
		Line:   "dir /a",
		Source: domain.DialectPosix,
		Host:   domain.DialectWindows,
	})
	if err != nil {
		t.Fatalf("explain failed: %v", err)
	}
	if !strings.Contains(advice, "already looks like a windows command") {
		t.Errorf("expected host-dialect recognition, got %q", advice)
	}
}

func TestHeuristicNearMissHints(t *testing.T) {
	advisor := NewHeuristicAdvisor()

	advice, err := advisor.Explain(context.Background(), ports.AdvisorRequest{
		Verb: "grep", Line: "grep foo bar.txt",
		Source: domain.DialectPosix, Host: domain.DialectWindows,
	})
	if err != nil {
		t.Fatalf("explain failed: %v", err)
	}
	if !strings.Contains(advice, "findstr") {
		t.Errorf("expected findstr hint for grep, got %q", advice)
	}

	advice, err = advisor.Explain(context.Background(), ports.AdvisorRequest{
		Verb: "findstr", Line: "findstr foo bar.txt",
		Source: domain.DialectWindows, Host: domain.DialectPosix,
	})
	if err != nil {
		t.Fatalf("explain failed: %v", err)
	}
	if !strings.Contains(advice, "grep") {
		t.Errorf("expected grep hint for findstr, got %q", advice)
	}
}

func TestHeuristicUnknownVerbStaysQuiet(t *testing.T) {
	advisor := NewHeuristicAdvisor()
	advice, err := advisor.Explain(context.Background(), ports.AdvisorRequest{
		Verb: "frobnicate", Line: "frobnicate --all",
		Source: domain.DialectPosix, Host: domain.DialectWindows,
	})
	if err != nil {
		t.Fatalf("explain failed: %v", err)
	}
	if advice != "" {
		t.Errorf("expected no advice for an unknown verb, got %q", advice)
	}
}

func TestHTTPAdvisorChatCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.Header().Set("content-type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"grep searches text on POSIX shells"}}]}`))
	}))
	defer server.Close()

	advisor := newHTTPAdvisor("ollama", domain.ModelDefinition{
		Name:     "local",
		Endpoint: server.URL,
		ModelID:  "llama3",
	}, server.Client(), ollamaAdapter())

	advice, err := advisor.Explain(context.Background(), ports.AdvisorRequest{
		Verb: "findstr", Line: "findstr foo",
		Source: domain.DialectWindows, Host: domain.DialectPosix,
	})
	if err != nil {
		t.Fatalf("explain failed: %v", err)
	}
	if advice != "grep searches text on POSIX shells" {
		t.Errorf("unexpected advice: %q", advice)
	}
}

func TestHTTPAdvisorErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	advisor := newHTTPAdvisor("ollama", domain.ModelDefinition{
		Endpoint: server.URL,
		ModelID:  "llama3",
	}, server.Client(), ollamaAdapter())

	_, err := advisor.Explain(context.Background(), ports.AdvisorRequest{
		Verb: "findstr", Source: domain.DialectWindows, Host: domain.DialectPosix,
	})
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
}

func TestAnthropicHeadersRequireKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	advisor := newHTTPAdvisor("anthropic", domain.ModelDefinition{
		Endpoint: "https://api.anthropic.com/v1/messages",
	}, http.DefaultClient, anthropicAdapter())

	_, err := advisor.Explain(context.Background(), ports.AdvisorRequest{
		Verb: "grep", Source: domain.DialectPosix, Host: domain.DialectWindows,
	})
	if err == nil || !strings.Contains(err.Error(), "missing API key") {
		t.Fatalf("expected a missing-key error, got %v", err)
	}
}

func TestSanitizeAdvice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain sentence", "plain sentence"},
		{"```sh\nfindstr foo\n```", "findstr foo"},
		{"\n\n  spaced   out  \n", "spaced out"},
		{"first line\nsecond line", "first line"},
		{"```\n```", ""},
	}
	for _, tc := range cases {
		if got := sanitizeAdvice(tc.in); got != tc.want {
			t.Errorf("sanitizeAdvice(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
