// Package dialect rewrites commands between shell dialects. Each direction
// carries a table of per-verb rewrite rules; verbs without a rule fall back
// to the session's configured policy. The rules are deliberately loose about
// flags (token scans, not real argument parsing): the goal is a usable
// suggestion on the host shell, not semantic equivalence.
package dialect

import (
	"context"
	"fmt"
	"strings"

	"github.com/doeshing/uniterm/internal/domain"
	"github.com/doeshing/uniterm/internal/ports"
)

// rewriteFunc turns the remainder of a matched verb into a complete target
// command. Returning "" means the rule declined and the fallback applies.
type rewriteFunc func(rest string) string

// verbFor swaps the verb and carries the remainder verbatim.
func verbFor(target string) rewriteFunc {
	return func(rest string) string { return withRest(target, rest) }
}

// bare emits a fixed line and drops the remainder.
func bare(out string) rewriteFunc {
	return func(string) string { return out }
}

// noteFor emits an explanatory note, carrying the remainder like any other
// verb swap so the user still sees what they asked for.
func noteFor(msg string) rewriteFunc {
	return func(rest string) string { return Note(withRest(msg, rest)) }
}

// Mapper rewrites a single pipeline stage from the source dialect into the
// host dialect. Same-dialect mappers pass every stage through unchanged.
type Mapper struct {
	source   domain.Dialect
	host     domain.Dialect
	fallback domain.FallbackPolicy
	advisor  ports.Advisor
}

// NewMapper builds a mapper for one (source, host) dialect pair. The advisor
// is only consulted under the diagnostic fallback policy and may be nil.
func NewMapper(source, host domain.Dialect, fallback domain.FallbackPolicy, advisor ports.Advisor) *Mapper {
	return &Mapper{source: source, host: host, fallback: fallback, advisor: advisor}
}

// ruleTable selects the rewrite table for a dialect pair. A nil table means
// the pair needs no rewriting.
func ruleTable(source, host domain.Dialect) map[string]rewriteFunc {
	switch {
	case source == domain.DialectPosix && host == domain.DialectWindows:
		return posixToWindows
	case source == domain.DialectWindows && host == domain.DialectPosix:
		return windowsToPosix
	default:
		return nil
	}
}

// HasRule reports whether a rewrite rule exists for verb in the given
// direction. Advisors use it to spot verbs typed in the wrong dialect.
func HasRule(source, host domain.Dialect, verb string) bool {
	table := ruleTable(source, host)
	if table == nil {
		return false
	}
	_, ok := table[strings.ToLower(verb)]
	return ok
}

// Translate rewrites one stage. The input must already be a single pipeline
// stage: pipe splitting happens upstream in the Pipeline.
func (m *Mapper) Translate(ctx context.Context, command string) domain.StageResult {
	result := domain.StageResult{
		Input:  command,
		Kind:   domain.StageExecutable,
		Output: command,
	}

	tok := domain.SplitVerb(command)
	if tok.Empty() {
		return result
	}

	table := ruleTable(m.source, m.host)
	if table == nil {
		return result
	}

	verb := strings.ToLower(tok.Verb)
	switch {
	case verb == "sudo" && m.source == domain.DialectPosix:
		result.Output = m.translateSudo(ctx, tok.Remainder)
	default:
		result.Output = m.applyRule(ctx, table, verb, tok)
	}

	if IsNote(result.Output) {
		result.Kind = domain.StageNote
	}
	return result
}

func (m *Mapper) applyRule(ctx context.Context, table map[string]rewriteFunc, verb string, tok domain.Token) string {
	if rule, ok := table[verb]; ok {
		if out := rule(tok.Remainder); out != "" {
			return out
		}
	}
	return m.unresolved(ctx, tok)
}

// translateSudo strips any run of leading sudo verbs and translates the
// command underneath, so "sudo kill -9 42" lands as an elevated-free
// "taskkill /PID 42 /F" rather than a half-translated line.
func (m *Mapper) translateSudo(ctx context.Context, rest string) string {
	inner := strings.TrimSpace(rest)
	for {
		tok := domain.SplitVerb(inner)
		if strings.ToLower(tok.Verb) != "sudo" {
			break
		}
		inner = strings.TrimSpace(tok.Remainder)
	}
	if inner == "" {
		return Note("sudo with no command")
	}
	return m.Translate(ctx, inner).Output
}

// unresolved applies the fallback policy to a verb no rule claimed.
// Passthrough forwards the stage verbatim; diagnostic replaces it with an
// advisory note so the host shell never sees it. Advisor failures keep the
// note, just without the enrichment.
func (m *Mapper) unresolved(ctx context.Context, tok domain.Token) string {
	line := tok.Rejoin()
	if m.fallback != domain.FallbackDiagnostic {
		return line
	}

	msg := fmt.Sprintf("no %s equivalent known for '%s'", m.host, tok.Verb)
	if m.advisor != nil {
		ctx, cancel := context.WithTimeout(ctx, domain.DefaultAdvisorTimeout)
		defer cancel()
		advice, err := m.advisor.Explain(ctx, ports.AdvisorRequest{
			Verb:   tok.Verb,
			Line:   line,
			Source: m.source,
			Host:   m.host,
		})
		if err == nil && advice != "" {
			return Note(msg + "; " + advice)
		}
	}
	return Note(msg)
}
