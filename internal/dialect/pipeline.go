package dialect

import (
	"context"
	"strings"

	"github.com/doeshing/uniterm/internal/domain"
	"github.com/doeshing/uniterm/internal/ports"
)

// Pipeline translates a whole submitted line: it splits on "|", maps each
// stage through the Mapper, and rejoins the executable stages with " | ".
// Note stages are collected for display instead of being rejoined, so a
// comment form never reaches the host shell embedded in a pipeline.
type Pipeline struct {
	mapper *Mapper

	// interceptBuiltins routes help/exit/quit/history/clear verbs to the
	// terminal instead of the rule tables. The one-shot translate command
	// turns this off so those verbs still exercise the tables.
	interceptBuiltins bool
}

var _ ports.LineTranslator = (*Pipeline)(nil)

// NewPipeline wires a pipeline translator around a stage mapper.
func NewPipeline(mapper *Mapper, interceptBuiltins bool) *Pipeline {
	return &Pipeline{mapper: mapper, interceptBuiltins: interceptBuiltins}
}

// Translate maps one submitted line. Empty stages produced by stray pipes
// ("ls ||", "| dir") are skipped rather than treated as errors.
func (p *Pipeline) Translate(ctx context.Context, line string) domain.Translation {
	translation := domain.Translation{
		Source: p.mapper.source,
		Host:   p.mapper.host,
	}

	var executable []string
	for _, segment := range strings.Split(line, "|") {
		stage := strings.TrimSpace(segment)
		if stage == "" {
			continue
		}

		if p.interceptBuiltins {
			if builtin, ok := domain.ParseBuiltin(domain.SplitVerb(stage).Verb); ok {
				translation.Stages = append(translation.Stages, domain.StageResult{
					Input:   stage,
					Kind:    domain.StageBuiltin,
					Builtin: builtin,
				})
				translation.Builtins = append(translation.Builtins, builtin)
				continue
			}
		}

		result := p.mapper.Translate(ctx, stage)
		translation.Stages = append(translation.Stages, result)
		if result.Kind == domain.StageNote {
			translation.Notes = append(translation.Notes, result.Output)
		} else {
			executable = append(executable, result.Output)
		}
	}

	translation.Command = strings.Join(executable, " | ")
	return translation
}
