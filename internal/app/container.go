package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	appconfig "github.com/doeshing/uniterm/internal/application/config"
	"github.com/doeshing/uniterm/internal/application/doctor"
	"github.com/doeshing/uniterm/internal/application/terminal"
	"github.com/doeshing/uniterm/internal/dialect"
	"github.com/doeshing/uniterm/internal/domain"
	"github.com/doeshing/uniterm/internal/infrastructure/advisor"
	"github.com/doeshing/uniterm/internal/infrastructure/config"
	"github.com/doeshing/uniterm/internal/infrastructure/executor"
	"github.com/doeshing/uniterm/internal/infrastructure/security"
	"github.com/doeshing/uniterm/internal/infrastructure/transcript"
	"github.com/doeshing/uniterm/internal/pkg/logger"
	"github.com/doeshing/uniterm/internal/ports"
	"github.com/doeshing/uniterm/internal/session"
)

// Options carries the command-line settings that shape the dependency graph.
type Options struct {
	ConfigPath string
	Dialect    string
	Verbose    bool
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	TerminalService *terminal.Service
	DoctorService   *doctor.Service
	ConfigProvider  ports.ConfigProvider
	ConfigLoader    *config.FileLoader
	TranscriptStore ports.TranscriptRepository
	Translator      ports.LineTranslator
	Advisor         ports.Advisor
	Logger          ports.Logger
	Config          domain.Config
	Source          domain.Dialect
	Host            domain.Dialect
	Fallback        domain.FallbackPolicy
}

// TranslatorFor builds a one-shot translator for an explicit direction,
// reusing the session's fallback policy and advisor. Builtins are not
// intercepted, so `clear` translates instead of clearing the screen.
func (c *Container) TranslatorFor(source, host domain.Dialect) ports.LineTranslator {
	return dialect.NewPipeline(dialect.NewMapper(source, host, c.Fallback, c.Advisor), false)
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := appconfig.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level := cfg.LogLevel()
	if opts.Verbose {
		level = "debug"
	}
	log := logger.New(level)

	source, err := cfg.SourceDialect()
	if err != nil {
		return nil, err
	}
	if opts.Dialect != "" {
		source, err = domain.ParseDialect(opts.Dialect)
		if err != nil {
			return nil, err
		}
	}
	host := domain.HostDialect()

	fallback, err := cfg.FallbackPolicy()
	if err != nil {
		return nil, err
	}

	adv, err := buildAdvisor(cfg)
	if err != nil {
		log.Warn("advisor unavailable, using heuristic", map[string]interface{}{"error": err.Error()})
		adv = advisor.NewHeuristicAdvisor()
	}

	mapper := dialect.NewMapper(source, host, fallback, adv)

	guardrail, err := security.NewGuardrail(cfg.Security.RulesFile)
	if err != nil {
		guardrail, err = security.NewGuardrail("")
		if err != nil {
			return nil, err
		}
	}

	transcriptStore := transcript.NewSQLiteStore()

	terminalService := &terminal.Service{
		Translator: dialect.NewPipeline(mapper, true),
		History:    session.NewStore(cfg.HistoryCapacity()),
		Security:   guardrail,
		Executor:   executor.NewHostExecutor(host, cfg.GetTimeoutSeconds()),
		Transcript: transcriptStore,
		Logger:     log,
		SessionID:  uuid.NewString(),
		Config:     cfg,
	}

	doctorService := &doctor.Service{
		ConfigProvider:  cfgLoader,
		SecurityService: guardrail,
		Transcript:      transcriptStore,
		Host:            host,
	}

	return &Container{
		TerminalService: terminalService,
		DoctorService:   doctorService,
		ConfigProvider:  cfgLoader,
		ConfigLoader:    cfgLoader,
		TranscriptStore: transcriptStore,
		Translator:      dialect.NewPipeline(mapper, false),
		Advisor:         adv,
		Logger:          log,
		Config:          cfg,
		Source:          source,
		Host:            host,
		Fallback:        fallback,
	}, nil
}

func buildAdvisor(cfg domain.Config) (ports.Advisor, error) {
	model, selected := cfg.AdvisorModel()
	if !selected {
		return advisor.NewHeuristicAdvisor(), nil
	}
	return advisor.NewFactory().ForModel(model)
}
