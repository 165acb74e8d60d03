// Package marketing assembles ABank's marketing department: six specialist
// agents built from YAML definitions, wired into three runnable campaign
// workflows.
package marketing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"github.com/edzai/abank-marketing-crew/internal/config"
	"github.com/edzai/abank-marketing-crew/pkg/agents"
	"github.com/edzai/abank-marketing-crew/pkg/crew"
	"github.com/edzai/abank-marketing-crew/pkg/tools"
)

// Department builds and runs marketing workflows. It holds only immutable
// configuration; agents and crews are constructed fresh for every run.
type Department struct {
	library *config.Library
	model   llms.Model
	logger  *zap.Logger
}

type Option func(*Department)

// WithLibrary overrides the embedded agent/task definitions.
func WithLibrary(lib *config.Library) Option {
	return func(d *Department) {
		d.library = lib
	}
}

// WithModel backs every agent with an LLM. Without it agents compose
// deterministic briefings from their tools.
func WithModel(m llms.Model) Option {
	return func(d *Department) {
		d.model = m
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(d *Department) {
		d.logger = logger
	}
}

// New creates a department from the embedded defaults unless a library is
// supplied.
func New(opts ...Option) (*Department, error) {
	d := &Department{logger: zap.NewNop()}
	for _, o := range opts {
		o(d)
	}
	if d.library == nil {
		lib, err := config.Default()
		if err != nil {
			return nil, errors.Wrap(err, "load default config")
		}
		d.library = lib
	}
	d.logger = d.logger.With(zap.String("component", "marketing"))
	return d, nil
}

// Run validates the inputs for a workflow, builds it fresh and kicks it off.
func (d *Department) Run(ctx context.Context, id WorkflowID, inputs map[string]string) (*crew.Result, error) {
	if err := ValidateInputs(id, inputs); err != nil {
		return nil, err
	}
	c, err := d.Crew(id)
	if err != nil {
		return nil, err
	}
	return c.Kickoff(ctx, inputs)
}

// buildAgent constructs one agent from its YAML definition, binding the
// declared tool names to stub implementations.
func (d *Department) buildAgent(name string) (*agents.Agent, error) {
	cfg, ok := d.library.Agent(name)
	if !ok {
		return nil, errors.Errorf("agent %q not found in config", name)
	}

	byName := make(map[string]tools.Tool)
	for _, t := range tools.All() {
		byName[t.Name()] = t
	}

	reg, err := tools.NewRegistry()
	if err != nil {
		return nil, err
	}
	for _, toolName := range cfg.Tools {
		t, ok := byName[toolName]
		if !ok {
			return nil, errors.Errorf("agent %q references unknown tool %q", name, toolName)
		}
		if err := reg.Register(t); err != nil {
			return nil, errors.Wrapf(err, "agent %q", name)
		}
	}

	opts := []agents.Option{
		agents.WithTools(reg),
		agents.WithLogger(d.logger),
	}
	if d.model != nil {
		opts = append(opts, agents.WithModel(d.model))
	}

	return agents.New(name, agents.Config{
		Role:            cfg.Role,
		Goal:            cfg.Goal,
		Backstory:       cfg.Backstory,
		AllowDelegation: cfg.AllowDelegation,
		MaxIterations:   cfg.MaxIter,
		MaxRPM:          cfg.MaxRPM,
	}, opts...), nil
}
