// Package agents implements the workers that execute workflow tasks. An
// agent pairs a role definition with a set of tool capabilities and,
// optionally, an LLM backend; without a backend it composes deterministic
// briefings from its tools, which keeps every workflow runnable offline.
package agents

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/edzai/abank-marketing-crew/pkg/tools"
)

// Config carries an agent's role framing and execution parameters.
type Config struct {
	Role            string
	Goal            string
	Backstory       string
	AllowDelegation bool

	// MaxIterations caps the number of tool invocations per assignment.
	// Zero means no cap.
	MaxIterations int

	// MaxRPM bounds invocation rate per minute. Zero disables limiting.
	MaxRPM int
}

// Assignment is one task handed to an agent: the task's own payload plus
// the concatenated outputs of its upstream dependencies.
type Assignment struct {
	Task           string
	Description    string
	ExpectedOutput string
	Context        string
}

// Result is the opaque output of one executed assignment.
type Result struct {
	Output    string
	ToolCalls int
}

// Agent executes assignments. Safe for sequential reuse across tasks; a
// workflow run never executes two assignments on one agent concurrently.
type Agent struct {
	name    string
	cfg     Config
	tools   *tools.Registry
	model   llms.Model
	limiter *rate.Limiter
	logger  *zap.Logger
}

type Option func(*Agent)

// WithTools binds the agent's capability set.
func WithTools(reg *tools.Registry) Option {
	return func(a *Agent) {
		a.tools = reg
	}
}

// WithModel backs the agent with an LLM. Tool findings are folded into the
// prompt rather than exposed via native tool-calling, keeping the model an
// opaque text-in text-out capability.
func WithModel(m llms.Model) Option {
	return func(a *Agent) {
		a.model = m
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *Agent) {
		a.logger = logger
	}
}

// New creates an agent.
func New(name string, cfg Config, opts ...Option) *Agent {
	a := &Agent{
		name:   name,
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(a)
	}
	if a.tools == nil {
		reg, _ := tools.NewRegistry()
		a.tools = reg
	}
	if cfg.MaxRPM > 0 {
		// Burst of a full minute's allowance so short workflows are not
		// throttled; sustained load converges on MaxRPM.
		a.limiter = rate.NewLimiter(rate.Limit(float64(cfg.MaxRPM)/60.0), cfg.MaxRPM)
	}
	a.logger = a.logger.With(zap.String("component", "agent"), zap.String("agent", name))
	return a
}

// Name returns the agent's workflow-scoped identity.
func (a *Agent) Name() string {
	return a.name
}

// Role returns the agent's role label.
func (a *Agent) Role() string {
	return a.cfg.Role
}

// Tools returns the agent's capability registry.
func (a *Agent) Tools() *tools.Registry {
	return a.tools
}

// Execute runs one assignment: consult the bound tools, then either ask the
// LLM backend for the deliverable or compose it deterministically.
func (a *Agent) Execute(ctx context.Context, asg Assignment) (Result, error) {
	if err := a.wait(ctx); err != nil {
		return Result{}, errors.Wrapf(err, "agent %s rate limit wait", a.name)
	}

	start := time.Now()
	a.logger.Debug("executing assignment", zap.String("task", asg.Task))

	findings, calls, err := a.consultTools(ctx, asg)
	if err != nil {
		return Result{}, errors.Wrapf(err, "agent %s tool consultation", a.name)
	}

	var output string
	if a.model != nil {
		output, err = a.generate(ctx, asg, findings)
		if err != nil {
			return Result{}, errors.Wrapf(err, "agent %s completion", a.name)
		}
	} else {
		output = a.compose(asg, findings)
	}

	a.logger.Info("assignment done",
		zap.String("task", asg.Task),
		zap.Int("tool_calls", calls),
		zap.Duration("took", time.Since(start)))

	return Result{Output: output, ToolCalls: calls}, nil
}

func (a *Agent) wait(ctx context.Context) error {
	if a.limiter == nil {
		return nil
	}
	return a.limiter.Wait(ctx)
}

// consultTools invokes each bound capability once, in registration order,
// bounded by MaxIterations.
func (a *Agent) consultTools(ctx context.Context, asg Assignment) ([]finding, int, error) {
	names := a.tools.Names()
	if a.cfg.MaxIterations > 0 && len(names) > a.cfg.MaxIterations {
		names = names[:a.cfg.MaxIterations]
	}

	args := map[string]any{
		"campaign": asg.Task,
		"brief":    asg.Description,
		"query":    asg.Description,
	}

	findings := make([]finding, 0, len(names))
	for _, name := range names {
		out, err := a.tools.Invoke(ctx, name, args)
		if err != nil {
			return nil, len(findings), errors.Wrapf(err, "tool %s", name)
		}
		findings = append(findings, finding{Tool: name, Payload: out})
	}
	return findings, len(findings), nil
}
