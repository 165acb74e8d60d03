// Package crew assembles agents and declared tasks into a runnable
// workflow. A Crew is an explicit value constructed per use; kicking it off
// builds a fresh task graph for that run, so no state leaks between
// invocations.
package crew

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/edzai/abank-marketing-crew/internal/config"
	"github.com/edzai/abank-marketing-crew/internal/graph"
	"github.com/edzai/abank-marketing-crew/pkg/agents"
)

// Worker executes one task assignment. *agents.Agent satisfies it; tests
// substitute scripted implementations.
type Worker interface {
	Execute(ctx context.Context, asg agents.Assignment) (agents.Result, error)
}

// Task declares one unit of work in a crew. Description and ExpectedOutput
// may contain {placeholder} templates resolved from kickoff inputs.
type Task struct {
	Name           string
	Agent          string
	Description    string
	ExpectedOutput string
	DependsOn      []string
}

// Crew is one workflow: a set of named workers plus the tasks that
// reference them, in declaration order.
type Crew struct {
	name    string
	workers map[string]Worker
	order   []string // worker registration order, for error reporting only
	tasks   []Task
	logger  *zap.Logger
}

type Option func(*Crew)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Crew) {
		c.logger = logger
	}
}

// New creates an empty crew.
func New(name string, opts ...Option) *Crew {
	c := &Crew{
		name:    name,
		workers: make(map[string]Worker),
		logger:  zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	c.logger = c.logger.With(zap.String("component", "crew"), zap.String("crew", name))
	return c
}

// Name returns the crew's name.
func (c *Crew) Name() string {
	return c.name
}

// AddWorker registers a named worker for tasks to reference.
func (c *Crew) AddWorker(name string, w Worker) error {
	if _, exists := c.workers[name]; exists {
		return errors.Errorf("worker %q already registered in crew %s", name, c.name)
	}
	c.workers[name] = w
	c.order = append(c.order, name)
	return nil
}

// AddTask declares a task. Structural validation happens at kickoff, when
// the run's graph is built.
func (c *Crew) AddTask(t Task) error {
	if t.Name == "" {
		return errors.Errorf("crew %s: task name must not be empty", c.name)
	}
	for _, existing := range c.tasks {
		if existing.Name == t.Name {
			return errors.Errorf("crew %s: task %q already declared", c.name, t.Name)
		}
	}
	c.tasks = append(c.tasks, t)
	return nil
}

// Tasks returns the declared tasks in declaration order.
func (c *Crew) Tasks() []Task {
	out := make([]Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Kickoff runs the crew once. Inputs are substituted into task templates,
// the dependency graph is validated, and tasks execute strictly
// sequentially with fail-fast semantics. The returned result carries the
// final task's output plus every intermediate output by task name.
func (c *Crew) Kickoff(ctx context.Context, inputs map[string]string) (*Result, error) {
	runID := uuid.New().String()
	started := time.Now()

	g := graph.New(c.name, graph.WithLogger(c.logger))
	for _, name := range c.order {
		if err := g.AddAgent(name, &workerInvoker{worker: c.workers[name]}); err != nil {
			return nil, errors.Wrapf(err, "crew %s", c.name)
		}
	}
	for _, t := range c.tasks {
		err := g.AddTask(graph.Task{
			Name:           t.Name,
			Agent:          t.Agent,
			Description:    config.Interpolate(t.Description, inputs),
			ExpectedOutput: config.Interpolate(t.ExpectedOutput, inputs),
			DependsOn:      t.DependsOn,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "crew %s", c.name)
		}
	}

	c.logger.Info("kickoff",
		zap.String("run_id", runID),
		zap.Int("tasks", len(c.tasks)))

	run, err := g.Run(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "crew %s run %s", c.name, runID)
	}

	return newResult(c.name, runID, started, run), nil
}

// workerInvoker adapts a Worker to the graph's executor interface.
type workerInvoker struct {
	worker Worker
}

func (wi *workerInvoker) Invoke(ctx context.Context, inv graph.Invocation) (string, error) {
	res, err := wi.worker.Execute(ctx, agents.Assignment{
		Task:           inv.Task,
		Description:    inv.Description,
		ExpectedOutput: inv.ExpectedOutput,
		Context:        inv.Context,
	})
	if err != nil {
		return "", err
	}
	return res.Output, nil
}
