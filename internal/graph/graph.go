package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Task is a declared unit of work. Its description and expected output are
// opaque to the graph; only Name, Agent and DependsOn carry structural
// meaning. Dependencies must already be declared when the task is added, so a
// valid workflow lists tasks in an order consistent with its dependencies.
type Task struct {
	Name           string
	Agent          string
	Description    string
	ExpectedOutput string
	DependsOn      []string
}

// Invocation is the effective input handed to an agent for one task: the
// task's own payload plus the concatenated outputs of its dependencies.
type Invocation struct {
	Task           string
	Description    string
	ExpectedOutput string
	Context        string
}

// Invoker executes a single task invocation. The graph never inspects what
// backs it; it only passes payloads in and receives an opaque output.
type Invoker interface {
	Invoke(ctx context.Context, inv Invocation) (string, error)
}

// Graph holds one workflow's declared tasks and registered agents. It is
// built fresh per invocation and carries no state across runs.
type Graph struct {
	graphID string
	tasks   []Task // declaration order, preserved for the stable sort
	index   map[string]int
	agents  map[string]Invoker
	logger  *zap.Logger
}

type Option func(*Graph)

func WithGraphID(id string) Option {
	return func(g *Graph) {
		g.graphID = id
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(g *Graph) {
		g.logger = logger
	}
}

// New creates an empty workflow graph.
func New(name string, opt ...Option) *Graph {
	graphName := "workflow"
	if name != "" {
		graphName = name
	}

	g := Graph{
		graphID: uuid.New().String(),
		index:   make(map[string]int),
		agents:  make(map[string]Invoker),
		logger:  zap.NewNop(),
	}
	for _, o := range opt {
		o(&g)
	}

	// remove spaces
	graphName = strings.ReplaceAll(graphName, " ", "-")
	// prepend workflow name to graphID
	g.graphID = fmt.Sprintf("%s-%s", graphName, g.graphID)
	return &g
}

// ID returns the graph's run-scoped identifier.
func (g *Graph) ID() string {
	return g.graphID
}

// AddAgent registers a named agent for tasks to reference.
func (g *Graph) AddAgent(name string, inv Invoker) error {
	if name == "" {
		return NewGraphError("AddAgent", "", fmt.Errorf("agent name must not be empty"))
	}
	if _, exists := g.agents[name]; exists {
		return NewGraphError("AddAgent", "", ErrDuplicateAgent)
	}
	g.agents[name] = inv
	return nil
}

// AddTask declares a task. Self-dependencies and duplicate names are rejected
// here; dangling dependencies and unknown agents are caught by Validate so a
// caller may register agents after declaring tasks.
func (g *Graph) AddTask(t Task) error {
	if t.Name == "" {
		return NewGraphError("AddTask", "", fmt.Errorf("task name must not be empty"))
	}
	if _, exists := g.index[t.Name]; exists {
		return NewGraphError("AddTask", t.Name, ErrDuplicateTask)
	}
	for _, dep := range t.DependsOn {
		if dep == t.Name {
			return NewGraphError("AddTask", t.Name, ErrSelfDependency)
		}
	}

	g.index[t.Name] = len(g.tasks)
	g.tasks = append(g.tasks, t)
	return nil
}

// Tasks returns the declared tasks in declaration order.
func (g *Graph) Tasks() []Task {
	out := make([]Task, len(g.tasks))
	copy(out, g.tasks)
	return out
}

// Validate checks the declared workflow before any execution: every
// dependency must name a declared task, every task's agent must be
// registered, and the dependency relation must be acyclic.
func (g *Graph) Validate() error {
	if len(g.tasks) == 0 {
		return NewGraphError("Validate", "", ErrEmptyGraph)
	}

	for _, t := range g.tasks {
		if _, ok := g.agents[t.Agent]; !ok {
			return NewGraphError("Validate", t.Name,
				fmt.Errorf("%w: %q", ErrUnknownAgent, t.Agent))
		}
		for _, dep := range t.DependsOn {
			if _, ok := g.index[dep]; !ok {
				return NewGraphError("Validate", t.Name,
					fmt.Errorf("%w: %q", ErrUnknownTask, dep))
			}
		}
	}

	return g.detectCycles()
}

// detectCycles runs a depth-first search with the classic three-color
// marking: tasks on the current recursion stack are "temporary", fully
// explored tasks are "permanent".
func (g *Graph) detectCycles() error {
	permanent := make(map[string]bool, len(g.tasks))
	temporary := make(map[string]bool, len(g.tasks))

	var visit func(name string) error
	visit = func(name string) error {
		if permanent[name] {
			return nil
		}
		if temporary[name] {
			return NewGraphError("Validate", name, ErrCycleDetected)
		}
		temporary[name] = true

		t := g.tasks[g.index[name]]
		for _, dep := range t.DependsOn {
			if err := visit(dep); err != nil {
				return err
			}
		}

		delete(temporary, name)
		permanent[name] = true
		return nil
	}

	for _, t := range g.tasks {
		if err := visit(t.Name); err != nil {
			return err
		}
	}
	return nil
}
