package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateTask is returned when declaring a task name twice.
	ErrDuplicateTask = errors.New("task with this name already declared")

	// ErrDuplicateAgent is returned when registering an agent name twice.
	ErrDuplicateAgent = errors.New("agent with this name already registered")

	// ErrUnknownTask is returned when a dependency references an undeclared task.
	ErrUnknownTask = errors.New("dependency references an undeclared task")

	// ErrUnknownAgent is returned when a task references an agent that is not
	// part of the workflow.
	ErrUnknownAgent = errors.New("task references an unknown agent")

	// ErrSelfDependency is returned when a task depends on itself.
	ErrSelfDependency = errors.New("task cannot depend on itself")

	// ErrCycleDetected is returned when the dependency relation is not acyclic.
	ErrCycleDetected = errors.New("cyclic dependency detected")

	// ErrEmptyGraph is returned when running a workflow with no tasks.
	ErrEmptyGraph = errors.New("workflow declares no tasks")
)

// GraphError represents a structural problem detected while building or
// validating a workflow, before any task has been executed.
type GraphError struct {
	// Op is the operation that failed
	Op string
	// Task is the name of the task involved (if any)
	Task string
	// Err is the underlying error
	Err error
}

func (e *GraphError) Error() string {
	if e.Task != "" {
		return fmt.Sprintf("graph error: %s: task %q: %v", e.Op, e.Task, e.Err)
	}
	return fmt.Sprintf("graph error: %s: %v", e.Op, e.Err)
}

func (e *GraphError) Unwrap() error {
	return e.Err
}

// NewGraphError creates a new GraphError
func NewGraphError(op, task string, err error) error {
	return &GraphError{Op: op, Task: task, Err: err}
}

// ExecutionError represents a task failure at run time. It aborts the
// remaining workflow and carries the identity of the failing task.
type ExecutionError struct {
	// Task is the name of the task whose agent invocation failed
	Task string
	// Agent is the name of the agent the task was assigned to
	Agent string
	// Err is the underlying error
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execution error: task %q (agent %q): %v", e.Task, e.Agent, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// NewExecutionError creates a new ExecutionError
func NewExecutionError(task, agent string, err error) error {
	return &ExecutionError{Task: task, Agent: agent, Err: err}
}
