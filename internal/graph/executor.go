package graph

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// TaskResult is the completed output of a single task.
type TaskResult struct {
	Task        string
	Agent       string
	Output      string
	CompletedAt time.Time
}

// RunResult aggregates one workflow run. Final holds the output of the last
// task in resolved order; every intermediate output stays addressable by
// task name for inspection.
type RunResult struct {
	GraphID string
	Order   []string
	Outputs map[string]TaskResult
	States  map[string]TaskState
	Final   string
}

// Run validates the workflow, resolves the execution order and drives each
// task exactly once, strictly sequentially. Each task's effective input is
// the concatenation, in dependency order, of its upstream outputs.
//
// Failure is fail-fast: the first agent error aborts the run with an
// ExecutionError and no downstream task is attempted. Cancellation is
// honored between tasks; a task already dispatched to its agent is never
// interrupted by the executor itself.
func (g *Graph) Run(ctx context.Context) (*RunResult, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	order, err := g.Resolve()
	if err != nil {
		return nil, err
	}

	states := make(runState, len(g.tasks))
	for _, t := range g.tasks {
		states[t.Name] = StatePending
	}

	result := &RunResult{
		GraphID: g.graphID,
		Order:   order,
		Outputs: make(map[string]TaskResult, len(order)),
		States:  states,
	}

	g.logger.Info("starting workflow run",
		zap.String("graph_id", g.graphID),
		zap.Int("tasks", len(order)))

	for _, name := range order {
		// Stop before dispatching the next task if the caller cancelled.
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("workflow run cancelled before task %q: %w", name, ctx.Err())
		default:
		}

		t := g.tasks[g.index[name]]

		// All dependencies completed by construction of the resolved order.
		if err := states.transition(name, StatePending, StateReady); err != nil {
			return result, err
		}
		if err := states.transition(name, StateReady, StateRunning); err != nil {
			return result, err
		}

		inv := Invocation{
			Task:           t.Name,
			Description:    t.Description,
			ExpectedOutput: t.ExpectedOutput,
			Context:        g.buildContext(t, result.Outputs),
		}

		g.logger.Debug("dispatching task",
			zap.String("task", t.Name),
			zap.String("agent", t.Agent))

		start := time.Now()
		output, err := g.agents[t.Agent].Invoke(ctx, inv)
		if err != nil {
			_ = states.transition(name, StateRunning, StateFailed)
			g.logger.Error("task failed, aborting workflow",
				zap.String("task", t.Name),
				zap.String("agent", t.Agent),
				zap.Error(err))
			return result, NewExecutionError(t.Name, t.Agent, err)
		}

		if err := states.transition(name, StateRunning, StateCompleted); err != nil {
			return result, err
		}
		result.Outputs[name] = TaskResult{
			Task:        t.Name,
			Agent:       t.Agent,
			Output:      output,
			CompletedAt: time.Now(),
		}

		g.logger.Info("task completed",
			zap.String("task", t.Name),
			zap.Duration("took", time.Since(start)))
	}

	result.Final = result.Outputs[order[len(order)-1]].Output
	return result, nil
}

// buildContext concatenates the completed outputs of a task's dependencies,
// in the order the dependencies were declared on the task.
func (g *Graph) buildContext(t Task, outputs map[string]TaskResult) string {
	if len(t.DependsOn) == 0 {
		return ""
	}
	parts := make([]string, 0, len(t.DependsOn))
	for _, dep := range t.DependsOn {
		parts = append(parts, outputs[dep].Output)
	}
	return strings.Join(parts, "\n\n")
}
