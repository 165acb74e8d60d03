package crew

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edzai/abank-marketing-crew/internal/graph"
	"github.com/edzai/abank-marketing-crew/pkg/agents"
)

// scriptedWorker records assignments and replies with a canned output.
type scriptedWorker struct {
	seen []agents.Assignment
	err  error
}

func (w *scriptedWorker) Execute(_ context.Context, asg agents.Assignment) (agents.Result, error) {
	w.seen = append(w.seen, asg)
	if w.err != nil {
		return agents.Result{}, w.err
	}
	return agents.Result{Output: "done: " + asg.Task}, nil
}

func TestKickoffSequentialRun(t *testing.T) {
	t.Parallel()

	worker := &scriptedWorker{}
	c := New("launch")
	require.NoError(t, c.AddWorker("analyst", worker))
	require.NoError(t, c.AddTask(Task{
		Name:        "analysis",
		Agent:       "analyst",
		Description: "analyse {product_name}",
	}))
	require.NoError(t, c.AddTask(Task{
		Name:        "strategy",
		Agent:       "analyst",
		Description: "plan for {product_name}",
		DependsOn:   []string{"analysis"},
	}))

	res, err := c.Kickoff(context.Background(), map[string]string{
		"product_name": "Youth Digital Savings Account",
	})
	require.NoError(t, err)

	require.Equal(t, []string{"analysis", "strategy"}, res.Order)
	require.Equal(t, "done: strategy", res.Final)
	require.Equal(t, "done: analysis", res.Outputs["analysis"].Output)
	require.NotEmpty(t, res.RunID)
	require.False(t, res.FinishedAt.Before(res.StartedAt))

	// Inputs were substituted into task templates before execution.
	require.Len(t, worker.seen, 2)
	require.Equal(t, "analyse Youth Digital Savings Account", worker.seen[0].Description)
	require.Equal(t, "plan for Youth Digital Savings Account", worker.seen[1].Description)

	// The dependent task received its upstream output as context.
	require.Equal(t, "done: analysis", worker.seen[1].Context)
}

func TestKickoffValidatesGraph(t *testing.T) {
	t.Parallel()

	t.Run("CycleFailsWithZeroInvocations", func(t *testing.T) {
		t.Parallel()
		worker := &scriptedWorker{}
		c := New("cyclic")
		require.NoError(t, c.AddWorker("w", worker))
		require.NoError(t, c.AddTask(Task{Name: "a", Agent: "w", DependsOn: []string{"b"}}))
		require.NoError(t, c.AddTask(Task{Name: "b", Agent: "w", DependsOn: []string{"a"}}))

		_, err := c.Kickoff(context.Background(), nil)
		require.ErrorIs(t, err, graph.ErrCycleDetected)
		require.Empty(t, worker.seen)
	})

	t.Run("DanglingDependency", func(t *testing.T) {
		t.Parallel()
		c := New("dangling")
		require.NoError(t, c.AddWorker("w", &scriptedWorker{}))
		require.NoError(t, c.AddTask(Task{Name: "a", Agent: "w", DependsOn: []string{"ghost"}}))

		_, err := c.Kickoff(context.Background(), nil)
		require.ErrorIs(t, err, graph.ErrUnknownTask)
	})

	t.Run("UnknownWorker", func(t *testing.T) {
		t.Parallel()
		c := New("orphan")
		require.NoError(t, c.AddWorker("w", &scriptedWorker{}))
		require.NoError(t, c.AddTask(Task{Name: "a", Agent: "nobody"}))

		_, err := c.Kickoff(context.Background(), nil)
		require.ErrorIs(t, err, graph.ErrUnknownAgent)
	})
}

func TestKickoffFailFast(t *testing.T) {
	t.Parallel()

	ok := &scriptedWorker{}
	bad := &scriptedWorker{err: errors.New("deployment rejected")}

	c := New("failing")
	require.NoError(t, c.AddWorker("good", ok))
	require.NoError(t, c.AddWorker("bad", bad))
	require.NoError(t, c.AddTask(Task{Name: "a", Agent: "good"}))
	require.NoError(t, c.AddTask(Task{Name: "b", Agent: "bad", DependsOn: []string{"a"}}))
	require.NoError(t, c.AddTask(Task{Name: "c", Agent: "good", DependsOn: []string{"b"}}))

	_, err := c.Kickoff(context.Background(), nil)
	require.Error(t, err)

	var ee *graph.ExecutionError
	require.True(t, errors.As(err, &ee))
	require.Equal(t, "b", ee.Task)

	// a ran, b failed, c was never attempted.
	require.Len(t, ok.seen, 1)
	require.Len(t, bad.seen, 1)
}

func TestCrewDeclarationErrors(t *testing.T) {
	t.Parallel()

	c := New("dups")
	require.NoError(t, c.AddWorker("w", &scriptedWorker{}))
	require.Error(t, c.AddWorker("w", &scriptedWorker{}))

	require.NoError(t, c.AddTask(Task{Name: "a", Agent: "w"}))
	require.Error(t, c.AddTask(Task{Name: "a", Agent: "w"}))
	require.Error(t, c.AddTask(Task{Name: "", Agent: "w"}))
}

func TestKickoffIsRepeatable(t *testing.T) {
	t.Parallel()

	// Identical definition and inputs resolve to the identical order on
	// every run; results carry distinct run IDs.
	worker := &scriptedWorker{}
	c := New("repeat")
	require.NoError(t, c.AddWorker("w", worker))
	require.NoError(t, c.AddTask(Task{Name: "a", Agent: "w"}))
	require.NoError(t, c.AddTask(Task{Name: "b", Agent: "w", DependsOn: []string{"a"}}))

	first, err := c.Kickoff(context.Background(), nil)
	require.NoError(t, err)
	second, err := c.Kickoff(context.Background(), nil)
	require.NoError(t, err)

	require.Equal(t, first.Order, second.Order)
	require.NotEqual(t, first.RunID, second.RunID)
}
