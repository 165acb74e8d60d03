package graph

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

//---------------------------//
// Mock Agent Implementation //
//---------------------------//

// countingAgent records every invocation and echoes a canned output.
type countingAgent struct {
	calls  atomic.Int64
	output string
	err    error
	seen   []Invocation
}

func (a *countingAgent) Invoke(_ context.Context, inv Invocation) (string, error) {
	a.calls.Add(1)
	a.seen = append(a.seen, inv)
	if a.err != nil {
		return "", a.err
	}
	if a.output != "" {
		return a.output, nil
	}
	return "output of " + inv.Task, nil
}

func newTestGraph(t *testing.T, agent Invoker, tasks ...Task) *Graph {
	t.Helper()
	g := New("test")
	require.NoError(t, g.AddAgent("worker", agent))
	for _, task := range tasks {
		require.NoError(t, g.AddTask(task))
	}
	return g
}

//---------------------------//
// Construction & Validation //
//---------------------------//

func TestGraphConstruction(t *testing.T) {
	t.Parallel()

	t.Run("DuplicateTaskRejected", func(t *testing.T) {
		t.Parallel()
		g := New("dup")
		require.NoError(t, g.AddTask(Task{Name: "a", Agent: "worker"}))

		err := g.AddTask(Task{Name: "a", Agent: "worker"})
		require.Error(t, err)
		require.ErrorIs(t, err, ErrDuplicateTask)

		var ge *GraphError
		require.True(t, errors.As(err, &ge))
		require.Equal(t, "a", ge.Task)
	})

	t.Run("SelfDependencyRejected", func(t *testing.T) {
		t.Parallel()
		g := New("selfdep")
		err := g.AddTask(Task{Name: "a", Agent: "worker", DependsOn: []string{"a"}})
		require.ErrorIs(t, err, ErrSelfDependency)
	})

	t.Run("DuplicateAgentRejected", func(t *testing.T) {
		t.Parallel()
		g := New("dupagent")
		require.NoError(t, g.AddAgent("worker", &countingAgent{}))
		require.ErrorIs(t, g.AddAgent("worker", &countingAgent{}), ErrDuplicateAgent)
	})

	t.Run("EmptyGraphRejected", func(t *testing.T) {
		t.Parallel()
		g := New("empty")
		require.ErrorIs(t, g.Validate(), ErrEmptyGraph)
	})
}

func TestGraphValidation(t *testing.T) {
	t.Parallel()

	t.Run("DanglingDependency", func(t *testing.T) {
		t.Parallel()
		agent := &countingAgent{}
		g := newTestGraph(t, agent,
			Task{Name: "a", Agent: "worker"},
			Task{Name: "b", Agent: "worker", DependsOn: []string{"missing"}},
		)
		err := g.Validate()
		require.ErrorIs(t, err, ErrUnknownTask)
	})

	t.Run("UnknownAgent", func(t *testing.T) {
		t.Parallel()
		agent := &countingAgent{}
		g := newTestGraph(t, agent,
			Task{Name: "a", Agent: "nobody"},
		)
		err := g.Validate()
		require.ErrorIs(t, err, ErrUnknownAgent)
	})

	t.Run("CycleDetected", func(t *testing.T) {
		t.Parallel()
		agent := &countingAgent{}
		g := newTestGraph(t, agent,
			Task{Name: "a", Agent: "worker", DependsOn: []string{"c"}},
			Task{Name: "b", Agent: "worker", DependsOn: []string{"a"}},
			Task{Name: "c", Agent: "worker", DependsOn: []string{"b"}},
		)
		err := g.Validate()
		require.ErrorIs(t, err, ErrCycleDetected)
	})

	t.Run("ValidLinearChain", func(t *testing.T) {
		t.Parallel()
		agent := &countingAgent{}
		g := newTestGraph(t, agent,
			Task{Name: "a", Agent: "worker"},
			Task{Name: "b", Agent: "worker", DependsOn: []string{"a"}},
			Task{Name: "c", Agent: "worker", DependsOn: []string{"b"}},
		)
		require.NoError(t, g.Validate())
	})
}

//------------------//
// Order Resolution //
//------------------//

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("LinearChainKeepsDeclarationOrder", func(t *testing.T) {
		t.Parallel()
		agent := &countingAgent{}
		g := newTestGraph(t, agent,
			Task{Name: "a", Agent: "worker"},
			Task{Name: "b", Agent: "worker", DependsOn: []string{"a"}},
			Task{Name: "c", Agent: "worker", DependsOn: []string{"a", "b"}},
		)
		order, err := g.Resolve()
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b", "c"}, order)
	})

	t.Run("TieBreakIsDeclarationOrder", func(t *testing.T) {
		t.Parallel()
		// c has no dependencies but is declared first, so it leads even
		// though b is also immediately eligible.
		agent := &countingAgent{}
		g := newTestGraph(t, agent,
			Task{Name: "c", Agent: "worker"},
			Task{Name: "a", Agent: "worker", DependsOn: []string{"c"}},
			Task{Name: "b", Agent: "worker"},
		)
		order, err := g.Resolve()
		require.NoError(t, err)
		require.Equal(t, []string{"c", "a", "b"}, order)
	})

	t.Run("DeclaredOutOfOrderStillTopological", func(t *testing.T) {
		t.Parallel()
		// b is declared before its dependency a; the resolved order must
		// still respect the edge.
		agent := &countingAgent{}
		g := newTestGraph(t, agent,
			Task{Name: "b", Agent: "worker", DependsOn: []string{"a"}},
			Task{Name: "a", Agent: "worker"},
		)
		order, err := g.Resolve()
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, order)
	})

	t.Run("OrderIsIdempotent", func(t *testing.T) {
		t.Parallel()
		agent := &countingAgent{}
		g := newTestGraph(t, agent,
			Task{Name: "a", Agent: "worker"},
			Task{Name: "b", Agent: "worker", DependsOn: []string{"a"}},
			Task{Name: "c", Agent: "worker", DependsOn: []string{"b"}},
			Task{Name: "d", Agent: "worker", DependsOn: []string{"b", "c"}},
		)
		first, err := g.Resolve()
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, err := g.Resolve()
			require.NoError(t, err)
			require.Equal(t, first, again)
		}
	})

	t.Run("CycleSurfacesFromResolve", func(t *testing.T) {
		t.Parallel()
		agent := &countingAgent{}
		g := newTestGraph(t, agent,
			Task{Name: "a", Agent: "worker", DependsOn: []string{"b"}},
			Task{Name: "b", Agent: "worker", DependsOn: []string{"a"}},
		)
		_, err := g.Resolve()
		require.ErrorIs(t, err, ErrCycleDetected)
	})
}
