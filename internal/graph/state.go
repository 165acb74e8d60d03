package graph

import "fmt"

// TaskState tracks a task through its run lifecycle. Completed and Failed are
// terminal; a task is never re-entered.
type TaskState string

const (
	StatePending   TaskState = "pending"
	StateReady     TaskState = "ready"
	StateRunning   TaskState = "running"
	StateCompleted TaskState = "completed"
	StateFailed    TaskState = "failed"
)

// Terminal reports whether the state ends a task's lifecycle.
func (s TaskState) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

// runState maps task name to its current state for one workflow run.
type runState map[string]TaskState

// transition moves a task from one state to the next, rejecting anything
// outside Pending -> Ready -> Running -> Completed | Failed.
func (rs runState) transition(task string, from, to TaskState) error {
	cur, ok := rs[task]
	if !ok {
		return fmt.Errorf("unknown task in run state: %q", task)
	}
	if cur != from {
		return fmt.Errorf("invalid transition for %q: expected %s, got %s", task, from, cur)
	}
	if !allowedTransition(from, to) {
		return fmt.Errorf("disallowed transition for %q: %s -> %s", task, from, to)
	}
	rs[task] = to
	return nil
}

func allowedTransition(from, to TaskState) bool {
	switch from {
	case StatePending:
		return to == StateReady
	case StateReady:
		return to == StateRunning
	case StateRunning:
		return to == StateCompleted || to == StateFailed
	default:
		return false
	}
}
