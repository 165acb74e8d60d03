package crew

import (
	"time"

	"github.com/edzai/abank-marketing-crew/internal/graph"
)

// TaskOutput is one completed task's contribution to a run.
type TaskOutput struct {
	Task        string    `json:"task"`
	Agent       string    `json:"agent"`
	Output      string    `json:"output"`
	CompletedAt time.Time `json:"completed_at"`
}

// Result is the outcome of one crew run.
type Result struct {
	Crew       string                `json:"crew"`
	RunID      string                `json:"run_id"`
	Order      []string              `json:"order"`
	Outputs    map[string]TaskOutput `json:"outputs"`
	Final      string                `json:"final"`
	StartedAt  time.Time             `json:"started_at"`
	FinishedAt time.Time             `json:"finished_at"`
}

func newResult(crewName, runID string, started time.Time, run *graph.RunResult) *Result {
	outputs := make(map[string]TaskOutput, len(run.Outputs))
	for name, tr := range run.Outputs {
		outputs[name] = TaskOutput{
			Task:        tr.Task,
			Agent:       tr.Agent,
			Output:      tr.Output,
			CompletedAt: tr.CompletedAt,
		}
	}
	return &Result{
		Crew:       crewName,
		RunID:      runID,
		Order:      run.Order,
		Outputs:    outputs,
		Final:      run.Final,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
}
