package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// finding is one tool's contribution to an assignment.
type finding struct {
	Tool    string
	Payload string
}

// generate asks the LLM backend for the deliverable, with the role framing,
// task payload, upstream context and tool findings folded into one prompt.
func (a *Agent) generate(ctx context.Context, asg Assignment, findings []finding) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, a.model, a.prompt(asg, findings))
}

func (a *Agent) prompt(asg Assignment, findings []finding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s.\nGoal: %s\n", a.cfg.Role, a.cfg.Goal)
	if a.cfg.Backstory != "" {
		fmt.Fprintf(&b, "Background: %s\n", a.cfg.Backstory)
	}
	fmt.Fprintf(&b, "\nTask: %s\n%s\n", asg.Task, asg.Description)
	if asg.Context != "" {
		fmt.Fprintf(&b, "\nContext from preceding tasks:\n%s\n", asg.Context)
	}
	if len(findings) > 0 {
		b.WriteString("\nTool findings:\n")
		for _, f := range findings {
			fmt.Fprintf(&b, "[%s]\n%s\n", f.Tool, f.Payload)
		}
	}
	fmt.Fprintf(&b, "\nProduce: %s\n", asg.ExpectedOutput)
	return b.String()
}

// compose renders the deliverable without an LLM: a structured briefing
// assembled from the role framing and tool findings. Deterministic for a
// given assignment, which is what makes offline runs and tests reproducible.
func (a *Agent) compose(asg Assignment, findings []finding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", asg.Task)
	fmt.Fprintf(&b, "Prepared by: %s\n", a.cfg.Role)
	fmt.Fprintf(&b, "Deliverable: %s\n", strings.TrimSpace(asg.ExpectedOutput))
	if asg.Context != "" {
		fmt.Fprintf(&b, "\nBuilds on %d preceding task(s).\n", strings.Count(asg.Context, "\n\n")+1)
	}
	if len(findings) > 0 {
		b.WriteString("\n## Findings\n")
		for _, f := range findings {
			fmt.Fprintf(&b, "### %s\n%s\n", f.Tool, f.Payload)
		}
	}
	fmt.Fprintf(&b, "\n## Brief\n%s\n", strings.TrimSpace(asg.Description))
	return b.String()
}
