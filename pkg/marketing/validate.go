package marketing

import (
	"fmt"
	"strings"
	"time"
)

// InputError reports caller-supplied workflow inputs that are missing or
// malformed. It is raised before any task executes.
type InputError struct {
	Workflow WorkflowID
	Problems []string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid inputs for workflow %s: %s",
		e.Workflow, strings.Join(e.Problems, "; "))
}

const dateLayout = "2006-01-02"

// ValidateInputs checks the required inputs for a workflow before anything
// runs. Extra keys are allowed; they simply feed template substitution.
func ValidateInputs(id WorkflowID, inputs map[string]string) error {
	var problems []string

	require := func(key string) {
		if inputs[key] == "" {
			problems = append(problems, fmt.Sprintf("missing required field: %s", key))
		}
	}

	switch id {
	case ProductLaunch:
		require("product_name")
		require("launch_date")
		if v := inputs["launch_date"]; v != "" {
			if _, err := time.Parse(dateLayout, v); err != nil {
				problems = append(problems, "invalid launch_date format, use YYYY-MM-DD")
			}
		}
	case RealTimeResponse:
		require("monitoring_priorities")
	case PersonalizedJourney:
		require("analysis_date")
		if v := inputs["analysis_date"]; v != "" {
			if _, err := time.Parse(dateLayout, v); err != nil {
				problems = append(problems, "invalid analysis_date format, use YYYY-MM-DD")
			}
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown workflow: %q", id))
	}

	if len(problems) > 0 {
		return &InputError{Workflow: id, Problems: problems}
	}
	return nil
}

// DefaultInputs returns the batch-mode defaults for a workflow, mirroring
// the parameters campaigns are usually launched with.
func DefaultInputs(id WorkflowID) map[string]string {
	switch id {
	case ProductLaunch:
		return map[string]string{
			"product_name":    "Youth Digital Savings Account",
			"launch_date":     time.Now().Format(dateLayout),
			"target_regions":  "Gauteng, Western Cape, KZN",
			"campaign_budget": "R500,000",
		}
	case RealTimeResponse:
		return map[string]string{
			"monitoring_priorities": "competitor_rates,economic_events,social_trends",
			"alert_criteria":        "medium",
		}
	case PersonalizedJourney:
		return map[string]string{
			"analysis_date":         time.Now().Format(dateLayout),
			"focus_segments":        "high_value,at_risk,dormant",
			"personalization_depth": "individual",
		}
	default:
		return nil
	}
}
