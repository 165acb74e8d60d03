package marketing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel is a scripted llms.Model that records every prompt it answers.
type fakeModel struct {
	prompts []string
	reply   string
}

func (m *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				m.prompts = append(m.prompts, text.Text)
			}
		}
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.reply}},
	}, nil
}

func (m *fakeModel) Call(_ context.Context, prompt string, _ ...llms.CallOption) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.reply, nil
}

var launchInputs = map[string]string{
	"product_name":    "Youth Digital Savings Account",
	"launch_date":     "2025-03-01",
	"target_regions":  "Gauteng, Western Cape",
	"campaign_budget": "R500,000",
}

func TestRunProductLaunchEndToEnd(t *testing.T) {
	t.Parallel()

	model := &fakeModel{reply: "campaign deliverable"}
	d, err := New(WithModel(model))
	require.NoError(t, err)

	res, err := d.Run(context.Background(), ProductLaunch, launchInputs)
	require.NoError(t, err)

	// One model invocation per task, in dependency order.
	require.Len(t, model.prompts, 6)
	require.Equal(t, []string{
		"product_launch_market_analysis",
		"product_launch_segmentation",
		"product_launch_content_strategy",
		"product_launch_compliance_review",
		"product_launch_execution_plan",
		"product_launch_performance_monitoring",
	}, res.Order)

	require.Equal(t, "campaign deliverable", res.Final)
	require.Len(t, res.Outputs, 6)
	for _, name := range res.Order {
		require.NotEmpty(t, res.Outputs[name].Output, name)
	}

	// Kickoff inputs reached the task templates.
	require.Contains(t, model.prompts[0], "Youth Digital Savings Account")
	require.Contains(t, model.prompts[0], "2025-03-01")
}

func TestRunProductLaunchOffline(t *testing.T) {
	t.Parallel()

	// Without a model every agent composes its deliverable from tool
	// findings, so the whole workflow is runnable offline.
	d, err := New()
	require.NoError(t, err)

	res, err := d.Run(context.Background(), ProductLaunch, launchInputs)
	require.NoError(t, err)
	require.Len(t, res.Order, 6)
	require.Contains(t, res.Final, "product_launch_performance_monitoring")
}

func TestAllWorkflowsBuildAndRun(t *testing.T) {
	t.Parallel()

	cases := []struct {
		id     WorkflowID
		inputs map[string]string
		tasks  int
	}{
		{ProductLaunch, launchInputs, 6},
		{RealTimeResponse, map[string]string{
			"monitoring_priorities": "competitor_rates",
			"alert_criteria":        "high",
		}, 5},
		{PersonalizedJourney, map[string]string{
			"analysis_date":         "2025-06-15",
			"focus_segments":        "high_value",
			"personalization_depth": "segment",
		}, 4},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.id), func(t *testing.T) {
			t.Parallel()
			d, err := New()
			require.NoError(t, err)

			res, err := d.Run(context.Background(), tc.id, tc.inputs)
			require.NoError(t, err)
			require.Len(t, res.Order, tc.tasks)
			require.Equal(t, string(tc.id), res.Crew)
		})
	}
}

func TestValidateInputs(t *testing.T) {
	t.Parallel()

	t.Run("MissingRequiredFields", func(t *testing.T) {
		t.Parallel()
		err := ValidateInputs(ProductLaunch, map[string]string{})
		var ie *InputError
		require.ErrorAs(t, err, &ie)
		require.Equal(t, ProductLaunch, ie.Workflow)
		require.Len(t, ie.Problems, 2)
	})

	t.Run("BadLaunchDate", func(t *testing.T) {
		t.Parallel()
		err := ValidateInputs(ProductLaunch, map[string]string{
			"product_name": "x",
			"launch_date":  "01/03/2025",
		})
		require.ErrorContains(t, err, "YYYY-MM-DD")
	})

	t.Run("UnknownWorkflow", func(t *testing.T) {
		t.Parallel()
		err := ValidateInputs(WorkflowID("nope"), nil)
		require.ErrorContains(t, err, "unknown workflow")
	})

	t.Run("DefaultsPass", func(t *testing.T) {
		t.Parallel()
		for _, id := range Workflows() {
			require.NoError(t, ValidateInputs(id, DefaultInputs(id)), string(id))
		}
	})
}

func TestRunRejectsInvalidInputsBeforeExecution(t *testing.T) {
	t.Parallel()

	model := &fakeModel{reply: "never used"}
	d, err := New(WithModel(model))
	require.NoError(t, err)

	_, err = d.Run(context.Background(), ProductLaunch, map[string]string{
		"product_name": "Youth Digital Savings Account",
	})
	var ie *InputError
	require.ErrorAs(t, err, &ie)
	require.Empty(t, model.prompts)
}

func TestParseWorkflowID(t *testing.T) {
	t.Parallel()

	id, err := ParseWorkflowID("real_time_response")
	require.NoError(t, err)
	require.Equal(t, RealTimeResponse, id)

	_, err = ParseWorkflowID("quarterly_report")
	require.Error(t, err)
}

func TestCrewRejectsUnknownWorkflow(t *testing.T) {
	t.Parallel()

	d, err := New()
	require.NoError(t, err)
	_, err = d.Crew(WorkflowID("nope"))
	require.Error(t, err)
}
