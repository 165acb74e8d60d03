package marketing

import (
	"github.com/pkg/errors"

	"github.com/edzai/abank-marketing-crew/pkg/crew"
)

// WorkflowID names one of the department's campaign workflows.
type WorkflowID string

const (
	// ProductLaunch drives an end-to-end product launch: market analysis
	// through performance monitoring.
	ProductLaunch WorkflowID = "product_launch"

	// RealTimeResponse monitors the market and deploys rapid responses.
	RealTimeResponse WorkflowID = "real_time_response"

	// PersonalizedJourney builds and deploys individualised customer
	// journeys.
	PersonalizedJourney WorkflowID = "personalized_journey"
)

// Workflows lists every runnable workflow.
func Workflows() []WorkflowID {
	return []WorkflowID{ProductLaunch, RealTimeResponse, PersonalizedJourney}
}

// ParseWorkflowID validates a workflow name from external input.
func ParseWorkflowID(s string) (WorkflowID, error) {
	for _, id := range Workflows() {
		if s == string(id) {
			return id, nil
		}
	}
	return "", errors.Errorf("unknown workflow: %q", s)
}

// taskSpec wires one configured task definition to its agent and upstream
// dependencies. Description and expected output come from the task library.
type taskSpec struct {
	name      string
	agent     string
	dependsOn []string
}

// The wiring below is the department's orchestration knowledge: which agent
// owns each task and which preceding outputs feed it.

var productLaunchTasks = []taskSpec{
	{name: "product_launch_market_analysis", agent: "market_intelligence_agent"},
	{name: "product_launch_segmentation", agent: "customer_segmentation_agent",
		dependsOn: []string{"product_launch_market_analysis"}},
	{name: "product_launch_content_strategy", agent: "content_strategy_agent",
		dependsOn: []string{"product_launch_market_analysis", "product_launch_segmentation"}},
	{name: "product_launch_compliance_review", agent: "compliance_risk_agent",
		dependsOn: []string{"product_launch_content_strategy"}},
	{name: "product_launch_execution_plan", agent: "campaign_execution_agent",
		dependsOn: []string{"product_launch_content_strategy", "product_launch_compliance_review"}},
	{name: "product_launch_performance_monitoring", agent: "performance_analytics_agent",
		dependsOn: []string{"product_launch_execution_plan"}},
}

var realTimeResponseTasks = []taskSpec{
	{name: "real_time_market_monitoring", agent: "market_intelligence_agent"},
	{name: "real_time_response_strategy", agent: "content_strategy_agent",
		dependsOn: []string{"real_time_market_monitoring"}},
	{name: "real_time_compliance_check", agent: "compliance_risk_agent",
		dependsOn: []string{"real_time_response_strategy"}},
	{name: "real_time_campaign_deployment", agent: "campaign_execution_agent",
		dependsOn: []string{"real_time_compliance_check"}},
	{name: "real_time_impact_measurement", agent: "performance_analytics_agent",
		dependsOn: []string{"real_time_campaign_deployment"}},
}

var personalizedJourneyTasks = []taskSpec{
	{name: "journey_micro_segmentation", agent: "customer_segmentation_agent"},
	{name: "journey_personalized_content", agent: "content_strategy_agent",
		dependsOn: []string{"journey_micro_segmentation"}},
	{name: "journey_automated_deployment", agent: "campaign_execution_agent",
		dependsOn: []string{"journey_personalized_content"}},
	{name: "journey_engagement_analysis", agent: "performance_analytics_agent",
		dependsOn: []string{"journey_automated_deployment"}},
}

func workflowTasks(id WorkflowID) ([]taskSpec, error) {
	switch id {
	case ProductLaunch:
		return productLaunchTasks, nil
	case RealTimeResponse:
		return realTimeResponseTasks, nil
	case PersonalizedJourney:
		return personalizedJourneyTasks, nil
	default:
		return nil, errors.Errorf("unknown workflow: %q", id)
	}
}

// Crew builds a fresh crew for one workflow: one agent instance per
// distinct role the workflow references, plus its tasks in declared order.
func (d *Department) Crew(id WorkflowID) (*crew.Crew, error) {
	specs, err := workflowTasks(id)
	if err != nil {
		return nil, err
	}

	c := crew.New(string(id), crew.WithLogger(d.logger))

	// Register each referenced agent once, in order of first reference.
	registered := make(map[string]bool)
	for _, spec := range specs {
		if registered[spec.agent] {
			continue
		}
		a, err := d.buildAgent(spec.agent)
		if err != nil {
			return nil, errors.Wrapf(err, "workflow %s", id)
		}
		if err := c.AddWorker(spec.agent, a); err != nil {
			return nil, errors.Wrapf(err, "workflow %s", id)
		}
		registered[spec.agent] = true
	}

	for _, spec := range specs {
		def, ok := d.library.Task(spec.name)
		if !ok {
			return nil, errors.Errorf("workflow %s: task %q not found in config", id, spec.name)
		}
		err := c.AddTask(crew.Task{
			Name:           spec.name,
			Agent:          spec.agent,
			Description:    def.Description,
			ExpectedOutput: def.ExpectedOutput,
			DependsOn:      spec.dependsOn,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "workflow %s", id)
		}
	}

	return c, nil
}
