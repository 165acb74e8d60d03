package tools

import "context"

// MetricsTracker simulates the campaign metrics pipeline.
type MetricsTracker struct{}

func (MetricsTracker) Name() string        { return "metrics_tracker" }
func (MetricsTracker) Description() string { return "Fetch performance metrics for a campaign" }

func (MetricsTracker) Invoke(_ context.Context, args map[string]any) (string, error) {
	campaign := str(args, "campaign", "untitled")
	return marshal(map[string]any{
		"campaign": campaign,
		"metrics": map[string]any{
			"impressions": 1840000,
			"clicks":      73600,
			"ctr":         0.04,
			"conversions": 5890,
			"cpa_zar":     84.9,
		},
	}), nil
}

// AttributionModeler simulates multi-touch attribution.
type AttributionModeler struct{}

func (AttributionModeler) Name() string        { return "attribution_modeler" }
func (AttributionModeler) Description() string { return "Attribute conversions across marketing touchpoints" }

func (AttributionModeler) Invoke(_ context.Context, args map[string]any) (string, error) {
	model := str(args, "model", "position_based")
	return marshal(map[string]any{
		"model": model,
		"attribution": map[string]any{
			"email":  0.31,
			"social": 0.27,
			"sms":    0.18,
			"search": 0.15,
			"direct": 0.09,
		},
	}), nil
}

// ROICalculator simulates return-on-investment computation.
type ROICalculator struct{}

func (ROICalculator) Name() string        { return "roi_calculator" }
func (ROICalculator) Description() string { return "Compute campaign return on investment" }

func (ROICalculator) Invoke(_ context.Context, args map[string]any) (string, error) {
	campaign := str(args, "campaign", "untitled")
	return marshal(map[string]any{
		"campaign":        campaign,
		"spend_zar":       500000,
		"attributed_revenue_zar": 1420000,
		"roi":             1.84,
		"payback_months":  4.2,
	}), nil
}
