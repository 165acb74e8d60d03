package tools

import "context"

// CRMConnector simulates read access to the bank's CRM.
type CRMConnector struct{}

func (CRMConnector) Name() string        { return "crm_connector" }
func (CRMConnector) Description() string { return "Query customer records and engagement history from the CRM" }

func (CRMConnector) Invoke(_ context.Context, args map[string]any) (string, error) {
	cohort := str(args, "cohort", "all_active")
	return marshal(map[string]any{
		"cohort":          cohort,
		"customers":       1248000,
		"active_90d":      911000,
		"digital_share":   0.73,
		"avg_products":    2.4,
		"consent_optins":  map[string]any{"email": 0.81, "sms": 0.77, "push": 0.54},
	}), nil
}

// CustomerAnalytics simulates behavioural analytics over customer data.
type CustomerAnalytics struct{}

func (CustomerAnalytics) Name() string        { return "customer_analytics" }
func (CustomerAnalytics) Description() string { return "Compute behavioural metrics for a customer cohort" }

func (CustomerAnalytics) Invoke(_ context.Context, args map[string]any) (string, error) {
	cohort := str(args, "cohort", "all_active")
	return marshal(map[string]any{
		"cohort": cohort,
		"metrics": map[string]any{
			"avg_monthly_logins": 14.2,
			"savings_propensity": 0.42,
			"churn_risk_high":    0.08,
			"cross_sell_ready":   0.19,
		},
	}), nil
}

// SegmentationAlgorithm simulates clustering customers into segments.
type SegmentationAlgorithm struct{}

func (SegmentationAlgorithm) Name() string        { return "segmentation_algorithm" }
func (SegmentationAlgorithm) Description() string { return "Cluster customers into actionable marketing segments" }

func (SegmentationAlgorithm) Invoke(_ context.Context, args map[string]any) (string, error) {
	depth := str(args, "depth", "segment")
	return marshal(map[string]any{
		"depth": depth,
		"segments": []map[string]any{
			{"name": "digital_first_youth", "size": 186000, "defining_signal": "mobile-only usage, age 18-25"},
			{"name": "high_value_savers", "size": 94000, "defining_signal": "balance growth > 15% y/y"},
			{"name": "at_risk_dormant", "size": 61000, "defining_signal": "no login in 60 days"},
		},
	}), nil
}
