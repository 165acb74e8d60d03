package tools

import "context"

// RegulatoryDatabase simulates lookups against banking regulation.
type RegulatoryDatabase struct{}

func (RegulatoryDatabase) Name() string        { return "regulatory_database" }
func (RegulatoryDatabase) Description() string { return "Look up applicable South African banking regulations" }

func (RegulatoryDatabase) Invoke(_ context.Context, args map[string]any) (string, error) {
	topic := str(args, "topic", "marketing")
	return marshal(map[string]any{
		"topic": topic,
		"applicable": []map[string]any{
			{"regulation": "FAIS", "clause": "General Code s14", "summary": "advertising must be factually correct"},
			{"regulation": "POPIA", "clause": "s69", "summary": "direct marketing requires consent"},
			{"regulation": "Banks Act", "clause": "reg 47", "summary": "deposit product disclosures"},
		},
	}), nil
}

// ComplianceScanner simulates an automated compliance scan of content.
type ComplianceScanner struct{}

func (ComplianceScanner) Name() string        { return "compliance_scanner" }
func (ComplianceScanner) Description() string { return "Scan campaign content for regulatory breaches" }

func (ComplianceScanner) Invoke(_ context.Context, _ map[string]any) (string, error) {
	return marshal(map[string]any{
		"violations": []string{},
		"warnings":   []string{"include effective-rate disclosure near headline rate"},
		"verdict":    "pass_with_amendments",
	}), nil
}

// RiskScoring simulates reputational and regulatory risk scoring.
type RiskScoring struct{}

func (RiskScoring) Name() string        { return "risk_scoring" }
func (RiskScoring) Description() string { return "Score the regulatory and reputational risk of a campaign" }

func (RiskScoring) Invoke(_ context.Context, args map[string]any) (string, error) {
	campaign := str(args, "campaign", "untitled")
	return marshal(map[string]any{
		"campaign":   campaign,
		"risk_score": 0.18,
		"band":       "low",
		"drivers":    []string{"rate claim prominence", "youth audience targeting"},
	}), nil
}
