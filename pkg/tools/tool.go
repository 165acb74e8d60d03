// Package tools provides the capability surface agents may invoke. Every
// tool is an opaque named function behind a uniform interface; the
// implementations here are deterministic simulators returning templated JSON
// rather than real integrations.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// Tool is a single named capability. Invoke receives opaque structured
// arguments and returns an opaque JSON payload.
type Tool interface {
	Name() string
	Description() string
	Invoke(ctx context.Context, args map[string]any) (string, error)
}

// Registry holds available tools, preserving registration order so agents
// consult their capabilities deterministically.
type Registry struct {
	names []string
	tools map[string]Tool
}

// NewRegistry creates a registry pre-loaded with the given tools.
func NewRegistry(ts ...Tool) (*Registry, error) {
	r := &Registry{tools: make(map[string]Tool)}
	for _, t := range ts {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a tool. Registering the same name twice is an error.
func (r *Registry) Register(t Tool) error {
	if _, exists := r.tools[t.Name()]; exists {
		return fmt.Errorf("tool %q already registered", t.Name())
	}
	r.names = append(r.names, t.Name())
	r.tools[t.Name()] = t
	return nil
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.names)
}

// Invoke runs a tool by name.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (string, error) {
	t, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("unknown tool: %s", name)
	}
	return t.Invoke(ctx, args)
}

// All returns every known stub tool, one instance each. The set mirrors the
// capabilities of the six marketing department agents.
func All() []Tool {
	return []Tool{
		WebSearch{}, SocialSentiment{}, CompetitorMonitor{}, GoogleTrends{},
		CRMConnector{}, CustomerAnalytics{}, SegmentationAlgorithm{},
		ContentGenerator{}, BrandGuidelinesChecker{}, MultilingualTranslator{},
		EmailPlatform{}, SMSGateway{}, SocialPublisher{},
		MetricsTracker{}, AttributionModeler{}, ROICalculator{},
		RegulatoryDatabase{}, ComplianceScanner{}, RiskScoring{},
	}
}

// marshal renders a tool payload as indented JSON. Tool payloads are built
// from plain maps and slices, so an encode failure is a programming error.
func marshal(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}
	return string(b)
}

// str pulls a string argument, falling back to a default.
func str(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}
