package tools

import (
	"context"
	"fmt"
	"strings"
)

// ContentGenerator simulates marketing copy generation.
type ContentGenerator struct{}

func (ContentGenerator) Name() string        { return "content_generator" }
func (ContentGenerator) Description() string { return "Generate marketing content from a creative brief" }

func (ContentGenerator) Invoke(_ context.Context, args map[string]any) (string, error) {
	contentType := str(args, "content_type", "email")
	brief := str(args, "brief", "campaign")
	tone := str(args, "tone", "professional")
	return marshal(map[string]any{
		"content_type": contentType,
		"tone":         tone,
		"generated":    fmt.Sprintf("%s %s copy: %s", tone, contentType, brief),
	}), nil
}

// BrandGuidelinesChecker simulates a brand compliance check on content.
type BrandGuidelinesChecker struct{}

func (BrandGuidelinesChecker) Name() string        { return "brand_guidelines_checker" }
func (BrandGuidelinesChecker) Description() string { return "Check content against ABank brand guidelines" }

func (BrandGuidelinesChecker) Invoke(_ context.Context, _ map[string]any) (string, error) {
	return marshal(map[string]any{
		"compliance_score": 0.95,
		"status":           "approved",
		"notes":            []string{"tone on brand", "logo usage correct"},
	}), nil
}

// MultilingualTranslator simulates translation into South African languages.
type MultilingualTranslator struct{}

func (MultilingualTranslator) Name() string        { return "multilingual_translator" }
func (MultilingualTranslator) Description() string { return "Translate content into South African languages" }

func (MultilingualTranslator) Invoke(_ context.Context, args map[string]any) (string, error) {
	langs := str(args, "target_languages", "zu,xh,af")
	out := make(map[string]string)
	for _, lang := range strings.Split(langs, ",") {
		lang = strings.TrimSpace(lang)
		if lang == "" {
			continue
		}
		out[lang] = fmt.Sprintf("[%s translation]", lang)
	}
	return marshal(out), nil
}
