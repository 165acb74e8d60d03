package config

import (
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// Interpolate substitutes {key} tokens in a template with caller-supplied
// input values. Tokens without a matching input are left untouched so the
// gap stays visible in the rendered text.
func Interpolate(template string, inputs map[string]string) string {
	if len(inputs) == 0 {
		return template
	}
	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		key := strings.Trim(token, "{}")
		if v, ok := inputs[key]; ok {
			return v
		}
		return token
	})
}

// Placeholders lists the distinct {key} tokens present in a template, in
// order of first appearance.
func Placeholders(template string) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			keys = append(keys, m[1])
		}
	}
	return keys
}
