package render

import "strings"

// RenderTokens substitutes {{TOKEN}} placeholders in a template string.
// Used for mail bodies; unknown tokens in the template are left as-is so
// a typo shows up in the output instead of vanishing.
func RenderTokens(template string, data map[string]string) string {
	pairs := make([]string, 0, len(data)*2)
	for token, value := range data {
		pairs = append(pairs, "{{"+token+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
