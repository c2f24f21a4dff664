package oracle

import "strings"

// RenderTemplate substitutes {{TOKEN}} placeholders in a prompt template.
// Tokens are replaced literally; an unknown placeholder in the template is
// left as-is, and braces in the values are not reinterpreted.
func RenderTemplate(tmpl string, vars map[string]string) string {
	if len(vars) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
