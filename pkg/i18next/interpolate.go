package i18next

import (
	"strings"
)

// Interpolate replaces "{{name}}" and "__name__" placeholders with the string
// or number values in vars. Values of other types are ignored and their
// placeholders left unchanged. Variables are applied in name order.
//
// Example:
//
//	template: "Hello, {{name}}! You have __count__ messages."
//	vars:     M{"name": "John", "count": 5}
//	returns:  "Hello, John! You have 5 messages."
func Interpolate(template string, vars M) string {
	if len(vars) == 0 || !strings.Contains(template, "{{") && !strings.Contains(template, "__") {
		return template
	}

	result := template
	for _, name := range sortedKeys(vars) {
		value, ok := interpolationValue(vars[name])
		if !ok {
			continue
		}
		result = strings.ReplaceAll(result, "__"+name+"__", value)
		result = strings.ReplaceAll(result, "{{"+name+"}}", value)
	}

	return result
}

func interpolationValue(v any) (string, bool) {
	if _, isBool := v.(bool); isBool {
		return "", false
	}
	return scalarString(v)
}
