package i18next_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18next/pkg/i18next"
)

func TestInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		vars     i18next.M
		expected string
	}{
		{
			name:     "no variables",
			template: "Hello, World!",
			vars:     nil,
			expected: "Hello, World!",
		},
		{
			name:     "mustache placeholder",
			template: "Hello, {{name}}!",
			vars:     i18next.M{"name": "John"},
			expected: "Hello, John!",
		},
		{
			name:     "underscore placeholder",
			template: "Hello, __name__!",
			vars:     i18next.M{"name": "John"},
			expected: "Hello, John!",
		},
		{
			name:     "both styles",
			template: "{{greeting}}, __name__! You have {{count}} messages.",
			vars:     i18next.M{"greeting": "Hi", "name": "Alice", "count": 5},
			expected: "Hi, Alice! You have 5 messages.",
		},
		{
			name:     "missing variable remains unchanged",
			template: "Hello, {{name}}! Your ID is {{id}}.",
			vars:     i18next.M{"name": "Bob"},
			expected: "Hello, Bob! Your ID is {{id}}.",
		},
		{
			name:     "float values",
			template: "Your balance is ${{amount}}.",
			vars:     i18next.M{"amount": 123.45},
			expected: "Your balance is $123.45.",
		},
		{
			name:     "boolean values are ignored",
			template: "Feature enabled: {{enabled}}",
			vars:     i18next.M{"enabled": true},
			expected: "Feature enabled: {{enabled}}",
		},
		{
			name:     "nil values are ignored",
			template: "Value: {{val}}",
			vars:     i18next.M{"val": nil},
			expected: "Value: {{val}}",
		},
		{
			name:     "maps are ignored",
			template: "Value: {{val}}",
			vars:     i18next.M{"val": map[string]any{"a": 1}},
			expected: "Value: {{val}}",
		},
		{
			name:     "repeated placeholders",
			template: "{{name}} is here. Hello, __name__!",
			vars:     i18next.M{"name": "Charlie"},
			expected: "Charlie is here. Hello, Charlie!",
		},
		{
			name:     "names with underscores",
			template: "User {{user_name}} has {{item_count}} items",
			vars:     i18next.M{"user_name": "Dave", "item_count": 10},
			expected: "User Dave has 10 items",
		},
		{
			name:     "variables apply in name order",
			template: "{{a}}",
			vars:     i18next.M{"a": "{{b}}", "b": "B"},
			expected: "B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, i18next.Interpolate(tt.template, tt.vars))
		})
	}
}
