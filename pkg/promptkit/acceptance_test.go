package promptkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/randalmurphal/promptkit/pkg/promptkit"
)

// TestAcceptance_RenderContract exercises the documented rendering
// contract end to end through the facade.
func TestAcceptance_RenderContract(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		vars     map[string]any
		expected string
	}{
		{
			name:     "marker-free template is identity",
			input:    "plain text, no markers at all",
			vars:     map[string]any{"unused": 1},
			expected: "plain text, no markers at all",
		},
		{
			name:     "absent path renders empty",
			input:    "[{{missing}}]",
			vars:     map[string]any{},
			expected: "[]",
		},
		{
			name:     "scalar renders its string form",
			input:    "{{count}}",
			vars:     map[string]any{"count": 42},
			expected: "42",
		},
		{
			name:     "truthy conditional keeps body",
			input:    "{{#if ok}}X{{/if}}",
			vars:     map[string]any{"ok": "yes"},
			expected: "X",
		},
		{
			name:     "falsy conditional drops body",
			input:    "{{#if ok}}X{{/if}}",
			vars:     map[string]any{"ok": 0},
			expected: "",
		},
		{
			name:     "empty sequence is truthy",
			input:    "{{#if items}}X{{/if}}",
			vars:     map[string]any{"items": []any{}},
			expected: "X",
		},
		{
			name:     "loop over mappings flattens element fields",
			input:    "{{#each items}}{{name}}{{/each}}",
			vars:     map[string]any{"items": []any{map[string]any{"name": "a"}, map[string]any{"name": "b"}}},
			expected: "ab",
		},
		{
			name:     "loop over scalars binds item",
			input:    "{{#each items}}{{item}}{{/each}}",
			vars:     map[string]any{"items": []any{1, 2, 3}},
			expected: "123",
		},
		{
			name:  "conditional inside loop sees per-item scope",
			input: "{{#each groups}}{{#if active}}{{label}}{{/if}}{{/each}}",
			vars: map[string]any{"groups": []any{
				map[string]any{"active": true, "label": "X"},
				map[string]any{"active": false, "label": "Y"},
			}},
			expected: "X",
		},
		{
			name:     "non-sequence loop value renders nothing",
			input:    "{{#each items}}{{x}}{{/each}}",
			vars:     map[string]any{"items": "not-a-list"},
			expected: "",
		},
		{
			name:     "dot path walks nested mappings",
			input:    "{{agent.model.id}}",
			vars:     map[string]any{"agent": map[string]any{"model": map[string]any{"id": "m-1"}}},
			expected: "m-1",
		},
		{
			name:     "unterminated block stays literal",
			input:    "{{#if cond}}no closer",
			vars:     map[string]any{"cond": true},
			expected: "{{#if cond}}no closer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, promptkit.Render(tt.input, tt.vars))
		})
	}
}

// TestAcceptance_InputsNotMutated tests that rendering leaves the caller's
// context untouched.
func TestAcceptance_InputsNotMutated(t *testing.T) {
	vars := map[string]any{
		"name":  "outer",
		"items": []any{map[string]any{"name": "inner"}},
	}

	out := promptkit.Render("{{name}}:{{#each items}}{{name}}{{/each}}:{{name}}", vars)
	assert.Equal(t, "outer:inner:outer", out)

	assert.Equal(t, "outer", vars["name"])
	elem := vars["items"].([]any)[0].(map[string]any)
	assert.Len(t, elem, 1)
	assert.Equal(t, "inner", elem["name"])
}
