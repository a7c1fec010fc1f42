package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution with {{.VAR}}",
			input: "api_key_env: {{.LLM_API_KEY}}",
			env:   map[string]string{"LLM_API_KEY": "secret123"},
			want:  "api_key_env: secret123",
		},
		{
			name:  "multiple substitutions in one line",
			input: "endpoint: {{.PROTOCOL}}://{{.HOST}}:{{.PORT}}",
			env: map[string]string{
				"PROTOCOL": "https",
				"HOST":     "llm-0.internal",
				"PORT":     "8000",
			},
			want: "endpoint: https://llm-0.internal:8000",
		},
		{
			name:  "literal ${VAR} is NOT expanded",
			input: "slug: list.groceries_${WEEK}",
			env:   map[string]string{"WEEK": "34"},
			want:  "slug: list.groceries_${WEEK}",
		},
		{
			name:  "literal dollar preserved",
			input: "password: p@ss$word",
			env:   map[string]string{},
			want:  "password: p@ss$word",
		},
		{
			name:  "missing variable expands to empty",
			input: "endpoint: {{.MISSING_VAR}}",
			env:   map[string]string{},
			want:  "endpoint: ",
		},
		{
			name:  "variables in nested YAML structure",
			input: "services:\n  lists: {{.LISTS_URL}}\n  calendar: {{.CALENDAR_URL}}",
			env: map[string]string{
				"LISTS_URL":    "http://localhost:8101",
				"CALENDAR_URL": "http://localhost:8102",
			},
			want: "services:\n  lists: http://localhost:8101\n  calendar: http://localhost:8102",
		},
		{
			name:  "no substitution when no variables",
			input: "static: value",
			env:   map[string]string{"UNUSED": "value"},
			want:  "static: value",
		},
		{
			name:  "value with equals sign",
			input: "token: {{.SESSION_TOKEN}}",
			env:   map[string]string{"SESSION_TOKEN": "a=b=c"},
			want:  "token: a=b=c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(result))
		})
	}
}

// Malformed template syntax must pass through unchanged so the YAML parser
// can handle the content (or fail with a clearer error message).
func TestExpandEnvMalformedTemplates(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "unclosed template",
			input: "api_key_env: {{.LLM_API_KEY",
		},
		{
			name:  "only opening braces",
			input: "api_key_env: {{",
		},
		{
			name:  "variable without leading dot",
			input: "api_key_env: {{LLM_API_KEY}}",
		},
		{
			name:  "undefined function in pipeline",
			input: "api_key_env: {{.LLM_API_KEY | upper}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LLM_API_KEY", "should-not-appear")

			result := ExpandEnv([]byte(tt.input))

			assert.Equal(t, tt.input, string(result),
				"malformed template should be passed through unchanged")
			assert.NotContains(t, string(result), "should-not-appear")
		})
	}
}

func TestExpandEnvPreservesOriginalWhenNoVariables(t *testing.T) {
	input := `
# This is a comment
server:
  port: 8080
episodes:
  timeout_minutes:
    chat: 30
`

	result := ExpandEnv([]byte(input))
	assert.Equal(t, input, string(result))
}

func TestExpandEnvWithEmptyInput(t *testing.T) {
	result := ExpandEnv([]byte(""))
	assert.Equal(t, "", string(result))
}
