// Package redact scrubs secrets from tool parameters and free text before
// they are persisted to action logs or included in prompts.
package redact

import (
	"log/slog"
	"regexp"
	"strings"
)

// pattern pairs a regex with its replacement.
type pattern struct {
	name        string
	expr        string
	replacement string
}

// builtinPatterns cover the secret shapes that show up in expert calls:
// bearer tokens in params, API keys pasted into messages, inline
// credentials in URLs.
var builtinPatterns = []pattern{
	{
		name:        "api_key",
		expr:        `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{16,})["']?`,
		replacement: `"api_key": "__REDACTED_API_KEY__"`,
	},
	{
		name:        "password",
		expr:        `(?i)(?:password|passwd|pwd)["']?\s*[:=]\s*["']?([^"'\s\n]{4,})["']?`,
		replacement: `"password": "__REDACTED_PASSWORD__"`,
	},
	{
		name:        "bearer_token",
		expr:        `(?i)bearer\s+[A-Za-z0-9_\-\.=]{16,}`,
		replacement: `Bearer __REDACTED_TOKEN__`,
	},
	{
		name:        "token_field",
		expr:        `(?i)(?:token|secret)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{16,})["']?`,
		replacement: `"token": "__REDACTED_TOKEN__"`,
	},
	{
		name:        "url_credentials",
		expr:        `(\w+)://[^/\s:@]+:[^/\s:@]+@`,
		replacement: `$1://__REDACTED_CREDENTIALS__@`,
	},
	{
		name:        "slack_token",
		expr:        `xox[baprs]-[A-Za-z0-9-]{10,72}`,
		replacement: `__REDACTED_SLACK_TOKEN__`,
	},
}

// sensitiveKeys are parameter names whose values are dropped outright,
// regardless of shape.
var sensitiveKeys = map[string]bool{
	"password":      true,
	"passwd":        true,
	"token":         true,
	"api_key":       true,
	"apikey":        true,
	"secret":        true,
	"authorization": true,
	"session_token": true,
	"access_token":  true,
	"refresh_token": true,
}

type compiledPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Redactor applies key- and pattern-based scrubbing. Created once at
// startup; safe for concurrent use.
type Redactor struct {
	patterns []*compiledPattern
}

// New compiles the builtin patterns. Invalid patterns are logged and
// skipped rather than failing startup.
func New() *Redactor {
	r := &Redactor{}
	for _, p := range builtinPatterns {
		compiled, err := regexp.Compile(p.expr)
		if err != nil {
			slog.Error("Failed to compile redaction pattern, skipping",
				"pattern", p.name, "error", err)
			continue
		}
		r.patterns = append(r.patterns, &compiledPattern{
			name:        p.name,
			regex:       compiled,
			replacement: p.replacement,
		})
	}
	return r
}

// String scrubs secret shapes from free text.
func (r *Redactor) String(s string) string {
	if s == "" {
		return s
	}
	for _, p := range r.patterns {
		s = p.regex.ReplaceAllString(s, p.replacement)
	}
	return s
}

// Params returns a scrubbed deep copy of tool parameters. Values under
// sensitive keys are replaced wholesale; remaining string values get the
// pattern sweep. The input map is never mutated.
func (r *Redactor) Params(params map[string]interface{}) map[string]interface{} {
	if params == nil {
		return nil
	}
	out := make(map[string]interface{}, len(params))
	for k, v := range params {
		if sensitiveKeys[strings.ToLower(k)] {
			out[k] = "__REDACTED__"
			continue
		}
		out[k] = r.value(v)
	}
	return out
}

func (r *Redactor) value(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return r.String(val)
	case map[string]interface{}:
		return r.Params(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = r.value(item)
		}
		return out
	default:
		return v
	}
}
