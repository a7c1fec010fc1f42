package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig returns a config that passes ValidateAll, for mutation
// in the table tests below.
func validTestConfig() *Config {
	cfg := GetBuiltinConfig()
	cfg.Auth.ServiceURL = "http://localhost:8100"
	cfg.Services.Lists = "http://localhost:8101"
	cfg.LLM.DefaultModel = "test-model"
	cfg.LLM.Backends["primary"] = &LLMBackendConfig{Endpoint: "http://localhost:8000"}
	cfg.LLM.Chain = []string{"primary"}
	return cfg
}

func TestValidateAllAcceptsValidConfig(t *testing.T) {
	cfg := validTestConfig()
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateAllRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantMsg: "port",
		},
		{
			name:    "service URL without scheme",
			mutate:  func(c *Config) { c.Services.Lists = "localhost:8101" },
			wantMsg: "lists",
		},
		{
			name:    "auth URL missing outside local dev",
			mutate:  func(c *Config) { c.Auth.ServiceURL = "" },
			wantMsg: "service_url",
		},
		{
			name:    "bad timezone",
			mutate:  func(c *Config) { c.Auth.DefaultTimezone = "Mars/Olympus" },
			wantMsg: "default_timezone",
		},
		{
			name:    "select threshold above one",
			mutate:  func(c *Config) { c.Dispatcher.SelectThreshold = 1.2 },
			wantMsg: "select_threshold",
		},
		{
			name: "exclusive below select",
			mutate: func(c *Config) {
				c.Dispatcher.SelectThreshold = 0.9
				c.Dispatcher.ExclusiveThreshold = 0.6
			},
			wantMsg: "exclusive_threshold",
		},
		{
			name: "per-expert deadline above overall",
			mutate: func(c *Config) {
				c.Dispatcher.PerExpertDeadline = 20 * time.Second
			},
			wantMsg: "per_expert_deadline",
		},
		{
			name: "unknown episode context type",
			mutate: func(c *Config) {
				c.Episodes.TimeoutMinutes["gaming"] = 15
			},
			wantMsg: "unknown context type",
		},
		{
			name: "zero episode timeout",
			mutate: func(c *Config) {
				c.Episodes.TimeoutMinutes["chat"] = 0
			},
			wantMsg: "timeout_minutes",
		},
		{
			name:    "zero recall k",
			mutate:  func(c *Config) { c.Memory.RecallK = 0 },
			wantMsg: "recall_k",
		},
		{
			name: "no llm backends",
			mutate: func(c *Config) {
				c.LLM.Backends = map[string]*LLMBackendConfig{}
				c.LLM.Chain = nil
			},
			wantMsg: "backends",
		},
		{
			name:    "chain references unknown backend",
			mutate:  func(c *Config) { c.LLM.Chain = []string{"ghost"} },
			wantMsg: "ghost",
		},
		{
			name:    "backend without model anywhere",
			mutate:  func(c *Config) { c.LLM.DefaultModel = "" },
			wantMsg: "model",
		},
		{
			name:    "max_tokens above cap",
			mutate:  func(c *Config) { c.LLM.MaxTokens = 5000 },
			wantMsg: "max_tokens",
		},
		{
			name:    "temperature out of range",
			mutate:  func(c *Config) { c.LLM.Temperature = 2.5 },
			wantMsg: "temperature",
		},
		{
			name:    "zero breaker failures",
			mutate:  func(c *Config) { c.Outbound.BreakerFailures = 0 },
			wantMsg: "breaker_failures",
		},
		{
			name: "retry base above max",
			mutate: func(c *Config) {
				c.Outbound.RetryBase = 10 * time.Second
			},
			wantMsg: "retry_base",
		},
		{
			name:    "zero retention days",
			mutate:  func(c *Config) { c.Retention.EpisodeRetentionDays = 0 },
			wantMsg: "episode_retention_days",
		},
		{
			name: "expert confidence out of range",
			mutate: func(c *Config) {
				c.Experts["birthday"] = &ExpertSettings{DefaultConfidence: Float64Ptr(1.3)}
			},
			wantMsg: "default_confidence",
		},
		{
			name:    "slack enabled without channel",
			mutate:  func(c *Config) { c.Slack.Enabled = true },
			wantMsg: "channel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateSlackRequiresTokenEnv(t *testing.T) {
	cfg := validTestConfig()
	cfg.Slack.Enabled = true
	cfg.Slack.Channel = "#steward-ops"
	cfg.Slack.TokenEnv = "STEWARD_TEST_SLACK_TOKEN"

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STEWARD_TEST_SLACK_TOKEN")

	t.Setenv("STEWARD_TEST_SLACK_TOKEN", "xoxb-test")
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateLLMBackendAPIKeyEnv(t *testing.T) {
	cfg := validTestConfig()
	cfg.LLM.Backends["primary"].APIKeyEnv = "STEWARD_TEST_LLM_KEY"

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STEWARD_TEST_LLM_KEY")

	t.Setenv("STEWARD_TEST_LLM_KEY", "sk-test")
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidationErrorFormatting(t *testing.T) {
	err := NewValidationError("llm_backend", "primary", "endpoint", ErrInvalidValue)
	assert.Contains(t, err.Error(), "llm_backend 'primary'")
	assert.Contains(t, err.Error(), "endpoint")
	assert.ErrorIs(t, err, ErrInvalidValue)

	fieldOnly := NewValidationError("server", "", "port", ErrInvalidValue)
	assert.Contains(t, fieldOnly.Error(), "server: field 'port'")
}

func TestEpisodeTimeoutFor(t *testing.T) {
	e := &EpisodeConfig{TimeoutMinutes: map[string]int{"chat": 45}}

	assert.Equal(t, 45*time.Minute, e.TimeoutFor("chat"))
	assert.Equal(t, 120*time.Minute, e.TimeoutFor("development"))
	assert.Equal(t, 60*time.Minute, e.TimeoutFor("planning"))
	assert.Equal(t, 30*time.Minute, e.TimeoutFor("general"))
}
