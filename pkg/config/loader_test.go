package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	configDir := setupTestConfigDir(t)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// File values land where they should.
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://localhost:8101", cfg.Services.Lists)
	assert.Equal(t, "http://localhost:8100", cfg.Auth.ServiceURL)
	assert.Equal(t, "test-model", cfg.LLM.DefaultModel)
	assert.Equal(t, []string{"primary"}, cfg.LLM.Chain)

	// Unset sections keep builtin defaults.
	assert.Equal(t, 0.5, cfg.Dispatcher.SelectThreshold)
	assert.Equal(t, 10*time.Second, cfg.Dispatcher.OverallDeadline)
	assert.Equal(t, 5, cfg.Memory.RecentTurns)
	assert.Equal(t, 24000, cfg.LLM.PromptCharBudget)
	assert.Equal(t, 90, cfg.Retention.EpisodeRetentionDays)

	stats := cfg.Stats()
	assert.Equal(t, 1, stats.LLMBackends)
	assert.Equal(t, 2, stats.Services)
}

func TestInitializeConfigNotFound(t *testing.T) {
	ctx := context.Background()
	_, err := Initialize(ctx, "/nonexistent/directory")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()

	writeConfigFile(t, configDir, "steward.yaml", `server: [not: a: mapping`)

	ctx := context.Background()
	_, err := Initialize(ctx, configDir)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := setupTestConfigDir(t)

	writeConfigFile(t, configDir, "steward.yaml", `
auth:
  service_url: http://localhost:8100
dispatcher:
  select_threshold: 1.5
`)

	ctx := context.Background()
	_, err := Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "select_threshold")
}

func TestFileOverridesKeepUnsetDefaults(t *testing.T) {
	configDir := setupTestConfigDir(t)

	writeConfigFile(t, configDir, "steward.yaml", `
auth:
  service_url: http://localhost:8100
episodes:
  timeout_minutes:
    chat: 45
memory:
  recall_k: 8
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	// Overridden keys take the file value; siblings keep builtins.
	assert.Equal(t, 45*time.Minute, cfg.Episodes.TimeoutFor("chat"))
	assert.Equal(t, 120*time.Minute, cfg.Episodes.TimeoutFor("development"))
	assert.Equal(t, 8, cfg.Memory.RecallK)
	assert.Equal(t, 5, cfg.Memory.RecentTurns)
}

func TestEnvironmentOverrides(t *testing.T) {
	configDir := setupTestConfigDir(t)

	t.Setenv("EXPERT_PARALLEL_DEADLINE_MS", "2500")
	t.Setenv("CIRCUIT_BREAKER_FAILURES", "9")
	t.Setenv("CIRCUIT_BREAKER_COOLDOWN_SEC", "45")
	t.Setenv("EPISODE_TIMEOUT_MINUTES_CHAT", "7")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	assert.Equal(t, 2500*time.Millisecond, cfg.Dispatcher.OverallDeadline)
	assert.Equal(t, 9, cfg.Outbound.BreakerFailures)
	assert.Equal(t, 45*time.Second, cfg.Outbound.BreakerCooldown)
	assert.Equal(t, 7*time.Minute, cfg.Episodes.TimeoutFor("chat"))
}

func TestEnvironmentOverridesInvalidValuesIgnored(t *testing.T) {
	configDir := setupTestConfigDir(t)

	t.Setenv("EXPERT_PARALLEL_DEADLINE_MS", "soon")
	t.Setenv("CIRCUIT_BREAKER_FAILURES", "-2")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Dispatcher.OverallDeadline)
	assert.Equal(t, 5, cfg.Outbound.BreakerFailures)
}

func TestLLMEndpointFromEnvironment(t *testing.T) {
	configDir := t.TempDir()

	// No llm-providers.yaml at all: the chain comes from the environment.
	writeConfigFile(t, configDir, "steward.yaml", `
auth:
  service_url: http://localhost:8100
`)

	t.Setenv("LLM_PRIMARY_ENDPOINT", "http://llm-0.internal:8000")
	t.Setenv("LLM_FALLBACK_ENDPOINTS", "http://llm-1.internal:8000, http://llm-2.internal:8000")
	t.Setenv("LLM_DEFAULT_MODEL", "env-model")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"primary", "fallback-1", "fallback-2"}, cfg.LLM.Chain)
	assert.Equal(t, "env-model", cfg.LLM.DefaultModel)

	backends, err := cfg.LLM.ChainBackends()
	require.NoError(t, err)
	require.Len(t, backends, 3)
	assert.Equal(t, "http://llm-0.internal:8000", backends[0].Endpoint)
	assert.Equal(t, "http://llm-2.internal:8000", backends[2].Endpoint)
}

func TestLLMEnvironmentOverridesFileChain(t *testing.T) {
	configDir := setupTestConfigDir(t)

	t.Setenv("LLM_PRIMARY_ENDPOINT", "http://llm-9.internal:8000")
	t.Setenv("LLM_DEFAULT_MODEL", "env-model")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	// The environment chain replaces the file chain entirely; file-defined
	// backends stay registered but unused.
	assert.Equal(t, []string{"primary"}, cfg.LLM.Chain)
	assert.Equal(t, "http://llm-9.internal:8000", cfg.LLM.Backends["primary"].Endpoint)
}

func TestSingleBackendNeedsNoChain(t *testing.T) {
	configDir := t.TempDir()

	writeConfigFile(t, configDir, "steward.yaml", `
auth:
  service_url: http://localhost:8100
`)
	writeConfigFile(t, configDir, "llm-providers.yaml", `
llm_backends:
  solo:
    endpoint: http://localhost:8000
    model: test-model
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"solo"}, cfg.LLM.Chain)
}

func TestLocalDevModeSkipsAuthURL(t *testing.T) {
	configDir := t.TempDir()

	writeConfigFile(t, configDir, "steward.yaml", `{}`)
	writeConfigFile(t, configDir, "llm-providers.yaml", testLLMProvidersYAML)

	t.Setenv("LOCAL_DEV_MODE", "true")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	assert.True(t, cfg.Auth.LocalDevMode)
	assert.Empty(t, cfg.Auth.ServiceURL)
}

func TestExpertSettingsFromYAML(t *testing.T) {
	configDir := setupTestConfigDir(t)

	writeConfigFile(t, configDir, "steward.yaml", `
auth:
  service_url: http://localhost:8100
experts:
  birthday:
    enabled: false
  planning:
    default_confidence: 0.4
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	require.Contains(t, cfg.Experts, "birthday")
	require.NotNil(t, cfg.Experts["birthday"].Enabled)
	assert.False(t, *cfg.Experts["birthday"].Enabled)
	require.Contains(t, cfg.Experts, "planning")
	require.NotNil(t, cfg.Experts["planning"].DefaultConfidence)
	assert.Equal(t, 0.4, *cfg.Experts["planning"].DefaultConfidence)
}

func TestEnvironmentVariableInterpolationInConfig(t *testing.T) {
	configDir := t.TempDir()

	writeConfigFile(t, configDir, "steward.yaml", `
auth:
  service_url: "{{.TEST_AUTH_URL}}"
services:
  lists: "{{.TEST_LISTS_URL}}"
`)
	writeConfigFile(t, configDir, "llm-providers.yaml", testLLMProvidersYAML)

	t.Setenv("TEST_AUTH_URL", "http://auth.internal:8100")
	t.Setenv("TEST_LISTS_URL", "http://lists.internal:8101")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	assert.Equal(t, "http://auth.internal:8100", cfg.Auth.ServiceURL)
	assert.Equal(t, "http://lists.internal:8101", cfg.Services.Lists)
}

func TestChainBackendsUnknownName(t *testing.T) {
	llm := &LLMConfig{
		Chain: []string{"primary", "ghost"},
		Backends: map[string]*LLMBackendConfig{
			"primary": {Endpoint: "http://localhost:8000", Model: "m"},
		},
	}

	_, err := llm.ChainBackends()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLLMBackendNotFound)
	assert.Contains(t, err.Error(), "ghost")
}

const testLLMProvidersYAML = `
llm_backends:
  primary:
    endpoint: http://localhost:8000
chain: [primary]
default_model: test-model
`

// setupTestConfigDir writes a minimal valid config pair into a temp dir.
func setupTestConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeConfigFile(t, dir, "steward.yaml", `
server:
  port: 9090
services:
  lists: http://localhost:8101
  calendar: http://localhost:8102
auth:
  service_url: http://localhost:8100
`)
	writeConfigFile(t, dir, "llm-providers.yaml", testLLMProvidersYAML)

	return dir
}

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
	require.NoError(t, err)
}
