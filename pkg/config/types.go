package config

import (
	"fmt"
	"time"
)

// Config is the fully resolved, validated configuration. Built once by
// Initialize and treated as read-only afterwards.
type Config struct {
	configDir string

	Server     *ServerConfig     `yaml:"server"`
	Services   *ServiceURLs      `yaml:"services"`
	Auth       *AuthConfig       `yaml:"auth"`
	Dispatcher *DispatcherConfig `yaml:"dispatcher"`
	Episodes   *EpisodeConfig    `yaml:"episodes"`
	Memory     *MemoryConfig     `yaml:"memory"`
	LLM        *LLMConfig        `yaml:"llm"`
	Outbound   *OutboundConfig   `yaml:"outbound"`
	Retention  *RetentionConfig  `yaml:"retention"`
	Slack      *SlackConfig      `yaml:"slack"`

	// Experts maps expert name to its overrides; experts missing from the
	// map run with their registry defaults.
	Experts map[string]*ExpertSettings `yaml:"experts"`
}

// ConfigDir returns the directory configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// ServerConfig defines HTTP server settings.
type ServerConfig struct {
	Host             string   `yaml:"host"`
	Port             int      `yaml:"port"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins,omitempty"`
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ServiceURLs holds base URLs for the downstream collaborator routers.
// An empty URL disables the experts that depend on that collaborator.
type ServiceURLs struct {
	Lists         string `yaml:"lists,omitempty"`
	Calendar      string `yaml:"calendar,omitempty"`
	Reminders     string `yaml:"reminders,omitempty"`
	Journal       string `yaml:"journal,omitempty"`
	HomeAssistant string `yaml:"homeassistant,omitempty"`
	Memory        string `yaml:"memory,omitempty"`
	People        string `yaml:"people,omitempty"`
}

// AuthConfig defines session validation settings.
type AuthConfig struct {
	// ServiceURL is the auth collaborator base URL. Required unless
	// LocalDevMode is on.
	ServiceURL string `yaml:"service_url,omitempty"`

	// LocalDevMode resolves missing session tokens to the default admin
	// user instead of returning 401.
	LocalDevMode bool `yaml:"local_dev_mode,omitempty"`

	// SessionCacheTTL bounds how long a validated session is reused
	// without re-asking the auth service.
	SessionCacheTTL time.Duration `yaml:"session_cache_ttl,omitempty"`

	// DefaultTimezone is the IANA zone used for relative time parsing
	// when the user's own zone is unknown.
	DefaultTimezone string `yaml:"default_timezone,omitempty"`
}

// DispatcherConfig defines expert selection and fan-out settings.
type DispatcherConfig struct {
	// SelectThreshold is the minimum can_handle score for an expert to
	// participate in a turn.
	SelectThreshold float64 `yaml:"select_threshold"`

	// ExclusiveThreshold short-circuits to a single expert when the top
	// score reaches it and the runner-up trails by at least ExclusiveGap.
	ExclusiveThreshold float64 `yaml:"exclusive_threshold"`
	ExclusiveGap       float64 `yaml:"exclusive_gap"`

	// OverallDeadline bounds the whole parallel fan-out; PerExpertDeadline
	// bounds each expert within it.
	OverallDeadline   time.Duration `yaml:"overall_deadline"`
	PerExpertDeadline time.Duration `yaml:"per_expert_deadline"`
}

// EpisodeConfig defines episodic memory window settings.
type EpisodeConfig struct {
	// TimeoutMinutes per context type. Missing context types fall back to
	// builtin defaults.
	TimeoutMinutes map[string]int `yaml:"timeout_minutes,omitempty"`

	// SweepInterval is how often the background sweeper scans for stale
	// active episodes.
	SweepInterval time.Duration `yaml:"sweep_interval,omitempty"`
}

// TimeoutFor returns the inactivity timeout for a context type.
func (e *EpisodeConfig) TimeoutFor(contextType string) time.Duration {
	if m, ok := e.TimeoutMinutes[contextType]; ok && m > 0 {
		return time.Duration(m) * time.Minute
	}
	return time.Duration(defaultEpisodeTimeoutMinutes[contextType]) * time.Minute
}

// MemoryConfig defines fact retrieval and summarization settings.
type MemoryConfig struct {
	// RecentTurns caps the per-episode history window handed to prompt
	// composition.
	RecentTurns int `yaml:"recent_turns"`

	// RecallK caps decay-weighted fact retrieval per turn.
	RecallK int `yaml:"recall_k"`

	// DecayHalflifeDays drives exp(-age_days/halflife) in fact ranking.
	DecayHalflifeDays float64 `yaml:"decay_halflife_days"`

	// SummaryTriggerMessages summarizes an episode when its message count
	// crosses this value (and again when it closes).
	SummaryTriggerMessages int `yaml:"summary_trigger_messages"`

	// SummaryMaxWords caps the stored episode summary.
	SummaryMaxWords int `yaml:"summary_max_words"`
}

// OutboundConfig defines the resilient HTTP client settings shared by all
// collaborator calls.
type OutboundConfig struct {
	// BreakerFailures consecutive failures open a service's circuit; calls
	// then fail fast for BreakerCooldown before one half-open probe.
	BreakerFailures int           `yaml:"breaker_failures"`
	BreakerCooldown time.Duration `yaml:"breaker_cooldown"`

	// Retry schedule for transient failures on idempotent calls.
	RetryBase     time.Duration `yaml:"retry_base"`
	RetryMax      time.Duration `yaml:"retry_max"`
	RetryAttempts int           `yaml:"retry_attempts"`

	// Connection pool bounds per remote host.
	MaxConnsPerHost     int `yaml:"max_conns_per_host"`
	MaxIdleConnsPerHost int `yaml:"max_idle_conns_per_host"`
}

// ExpertSettings overrides registry defaults for one expert. Pointer
// fields distinguish "unset" from explicit zero values.
type ExpertSettings struct {
	Enabled           *bool    `yaml:"enabled,omitempty"`
	DefaultConfidence *float64 `yaml:"default_confidence,omitempty"`
}

// SlackConfig defines ops notification settings. Disabled (or missing a
// token) means notifications are silently dropped.
type SlackConfig struct {
	Enabled  bool   `yaml:"enabled,omitempty"`
	TokenEnv string `yaml:"token_env,omitempty"`
	Channel  string `yaml:"channel,omitempty"`
}

// LLMConfig defines generation parameters and the backend fallback chain.
// Backends and Chain load from llm-providers.yaml; the rest from the main
// config file.
type LLMConfig struct {
	// DefaultModel is advertised on /api/chat/status and used when a
	// backend config omits its own model.
	DefaultModel string `yaml:"default_model,omitempty"`

	// Generation defaults; per-request values are clamped to the caps.
	MaxTokens    int     `yaml:"max_tokens"`
	MaxTokensCap int     `yaml:"max_tokens_cap"`
	Temperature  float64 `yaml:"temperature"`

	// PromptCharBudget bounds composed prompts; overflow trims oldest
	// history first, never the system preamble or the current message.
	PromptCharBudget int `yaml:"prompt_char_budget"`

	// Deadlines.
	CompleteTimeout   time.Duration `yaml:"complete_timeout"`
	FirstTokenTimeout time.Duration `yaml:"first_token_timeout"`
	TokenIdleTimeout  time.Duration `yaml:"token_idle_timeout"`

	// WarmupTimeout caps the startup warm-up pass across all backends.
	WarmupTimeout time.Duration `yaml:"warmup_timeout"`

	// OOMCooldown skips the primary backend after an OOM-shaped failure.
	OOMCooldown time.Duration `yaml:"oom_cooldown"`

	// Chain is the ordered backend fallback chain (names into Backends).
	// The first entry is the primary.
	Chain []string `yaml:"chain,omitempty"`

	// Backends maps backend name to its connection settings.
	Backends map[string]*LLMBackendConfig `yaml:"backends,omitempty"`
}

// LLMBackendConfig describes one OpenAI-compatible inference endpoint.
type LLMBackendConfig struct {
	// Endpoint is the base URL, e.g. "http://llm-0.internal:8000".
	Endpoint string `yaml:"endpoint"`

	// Model is the model identifier sent in completion requests. Empty
	// falls back to LLMConfig.DefaultModel.
	Model string `yaml:"model,omitempty"`

	// APIKeyEnv names the environment variable holding the bearer token.
	// Empty means no Authorization header.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`
}

// ChainBackends resolves the fallback chain into ordered backend configs.
func (l *LLMConfig) ChainBackends() ([]*LLMBackendConfig, error) {
	out := make([]*LLMBackendConfig, 0, len(l.Chain))
	for _, name := range l.Chain {
		b, ok := l.Backends[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrLLMBackendNotFound, name)
		}
		out = append(out, b)
	}
	return out, nil
}

// Stats summarizes loaded configuration for startup logging.
type Stats struct {
	LLMBackends     int
	ExpertOverrides int
	Services        int
}

// Stats returns configuration statistics.
func (c *Config) Stats() Stats {
	services := 0
	for _, u := range []string{
		c.Services.Lists, c.Services.Calendar, c.Services.Reminders,
		c.Services.Journal, c.Services.HomeAssistant, c.Services.Memory,
		c.Services.People,
	} {
		if u != "" {
			services++
		}
	}
	return Stats{
		LLMBackends:     len(c.LLM.Backends),
		ExpertOverrides: len(c.Experts),
		Services:        services,
	}
}

// BoolPtr returns a pointer to b. Convenience for *bool struct fields.
func BoolPtr(b bool) *bool { return &b }

// Float64Ptr returns a pointer to f. Convenience for *float64 struct fields.
func Float64Ptr(f float64) *float64 { return &f }

// IntPtr returns a pointer to i. Convenience for *int struct fields.
func IntPtr(i int) *int { return &i }

// StringPtr returns a pointer to s. Convenience for *string struct fields.
func StringPtr(s string) *string { return &s }
