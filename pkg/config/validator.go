package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateServer(); err != nil {
		return fmt.Errorf("server validation failed: %w", err)
	}

	if err := v.validateServices(); err != nil {
		return fmt.Errorf("service validation failed: %w", err)
	}

	if err := v.validateAuth(); err != nil {
		return fmt.Errorf("auth validation failed: %w", err)
	}

	if err := v.validateDispatcher(); err != nil {
		return fmt.Errorf("dispatcher validation failed: %w", err)
	}

	if err := v.validateEpisodes(); err != nil {
		return fmt.Errorf("episode validation failed: %w", err)
	}

	if err := v.validateMemory(); err != nil {
		return fmt.Errorf("memory validation failed: %w", err)
	}

	if err := v.validateLLM(); err != nil {
		return fmt.Errorf("LLM validation failed: %w", err)
	}

	if err := v.validateOutbound(); err != nil {
		return fmt.Errorf("outbound validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	if err := v.validateExperts(); err != nil {
		return fmt.Errorf("expert validation failed: %w", err)
	}

	if err := v.validateSlack(); err != nil {
		return fmt.Errorf("slack validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateServer() error {
	s := v.cfg.Server
	if s.Port < 1 || s.Port > 65535 {
		return NewValidationError("server", "", "port", fmt.Errorf("%w: %d", ErrInvalidValue, s.Port))
	}
	return nil
}

func (v *ConfigValidator) validateServices() error {
	svc := v.cfg.Services
	for field, u := range map[string]string{
		"lists":         svc.Lists,
		"calendar":      svc.Calendar,
		"reminders":     svc.Reminders,
		"journal":       svc.Journal,
		"homeassistant": svc.HomeAssistant,
		"memory":        svc.Memory,
		"people":        svc.People,
	} {
		// Empty URLs are allowed: the dependent experts are disabled.
		if u == "" {
			continue
		}
		if err := validateBaseURL(u); err != nil {
			return NewValidationError("services", "", field, err)
		}
	}
	return nil
}

func (v *ConfigValidator) validateAuth() error {
	a := v.cfg.Auth
	if a.ServiceURL == "" && !a.LocalDevMode {
		return NewValidationError("auth", "", "service_url",
			fmt.Errorf("%w (required unless local_dev_mode is on)", ErrMissingRequiredField))
	}
	if a.ServiceURL != "" {
		if err := validateBaseURL(a.ServiceURL); err != nil {
			return NewValidationError("auth", "", "service_url", err)
		}
	}
	if a.SessionCacheTTL <= 0 {
		return NewValidationError("auth", "", "session_cache_ttl", fmt.Errorf("must be positive"))
	}
	if _, err := time.LoadLocation(a.DefaultTimezone); err != nil {
		return NewValidationError("auth", "", "default_timezone",
			fmt.Errorf("%w: %q", ErrInvalidValue, a.DefaultTimezone))
	}
	return nil
}

func (v *ConfigValidator) validateDispatcher() error {
	d := v.cfg.Dispatcher
	if d.SelectThreshold <= 0 || d.SelectThreshold > 1 {
		return NewValidationError("dispatcher", "", "select_threshold", fmt.Errorf("must be in (0, 1]"))
	}
	if d.ExclusiveThreshold <= 0 || d.ExclusiveThreshold > 1 {
		return NewValidationError("dispatcher", "", "exclusive_threshold", fmt.Errorf("must be in (0, 1]"))
	}
	if d.ExclusiveThreshold < d.SelectThreshold {
		return NewValidationError("dispatcher", "", "exclusive_threshold",
			fmt.Errorf("must not be below select_threshold"))
	}
	if d.ExclusiveGap < 0 || d.ExclusiveGap > 1 {
		return NewValidationError("dispatcher", "", "exclusive_gap", fmt.Errorf("must be in [0, 1]"))
	}
	if d.OverallDeadline <= 0 {
		return NewValidationError("dispatcher", "", "overall_deadline", fmt.Errorf("must be positive"))
	}
	if d.PerExpertDeadline <= 0 || d.PerExpertDeadline > d.OverallDeadline {
		return NewValidationError("dispatcher", "", "per_expert_deadline",
			fmt.Errorf("must be positive and not exceed overall_deadline"))
	}
	return nil
}

func (v *ConfigValidator) validateEpisodes() error {
	e := v.cfg.Episodes
	for contextType, minutes := range e.TimeoutMinutes {
		if _, known := defaultEpisodeTimeoutMinutes[contextType]; !known {
			return NewValidationError("episodes", contextType, "timeout_minutes",
				fmt.Errorf("%w: unknown context type", ErrInvalidValue))
		}
		if minutes <= 0 {
			return NewValidationError("episodes", contextType, "timeout_minutes",
				fmt.Errorf("must be positive"))
		}
	}
	if e.SweepInterval <= 0 {
		return NewValidationError("episodes", "", "sweep_interval", fmt.Errorf("must be positive"))
	}
	return nil
}

func (v *ConfigValidator) validateMemory() error {
	m := v.cfg.Memory
	if m.RecentTurns < 1 {
		return NewValidationError("memory", "", "recent_turns", fmt.Errorf("must be at least 1"))
	}
	if m.RecallK < 1 {
		return NewValidationError("memory", "", "recall_k", fmt.Errorf("must be at least 1"))
	}
	if m.DecayHalflifeDays <= 0 {
		return NewValidationError("memory", "", "decay_halflife_days", fmt.Errorf("must be positive"))
	}
	if m.SummaryTriggerMessages < 2 {
		return NewValidationError("memory", "", "summary_trigger_messages", fmt.Errorf("must be at least 2"))
	}
	if m.SummaryMaxWords < 1 {
		return NewValidationError("memory", "", "summary_max_words", fmt.Errorf("must be at least 1"))
	}
	return nil
}

func (v *ConfigValidator) validateLLM() error {
	l := v.cfg.LLM
	if len(l.Backends) == 0 {
		return NewValidationError("llm", "", "backends",
			fmt.Errorf("%w: configure llm-providers.yaml or LLM_PRIMARY_ENDPOINT", ErrMissingRequiredField))
	}
	if len(l.Chain) == 0 {
		return NewValidationError("llm", "", "chain",
			fmt.Errorf("%w: required when multiple backends are configured", ErrMissingRequiredField))
	}

	backends, err := l.ChainBackends()
	if err != nil {
		return NewValidationError("llm", "", "chain", err)
	}
	for i, backend := range backends {
		name := l.Chain[i]
		if err := validateBaseURL(backend.Endpoint); err != nil {
			return NewValidationError("llm_backend", name, "endpoint", err)
		}
		if backend.Model == "" && l.DefaultModel == "" {
			return NewValidationError("llm_backend", name, "model",
				fmt.Errorf("%w: set model or llm default_model", ErrMissingRequiredField))
		}
		// Validate API key environment variable is set (if specified)
		if backend.APIKeyEnv != "" {
			if value := os.Getenv(backend.APIKeyEnv); value == "" {
				return NewValidationError("llm_backend", name, "api_key_env",
					fmt.Errorf("environment variable %s is not set", backend.APIKeyEnv))
			}
		}
	}

	if l.MaxTokens < 1 || l.MaxTokens > l.MaxTokensCap {
		return NewValidationError("llm", "", "max_tokens",
			fmt.Errorf("must be in [1, %d]", l.MaxTokensCap))
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return NewValidationError("llm", "", "temperature", fmt.Errorf("must be in [0, 2]"))
	}
	if l.PromptCharBudget < 1 {
		return NewValidationError("llm", "", "prompt_char_budget", fmt.Errorf("must be positive"))
	}
	for field, d := range map[string]time.Duration{
		"complete_timeout":    l.CompleteTimeout,
		"first_token_timeout": l.FirstTokenTimeout,
		"token_idle_timeout":  l.TokenIdleTimeout,
		"warmup_timeout":      l.WarmupTimeout,
		"oom_cooldown":        l.OOMCooldown,
	} {
		if d <= 0 {
			return NewValidationError("llm", "", field, fmt.Errorf("must be positive"))
		}
	}
	return nil
}

func (v *ConfigValidator) validateOutbound() error {
	o := v.cfg.Outbound
	if o.BreakerFailures < 1 {
		return NewValidationError("outbound", "", "breaker_failures", fmt.Errorf("must be at least 1"))
	}
	if o.BreakerCooldown <= 0 {
		return NewValidationError("outbound", "", "breaker_cooldown", fmt.Errorf("must be positive"))
	}
	if o.RetryAttempts < 1 {
		return NewValidationError("outbound", "", "retry_attempts", fmt.Errorf("must be at least 1"))
	}
	if o.RetryBase <= 0 || o.RetryBase > o.RetryMax {
		return NewValidationError("outbound", "", "retry_base",
			fmt.Errorf("must be positive and not exceed retry_max"))
	}
	if o.MaxConnsPerHost < 1 || o.MaxIdleConnsPerHost < 1 {
		return NewValidationError("outbound", "", "max_conns_per_host", fmt.Errorf("must be at least 1"))
	}
	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention
	if r.EpisodeRetentionDays < 1 {
		return NewValidationError("retention", "", "episode_retention_days", fmt.Errorf("must be at least 1"))
	}
	if r.ActionLogRetentionDays < 1 {
		return NewValidationError("retention", "", "action_log_retention_days", fmt.Errorf("must be at least 1"))
	}
	if r.EventTTL <= 0 {
		return NewValidationError("retention", "", "event_ttl", fmt.Errorf("must be positive"))
	}
	if r.CleanupInterval <= 0 {
		return NewValidationError("retention", "", "cleanup_interval", fmt.Errorf("must be positive"))
	}
	return nil
}

func (v *ConfigValidator) validateExperts() error {
	for name, settings := range v.cfg.Experts {
		if settings == nil {
			continue
		}
		if settings.DefaultConfidence != nil {
			if c := *settings.DefaultConfidence; c < 0 || c > 1 {
				return NewValidationError("expert", name, "default_confidence",
					fmt.Errorf("must be in [0, 1]"))
			}
		}
	}
	return nil
}

func (v *ConfigValidator) validateSlack() error {
	s := v.cfg.Slack
	if !s.Enabled {
		return nil
	}
	if s.Channel == "" {
		return NewValidationError("slack", "", "channel", fmt.Errorf("%w", ErrMissingRequiredField))
	}
	tokenEnv := s.TokenEnv
	if tokenEnv == "" {
		tokenEnv = "SLACK_BOT_TOKEN"
	}
	if os.Getenv(tokenEnv) == "" {
		return NewValidationError("slack", "", "token_env",
			fmt.Errorf("environment variable %s is not set", tokenEnv))
	}
	return nil
}

// validateBaseURL checks that a collaborator or backend URL is absolute
// http(s) with a host.
func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q is not an absolute http(s) URL", ErrInvalidValue, raw)
	}
	return nil
}
