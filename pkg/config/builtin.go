package config

import "time"

// defaultEpisodeTimeoutMinutes holds the per-context inactivity timeouts
// used when the config file leaves a context type unset.
var defaultEpisodeTimeoutMinutes = map[string]int{
	"chat":        30,
	"development": 120,
	"planning":    60,
	"general":     30,
}

// GetBuiltinConfig returns the built-in configuration defaults. Every call
// allocates a fresh instance: the loader mutates the result while merging
// file values and environment overrides over it.
func GetBuiltinConfig() *Config {
	return &Config{
		Server: &ServerConfig{
			Host: "",
			Port: 8080,
		},
		Services: &ServiceURLs{},
		Auth: &AuthConfig{
			SessionCacheTTL: time.Minute,
			DefaultTimezone: "UTC",
		},
		Dispatcher: &DispatcherConfig{
			SelectThreshold:    0.5,
			ExclusiveThreshold: 0.85,
			ExclusiveGap:       0.15,
			OverallDeadline:    10 * time.Second,
			PerExpertDeadline:  8 * time.Second,
		},
		Episodes: &EpisodeConfig{
			TimeoutMinutes: builtinEpisodeTimeouts(),
			SweepInterval:  time.Minute,
		},
		Memory: &MemoryConfig{
			RecentTurns:            5,
			RecallK:                5,
			DecayHalflifeDays:      30,
			SummaryTriggerMessages: 20,
			SummaryMaxWords:        300,
		},
		LLM: &LLMConfig{
			MaxTokens:         512,
			MaxTokensCap:      4096,
			Temperature:       0.7,
			PromptCharBudget:  24000,
			CompleteTimeout:   30 * time.Second,
			FirstTokenTimeout: 15 * time.Second,
			TokenIdleTimeout:  10 * time.Second,
			WarmupTimeout:     30 * time.Second,
			OOMCooldown:       60 * time.Second,
			// No builtin backends: the chain must come from
			// llm-providers.yaml or LLM_PRIMARY_ENDPOINT.
			Chain:    nil,
			Backends: map[string]*LLMBackendConfig{},
		},
		Outbound: &OutboundConfig{
			BreakerFailures:     5,
			BreakerCooldown:     30 * time.Second,
			RetryBase:           200 * time.Millisecond,
			RetryMax:            5 * time.Second,
			RetryAttempts:       3,
			MaxConnsPerHost:     32,
			MaxIdleConnsPerHost: 8,
		},
		Retention: DefaultRetentionConfig(),
		Slack:     &SlackConfig{},
		Experts:   map[string]*ExpertSettings{},
	}
}

func builtinEpisodeTimeouts() map[string]int {
	out := make(map[string]int, len(defaultEpisodeTimeoutMinutes))
	for k, v := range defaultEpisodeTimeoutMinutes {
		out[k] = v
	}
	return out
}
