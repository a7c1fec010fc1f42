package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// EpisodeRetentionDays is how many days to keep closed episodes (and
	// their turns) before deletion.
	EpisodeRetentionDays int `yaml:"episode_retention_days"`

	// ActionLogRetentionDays is how many days to keep action log rows.
	ActionLogRetentionDays int `yaml:"action_log_retention_days"`

	// EventTTL is the maximum age of fan-out Event rows before deletion.
	// Live subscribers consume events within seconds; this bounds catch-up
	// replay depth.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EpisodeRetentionDays:   90,
		ActionLogRetentionDays: 180,
		EventTTL:               24 * time.Hour,
		CleanupInterval:        12 * time.Hour,
	}
}
