package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// stewardYAMLConfig represents the complete steward.yaml file structure.
// Sections map one-to-one onto Config; anything omitted keeps its builtin
// default.
type stewardYAMLConfig struct {
	Server     *ServerConfig              `yaml:"server"`
	Services   *ServiceURLs               `yaml:"services"`
	Auth       *AuthConfig                `yaml:"auth"`
	Dispatcher *DispatcherConfig          `yaml:"dispatcher"`
	Episodes   *EpisodeConfig             `yaml:"episodes"`
	Memory     *MemoryConfig              `yaml:"memory"`
	LLM        *LLMConfig                 `yaml:"llm"`
	Outbound   *OutboundConfig            `yaml:"outbound"`
	Retention  *RetentionConfig           `yaml:"retention"`
	Slack      *SlackConfig               `yaml:"slack"`
	Experts    map[string]*ExpertSettings `yaml:"experts"`
}

// llmProvidersYAMLConfig represents the complete llm-providers.yaml file
// structure.
type llmProvidersYAMLConfig struct {
	Backends     map[string]*LLMBackendConfig `yaml:"llm_backends"`
	Chain        []string                     `yaml:"chain"`
	DefaultModel string                       `yaml:"default_model"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables ({{.VAR}} syntax)
//  3. Merge user-defined values over builtin defaults
//  4. Apply environment variable overrides
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_backends", stats.LLMBackends,
		"services", stats.Services,
		"expert_overrides", stats.ExpertOverrides)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load steward.yaml (server, services, dispatcher, episodes, ...)
	fileCfg, err := loader.loadStewardYAML()
	if err != nil {
		return nil, NewLoadError("steward.yaml", err)
	}

	// 2. Load llm-providers.yaml. The file is optional: backends may come
	// entirely from LLM_PRIMARY_ENDPOINT / LLM_FALLBACK_ENDPOINTS instead.
	providers, err := loader.loadLLMProvidersYAML()
	if err != nil {
		if !errors.Is(err, ErrConfigNotFound) {
			return nil, NewLoadError("llm-providers.yaml", err)
		}
		slog.Debug("llm-providers.yaml not found, relying on environment")
		providers = &llmProvidersYAMLConfig{Backends: map[string]*LLMBackendConfig{}}
	}

	// 3. Start from builtin defaults and merge user values on top
	// (non-zero user values override, everything else keeps its default).
	cfg := GetBuiltinConfig()
	if err := mergeFileConfig(cfg, fileCfg); err != nil {
		return nil, fmt.Errorf("failed to merge configuration: %w", err)
	}

	// 4. Fold in the LLM provider file.
	applyLLMProviders(cfg.LLM, providers)

	// 5. Environment variables override file values.
	applyEnvOverrides(cfg)

	// 6. A single backend needs no explicit chain.
	resolveLLMChain(cfg.LLM)

	cfg.configDir = configDir
	return cfg, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes through original data on parse/execution errors,
	// letting the YAML parser produce the clearer error message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadStewardYAML() (*stewardYAMLConfig, error) {
	var config stewardYAMLConfig

	// Initialize maps to avoid nil maps
	config.Experts = make(map[string]*ExpertSettings)

	if err := l.loadYAML("steward.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (*llmProvidersYAMLConfig, error) {
	var config llmProvidersYAMLConfig

	// Initialize map to avoid nil map
	config.Backends = make(map[string]*LLMBackendConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// mergeFileConfig merges the steward.yaml sections into the builtin
// defaults. Sections the file omits stay untouched.
func mergeFileConfig(dst *Config, file *stewardYAMLConfig) error {
	sections := []struct {
		name string
		dst  any
		src  any
	}{
		{"server", dst.Server, file.Server},
		{"services", dst.Services, file.Services},
		{"auth", dst.Auth, file.Auth},
		{"dispatcher", dst.Dispatcher, file.Dispatcher},
		{"episodes", dst.Episodes, file.Episodes},
		{"memory", dst.Memory, file.Memory},
		{"llm", dst.LLM, file.LLM},
		{"outbound", dst.Outbound, file.Outbound},
		{"retention", dst.Retention, file.Retention},
		{"slack", dst.Slack, file.Slack},
	}
	for _, s := range sections {
		if isNilSection(s.src) {
			continue
		}
		// Merge user-provided values into defaults (non-zero values override)
		if err := mergo.Merge(s.dst, s.src, mergo.WithOverride); err != nil {
			return fmt.Errorf("merge %s: %w", s.name, err)
		}
	}
	for name, settings := range file.Experts {
		dst.Experts[name] = settings
	}
	return nil
}

func isNilSection(src any) bool {
	switch v := src.(type) {
	case *ServerConfig:
		return v == nil
	case *ServiceURLs:
		return v == nil
	case *AuthConfig:
		return v == nil
	case *DispatcherConfig:
		return v == nil
	case *EpisodeConfig:
		return v == nil
	case *MemoryConfig:
		return v == nil
	case *LLMConfig:
		return v == nil
	case *OutboundConfig:
		return v == nil
	case *RetentionConfig:
		return v == nil
	case *SlackConfig:
		return v == nil
	default:
		return src == nil
	}
}

// applyLLMProviders folds llm-providers.yaml into the LLM section.
func applyLLMProviders(llm *LLMConfig, providers *llmProvidersYAMLConfig) {
	for name, backend := range providers.Backends {
		llm.Backends[name] = backend
	}
	if len(providers.Chain) > 0 {
		llm.Chain = providers.Chain
	}
	if providers.DefaultModel != "" {
		llm.DefaultModel = providers.DefaultModel
	}
}

// applyEnvOverrides applies environment variable overrides on top of file
// values. Invalid numeric values are logged and ignored.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LLM_PRIMARY_ENDPOINT"); v != "" {
		cfg.LLM.Backends["primary"] = &LLMBackendConfig{Endpoint: v}
		chain := []string{"primary"}
		if fb := os.Getenv("LLM_FALLBACK_ENDPOINTS"); fb != "" {
			for i, endpoint := range splitCommaList(fb) {
				name := fmt.Sprintf("fallback-%d", i+1)
				cfg.LLM.Backends[name] = &LLMBackendConfig{Endpoint: endpoint}
				chain = append(chain, name)
			}
		}
		cfg.LLM.Chain = chain
	}
	if v := os.Getenv("LLM_DEFAULT_MODEL"); v != "" {
		cfg.LLM.DefaultModel = v
	}
	if v := os.Getenv("AUTH_SERVICE_URL"); v != "" {
		cfg.Auth.ServiceURL = v
	}
	if v := os.Getenv("LOCAL_DEV_MODE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Auth.LocalDevMode = b
		} else {
			slog.Warn("Invalid LOCAL_DEV_MODE value, ignoring", "value", v)
		}
	}
	if ms, ok := envInt("EXPERT_PARALLEL_DEADLINE_MS"); ok {
		cfg.Dispatcher.OverallDeadline = time.Duration(ms) * time.Millisecond
	}
	if n, ok := envInt("CIRCUIT_BREAKER_FAILURES"); ok {
		cfg.Outbound.BreakerFailures = n
	}
	if sec, ok := envInt("CIRCUIT_BREAKER_COOLDOWN_SEC"); ok {
		cfg.Outbound.BreakerCooldown = time.Duration(sec) * time.Second
	}
	for env, contextType := range map[string]string{
		"EPISODE_TIMEOUT_MINUTES_CHAT":        "chat",
		"EPISODE_TIMEOUT_MINUTES_DEVELOPMENT": "development",
		"EPISODE_TIMEOUT_MINUTES_PLANNING":    "planning",
		"EPISODE_TIMEOUT_MINUTES_GENERAL":     "general",
	} {
		if m, ok := envInt(env); ok {
			cfg.Episodes.TimeoutMinutes[contextType] = m
		}
	}
}

// envInt reads a positive integer environment variable. Unset, empty, or
// unparseable values return ok=false (with a warning for the last case).
func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("Invalid integer environment variable, ignoring", "name", name, "value", v)
		return 0, false
	}
	return n, true
}

func splitCommaList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// resolveLLMChain defaults the chain to the sole backend when exactly one
// is configured and no explicit order was given.
func resolveLLMChain(llm *LLMConfig) {
	if len(llm.Chain) > 0 || len(llm.Backends) != 1 {
		return
	}
	names := make([]string, 0, 1)
	for name := range llm.Backends {
		names = append(names, name)
	}
	sort.Strings(names)
	llm.Chain = names
}
