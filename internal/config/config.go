// Package config loads the application configuration from a YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/deskpet/deskpet/internal/intent"
	"github.com/deskpet/deskpet/internal/personality"
)

// Config holds the application configuration.
type Config struct {
	// Pet is the companion's display name.
	Pet PetConfig `yaml:"pet"`

	// DBPath overrides the default database location.
	DBPath string `yaml:"db_path"`

	// MemoryCap bounds the interaction log; older entries are pruned.
	// Zero disables pruning.
	MemoryCap int `yaml:"memory_cap"`

	Monitor    MonitorConfig    `yaml:"monitor"`
	Automation AutomationConfig `yaml:"automation"`
	Intent     IntentConfig     `yaml:"intent"`
}

// PetConfig describes the companion itself.
type PetConfig struct {
	Name string `yaml:"name"`
	// Type is the MBTI personality type, e.g. "ENFP".
	Type string `yaml:"type"`
}

// MonitorConfig controls foreground window monitoring.
type MonitorConfig struct {
	Enabled bool `yaml:"enabled"`
	// IntervalSeconds is the sampling period for the foreground window
	// title. Zero keeps the default.
	IntervalSeconds int `yaml:"interval_seconds"`
}

// Interval returns the sampling period as a duration.
func (m MonitorConfig) Interval() time.Duration {
	if m.IntervalSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(m.IntervalSeconds) * time.Second
}

// AutomationConfig controls desktop macros.
type AutomationConfig struct {
	Enabled bool `yaml:"enabled"`
	// MacroDir is a directory of JSON macro files loaded at startup.
	MacroDir string `yaml:"macro_dir"`
}

// IntentConfig overrides the engine's scoring knobs. Zero values keep
// the engine defaults; a non-empty nudge list replaces the built-in
// foreground-app correlation table.
type IntentConfig struct {
	SpecificThreshold float64 `yaml:"specific_threshold"`
	FallbackThreshold float64 `yaml:"fallback_threshold"`
	LengthBonus       float64 `yaml:"length_bonus"`
	MinSpan           int     `yaml:"min_span"`
	MatchBonus        float64 `yaml:"match_bonus"`
	MatchBonusCap     float64 `yaml:"match_bonus_cap"`
	ContextNudge      float64 `yaml:"context_nudge"`
	RecentNudge       float64 `yaml:"recent_nudge"`
	MaxInputLen       int     `yaml:"max_input_len"`

	Nudges []NudgeRule `yaml:"nudges"`
}

// NudgeRule associates a foreground-app name substring with the intent
// categories it makes more likely.
type NudgeRule struct {
	App        string   `yaml:"app"`
	Categories []string `yaml:"categories"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Pet: PetConfig{
			Name: "Pixel",
			Type: string(personality.DefaultType),
		},
		MemoryCap: 1000,
		Monitor:   MonitorConfig{Enabled: true},
		Automation: AutomationConfig{
			Enabled: true,
		},
	}
}

// DefaultPath resolves the config file location:
// 1. DESKPET_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/deskpet/config.yaml
// 3. ~/.config/deskpet/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("DESKPET_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "deskpet", "config.yaml"), nil
}

// Load reads the config file at path, merges it over the defaults, and
// applies environment overrides. A missing file is not an error: the
// defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No config file; defaults plus env.
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides config fields from DESKPET_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("DESKPET_NAME"); v != "" {
		cfg.Pet.Name = v
	}
	if v := os.Getenv("DESKPET_TYPE"); v != "" {
		cfg.Pet.Type = v
	}
	if v := os.Getenv("DESKPET_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("DESKPET_MEMORY_CAP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MemoryCap = n
		}
	}
	if v := os.Getenv("DESKPET_MONITOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Monitor.Enabled = b
		}
	}
	if v := os.Getenv("DESKPET_MONITOR_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Monitor.IntervalSeconds = n
		}
	}
	if v := os.Getenv("DESKPET_AUTOMATION"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Automation.Enabled = b
		}
	}
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.Pet.Name == "" {
		return fmt.Errorf("pet name must not be empty")
	}
	if c.MemoryCap < 0 {
		return fmt.Errorf("memory_cap must not be negative")
	}
	if c.Monitor.IntervalSeconds < 0 {
		return fmt.Errorf("monitor interval_seconds must not be negative")
	}
	if t := c.Intent.SpecificThreshold; t < 0 || t > 1 {
		return fmt.Errorf("intent specific_threshold must be in [0, 1], got %v", t)
	}
	if t := c.Intent.FallbackThreshold; t < 0 || t > 1 {
		return fmt.Errorf("intent fallback_threshold must be in [0, 1], got %v", t)
	}
	for _, bonus := range []struct {
		name  string
		value float64
	}{
		{"length_bonus", c.Intent.LengthBonus},
		{"match_bonus", c.Intent.MatchBonus},
		{"match_bonus_cap", c.Intent.MatchBonusCap},
		{"context_nudge", c.Intent.ContextNudge},
		{"recent_nudge", c.Intent.RecentNudge},
	} {
		if bonus.value < 0 || bonus.value > 1 {
			return fmt.Errorf("intent %s must be in [0, 1], got %v", bonus.name, bonus.value)
		}
	}
	if c.Intent.MinSpan < 0 {
		return fmt.Errorf("intent min_span must not be negative")
	}
	if c.Intent.MaxInputLen < 0 {
		return fmt.Errorf("intent max_input_len must not be negative")
	}
	for i, rule := range c.Intent.Nudges {
		if rule.App == "" {
			return fmt.Errorf("intent nudge %d: app must not be empty", i)
		}
		if len(rule.Categories) == 0 {
			return fmt.Errorf("intent nudge %d (%s): categories must not be empty", i, rule.App)
		}
	}
	return nil
}

// Personality resolves the configured MBTI type, falling back to the
// default for unknown values.
func (c Config) Personality() personality.Personality {
	return personality.FromString(c.Pet.Type)
}

// EngineConfig builds the intent engine configuration: the defaults
// with any configured overrides applied.
func (c Config) EngineConfig() intent.Config {
	engine := intent.DefaultConfig()
	if c.Intent.SpecificThreshold > 0 {
		engine.SpecificThreshold = c.Intent.SpecificThreshold
	}
	if c.Intent.FallbackThreshold > 0 {
		engine.FallbackThreshold = c.Intent.FallbackThreshold
	}
	if c.Intent.LengthBonus > 0 {
		engine.LengthBonus = c.Intent.LengthBonus
	}
	if c.Intent.MinSpan > 0 {
		engine.MinSpan = c.Intent.MinSpan
	}
	if c.Intent.MatchBonus > 0 {
		engine.MatchBonus = c.Intent.MatchBonus
	}
	if c.Intent.MatchBonusCap > 0 {
		engine.MatchBonusCap = c.Intent.MatchBonusCap
	}
	if c.Intent.ContextNudge > 0 {
		engine.ContextNudge = c.Intent.ContextNudge
	}
	if c.Intent.RecentNudge > 0 {
		engine.RecentNudge = c.Intent.RecentNudge
	}
	if c.Intent.MaxInputLen > 0 {
		engine.MaxInputLen = c.Intent.MaxInputLen
	}
	if len(c.Intent.Nudges) > 0 {
		nudges := make([]intent.NudgeEntry, 0, len(c.Intent.Nudges))
		for _, rule := range c.Intent.Nudges {
			cats := make([]intent.Category, 0, len(rule.Categories))
			for _, cat := range rule.Categories {
				cats = append(cats, intent.Category(cat))
			}
			nudges = append(nudges, intent.NudgeEntry{
				AppSubstring: rule.App,
				Categories:   cats,
			})
		}
		engine.Nudges = nudges
	}
	return engine
}
