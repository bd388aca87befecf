package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskpet/deskpet/internal/intent"
	"github.com/deskpet/deskpet/internal/personality"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Pixel", cfg.Pet.Name)
	assert.Equal(t, personality.DefaultType, cfg.Personality().Type)
	assert.True(t, cfg.Monitor.Enabled, "monitor should default to enabled")
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := writeConfig(t, `
pet:
  name: Mochi
  type: INTJ
memory_cap: 50
monitor:
  enabled: false
intent:
  specific_threshold: 0.6
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Mochi", cfg.Pet.Name)
	assert.Equal(t, personality.INTJ, cfg.Personality().Type)
	assert.Equal(t, 50, cfg.MemoryCap)
	assert.False(t, cfg.Monitor.Enabled, "monitor should be disabled by file")
	// Automation was not mentioned; the default survives.
	assert.True(t, cfg.Automation.Enabled, "automation default should survive partial file")

	engine := cfg.EngineConfig()
	assert.Equal(t, 0.6, engine.SpecificThreshold)
	// Unset override keeps the engine default.
	assert.Equal(t, 0.3, engine.FallbackThreshold)
}

func TestEngineConfigAppliesAllOverrides(t *testing.T) {
	path := writeConfig(t, `
intent:
  specific_threshold: 0.55
  fallback_threshold: 0.25
  length_bonus: 0.08
  min_span: 12
  match_bonus: 0.2
  match_bonus_cap: 0.4
  context_nudge: 0.1
  recent_nudge: 0.02
  max_input_len: 500
  nudges:
    - app: blender
      categories: [task-execution]
    - app: chrome
      categories: [web-search, search]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	engine := cfg.EngineConfig()
	assert.Equal(t, 0.55, engine.SpecificThreshold)
	assert.Equal(t, 0.25, engine.FallbackThreshold)
	assert.Equal(t, 0.08, engine.LengthBonus)
	assert.Equal(t, 12, engine.MinSpan)
	assert.Equal(t, 0.2, engine.MatchBonus)
	assert.Equal(t, 0.4, engine.MatchBonusCap)
	assert.Equal(t, 0.1, engine.ContextNudge)
	assert.Equal(t, 0.02, engine.RecentNudge)
	assert.Equal(t, 500, engine.MaxInputLen)

	require.Len(t, engine.Nudges, 2, "configured nudges replace the built-in table")
	assert.Equal(t, "blender", engine.Nudges[0].AppSubstring)
	assert.Equal(t, []intent.Category{intent.CategoryTaskExecution}, engine.Nudges[0].Categories)
	assert.Equal(t, []intent.Category{intent.CategoryWebSearch, intent.CategorySearch}, engine.Nudges[1].Categories)
}

func TestEngineConfigKeepsDefaultNudges(t *testing.T) {
	cfg := Default()
	engine := cfg.EngineConfig()
	assert.Equal(t, intent.DefaultNudges(), engine.Nudges)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "pet:\n  name: FromFile\n")
	t.Setenv("DESKPET_NAME", "FromEnv")
	t.Setenv("DESKPET_MEMORY_CAP", "7")
	t.Setenv("DESKPET_AUTOMATION", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "FromEnv", cfg.Pet.Name)
	assert.Equal(t, 7, cfg.MemoryCap)
	assert.False(t, cfg.Automation.Enabled, "automation should be disabled by env")
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "pet: [broken")
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(*Config) {}, false},
		{"empty name", func(c *Config) { c.Pet.Name = "" }, true},
		{"negative cap", func(c *Config) { c.MemoryCap = -1 }, true},
		{"negative interval", func(c *Config) { c.Monitor.IntervalSeconds = -5 }, true},
		{"threshold too high", func(c *Config) { c.Intent.SpecificThreshold = 1.5 }, true},
		{"threshold negative", func(c *Config) { c.Intent.FallbackThreshold = -0.1 }, true},
		{"bonus cap too high", func(c *Config) { c.Intent.MatchBonusCap = 1.5 }, true},
		{"negative input cap", func(c *Config) { c.Intent.MaxInputLen = -1 }, true},
		{"nudge missing app", func(c *Config) { c.Intent.Nudges = []NudgeRule{{Categories: []string{"search"}}} }, true},
		{"nudge missing categories", func(c *Config) { c.Intent.Nudges = []NudgeRule{{App: "chrome"}} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUnknownPersonalityFallsBack(t *testing.T) {
	path := writeConfig(t, "pet:\n  name: X\n  type: ZZZZ\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, personality.DefaultType, cfg.Personality().Type)
}

func TestMonitorInterval(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 15*time.Second, cfg.Monitor.Interval(), "zero keeps the default")

	t.Setenv("DESKPET_MONITOR_INTERVAL", "30")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Monitor.Interval())
}
