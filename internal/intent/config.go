package intent

// Config holds the engine's scoring knobs.
//
// The defaults are empirically tuned values carried over from a small
// hand-built utterance set; they are configuration, not derived constants,
// and deployments targeting a different corpus should re-tune them.
type Config struct {
	// SpecificThreshold is the minimum score a specific category needs to
	// win. Below it the engine falls back to CategoryCasualChat.
	SpecificThreshold float64

	// FallbackThreshold is the (lower) acceptance bar for the fallback
	// category. The asymmetry is deliberate: casual chat is the
	// default-safe reading and needs less evidence than an action.
	FallbackThreshold float64

	// LengthBonus is added once per rule whose match spans more than
	// MinSpan runes, rewarding phrase-level matches over incidental
	// single-token hits.
	LengthBonus float64
	MinSpan     int

	// MatchBonus is added per matching rule beyond the first in the same
	// category, capped at MatchBonusCap so a category cannot win purely by
	// owning many weak overlapping rules.
	MatchBonus    float64
	MatchBonusCap float64

	// ContextNudge is the additive boost a foreground-app hint gives a
	// correlated category. It only applies to categories with at least one
	// textual match, so context can refine a reading but never originate
	// one. RecentNudge does the same for the most recent prior category.
	ContextNudge float64
	RecentNudge  float64

	// MaxInputLen bounds matching cost: inputs longer than this many
	// runes are truncated before scoring.
	MaxInputLen int

	// Nudges maps foreground-app name substrings to the categories they
	// support. Explicit data, so it can be audited and extended without
	// touching the scorer.
	Nudges []NudgeEntry
}

// NudgeEntry associates a foreground-app substring with the categories it
// makes more likely.
type NudgeEntry struct {
	AppSubstring string
	Categories   []Category
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		SpecificThreshold: 0.4,
		FallbackThreshold: 0.3,
		LengthBonus:       0.05,
		MinSpan:           10,
		MatchBonus:        0.1,
		MatchBonusCap:     0.3,
		ContextNudge:      0.15,
		RecentNudge:       0.05,
		MaxInputLen:       2000,
		Nudges:            DefaultNudges(),
	}
}

// DefaultNudges returns the built-in foreground-app correlation table.
func DefaultNudges() []NudgeEntry {
	return []NudgeEntry{
		{AppSubstring: "code", Categories: []Category{CategoryCodeAssistance}},
		{AppSubstring: "visual studio", Categories: []Category{CategoryCodeAssistance}},
		{AppSubstring: "pycharm", Categories: []Category{CategoryCodeAssistance}},
		{AppSubstring: "intellij", Categories: []Category{CategoryCodeAssistance}},
		{AppSubstring: "vim", Categories: []Category{CategoryCodeAssistance}},
		{AppSubstring: "chrome", Categories: []Category{CategoryWebSearch, CategorySearch}},
		{AppSubstring: "firefox", Categories: []Category{CategoryWebSearch, CategorySearch}},
		{AppSubstring: "safari", Categories: []Category{CategoryWebSearch, CategorySearch}},
		{AppSubstring: "edge", Categories: []Category{CategoryWebSearch, CategorySearch}},
		{AppSubstring: "word", Categories: []Category{CategoryWritingAssistance}},
		{AppSubstring: "docs", Categories: []Category{CategoryWritingAssistance}},
		{AppSubstring: "notepad", Categories: []Category{CategoryWritingAssistance}},
		{AppSubstring: "excel", Categories: []Category{CategoryFileOperation}},
		{AppSubstring: "sheets", Categories: []Category{CategoryFileOperation}},
		{AppSubstring: "terminal", Categories: []Category{CategorySystemCommand}},
	}
}
