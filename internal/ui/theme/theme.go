package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: soft but lively, fits a desk companion
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	// Confident marks high-confidence intent labels in the chat view.
	Confident = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	// Uncertain marks low-confidence intent labels.
	Uncertain = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)
