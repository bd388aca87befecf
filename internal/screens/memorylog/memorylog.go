// Package memorylog displays the pet's interaction log.
package memorylog

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/deskpet/deskpet/internal/memory"
	"github.com/deskpet/deskpet/internal/router"
	"github.com/deskpet/deskpet/internal/screen"
	"github.com/deskpet/deskpet/internal/ui/layout"
	"github.com/deskpet/deskpet/internal/ui/theme"
)

const pageSize = 50

type entriesLoadedMsg struct {
	Entries []memory.Entry
	Total   int
	Err     error
}

// typeFilters cycles with the "f" key; empty means all types.
var typeFilters = []memory.InteractionType{
	"",
	memory.TypeTextInput,
	memory.TypeResponse,
	memory.TypeScreenActivity,
	memory.TypeAutomation,
}

// MemoryScreen displays recent memory entries with a type filter.
type MemoryScreen struct {
	repo     *memory.Repo
	entries  []memory.Entry
	total    int
	selected int
	expanded map[int]bool
	filter   int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*MemoryScreen)(nil)
var _ screen.KeyHintProvider = (*MemoryScreen)(nil)

// New creates a new MemoryScreen.
func New(repo *memory.Repo) *MemoryScreen {
	return &MemoryScreen{
		repo:     repo,
		expanded: make(map[int]bool),
	}
}

func (s *MemoryScreen) Init() tea.Cmd {
	return s.load()
}

func (s *MemoryScreen) load() tea.Cmd {
	repo := s.repo
	filter := typeFilters[s.filter]
	return func() tea.Msg {
		ctx := context.Background()

		total, err := repo.Count(ctx)
		if err != nil {
			return entriesLoadedMsg{Err: err}
		}
		entries, err := repo.Recent(ctx, pageSize, filter)
		if err != nil {
			return entriesLoadedMsg{Err: err}
		}
		return entriesLoadedMsg{Entries: entries, Total: total}
	}
}

func (s *MemoryScreen) Title() string {
	return "Memory Log"
}

func (s *MemoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "F", Description: "Filter"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *MemoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
			s.total = msg.Total
			s.errMsg = ""
		}
		s.loaded = true
		if s.selected >= len(s.entries) {
			s.selected = 0
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		case "f":
			s.filter = (s.filter + 1) % len(typeFilters)
			s.expanded = make(map[int]bool)
			s.loaded = false
			return s, s.load()
		}
	}
	return s, nil
}

func (s *MemoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading memories...")
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing remembered yet. Go chat!")
	}

	var b strings.Builder
	b.WriteString("\n")

	filterLabel := "all"
	if f := typeFilters[s.filter]; f != "" {
		filterLabel = string(f)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render(fmt.Sprintf("%d memories · filter: %s", s.total, filterLabel))))
	b.WriteString("\n\n")

	for i, e := range s.entries {
		content := e.Content
		if len([]rune(content)) > 60 {
			content = string([]rune(content)[:60]) + "..."
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  [%s]  %s",
			prefix, e.Timestamp.Format("Jan 02 15:04"), e.Type, content)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString("  " + style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] {
			for k, v := range e.Context {
				b.WriteString("        " + theme.Hint.Render(k+": "+v))
				b.WriteString("\n")
			}
			if len(e.Tags) > 0 {
				b.WriteString("        " + theme.Hint.Render("tags: "+strings.Join(e.Tags, ", ")))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
