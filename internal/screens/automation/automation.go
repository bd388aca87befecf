// Package automation implements the macro picker screen: browse the
// library, run a macro, and review recent runs.
package automation

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	auto "github.com/deskpet/deskpet/internal/automation"
	"github.com/deskpet/deskpet/internal/router"
	"github.com/deskpet/deskpet/internal/screen"
	"github.com/deskpet/deskpet/internal/ui/layout"
	"github.com/deskpet/deskpet/internal/ui/theme"
)

type runDoneMsg struct {
	Name   string
	Result auto.RunResult
	Err    error
}

// AutomationScreen lists macros and runs the selected one.
type AutomationScreen struct {
	assistant *auto.Assistant
	names     []string
	selected  int
	running   bool
	lastNote  string
	lastOK    bool
}

var _ screen.Screen = (*AutomationScreen)(nil)
var _ screen.KeyHintProvider = (*AutomationScreen)(nil)

// New creates a new AutomationScreen.
func New(assistant *auto.Assistant) *AutomationScreen {
	var names []string
	if assistant != nil {
		names = assistant.Library().Names()
	}
	return &AutomationScreen{
		assistant: assistant,
		names:     names,
	}
}

func (s *AutomationScreen) Init() tea.Cmd {
	return nil
}

func (s *AutomationScreen) Title() string {
	return "Automation"
}

func (s *AutomationScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Run"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AutomationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case runDoneMsg:
		s.running = false
		if msg.Err != nil {
			s.lastNote = fmt.Sprintf("%s failed: %v", msg.Name, msg.Err)
			s.lastOK = false
		} else {
			s.lastNote = fmt.Sprintf("%s finished in %s (%d steps)",
				msg.Name, msg.Result.Duration.Round(time.Millisecond), len(msg.Result.Steps))
			s.lastOK = true
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
			if s.selected < len(s.names)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.running || len(s.names) == 0 {
				return s, nil
			}
			s.running = true
			name := s.names[s.selected]
			assistant := s.assistant
			return s, func() tea.Msg {
				result, err := assistant.ExecuteByName(context.Background(), name)
				return runDoneMsg{Name: name, Result: result, Err: err}
			}
		}
	}
	return s, nil
}

func (s *AutomationScreen) View(width, height int) string {
	if s.assistant == nil || len(s.names) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No macros available.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, name := range s.names {
		task, _ := s.assistant.Library().Get(name)

		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%s", prefix, name)
		if task.Description != "" {
			line += "  " + task.Description
		}
		b.WriteString("  " + style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case s.running:
		b.WriteString("  " + theme.Hint.Render("running..."))
	case s.lastNote != "" && s.lastOK:
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Success).Render(s.lastNote))
	case s.lastNote != "":
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.lastNote))
	}

	runs := len(s.assistant.History())
	if runs > 0 {
		b.WriteString("\n\n  " + theme.Hint.Render(fmt.Sprintf("%d runs this session", runs)))
	}

	return b.String()
}
