// Package chat implements the conversation screen: every line the user
// types is classified, logged, and answered in the pet's voice.
package chat

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/deskpet/deskpet/internal/automation"
	"github.com/deskpet/deskpet/internal/intent"
	"github.com/deskpet/deskpet/internal/memory"
	"github.com/deskpet/deskpet/internal/monitor"
	"github.com/deskpet/deskpet/internal/personality"
	"github.com/deskpet/deskpet/internal/responder"
	"github.com/deskpet/deskpet/internal/router"
	"github.com/deskpet/deskpet/internal/screen"
	"github.com/deskpet/deskpet/internal/ui/components"
	"github.com/deskpet/deskpet/internal/ui/layout"
	"github.com/deskpet/deskpet/internal/ui/theme"
)

// lineKind distinguishes transcript lines for styling.
type lineKind int

const (
	lineUser lineKind = iota
	linePet
	lineIntent
	lineSystem
)

type transcriptLine struct {
	kind lineKind
	text string
}

// recentWindow bounds how many prior categories feed back into
// classification.
const recentWindow = 5

// visibleLines bounds the transcript tail shown on screen.
const visibleLines = 30

// ChatScreen is the conversation loop.
type ChatScreen struct {
	pet       personality.Personality
	petName   string
	engine    *intent.Engine
	repo      *memory.Repo
	provider  responder.Provider
	assistant *automation.Assistant
	mon       *monitor.Monitor

	input      components.TextInput
	transcript []transcriptLine
	recent     []intent.Category
	suggested  string // macro name offered for the last intent
	waiting    bool
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a new ChatScreen.
func New(pet personality.Personality, petName string, engine *intent.Engine, repo *memory.Repo, provider responder.Provider, assistant *automation.Assistant, mon *monitor.Monitor) *ChatScreen {
	return &ChatScreen{
		pet:       pet,
		petName:   petName,
		engine:    engine,
		repo:      repo,
		provider:  provider,
		assistant: assistant,
		mon:       mon,
		input:     components.NewTextInput("Say something...", 500),
		transcript: []transcriptLine{
			{kind: linePet, text: pet.Greeting()},
		},
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	return "Chat"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
	if s.suggested != "" {
		hints = append([]layout.KeyHint{
			{Key: "Tab", Description: "Run " + s.suggested},
		}, hints...)
	}
	return hints
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyReadyMsg:
		s.waiting = false
		if msg.Err != nil {
			s.transcript = append(s.transcript, transcriptLine{
				kind: lineSystem,
				text: "(the pet is speechless: " + msg.Err.Error() + ")",
			})
		} else {
			s.transcript = append(s.transcript, transcriptLine{kind: linePet, text: msg.Text})
		}
		return s, nil

	case macroDoneMsg:
		var text string
		switch {
		case msg.Err != nil:
			text = fmt.Sprintf("macro %q failed: %v", msg.Name, msg.Err)
		default:
			text = fmt.Sprintf("macro %q finished (%d steps)", msg.Name, len(msg.Result.Steps))
		}
		s.transcript = append(s.transcript, transcriptLine{kind: lineSystem, text: text})
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			if s.suggested != "" {
				name := s.suggested
				s.suggested = ""
				return s, s.runMacro(name)
			}
			return s, nil
		case "enter":
			text := strings.TrimSpace(s.input.Value())
			if text == "" || s.waiting {
				return s, nil
			}
			s.input.Reset()
			return s, s.send(text)
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// send classifies the input, updates the transcript, and kicks off the
// reply command.
func (s *ChatScreen) send(text string) tea.Cmd {
	res := s.engine.ClassifyContext(text, s.intentContext())

	s.transcript = append(s.transcript,
		transcriptLine{kind: lineUser, text: text},
		transcriptLine{kind: lineIntent, text: intentLabel(res)},
	)

	s.recent = append(s.recent, res.Category)
	if len(s.recent) > recentWindow {
		s.recent = s.recent[len(s.recent)-recentWindow:]
	}

	s.suggested = ""
	if s.assistant != nil {
		if name, ok := s.assistant.SuggestFor(res); ok {
			s.suggested = name
		}
	}

	draft := s.pet.Respond(res)
	s.waiting = true

	repo := s.repo
	provider := s.provider
	return func() tea.Msg {
		ctx := responder.WithPurpose(context.Background(), "chat_reply")

		// A memory question answers from the log itself.
		if res.Category == intent.CategoryMemoryOperation && repo != nil {
			if recall, err := repo.ContextFor(ctx, text, 3); err == nil && recall != "" {
				draft += "\n" + recall
			}
		}

		if repo != nil {
			_ = repo.Record(ctx, memory.Entry{
				Type:    memory.TypeTextInput,
				Content: text,
				Context: map[string]string{
					"intent":     string(res.Category),
					"confidence": fmt.Sprintf("%.2f", res.Confidence),
				},
			})
			_ = repo.LearnPattern(ctx, "intent_usage", map[string]string{
				"intent": string(res.Category),
			})
		}

		resp, err := provider.Reply(ctx, responder.Request{
			System:    systemPrompt(s.pet, s.petName),
			Messages:  []responder.Message{{Role: responder.RoleUser, Content: text}},
			Draft:     draft,
			MaxTokens: 300,
		})
		if err != nil {
			return replyReadyMsg{Err: err}
		}
		return replyReadyMsg{Text: resp.Text}
	}
}

func (s *ChatScreen) runMacro(name string) tea.Cmd {
	assistant := s.assistant
	return func() tea.Msg {
		result, err := assistant.ExecuteByName(context.Background(), name)
		return macroDoneMsg{Name: name, Result: result, Err: err}
	}
}

// intentContext folds in the monitor's latest observation and the recent
// category window.
func (s *ChatScreen) intentContext() intent.Context {
	ctx := intent.Context{Recent: s.recent}
	if s.mon != nil {
		if obs, ok := s.mon.Current(); ok {
			ctx.ForegroundApp = obs.Title
		}
	}
	return ctx
}

func systemPrompt(pet personality.Personality, petName string) string {
	return fmt.Sprintf("You are %s, a desktop companion with an %s personality (%s). Keep replies to one or two short sentences.",
		petName, pet.Type, pet.Traits.Name)
}

func intentLabel(res intent.Result) string {
	label := fmt.Sprintf("  [%s %.0f%%]", res.Category, res.Confidence*100)
	if res.Confidence >= 0.7 {
		return theme.Confident.Render(label)
	}
	return theme.Uncertain.Render(label)
}

func (s *ChatScreen) View(width, height int) string {
	var b strings.Builder

	userStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	petStyle := lipgloss.NewStyle().Foreground(theme.Text)
	systemStyle := theme.Hint

	lines := s.transcript
	if len(lines) > visibleLines {
		lines = lines[len(lines)-visibleLines:]
	}

	for _, line := range lines {
		switch line.kind {
		case lineUser:
			b.WriteString(userStyle.Render("you: ") + petStyle.Render(line.text))
		case linePet:
			b.WriteString(petStyle.Render(s.petName + ": " + line.text))
		case lineIntent:
			b.WriteString(line.text)
		case lineSystem:
			b.WriteString(systemStyle.Render(line.text))
		}
		b.WriteString("\n")
	}

	if s.waiting {
		b.WriteString(systemStyle.Render(s.petName + " is thinking..."))
		b.WriteString("\n")
	}
	if s.suggested != "" {
		b.WriteString(theme.Hint.Render("press Tab to run " + s.suggested))
		b.WriteString("\n")
	}

	b.WriteString("\n" + s.input.View())

	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 2).
		Render(b.String())
}
