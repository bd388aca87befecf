package home

import (
	"context"
	"fmt"
	"strings"
	"time"

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
	automationscreen "github.com/deskpet/deskpet/internal/screens/automation"
	"github.com/deskpet/deskpet/internal/screens/chat"
	"github.com/deskpet/deskpet/internal/screens/memorylog"
	"github.com/deskpet/deskpet/internal/ui/components"
	"github.com/deskpet/deskpet/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu          components.Menu
	pet           personality.Personality
	petName       string
	memoryCount   int
	focusNote     string
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(pet personality.Personality, petName string, engine *intent.Engine, repo *memory.Repo, provider responder.Provider, assistant *automation.Assistant, mon *monitor.Monitor) *HomeScreen {
	// Load dashboard numbers up front; failures just leave zeros.
	var memoryCount int
	var lastSeen time.Time
	if repo != nil {
		memoryCount, _ = repo.Count(context.Background())
		if recent, err := repo.Recent(context.Background(), 1, ""); err == nil && len(recent) > 0 {
			lastSeen = recent[0].Timestamp
		}
	}

	var focusNote string
	if mon != nil {
		focusNote, _ = mon.DetectPattern()
	}

	mascotVariant := MascotIdle
	if focusNote != "" {
		mascotVariant = MascotCurious
	} else if !lastSeen.IsZero() && time.Since(lastSeen) < time.Hour {
		mascotVariant = MascotHappy
	}

	items := []components.MenuItem{
		{Label: "CHAT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: chat.New(pet, petName, engine, repo, provider, assistant, mon),
				}
			}
		}},
		{Label: "MEMORY LOG", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: memorylog.New(repo)}
			}
		}},
		{Label: "AUTOMATION", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: automationscreen.New(assistant)}
			}
		}, Disabled: assistant == nil},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:          components.NewMenu(items),
		pet:           pet,
		petName:       petName,
		memoryCount:   memoryCount,
		focusNote:     focusNote,
		mascotVariant: mascotVariant,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderMascot(h.mascotVariant))

	greeting := fmt.Sprintf("%s says: %s", h.petName, h.pet.Greeting())
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(greeting))

	stats := fmt.Sprintf("%s · %d memories", h.pet.Temperament(), h.memoryCount)
	if h.focusNote != "" {
		stats += " · " + h.focusNote
	}
	sections = append(sections, theme.Hint.Render(stats))

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
