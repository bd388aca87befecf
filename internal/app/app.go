package app

import (
	"context"
	"fmt"
	"os"
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
	"github.com/deskpet/deskpet/internal/screens/home"
	"github.com/deskpet/deskpet/internal/ui/layout"
)

// Options carries the wired services the TUI runs on.
type Options struct {
	Pet       personality.Personality
	PetName   string
	Engine    *intent.Engine
	Repo      *memory.Repo
	Provider  responder.Provider
	Assistant *automation.Assistant
	Monitor   *monitor.Monitor
	// MonitorInterval is the foreground sampling period. Zero disables
	// sampling even when Monitor is set.
	MonitorInterval time.Duration
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	pet     personality.Personality
	petName string
	width   int
	height  int

	mon          *monitor.Monitor
	repo         *memory.Repo
	interval     time.Duration
	lastActivity monitor.Activity
}

// monitorTickMsg schedules a foreground sample.
type monitorTickMsg struct{}

// monitorSampledMsg carries the result of one foreground sample.
type monitorSampledMsg struct {
	activity monitor.Activity
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Pet, opts.PetName, opts.Engine, opts.Repo, opts.Provider, opts.Assistant, opts.Monitor)
	return AppModel{
		router:   router.New(homeScreen),
		pet:      opts.Pet,
		petName:  opts.PetName,
		mon:      opts.Monitor,
		repo:     opts.Repo,
		interval: opts.MonitorInterval,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.scheduleSample()
}

func (m AppModel) scheduleSample() tea.Cmd {
	if m.mon == nil || m.interval <= 0 {
		return nil
	}
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return monitorTickMsg{}
	})
}

// sampleCmd reads the foreground window, feeds the monitor, and records
// an activity change in the interaction log. Read failures (headless
// session, missing tooling) sample nothing.
func (m AppModel) sampleCmd() tea.Cmd {
	mon := m.mon
	repo := m.repo
	prev := m.lastActivity
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		obs, err := mon.Sample(ctx)
		if err != nil || obs.Title == "" {
			return monitorSampledMsg{activity: prev}
		}

		if repo != nil && obs.Activity != prev && obs.Activity != monitor.ActivityUnknown {
			_ = repo.Record(ctx, memory.Entry{
				Type:    memory.TypeScreenActivity,
				Content: obs.Title,
				Context: map[string]string{
					"app":      obs.App,
					"activity": string(obs.Activity),
				},
				Importance: 3,
			})
		}
		return monitorSampledMsg{activity: obs.Activity}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case monitorTickMsg:
		return m, m.sampleCmd()

	case monitorSampledMsg:
		m.lastActivity = msg.activity
		return m, m.scheduleSample()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.pet.Traits.Emoji, m.petName, string(m.pet.Type), m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
