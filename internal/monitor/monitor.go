// Package monitor classifies foreground window activity from window
// titles and keeps a short history for detecting usage patterns.
package monitor

import (
	"strings"
	"sync"
	"time"
)

// Activity is a broad classification of what the user is doing.
type Activity string

const (
	ActivityWebBrowsing Activity = "web_browsing"
	ActivityCoding      Activity = "coding"
	ActivityWriting     Activity = "writing"
	ActivitySpreadsheet Activity = "spreadsheet"
	ActivityTerminal    Activity = "terminal"
	ActivityUnknown     Activity = "unknown"
)

// Observation is a single snapshot of foreground activity.
type Observation struct {
	Time     time.Time
	Title    string
	App      string
	Activity Activity
}

// historyLimit bounds the in-memory observation window.
const historyLimit = 50

// minObservations is how many records must exist before a focus
// pattern can be reported at all.
const minObservations = 3

// focusWindow is how many trailing observations must share an activity
// to count as a focus pattern.
const focusWindow = 5

type bucket struct {
	keywords []string
	app      string
	activity Activity
}

var buckets = []bucket{
	{[]string{"visual studio code", "vscode", "pycharm", "intellij", "goland", "vim", "neovim", "sublime"}, "ide", ActivityCoding},
	{[]string{"chrome", "firefox", "safari", "edge", "brave"}, "browser", ActivityWebBrowsing},
	{[]string{"microsoft word", "google docs", "notepad", "libreoffice writer", "pages"}, "writer", ActivityWriting},
	{[]string{"excel", "google sheets", "libreoffice calc", "numbers"}, "spreadsheet", ActivitySpreadsheet},
	{[]string{"terminal", "iterm", "konsole", "alacritty", "powershell", "cmd.exe"}, "terminal", ActivityTerminal},
}

// AnalyzeTitle maps a window title to an app label and activity.
// Matching is case-insensitive substring; unknown titles yield
// ActivityUnknown with an empty app label.
func AnalyzeTitle(title string) (app string, activity Activity) {
	lower := strings.ToLower(title)
	for _, b := range buckets {
		for _, kw := range b.keywords {
			if strings.Contains(lower, kw) {
				return b.app, b.activity
			}
		}
	}
	return "", ActivityUnknown
}

// Monitor records foreground observations and detects focus patterns.
// Safe for concurrent use.
type Monitor struct {
	mu      sync.Mutex
	history []Observation
	now     func() time.Time
}

func New() *Monitor {
	return &Monitor{now: time.Now}
}

// Observe records the current foreground window title and returns the
// resulting observation.
func (m *Monitor) Observe(title string) Observation {
	app, activity := AnalyzeTitle(title)
	obs := Observation{
		Time:     m.now(),
		Title:    title,
		App:      app,
		Activity: activity,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append(m.history, obs)
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
	return obs
}

// History returns a copy of the recorded observations, oldest first.
func (m *Monitor) History() []Observation {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Observation, len(m.history))
	copy(out, m.history)
	return out
}

// Current returns the most recent observation, if any.
func (m *Monitor) Current() (Observation, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.history) == 0 {
		return Observation{}, false
	}
	return m.history[len(m.history)-1], true
}

// DetectPattern reports sustained focus: when the trailing window of
// observations (up to focusWindow, at least minObservations) shares a
// known activity it returns a short description and true.
func (m *Monitor) DetectPattern() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.history) < minObservations {
		return "", false
	}

	window := focusWindow
	if len(m.history) < window {
		window = len(m.history)
	}
	tail := m.history[len(m.history)-window:]
	activity := tail[0].Activity
	if activity == ActivityUnknown {
		return "", false
	}
	for _, obs := range tail[1:] {
		if obs.Activity != activity {
			return "", false
		}
	}
	return "focused on " + string(activity), true
}

// Reset clears the observation history.
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = nil
}
