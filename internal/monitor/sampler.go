package monitor

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNoTitleSource means this platform has no supported way to read the
// foreground window title.
var ErrNoTitleSource = errors.New("no foreground title source on this platform")

// ForegroundTitle asks the desktop session for the focused window title.
// Best effort: Linux needs xdotool on PATH, macOS uses osascript. Callers
// treat errors as "nothing observed" and keep going.
func ForegroundTitle(ctx context.Context) (string, error) {
	switch runtime.GOOS {
	case "linux":
		out, err := exec.CommandContext(ctx, "xdotool", "getactivewindow", "getwindowname").Output()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(out)), nil
	case "darwin":
		script := `tell application "System Events" to get name of first application process whose frontmost is true`
		out, err := exec.CommandContext(ctx, "osascript", "-e", script).Output()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(out)), nil
	default:
		return "", ErrNoTitleSource
	}
}

// Sample reads the foreground title and records it. An empty title or a
// read failure records nothing.
func (m *Monitor) Sample(ctx context.Context) (Observation, error) {
	title, err := ForegroundTitle(ctx)
	if err != nil {
		return Observation{}, err
	}
	if title == "" {
		return Observation{}, nil
	}
	return m.Observe(title), nil
}
