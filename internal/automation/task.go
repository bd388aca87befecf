// Package automation defines macro tasks composed of desktop actions
// and runs them through a pluggable executor.
package automation

import (
	"fmt"
	"time"
)

// Action identifies a single desktop operation within a macro step.
type Action string

const (
	ActionClick      Action = "click"
	ActionType       Action = "type"
	ActionPressKey   Action = "press_key"
	ActionMoveMouse  Action = "move_mouse"
	ActionScroll     Action = "scroll"
	ActionScreenshot Action = "screenshot"
	ActionWait       Action = "wait"
	ActionOpenApp    Action = "open_app"
)

// Actions lists every supported action.
func Actions() []Action {
	return []Action{
		ActionClick, ActionType, ActionPressKey, ActionMoveMouse,
		ActionScroll, ActionScreenshot, ActionWait, ActionOpenApp,
	}
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	for _, known := range Actions() {
		if a == known {
			return true
		}
	}
	return false
}

// Step is one action with its parameters. Only the fields relevant to
// the action are set.
type Step struct {
	Action Action `json:"action"`

	// ActionClick, ActionMoveMouse
	X int `json:"x,omitempty"`
	Y int `json:"y,omitempty"`

	// ActionType
	Text string `json:"text,omitempty"`

	// ActionPressKey ("enter", "ctrl+c", ...)
	Key string `json:"key,omitempty"`

	// ActionScroll (positive up, negative down)
	Amount int `json:"amount,omitempty"`

	// ActionWait
	DurationMS int `json:"duration_ms,omitempty"`

	// ActionOpenApp
	App string `json:"app,omitempty"`
}

// Validate checks that the step's action is known and its required
// parameters are present.
func (s Step) Validate() error {
	if !s.Action.Valid() {
		return fmt.Errorf("unknown action %q", s.Action)
	}
	switch s.Action {
	case ActionType:
		if s.Text == "" {
			return fmt.Errorf("%s step requires text", s.Action)
		}
	case ActionPressKey:
		if s.Key == "" {
			return fmt.Errorf("%s step requires key", s.Action)
		}
	case ActionWait:
		if s.DurationMS <= 0 {
			return fmt.Errorf("%s step requires positive duration_ms", s.Action)
		}
	case ActionOpenApp:
		if s.App == "" {
			return fmt.Errorf("%s step requires app", s.Action)
		}
	}
	return nil
}

// Duration returns the step's wait duration, zero for non-wait steps.
func (s Step) Duration() time.Duration {
	if s.Action != ActionWait {
		return 0
	}
	return time.Duration(s.DurationMS) * time.Millisecond
}

// Task is a named macro: an ordered list of steps.
type Task struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Steps       []Step `json:"steps"`
}

// Validate checks the task has a name and at least one valid step.
func (t Task) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("task requires a name")
	}
	if len(t.Steps) == 0 {
		return fmt.Errorf("task %q has no steps", t.Name)
	}
	for i, s := range t.Steps {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("task %q step %d: %w", t.Name, i, err)
		}
	}
	return nil
}
