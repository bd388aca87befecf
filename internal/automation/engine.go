package automation

import (
	"context"
	"fmt"
	"time"
)

// Executor performs individual desktop actions. Implementations wrap a
// platform automation backend; tests use a scripted executor.
type Executor interface {
	Click(ctx context.Context, x, y int) error
	Type(ctx context.Context, text string) error
	PressKey(ctx context.Context, key string) error
	MoveMouse(ctx context.Context, x, y int) error
	Scroll(ctx context.Context, amount int) error
	Screenshot(ctx context.Context) (string, error)
	OpenApp(ctx context.Context, app string) error
}

// StepResult records the outcome of one executed step.
type StepResult struct {
	Step   Step
	Output string
	Err    error
}

// RunResult is the outcome of running a whole task.
type RunResult struct {
	Task     string
	Steps    []StepResult
	Err      error
	Duration time.Duration
}

// OK reports whether the run completed without error.
func (r RunResult) OK() bool {
	return r.Err == nil
}

// Engine runs tasks against an executor, one step at a time. A step
// failure stops the run.
type Engine struct {
	exec Executor
	now  func() time.Time
}

func NewEngine(exec Executor) *Engine {
	return &Engine{exec: exec, now: time.Now}
}

// Run executes every step of the task in order. The context is checked
// between steps so long macros can be cancelled.
func (e *Engine) Run(ctx context.Context, task Task) RunResult {
	start := e.now()
	result := RunResult{Task: task.Name}

	if err := task.Validate(); err != nil {
		result.Err = err
		result.Duration = e.now().Sub(start)
		return result
	}

	for i, step := range task.Steps {
		if err := ctx.Err(); err != nil {
			result.Err = fmt.Errorf("step %d: %w", i, err)
			break
		}

		out, err := e.runStep(ctx, step)
		result.Steps = append(result.Steps, StepResult{Step: step, Output: out, Err: err})
		if err != nil {
			result.Err = fmt.Errorf("step %d (%s): %w", i, step.Action, err)
			break
		}
	}

	result.Duration = e.now().Sub(start)
	return result
}

func (e *Engine) runStep(ctx context.Context, step Step) (string, error) {
	switch step.Action {
	case ActionClick:
		return "", e.exec.Click(ctx, step.X, step.Y)
	case ActionType:
		return "", e.exec.Type(ctx, step.Text)
	case ActionPressKey:
		return "", e.exec.PressKey(ctx, step.Key)
	case ActionMoveMouse:
		return "", e.exec.MoveMouse(ctx, step.X, step.Y)
	case ActionScroll:
		return "", e.exec.Scroll(ctx, step.Amount)
	case ActionScreenshot:
		return e.exec.Screenshot(ctx)
	case ActionWait:
		select {
		case <-time.After(step.Duration()):
			return "", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	case ActionOpenApp:
		return "", e.exec.OpenApp(ctx, step.App)
	default:
		return "", fmt.Errorf("unknown action %q", step.Action)
	}
}

// NopExecutor performs no real desktop actions. It stands in when no
// platform backend is wired up, so macro runs still log their steps.
type NopExecutor struct{}

func (NopExecutor) Click(context.Context, int, int) error  { return nil }
func (NopExecutor) Type(context.Context, string) error     { return nil }
func (NopExecutor) PressKey(context.Context, string) error { return nil }
func (NopExecutor) MoveMouse(context.Context, int, int) error {
	return nil
}
func (NopExecutor) Scroll(context.Context, int) error { return nil }
func (NopExecutor) Screenshot(context.Context) (string, error) {
	return "screenshot skipped (no desktop backend)", nil
}
func (NopExecutor) OpenApp(context.Context, string) error { return nil }
