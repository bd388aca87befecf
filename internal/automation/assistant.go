package automation

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/deskpet/deskpet/internal/intent"
	"github.com/deskpet/deskpet/internal/memory"
)

// RunLog receives a memory entry per macro run. *memory.Repo satisfies it.
type RunLog interface {
	Record(ctx context.Context, e memory.Entry) error
}

// HistoryEntry records one macro run.
type HistoryEntry struct {
	ID     uuid.UUID
	Task   string
	Start  time.Time
	Result RunResult
}

// Assistant ties the macro library to an engine and keeps a run history.
type Assistant struct {
	engine *Engine
	lib    *Library

	mu      sync.Mutex
	history []HistoryEntry
	log     RunLog
}

func NewAssistant(engine *Engine, lib *Library) *Assistant {
	return &Assistant{engine: engine, lib: lib}
}

// SetLog attaches an interaction log; every run is recorded to it.
func (a *Assistant) SetLog(log RunLog) {
	a.log = log
}

// Library returns the assistant's macro library.
func (a *Assistant) Library() *Library {
	return a.lib
}

// ExecuteByName runs the named macro and records the run.
func (a *Assistant) ExecuteByName(ctx context.Context, name string) (RunResult, error) {
	task, ok := a.lib.Get(name)
	if !ok {
		return RunResult{}, fmt.Errorf("unknown macro %q", name)
	}

	entry := HistoryEntry{
		ID:    uuid.New(),
		Task:  task.Name,
		Start: time.Now(),
	}
	entry.Result = a.engine.Run(ctx, task)

	a.mu.Lock()
	a.history = append(a.history, entry)
	a.mu.Unlock()

	if a.log != nil {
		status := "ok"
		if entry.Result.Err != nil {
			status = entry.Result.Err.Error()
		}
		logErr := a.log.Record(ctx, memory.Entry{
			Type:    memory.TypeAutomation,
			Content: task.Name,
			Context: map[string]string{
				"run_id": entry.ID.String(),
				"steps":  fmt.Sprintf("%d", len(entry.Result.Steps)),
				"status": status,
			},
		})
		if logErr != nil {
			fmt.Fprintln(os.Stderr, "warning: failed to log macro run:", logErr)
		}
	}

	return entry.Result, entry.Result.Err
}

// History returns a copy of the run history, oldest first.
func (a *Assistant) History() []HistoryEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]HistoryEntry, len(a.history))
	copy(out, a.history)
	return out
}

// SuggestFor maps a classified intent to an applicable macro name.
// Returns false when no macro fits the category.
func (a *Assistant) SuggestFor(res intent.Result) (string, bool) {
	var name string
	switch res.Category {
	case intent.CategoryScreenshotRequest:
		name = "Take Screenshot"
	case intent.CategorySearch, intent.CategoryWebSearch:
		name = "Search Web"
	case intent.CategoryAutomationRequest:
		// No specific macro; let the user pick from the library.
		return "", false
	default:
		return "", false
	}
	if _, ok := a.lib.Get(name); !ok {
		return "", false
	}
	return name, true
}
