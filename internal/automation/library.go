package automation

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// taskSchema validates macro files before they are decoded into tasks.
const taskSchema = `{
	"type": "object",
	"required": ["name", "steps"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"description": {"type": "string"},
		"steps": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["action"],
				"properties": {
					"action": {
						"enum": ["click", "type", "press_key", "move_mouse",
							"scroll", "screenshot", "wait", "open_app"]
					},
					"x": {"type": "integer"},
					"y": {"type": "integer"},
					"text": {"type": "string"},
					"key": {"type": "string"},
					"amount": {"type": "integer"},
					"duration_ms": {"type": "integer", "minimum": 1},
					"app": {"type": "string"}
				}
			}
		}
	}
}`

var (
	compiledTaskSchema     *jsonschema.Schema
	compileTaskSchemaOnce  sync.Once
	compileTaskSchemaError error
)

func getTaskSchema() (*jsonschema.Schema, error) {
	compileTaskSchemaOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(taskSchema), &parsed); err != nil {
			compileTaskSchemaError = fmt.Errorf("parse task schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://task.json", parsed); err != nil {
			compileTaskSchemaError = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledTaskSchema, compileTaskSchemaError = c.Compile("schema://task.json")
	})
	return compiledTaskSchema, compileTaskSchemaError
}

// ParseTask decodes and validates a JSON macro definition.
func ParseTask(raw []byte) (Task, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Task{}, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getTaskSchema()
	if err != nil {
		return Task{}, err
	}
	if err := schema.Validate(parsed); err != nil {
		return Task{}, fmt.Errorf("invalid macro: %w", err)
	}

	var task Task
	if err := json.Unmarshal(raw, &task); err != nil {
		return Task{}, fmt.Errorf("decode macro: %w", err)
	}
	if err := task.Validate(); err != nil {
		return Task{}, err
	}
	return task, nil
}

// Library holds the available macros by name.
type Library struct {
	mu    sync.RWMutex
	tasks map[string]Task
}

// NewLibrary returns a library pre-loaded with the built-in macros.
func NewLibrary() *Library {
	lib := &Library{tasks: make(map[string]Task)}
	for _, t := range builtinTasks() {
		lib.tasks[t.Name] = t
	}
	return lib
}

// Add registers a task, replacing any existing one with the same name.
func (l *Library) Add(task Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tasks[task.Name] = task
	return nil
}

// AddJSON parses a JSON macro definition and registers it.
func (l *Library) AddJSON(raw []byte) (Task, error) {
	task, err := ParseTask(raw)
	if err != nil {
		return Task{}, err
	}
	if err := l.Add(task); err != nil {
		return Task{}, err
	}
	return task, nil
}

// Get returns the named task.
func (l *Library) Get(name string) (Task, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	t, ok := l.tasks[name]
	return t, ok
}

// Names returns the registered task names, sorted.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.tasks))
	for name := range l.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func builtinTasks() []Task {
	return []Task{
		{
			Name:        "Take Screenshot",
			Description: "Capture the current screen",
			Steps: []Step{
				{Action: ActionScreenshot},
			},
		},
		{
			Name:        "Copy Selection",
			Description: "Copy the current selection to the clipboard",
			Steps: []Step{
				{Action: ActionPressKey, Key: "ctrl+c"},
			},
		},
		{
			Name:        "Search Web",
			Description: "Open the default browser and focus the address bar",
			Steps: []Step{
				{Action: ActionOpenApp, App: "browser"},
				{Action: ActionWait, DurationMS: 500},
				{Action: ActionPressKey, Key: "ctrl+l"},
			},
		},
	}
}
