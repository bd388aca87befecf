package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/deskpet/deskpet/internal/app"
	"github.com/deskpet/deskpet/internal/automation"
	"github.com/deskpet/deskpet/internal/intent"
	"github.com/deskpet/deskpet/internal/memory"
	"github.com/deskpet/deskpet/internal/monitor"
	"github.com/deskpet/deskpet/internal/responder"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := memory.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	repo := st.Repo()

	if cfg.MemoryCap > 0 {
		if err := repo.Prune(ctx, cfg.MemoryCap); err != nil {
			fmt.Fprintln(os.Stderr, "warning: prune memories:", err)
		}
	}

	engine, err := intent.New(intent.DefaultRules(), cfg.EngineConfig())
	if err != nil {
		return fmt.Errorf("build intent engine: %w", err)
	}

	provider, err := buildProvider(cmd, repo)
	if err != nil {
		return err
	}

	opts := app.Options{
		Pet:      cfg.Personality(),
		PetName:  cfg.Pet.Name,
		Engine:   engine,
		Repo:     repo,
		Provider: provider,
	}

	if cfg.Automation.Enabled {
		lib := automation.NewLibrary()
		if cfg.Automation.MacroDir != "" {
			if err := loadMacros(lib, cfg.Automation.MacroDir); err != nil {
				return err
			}
		}
		engine := automation.NewEngine(automation.NopExecutor{})
		opts.Assistant = automation.NewAssistant(engine, lib)
		opts.Assistant.SetLog(repo)
	}

	if cfg.Monitor.Enabled {
		opts.Monitor = monitor.New()
		opts.MonitorInterval = cfg.Monitor.Interval()
	}

	return app.Run(opts)
}

// buildProvider wires the reply provider: explicit env config first,
// then key discovery, then the canned fallback.
func buildProvider(cmd *cobra.Command, repo *memory.Repo) (responder.Provider, error) {
	ctx := cmd.Context()

	cfg := responder.ConfigFromEnv()
	if os.Getenv("DESKPET_REPLY_PROVIDER") == "" {
		if discovered, ok := responder.DiscoverConfig(); ok {
			cfg = discovered
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("reply provider config: %w", err)
	}

	provider, err := responder.NewProvider(ctx, cfg, repo)
	if err != nil {
		return nil, fmt.Errorf("build reply provider: %w", err)
	}
	return provider, nil
}

// loadMacros registers every .json macro in dir. A macro that fails to
// read or validate is a startup error, not a silent skip.
func loadMacros(lib *automation.Library, dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("scan macro dir %s: %w", dir, err)
	}
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read macro %s: %w", path, err)
		}
		if _, err := lib.AddJSON(raw); err != nil {
			return fmt.Errorf("load macro %s: %w", path, err)
		}
	}
	return nil
}
