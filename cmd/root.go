package cmd

import (
	"github.com/deskpet/deskpet/internal/config"
	"github.com/deskpet/deskpet/internal/memory"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deskpet",
	Short: "Terminal desk companion",
	Long:  "Deskpet is a terminal companion with an MBTI personality that understands what you ask it to do.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DESKPET_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides DESKPET_CONFIG env var)")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then DESKPET_DB / the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, memory.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, memory.EnsureDir(cfg.DBPath)
	}
	return memory.DefaultDBPath()
}

// loadConfig resolves and loads the config file.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(path)
}
