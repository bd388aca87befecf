package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deskpet/deskpet/internal/memory"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show memory and usage statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		summary, err := repo.Summary(ctx)
		if err != nil {
			return fmt.Errorf("summarize memories: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, summary)

		patterns, err := repo.Patterns(ctx, "intent_usage", 10)
		if err != nil {
			return fmt.Errorf("load usage patterns: %w", err)
		}
		if len(patterns) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Most used intents:")
			for _, p := range patterns {
				label := p.Data["intent"]
				if label == "" {
					label = "unknown"
				}
				fmt.Fprintf(out, "  %-20s %d\n", label, p.Frequency)
			}
		}
		return nil
	},
}
