package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deskpet/deskpet/internal/intent"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <text>",
	Short: "Classify a message without starting the TUI",
	Long: `Runs the intent engine on the given text and prints the detected
category, confidence, extracted entities, and suggested action.
Useful for tuning rules and debugging.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		engine, err := intent.New(intent.DefaultRules(), cfg.EngineConfig())
		if err != nil {
			return fmt.Errorf("build intent engine: %w", err)
		}

		text := strings.Join(args, " ")
		res := engine.Classify(text)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "category:   %s\n", res.Category)
		fmt.Fprintf(out, "confidence: %.2f\n", res.Confidence)
		fmt.Fprintf(out, "rules:      %d\n", res.MatchedRules)
		if len(res.Entities) > 0 {
			kinds := make([]string, 0, len(res.Entities))
			for kind := range res.Entities {
				kinds = append(kinds, string(kind))
			}
			sort.Strings(kinds)
			fmt.Fprintln(out, "entities:")
			for _, kind := range kinds {
				fmt.Fprintf(out, "  %s: %s\n", kind, strings.Join(res.Entities[intent.Kind(kind)], ", "))
			}
		}
		if res.SuggestedAction != "" {
			fmt.Fprintf(out, "suggestion: %s\n", res.SuggestedAction)
		}
		return nil
	},
}
