package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the memory database",
	Long:  `Deletes the memory database file. The pet forgets everything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to reset.")
			return nil
		}

		if !resetForce {
			fmt.Fprintf(cmd.OutOrStdout(), "Delete all memories at %s? [y/N] ", dbPath)
			reader := bufio.NewReader(cmd.InOrStdin())
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("delete database: %w", err)
		}
		// SQLite sidecar files from WAL mode.
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")

		fmt.Fprintln(cmd.OutOrStdout(), "Memories cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "skip confirmation")
}
