package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var indexUser string

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build a user's vector index",
	Long: `Embeds every task the user owns and stores the vectors in the
configured vector backend. Re-running overwrites existing entries, so the
index can be rebuilt at any time.`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringVarP(&indexUser, "user", "u", "", "user ID to index (required)")
	_ = indexCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	report, err := indexService.IndexUser(context.Background(), indexUser)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	cmd.Printf("Indexed %d tasks for user %s", report.TasksIndexed, report.UserID)
	if report.TasksFailed > 0 {
		cmd.Printf(" (%d failed)", report.TasksFailed)
	}
	cmd.Println()
	return nil
}
