package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	queryUser string
	queryJSON bool
)

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Find the task most similar to a query",
	Long: `Embeds the query text and scans the user's vector index for the task
with the highest cosine similarity. Prints the single best match, or reports
that nothing matched.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVarP(&queryUser, "user", "u", "", "user ID to query (required)")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output the match as JSON")
	_ = queryCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	match, err := queryService.Query(context.Background(), queryUser, args[0])
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if match == nil {
		cmd.Println("No matching task found.")
		return nil
	}

	if queryJSON {
		data, err := json.MarshalIndent(match, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal match: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Best match (%.4f):\n", match.Score)
	cmd.Printf("  [%s] %s\n", match.Task.ID, match.Task.Description)
	return nil
}
