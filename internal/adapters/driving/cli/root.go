// Package cli provides the semtask command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/semtask/semtask-cli/internal/core/ports/driving"
	"github.com/semtask/semtask-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services are injected by Execute before any command runs. Commands check
// for nil so the package stays testable without full wiring.
var (
	indexService    driving.IndexService
	queryService    driving.QueryService
	taskService     driving.TaskService
	settingsService driving.SettingsService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "semtask",
	Short: "Semantic task retrieval from the command line",
	Long: `Semtask keeps a per-user task list and answers free-text queries with
the single most semantically similar task, using vector embeddings.

Add users and tasks, build each user's vector index, then query it:

  semtask user add --email you@example.com
  semtask task add --user <id> "buy milk"
  semtask index --user <id>
  semtask query --user <id> "purchase groceries"`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
}

// Deps carries the wired services into the CLI.
type Deps struct {
	Index    driving.IndexService
	Query    driving.QueryService
	Tasks    driving.TaskService
	Settings driving.SettingsService
}

// SetServices injects service implementations. Must be called before Execute.
func SetServices(deps Deps) {
	indexService = deps.Index
	queryService = deps.Query
	taskService = deps.Tasks
	settingsService = deps.Settings
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
