package cmd

import (
	"github.com/lunara-health/lunara/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lunara",
	Short: "Adaptive health education API",
	Long:  "Lunara is an adaptive quiz backend for women's health education, personalizing content to each learner's progress.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LUNARA_DB env var)")
	rootCmd.Flags().String("addr", ":8080", "Listen address for the HTTP server")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(llmCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LUNARA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
