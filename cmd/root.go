package cmd

import (
	"github.com/abhisek/adaptiq/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adaptiq",
	Short: "Adaptive learning recommendation engine",
	Long:  "Adaptiq is a Bayesian knowledge tracing engine that recommends the next activity for a learner and refits its parameters from score history.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ADAPTIQ_DB env var)")
	rootCmd.PersistentFlags().String("fixture", "", "Path to catalog fixture JSON (overrides ADAPTIQ_FIXTURE env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to engine config YAML")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then ADAPTIQ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
