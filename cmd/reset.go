package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptiq/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded scores, snapshots and training runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("refusing to delete data without --force")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		client := st.Client()
		scores, err := client.ScoreEvent.Delete().Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete score events: %w", err)
		}
		snaps, err := client.ParamSnapshot.Delete().Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete snapshots: %w", err)
		}
		runs, err := client.TrainingRun.Delete().Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete training runs: %w", err)
		}

		fmt.Printf("deleted %d score events, %d snapshots, %d training runs\n", scores, snaps, runs)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually delete the data")
}
