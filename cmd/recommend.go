package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend the next activity for a learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		learner, _ := cmd.Flags().GetInt("learner")
		eligible, _ := cmd.Flags().GetIntSlice("activities")

		eng, st, err := openEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		var pool []int
		if cmd.Flags().Changed("activities") {
			pool = eligible
		}

		activityID, err := eng.Recommend(learner, pool)
		if err != nil {
			return err
		}

		act, err := eng.Catalog().Activity(activityID)
		if err != nil {
			return err
		}
		fmt.Printf("learner %d: activity %d (%s)\n", learner, activityID, act.Key)
		return nil
	},
}

func init() {
	recommendCmd.Flags().Int("learner", 0, "Learner id")
	recommendCmd.Flags().IntSlice("activities", nil, "Restrict the eligible activity pool to these ids")
	recommendCmd.MarkFlagRequired("learner")
}
