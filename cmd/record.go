package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptiq/internal/matrix"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a score and update the learner's mastery",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		learner, _ := cmd.Flags().GetInt("learner")
		activity, _ := cmd.Flags().GetInt("activity")
		score, _ := cmd.Flags().GetFloat64("score")
		learnerUID, _ := cmd.Flags().GetString("learner-uid")

		eng, st, err := openEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := eng.UpdateFromScore(learner, activity, score); err != nil {
			return err
		}
		obs := matrix.Observation{Learner: learner, Activity: activity, Score: score}
		if err := st.ScoreRepo().Append(ctx, obs, learnerUID); err != nil {
			return err
		}

		mastery, err := eng.Mastery(learner)
		if err != nil {
			return err
		}
		fmt.Printf("learner %d mastery:", learner)
		for _, sk := range eng.Catalog().ActivitySkills(activity) {
			s, _ := eng.Catalog().Skill(sk)
			fmt.Printf(" %s=%.3f", s.Key, mastery[sk])
		}
		fmt.Println()
		return nil
	},
}

func init() {
	recordCmd.Flags().Int("learner", 0, "Learner id")
	recordCmd.Flags().Int("activity", 0, "Activity id")
	recordCmd.Flags().Float64("score", 0, "Observed score in [0, 1]")
	recordCmd.Flags().String("learner-uid", "", "External learner identifier (UUID)")
	recordCmd.MarkFlagRequired("learner")
	recordCmd.MarkFlagRequired("activity")
	recordCmd.MarkFlagRequired("score")
}
