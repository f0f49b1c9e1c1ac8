package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show engine statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		eng, st, err := openEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cat := eng.Catalog()
		fmt.Printf("catalog: %d skills, %d activities\n", cat.NumSkills(), cat.NumActivities())

		count, err := st.ScoreRepo().Count(ctx)
		if err != nil {
			return err
		}
		learners := make(map[int]bool)
		for _, o := range eng.Observations() {
			learners[o.Learner] = true
		}
		fmt.Printf("scores: %d observations across %d learners\n", count, len(learners))

		run, err := st.TrainingRepo().Latest(ctx)
		if err != nil {
			return err
		}
		if run == nil {
			fmt.Println("training: never run")
			return nil
		}
		status := "did not converge"
		if run.Converged {
			status = fmt.Sprintf("converged in %d iterations (log-likelihood %.4f)", run.Iterations, run.LogLikelihood)
		}
		fmt.Printf("training: last run on %d observations, %s, took %s\n",
			run.Observations, status, time.Duration(run.DurationMs)*time.Millisecond)
		return nil
	},
}
