package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptiq/internal/store"
	"github.com/abhisek/adaptiq/internal/trainer"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Re-estimate model parameters from the score history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		timeout, _ := cmd.Flags().GetDuration("timeout")

		eng, st, err := openEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		obs, err := st.ScoreRepo().Observations(ctx)
		if err != nil {
			return err
		}
		if len(obs) == 0 {
			fmt.Println("no observations recorded, nothing to train on")
			return nil
		}

		trainCtx := ctx
		if timeout > 0 {
			var cancel context.CancelFunc
			trainCtx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		start := time.Now()
		res, err := eng.Train(trainCtx, obs)
		elapsed := time.Since(start)

		run := store.TrainingRunData{
			Observations: len(obs),
			DurationMs:   elapsed.Milliseconds(),
		}
		if err != nil {
			var convErr *trainer.ConvergenceError
			if errors.As(err, &convErr) {
				run.Iterations = convErr.Iterations
			}
			if appendErr := st.TrainingRepo().Append(ctx, run); appendErr != nil {
				return fmt.Errorf("%w (additionally, recording the run failed: %v)", err, appendErr)
			}
			return err
		}

		run.Iterations = res.Iterations
		run.LogLikelihood = res.LogLikelihood
		run.Converged = true
		if err := st.TrainingRepo().Append(ctx, run); err != nil {
			return err
		}

		count, err := st.ScoreRepo().Count(ctx)
		if err != nil {
			return err
		}
		snap := store.SnapshotFromParams(res.Params, nil, int64(count))
		if err := st.ParamsRepo().Save(ctx, snap); err != nil {
			return err
		}

		fmt.Printf("trained on %d observations: converged in %d iterations (log-likelihood %.4f, %s)\n",
			len(obs), res.Iterations, res.LogLikelihood, elapsed.Round(time.Millisecond))
		return nil
	},
}

func init() {
	trainCmd.Flags().Duration("timeout", 0, "Abort training after this duration (0 = no limit)")
}
