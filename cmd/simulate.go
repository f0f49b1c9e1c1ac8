package cmd

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/adaptiq/internal/bkt"
	"github.com/abhisek/adaptiq/internal/engine"
	"github.com/abhisek/adaptiq/internal/matrix"
	"github.com/abhisek/adaptiq/internal/recommend"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Generate synthetic score history from the model",
	Long: "Simulate runs seeded synthetic learners against the engine: each learner " +
		"repeatedly takes the recommended activity, a latent mastery state decides the " +
		"score through the guess/slip model, and the observation is recorded. Useful " +
		"for producing a training corpus.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		learners, _ := cmd.Flags().GetInt("learners")
		steps, _ := cmd.Flags().GetInt("steps")
		seed, _ := cmd.Flags().GetInt64("seed")

		eng, st, err := openEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		recorded := 0
		g, gctx := errgroup.WithContext(ctx)
		results := make([][]matrix.Observation, learners)
		for i := 0; i < learners; i++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				obs, err := simulateLearner(eng, i, steps, rand.New(rand.NewSource(seed+int64(i))))
				if err != nil {
					return err
				}
				results[i] = obs
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		// Persist sequentially so the event log has a stable order.
		for _, obs := range results {
			for _, o := range obs {
				if err := st.ScoreRepo().Append(ctx, o, ""); err != nil {
					return err
				}
				recorded++
			}
		}

		fmt.Printf("recorded %d observations for %d learners\n", recorded, learners)
		return nil
	},
}

// simulateLearner plays one learner: a hidden per-skill mastery state
// is drawn from the prior and evolves with the transit probabilities,
// while observed scores come from the guess/slip emission model.
// Engine updates run concurrently across learners; each learner's own
// updates stay ordered.
func simulateLearner(eng *engine.Engine, learnerID, steps int, rng *rand.Rand) ([]matrix.Observation, error) {
	prior := eng.Prior()
	latent := make([]bool, len(prior))
	for sk, p := range prior {
		latent[sk] = rng.Float64() < p
	}

	var obs []matrix.Observation
	for step := 0; step < steps; step++ {
		activity, err := eng.Recommend(learnerID, nil)
		if err != nil {
			var none *recommend.NoEligibleActivityError
			if errors.As(err, &none) {
				break // everything mastered out
			}
			return nil, err
		}

		guess, err := eng.Guess(activity)
		if err != nil {
			return nil, err
		}
		slip, err := eng.Slip(activity)
		if err != nil {
			return nil, err
		}
		transit, err := eng.Transit(activity)
		if err != nil {
			return nil, err
		}

		// Correct iff every exercised skill comes through.
		correct := true
		for _, sk := range eng.Catalog().ActivitySkills(activity) {
			var pCorrect float64
			if latent[sk] {
				pCorrect = 1 - slip[sk]
			} else {
				pCorrect = guess[sk]
			}
			if rng.Float64() >= pCorrect {
				correct = false
			}
		}
		score := 0.0
		if correct {
			score = 1.0
		}

		if err := eng.UpdateFromScore(learnerID, activity, score); err != nil {
			return nil, err
		}
		obs = append(obs, matrix.Observation{Learner: learnerID, Activity: activity, Score: score})

		// Practice is a learning opportunity regardless of correctness.
		for _, sk := range eng.Catalog().ActivitySkills(activity) {
			if !latent[sk] && rng.Float64() < bkt.Clamp01(transit[sk]) {
				latent[sk] = true
			}
		}
	}
	return obs, nil
}

func init() {
	simulateCmd.Flags().Int("learners", 10, "Number of synthetic learners")
	simulateCmd.Flags().Int("steps", 20, "Practice opportunities per learner")
	simulateCmd.Flags().Int64("seed", 1, "Random seed")
}
