package trainer

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/matrix"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		[]catalog.Skill{
			{Key: "alpha", Name: "Alpha"},
			{Key: "beta", Name: "Beta", Prerequisites: []int{0}},
		},
		[]catalog.Activity{
			{Key: "a0", Skills: []int{0}, Difficulty: 0.3},
			{Key: "a1", Skills: []int{0, 1}, Difficulty: 0.5},
			{Key: "a2", Skills: []int{1}, Difficulty: 0.7},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func testParams() *matrix.Params {
	p := matrix.NewParams(3, 2)
	for a := 0; a < 3; a++ {
		for sk := 0; sk < 2; sk++ {
			p.Guess.Set(a, sk, 0.2)
			p.Slip.Set(a, sk, 0.1)
			p.Transit.Set(a, sk, 0.15)
		}
	}
	p.Prior = []float64{0.3, 0.2}
	return p
}

// syntheticObs simulates learners from known ground-truth parameters
// with a fixed seed, so every run sees the same data.
func syntheticObs(c *catalog.Catalog, truth *matrix.Params, learners, steps int) []matrix.Observation {
	rng := rand.New(rand.NewSource(42))
	var obs []matrix.Observation
	for l := 0; l < learners; l++ {
		latent := make([]bool, c.NumSkills())
		for sk := range latent {
			latent[sk] = rng.Float64() < truth.Prior[sk]
		}
		for s := 0; s < steps; s++ {
			a := rng.Intn(c.NumActivities())
			correct := true
			for _, sk := range c.ActivitySkills(a) {
				var pc float64
				if latent[sk] {
					pc = 1 - truth.Slip.At(a, sk)
				} else {
					pc = truth.Guess.At(a, sk)
				}
				if rng.Float64() >= pc {
					correct = false
				}
			}
			score := 0.0
			if correct {
				score = 1.0
			}
			obs = append(obs, matrix.Observation{Learner: l, Activity: a, Score: score})
			for _, sk := range c.ActivitySkills(a) {
				if !latent[sk] && rng.Float64() < truth.Transit.At(a, sk) {
					latent[sk] = true
				}
			}
		}
	}
	return obs
}

func TestFit_EmptyObservations(t *testing.T) {
	tr := New(testCatalog(t), DefaultConfig())
	init := testParams()
	res, err := tr.Fit(context.Background(), nil, init)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Iterations != 0 {
		t.Errorf("Iterations = %d, want 0", res.Iterations)
	}
	if diff := cmp.Diff(init.Guess.Rows(), res.Params.Guess.Rows()); diff != "" {
		t.Errorf("guess matrix changed (-want +got):\n%s", diff)
	}
	// The result is a copy, not an alias.
	res.Params.Guess.Set(0, 0, 0.9)
	if init.Guess.At(0, 0) == 0.9 {
		t.Error("mutating result params changed init")
	}
}

func TestFit_InvalidInit(t *testing.T) {
	tr := New(testCatalog(t), DefaultConfig())
	init := testParams()
	init.Guess.Set(0, 0, 1.5)
	if _, err := tr.Fit(context.Background(), nil, init); err == nil {
		t.Error("expected error for invalid init params")
	}
}

func TestFit_InvalidObservation(t *testing.T) {
	tr := New(testCatalog(t), DefaultConfig())
	obs := []matrix.Observation{{Learner: 0, Activity: 7, Score: 1}}
	_, err := tr.Fit(context.Background(), obs, testParams())
	var oor *matrix.OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("got %v, want OutOfRangeError", err)
	}
	if oor.Kind != "activity" || oor.ID != 7 {
		t.Errorf("OutOfRangeError = %+v, want activity 7", oor)
	}

	obs = []matrix.Observation{{Learner: -1, Activity: 0, Score: 1}}
	if _, err := tr.Fit(context.Background(), obs, testParams()); !errors.As(err, &oor) {
		t.Errorf("got %v, want OutOfRangeError for negative learner", err)
	}
}

func TestFit_ConvergesOnSyntheticData(t *testing.T) {
	c := testCatalog(t)
	obs := syntheticObs(c, testParams(), 30, 15)

	tr := New(c, DefaultConfig())
	init := testParams()
	res, err := tr.Fit(context.Background(), obs, init)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Iterations < 1 || res.Iterations > DefaultConfig().MaxIterations {
		t.Errorf("Iterations = %d, want within (0, %d]", res.Iterations, DefaultConfig().MaxIterations)
	}
	if res.LogLikelihood >= 0 {
		t.Errorf("LogLikelihood = %v, want negative", res.LogLikelihood)
	}
	if err := res.Params.Validate(); err != nil {
		t.Errorf("fitted params invalid: %v", err)
	}
	// Input parameters are untouched by training.
	if diff := cmp.Diff(testParams().Guess.Rows(), init.Guess.Rows()); diff != "" {
		t.Errorf("init mutated during training (-want +got):\n%s", diff)
	}
}

func TestFit_Deterministic(t *testing.T) {
	c := testCatalog(t)
	obs := syntheticObs(c, testParams(), 20, 10)

	run := func(parallelism int) *Result {
		cfg := DefaultConfig()
		cfg.Parallelism = parallelism
		res, err := New(c, cfg).Fit(context.Background(), obs, testParams())
		if err != nil {
			t.Fatalf("parallelism %d: unexpected error: %v", parallelism, err)
		}
		return res
	}

	base := run(1)
	for _, par := range []int{1, 4, 8} {
		res := run(par)
		if res.Iterations != base.Iterations {
			t.Errorf("parallelism %d: Iterations = %d, want %d", par, res.Iterations, base.Iterations)
		}
		for name, pair := range map[string][2][][]float64{
			"guess":   {base.Params.Guess.Rows(), res.Params.Guess.Rows()},
			"slip":    {base.Params.Slip.Rows(), res.Params.Slip.Rows()},
			"transit": {base.Params.Transit.Rows(), res.Params.Transit.Rows()},
		} {
			if diff := cmp.Diff(pair[0], pair[1]); diff != "" {
				t.Errorf("parallelism %d: %s differs (-base +got):\n%s", par, name, diff)
			}
		}
		if diff := cmp.Diff(base.Params.Prior, res.Params.Prior); diff != "" {
			t.Errorf("parallelism %d: prior differs (-base +got):\n%s", par, diff)
		}
	}
}

func TestFit_MaxIterationsExceeded(t *testing.T) {
	c := testCatalog(t)
	obs := syntheticObs(c, testParams(), 10, 10)

	cfg := DefaultConfig()
	cfg.MaxIterations = 1
	// One iteration can never satisfy the delta check.
	_, err := New(c, cfg).Fit(context.Background(), obs, testParams())
	var ce *ConvergenceError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want ConvergenceError", err)
	}
	if ce.Iterations != 1 {
		t.Errorf("ce.Iterations = %d, want 1", ce.Iterations)
	}
}

func TestFit_Cancellation(t *testing.T) {
	c := testCatalog(t)
	obs := syntheticObs(c, testParams(), 10, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(c, DefaultConfig()).Fit(ctx, obs, testParams())
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled in chain", err)
	}
}

func TestFit_UntouchedCellsKeepInit(t *testing.T) {
	c := testCatalog(t)
	// Only activity 0 is ever attempted, so activity 2's cells carry
	// no information and keep their initial values.
	var obs []matrix.Observation
	rng := rand.New(rand.NewSource(7))
	for l := 0; l < 10; l++ {
		for s := 0; s < 8; s++ {
			score := 0.0
			if rng.Float64() < 0.6 {
				score = 1.0
			}
			obs = append(obs, matrix.Observation{Learner: l, Activity: 0, Score: score})
		}
	}

	init := testParams()
	res, err := New(c, DefaultConfig()).Fit(context.Background(), obs, init)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for sk := 0; sk < 2; sk++ {
		if got, want := res.Params.Guess.At(2, sk), init.Guess.At(2, sk); got != want {
			t.Errorf("guess(2, %d) = %v, want untouched %v", sk, got, want)
		}
		if got, want := res.Params.Slip.At(2, sk), init.Slip.At(2, sk); got != want {
			t.Errorf("slip(2, %d) = %v, want untouched %v", sk, got, want)
		}
		if got, want := res.Params.Transit.At(2, sk), init.Transit.At(2, sk); got != want {
			t.Errorf("transit(2, %d) = %v, want untouched %v", sk, got, want)
		}
	}
	// Skill 1 is never exercised either, so its prior is untouched.
	if got, want := res.Params.Prior[1], init.Prior[1]; got != want {
		t.Errorf("prior[1] = %v, want untouched %v", got, want)
	}
}

func TestFit_DegeneracyGuard(t *testing.T) {
	c := testCatalog(t)
	// All-correct data drives the fitted guess toward 1; with the
	// degeneracy guard on, such cells fall back to the initial value.
	var obs []matrix.Observation
	for l := 0; l < 10; l++ {
		for s := 0; s < 8; s++ {
			obs = append(obs, matrix.Observation{Learner: l, Activity: 0, Score: 1})
		}
	}

	init := testParams()
	res, err := New(c, DefaultConfig()).Fit(context.Background(), obs, init)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := res.Params.Guess.At(0, 0)
	if got >= 0.5 && got != init.Guess.At(0, 0) {
		t.Errorf("guess(0,0) = %v, want either < 0.5 or the initial %v", got, init.Guess.At(0, 0))
	}
}
