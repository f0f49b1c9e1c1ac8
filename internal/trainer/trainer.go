// Package trainer fits the BKT parameter matrices to historical score
// observations with an expectation-maximization loop.
package trainer

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/matrix"
)

// ConvergenceError reports a training run that exceeded its iteration
// bound, or whose log-likelihood regressed, without reaching tolerance.
type ConvergenceError struct {
	Iterations int
	LastDelta  float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("training did not converge after %d iterations (last log-likelihood delta %g)", e.Iterations, e.LastDelta)
}

// monotoneEps absorbs floating-point noise in the non-decreasing
// log-likelihood check.
const monotoneEps = 1e-9

// Config holds training settings.
type Config struct {
	// MaxIterations bounds the EM loop.
	MaxIterations int
	// Tolerance is the log-likelihood delta below which training stops
	// early as converged.
	Tolerance float64
	// InformationThreshold is the minimum expected-count mass behind an
	// estimate; cells with less keep their previous value.
	InformationThreshold float64
	// RemoveDegeneracy rejects fitted guess/slip values of 0.5 and
	// above (or guess+slip >= 1), keeping the previous value instead.
	RemoveDegeneracy bool
	// Parallelism caps concurrent per-learner E-step workers.
	// Zero means GOMAXPROCS.
	Parallelism int
}

// DefaultConfig returns the standard training settings.
func DefaultConfig() Config {
	return Config{
		MaxIterations:        100,
		Tolerance:            1e-4,
		InformationThreshold: 1.0,
		RemoveDegeneracy:     true,
	}
}

// Result is the outcome of a successful fit.
type Result struct {
	Params        *matrix.Params
	Iterations    int
	LogLikelihood float64
}

// Trainer fits parameters for a fixed catalog.
type Trainer struct {
	catalog *catalog.Catalog
	cfg     Config
}

// New creates a trainer.
func New(c *catalog.Catalog, cfg Config) *Trainer {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultConfig().MaxIterations
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = runtime.GOMAXPROCS(0)
	}
	return &Trainer{catalog: c, cfg: cfg}
}

// Fit runs EM from init over the time-ordered observations and returns
// new parameter matrices. init is never mutated; a failed run has no
// output to commit. Training is deterministic for identical inputs:
// learners are processed in a fixed order and all reductions are
// sequential.
func (t *Trainer) Fit(ctx context.Context, obs []matrix.Observation, init *matrix.Params) (*Result, error) {
	if err := init.Validate(); err != nil {
		return nil, fmt.Errorf("initial parameters: %w", err)
	}
	if err := t.checkObservations(obs); err != nil {
		return nil, err
	}

	if len(obs) == 0 {
		return &Result{Params: init.Clone(), Iterations: 0}, nil
	}

	chains := buildChains(obs)
	params := init.Clone()

	var prevLL float64
	havePrev := false
	for iter := 1; iter <= t.cfg.MaxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("training cancelled: %w", err)
		}

		counts, ll, err := t.eStep(ctx, chains, params)
		if err != nil {
			return nil, err
		}

		if havePrev {
			delta := ll - prevLL
			if delta < -monotoneEps {
				return nil, &ConvergenceError{Iterations: iter, LastDelta: delta}
			}
			if delta < t.cfg.Tolerance {
				fitted := t.finalize(counts, params, init)
				if err := fitted.Validate(); err != nil {
					return nil, fmt.Errorf("fitted parameters: %w", err)
				}
				return &Result{Params: fitted, Iterations: iter, LogLikelihood: ll}, nil
			}
		}
		prevLL = ll
		havePrev = true

		t.mStep(counts, params)
	}

	return nil, &ConvergenceError{Iterations: t.cfg.MaxIterations}
}

// checkObservations validates ids against the catalog's dense ranges.
func (t *Trainer) checkObservations(obs []matrix.Observation) error {
	for _, o := range obs {
		if o.Activity < 0 || o.Activity >= t.catalog.NumActivities() {
			return &matrix.OutOfRangeError{Kind: "activity", ID: o.Activity, Max: t.catalog.NumActivities() - 1}
		}
		if o.Learner < 0 {
			return &matrix.OutOfRangeError{Kind: "learner", ID: o.Learner, Max: -1}
		}
	}
	return nil
}

// learnerChain is one learner's observations in time order.
type learnerChain struct {
	learner int
	obs     []matrix.Observation
}

// buildChains groups observations per learner, preserving input order
// within each learner, with learners in ascending id order.
func buildChains(obs []matrix.Observation) []learnerChain {
	byLearner := make(map[int][]matrix.Observation)
	for _, o := range obs {
		byLearner[o.Learner] = append(byLearner[o.Learner], o)
	}
	ids := make([]int, 0, len(byLearner))
	for id := range byLearner {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	chains := make([]learnerChain, len(ids))
	for i, id := range ids {
		chains[i] = learnerChain{learner: id, obs: byLearner[id]}
	}
	return chains
}

// eStep computes expected counts and the data log-likelihood under the
// current parameters. Learners run in parallel; their contributions
// are reduced sequentially in learner order so the result is
// deterministic.
func (t *Trainer) eStep(ctx context.Context, chains []learnerChain, params *matrix.Params) (*counts, float64, error) {
	results := make([]*counts, len(chains))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.cfg.Parallelism)
	for i := range chains {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = t.learnerCounts(chains[i], params)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("training cancelled: %w", err)
	}

	activities, skills := params.Shape()
	total := newCounts(activities, skills)
	ll := 0.0
	for _, r := range results {
		total.add(r)
		ll += r.logLikelihood
	}
	return total, ll, nil
}
