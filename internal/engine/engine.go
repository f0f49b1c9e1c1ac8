// Package engine ties the matrix store, mastery estimator,
// recommendation scorer and parameter trainer into the adaptive
// engine contract: recommend, update_from_score, train.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/abhisek/adaptiq/internal/bkt"
	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/matrix"
	"github.com/abhisek/adaptiq/internal/recommend"
	"github.com/abhisek/adaptiq/internal/trainer"
)

// Engine is the in-memory recommendation core. All durable state is
// the caller's concern; the engine holds only the matrices described
// by the model.
type Engine struct {
	cfg     Config
	catalog *catalog.Catalog
	scorer  *recommend.Scorer
	trainer *trainer.Trainer

	// mu guards the parameter set; Train holds it exclusively only for
	// the final commit swap.
	mu     sync.RWMutex
	params *matrix.Params

	// tableMu guards the mastery table and score log maps. Held only
	// for row reads and writes, never across the Bayesian update.
	tableMu sync.Mutex
	mastery *matrix.MasteryTable
	scores  *matrix.ScoreLog

	// learnerMu serializes read-modify-write updates per learner.
	lockMu    sync.Mutex
	learnerMu map[int]*sync.Mutex
}

var _ matrix.ParamSource = (*Engine)(nil)

// New creates an engine over a validated catalog and parameter set.
func New(cat *catalog.Catalog, params *matrix.Params, cfg Config) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("parameters: %w", err)
	}
	activities, skills := params.Shape()
	if activities != cat.NumActivities() || skills != cat.NumSkills() {
		return nil, fmt.Errorf("parameter shape %dx%d does not match catalog (%d activities, %d skills)",
			activities, skills, cat.NumActivities(), cat.NumSkills())
	}

	return &Engine{
		cfg:     cfg,
		catalog: cat,
		scorer: recommend.NewScorer(cat, recommend.Config{
			MasteryThreshold: cfg.MasteryThreshold,
			PrerequisiteGate: cfg.PrerequisiteGate,
			Weights:          cfg.Weights,
		}),
		trainer: trainer.New(cat, trainer.Config{
			MaxIterations:        cfg.MaxTrainIterations,
			Tolerance:            cfg.ConvergenceTolerance,
			InformationThreshold: cfg.TrainInformationThreshold,
			RemoveDegeneracy:     cfg.RemoveDegeneracy,
		}),
		params:    params.Clone(),
		mastery:   matrix.NewMasteryTable(params.Prior),
		scores:    matrix.NewScoreLog(),
		learnerMu: make(map[int]*sync.Mutex),
	}, nil
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// learnerLock returns the mutex serializing updates for one learner.
func (e *Engine) learnerLock(learnerID int) *sync.Mutex {
	e.lockMu.Lock()
	defer e.lockMu.Unlock()
	mu, ok := e.learnerMu[learnerID]
	if !ok {
		mu = &sync.Mutex{}
		e.learnerMu[learnerID] = mu
	}
	return mu
}

// Recommend returns the highest-scoring eligible activity for the
// learner. A nil eligible set defaults to all activities not yet
// mastered out. Pure read: mastery is not mutated beyond lazy row
// initialization for an unseen learner.
func (e *Engine) Recommend(learnerID int, eligible []int) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	e.tableMu.Lock()
	row, err := e.mastery.Row(learnerID)
	last := e.scores.LastAttempted(learnerID)
	e.tableMu.Unlock()
	if err != nil {
		return 0, err
	}

	return e.scorer.Recommend(learnerID, row, eligible, e.params, last)
}

// UpdateFromScore applies the Bayesian mastery update for one observed
// score. Each skill the activity exercises is updated independently
// with the same score. Scores outside [0, 1] are clamped. Concurrent
// updates for different learners run in parallel; updates for the same
// learner are serialized.
func (e *Engine) UpdateFromScore(learnerID, activityID int, score float64) error {
	lmu := e.learnerLock(learnerID)
	lmu.Lock()
	defer lmu.Unlock()

	e.mu.RLock()
	defer e.mu.RUnlock()

	guess, err := e.params.GuessRow(activityID)
	if err != nil {
		return err
	}
	slip, err := e.params.SlipRow(activityID)
	if err != nil {
		return err
	}
	transit, err := e.params.TransitRow(activityID)
	if err != nil {
		return err
	}

	e.tableMu.Lock()
	row, err := e.mastery.Row(learnerID)
	e.tableMu.Unlock()
	if err != nil {
		return err
	}

	for _, sk := range e.catalog.ActivitySkills(activityID) {
		row[sk] = bkt.Update(row[sk], score, guess[sk], slip[sk], transit[sk])
	}

	e.tableMu.Lock()
	defer e.tableMu.Unlock()
	if err := e.mastery.SetRow(learnerID, row); err != nil {
		return err
	}
	e.scores.Append(matrix.Observation{Learner: learnerID, Activity: activityID, Score: bkt.Clamp01(score)})
	return nil
}

// Train re-estimates Guess/Slip/Transit/MasteryPrior from the given
// time-ordered observations and commits the result atomically: a
// failed or cancelled run leaves the current parameters untouched.
// A nil observation slice trains on the engine's accumulated score
// log. Training is deterministic for identical inputs.
func (e *Engine) Train(ctx context.Context, obs []matrix.Observation) (*trainer.Result, error) {
	if obs == nil {
		e.tableMu.Lock()
		obs = e.scores.All()
		e.tableMu.Unlock()
	}

	// EM runs against a private copy; readers keep the old parameters
	// until the commit swap below.
	e.mu.RLock()
	working := e.params.Clone()
	e.mu.RUnlock()

	res, err := e.trainer.Fit(ctx, obs, working)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.params = res.Params
	e.mu.Unlock()

	e.tableMu.Lock()
	e.mastery.SetPrior(res.Params.Prior)
	e.tableMu.Unlock()
	return res, nil
}

// Guess returns the per-skill guess values for an activity.
func (e *Engine) Guess(activityID int) ([]float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.params.GuessRow(activityID)
}

// GuessAll returns the full guess matrix as rows.
func (e *Engine) GuessAll() [][]float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.params.Guess.Rows()
}

// Slip returns the per-skill slip values for an activity.
func (e *Engine) Slip(activityID int) ([]float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.params.SlipRow(activityID)
}

// SlipAll returns the full slip matrix as rows.
func (e *Engine) SlipAll() [][]float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.params.Slip.Rows()
}

// Transit returns the per-skill transit values for an activity.
func (e *Engine) Transit(activityID int) ([]float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.params.TransitRow(activityID)
}

// Mastery returns the learner's mastery row, initializing it from the
// prior on first contact.
func (e *Engine) Mastery(learnerID int) ([]float64, error) {
	e.tableMu.Lock()
	defer e.tableMu.Unlock()
	return e.mastery.Row(learnerID)
}

// SetMastery replaces a learner's mastery row, enforcing [0, 1] at the
// store boundary. Used to restore persisted state.
func (e *Engine) SetMastery(learnerID int, row []float64) error {
	e.tableMu.Lock()
	defer e.tableMu.Unlock()
	return e.mastery.SetRow(learnerID, row)
}

// Prior returns the population-level mastery prior.
func (e *Engine) Prior() []float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]float64(nil), e.params.Prior...)
}

// Params returns a deep copy of the current parameter set.
func (e *Engine) Params() *matrix.Params {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.params.Clone()
}

// SetParams replaces the parameter set, validating shape and the
// probability invariant. Used to restore persisted state.
func (e *Engine) SetParams(p *matrix.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	activities, skills := p.Shape()
	if activities != e.catalog.NumActivities() || skills != e.catalog.NumSkills() {
		return fmt.Errorf("parameter shape %dx%d does not match catalog", activities, skills)
	}
	e.mu.Lock()
	e.params = p.Clone()
	e.mu.Unlock()
	e.tableMu.Lock()
	e.mastery.SetPrior(p.Prior)
	e.tableMu.Unlock()
	return nil
}

// Observations returns the engine's accumulated in-memory score log.
func (e *Engine) Observations() []matrix.Observation {
	e.tableMu.Lock()
	defer e.tableMu.Unlock()
	return e.scores.All()
}
