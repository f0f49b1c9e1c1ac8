package engine

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/matrix"
	"github.com/abhisek/adaptiq/internal/recommend"
	"github.com/abhisek/adaptiq/internal/trainer"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		[]catalog.Skill{
			{Key: "counting", Name: "Counting"},
			{Key: "addition", Name: "Addition", Prerequisites: []int{0}},
		},
		[]catalog.Activity{
			{Key: "count-drill", Skills: []int{0}, Difficulty: 0.2},
			{Key: "add-drill", Skills: []int{1}, Difficulty: 0.5},
			{Key: "mixed-quiz", Skills: []int{0, 1}, Difficulty: 0.6},
		},
	)
	require.NoError(t, err)
	return c
}

func testParams() *matrix.Params {
	p := matrix.NewParams(3, 2)
	for a := 0; a < 3; a++ {
		for sk := 0; sk < 2; sk++ {
			p.Guess.Set(a, sk, 0.2)
			p.Slip.Set(a, sk, 0.3)
			p.Transit.Set(a, sk, 0.1)
		}
	}
	p.Prior = []float64{0.1, 0.1}
	return p
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := New(testCatalog(t), testParams(), DefaultConfig())
	require.NoError(t, err)
	return eng
}

func TestNew_ShapeMismatch(t *testing.T) {
	_, err := New(testCatalog(t), matrix.NewParams(2, 2), DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match catalog")
}

func TestNew_InvalidParams(t *testing.T) {
	p := testParams()
	p.Slip.Set(0, 0, -0.1)
	_, err := New(testCatalog(t), p, DefaultConfig())
	require.Error(t, err)
}

func TestUpdateFromScore_CorrectResponse(t *testing.T) {
	eng := testEngine(t)
	// prior 0.1, guess 0.2, slip 0.3, transit 0.1, full credit: the
	// posterior is 0.28 and the transit step lands on 0.352.
	require.NoError(t, eng.UpdateFromScore(1, 0, 1.0))

	row, err := eng.Mastery(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.352, row[0], 1e-12)
	// Activity 0 does not exercise skill 1.
	assert.Equal(t, 0.1, row[1])
}

func TestUpdateFromScore_MultiSkillActivity(t *testing.T) {
	eng := testEngine(t)
	require.NoError(t, eng.UpdateFromScore(1, 2, 1.0))

	row, err := eng.Mastery(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.352, row[0], 1e-12)
	assert.InDelta(t, 0.352, row[1], 1e-12)
}

func TestUpdateFromScore_AppendsObservation(t *testing.T) {
	eng := testEngine(t)
	require.NoError(t, eng.UpdateFromScore(4, 0, 1.5))

	obs := eng.Observations()
	require.Len(t, obs, 1)
	assert.Equal(t, 4, obs[0].Learner)
	assert.Equal(t, 0, obs[0].Activity)
	// Out-of-range scores are clamped before logging.
	assert.Equal(t, 1.0, obs[0].Score)
}

func TestUpdateFromScore_InvalidActivity(t *testing.T) {
	eng := testEngine(t)
	err := eng.UpdateFromScore(0, 9, 1.0)
	var oor *matrix.OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, "activity", oor.Kind)
}

func TestRecommend_UnseenLearnerUsesPrior(t *testing.T) {
	eng := testEngine(t)
	// Low prior everywhere: skill 1 is gated, so only activity 0 is
	// eligible.
	got, err := eng.Recommend(42, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	row, err := eng.Mastery(42)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.1}, row)
}

func TestRecommend_ExplicitPool(t *testing.T) {
	eng := testEngine(t)
	require.NoError(t, eng.SetMastery(0, []float64{0.9, 0.2}))

	got, err := eng.Recommend(0, []int{0, 1})
	require.NoError(t, err)
	// Demand-only scoring: skill 1 has the bigger mastery gap.
	assert.Equal(t, 1, got)
}

func TestRecommend_NoEligible(t *testing.T) {
	eng := testEngine(t)
	require.NoError(t, eng.SetMastery(0, []float64{0.99, 0.99}))

	_, err := eng.Recommend(0, nil)
	var none *recommend.NoEligibleActivityError
	require.ErrorAs(t, err, &none)
}

func TestRecommend_DoesNotMutateMastery(t *testing.T) {
	eng := testEngine(t)
	require.NoError(t, eng.SetMastery(0, []float64{0.7, 0.3}))

	_, err := eng.Recommend(0, nil)
	require.NoError(t, err)

	row, err := eng.Mastery(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.7, 0.3}, row)
}

func TestConcurrentUpdates_DistinctLearners(t *testing.T) {
	eng := testEngine(t)

	var wg sync.WaitGroup
	for l := 0; l < 20; l++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				if err := eng.UpdateFromScore(l, 0, 1.0); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	// Every learner saw the same sequence, so rows agree.
	want, err := eng.Mastery(0)
	require.NoError(t, err)
	for l := 1; l < 20; l++ {
		row, err := eng.Mastery(l)
		require.NoError(t, err)
		assert.Equal(t, want, row, "learner %d", l)
	}
	assert.Len(t, eng.Observations(), 200)
}

func TestConcurrentUpdates_SameLearner(t *testing.T) {
	eng := testEngine(t)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := eng.UpdateFromScore(7, 0, 1.0); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	// Updates for one learner are serialized, so the result equals n
	// sequential applications.
	ref := testEngine(t)
	for i := 0; i < n; i++ {
		require.NoError(t, ref.UpdateFromScore(7, 0, 1.0))
	}
	got, err := eng.Mastery(7)
	require.NoError(t, err)
	want, err := ref.Mastery(7)
	require.NoError(t, err)
	assert.InDelta(t, want[0], got[0], 1e-12)
}

func TestTrain_CommitsNewParams(t *testing.T) {
	eng := testEngine(t)
	for l := 0; l < 10; l++ {
		for i := 0; i < 8; i++ {
			require.NoError(t, eng.UpdateFromScore(l, 0, float64(i%2)))
		}
	}

	before := eng.Params()
	res, err := eng.Train(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, res.Params)
	assert.Greater(t, res.Iterations, 0)
	assert.NoError(t, eng.Params().Validate())

	// The result is what the engine now serves.
	after := eng.Params()
	assert.Equal(t, res.Params.Guess.Rows(), after.Guess.Rows())
	assert.Equal(t, res.Params.Prior, after.Prior)
	// And before-snapshot is a detached copy.
	assert.Equal(t, 0.2, before.Guess.At(0, 0))
}

func TestTrain_FailureLeavesParamsUntouched(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxTrainIterations = 1
	eng, err := New(testCatalog(t), testParams(), cfg)
	require.NoError(t, err)
	for l := 0; l < 5; l++ {
		for i := 0; i < 6; i++ {
			require.NoError(t, eng.UpdateFromScore(l, 0, float64(i%2)))
		}
	}

	before := eng.Params()
	_, err = eng.Train(context.Background(), nil)
	var ce *trainer.ConvergenceError
	require.ErrorAs(t, err, &ce)

	after := eng.Params()
	assert.Equal(t, before.Guess.Rows(), after.Guess.Rows())
	assert.Equal(t, before.Slip.Rows(), after.Slip.Rows())
	assert.Equal(t, before.Prior, after.Prior)
}

func TestTrain_UpdatesPriorForNewLearners(t *testing.T) {
	eng := testEngine(t)
	// Strong learners: mostly correct answers push the fitted prior up.
	for l := 0; l < 10; l++ {
		for i := 0; i < 8; i++ {
			require.NoError(t, eng.UpdateFromScore(l, 0, 1.0))
		}
	}

	res, err := eng.Train(context.Background(), nil)
	require.NoError(t, err)

	fresh, err := eng.Mastery(999)
	require.NoError(t, err)
	assert.Equal(t, res.Params.Prior[0], fresh[0])
}

func TestTrain_ExplicitObservations(t *testing.T) {
	eng := testEngine(t)
	obs := []matrix.Observation{
		{Learner: 0, Activity: 0, Score: 1},
		{Learner: 0, Activity: 0, Score: 1},
		{Learner: 1, Activity: 0, Score: 0},
	}
	res, err := eng.Train(context.Background(), obs)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(res.LogLikelihood))
}

func TestSetParams(t *testing.T) {
	eng := testEngine(t)
	p := testParams()
	p.Guess.Set(0, 0, 0.05)
	p.Prior = []float64{0.5, 0.5}
	require.NoError(t, eng.SetParams(p))

	row, err := eng.Guess(0)
	require.NoError(t, err)
	assert.Equal(t, 0.05, row[0])
	assert.Equal(t, []float64{0.5, 0.5}, eng.Prior())

	// New learners pick up the restored prior.
	fresh, err := eng.Mastery(5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, fresh)

	require.Error(t, eng.SetParams(matrix.NewParams(1, 1)))
}

func TestParamsAccessorsReturnCopies(t *testing.T) {
	eng := testEngine(t)

	p := eng.Params()
	p.Guess.Set(0, 0, 0.99)
	row, err := eng.Guess(0)
	require.NoError(t, err)
	assert.Equal(t, 0.2, row[0])

	prior := eng.Prior()
	prior[0] = 0.99
	assert.Equal(t, 0.1, eng.Prior()[0])

	all := eng.GuessAll()
	all[0][0] = 0.99
	assert.Equal(t, 0.2, eng.GuessAll()[0][0])
	assert.Equal(t, 0.3, eng.SlipAll()[0][0])
}

func TestTransitAccessor(t *testing.T) {
	eng := testEngine(t)
	row, err := eng.Transit(1)
	require.NoError(t, err)
	assert.Equal(t, 0.1, row[0])

	_, err = eng.Transit(9)
	var oor *matrix.OutOfRangeError
	require.ErrorAs(t, err, &oor)
}

func TestSetMastery_Validation(t *testing.T) {
	eng := testEngine(t)
	require.NoError(t, eng.SetMastery(0, []float64{0.2, 0.8}))
	assert.Error(t, eng.SetMastery(0, []float64{0.2}))
	assert.Error(t, eng.SetMastery(0, []float64{0.2, 1.8}))

	var ipe *matrix.InvalidProbabilityError
	assert.True(t, errors.As(eng.SetMastery(0, []float64{-1, 0}), &ipe))
}
