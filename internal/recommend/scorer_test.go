package recommend

import (
	"errors"
	"slices"
	"testing"

	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/matrix"
)

// testCatalog: skill 1 requires skill 0; three activities, the last
// locked behind skill 0 mastery.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		[]catalog.Skill{
			{Key: "base", Name: "Base"},
			{Key: "next", Name: "Next", Prerequisites: []int{0}},
		},
		[]catalog.Activity{
			{Key: "warmup", Skills: []int{0}, Difficulty: 0.2},
			{Key: "drill", Skills: []int{0}, Difficulty: 0.5},
			{Key: "advanced", Skills: []int{1}, Difficulty: 0.8},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestEligible_DefaultPoolExcludesMastered(t *testing.T) {
	s := NewScorer(testCatalog(t), DefaultConfig())
	// Skill 0 mastered out, skill 1 high enough to unlock activity 2.
	got, err := s.Eligible(0, []float64{0.99, 0.5}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(got, []int{2}) {
		t.Errorf("Eligible = %v, want [2]", got)
	}
}

func TestEligible_PrerequisiteGate(t *testing.T) {
	s := NewScorer(testCatalog(t), DefaultConfig())
	// Skill 0 below the 0.60 gate locks activity 2.
	got, err := s.Eligible(0, []float64{0.3, 0.1}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(got, []int{0, 1}) {
		t.Errorf("Eligible = %v, want [0 1]", got)
	}
}

func TestEligible_ExplicitSetSkipsMasteryFilter(t *testing.T) {
	s := NewScorer(testCatalog(t), DefaultConfig())
	// Mastered-out activity stays available when explicitly requested.
	got, err := s.Eligible(0, []float64{0.99, 0.99}, []int{0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(got, []int{0}) {
		t.Errorf("Eligible = %v, want [0]", got)
	}
}

func TestEligible_ExplicitSetStillGated(t *testing.T) {
	s := NewScorer(testCatalog(t), DefaultConfig())
	_, err := s.Eligible(3, []float64{0.1, 0.1}, []int{2})
	var none *NoEligibleActivityError
	if !errors.As(err, &none) {
		t.Fatalf("got %v, want NoEligibleActivityError", err)
	}
	if none.Learner != 3 {
		t.Errorf("none.Learner = %d, want 3", none.Learner)
	}
}

func TestEligible_InvalidActivityID(t *testing.T) {
	s := NewScorer(testCatalog(t), DefaultConfig())
	_, err := s.Eligible(0, []float64{0.5, 0.5}, []int{0, 9})
	var oor *matrix.OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("got %v, want OutOfRangeError", err)
	}
	if oor.ID != 9 {
		t.Errorf("oor.ID = %d, want 9", oor.ID)
	}
}

func TestEligible_EmptyExplicitSet(t *testing.T) {
	s := NewScorer(testCatalog(t), DefaultConfig())
	_, err := s.Eligible(0, []float64{0.5, 0.5}, []int{})
	var none *NoEligibleActivityError
	if !errors.As(err, &none) {
		t.Fatalf("got %v, want NoEligibleActivityError", err)
	}
}

func TestRecommend_DemandPicksWeakestSkill(t *testing.T) {
	s := NewScorer(testCatalog(t), DefaultConfig())
	// Skill 1 is weakest and skill 0 clears the gate, so the advanced
	// activity wins under the default demand-only weights.
	got, err := s.Recommend(0, []float64{0.8, 0.1}, nil, nil, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2 {
		t.Errorf("Recommend = %d, want 2", got)
	}
}

func TestRank_TieBreaksOnLowerID(t *testing.T) {
	s := NewScorer(testCatalog(t), DefaultConfig())
	// Activities 0 and 1 exercise the same single skill, so demand
	// ties exactly.
	ranked := s.Rank([]float64{0.4, 0.0}, []int{1, 0}, nil, -1)
	if ranked[0].Activity != 0 {
		t.Errorf("top activity = %d, want 0 on tie", ranked[0].Activity)
	}
	if ranked[0].Score != ranked[1].Score {
		t.Errorf("scores differ: %v vs %v, want tie", ranked[0].Score, ranked[1].Score)
	}
}

func TestRank_Deterministic(t *testing.T) {
	s := NewScorer(testCatalog(t), DefaultConfig())
	mastery := []float64{0.61, 0.3}
	first := s.Rank(mastery, []int{0, 1, 2}, nil, -1)
	for i := 0; i < 10; i++ {
		again := s.Rank(mastery, []int{0, 1, 2}, nil, -1)
		if !slices.Equal(idsOf(first), idsOf(again)) {
			t.Fatalf("run %d: order %v differs from %v", i, idsOf(again), idsOf(first))
		}
	}
}

func idsOf(ranked []Ranked) []int {
	ids := make([]int, len(ranked))
	for i, r := range ranked {
		ids[i] = r.Activity
	}
	return ids
}

func TestReadiness_PenalizesShortfall(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = Weights{Readiness: 1}
	s := NewScorer(testCatalog(t), cfg)

	// Gate is 0.60 and skill 0 sits at 0.70, so activity 2 has no
	// shortfall and readiness is zero.
	ranked := s.Rank([]float64{0.70, 0.0}, []int{2}, nil, -1)
	if ranked[0].Score != 0 {
		t.Errorf("readiness above gate = %v, want 0", ranked[0].Score)
	}

	// Below the gate the shortfall goes negative. Rank still works on
	// an explicit pool even though Eligible would have filtered it.
	ranked = s.Rank([]float64{0.50, 0.0}, []int{2}, nil, -1)
	want := 0.50 - cfg.PrerequisiteGate
	if diff := ranked[0].Score - want; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("readiness below gate = %v, want %v", ranked[0].Score, want)
	}
}

func TestDifficultyMatch_PrefersCloserDifficulty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = Weights{Difficulty: 1}
	s := NewScorer(testCatalog(t), cfg)

	// Mastery 0.45 on skill 0: activity 1 (difficulty 0.5) is a closer
	// match than activity 0 (difficulty 0.2).
	got, err := s.Recommend(0, []float64{0.45, 0.0}, []int{0, 1}, nil, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("Recommend = %d, want 1", got)
	}
}

func TestContinuity_RewardsSharedEvidence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = Weights{Continuity: 1}
	s := NewScorer(testCatalog(t), cfg)

	params := matrix.NewParams(3, 2)
	// Activities 0 and 1 carry strong evidence for skill 0; activity 2
	// only for skill 1. Neutral 0.5 entries carry none.
	for r := 0; r < 3; r++ {
		for c := 0; c < 2; c++ {
			params.Guess.Set(r, c, 0.5)
			params.Slip.Set(r, c, 0.5)
		}
	}
	params.Guess.Set(0, 0, 0.1)
	params.Slip.Set(0, 0, 0.1)
	params.Guess.Set(1, 0, 0.1)
	params.Slip.Set(1, 0, 0.1)
	params.Guess.Set(2, 1, 0.1)
	params.Slip.Set(2, 1, 0.1)

	// Last attempted was activity 0, so activity 1 shares evidence and
	// activity 2 does not.
	ranked := s.Rank([]float64{0.5, 0.5}, []int{1, 2}, params, 0)
	if ranked[0].Activity != 1 {
		t.Errorf("top activity = %d, want 1", ranked[0].Activity)
	}
	if ranked[1].Score != 0 {
		t.Errorf("disjoint activity score = %v, want 0", ranked[1].Score)
	}
}

func TestContinuity_NoHistoryScoresZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = Weights{Continuity: 1}
	s := NewScorer(testCatalog(t), cfg)
	ranked := s.Rank([]float64{0.5, 0.5}, []int{0, 1, 2}, matrix.NewParams(3, 2), -1)
	for _, r := range ranked {
		if r.Score != 0 {
			t.Errorf("activity %d score = %v, want 0 with no history", r.Activity, r.Score)
		}
	}
}
