// Package recommend scores candidate activities against a learner's
// mastery state and picks the next one to present.
package recommend

import (
	"math"
	"sort"

	"github.com/abhisek/adaptiq/internal/bkt"
	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/matrix"
)

// NoEligibleActivityError reports an empty recommendation pool after
// filtering.
type NoEligibleActivityError struct {
	Learner int
}

func (e *NoEligibleActivityError) Error() string {
	return "no eligible activity for learner"
}

// Weights control the scoring substrategies. Demand is the mastery-gap
// reward; Readiness penalizes unmet prerequisites beyond the gate;
// Difficulty penalizes activities far from the learner's level;
// Continuity rewards overlap with the last attempted activity.
type Weights struct {
	Readiness  float64 `yaml:"readiness"`
	Demand     float64 `yaml:"demand"`
	Difficulty float64 `yaml:"difficulty"`
	Continuity float64 `yaml:"continuity"`
}

// DefaultWeights score by mastery gap alone.
func DefaultWeights() Weights {
	return Weights{Demand: 1.0}
}

// Config holds scorer settings.
type Config struct {
	// MasteryThreshold excludes an activity from the default pool once
	// all its skills exceed it.
	MasteryThreshold float64
	// PrerequisiteGate is the minimum mastery on every prerequisite
	// skill required to unlock an activity.
	PrerequisiteGate float64
	Weights          Weights
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		MasteryThreshold: 0.95,
		PrerequisiteGate: 0.60,
		Weights:          DefaultWeights(),
	}
}

// Scorer ranks activities for recommendation. It is a pure reader: no
// call mutates mastery or parameters.
type Scorer struct {
	catalog *catalog.Catalog
	cfg     Config
}

// NewScorer creates a scorer over the given catalog.
func NewScorer(c *catalog.Catalog, cfg Config) *Scorer {
	return &Scorer{catalog: c, cfg: cfg}
}

// Ranked is one activity with its desirability score.
type Ranked struct {
	Activity int
	Score    float64
}

// Eligible filters the candidate pool for a learner. A nil requested
// set defaults to all activities not yet mastered out; an explicit set
// is validated and gate-filtered but not mastery-filtered. An
// explicitly empty set yields NoEligibleActivityError.
func (s *Scorer) Eligible(learnerID int, mastery []float64, requested []int) ([]int, error) {
	var pool []int
	if requested == nil {
		for id := 0; id < s.catalog.NumActivities(); id++ {
			if !s.masteredOut(id, mastery) {
				pool = append(pool, id)
			}
		}
	} else {
		for _, id := range requested {
			if id < 0 || id >= s.catalog.NumActivities() {
				return nil, &matrix.OutOfRangeError{Kind: "activity", ID: id, Max: s.catalog.NumActivities() - 1}
			}
		}
		pool = append(pool, requested...)
	}

	var eligible []int
	for _, id := range pool {
		if s.unlocked(id, mastery) {
			eligible = append(eligible, id)
		}
	}
	if len(eligible) == 0 {
		return nil, &NoEligibleActivityError{Learner: learnerID}
	}
	return eligible, nil
}

// masteredOut reports whether every skill the activity exercises is
// above the mastery threshold.
func (s *Scorer) masteredOut(activityID int, mastery []float64) bool {
	for _, sk := range s.catalog.ActivitySkills(activityID) {
		if mastery[sk] <= s.cfg.MasteryThreshold {
			return false
		}
	}
	return true
}

// unlocked reports whether every prerequisite of every skill the
// activity exercises is at or above the gate.
func (s *Scorer) unlocked(activityID int, mastery []float64) bool {
	for _, sk := range s.catalog.ActivitySkills(activityID) {
		for _, pre := range s.catalog.Prerequisites(sk) {
			if mastery[pre] < s.cfg.PrerequisiteGate {
				return false
			}
		}
	}
	return true
}

// Rank scores each eligible activity and returns them ordered best
// first, ties broken by lower activity id. lastAttempted is the
// learner's most recent activity id, or -1 if none.
func (s *Scorer) Rank(mastery []float64, eligible []int, params *matrix.Params, lastAttempted int) []Ranked {
	ranked := make([]Ranked, 0, len(eligible))
	for _, id := range eligible {
		ranked = append(ranked, Ranked{
			Activity: id,
			Score:    s.score(id, mastery, params, lastAttempted),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Activity < ranked[j].Activity
	})
	return ranked
}

// Recommend returns the single highest-scoring eligible activity.
func (s *Scorer) Recommend(learnerID int, mastery []float64, requested []int, params *matrix.Params, lastAttempted int) (int, error) {
	eligible, err := s.Eligible(learnerID, mastery, requested)
	if err != nil {
		return 0, err
	}
	ranked := s.Rank(mastery, eligible, params, lastAttempted)
	return ranked[0].Activity, nil
}

// score combines the weighted substrategies for one activity.
func (s *Scorer) score(activityID int, mastery []float64, params *matrix.Params, lastAttempted int) float64 {
	w := s.cfg.Weights
	total := 0.0
	if w.Demand != 0 {
		total += w.Demand * s.demand(activityID, mastery)
	}
	if w.Readiness != 0 {
		total += w.Readiness * s.readiness(activityID, mastery)
	}
	if w.Difficulty != 0 {
		total += w.Difficulty * s.difficultyMatch(activityID, mastery)
	}
	if w.Continuity != 0 {
		total += w.Continuity * s.continuity(activityID, lastAttempted, params)
	}
	return total
}

// demand rewards activities covering skills furthest from mastery.
func (s *Scorer) demand(activityID int, mastery []float64) float64 {
	sum := 0.0
	for _, sk := range s.catalog.ActivitySkills(activityID) {
		sum += 1 - mastery[sk]
	}
	return sum
}

// readiness penalizes prerequisite shortfall below the gate.
func (s *Scorer) readiness(activityID int, mastery []float64) float64 {
	sum := 0.0
	for _, sk := range s.catalog.ActivitySkills(activityID) {
		for _, pre := range s.catalog.Prerequisites(sk) {
			sum += math.Min(mastery[pre]-s.cfg.PrerequisiteGate, 0)
		}
	}
	return sum
}

// difficultyMatch penalizes the distance between the activity's
// difficulty and the mastery of each skill it exercises.
func (s *Scorer) difficultyMatch(activityID int, mastery []float64) float64 {
	act, err := s.catalog.Activity(activityID)
	if err != nil {
		return 0
	}
	sum := 0.0
	for _, sk := range act.Skills {
		sum -= math.Abs(mastery[sk] - act.Difficulty)
	}
	return sum
}

// continuity rewards evidence overlap with the last attempted
// activity, measured via guess/slip relevance.
func (s *Scorer) continuity(activityID, lastAttempted int, params *matrix.Params) float64 {
	if lastAttempted < 0 || params == nil {
		return 0
	}
	_, skills := params.Shape()
	dot := 0.0
	for sk := 0; sk < skills; sk++ {
		r := bkt.Relevance(params.Guess.At(activityID, sk), params.Slip.At(activityID, sk))
		lr := bkt.Relevance(params.Guess.At(lastAttempted, sk), params.Slip.At(lastAttempted, sk))
		dot += r * lr
	}
	if dot <= 0 {
		return 0
	}
	return math.Sqrt(dot)
}
