package matrix

import (
	"slices"
	"time"
)

// Observation is one observed score: a learner attempting an activity.
// Observations are ordered by time of occurrence.
type Observation struct {
	Learner   int
	Activity  int
	Score     float64
	Timestamp time.Time
}

// ScoreLog is an append-only in-memory record of observations,
// mirroring the Scores matrix of the model.
type ScoreLog struct {
	obs  []Observation
	last map[int]int // learner -> last attempted activity
}

// NewScoreLog creates an empty log.
func NewScoreLog() *ScoreLog {
	return &ScoreLog{last: make(map[int]int)}
}

// Append records an observation.
func (l *ScoreLog) Append(o Observation) {
	l.obs = append(l.obs, o)
	l.last[o.Learner] = o.Activity
}

// All returns a copy of the full log in append order.
func (l *ScoreLog) All() []Observation {
	return slices.Clone(l.obs)
}

// Len returns the number of observations.
func (l *ScoreLog) Len() int {
	return len(l.obs)
}

// LastAttempted returns the learner's most recent activity id,
// or -1 if the learner has no observations.
func (l *ScoreLog) LastAttempted(learnerID int) int {
	if a, ok := l.last[learnerID]; ok {
		return a
	}
	return -1
}
