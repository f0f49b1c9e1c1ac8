package store

import (
	"context"

	"github.com/abhisek/adaptiq/internal/matrix"
)

// ScoreRepo provides append and replay access to the score event log.
type ScoreRepo interface {
	// Append records one observation, assigning it the next sequence
	// number. The learner uid is optional.
	Append(ctx context.Context, obs matrix.Observation, learnerUID string) error

	// Observations replays the full log in sequence order.
	Observations(ctx context.Context) ([]matrix.Observation, error)

	// Count returns the number of recorded observations.
	Count(ctx context.Context) (int, error)
}

// ParamsData is the JSON shape of a persisted parameter snapshot.
type ParamsData struct {
	Guess   [][]float64       `json:"guess"`
	Slip    [][]float64       `json:"slip"`
	Transit [][]float64       `json:"transit"`
	Prior   []float64         `json:"prior"`
	Mastery map[int][]float64 `json:"mastery,omitempty"`
}

// ParamSnapshot is a point-in-time capture of the parameter state.
type ParamSnapshot struct {
	ID       int
	Sequence int64
	Data     ParamsData
}

// ParamsRepo manages parameter snapshots.
type ParamsRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *ParamSnapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*ParamSnapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// TrainingRunData records the outcome of one training run.
type TrainingRunData struct {
	RunID         string
	Observations  int
	Iterations    int
	LogLikelihood float64
	Converged     bool
	DurationMs    int64
}

// TrainingRepo records training runs for audit.
type TrainingRepo interface {
	// Append records a completed (or failed) training run.
	Append(ctx context.Context, data TrainingRunData) error

	// Latest returns the most recent run, or nil if none exist.
	Latest(ctx context.Context) (*TrainingRunData, error)
}
