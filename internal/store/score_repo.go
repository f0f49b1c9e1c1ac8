package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/adaptiq/ent"
	"github.com/abhisek/adaptiq/ent/scoreevent"
	"github.com/abhisek/adaptiq/internal/matrix"
)

// scoreRepo implements ScoreRepo using the ent client.
type scoreRepo struct {
	client *ent.Client
}

func (r *scoreRepo) Append(ctx context.Context, obs matrix.Observation, learnerUID string) error {
	seq, err := r.nextSequence(ctx)
	if err != nil {
		return err
	}

	ts := obs.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	create := r.client.ScoreEvent.Create().
		SetSequence(seq).
		SetTimestamp(ts).
		SetLearnerID(obs.Learner).
		SetActivityID(obs.Activity).
		SetScore(obs.Score)
	if learnerUID != "" {
		create.SetLearnerUID(learnerUID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("append score event: %w", err)
	}
	return nil
}

func (r *scoreRepo) Observations(ctx context.Context) ([]matrix.Observation, error) {
	events, err := r.client.ScoreEvent.Query().
		Order(ent.Asc(scoreevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query score events: %w", err)
	}

	obs := make([]matrix.Observation, len(events))
	for i, e := range events {
		obs[i] = matrix.Observation{
			Learner:   e.LearnerID,
			Activity:  e.ActivityID,
			Score:     e.Score,
			Timestamp: e.Timestamp,
		}
	}
	return obs, nil
}

func (r *scoreRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.ScoreEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count score events: %w", err)
	}
	return n, nil
}

// nextSequence returns one past the highest recorded sequence number.
func (r *scoreRepo) nextSequence(ctx context.Context) (int64, error) {
	last, err := r.client.ScoreEvent.Query().
		Order(ent.Desc(scoreevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("query last sequence: %w", err)
	}
	return last.Sequence + 1, nil
}
