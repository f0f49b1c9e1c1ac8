package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/adaptiq/ent"
	"github.com/abhisek/adaptiq/ent/trainingrun"
)

// trainingRepo implements TrainingRepo using the ent client.
type trainingRepo struct {
	client *ent.Client
}

func (r *trainingRepo) Append(ctx context.Context, data TrainingRunData) error {
	if data.RunID == "" {
		data.RunID = uuid.NewString()
	}
	_, err := r.client.TrainingRun.Create().
		SetRunID(data.RunID).
		SetObservations(data.Observations).
		SetIterations(data.Iterations).
		SetLogLikelihood(data.LogLikelihood).
		SetConverged(data.Converged).
		SetDurationMs(data.DurationMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append training run: %w", err)
	}
	return nil
}

func (r *trainingRepo) Latest(ctx context.Context) (*TrainingRunData, error) {
	run, err := r.client.TrainingRun.Query().
		Order(ent.Desc(trainingrun.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest training run: %w", err)
	}
	return &TrainingRunData{
		RunID:         run.RunID,
		Observations:  run.Observations,
		Iterations:    run.Iterations,
		LogLikelihood: run.LogLikelihood,
		Converged:     run.Converged,
		DurationMs:    run.DurationMs,
	}, nil
}
