package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/adaptiq/ent"
	"github.com/abhisek/adaptiq/ent/paramsnapshot"
	"github.com/abhisek/adaptiq/internal/matrix"
)

// paramsRepo implements ParamsRepo using the ent client.
type paramsRepo struct {
	client *ent.Client
}

func (r *paramsRepo) Save(ctx context.Context, snap *ParamSnapshot) error {
	dataMap, err := toMap(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	_, err = r.client.ParamSnapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(time.Now().UTC()).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *paramsRepo) Latest(ctx context.Context) (*ParamSnapshot, error) {
	s, err := r.client.ParamSnapshot.Query().
		Order(ent.Desc(paramsnapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	var data ParamsData
	if err := fromMap(s.Data, &data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return &ParamSnapshot{ID: s.ID, Sequence: s.Sequence, Data: data}, nil
}

func (r *paramsRepo) Prune(ctx context.Context, keep int) error {
	snapshots, err := r.client.ParamSnapshot.Query().
		Order(ent.Desc(paramsnapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Timestamp
	_, err = r.client.ParamSnapshot.Delete().
		Where(paramsnapshot.TimestampLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// SnapshotFromParams builds the persistable snapshot payload from a
// parameter set and per-learner mastery rows.
func SnapshotFromParams(p *matrix.Params, mastery map[int][]float64, sequence int64) *ParamSnapshot {
	return &ParamSnapshot{
		Sequence: sequence,
		Data: ParamsData{
			Guess:   p.Guess.Rows(),
			Slip:    p.Slip.Rows(),
			Transit: p.Transit.Rows(),
			Prior:   append([]float64(nil), p.Prior...),
			Mastery: mastery,
		},
	}
}

// ParamsFromSnapshot rebuilds the parameter matrices from a snapshot.
func ParamsFromSnapshot(snap *ParamSnapshot) (*matrix.Params, error) {
	guess, err := matrix.FromRows(snap.Data.Guess)
	if err != nil {
		return nil, fmt.Errorf("guess matrix: %w", err)
	}
	slip, err := matrix.FromRows(snap.Data.Slip)
	if err != nil {
		return nil, fmt.Errorf("slip matrix: %w", err)
	}
	transit, err := matrix.FromRows(snap.Data.Transit)
	if err != nil {
		return nil, fmt.Errorf("transit matrix: %w", err)
	}

	p := &matrix.Params{
		Guess:   guess,
		Slip:    slip,
		Transit: transit,
		Prior:   append([]float64(nil), snap.Data.Prior...),
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("snapshot parameters: %w", err)
	}
	return p, nil
}

// toMap converts a typed payload to map[string]any for ent JSON storage.
func toMap(data ParamsData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// fromMap converts the stored JSON map back into the typed payload.
func fromMap(m map[string]any, out *ParamsData) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
