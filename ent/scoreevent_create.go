// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptiq/ent/scoreevent"
)

// ScoreEventCreate is the builder for creating a ScoreEvent entity.
type ScoreEventCreate struct {
	config
	mutation *ScoreEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ScoreEventCreate) SetSequence(v int64) *ScoreEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ScoreEventCreate) SetTimestamp(v time.Time) *ScoreEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ScoreEventCreate) SetNillableTimestamp(v *time.Time) *ScoreEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *ScoreEventCreate) SetLearnerID(v int) *ScoreEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetLearnerUID sets the "learner_uid" field.
func (_c *ScoreEventCreate) SetLearnerUID(v string) *ScoreEventCreate {
	_c.mutation.SetLearnerUID(v)
	return _c
}

// SetNillableLearnerUID sets the "learner_uid" field if the given value is not nil.
func (_c *ScoreEventCreate) SetNillableLearnerUID(v *string) *ScoreEventCreate {
	if v != nil {
		_c.SetLearnerUID(*v)
	}
	return _c
}

// SetActivityID sets the "activity_id" field.
func (_c *ScoreEventCreate) SetActivityID(v int) *ScoreEventCreate {
	_c.mutation.SetActivityID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ScoreEventCreate) SetScore(v float64) *ScoreEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// Mutation returns the ScoreEventMutation object of the builder.
func (_c *ScoreEventCreate) Mutation() *ScoreEventMutation {
	return _c.mutation
}

// Save creates the ScoreEvent in the database.
func (_c *ScoreEventCreate) Save(ctx context.Context) (*ScoreEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScoreEventCreate) SaveX(ctx context.Context) *ScoreEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScoreEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := scoreevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScoreEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ScoreEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ScoreEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ScoreEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := scoreevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActivityID(); !ok {
		return &ValidationError{Name: "activity_id", err: errors.New(`ent: missing required field "ScoreEvent.activity_id"`)}
	}
	if v, ok := _c.mutation.ActivityID(); ok {
		if err := scoreevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.activity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ScoreEvent.score"`)}
	}
	return nil
}

func (_c *ScoreEventCreate) sqlSave(ctx context.Context) (*ScoreEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScoreEventCreate) createSpec() (*ScoreEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ScoreEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scoreevent.Table, sqlgraph.NewFieldSpec(scoreevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(scoreevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(scoreevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(scoreevent.FieldLearnerID, field.TypeInt, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.LearnerUID(); ok {
		_spec.SetField(scoreevent.FieldLearnerUID, field.TypeString, value)
		_node.LearnerUID = value
	}
	if value, ok := _c.mutation.ActivityID(); ok {
		_spec.SetField(scoreevent.FieldActivityID, field.TypeInt, value)
		_node.ActivityID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(scoreevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	return _node, _spec
}

// ScoreEventCreateBulk is the builder for creating many ScoreEvent entities in bulk.
type ScoreEventCreateBulk struct {
	config
	err      error
	builders []*ScoreEventCreate
}

// Save creates the ScoreEvent entities in the database.
func (_c *ScoreEventCreateBulk) Save(ctx context.Context) ([]*ScoreEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScoreEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScoreEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScoreEventCreateBulk) SaveX(ctx context.Context) []*ScoreEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
