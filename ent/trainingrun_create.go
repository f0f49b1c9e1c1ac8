// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptiq/ent/trainingrun"
)

// TrainingRunCreate is the builder for creating a TrainingRun entity.
type TrainingRunCreate struct {
	config
	mutation *TrainingRunMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *TrainingRunCreate) SetRunID(v string) *TrainingRunCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TrainingRunCreate) SetTimestamp(v time.Time) *TrainingRunCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TrainingRunCreate) SetNillableTimestamp(v *time.Time) *TrainingRunCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetObservations sets the "observations" field.
func (_c *TrainingRunCreate) SetObservations(v int) *TrainingRunCreate {
	_c.mutation.SetObservations(v)
	return _c
}

// SetIterations sets the "iterations" field.
func (_c *TrainingRunCreate) SetIterations(v int) *TrainingRunCreate {
	_c.mutation.SetIterations(v)
	return _c
}

// SetLogLikelihood sets the "log_likelihood" field.
func (_c *TrainingRunCreate) SetLogLikelihood(v float64) *TrainingRunCreate {
	_c.mutation.SetLogLikelihood(v)
	return _c
}

// SetConverged sets the "converged" field.
func (_c *TrainingRunCreate) SetConverged(v bool) *TrainingRunCreate {
	_c.mutation.SetConverged(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *TrainingRunCreate) SetDurationMs(v int64) *TrainingRunCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// Mutation returns the TrainingRunMutation object of the builder.
func (_c *TrainingRunCreate) Mutation() *TrainingRunMutation {
	return _c.mutation
}

// Save creates the TrainingRun in the database.
func (_c *TrainingRunCreate) Save(ctx context.Context) (*TrainingRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrainingRunCreate) SaveX(ctx context.Context) *TrainingRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrainingRunCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := trainingrun.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrainingRunCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "TrainingRun.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := trainingrun.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "TrainingRun.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TrainingRun.timestamp"`)}
	}
	if _, ok := _c.mutation.Observations(); !ok {
		return &ValidationError{Name: "observations", err: errors.New(`ent: missing required field "TrainingRun.observations"`)}
	}
	if v, ok := _c.mutation.Observations(); ok {
		if err := trainingrun.ObservationsValidator(v); err != nil {
			return &ValidationError{Name: "observations", err: fmt.Errorf(`ent: validator failed for field "TrainingRun.observations": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Iterations(); !ok {
		return &ValidationError{Name: "iterations", err: errors.New(`ent: missing required field "TrainingRun.iterations"`)}
	}
	if v, ok := _c.mutation.Iterations(); ok {
		if err := trainingrun.IterationsValidator(v); err != nil {
			return &ValidationError{Name: "iterations", err: fmt.Errorf(`ent: validator failed for field "TrainingRun.iterations": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LogLikelihood(); !ok {
		return &ValidationError{Name: "log_likelihood", err: errors.New(`ent: missing required field "TrainingRun.log_likelihood"`)}
	}
	if _, ok := _c.mutation.Converged(); !ok {
		return &ValidationError{Name: "converged", err: errors.New(`ent: missing required field "TrainingRun.converged"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "TrainingRun.duration_ms"`)}
	}
	return nil
}

func (_c *TrainingRunCreate) sqlSave(ctx context.Context) (*TrainingRun, error) {
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

func (_c *TrainingRunCreate) createSpec() (*TrainingRun, *sqlgraph.CreateSpec) {
	var (
		_node = &TrainingRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trainingrun.Table, sqlgraph.NewFieldSpec(trainingrun.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(trainingrun.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(trainingrun.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Observations(); ok {
		_spec.SetField(trainingrun.FieldObservations, field.TypeInt, value)
		_node.Observations = value
	}
	if value, ok := _c.mutation.Iterations(); ok {
		_spec.SetField(trainingrun.FieldIterations, field.TypeInt, value)
		_node.Iterations = value
	}
	if value, ok := _c.mutation.LogLikelihood(); ok {
		_spec.SetField(trainingrun.FieldLogLikelihood, field.TypeFloat64, value)
		_node.LogLikelihood = value
	}
	if value, ok := _c.mutation.Converged(); ok {
		_spec.SetField(trainingrun.FieldConverged, field.TypeBool, value)
		_node.Converged = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(trainingrun.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	return _node, _spec
}

// TrainingRunCreateBulk is the builder for creating many TrainingRun entities in bulk.
type TrainingRunCreateBulk struct {
	config
	err      error
	builders []*TrainingRunCreate
}

// Save creates the TrainingRun entities in the database.
func (_c *TrainingRunCreateBulk) Save(ctx context.Context) ([]*TrainingRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrainingRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrainingRunMutation)
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
func (_c *TrainingRunCreateBulk) SaveX(ctx context.Context) []*TrainingRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
