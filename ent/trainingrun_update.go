// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptiq/ent/predicate"
	"github.com/abhisek/adaptiq/ent/trainingrun"
)

// TrainingRunUpdate is the builder for updating TrainingRun entities.
type TrainingRunUpdate struct {
	config
	hooks    []Hook
	mutation *TrainingRunMutation
}

// Where appends a list predicates to the TrainingRunUpdate builder.
func (_u *TrainingRunUpdate) Where(ps ...predicate.TrainingRun) *TrainingRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *TrainingRunUpdate) SetRunID(v string) *TrainingRunUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *TrainingRunUpdate) SetNillableRunID(v *string) *TrainingRunUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *TrainingRunUpdate) SetTimestamp(v time.Time) *TrainingRunUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *TrainingRunUpdate) SetNillableTimestamp(v *time.Time) *TrainingRunUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetObservations sets the "observations" field.
func (_u *TrainingRunUpdate) SetObservations(v int) *TrainingRunUpdate {
	_u.mutation.ResetObservations()
	_u.mutation.SetObservations(v)
	return _u
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_u *TrainingRunUpdate) SetNillableObservations(v *int) *TrainingRunUpdate {
	if v != nil {
		_u.SetObservations(*v)
	}
	return _u
}

// AddObservations adds value to the "observations" field.
func (_u *TrainingRunUpdate) AddObservations(v int) *TrainingRunUpdate {
	_u.mutation.AddObservations(v)
	return _u
}

// SetIterations sets the "iterations" field.
func (_u *TrainingRunUpdate) SetIterations(v int) *TrainingRunUpdate {
	_u.mutation.ResetIterations()
	_u.mutation.SetIterations(v)
	return _u
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (_u *TrainingRunUpdate) SetNillableIterations(v *int) *TrainingRunUpdate {
	if v != nil {
		_u.SetIterations(*v)
	}
	return _u
}

// AddIterations adds value to the "iterations" field.
func (_u *TrainingRunUpdate) AddIterations(v int) *TrainingRunUpdate {
	_u.mutation.AddIterations(v)
	return _u
}

// SetLogLikelihood sets the "log_likelihood" field.
func (_u *TrainingRunUpdate) SetLogLikelihood(v float64) *TrainingRunUpdate {
	_u.mutation.ResetLogLikelihood()
	_u.mutation.SetLogLikelihood(v)
	return _u
}

// SetNillableLogLikelihood sets the "log_likelihood" field if the given value is not nil.
func (_u *TrainingRunUpdate) SetNillableLogLikelihood(v *float64) *TrainingRunUpdate {
	if v != nil {
		_u.SetLogLikelihood(*v)
	}
	return _u
}

// AddLogLikelihood adds value to the "log_likelihood" field.
func (_u *TrainingRunUpdate) AddLogLikelihood(v float64) *TrainingRunUpdate {
	_u.mutation.AddLogLikelihood(v)
	return _u
}

// SetConverged sets the "converged" field.
func (_u *TrainingRunUpdate) SetConverged(v bool) *TrainingRunUpdate {
	_u.mutation.SetConverged(v)
	return _u
}

// SetNillableConverged sets the "converged" field if the given value is not nil.
func (_u *TrainingRunUpdate) SetNillableConverged(v *bool) *TrainingRunUpdate {
	if v != nil {
		_u.SetConverged(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TrainingRunUpdate) SetDurationMs(v int64) *TrainingRunUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TrainingRunUpdate) SetNillableDurationMs(v *int64) *TrainingRunUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TrainingRunUpdate) AddDurationMs(v int64) *TrainingRunUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the TrainingRunMutation object of the builder.
func (_u *TrainingRunUpdate) Mutation() *TrainingRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrainingRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrainingRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrainingRunUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := trainingrun.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "TrainingRun.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Observations(); ok {
		if err := trainingrun.ObservationsValidator(v); err != nil {
			return &ValidationError{Name: "observations", err: fmt.Errorf(`ent: validator failed for field "TrainingRun.observations": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Iterations(); ok {
		if err := trainingrun.IterationsValidator(v); err != nil {
			return &ValidationError{Name: "iterations", err: fmt.Errorf(`ent: validator failed for field "TrainingRun.iterations": %w`, err)}
		}
	}
	return nil
}

func (_u *TrainingRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trainingrun.Table, trainingrun.Columns, sqlgraph.NewFieldSpec(trainingrun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(trainingrun.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(trainingrun.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Observations(); ok {
		_spec.SetField(trainingrun.FieldObservations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedObservations(); ok {
		_spec.AddField(trainingrun.FieldObservations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Iterations(); ok {
		_spec.SetField(trainingrun.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterations(); ok {
		_spec.AddField(trainingrun.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LogLikelihood(); ok {
		_spec.SetField(trainingrun.FieldLogLikelihood, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLogLikelihood(); ok {
		_spec.AddField(trainingrun.FieldLogLikelihood, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Converged(); ok {
		_spec.SetField(trainingrun.FieldConverged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(trainingrun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(trainingrun.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrainingRunUpdateOne is the builder for updating a single TrainingRun entity.
type TrainingRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrainingRunMutation
}

// SetRunID sets the "run_id" field.
func (_u *TrainingRunUpdateOne) SetRunID(v string) *TrainingRunUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *TrainingRunUpdateOne) SetNillableRunID(v *string) *TrainingRunUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *TrainingRunUpdateOne) SetTimestamp(v time.Time) *TrainingRunUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *TrainingRunUpdateOne) SetNillableTimestamp(v *time.Time) *TrainingRunUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetObservations sets the "observations" field.
func (_u *TrainingRunUpdateOne) SetObservations(v int) *TrainingRunUpdateOne {
	_u.mutation.ResetObservations()
	_u.mutation.SetObservations(v)
	return _u
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_u *TrainingRunUpdateOne) SetNillableObservations(v *int) *TrainingRunUpdateOne {
	if v != nil {
		_u.SetObservations(*v)
	}
	return _u
}

// AddObservations adds value to the "observations" field.
func (_u *TrainingRunUpdateOne) AddObservations(v int) *TrainingRunUpdateOne {
	_u.mutation.AddObservations(v)
	return _u
}

// SetIterations sets the "iterations" field.
func (_u *TrainingRunUpdateOne) SetIterations(v int) *TrainingRunUpdateOne {
	_u.mutation.ResetIterations()
	_u.mutation.SetIterations(v)
	return _u
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (_u *TrainingRunUpdateOne) SetNillableIterations(v *int) *TrainingRunUpdateOne {
	if v != nil {
		_u.SetIterations(*v)
	}
	return _u
}

// AddIterations adds value to the "iterations" field.
func (_u *TrainingRunUpdateOne) AddIterations(v int) *TrainingRunUpdateOne {
	_u.mutation.AddIterations(v)
	return _u
}

// SetLogLikelihood sets the "log_likelihood" field.
func (_u *TrainingRunUpdateOne) SetLogLikelihood(v float64) *TrainingRunUpdateOne {
	_u.mutation.ResetLogLikelihood()
	_u.mutation.SetLogLikelihood(v)
	return _u
}

// SetNillableLogLikelihood sets the "log_likelihood" field if the given value is not nil.
func (_u *TrainingRunUpdateOne) SetNillableLogLikelihood(v *float64) *TrainingRunUpdateOne {
	if v != nil {
		_u.SetLogLikelihood(*v)
	}
	return _u
}

// AddLogLikelihood adds value to the "log_likelihood" field.
func (_u *TrainingRunUpdateOne) AddLogLikelihood(v float64) *TrainingRunUpdateOne {
	_u.mutation.AddLogLikelihood(v)
	return _u
}

// SetConverged sets the "converged" field.
func (_u *TrainingRunUpdateOne) SetConverged(v bool) *TrainingRunUpdateOne {
	_u.mutation.SetConverged(v)
	return _u
}

// SetNillableConverged sets the "converged" field if the given value is not nil.
func (_u *TrainingRunUpdateOne) SetNillableConverged(v *bool) *TrainingRunUpdateOne {
	if v != nil {
		_u.SetConverged(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TrainingRunUpdateOne) SetDurationMs(v int64) *TrainingRunUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TrainingRunUpdateOne) SetNillableDurationMs(v *int64) *TrainingRunUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TrainingRunUpdateOne) AddDurationMs(v int64) *TrainingRunUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the TrainingRunMutation object of the builder.
func (_u *TrainingRunUpdateOne) Mutation() *TrainingRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the TrainingRunUpdate builder.
func (_u *TrainingRunUpdateOne) Where(ps ...predicate.TrainingRun) *TrainingRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrainingRunUpdateOne) Select(field string, fields ...string) *TrainingRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrainingRun entity.
func (_u *TrainingRunUpdateOne) Save(ctx context.Context) (*TrainingRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingRunUpdateOne) SaveX(ctx context.Context) *TrainingRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrainingRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrainingRunUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := trainingrun.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "TrainingRun.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Observations(); ok {
		if err := trainingrun.ObservationsValidator(v); err != nil {
			return &ValidationError{Name: "observations", err: fmt.Errorf(`ent: validator failed for field "TrainingRun.observations": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Iterations(); ok {
		if err := trainingrun.IterationsValidator(v); err != nil {
			return &ValidationError{Name: "iterations", err: fmt.Errorf(`ent: validator failed for field "TrainingRun.iterations": %w`, err)}
		}
	}
	return nil
}

func (_u *TrainingRunUpdateOne) sqlSave(ctx context.Context) (_node *TrainingRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trainingrun.Table, trainingrun.Columns, sqlgraph.NewFieldSpec(trainingrun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrainingRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trainingrun.FieldID)
		for _, f := range fields {
			if !trainingrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trainingrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(trainingrun.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(trainingrun.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Observations(); ok {
		_spec.SetField(trainingrun.FieldObservations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedObservations(); ok {
		_spec.AddField(trainingrun.FieldObservations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Iterations(); ok {
		_spec.SetField(trainingrun.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterations(); ok {
		_spec.AddField(trainingrun.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LogLikelihood(); ok {
		_spec.SetField(trainingrun.FieldLogLikelihood, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLogLikelihood(); ok {
		_spec.AddField(trainingrun.FieldLogLikelihood, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Converged(); ok {
		_spec.SetField(trainingrun.FieldConverged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(trainingrun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(trainingrun.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &TrainingRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
