// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptiq/ent/predicate"
	"github.com/abhisek/adaptiq/ent/scoreevent"
)

// ScoreEventUpdate is the builder for updating ScoreEvent entities.
type ScoreEventUpdate struct {
	config
	hooks    []Hook
	mutation *ScoreEventMutation
}

// Where appends a list predicates to the ScoreEventUpdate builder.
func (_u *ScoreEventUpdate) Where(ps ...predicate.ScoreEvent) *ScoreEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ScoreEventUpdate) SetLearnerID(v int) *ScoreEventUpdate {
	_u.mutation.ResetLearnerID()
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableLearnerID(v *int) *ScoreEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// AddLearnerID adds value to the "learner_id" field.
func (_u *ScoreEventUpdate) AddLearnerID(v int) *ScoreEventUpdate {
	_u.mutation.AddLearnerID(v)
	return _u
}

// SetLearnerUID sets the "learner_uid" field.
func (_u *ScoreEventUpdate) SetLearnerUID(v string) *ScoreEventUpdate {
	_u.mutation.SetLearnerUID(v)
	return _u
}

// SetNillableLearnerUID sets the "learner_uid" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableLearnerUID(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetLearnerUID(*v)
	}
	return _u
}

// ClearLearnerUID clears the value of the "learner_uid" field.
func (_u *ScoreEventUpdate) ClearLearnerUID() *ScoreEventUpdate {
	_u.mutation.ClearLearnerUID()
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *ScoreEventUpdate) SetActivityID(v int) *ScoreEventUpdate {
	_u.mutation.ResetActivityID()
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableActivityID(v *int) *ScoreEventUpdate {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// AddActivityID adds value to the "activity_id" field.
func (_u *ScoreEventUpdate) AddActivityID(v int) *ScoreEventUpdate {
	_u.mutation.AddActivityID(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *ScoreEventUpdate) SetScore(v float64) *ScoreEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableScore(v *float64) *ScoreEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ScoreEventUpdate) AddScore(v float64) *ScoreEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the ScoreEventMutation object of the builder.
func (_u *ScoreEventUpdate) Mutation() *ScoreEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScoreEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScoreEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := scoreevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityID(); ok {
		if err := scoreevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.activity_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoreevent.Table, scoreevent.Columns, sqlgraph.NewFieldSpec(scoreevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(scoreevent.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearnerID(); ok {
		_spec.AddField(scoreevent.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearnerUID(); ok {
		_spec.SetField(scoreevent.FieldLearnerUID, field.TypeString, value)
	}
	if _u.mutation.LearnerUIDCleared() {
		_spec.ClearField(scoreevent.FieldLearnerUID, field.TypeString)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(scoreevent.FieldActivityID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActivityID(); ok {
		_spec.AddField(scoreevent.FieldActivityID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(scoreevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(scoreevent.FieldScore, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoreevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScoreEventUpdateOne is the builder for updating a single ScoreEvent entity.
type ScoreEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScoreEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ScoreEventUpdateOne) SetLearnerID(v int) *ScoreEventUpdateOne {
	_u.mutation.ResetLearnerID()
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableLearnerID(v *int) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// AddLearnerID adds value to the "learner_id" field.
func (_u *ScoreEventUpdateOne) AddLearnerID(v int) *ScoreEventUpdateOne {
	_u.mutation.AddLearnerID(v)
	return _u
}

// SetLearnerUID sets the "learner_uid" field.
func (_u *ScoreEventUpdateOne) SetLearnerUID(v string) *ScoreEventUpdateOne {
	_u.mutation.SetLearnerUID(v)
	return _u
}

// SetNillableLearnerUID sets the "learner_uid" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableLearnerUID(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetLearnerUID(*v)
	}
	return _u
}

// ClearLearnerUID clears the value of the "learner_uid" field.
func (_u *ScoreEventUpdateOne) ClearLearnerUID() *ScoreEventUpdateOne {
	_u.mutation.ClearLearnerUID()
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *ScoreEventUpdateOne) SetActivityID(v int) *ScoreEventUpdateOne {
	_u.mutation.ResetActivityID()
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableActivityID(v *int) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// AddActivityID adds value to the "activity_id" field.
func (_u *ScoreEventUpdateOne) AddActivityID(v int) *ScoreEventUpdateOne {
	_u.mutation.AddActivityID(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *ScoreEventUpdateOne) SetScore(v float64) *ScoreEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableScore(v *float64) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ScoreEventUpdateOne) AddScore(v float64) *ScoreEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the ScoreEventMutation object of the builder.
func (_u *ScoreEventUpdateOne) Mutation() *ScoreEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScoreEventUpdate builder.
func (_u *ScoreEventUpdateOne) Where(ps ...predicate.ScoreEvent) *ScoreEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScoreEventUpdateOne) Select(field string, fields ...string) *ScoreEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScoreEvent entity.
func (_u *ScoreEventUpdateOne) Save(ctx context.Context) (*ScoreEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreEventUpdateOne) SaveX(ctx context.Context) *ScoreEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScoreEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := scoreevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityID(); ok {
		if err := scoreevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.activity_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreEventUpdateOne) sqlSave(ctx context.Context) (_node *ScoreEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoreevent.Table, scoreevent.Columns, sqlgraph.NewFieldSpec(scoreevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScoreEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scoreevent.FieldID)
		for _, f := range fields {
			if !scoreevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scoreevent.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(scoreevent.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearnerID(); ok {
		_spec.AddField(scoreevent.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearnerUID(); ok {
		_spec.SetField(scoreevent.FieldLearnerUID, field.TypeString, value)
	}
	if _u.mutation.LearnerUIDCleared() {
		_spec.ClearField(scoreevent.FieldLearnerUID, field.TypeString)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(scoreevent.FieldActivityID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActivityID(); ok {
		_spec.AddField(scoreevent.FieldActivityID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(scoreevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(scoreevent.FieldScore, field.TypeFloat64, value)
	}
	_node = &ScoreEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoreevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
