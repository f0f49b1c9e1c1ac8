// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptiq/ent/paramsnapshot"
	"github.com/abhisek/adaptiq/ent/predicate"
	"github.com/abhisek/adaptiq/ent/scoreevent"
	"github.com/abhisek/adaptiq/ent/trainingrun"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeParamSnapshot = "ParamSnapshot"
	TypeScoreEvent    = "ScoreEvent"
	TypeTrainingRun   = "TrainingRun"
)

// ParamSnapshotMutation represents an operation that mutates the ParamSnapshot nodes in the graph.
type ParamSnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ParamSnapshot, error)
	predicates    []predicate.ParamSnapshot
}

var _ ent.Mutation = (*ParamSnapshotMutation)(nil)

// paramsnapshotOption allows management of the mutation configuration using functional options.
type paramsnapshotOption func(*ParamSnapshotMutation)

// newParamSnapshotMutation creates new mutation for the ParamSnapshot entity.
func newParamSnapshotMutation(c config, op Op, opts ...paramsnapshotOption) *ParamSnapshotMutation {
	m := &ParamSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeParamSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParamSnapshotID sets the ID field of the mutation.
func withParamSnapshotID(id int) paramsnapshotOption {
	return func(m *ParamSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *ParamSnapshot
		)
		m.oldValue = func(ctx context.Context) (*ParamSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ParamSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParamSnapshot sets the old ParamSnapshot of the mutation.
func withParamSnapshot(node *ParamSnapshot) paramsnapshotOption {
	return func(m *ParamSnapshotMutation) {
		m.oldValue = func(context.Context) (*ParamSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParamSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParamSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParamSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParamSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ParamSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ParamSnapshotMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ParamSnapshotMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ParamSnapshot entity.
// If the ParamSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParamSnapshotMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ParamSnapshotMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ParamSnapshotMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ParamSnapshotMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ParamSnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ParamSnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ParamSnapshot entity.
// If the ParamSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParamSnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ParamSnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetData sets the "data" field.
func (m *ParamSnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *ParamSnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the ParamSnapshot entity.
// If the ParamSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParamSnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *ParamSnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the ParamSnapshotMutation builder.
func (m *ParamSnapshotMutation) Where(ps ...predicate.ParamSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParamSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParamSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ParamSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParamSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParamSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ParamSnapshot).
func (m *ParamSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParamSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.sequence != nil {
		fields = append(fields, paramsnapshot.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, paramsnapshot.FieldTimestamp)
	}
	if m.data != nil {
		fields = append(fields, paramsnapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParamSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paramsnapshot.FieldSequence:
		return m.Sequence()
	case paramsnapshot.FieldTimestamp:
		return m.Timestamp()
	case paramsnapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParamSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paramsnapshot.FieldSequence:
		return m.OldSequence(ctx)
	case paramsnapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case paramsnapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown ParamSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParamSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paramsnapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case paramsnapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case paramsnapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown ParamSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParamSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, paramsnapshot.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParamSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case paramsnapshot.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParamSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case paramsnapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown ParamSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParamSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParamSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParamSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ParamSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParamSnapshotMutation) ResetField(name string) error {
	switch name {
	case paramsnapshot.FieldSequence:
		m.ResetSequence()
		return nil
	case paramsnapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case paramsnapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown ParamSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParamSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParamSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParamSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParamSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParamSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParamSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParamSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ParamSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParamSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ParamSnapshot edge %s", name)
}

// ScoreEventMutation represents an operation that mutates the ScoreEvent nodes in the graph.
type ScoreEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sequence       *int64
	addsequence    *int64
	timestamp      *time.Time
	learner_id     *int
	addlearner_id  *int
	learner_uid    *string
	activity_id    *int
	addactivity_id *int
	score          *float64
	addscore       *float64
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ScoreEvent, error)
	predicates     []predicate.ScoreEvent
}

var _ ent.Mutation = (*ScoreEventMutation)(nil)

// scoreeventOption allows management of the mutation configuration using functional options.
type scoreeventOption func(*ScoreEventMutation)

// newScoreEventMutation creates new mutation for the ScoreEvent entity.
func newScoreEventMutation(c config, op Op, opts ...scoreeventOption) *ScoreEventMutation {
	m := &ScoreEventMutation{
		config:        c,
		op:            op,
		typ:           TypeScoreEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScoreEventID sets the ID field of the mutation.
func withScoreEventID(id int) scoreeventOption {
	return func(m *ScoreEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ScoreEvent
		)
		m.oldValue = func(ctx context.Context) (*ScoreEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScoreEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScoreEvent sets the old ScoreEvent of the mutation.
func withScoreEvent(node *ScoreEvent) scoreeventOption {
	return func(m *ScoreEventMutation) {
		m.oldValue = func(context.Context) (*ScoreEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScoreEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScoreEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScoreEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScoreEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScoreEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ScoreEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ScoreEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ScoreEvent entity.
// If the ScoreEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ScoreEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ScoreEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ScoreEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ScoreEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ScoreEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ScoreEvent entity.
// If the ScoreEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ScoreEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *ScoreEventMutation) SetLearnerID(i int) {
	m.learner_id = &i
	m.addlearner_id = nil
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *ScoreEventMutation) LearnerID() (r int, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the ScoreEvent entity.
// If the ScoreEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEventMutation) OldLearnerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// AddLearnerID adds i to the "learner_id" field.
func (m *ScoreEventMutation) AddLearnerID(i int) {
	if m.addlearner_id != nil {
		*m.addlearner_id += i
	} else {
		m.addlearner_id = &i
	}
}

// AddedLearnerID returns the value that was added to the "learner_id" field in this mutation.
func (m *ScoreEventMutation) AddedLearnerID() (r int, exists bool) {
	v := m.addlearner_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *ScoreEventMutation) ResetLearnerID() {
	m.learner_id = nil
	m.addlearner_id = nil
}

// SetLearnerUID sets the "learner_uid" field.
func (m *ScoreEventMutation) SetLearnerUID(s string) {
	m.learner_uid = &s
}

// LearnerUID returns the value of the "learner_uid" field in the mutation.
func (m *ScoreEventMutation) LearnerUID() (r string, exists bool) {
	v := m.learner_uid
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerUID returns the old "learner_uid" field's value of the ScoreEvent entity.
// If the ScoreEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEventMutation) OldLearnerUID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerUID: %w", err)
	}
	return oldValue.LearnerUID, nil
}

// ClearLearnerUID clears the value of the "learner_uid" field.
func (m *ScoreEventMutation) ClearLearnerUID() {
	m.learner_uid = nil
	m.clearedFields[scoreevent.FieldLearnerUID] = struct{}{}
}

// LearnerUIDCleared returns if the "learner_uid" field was cleared in this mutation.
func (m *ScoreEventMutation) LearnerUIDCleared() bool {
	_, ok := m.clearedFields[scoreevent.FieldLearnerUID]
	return ok
}

// ResetLearnerUID resets all changes to the "learner_uid" field.
func (m *ScoreEventMutation) ResetLearnerUID() {
	m.learner_uid = nil
	delete(m.clearedFields, scoreevent.FieldLearnerUID)
}

// SetActivityID sets the "activity_id" field.
func (m *ScoreEventMutation) SetActivityID(i int) {
	m.activity_id = &i
	m.addactivity_id = nil
}

// ActivityID returns the value of the "activity_id" field in the mutation.
func (m *ScoreEventMutation) ActivityID() (r int, exists bool) {
	v := m.activity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityID returns the old "activity_id" field's value of the ScoreEvent entity.
// If the ScoreEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEventMutation) OldActivityID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityID: %w", err)
	}
	return oldValue.ActivityID, nil
}

// AddActivityID adds i to the "activity_id" field.
func (m *ScoreEventMutation) AddActivityID(i int) {
	if m.addactivity_id != nil {
		*m.addactivity_id += i
	} else {
		m.addactivity_id = &i
	}
}

// AddedActivityID returns the value that was added to the "activity_id" field in this mutation.
func (m *ScoreEventMutation) AddedActivityID() (r int, exists bool) {
	v := m.addactivity_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetActivityID resets all changes to the "activity_id" field.
func (m *ScoreEventMutation) ResetActivityID() {
	m.activity_id = nil
	m.addactivity_id = nil
}

// SetScore sets the "score" field.
func (m *ScoreEventMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ScoreEventMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ScoreEvent entity.
// If the ScoreEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEventMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *ScoreEventMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ScoreEventMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ScoreEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// Where appends a list predicates to the ScoreEventMutation builder.
func (m *ScoreEventMutation) Where(ps ...predicate.ScoreEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScoreEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScoreEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScoreEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScoreEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScoreEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScoreEvent).
func (m *ScoreEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScoreEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sequence != nil {
		fields = append(fields, scoreevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, scoreevent.FieldTimestamp)
	}
	if m.learner_id != nil {
		fields = append(fields, scoreevent.FieldLearnerID)
	}
	if m.learner_uid != nil {
		fields = append(fields, scoreevent.FieldLearnerUID)
	}
	if m.activity_id != nil {
		fields = append(fields, scoreevent.FieldActivityID)
	}
	if m.score != nil {
		fields = append(fields, scoreevent.FieldScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScoreEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scoreevent.FieldSequence:
		return m.Sequence()
	case scoreevent.FieldTimestamp:
		return m.Timestamp()
	case scoreevent.FieldLearnerID:
		return m.LearnerID()
	case scoreevent.FieldLearnerUID:
		return m.LearnerUID()
	case scoreevent.FieldActivityID:
		return m.ActivityID()
	case scoreevent.FieldScore:
		return m.Score()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScoreEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scoreevent.FieldSequence:
		return m.OldSequence(ctx)
	case scoreevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case scoreevent.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case scoreevent.FieldLearnerUID:
		return m.OldLearnerUID(ctx)
	case scoreevent.FieldActivityID:
		return m.OldActivityID(ctx)
	case scoreevent.FieldScore:
		return m.OldScore(ctx)
	}
	return nil, fmt.Errorf("unknown ScoreEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoreEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scoreevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case scoreevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case scoreevent.FieldLearnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case scoreevent.FieldLearnerUID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerUID(v)
		return nil
	case scoreevent.FieldActivityID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityID(v)
		return nil
	case scoreevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	}
	return fmt.Errorf("unknown ScoreEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScoreEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, scoreevent.FieldSequence)
	}
	if m.addlearner_id != nil {
		fields = append(fields, scoreevent.FieldLearnerID)
	}
	if m.addactivity_id != nil {
		fields = append(fields, scoreevent.FieldActivityID)
	}
	if m.addscore != nil {
		fields = append(fields, scoreevent.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScoreEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scoreevent.FieldSequence:
		return m.AddedSequence()
	case scoreevent.FieldLearnerID:
		return m.AddedLearnerID()
	case scoreevent.FieldActivityID:
		return m.AddedActivityID()
	case scoreevent.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoreEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scoreevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case scoreevent.FieldLearnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLearnerID(v)
		return nil
	case scoreevent.FieldActivityID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActivityID(v)
		return nil
	case scoreevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown ScoreEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScoreEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scoreevent.FieldLearnerUID) {
		fields = append(fields, scoreevent.FieldLearnerUID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScoreEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScoreEventMutation) ClearField(name string) error {
	switch name {
	case scoreevent.FieldLearnerUID:
		m.ClearLearnerUID()
		return nil
	}
	return fmt.Errorf("unknown ScoreEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScoreEventMutation) ResetField(name string) error {
	switch name {
	case scoreevent.FieldSequence:
		m.ResetSequence()
		return nil
	case scoreevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case scoreevent.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case scoreevent.FieldLearnerUID:
		m.ResetLearnerUID()
		return nil
	case scoreevent.FieldActivityID:
		m.ResetActivityID()
		return nil
	case scoreevent.FieldScore:
		m.ResetScore()
		return nil
	}
	return fmt.Errorf("unknown ScoreEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScoreEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScoreEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScoreEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScoreEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScoreEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScoreEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScoreEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScoreEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScoreEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScoreEvent edge %s", name)
}

// TrainingRunMutation represents an operation that mutates the TrainingRun nodes in the graph.
type TrainingRunMutation struct {
	config
	op                Op
	typ               string
	id                *int
	run_id            *string
	timestamp         *time.Time
	observations      *int
	addobservations   *int
	iterations        *int
	additerations     *int
	log_likelihood    *float64
	addlog_likelihood *float64
	converged         *bool
	duration_ms       *int64
	addduration_ms    *int64
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*TrainingRun, error)
	predicates        []predicate.TrainingRun
}

var _ ent.Mutation = (*TrainingRunMutation)(nil)

// trainingrunOption allows management of the mutation configuration using functional options.
type trainingrunOption func(*TrainingRunMutation)

// newTrainingRunMutation creates new mutation for the TrainingRun entity.
func newTrainingRunMutation(c config, op Op, opts ...trainingrunOption) *TrainingRunMutation {
	m := &TrainingRunMutation{
		config:        c,
		op:            op,
		typ:           TypeTrainingRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrainingRunID sets the ID field of the mutation.
func withTrainingRunID(id int) trainingrunOption {
	return func(m *TrainingRunMutation) {
		var (
			err   error
			once  sync.Once
			value *TrainingRun
		)
		m.oldValue = func(ctx context.Context) (*TrainingRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrainingRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrainingRun sets the old TrainingRun of the mutation.
func withTrainingRun(node *TrainingRun) trainingrunOption {
	return func(m *TrainingRunMutation) {
		m.oldValue = func(context.Context) (*TrainingRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrainingRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrainingRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrainingRunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrainingRunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrainingRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *TrainingRunMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *TrainingRunMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the TrainingRun entity.
// If the TrainingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingRunMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *TrainingRunMutation) ResetRunID() {
	m.run_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *TrainingRunMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *TrainingRunMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the TrainingRun entity.
// If the TrainingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingRunMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *TrainingRunMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetObservations sets the "observations" field.
func (m *TrainingRunMutation) SetObservations(i int) {
	m.observations = &i
	m.addobservations = nil
}

// Observations returns the value of the "observations" field in the mutation.
func (m *TrainingRunMutation) Observations() (r int, exists bool) {
	v := m.observations
	if v == nil {
		return
	}
	return *v, true
}

// OldObservations returns the old "observations" field's value of the TrainingRun entity.
// If the TrainingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingRunMutation) OldObservations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservations: %w", err)
	}
	return oldValue.Observations, nil
}

// AddObservations adds i to the "observations" field.
func (m *TrainingRunMutation) AddObservations(i int) {
	if m.addobservations != nil {
		*m.addobservations += i
	} else {
		m.addobservations = &i
	}
}

// AddedObservations returns the value that was added to the "observations" field in this mutation.
func (m *TrainingRunMutation) AddedObservations() (r int, exists bool) {
	v := m.addobservations
	if v == nil {
		return
	}
	return *v, true
}

// ResetObservations resets all changes to the "observations" field.
func (m *TrainingRunMutation) ResetObservations() {
	m.observations = nil
	m.addobservations = nil
}

// SetIterations sets the "iterations" field.
func (m *TrainingRunMutation) SetIterations(i int) {
	m.iterations = &i
	m.additerations = nil
}

// Iterations returns the value of the "iterations" field in the mutation.
func (m *TrainingRunMutation) Iterations() (r int, exists bool) {
	v := m.iterations
	if v == nil {
		return
	}
	return *v, true
}

// OldIterations returns the old "iterations" field's value of the TrainingRun entity.
// If the TrainingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingRunMutation) OldIterations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIterations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIterations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIterations: %w", err)
	}
	return oldValue.Iterations, nil
}

// AddIterations adds i to the "iterations" field.
func (m *TrainingRunMutation) AddIterations(i int) {
	if m.additerations != nil {
		*m.additerations += i
	} else {
		m.additerations = &i
	}
}

// AddedIterations returns the value that was added to the "iterations" field in this mutation.
func (m *TrainingRunMutation) AddedIterations() (r int, exists bool) {
	v := m.additerations
	if v == nil {
		return
	}
	return *v, true
}

// ResetIterations resets all changes to the "iterations" field.
func (m *TrainingRunMutation) ResetIterations() {
	m.iterations = nil
	m.additerations = nil
}

// SetLogLikelihood sets the "log_likelihood" field.
func (m *TrainingRunMutation) SetLogLikelihood(f float64) {
	m.log_likelihood = &f
	m.addlog_likelihood = nil
}

// LogLikelihood returns the value of the "log_likelihood" field in the mutation.
func (m *TrainingRunMutation) LogLikelihood() (r float64, exists bool) {
	v := m.log_likelihood
	if v == nil {
		return
	}
	return *v, true
}

// OldLogLikelihood returns the old "log_likelihood" field's value of the TrainingRun entity.
// If the TrainingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingRunMutation) OldLogLikelihood(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogLikelihood is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogLikelihood requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogLikelihood: %w", err)
	}
	return oldValue.LogLikelihood, nil
}

// AddLogLikelihood adds f to the "log_likelihood" field.
func (m *TrainingRunMutation) AddLogLikelihood(f float64) {
	if m.addlog_likelihood != nil {
		*m.addlog_likelihood += f
	} else {
		m.addlog_likelihood = &f
	}
}

// AddedLogLikelihood returns the value that was added to the "log_likelihood" field in this mutation.
func (m *TrainingRunMutation) AddedLogLikelihood() (r float64, exists bool) {
	v := m.addlog_likelihood
	if v == nil {
		return
	}
	return *v, true
}

// ResetLogLikelihood resets all changes to the "log_likelihood" field.
func (m *TrainingRunMutation) ResetLogLikelihood() {
	m.log_likelihood = nil
	m.addlog_likelihood = nil
}

// SetConverged sets the "converged" field.
func (m *TrainingRunMutation) SetConverged(b bool) {
	m.converged = &b
}

// Converged returns the value of the "converged" field in the mutation.
func (m *TrainingRunMutation) Converged() (r bool, exists bool) {
	v := m.converged
	if v == nil {
		return
	}
	return *v, true
}

// OldConverged returns the old "converged" field's value of the TrainingRun entity.
// If the TrainingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingRunMutation) OldConverged(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConverged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConverged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConverged: %w", err)
	}
	return oldValue.Converged, nil
}

// ResetConverged resets all changes to the "converged" field.
func (m *TrainingRunMutation) ResetConverged() {
	m.converged = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *TrainingRunMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *TrainingRunMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the TrainingRun entity.
// If the TrainingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingRunMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *TrainingRunMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *TrainingRunMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *TrainingRunMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// Where appends a list predicates to the TrainingRunMutation builder.
func (m *TrainingRunMutation) Where(ps ...predicate.TrainingRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrainingRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrainingRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrainingRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrainingRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrainingRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrainingRun).
func (m *TrainingRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrainingRunMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.run_id != nil {
		fields = append(fields, trainingrun.FieldRunID)
	}
	if m.timestamp != nil {
		fields = append(fields, trainingrun.FieldTimestamp)
	}
	if m.observations != nil {
		fields = append(fields, trainingrun.FieldObservations)
	}
	if m.iterations != nil {
		fields = append(fields, trainingrun.FieldIterations)
	}
	if m.log_likelihood != nil {
		fields = append(fields, trainingrun.FieldLogLikelihood)
	}
	if m.converged != nil {
		fields = append(fields, trainingrun.FieldConverged)
	}
	if m.duration_ms != nil {
		fields = append(fields, trainingrun.FieldDurationMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrainingRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trainingrun.FieldRunID:
		return m.RunID()
	case trainingrun.FieldTimestamp:
		return m.Timestamp()
	case trainingrun.FieldObservations:
		return m.Observations()
	case trainingrun.FieldIterations:
		return m.Iterations()
	case trainingrun.FieldLogLikelihood:
		return m.LogLikelihood()
	case trainingrun.FieldConverged:
		return m.Converged()
	case trainingrun.FieldDurationMs:
		return m.DurationMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrainingRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trainingrun.FieldRunID:
		return m.OldRunID(ctx)
	case trainingrun.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case trainingrun.FieldObservations:
		return m.OldObservations(ctx)
	case trainingrun.FieldIterations:
		return m.OldIterations(ctx)
	case trainingrun.FieldLogLikelihood:
		return m.OldLogLikelihood(ctx)
	case trainingrun.FieldConverged:
		return m.OldConverged(ctx)
	case trainingrun.FieldDurationMs:
		return m.OldDurationMs(ctx)
	}
	return nil, fmt.Errorf("unknown TrainingRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrainingRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trainingrun.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case trainingrun.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case trainingrun.FieldObservations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservations(v)
		return nil
	case trainingrun.FieldIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIterations(v)
		return nil
	case trainingrun.FieldLogLikelihood:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogLikelihood(v)
		return nil
	case trainingrun.FieldConverged:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConverged(v)
		return nil
	case trainingrun.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown TrainingRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrainingRunMutation) AddedFields() []string {
	var fields []string
	if m.addobservations != nil {
		fields = append(fields, trainingrun.FieldObservations)
	}
	if m.additerations != nil {
		fields = append(fields, trainingrun.FieldIterations)
	}
	if m.addlog_likelihood != nil {
		fields = append(fields, trainingrun.FieldLogLikelihood)
	}
	if m.addduration_ms != nil {
		fields = append(fields, trainingrun.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrainingRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trainingrun.FieldObservations:
		return m.AddedObservations()
	case trainingrun.FieldIterations:
		return m.AddedIterations()
	case trainingrun.FieldLogLikelihood:
		return m.AddedLogLikelihood()
	case trainingrun.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrainingRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trainingrun.FieldObservations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddObservations(v)
		return nil
	case trainingrun.FieldIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIterations(v)
		return nil
	case trainingrun.FieldLogLikelihood:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLogLikelihood(v)
		return nil
	case trainingrun.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown TrainingRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrainingRunMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrainingRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrainingRunMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TrainingRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrainingRunMutation) ResetField(name string) error {
	switch name {
	case trainingrun.FieldRunID:
		m.ResetRunID()
		return nil
	case trainingrun.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case trainingrun.FieldObservations:
		m.ResetObservations()
		return nil
	case trainingrun.FieldIterations:
		m.ResetIterations()
		return nil
	case trainingrun.FieldLogLikelihood:
		m.ResetLogLikelihood()
		return nil
	case trainingrun.FieldConverged:
		m.ResetConverged()
		return nil
	case trainingrun.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	}
	return fmt.Errorf("unknown TrainingRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrainingRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrainingRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrainingRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrainingRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrainingRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrainingRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrainingRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TrainingRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrainingRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TrainingRun edge %s", name)
}
