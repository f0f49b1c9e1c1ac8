// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptiq/ent/scoreevent"
)

// ScoreEvent is the model entity for the ScoreEvent schema.
type ScoreEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Engine learner id
	LearnerID int `json:"learner_id,omitempty"`
	// External learner identifier (UUID), if known
	LearnerUID string `json:"learner_uid,omitempty"`
	// Engine activity id
	ActivityID int `json:"activity_id,omitempty"`
	// Observed score in [0, 1]
	Score        float64 `json:"score,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScoreEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scoreevent.FieldScore:
			values[i] = new(sql.NullFloat64)
		case scoreevent.FieldID, scoreevent.FieldSequence, scoreevent.FieldLearnerID, scoreevent.FieldActivityID:
			values[i] = new(sql.NullInt64)
		case scoreevent.FieldLearnerUID:
			values[i] = new(sql.NullString)
		case scoreevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScoreEvent fields.
func (_m *ScoreEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scoreevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case scoreevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case scoreevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case scoreevent.FieldLearnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = int(value.Int64)
			}
		case scoreevent.FieldLearnerUID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_uid", values[i])
			} else if value.Valid {
				_m.LearnerUID = value.String
			}
		case scoreevent.FieldActivityID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field activity_id", values[i])
			} else if value.Valid {
				_m.ActivityID = int(value.Int64)
			}
		case scoreevent.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScoreEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ScoreEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScoreEvent.
// Note that you need to call ScoreEvent.Unwrap() before calling this method if this ScoreEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScoreEvent) Update() *ScoreEventUpdateOne {
	return NewScoreEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScoreEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScoreEvent) Unwrap() *ScoreEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScoreEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScoreEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ScoreEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearnerID))
	builder.WriteString(", ")
	builder.WriteString("learner_uid=")
	builder.WriteString(_m.LearnerUID)
	builder.WriteString(", ")
	builder.WriteString("activity_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActivityID))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteByte(')')
	return builder.String()
}

// ScoreEvents is a parsable slice of ScoreEvent.
type ScoreEvents []*ScoreEvent
