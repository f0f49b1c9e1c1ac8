// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptiq/ent/trainingrun"
)

// TrainingRun is the model entity for the TrainingRun schema.
type TrainingRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID for this run
	RunID string `json:"run_id,omitempty"`
	// When the run started
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Number of observations trained on
	Observations int `json:"observations,omitempty"`
	// EM iterations performed
	Iterations int `json:"iterations,omitempty"`
	// Final data log-likelihood
	LogLikelihood float64 `json:"log_likelihood,omitempty"`
	// Whether the run reached tolerance
	Converged bool `json:"converged,omitempty"`
	// Wall-clock duration
	DurationMs   int64 `json:"duration_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrainingRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trainingrun.FieldConverged:
			values[i] = new(sql.NullBool)
		case trainingrun.FieldLogLikelihood:
			values[i] = new(sql.NullFloat64)
		case trainingrun.FieldID, trainingrun.FieldObservations, trainingrun.FieldIterations, trainingrun.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case trainingrun.FieldRunID:
			values[i] = new(sql.NullString)
		case trainingrun.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrainingRun fields.
func (_m *TrainingRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trainingrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case trainingrun.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case trainingrun.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case trainingrun.FieldObservations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field observations", values[i])
			} else if value.Valid {
				_m.Observations = int(value.Int64)
			}
		case trainingrun.FieldIterations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iterations", values[i])
			} else if value.Valid {
				_m.Iterations = int(value.Int64)
			}
		case trainingrun.FieldLogLikelihood:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field log_likelihood", values[i])
			} else if value.Valid {
				_m.LogLikelihood = value.Float64
			}
		case trainingrun.FieldConverged:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field converged", values[i])
			} else if value.Valid {
				_m.Converged = value.Bool
			}
		case trainingrun.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TrainingRun.
// This includes values selected through modifiers, order, etc.
func (_m *TrainingRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TrainingRun.
// Note that you need to call TrainingRun.Unwrap() before calling this method if this TrainingRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrainingRun) Update() *TrainingRunUpdateOne {
	return NewTrainingRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrainingRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrainingRun) Unwrap() *TrainingRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrainingRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrainingRun) String() string {
	var builder strings.Builder
	builder.WriteString("TrainingRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("observations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Observations))
	builder.WriteString(", ")
	builder.WriteString("iterations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Iterations))
	builder.WriteString(", ")
	builder.WriteString("log_likelihood=")
	builder.WriteString(fmt.Sprintf("%v", _m.LogLikelihood))
	builder.WriteString(", ")
	builder.WriteString("converged=")
	builder.WriteString(fmt.Sprintf("%v", _m.Converged))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteByte(')')
	return builder.String()
}

// TrainingRuns is a parsable slice of TrainingRun.
type TrainingRuns []*TrainingRun
