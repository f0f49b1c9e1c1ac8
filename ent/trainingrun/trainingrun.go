// Code generated by ent, DO NOT EDIT.

package trainingrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the trainingrun type in the database.
	Label = "training_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldObservations holds the string denoting the observations field in the database.
	FieldObservations = "observations"
	// FieldIterations holds the string denoting the iterations field in the database.
	FieldIterations = "iterations"
	// FieldLogLikelihood holds the string denoting the log_likelihood field in the database.
	FieldLogLikelihood = "log_likelihood"
	// FieldConverged holds the string denoting the converged field in the database.
	FieldConverged = "converged"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// Table holds the table name of the trainingrun in the database.
	Table = "training_runs"
)

// Columns holds all SQL columns for trainingrun fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldTimestamp,
	FieldObservations,
	FieldIterations,
	FieldLogLikelihood,
	FieldConverged,
	FieldDurationMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	RunIDValidator func(string) error
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// ObservationsValidator is a validator for the "observations" field. It is called by the builders before save.
	ObservationsValidator func(int) error
	// IterationsValidator is a validator for the "iterations" field. It is called by the builders before save.
	IterationsValidator func(int) error
)

// OrderOption defines the ordering options for the TrainingRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByObservations orders the results by the observations field.
func ByObservations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservations, opts...).ToFunc()
}

// ByIterations orders the results by the iterations field.
func ByIterations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIterations, opts...).ToFunc()
}

// ByLogLikelihood orders the results by the log_likelihood field.
func ByLogLikelihood(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogLikelihood, opts...).ToFunc()
}

// ByConverged orders the results by the converged field.
func ByConverged(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConverged, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}
