// Code generated by ent, DO NOT EDIT.

package trainingrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptiq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldRunID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldTimestamp, v))
}

// Observations applies equality check predicate on the "observations" field. It's identical to ObservationsEQ.
func Observations(v int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldObservations, v))
}

// Iterations applies equality check predicate on the "iterations" field. It's identical to IterationsEQ.
func Iterations(v int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldIterations, v))
}

// LogLikelihood applies equality check predicate on the "log_likelihood" field. It's identical to LogLikelihoodEQ.
func LogLikelihood(v float64) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldLogLikelihood, v))
}

// Converged applies equality check predicate on the "converged" field. It's identical to ConvergedEQ.
func Converged(v bool) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldConverged, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldDurationMs, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldContainsFold(FieldRunID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLTE(FieldTimestamp, v))
}

// ObservationsEQ applies the EQ predicate on the "observations" field.
func ObservationsEQ(v int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldObservations, v))
}

// ObservationsNEQ applies the NEQ predicate on the "observations" field.
func ObservationsNEQ(v int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNEQ(FieldObservations, v))
}

// ObservationsIn applies the In predicate on the "observations" field.
func ObservationsIn(vs ...int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldIn(FieldObservations, vs...))
}

// ObservationsNotIn applies the NotIn predicate on the "observations" field.
func ObservationsNotIn(vs ...int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNotIn(FieldObservations, vs...))
}

// ObservationsGT applies the GT predicate on the "observations" field.
func ObservationsGT(v int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGT(FieldObservations, v))
}

// ObservationsGTE applies the GTE predicate on the "observations" field.
func ObservationsGTE(v int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGTE(FieldObservations, v))
}

// ObservationsLT applies the LT predicate on the "observations" field.
func ObservationsLT(v int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLT(FieldObservations, v))
}

// ObservationsLTE applies the LTE predicate on the "observations" field.
func ObservationsLTE(v int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLTE(FieldObservations, v))
}

// IterationsEQ applies the EQ predicate on the "iterations" field.
func IterationsEQ(v int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldIterations, v))
}

// IterationsNEQ applies the NEQ predicate on the "iterations" field.
func IterationsNEQ(v int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNEQ(FieldIterations, v))
}

// IterationsIn applies the In predicate on the "iterations" field.
func IterationsIn(vs ...int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldIn(FieldIterations, vs...))
}

// IterationsNotIn applies the NotIn predicate on the "iterations" field.
func IterationsNotIn(vs ...int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNotIn(FieldIterations, vs...))
}

// IterationsGT applies the GT predicate on the "iterations" field.
func IterationsGT(v int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGT(FieldIterations, v))
}

// IterationsGTE applies the GTE predicate on the "iterations" field.
func IterationsGTE(v int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGTE(FieldIterations, v))
}

// IterationsLT applies the LT predicate on the "iterations" field.
func IterationsLT(v int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLT(FieldIterations, v))
}

// IterationsLTE applies the LTE predicate on the "iterations" field.
func IterationsLTE(v int) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLTE(FieldIterations, v))
}

// LogLikelihoodEQ applies the EQ predicate on the "log_likelihood" field.
func LogLikelihoodEQ(v float64) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldLogLikelihood, v))
}

// LogLikelihoodNEQ applies the NEQ predicate on the "log_likelihood" field.
func LogLikelihoodNEQ(v float64) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNEQ(FieldLogLikelihood, v))
}

// LogLikelihoodIn applies the In predicate on the "log_likelihood" field.
func LogLikelihoodIn(vs ...float64) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldIn(FieldLogLikelihood, vs...))
}

// LogLikelihoodNotIn applies the NotIn predicate on the "log_likelihood" field.
func LogLikelihoodNotIn(vs ...float64) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNotIn(FieldLogLikelihood, vs...))
}

// LogLikelihoodGT applies the GT predicate on the "log_likelihood" field.
func LogLikelihoodGT(v float64) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGT(FieldLogLikelihood, v))
}

// LogLikelihoodGTE applies the GTE predicate on the "log_likelihood" field.
func LogLikelihoodGTE(v float64) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGTE(FieldLogLikelihood, v))
}

// LogLikelihoodLT applies the LT predicate on the "log_likelihood" field.
func LogLikelihoodLT(v float64) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLT(FieldLogLikelihood, v))
}

// LogLikelihoodLTE applies the LTE predicate on the "log_likelihood" field.
func LogLikelihoodLTE(v float64) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLTE(FieldLogLikelihood, v))
}

// ConvergedEQ applies the EQ predicate on the "converged" field.
func ConvergedEQ(v bool) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldConverged, v))
}

// ConvergedNEQ applies the NEQ predicate on the "converged" field.
func ConvergedNEQ(v bool) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNEQ(FieldConverged, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.TrainingRun {
	return predicate.TrainingRun(sql.FieldLTE(FieldDurationMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrainingRun) predicate.TrainingRun {
	return predicate.TrainingRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrainingRun) predicate.TrainingRun {
	return predicate.TrainingRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrainingRun) predicate.TrainingRun {
	return predicate.TrainingRun(sql.NotPredicates(p))
}
