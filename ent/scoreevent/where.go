// Code generated by ent, DO NOT EDIT.

package scoreevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptiq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerUID applies equality check predicate on the "learner_uid" field. It's identical to LearnerUIDEQ.
func LearnerUID(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldLearnerUID, v))
}

// ActivityID applies equality check predicate on the "activity_id" field. It's identical to ActivityIDEQ.
func ActivityID(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldActivityID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldScore, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerUIDEQ applies the EQ predicate on the "learner_uid" field.
func LearnerUIDEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldLearnerUID, v))
}

// LearnerUIDNEQ applies the NEQ predicate on the "learner_uid" field.
func LearnerUIDNEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldLearnerUID, v))
}

// LearnerUIDIn applies the In predicate on the "learner_uid" field.
func LearnerUIDIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldLearnerUID, vs...))
}

// LearnerUIDNotIn applies the NotIn predicate on the "learner_uid" field.
func LearnerUIDNotIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldLearnerUID, vs...))
}

// LearnerUIDGT applies the GT predicate on the "learner_uid" field.
func LearnerUIDGT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldLearnerUID, v))
}

// LearnerUIDGTE applies the GTE predicate on the "learner_uid" field.
func LearnerUIDGTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldLearnerUID, v))
}

// LearnerUIDLT applies the LT predicate on the "learner_uid" field.
func LearnerUIDLT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldLearnerUID, v))
}

// LearnerUIDLTE applies the LTE predicate on the "learner_uid" field.
func LearnerUIDLTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldLearnerUID, v))
}

// LearnerUIDContains applies the Contains predicate on the "learner_uid" field.
func LearnerUIDContains(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContains(FieldLearnerUID, v))
}

// LearnerUIDHasPrefix applies the HasPrefix predicate on the "learner_uid" field.
func LearnerUIDHasPrefix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasPrefix(FieldLearnerUID, v))
}

// LearnerUIDHasSuffix applies the HasSuffix predicate on the "learner_uid" field.
func LearnerUIDHasSuffix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasSuffix(FieldLearnerUID, v))
}

// LearnerUIDIsNil applies the IsNil predicate on the "learner_uid" field.
func LearnerUIDIsNil() predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIsNull(FieldLearnerUID))
}

// LearnerUIDNotNil applies the NotNil predicate on the "learner_uid" field.
func LearnerUIDNotNil() predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotNull(FieldLearnerUID))
}

// LearnerUIDEqualFold applies the EqualFold predicate on the "learner_uid" field.
func LearnerUIDEqualFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEqualFold(FieldLearnerUID, v))
}

// LearnerUIDContainsFold applies the ContainsFold predicate on the "learner_uid" field.
func LearnerUIDContainsFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContainsFold(FieldLearnerUID, v))
}

// ActivityIDEQ applies the EQ predicate on the "activity_id" field.
func ActivityIDEQ(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldActivityID, v))
}

// ActivityIDNEQ applies the NEQ predicate on the "activity_id" field.
func ActivityIDNEQ(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldActivityID, v))
}

// ActivityIDIn applies the In predicate on the "activity_id" field.
func ActivityIDIn(vs ...int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldActivityID, vs...))
}

// ActivityIDNotIn applies the NotIn predicate on the "activity_id" field.
func ActivityIDNotIn(vs ...int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldActivityID, vs...))
}

// ActivityIDGT applies the GT predicate on the "activity_id" field.
func ActivityIDGT(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldActivityID, v))
}

// ActivityIDGTE applies the GTE predicate on the "activity_id" field.
func ActivityIDGTE(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldActivityID, v))
}

// ActivityIDLT applies the LT predicate on the "activity_id" field.
func ActivityIDLT(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldActivityID, v))
}

// ActivityIDLTE applies the LTE predicate on the "activity_id" field.
func ActivityIDLTE(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldActivityID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldScore, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScoreEvent) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScoreEvent) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScoreEvent) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.NotPredicates(p))
}
