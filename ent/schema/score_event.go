package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScoreEvent records one observed score: a learner attempting an
// activity. The event log is the training corpus and the replay source
// for mastery state.
type ScoreEvent struct {
	ent.Schema
}

func (ScoreEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ScoreEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("learner_id").
			NonNegative().
			Comment("Engine learner id"),
		field.String("learner_uid").
			Optional().
			Comment("External learner identifier (UUID), if known"),
		field.Int("activity_id").
			NonNegative().
			Comment("Engine activity id"),
		field.Float("score").
			Comment("Observed score in [0, 1]"),
	}
}

func (ScoreEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("activity_id"),
	}
}
