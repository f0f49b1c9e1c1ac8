package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ParamSnapshot captures the full parameter state (Guess, Slip,
// Transit, MasteryPrior and per-learner mastery) at a point in time,
// enabling fast restore without replaying the score log.
type ParamSnapshot struct {
	ent.Schema
}

func (ParamSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Comment("Score event sequence number at the time of snapshot"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the snapshot was taken"),
		field.JSON("data", map[string]any{}).
			Comment("Full parameter state as JSON"),
	}
}

func (ParamSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("sequence"),
	}
}
