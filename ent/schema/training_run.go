package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TrainingRun records one parameter-estimation run for audit.
type TrainingRun struct {
	ent.Schema
}

func (TrainingRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Unique().
			NotEmpty().
			Comment("UUID for this run"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the run started"),
		field.Int("observations").
			NonNegative().
			Comment("Number of observations trained on"),
		field.Int("iterations").
			NonNegative().
			Comment("EM iterations performed"),
		field.Float("log_likelihood").
			Comment("Final data log-likelihood"),
		field.Bool("converged").
			Comment("Whether the run reached tolerance"),
		field.Int64("duration_ms").
			Comment("Wall-clock duration"),
	}
}

func (TrainingRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
