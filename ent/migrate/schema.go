// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ParamSnapshotsColumns holds the columns for the "param_snapshots" table.
	ParamSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// ParamSnapshotsTable holds the schema information for the "param_snapshots" table.
	ParamSnapshotsTable = &schema.Table{
		Name:       "param_snapshots",
		Columns:    ParamSnapshotsColumns,
		PrimaryKey: []*schema.Column{ParamSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "paramsnapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ParamSnapshotsColumns[2]},
			},
			{
				Name:    "paramsnapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{ParamSnapshotsColumns[1]},
			},
		},
	}
	// ScoreEventsColumns holds the columns for the "score_events" table.
	ScoreEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeInt},
		{Name: "learner_uid", Type: field.TypeString, Nullable: true},
		{Name: "activity_id", Type: field.TypeInt},
		{Name: "score", Type: field.TypeFloat64},
	}
	// ScoreEventsTable holds the schema information for the "score_events" table.
	ScoreEventsTable = &schema.Table{
		Name:       "score_events",
		Columns:    ScoreEventsColumns,
		PrimaryKey: []*schema.Column{ScoreEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scoreevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ScoreEventsColumns[1]},
			},
			{
				Name:    "scoreevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ScoreEventsColumns[2]},
			},
			{
				Name:    "scoreevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{ScoreEventsColumns[3]},
			},
			{
				Name:    "scoreevent_activity_id",
				Unique:  false,
				Columns: []*schema.Column{ScoreEventsColumns[5]},
			},
		},
	}
	// TrainingRunsColumns holds the columns for the "training_runs" table.
	TrainingRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "observations", Type: field.TypeInt},
		{Name: "iterations", Type: field.TypeInt},
		{Name: "log_likelihood", Type: field.TypeFloat64},
		{Name: "converged", Type: field.TypeBool},
		{Name: "duration_ms", Type: field.TypeInt64},
	}
	// TrainingRunsTable holds the schema information for the "training_runs" table.
	TrainingRunsTable = &schema.Table{
		Name:       "training_runs",
		Columns:    TrainingRunsColumns,
		PrimaryKey: []*schema.Column{TrainingRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trainingrun_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TrainingRunsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ParamSnapshotsTable,
		ScoreEventsTable,
		TrainingRunsTable,
	}
)

func init() {
}
