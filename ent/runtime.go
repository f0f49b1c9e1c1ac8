// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/adaptiq/ent/paramsnapshot"
	"github.com/abhisek/adaptiq/ent/schema"
	"github.com/abhisek/adaptiq/ent/scoreevent"
	"github.com/abhisek/adaptiq/ent/trainingrun"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	paramsnapshotFields := schema.ParamSnapshot{}.Fields()
	_ = paramsnapshotFields
	// paramsnapshotDescTimestamp is the schema descriptor for timestamp field.
	paramsnapshotDescTimestamp := paramsnapshotFields[1].Descriptor()
	// paramsnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	paramsnapshot.DefaultTimestamp = paramsnapshotDescTimestamp.Default.(func() time.Time)
	scoreeventMixin := schema.ScoreEvent{}.Mixin()
	scoreeventMixinFields0 := scoreeventMixin[0].Fields()
	_ = scoreeventMixinFields0
	scoreeventFields := schema.ScoreEvent{}.Fields()
	_ = scoreeventFields
	// scoreeventDescTimestamp is the schema descriptor for timestamp field.
	scoreeventDescTimestamp := scoreeventMixinFields0[1].Descriptor()
	// scoreevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	scoreevent.DefaultTimestamp = scoreeventDescTimestamp.Default.(func() time.Time)
	// scoreeventDescLearnerID is the schema descriptor for learner_id field.
	scoreeventDescLearnerID := scoreeventFields[0].Descriptor()
	// scoreevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	scoreevent.LearnerIDValidator = scoreeventDescLearnerID.Validators[0].(func(int) error)
	// scoreeventDescActivityID is the schema descriptor for activity_id field.
	scoreeventDescActivityID := scoreeventFields[2].Descriptor()
	// scoreevent.ActivityIDValidator is a validator for the "activity_id" field. It is called by the builders before save.
	scoreevent.ActivityIDValidator = scoreeventDescActivityID.Validators[0].(func(int) error)
	trainingrunFields := schema.TrainingRun{}.Fields()
	_ = trainingrunFields
	// trainingrunDescRunID is the schema descriptor for run_id field.
	trainingrunDescRunID := trainingrunFields[0].Descriptor()
	// trainingrun.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	trainingrun.RunIDValidator = trainingrunDescRunID.Validators[0].(func(string) error)
	// trainingrunDescTimestamp is the schema descriptor for timestamp field.
	trainingrunDescTimestamp := trainingrunFields[1].Descriptor()
	// trainingrun.DefaultTimestamp holds the default value on creation for the timestamp field.
	trainingrun.DefaultTimestamp = trainingrunDescTimestamp.Default.(func() time.Time)
	// trainingrunDescObservations is the schema descriptor for observations field.
	trainingrunDescObservations := trainingrunFields[2].Descriptor()
	// trainingrun.ObservationsValidator is a validator for the "observations" field. It is called by the builders before save.
	trainingrun.ObservationsValidator = trainingrunDescObservations.Validators[0].(func(int) error)
	// trainingrunDescIterations is the schema descriptor for iterations field.
	trainingrunDescIterations := trainingrunFields[3].Descriptor()
	// trainingrun.IterationsValidator is a validator for the "iterations" field. It is called by the builders before save.
	trainingrun.IterationsValidator = trainingrunDescIterations.Validators[0].(func(int) error)
}
