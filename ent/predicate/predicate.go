// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ParamSnapshot is the predicate function for paramsnapshot builders.
type ParamSnapshot func(*sql.Selector)

// ScoreEvent is the predicate function for scoreevent builders.
type ScoreEvent func(*sql.Selector)

// TrainingRun is the predicate function for trainingrun builders.
type TrainingRun func(*sql.Selector)
