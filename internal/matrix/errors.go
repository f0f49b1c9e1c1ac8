package matrix

import "fmt"

// OutOfRangeError reports an id outside the declared dense range.
type OutOfRangeError struct {
	Kind string // "learner", "activity", or "skill"
	ID   int
	Max  int // largest valid id
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s id %d out of range [0, %d]", e.Kind, e.ID, e.Max)
}

// InvalidProbabilityError reports a write that would leave a
// probability entry outside [0, 1].
type InvalidProbabilityError struct {
	Value float64
}

func (e *InvalidProbabilityError) Error() string {
	return fmt.Sprintf("probability value %g outside [0, 1]", e.Value)
}
