package matrix

// ParamSource is the read contract an embedding application consumes:
// per-activity parameter rows, the population prior, and per-learner
// mastery. Reads never mutate model state beyond lazy mastery row
// initialization.
type ParamSource interface {
	Guess(activityID int) ([]float64, error)
	GuessAll() [][]float64
	Slip(activityID int) ([]float64, error)
	SlipAll() [][]float64
	Transit(activityID int) ([]float64, error)
	Prior() []float64
	Mastery(learnerID int) ([]float64, error)
}
