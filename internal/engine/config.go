package engine

import "github.com/abhisek/adaptiq/internal/recommend"

// Config holds the engine tunables.
type Config struct {
	// MasteryThreshold excludes an activity from recommendation once
	// all its skills' mastery exceeds it.
	MasteryThreshold float64 `yaml:"mastery_threshold"`
	// PrerequisiteGate is the minimum mastery required on every
	// prerequisite skill before an activity unlocks.
	PrerequisiteGate float64 `yaml:"prerequisite_gate"`
	// MaxTrainIterations bounds the EM loop in Train.
	MaxTrainIterations int `yaml:"max_train_iterations"`
	// ConvergenceTolerance is the log-likelihood delta below which
	// training stops early.
	ConvergenceTolerance float64 `yaml:"convergence_tolerance"`
	// TrainInformationThreshold is the minimum expected-count mass
	// behind a fitted parameter cell; cells with less keep their
	// previous value.
	TrainInformationThreshold float64 `yaml:"train_information_threshold"`
	// RemoveDegeneracy rejects fitted guess/slip values of 0.5 and
	// above during training.
	RemoveDegeneracy bool `yaml:"remove_degeneracy"`
	// Weights control the recommendation substrategies.
	Weights recommend.Weights `yaml:"weights"`
}

// DefaultConfig returns the standard engine settings.
func DefaultConfig() Config {
	return Config{
		MasteryThreshold:          0.95,
		PrerequisiteGate:          0.60,
		MaxTrainIterations:        100,
		ConvergenceTolerance:      1e-4,
		TrainInformationThreshold: 1.0,
		RemoveDegeneracy:          true,
		Weights:                   recommend.DefaultWeights(),
	}
}
