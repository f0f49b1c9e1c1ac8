// Package bkt implements the Bayesian Knowledge Tracing update rule
// and its supporting probability helpers.
package bkt

import "math"

// Epsilon is the regularization cutoff: the smallest probability mass
// kept when converting to odds or log space.
const Epsilon = 1e-10

// Clamp01 clamps v into [0, 1], absorbing floating-point drift.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// PosteriorCorrect returns the posterior mastery probability after a
// fully correct response. A zero denominator (p exactly 0 or 1 with
// the remaining branch mass excluded) leaves p unchanged.
func PosteriorCorrect(p, guess, slip float64) float64 {
	denom := p*(1-slip) + (1-p)*guess
	if denom == 0 {
		return p
	}
	return p * (1 - slip) / denom
}

// PosteriorIncorrect returns the posterior mastery probability after a
// fully incorrect response, with the same zero-denominator rule.
func PosteriorIncorrect(p, guess, slip float64) float64 {
	denom := p*slip + (1-p)*(1-guess)
	if denom == 0 {
		return p
	}
	return p * slip / denom
}

// Update applies one knowledge-tracing step to a single skill: the two
// conditional posteriors blended by score as a soft correctness
// weight, followed by the learning-opportunity transition. Scores
// outside [0, 1] are clamped, not rejected. When score is exactly 0 or
// 1 this reduces to the standard binary update.
func Update(p, score, guess, slip, transit float64) float64 {
	score = Clamp01(score)
	post := score*PosteriorCorrect(p, guess, slip) + (1-score)*PosteriorIncorrect(p, guess, slip)
	return Clamp01(post + (1-post)*transit)
}

// Odds converts a probability to odds, regularized by Epsilon so the
// result is always finite and positive.
func Odds(p float64) float64 {
	p = math.Min(math.Max(p, Epsilon), 1-Epsilon)
	return p / (1 - p)
}

// Relevance measures how much evidence an activity carries for a
// skill: high when both guess and slip are low.
func Relevance(guess, slip float64) float64 {
	return -math.Log(Odds(guess)) - math.Log(Odds(slip))
}
