package trainer

import (
	"github.com/abhisek/adaptiq/internal/matrix"
)

// mStep re-estimates params in place from expected counts. Cells with
// no mass keep their current value; invariant [0, 1] is preserved by
// construction (each estimate is a ratio of non-negative masses with
// numerator <= denominator).
func (t *Trainer) mStep(c *counts, params *matrix.Params) {
	activities, skills := params.Shape()
	for a := 0; a < activities; a++ {
		for sk := 0; sk < skills; sk++ {
			if den := c.guessDen.At(a, sk); den > 0 {
				params.Guess.Set(a, sk, clampRatio(c.guessNum.At(a, sk), den))
			}
			if den := c.slipDen.At(a, sk); den > 0 {
				params.Slip.Set(a, sk, clampRatio(c.slipNum.At(a, sk), den))
			}
			if den := c.transitDen.At(a, sk); den > 0 {
				params.Transit.Set(a, sk, clampRatio(c.transitNum.At(a, sk), den))
			}
		}
	}
	for sk := 0; sk < skills; sk++ {
		if den := c.priorDen[sk]; den > 0 {
			params.Prior[sk] = clampRatio(c.priorNum[sk], den)
		}
	}
}

// finalize produces the committed parameter set: the fitted values,
// except where the expected-count mass is below the information
// threshold or the estimate is degenerate, in which case the original
// pre-training value is kept. This mirrors replacing NaN cells of the
// empirical estimate with the current matrix.
func (t *Trainer) finalize(c *counts, fitted, orig *matrix.Params) *matrix.Params {
	out := fitted.Clone()
	activities, skills := out.Shape()
	info := t.cfg.InformationThreshold

	for a := 0; a < activities; a++ {
		for sk := 0; sk < skills; sk++ {
			if c.guessDen.At(a, sk) < info {
				out.Guess.Set(a, sk, orig.Guess.At(a, sk))
			}
			if c.slipDen.At(a, sk) < info {
				out.Slip.Set(a, sk, orig.Slip.At(a, sk))
			}
			if c.transitDen.At(a, sk) < info {
				out.Transit.Set(a, sk, orig.Transit.At(a, sk))
			}

			if t.cfg.RemoveDegeneracy {
				g := out.Guess.At(a, sk)
				sl := out.Slip.At(a, sk)
				if g >= 0.5 || g+sl >= 1 {
					out.Guess.Set(a, sk, orig.Guess.At(a, sk))
				}
				if sl >= 0.5 || g+sl >= 1 {
					out.Slip.Set(a, sk, orig.Slip.At(a, sk))
				}
			}
		}
	}
	for sk := 0; sk < skills; sk++ {
		if c.priorDen[sk] < info {
			out.Prior[sk] = orig.Prior[sk]
		}
	}
	return out
}

// clampRatio divides num by den and clamps the quotient into [0, 1],
// absorbing floating-point drift in the accumulated masses.
func clampRatio(num, den float64) float64 {
	v := num / den
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
