package trainer

import (
	"math"

	"github.com/abhisek/adaptiq/internal/bkt"
	"github.com/abhisek/adaptiq/internal/matrix"
)

// counts accumulates the expected sufficient statistics of one EM
// iteration: numerators and denominators for each parameter cell.
type counts struct {
	guessNum, guessDen     *matrix.Matrix
	slipNum, slipDen       *matrix.Matrix
	transitNum, transitDen *matrix.Matrix
	priorNum, priorDen     []float64
	logLikelihood          float64
}

func newCounts(activities, skills int) *counts {
	return &counts{
		guessNum:   matrix.NewMatrix(activities, skills),
		guessDen:   matrix.NewMatrix(activities, skills),
		slipNum:    matrix.NewMatrix(activities, skills),
		slipDen:    matrix.NewMatrix(activities, skills),
		transitNum: matrix.NewMatrix(activities, skills),
		transitDen: matrix.NewMatrix(activities, skills),
		priorNum:   make([]float64, skills),
		priorDen:   make([]float64, skills),
	}
}

// add accumulates other into c cell-wise.
func (c *counts) add(other *counts) {
	addMatrix(c.guessNum, other.guessNum)
	addMatrix(c.guessDen, other.guessDen)
	addMatrix(c.slipNum, other.slipNum)
	addMatrix(c.slipDen, other.slipDen)
	addMatrix(c.transitNum, other.transitNum)
	addMatrix(c.transitDen, other.transitDen)
	for i := range c.priorNum {
		c.priorNum[i] += other.priorNum[i]
		c.priorDen[i] += other.priorDen[i]
	}
}

func addMatrix(dst, src *matrix.Matrix) {
	rows, cols := dst.Dims()
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			dst.Set(r, col, dst.At(r, col)+src.At(r, col))
		}
	}
}

// learnerCounts runs the E-step for one learner: an independent
// two-state forward-backward pass per skill over the subsequence of
// observations whose activity exercises that skill.
func (t *Trainer) learnerCounts(chain learnerChain, params *matrix.Params) *counts {
	activities, skills := params.Shape()
	c := newCounts(activities, skills)

	for sk := 0; sk < skills; sk++ {
		var sub []matrix.Observation
		for _, o := range chain.obs {
			if touches(t.catalog.ActivitySkills(o.Activity), sk) {
				sub = append(sub, o)
			}
		}
		if len(sub) == 0 {
			continue
		}
		t.skillChainCounts(c, sk, sub, params)
	}
	return c
}

func touches(skills []int, sk int) bool {
	for _, s := range skills {
		if s == sk {
			return true
		}
	}
	return false
}

// skillChainCounts runs scaled forward-backward over one skill chain.
// The latent state is binary mastery; emissions use the score as a
// soft correctness weight and transitions follow each practice
// opportunity with the activity's transit probability.
func (t *Trainer) skillChainCounts(c *counts, sk int, sub []matrix.Observation, params *matrix.Params) {
	n := len(sub)
	// Emission weights per step: e0 for non-mastery, e1 for mastery.
	e0 := make([]float64, n)
	e1 := make([]float64, n)
	for i, o := range sub {
		y := bkt.Clamp01(o.Score)
		g := params.Guess.At(o.Activity, sk)
		sl := params.Slip.At(o.Activity, sk)
		e0[i] = y*g + (1-y)*(1-g)
		e1[i] = y*(1-sl) + (1-y)*sl
	}

	// Scaled forward pass. scale[i] is the per-step normalizer; its
	// logs sum to the chain log-likelihood.
	a0 := make([]float64, n)
	a1 := make([]float64, n)
	scale := make([]float64, n)

	prior := params.Prior[sk]
	a0[0] = (1 - prior) * e0[0]
	a1[0] = prior * e1[0]
	scale[0] = a0[0] + a1[0]
	if scale[0] == 0 {
		a0[0], a1[0], scale[0] = 0.5, 0.5, bkt.Epsilon
	} else {
		a0[0] /= scale[0]
		a1[0] /= scale[0]
	}

	for i := 1; i < n; i++ {
		tr := params.Transit.At(sub[i-1].Activity, sk)
		p0 := a0[i-1] * (1 - tr)
		p1 := a0[i-1]*tr + a1[i-1]
		a0[i] = p0 * e0[i]
		a1[i] = p1 * e1[i]
		scale[i] = a0[i] + a1[i]
		if scale[i] == 0 {
			a0[i], a1[i], scale[i] = 0.5, 0.5, bkt.Epsilon
		} else {
			a0[i] /= scale[i]
			a1[i] /= scale[i]
		}
	}

	// Backward pass with the forward scales.
	b0 := make([]float64, n)
	b1 := make([]float64, n)
	b0[n-1], b1[n-1] = 1, 1
	for i := n - 2; i >= 0; i-- {
		tr := params.Transit.At(sub[i].Activity, sk)
		b0[i] = ((1-tr)*e0[i+1]*b0[i+1] + tr*e1[i+1]*b1[i+1]) / scale[i+1]
		b1[i] = e1[i+1] * b1[i+1] / scale[i+1]
	}

	// Accumulate expected counts.
	for i, o := range sub {
		y := bkt.Clamp01(o.Score)
		g0 := a0[i] * b0[i]
		g1 := a1[i] * b1[i]
		// Normalize against residual drift.
		if s := g0 + g1; s > 0 {
			g0 /= s
			g1 /= s
		}

		if i == 0 {
			c.priorNum[sk] += g1
			c.priorDen[sk]++
		}

		a := o.Activity
		c.guessNum.Set(a, sk, c.guessNum.At(a, sk)+g0*y)
		c.guessDen.Set(a, sk, c.guessDen.At(a, sk)+g0)
		c.slipNum.Set(a, sk, c.slipNum.At(a, sk)+g1*(1-y))
		c.slipDen.Set(a, sk, c.slipDen.At(a, sk)+g1)

		if i < n-1 {
			tr := params.Transit.At(a, sk)
			// xi(0->1): non-mastered at i, mastered at i+1.
			xi01 := a0[i] * tr * e1[i+1] * b1[i+1] / scale[i+1]
			c.transitNum.Set(a, sk, c.transitNum.At(a, sk)+xi01)
			c.transitDen.Set(a, sk, c.transitDen.At(a, sk)+g0)
		}
	}

	for _, s := range scale {
		c.logLikelihood += math.Log(s)
	}
}
