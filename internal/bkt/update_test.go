package bkt

import (
	"math"
	"testing"
)

const tol = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

func TestUpdate_CorrectResponse(t *testing.T) {
	// prior 0.1, guess 0.2, slip 0.3, full credit:
	// posterior = 0.1*0.7 / (0.1*0.7 + 0.9*0.2) = 0.07/0.25 = 0.28
	// after transit 0.1: 0.28 + 0.72*0.1 = 0.352
	got := Update(0.1, 1.0, 0.2, 0.3, 0.1)
	if !almostEqual(got, 0.352) {
		t.Errorf("Update = %v, want 0.352", got)
	}
}

func TestUpdate_IncorrectResponse(t *testing.T) {
	// posterior = 0.1*0.3 / (0.1*0.3 + 0.9*0.8) = 0.03/0.75 = 0.04
	// after transit 0.1: 0.04 + 0.96*0.1 = 0.136
	got := Update(0.1, 0.0, 0.2, 0.3, 0.1)
	if !almostEqual(got, 0.136) {
		t.Errorf("Update = %v, want 0.136", got)
	}
}

func TestUpdate_PartialCreditBlends(t *testing.T) {
	full := Update(0.1, 1.0, 0.2, 0.3, 0.1)
	none := Update(0.1, 0.0, 0.2, 0.3, 0.1)
	half := Update(0.1, 0.5, 0.2, 0.3, 0.1)

	// The posteriors blend linearly before the transit step, and the
	// transit step is affine, so the half-credit result is the midpoint.
	want := (full + none) / 2
	if !almostEqual(half, want) {
		t.Errorf("Update(score=0.5) = %v, want midpoint %v", half, want)
	}
	if half <= none || half >= full {
		t.Errorf("half-credit update %v not strictly between %v and %v", half, none, full)
	}
}

func TestUpdate_ScoreClamped(t *testing.T) {
	if got, want := Update(0.1, 1.7, 0.2, 0.3, 0.1), Update(0.1, 1.0, 0.2, 0.3, 0.1); got != want {
		t.Errorf("Update(score=1.7) = %v, want same as score=1 (%v)", got, want)
	}
	if got, want := Update(0.1, -0.4, 0.2, 0.3, 0.1), Update(0.1, 0.0, 0.2, 0.3, 0.1); got != want {
		t.Errorf("Update(score=-0.4) = %v, want same as score=0 (%v)", got, want)
	}
}

func TestUpdate_StaysInUnitInterval(t *testing.T) {
	cases := []struct {
		p, score, guess, slip, transit float64
	}{
		{0, 1, 0, 0, 0},
		{1, 0, 0, 0, 1},
		{0.5, 1, 1, 1, 1},
		{1, 1, 0, 1, 0},
		{0.001, 0, 0.999, 0.999, 0.999},
	}
	for _, c := range cases {
		got := Update(c.p, c.score, c.guess, c.slip, c.transit)
		if got < 0 || got > 1 {
			t.Errorf("Update(%v, %v, %v, %v, %v) = %v, outside [0, 1]",
				c.p, c.score, c.guess, c.slip, c.transit, got)
		}
	}
}

func TestUpdate_NoTransitFixedPoints(t *testing.T) {
	// Certain mastery stays certain when nothing can be learned.
	if got := Update(1, 1, 0.2, 0.3, 0); got != 1 {
		t.Errorf("Update(p=1) = %v, want 1", got)
	}
	if got := Update(0, 0, 0.2, 0.3, 0); got != 0 {
		t.Errorf("Update(p=0) = %v, want 0", got)
	}
}

func TestUpdate_TransitFloor(t *testing.T) {
	// Every practice opportunity is a chance to learn, so even a run
	// of fully incorrect answers never drops mastery below the transit
	// probability.
	p := 0.9
	for i := 0; i < 50; i++ {
		p = Update(p, 0, 0.2, 0.3, 0.1)
		if p < 0.1 {
			t.Fatalf("step %d: mastery %v dropped below transit 0.1", i, p)
		}
	}
}

func TestPosterior_ZeroDenominator(t *testing.T) {
	// p=0 with guess=0 makes a correct answer impossible under the
	// model; the evidence is ignored and p passes through.
	if got := PosteriorCorrect(0, 0, 0.3); got != 0 {
		t.Errorf("PosteriorCorrect = %v, want 0", got)
	}
	// p=1 with guess=1 makes an incorrect answer impossible.
	if got := PosteriorIncorrect(1, 1, 0); got != 1 {
		t.Errorf("PosteriorIncorrect = %v, want 1", got)
	}
}

func TestOdds(t *testing.T) {
	if got := Odds(0.5); !almostEqual(got, 1) {
		t.Errorf("Odds(0.5) = %v, want 1", got)
	}
	if got := Odds(0.2); !almostEqual(got, 0.25) {
		t.Errorf("Odds(0.2) = %v, want 0.25", got)
	}
	// Degenerate inputs stay finite and positive.
	for _, p := range []float64{0, 1, -0.5, 2} {
		got := Odds(p)
		if math.IsInf(got, 0) || math.IsNaN(got) || got <= 0 {
			t.Errorf("Odds(%v) = %v, want finite positive", p, got)
		}
	}
}

func TestRelevance(t *testing.T) {
	// Lower guess and slip means the activity is stronger evidence.
	weak := Relevance(0.4, 0.4)
	strong := Relevance(0.1, 0.1)
	if strong <= weak {
		t.Errorf("Relevance(0.1, 0.1) = %v not greater than Relevance(0.4, 0.4) = %v", strong, weak)
	}
	// Coin-flip parameters carry no evidence.
	if got := Relevance(0.5, 0.5); !almostEqual(got, 0) {
		t.Errorf("Relevance(0.5, 0.5) = %v, want 0", got)
	}
	if got := Relevance(0, 0); math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("Relevance(0, 0) = %v, want finite", got)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.3, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{1.7, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
