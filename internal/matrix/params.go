package matrix

import (
	"fmt"
	"slices"
)

// Params holds the BKT parameter matrices. Guess, Slip and Transit are
// activities x skills; Prior has one entry per skill.
type Params struct {
	Guess   *Matrix
	Slip    *Matrix
	Transit *Matrix
	Prior   []float64
}

// NewParams creates zero-filled parameter matrices for the given shape.
func NewParams(activities, skills int) *Params {
	return &Params{
		Guess:   NewMatrix(activities, skills),
		Slip:    NewMatrix(activities, skills),
		Transit: NewMatrix(activities, skills),
		Prior:   make([]float64, skills),
	}
}

// Validate checks shape agreement and the [0, 1] invariant.
func (p *Params) Validate() error {
	ga, gk := p.Guess.Dims()
	for name, m := range map[string]*Matrix{"slip": p.Slip, "transit": p.Transit} {
		a, k := m.Dims()
		if a != ga || k != gk {
			return fmt.Errorf("%s matrix is %dx%d, want %dx%d", name, a, k, ga, gk)
		}
	}
	if len(p.Prior) != gk {
		return fmt.Errorf("prior has %d entries, want %d", len(p.Prior), gk)
	}
	for name, m := range map[string]*Matrix{"guess": p.Guess, "slip": p.Slip, "transit": p.Transit} {
		if !m.InUnitInterval() {
			return fmt.Errorf("%s matrix has entries outside [0, 1]", name)
		}
	}
	for i, v := range p.Prior {
		if v < 0 || v > 1 {
			return fmt.Errorf("prior[%d] = %g outside [0, 1]", i, v)
		}
	}
	return nil
}

// Shape returns (activities, skills).
func (p *Params) Shape() (activities, skills int) {
	return p.Guess.Dims()
}

// Clone returns a deep copy of all matrices.
func (p *Params) Clone() *Params {
	return &Params{
		Guess:   p.Guess.Clone(),
		Slip:    p.Slip.Clone(),
		Transit: p.Transit.Clone(),
		Prior:   slices.Clone(p.Prior),
	}
}

// checkActivity validates an activity id against the dense range.
func (p *Params) checkActivity(id int) error {
	activities, _ := p.Guess.Dims()
	if id < 0 || id >= activities {
		return &OutOfRangeError{Kind: "activity", ID: id, Max: activities - 1}
	}
	return nil
}

// GuessRow returns the per-skill guess values for an activity.
func (p *Params) GuessRow(activityID int) ([]float64, error) {
	if err := p.checkActivity(activityID); err != nil {
		return nil, err
	}
	return p.Guess.Row(activityID), nil
}

// SlipRow returns the per-skill slip values for an activity.
func (p *Params) SlipRow(activityID int) ([]float64, error) {
	if err := p.checkActivity(activityID); err != nil {
		return nil, err
	}
	return p.Slip.Row(activityID), nil
}

// TransitRow returns the per-skill transit values for an activity.
func (p *Params) TransitRow(activityID int) ([]float64, error) {
	if err := p.checkActivity(activityID); err != nil {
		return nil, err
	}
	return p.Transit.Row(activityID), nil
}
