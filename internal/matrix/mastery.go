package matrix

import (
	"slices"
	"sort"
)

// MasteryTable holds per-learner mastery rows, one probability per
// skill. Rows are created lazily from the prior on first contact, so
// learner ids need not be dense.
type MasteryTable struct {
	skills int
	prior  []float64
	rows   map[int][]float64
}

// NewMasteryTable creates an empty table seeded by the given prior.
func NewMasteryTable(prior []float64) *MasteryTable {
	return &MasteryTable{
		skills: len(prior),
		prior:  slices.Clone(prior),
		rows:   make(map[int][]float64),
	}
}

// SetPrior replaces the prior used to initialize future rows.
// Existing rows are untouched.
func (t *MasteryTable) SetPrior(prior []float64) {
	t.prior = slices.Clone(prior)
	t.skills = len(prior)
}

// Row returns a copy of the learner's mastery row, initializing it
// from the prior on first contact.
func (t *MasteryTable) Row(learnerID int) ([]float64, error) {
	if learnerID < 0 {
		return nil, &OutOfRangeError{Kind: "learner", ID: learnerID, Max: -1}
	}
	if r, ok := t.rows[learnerID]; ok {
		return slices.Clone(r), nil
	}
	r := slices.Clone(t.prior)
	t.rows[learnerID] = r
	return slices.Clone(r), nil
}

// SetEntry writes one mastery probability, enforcing [0, 1] at the
// store boundary.
func (t *MasteryTable) SetEntry(learnerID, skillID int, v float64) error {
	if learnerID < 0 {
		return &OutOfRangeError{Kind: "learner", ID: learnerID, Max: -1}
	}
	if skillID < 0 || skillID >= t.skills {
		return &OutOfRangeError{Kind: "skill", ID: skillID, Max: t.skills - 1}
	}
	if v < 0 || v > 1 {
		return &InvalidProbabilityError{Value: v}
	}
	if _, ok := t.rows[learnerID]; !ok {
		t.rows[learnerID] = slices.Clone(t.prior)
	}
	t.rows[learnerID][skillID] = v
	return nil
}

// SetRow replaces a learner's full mastery row.
func (t *MasteryTable) SetRow(learnerID int, row []float64) error {
	if learnerID < 0 {
		return &OutOfRangeError{Kind: "learner", ID: learnerID, Max: -1}
	}
	if len(row) != t.skills {
		return &OutOfRangeError{Kind: "skill", ID: len(row) - 1, Max: t.skills - 1}
	}
	for _, v := range row {
		if v < 0 || v > 1 {
			return &InvalidProbabilityError{Value: v}
		}
	}
	t.rows[learnerID] = slices.Clone(row)
	return nil
}

// Known reports whether the learner already has a row.
func (t *MasteryTable) Known(learnerID int) bool {
	_, ok := t.rows[learnerID]
	return ok
}

// Learners returns all learner ids with a row, in ascending order.
func (t *MasteryTable) Learners() []int {
	ids := make([]int, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
