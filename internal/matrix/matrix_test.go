package matrix

import (
	"errors"
	"testing"
)

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float64{{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows, cols := m.Dims()
	if rows != 3 || cols != 2 {
		t.Errorf("got dims %dx%d, want 3x2", rows, cols)
	}
	if got := m.At(1, 1); got != 0.4 {
		t.Errorf("At(1,1) = %v, want 0.4", got)
	}
	if got := m.At(2, 0); got != 0.5 {
		t.Errorf("At(2,0) = %v, want 0.5", got)
	}
}

func TestFromRows_RaggedRows(t *testing.T) {
	_, err := FromRows([][]float64{{0.1, 0.2}, {0.3}})
	if err == nil {
		t.Fatal("expected error for ragged rows, got nil")
	}
}

func TestMatrix_AtPanicsOutOfRange(t *testing.T) {
	m := NewMatrix(2, 2)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range index")
		}
	}()
	m.At(2, 0)
}

func TestMatrix_SetProb(t *testing.T) {
	m := NewMatrix(1, 1)
	if err := m.SetProb(0, 0, 0.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.At(0, 0); got != 0.5 {
		t.Errorf("At(0,0) = %v, want 0.5", got)
	}

	err := m.SetProb(0, 0, 1.5)
	var pe *InvalidProbabilityError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want InvalidProbabilityError", err)
	}
	if pe.Value != 1.5 {
		t.Errorf("pe.Value = %v, want 1.5", pe.Value)
	}
	if got := m.At(0, 0); got != 0.5 {
		t.Errorf("rejected write changed entry to %v, want 0.5", got)
	}
}

func TestMatrix_RowIsCopy(t *testing.T) {
	m := NewMatrix(1, 2)
	m.Set(0, 0, 0.3)
	row := m.Row(0)
	row[0] = 0.9
	if got := m.At(0, 0); got != 0.3 {
		t.Errorf("mutating returned row changed matrix: got %v, want 0.3", got)
	}
}

func TestMatrix_Clone(t *testing.T) {
	m := NewMatrix(2, 2)
	m.Set(0, 1, 0.7)
	c := m.Clone()
	c.Set(0, 1, 0.2)
	if got := m.At(0, 1); got != 0.7 {
		t.Errorf("mutating clone changed original: got %v, want 0.7", got)
	}
}

func TestParams_Validate(t *testing.T) {
	p := NewParams(2, 3)
	if err := p.Validate(); err != nil {
		t.Fatalf("zero params should validate: %v", err)
	}

	p.Guess.Set(0, 0, 1.2)
	if err := p.Validate(); err == nil {
		t.Error("expected error for guess entry outside [0,1]")
	}
	p.Guess.Set(0, 0, 0.2)

	p.Prior = []float64{0.1, 0.2}
	if err := p.Validate(); err == nil {
		t.Error("expected error for prior length mismatch")
	}
}

func TestParams_RowAccessors(t *testing.T) {
	p := NewParams(2, 2)
	p.Guess.Set(1, 0, 0.25)

	row, err := p.GuessRow(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row[0] != 0.25 {
		t.Errorf("GuessRow(1)[0] = %v, want 0.25", row[0])
	}

	_, err = p.SlipRow(5)
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("got %v, want OutOfRangeError", err)
	}
	if oor.Kind != "activity" || oor.ID != 5 || oor.Max != 1 {
		t.Errorf("OutOfRangeError = %+v, want activity 5 max 1", oor)
	}
	if _, err := p.TransitRow(-1); err == nil {
		t.Error("expected error for negative activity id")
	}
}

func TestMasteryTable_LazyInit(t *testing.T) {
	tbl := NewMasteryTable([]float64{0.1, 0.4})
	if tbl.Known(7) {
		t.Error("Known(7) = true before first contact")
	}
	row, err := tbl.Row(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row[0] != 0.1 || row[1] != 0.4 {
		t.Errorf("initial row = %v, want [0.1 0.4]", row)
	}
	if !tbl.Known(7) {
		t.Error("Known(7) = false after Row")
	}
}

func TestMasteryTable_SetEntry(t *testing.T) {
	tbl := NewMasteryTable([]float64{0.1})
	if err := tbl.SetEntry(0, 0, 0.8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row, _ := tbl.Row(0)
	if row[0] != 0.8 {
		t.Errorf("row[0] = %v, want 0.8", row[0])
	}

	if err := tbl.SetEntry(0, 1, 0.5); err == nil {
		t.Error("expected error for skill id out of range")
	}
	if err := tbl.SetEntry(-1, 0, 0.5); err == nil {
		t.Error("expected error for negative learner id")
	}
	if err := tbl.SetEntry(0, 0, -0.1); err == nil {
		t.Error("expected error for probability below 0")
	}
}

func TestMasteryTable_SetPriorLeavesExistingRows(t *testing.T) {
	tbl := NewMasteryTable([]float64{0.1})
	if _, err := tbl.Row(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tbl.SetPrior([]float64{0.9})

	old, _ := tbl.Row(1)
	if old[0] != 0.1 {
		t.Errorf("existing row changed to %v, want 0.1", old[0])
	}
	fresh, _ := tbl.Row(2)
	if fresh[0] != 0.9 {
		t.Errorf("new row = %v, want 0.9", fresh[0])
	}
}

func TestMasteryTable_Learners(t *testing.T) {
	tbl := NewMasteryTable([]float64{0.1})
	for _, id := range []int{9, 2, 5} {
		if _, err := tbl.Row(id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	got := tbl.Learners()
	want := []int{2, 5, 9}
	if len(got) != len(want) {
		t.Fatalf("Learners() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Learners()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestScoreLog(t *testing.T) {
	log := NewScoreLog()
	if got := log.LastAttempted(3); got != -1 {
		t.Errorf("LastAttempted on empty log = %d, want -1", got)
	}

	log.Append(Observation{Learner: 3, Activity: 1, Score: 1})
	log.Append(Observation{Learner: 3, Activity: 4, Score: 0})
	log.Append(Observation{Learner: 8, Activity: 2, Score: 0.5})

	if got := log.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if got := log.LastAttempted(3); got != 4 {
		t.Errorf("LastAttempted(3) = %d, want 4", got)
	}
	if got := log.LastAttempted(8); got != 2 {
		t.Errorf("LastAttempted(8) = %d, want 2", got)
	}

	all := log.All()
	if all[1].Activity != 4 {
		t.Errorf("All()[1].Activity = %d, want 4", all[1].Activity)
	}
	all[0].Learner = 99
	if log.All()[0].Learner != 3 {
		t.Error("mutating All() result changed the log")
	}
}
