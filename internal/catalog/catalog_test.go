package catalog

import (
	"slices"
	"strings"
	"testing"
)

// testCatalog: counting -> addition -> subtraction, with addition also
// gating multiplication. Four activities of mixed skill incidence.
func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(
		[]Skill{
			{Key: "counting", Name: "Counting"},
			{Key: "addition", Name: "Addition", Prerequisites: []int{0}},
			{Key: "subtraction", Name: "Subtraction", Prerequisites: []int{1}},
			{Key: "multiplication", Name: "Multiplication", Prerequisites: []int{1}},
		},
		[]Activity{
			{Key: "count-to-ten", Skills: []int{0}, Difficulty: 0.1},
			{Key: "add-single-digit", Skills: []int{0, 1}, Difficulty: 0.3},
			{Key: "sub-single-digit", Skills: []int{1, 2}, Difficulty: 0.5},
			{Key: "times-tables", Skills: []int{3}, Difficulty: 0.7},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestNew_AssignsDenseIDs(t *testing.T) {
	c := testCatalog(t)
	if c.NumSkills() != 4 {
		t.Errorf("NumSkills() = %d, want 4", c.NumSkills())
	}
	if c.NumActivities() != 4 {
		t.Errorf("NumActivities() = %d, want 4", c.NumActivities())
	}
	s, err := c.Skill(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID != 2 || s.Key != "subtraction" {
		t.Errorf("Skill(2) = {ID: %d, Key: %q}, want {2, subtraction}", s.ID, s.Key)
	}
	a, err := c.Activity(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID != 3 || a.Key != "times-tables" {
		t.Errorf("Activity(3) = {ID: %d, Key: %q}, want {3, times-tables}", a.ID, a.Key)
	}
}

func TestLookup_OutOfRange(t *testing.T) {
	c := testCatalog(t)
	if _, err := c.Skill(4); err == nil {
		t.Error("Skill(4): expected error, got nil")
	}
	if _, err := c.Skill(-1); err == nil {
		t.Error("Skill(-1): expected error, got nil")
	}
	if _, err := c.Activity(4); err == nil {
		t.Error("Activity(4): expected error, got nil")
	}
}

func TestActivitySkills(t *testing.T) {
	c := testCatalog(t)
	got := c.ActivitySkills(1)
	if !slices.Equal(got, []int{0, 1}) {
		t.Errorf("ActivitySkills(1) = %v, want [0 1]", got)
	}
	if c.ActivitySkills(99) != nil {
		t.Error("ActivitySkills(99) should be nil")
	}

	got[0] = 42
	if c.ActivitySkills(1)[0] != 0 {
		t.Error("mutating ActivitySkills result changed catalog")
	}
}

func TestDependents(t *testing.T) {
	c := testCatalog(t)
	if got := c.Dependents(1); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("Dependents(1) = %v, want [2 3]", got)
	}
	if got := c.Dependents(2); len(got) != 0 {
		t.Errorf("Dependents(2) = %v, want empty", got)
	}
}

func TestTopologicalOrder(t *testing.T) {
	c := testCatalog(t)
	order := c.TopologicalOrder()
	if len(order) != 4 {
		t.Fatalf("order length = %d, want 4", len(order))
	}
	pos := make(map[int]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, s := range []int{0, 1, 2, 3} {
		for _, pre := range c.Prerequisites(s) {
			if pos[pre] >= pos[s] {
				t.Errorf("skill %d appears before its prerequisite %d in %v", s, pre, order)
			}
		}
	}
	// Ties break on id, so the order is fully deterministic.
	if !slices.Equal(order, []int{0, 1, 2, 3}) {
		t.Errorf("order = %v, want [0 1 2 3]", order)
	}
}

func TestNew_InvalidCatalogs(t *testing.T) {
	validActivity := []Activity{{Key: "a", Skills: []int{0}, Difficulty: 0.5}}
	tests := []struct {
		name       string
		skills     []Skill
		activities []Activity
		wantSubstr string
	}{
		{
			name:       "empty skill key",
			skills:     []Skill{{Key: ""}},
			activities: validActivity,
			wantSubstr: "empty key",
		},
		{
			name:       "duplicate skill key",
			skills:     []Skill{{Key: "x"}, {Key: "x"}},
			activities: validActivity,
			wantSubstr: "duplicate skill key",
		},
		{
			name:       "dangling prerequisite",
			skills:     []Skill{{Key: "x", Prerequisites: []int{5}}},
			activities: validActivity,
			wantSubstr: "nonexistent prerequisite",
		},
		{
			name:       "self prerequisite",
			skills:     []Skill{{Key: "x", Prerequisites: []int{0}}},
			activities: validActivity,
			wantSubstr: "itself",
		},
		{
			name:       "activity with no skills",
			skills:     []Skill{{Key: "x"}},
			activities: []Activity{{Key: "a", Difficulty: 0.5}},
			wantSubstr: "exercises no skills",
		},
		{
			name:       "activity references nonexistent skill",
			skills:     []Skill{{Key: "x"}},
			activities: []Activity{{Key: "a", Skills: []int{3}, Difficulty: 0.5}},
			wantSubstr: "nonexistent skill",
		},
		{
			name:       "difficulty out of range",
			skills:     []Skill{{Key: "x"}},
			activities: []Activity{{Key: "a", Skills: []int{0}, Difficulty: 1.5}},
			wantSubstr: "difficulty",
		},
		{
			name: "prerequisite cycle",
			skills: []Skill{
				{Key: "x", Prerequisites: []int{1}},
				{Key: "y", Prerequisites: []int{0}},
			},
			activities: validActivity,
			wantSubstr: "cycle",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.skills, tt.activities)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSubstr) {
				t.Errorf("error %q does not mention %q", err, tt.wantSubstr)
			}
		})
	}
}

func TestNew_ReportsAllErrors(t *testing.T) {
	_, err := New(
		[]Skill{{Key: ""}, {Key: "x", Prerequisites: []int{9}}},
		[]Activity{{Key: "a", Difficulty: 2}},
	)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, want := range []string{"empty key", "nonexistent prerequisite", "exercises no skills", "difficulty"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("combined error missing %q: %q", want, err)
		}
	}
}
