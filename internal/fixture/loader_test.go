package fixture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validFixture = `{
  "skills": [
    {"key": "counting", "name": "Counting", "prior": 0.2},
    {"key": "addition", "name": "Addition", "prerequisites": ["counting"], "prior": 0.1}
  ],
  "activities": [
    {
      "key": "count-drill",
      "name": "Count Drill",
      "skills": ["counting"],
      "difficulty": 0.3,
      "guess": 0.25,
      "slip": 0.1,
      "transit": 0.15
    },
    {
      "key": "mixed-quiz",
      "skills": ["counting", "addition"],
      "difficulty": 0.6,
      "guess": 0.2,
      "slip": 0.2,
      "transit": 0.1,
      "guess_by_skill": {"addition": 0.05},
      "transit_by_skill": {"counting": 0.3}
    }
  ]
}`

func TestLoad_Valid(t *testing.T) {
	cat, params, err := Load([]byte(validFixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.NumSkills() != 2 || cat.NumActivities() != 2 {
		t.Errorf("catalog is %dx%d, want 2 skills, 2 activities", cat.NumSkills(), cat.NumActivities())
	}

	s, err := cat.Skill(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Key != "addition" || len(s.Prerequisites) != 1 || s.Prerequisites[0] != 0 {
		t.Errorf("Skill(1) = %+v, want addition with prerequisite [0]", s)
	}

	if params.Prior[0] != 0.2 || params.Prior[1] != 0.1 {
		t.Errorf("prior = %v, want [0.2 0.1]", params.Prior)
	}
	if err := params.Validate(); err != nil {
		t.Errorf("loaded params invalid: %v", err)
	}
}

func TestLoad_ScalarBroadcastAndOverrides(t *testing.T) {
	_, params, err := Load([]byte(validFixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Activity 1 exercises both skills. guess broadcasts 0.2 with a
	// per-skill override of 0.05 on addition.
	if got := params.Guess.At(1, 0); got != 0.2 {
		t.Errorf("guess(1, counting) = %v, want 0.2", got)
	}
	if got := params.Guess.At(1, 1); got != 0.05 {
		t.Errorf("guess(1, addition) = %v, want override 0.05", got)
	}
	if got := params.Transit.At(1, 0); got != 0.3 {
		t.Errorf("transit(1, counting) = %v, want override 0.3", got)
	}
	if got := params.Transit.At(1, 1); got != 0.1 {
		t.Errorf("transit(1, addition) = %v, want 0.1", got)
	}
}

func TestLoad_UntouchedCellsAreNeutral(t *testing.T) {
	_, params, err := Load([]byte(validFixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Activity 0 does not exercise addition, so its guess/slip cells
	// carry no evidence.
	if got := params.Guess.At(0, 1); got != 0.5 {
		t.Errorf("guess(0, addition) = %v, want neutral 0.5", got)
	}
	if got := params.Slip.At(0, 1); got != 0.5 {
		t.Errorf("slip(0, addition) = %v, want neutral 0.5", got)
	}
	if got := params.Transit.At(0, 1); got != 0 {
		t.Errorf("transit(0, addition) = %v, want 0", got)
	}
}

func TestLoad_SchemaRejections(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "missing skills",
			doc:  `{"activities": [{"key": "a", "skills": ["x"], "guess": 0.2, "slip": 0.1, "transit": 0.1}]}`,
		},
		{
			name: "missing prior",
			doc: `{"skills": [{"key": "x"}],
			       "activities": [{"key": "a", "skills": ["x"], "guess": 0.2, "slip": 0.1, "transit": 0.1}]}`,
		},
		{
			name: "guess above one",
			doc: `{"skills": [{"key": "x", "prior": 0.1}],
			       "activities": [{"key": "a", "skills": ["x"], "guess": 1.2, "slip": 0.1, "transit": 0.1}]}`,
		},
		{
			name: "activity without skills",
			doc: `{"skills": [{"key": "x", "prior": 0.1}],
			       "activities": [{"key": "a", "skills": [], "guess": 0.2, "slip": 0.1, "transit": 0.1}]}`,
		},
		{
			name: "unknown field",
			doc: `{"skills": [{"key": "x", "prior": 0.1, "bogus": true}],
			       "activities": [{"key": "a", "skills": ["x"], "guess": 0.2, "slip": 0.1, "transit": 0.1}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), "schema") {
				t.Errorf("error %q does not mention the schema", err)
			}
		})
	}
}

func TestLoad_SemanticRejections(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		wantSubstr string
	}{
		{
			name: "unknown prerequisite key",
			doc: `{"skills": [{"key": "x", "prior": 0.1, "prerequisites": ["ghost"]}],
			       "activities": [{"key": "a", "skills": ["x"], "guess": 0.2, "slip": 0.1, "transit": 0.1}]}`,
			wantSubstr: "unknown prerequisite",
		},
		{
			name: "unknown activity skill key",
			doc: `{"skills": [{"key": "x", "prior": 0.1}],
			       "activities": [{"key": "a", "skills": ["ghost"], "guess": 0.2, "slip": 0.1, "transit": 0.1}]}`,
			wantSubstr: "unknown skill",
		},
		{
			name: "duplicate skill key",
			doc: `{"skills": [{"key": "x", "prior": 0.1}, {"key": "x", "prior": 0.2}],
			       "activities": [{"key": "a", "skills": ["x"], "guess": 0.2, "slip": 0.1, "transit": 0.1}]}`,
			wantSubstr: "duplicate skill key",
		},
		{
			name: "prerequisite cycle",
			doc: `{"skills": [{"key": "x", "prior": 0.1, "prerequisites": ["y"]},
			                  {"key": "y", "prior": 0.1, "prerequisites": ["x"]}],
			       "activities": [{"key": "a", "skills": ["x"], "guess": 0.2, "slip": 0.1, "transit": 0.1}]}`,
			wantSubstr: "cycle",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSubstr) {
				t.Errorf("error %q does not mention %q", err, tt.wantSubstr)
			}
		})
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	_, _, err := Load([]byte(`{not json`))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(validFixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	cat, _, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.NumActivities() != 2 {
		t.Errorf("NumActivities = %d, want 2", cat.NumActivities())
	}

	if _, _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
