// Package fixture loads a catalog and initial parameter set from a
// JSON fixture file, the file-backed adapter for the engine's matrix
// store contract.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/matrix"
)

// neutralGuessSlip fills the guess/slip cells of skills an activity
// does not exercise: 0.5 carries no evidence either way, so the
// activity's relevance for those skills is zero.
const neutralGuessSlip = 0.5

type skillDoc struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	Prerequisites []string `json:"prerequisites"`
	Prior         float64  `json:"prior"`
}

type activityDoc struct {
	Key            string             `json:"key"`
	Name           string             `json:"name"`
	Skills         []string           `json:"skills"`
	Difficulty     float64            `json:"difficulty"`
	Guess          float64            `json:"guess"`
	Slip           float64            `json:"slip"`
	Transit        float64            `json:"transit"`
	GuessBySkill   map[string]float64 `json:"guess_by_skill"`
	SlipBySkill    map[string]float64 `json:"slip_by_skill"`
	TransitBySkill map[string]float64 `json:"transit_by_skill"`
}

type fixtureDoc struct {
	Skills     []skillDoc    `json:"skills"`
	Activities []activityDoc `json:"activities"`
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles the embedded fixture schema once.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(fixtureSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const schemaURL = "schema://fixture.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// LoadFile reads and parses a fixture file.
func LoadFile(path string) (*catalog.Catalog, *matrix.Params, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read fixture: %w", err)
	}
	return Load(raw)
}

// Load parses fixture JSON, validates it against the fixture schema,
// and builds the catalog and parameter matrices. Scalar guess/slip/
// transit values broadcast across the activity's skills; per-skill
// override maps refine individual cells.
func Load(raw []byte) (*catalog.Catalog, *matrix.Params, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, nil, fmt.Errorf("invalid fixture JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, nil, fmt.Errorf("fixture does not match schema: %w", err)
	}

	var doc fixtureDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("decode fixture: %w", err)
	}
	return build(&doc)
}

func build(doc *fixtureDoc) (*catalog.Catalog, *matrix.Params, error) {
	skillIdx := make(map[string]int, len(doc.Skills))
	for i, s := range doc.Skills {
		if _, ok := skillIdx[s.Key]; ok {
			return nil, nil, fmt.Errorf("duplicate skill key %q", s.Key)
		}
		skillIdx[s.Key] = i
	}

	skills := make([]catalog.Skill, len(doc.Skills))
	for i, s := range doc.Skills {
		prereqs := make([]int, 0, len(s.Prerequisites))
		for _, key := range s.Prerequisites {
			id, ok := skillIdx[key]
			if !ok {
				return nil, nil, fmt.Errorf("skill %q references unknown prerequisite %q", s.Key, key)
			}
			prereqs = append(prereqs, id)
		}
		skills[i] = catalog.Skill{Key: s.Key, Name: s.Name, Prerequisites: prereqs}
	}

	activities := make([]catalog.Activity, len(doc.Activities))
	for i, a := range doc.Activities {
		ids := make([]int, 0, len(a.Skills))
		for _, key := range a.Skills {
			id, ok := skillIdx[key]
			if !ok {
				return nil, nil, fmt.Errorf("activity %q references unknown skill %q", a.Key, key)
			}
			ids = append(ids, id)
		}
		activities[i] = catalog.Activity{Key: a.Key, Name: a.Name, Skills: ids, Difficulty: a.Difficulty}
	}

	cat, err := catalog.New(skills, activities)
	if err != nil {
		return nil, nil, err
	}

	params := matrix.NewParams(len(activities), len(skills))
	for sk, s := range doc.Skills {
		params.Prior[sk] = s.Prior
	}
	for a, doc := range doc.Activities {
		for sk := range skills {
			if !touchesSkill(activities[a].Skills, sk) {
				params.Guess.Set(a, sk, neutralGuessSlip)
				params.Slip.Set(a, sk, neutralGuessSlip)
				continue
			}
			key := skills[sk].Key
			params.Guess.Set(a, sk, override(doc.GuessBySkill, key, doc.Guess))
			params.Slip.Set(a, sk, override(doc.SlipBySkill, key, doc.Slip))
			params.Transit.Set(a, sk, override(doc.TransitBySkill, key, doc.Transit))
		}
	}

	if err := params.Validate(); err != nil {
		return nil, nil, err
	}
	return cat, params, nil
}

func touchesSkill(skills []int, sk int) bool {
	for _, s := range skills {
		if s == sk {
			return true
		}
	}
	return false
}

func override(m map[string]float64, key string, fallback float64) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}
