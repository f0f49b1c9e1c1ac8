package fixture

// fixtureSchema defines the JSON schema for engine fixture files: the
// skill/activity catalog plus the initial BKT parameters.
var fixtureSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"skills": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"key":  map[string]any{"type": "string", "minLength": 1},
					"name": map[string]any{"type": "string"},
					"prerequisites": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"prior": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
				},
				"required":             []any{"key", "prior"},
				"additionalProperties": false,
			},
		},
		"activities": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"key":  map[string]any{"type": "string", "minLength": 1},
					"name": map[string]any{"type": "string"},
					"skills": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    map[string]any{"type": "string"},
					},
					"difficulty": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
					"guess":      map[string]any{"type": "number", "minimum": 0, "maximum": 1},
					"slip":       map[string]any{"type": "number", "minimum": 0, "maximum": 1},
					"transit":    map[string]any{"type": "number", "minimum": 0, "maximum": 1},
					"guess_by_skill": map[string]any{
						"type":                 "object",
						"additionalProperties": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
					},
					"slip_by_skill": map[string]any{
						"type":                 "object",
						"additionalProperties": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
					},
					"transit_by_skill": map[string]any{
						"type":                 "object",
						"additionalProperties": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
					},
				},
				"required":             []any{"key", "skills", "guess", "slip", "transit"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"skills", "activities"},
	"additionalProperties": false,
}
