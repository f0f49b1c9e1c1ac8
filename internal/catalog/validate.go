package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// validate performs all structural checks on the catalog. It returns a
// combined error describing every problem found, or nil if valid.
func (c *Catalog) validate() error {
	var errs []string

	keySet := make(map[string]bool, len(c.skills))
	for _, s := range c.skills {
		if s.Key == "" {
			errs = append(errs, fmt.Sprintf("skill %d has empty key", s.ID))
		}
		if keySet[s.Key] {
			errs = append(errs, fmt.Sprintf("duplicate skill key: %q", s.Key))
		}
		keySet[s.Key] = true
	}

	// Dangling prerequisite references.
	for _, s := range c.skills {
		for _, pre := range s.Prerequisites {
			if pre < 0 || pre >= len(c.skills) {
				errs = append(errs, fmt.Sprintf("skill %q references nonexistent prerequisite %d", s.Key, pre))
			}
			if pre == s.ID {
				errs = append(errs, fmt.Sprintf("skill %q lists itself as prerequisite", s.Key))
			}
		}
	}

	actKeySet := make(map[string]bool, len(c.activities))
	for _, a := range c.activities {
		if a.Key == "" {
			errs = append(errs, fmt.Sprintf("activity %d has empty key", a.ID))
		}
		if actKeySet[a.Key] {
			errs = append(errs, fmt.Sprintf("duplicate activity key: %q", a.Key))
		}
		actKeySet[a.Key] = true

		if len(a.Skills) == 0 {
			errs = append(errs, fmt.Sprintf("activity %q exercises no skills", a.Key))
		}
		for _, sk := range a.Skills {
			if sk < 0 || sk >= len(c.skills) {
				errs = append(errs, fmt.Sprintf("activity %q references nonexistent skill %d", a.Key, sk))
			}
		}
		if a.Difficulty < 0 || a.Difficulty > 1 {
			errs = append(errs, fmt.Sprintf("activity %q difficulty %g outside [0, 1]", a.Key, a.Difficulty))
		}
	}

	// Cycle check via Kahn's algorithm. Skip if references are broken,
	// the dangling errors above already cover those.
	if ok := referencesValid(c.skills); ok {
		if cycle := findCycle(c.skills); len(cycle) > 0 {
			ids := make([]string, len(cycle))
			for i, id := range cycle {
				ids[i] = strconv.Itoa(id)
			}
			errs = append(errs, "prerequisite cycle involving skills: "+strings.Join(ids, ", "))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func referencesValid(skills []Skill) bool {
	for _, s := range skills {
		for _, pre := range s.Prerequisites {
			if pre < 0 || pre >= len(skills) || pre == s.ID {
				return false
			}
		}
	}
	return true
}

// findCycle returns the skill ids left unvisited by Kahn's algorithm,
// i.e. the members of at least one prerequisite cycle.
func findCycle(skills []Skill) []int {
	inDegree := make([]int, len(skills))
	adj := make(map[int][]int)
	for _, s := range skills {
		inDegree[s.ID] = len(s.Prerequisites)
		for _, pre := range s.Prerequisites {
			adj[pre] = append(adj[pre], s.ID)
		}
	}

	var queue []int
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range adj[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if visited == len(skills) {
		return nil
	}
	var cycle []int
	for id, deg := range inDegree {
		if deg > 0 {
			cycle = append(cycle, id)
		}
	}
	return cycle
}
