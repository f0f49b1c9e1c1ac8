// Package catalog describes the skill and activity structure the
// engine recommends over: which activities exercise which skills, and
// which skills gate which.
package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// Skill is a latent competency mastery is tracked over. ID is the
// dense 0-based index assigned at catalog construction.
type Skill struct {
	ID            int
	Key           string
	Name          string
	Prerequisites []int // skill ids that gate this skill
}

// Activity is a learnable/assessable unit. Each activity exercises one
// or more skills and carries a difficulty in [0, 1].
type Activity struct {
	ID         int
	Key        string
	Name       string
	Skills     []int // skill ids this activity exercises
	Difficulty float64
}

// Catalog holds the validated skill DAG and activity incidence with
// precomputed indices.
type Catalog struct {
	skills     []Skill
	activities []Activity
	dependents map[int][]int
	topoOrder  []int
}

// New builds and validates a catalog. Skill and activity ids are
// assigned from slice position.
func New(skills []Skill, activities []Activity) (*Catalog, error) {
	c := &Catalog{
		skills:     slices.Clone(skills),
		activities: slices.Clone(activities),
		dependents: make(map[int][]int),
	}
	for i := range c.skills {
		c.skills[i].ID = i
	}
	for i := range c.activities {
		c.activities[i].ID = i
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	for _, s := range c.skills {
		for _, pre := range s.Prerequisites {
			c.dependents[pre] = append(c.dependents[pre], s.ID)
		}
	}
	for _, deps := range c.dependents {
		sort.Ints(deps)
	}
	c.topoOrder = topoSort(c.skills)
	return c, nil
}

// NumSkills returns the number of skills.
func (c *Catalog) NumSkills() int { return len(c.skills) }

// NumActivities returns the number of activities.
func (c *Catalog) NumActivities() int { return len(c.activities) }

// Skill returns a skill by id.
func (c *Catalog) Skill(id int) (Skill, error) {
	if id < 0 || id >= len(c.skills) {
		return Skill{}, fmt.Errorf("skill id %d out of range [0, %d]", id, len(c.skills)-1)
	}
	return c.skills[id], nil
}

// Activity returns an activity by id.
func (c *Catalog) Activity(id int) (Activity, error) {
	if id < 0 || id >= len(c.activities) {
		return Activity{}, fmt.Errorf("activity id %d out of range [0, %d]", id, len(c.activities)-1)
	}
	return c.activities[id], nil
}

// ActivitySkills returns the skill ids an activity exercises.
func (c *Catalog) ActivitySkills(activityID int) []int {
	if activityID < 0 || activityID >= len(c.activities) {
		return nil
	}
	return slices.Clone(c.activities[activityID].Skills)
}

// Prerequisites returns the direct prerequisite skill ids for a skill.
func (c *Catalog) Prerequisites(skillID int) []int {
	if skillID < 0 || skillID >= len(c.skills) {
		return nil
	}
	return slices.Clone(c.skills[skillID].Prerequisites)
}

// Dependents returns the skill ids that directly depend on a skill.
func (c *Catalog) Dependents(skillID int) []int {
	return slices.Clone(c.dependents[skillID])
}

// TopologicalOrder returns skill ids in a valid topological order.
func (c *Catalog) TopologicalOrder() []int {
	return slices.Clone(c.topoOrder)
}

// topoSort runs Kahn's algorithm over the (already validated, acyclic)
// skill DAG, with sorted queues for deterministic ordering.
func topoSort(skills []Skill) []int {
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
	sort.Ints(queue)

	var order []int
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		next := slices.Clone(adj[id])
		sort.Ints(next)
		for _, dep := range next {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	return order
}
