package engine

import (
	"math"
	"sort"
)

const (
	DefaultCost = 3
	RankReason  = "Ranked using energy and executive fit"
)

// RankTasks scores every task against the user's energy and sorts the result
// by score, highest first. Equal scores keep their input order.
//
//	score = energy_weight*(5 - |energy_cost - energy|) + executive_cost_weight*(5 - executive_cost)
//
// context_match_weight and preferred_tags are not part of the formula.
func (e *Engine) RankTasks(us UserState, tasks []Task) []RankedCandidate {
	ranked := make([]RankedCandidate, 0, len(tasks))
	for _, t := range tasks {
		ranked = append(ranked, RankedCandidate{
			Task:    t.Name,
			Project: t.Project,
			Score:   round2(e.Score(us, t)),
			Reason:  RankReason,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Score is the unrounded fit of a single task.
func (e *Engine) Score(us UserState, t Task) float64 {
	energyDiff := math.Abs(float64(costOrDefault(t.EnergyCost) - us.Energy))
	executive := float64(costOrDefault(t.ExecutiveCost))

	return e.weights.EnergyWeight*(5-energyDiff) +
		e.weights.ExecutiveCostWeight*(5-executive)
}

// costOrDefault treats a missing or zero cost as DefaultCost.
func costOrDefault(c *int) int {
	if c == nil || *c == 0 {
		return DefaultCost
	}
	return *c
}

// round2 rounds to two decimals, exact halves to even.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
