package allocator

import (
	"sort"

	"github.com/misenavi/shiftplanner/internal/config"
	"github.com/misenavi/shiftplanner/pkg/core/model"
)

// Counts tracks how many slots each employee has been assigned so far in
// the current run. It is owned and mutated exclusively by the schedule
// engine; the allocator only reads it.
type Counts map[string]int

// Of returns the assigned count for an employee, zero if unseen.
func (c Counts) Of(id string) int {
	return c[id]
}

// rankByAssigned returns a copy of pool ordered ascending by current
// assigned count. The sort is stable so ties keep roster order, which
// yields a fair round-robin distribution across the run and makes the
// whole schedule deterministic for identical inputs.
func rankByAssigned(pool []model.Employee, counts Counts) []model.Employee {
	ranked := make([]model.Employee, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts.Of(ranked[i].ID) < counts.Of(ranked[j].ID)
	})
	return ranked
}

// selection accumulates the employees picked for a single slot, tracking
// the per-call used-id set so nobody is picked twice.
type selection struct {
	required int
	picked   []model.Employee
	used     map[string]bool
}

func newSelection(required int) *selection {
	return &selection{
		required: required,
		used:     make(map[string]bool),
	}
}

func (s *selection) full() bool {
	return len(s.picked) >= s.required
}

func (s *selection) veteranCount() int {
	n := 0
	for _, e := range s.picked {
		if !e.Newcomer {
			n++
		}
	}
	return n
}

func (s *selection) kitchenCount(policy *config.Policy) int {
	n := 0
	for _, e := range s.picked {
		if policy.IsKitchen(e) {
			n++
		}
	}
	return n
}

// takeUntil pulls employees from the ranked pool until the slot's
// headcount is reached, quotaMet reports true, or the pool runs out. A
// nil quotaMet bounds the pass by headcount alone. Already-used employees
// are skipped, never re-picked.
func (s *selection) takeUntil(pool []model.Employee, quotaMet func() bool) {
	for _, e := range pool {
		if s.full() {
			return
		}
		if quotaMet != nil && quotaMet() {
			return
		}
		if s.used[e.ID] {
			continue
		}
		s.picked = append(s.picked, e)
		s.used[e.ID] = true
	}
}
