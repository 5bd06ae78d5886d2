package allocator

import (
	"github.com/misenavi/shiftplanner/internal/config"
	"github.com/misenavi/shiftplanner/pkg/core/model"
)

// SelectStaff decides which employees fill one shift slot.
//
// It is a pure decision function: it reads the roster snapshot and the
// current assigned counts but never mutates them. The schedule engine
// commits count updates only after receiving the result, keeping a clean
// read/decide then commit separation.
//
// Selection order:
//  1. Veterans up to the slot's effective minimum-veteran quota. The
//     quota is raised to at least one for slots that fall under the
//     policy's evening veteran rule (Friday/Saturday evenings by default).
//  2. Kitchen staff up to the minimum-kitchen quota.
//  3. Remaining veterans, least-utilized first.
//  4. Newcomers, least-utilized first.
//
// Each pass stops as soon as the required headcount is reached, and no
// employee is picked twice for the same slot. The pools are not
// exclusive: a veteran kitchen hand satisfies both quotas at once.
//
// The returned list is never padded; if no qualifying candidate exists it
// is empty and the caller records the shortage.
func SelectStaff(
	roster []model.Employee,
	counts Counts,
	req model.ShiftRequirement,
	policy *config.Policy,
) []model.Employee {
	minVeterans := req.MinVeterans
	if policy.RequiresEveningVeteran(req.Day, req.StartHour) && minVeterans < 1 {
		minVeterans = 1
	}

	candidates := qualifyingCandidates(roster, counts, req)
	if len(candidates) == 0 {
		return nil
	}

	var veterans, newcomers, kitchens []model.Employee
	for _, e := range candidates {
		if e.Newcomer {
			newcomers = append(newcomers, e)
		} else {
			veterans = append(veterans, e)
		}
		if policy.IsKitchen(e) {
			kitchens = append(kitchens, e)
		}
	}

	veterans = rankByAssigned(veterans, counts)
	newcomers = rankByAssigned(newcomers, counts)
	kitchens = rankByAssigned(kitchens, counts)

	sel := newSelection(req.RequiredStaff)

	sel.takeUntil(veterans, func() bool { return sel.veteranCount() >= minVeterans })
	sel.takeUntil(kitchens, func() bool { return sel.kitchenCount(policy) >= req.MinKitchen })
	sel.takeUntil(veterans, nil)
	sel.takeUntil(newcomers, nil)

	return sel.picked
}

// qualifyingCandidates filters the roster to employees who are available
// on the slot's weekday, can cover its time block, and are still below
// their maximum shift cap. Roster order is preserved so that ties later
// break deterministically.
func qualifyingCandidates(roster []model.Employee, counts Counts, req model.ShiftRequirement) []model.Employee {
	var candidates []model.Employee
	for _, e := range roster {
		if !e.AvailableOn(req.Day) {
			continue
		}
		if !e.CanWork(req.Block) {
			continue
		}
		if counts.Of(e.ID) >= e.MaxShifts {
			continue
		}
		candidates = append(candidates, e)
	}
	return candidates
}
