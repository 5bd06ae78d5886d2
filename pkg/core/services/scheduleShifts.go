package services

import (
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/misenavi/shiftplanner/internal/config"
	"github.com/misenavi/shiftplanner/pkg/core/allocator"
	"github.com/misenavi/shiftplanner/pkg/core/model"
)

// ScheduleResult contains everything one scheduling run produces.
type ScheduleResult struct {
	// RunID tags this run in logs and the run report.
	RunID string

	// Rows is the raw schedule: one row per (slot, employee) assignment
	// plus one shortage row per under-filled slot, in allocation order.
	Rows []model.ScheduleRow

	// Summary is the per-employee rollup of assigned vs configured counts.
	Summary []model.StaffSummary

	// TotalLaborCost is the sum of labor cost over all assignment rows.
	TotalLaborCost float64
}

// ScheduleShifts drives the full allocation: it walks the requirement
// rows in the priority order produced by the requirement loader, asks the
// slot allocator to fill each one, and commits assigned-count updates
// after each selection. It is the single owner and single writer of the
// assigned-count map; the run is one synchronous pass with no I/O.
//
// A slot filled below its required headcount gets exactly one shortage
// row appended after its assignment rows, so shortages are always
// explicit in the output. A slot requiring zero staff produces no rows.
func ScheduleShifts(
	roster []model.Employee,
	requirements []model.ShiftRequirement,
	policy *config.Policy,
	logger *zap.Logger,
) *ScheduleResult {
	runID := uuid.NewString()
	logger.Info("Starting schedule run",
		zap.String("run_id", runID),
		zap.Int("staff", len(roster)),
		zap.Int("slots", len(requirements)))

	counts := make(allocator.Counts, len(roster))
	for _, e := range roster {
		counts[e.ID] = 0
	}

	var rows []model.ScheduleRow

	for _, req := range requirements {
		selected := allocator.SelectStaff(roster, counts, req, policy)

		for _, e := range selected {
			counts[e.ID]++
			rows = append(rows, model.ScheduleRow{
				Day:        req.Day,
				Block:      req.Block,
				StartHour:  req.StartHour,
				EndHour:    req.EndHour,
				StaffID:    e.ID,
				Name:       e.Name,
				Role:       e.Role,
				Newcomer:   e.Newcomer,
				HourlyWage: e.HourlyWage,
				SlotHours:  req.Hours(),
				LaborCost:  e.HourlyWage * req.Hours(),
			})
		}

		if len(selected) < req.RequiredStaff {
			logger.Warn("Slot understaffed",
				zap.String("run_id", runID),
				zap.Stringer("day", req.Day),
				zap.String("block", string(req.Block)),
				zap.Int("start_hour", req.StartHour),
				zap.Int("required", req.RequiredStaff),
				zap.Int("filled", len(selected)))
			rows = append(rows, model.ScheduleRow{
				Day:       req.Day,
				Block:     req.Block,
				StartHour: req.StartHour,
				EndHour:   req.EndHour,
				SlotHours: req.Hours(),
				Note:      policy.UnderstaffedNote,
			})
		}
	}

	summary := make([]model.StaffSummary, 0, len(roster))
	total := 0.0
	for _, e := range roster {
		summary = append(summary, model.StaffSummary{
			StaffID:        e.ID,
			Name:           e.Name,
			AssignedShifts: counts[e.ID],
			MinShifts:      e.MinShifts,
			MaxShifts:      e.MaxShifts,
		})
	}
	for _, row := range rows {
		total += row.LaborCost
	}

	logger.Info("Schedule run complete",
		zap.String("run_id", runID),
		zap.Int("rows", len(rows)),
		zap.Float64("total_labor_cost", total))

	return &ScheduleResult{
		RunID:          runID,
		Rows:           rows,
		Summary:        summary,
		TotalLaborCost: total,
	}
}

// SortForDisplay reorders schedule rows for human consumption: weekday
// Monday-first, lunch before dinner, then start hour, end hour and staff
// id, with a slot's shortage row last. Allocation order is a priority
// order and is not meaningful to a reader. The sort is stable, keeping
// the output byte-identical across runs on identical input.
func SortForDisplay(rows []model.ScheduleRow, policy *config.Policy) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.Block != b.Block {
			return policy.BlockPriority(a.Block) < policy.BlockPriority(b.Block)
		}
		if a.StartHour != b.StartHour {
			return a.StartHour < b.StartHour
		}
		if a.EndHour != b.EndHour {
			return a.EndHour < b.EndHour
		}
		if a.IsShortage() != b.IsShortage() {
			return b.IsShortage()
		}
		return a.StaffID < b.StaffID
	})
}
