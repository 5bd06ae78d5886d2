package tables

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/misenavi/shiftplanner/internal/config"
	"github.com/misenavi/shiftplanner/pkg/core/model"
)

// Requirement column names.
const (
	colDay           = "day"
	colSlot          = "slot"
	colStartHour     = "start_hour"
	colEndHour       = "end_hour"
	colRequiredStaff = "required_staff"
	colMinVeterans   = "min_veterans"
	colMinKitchen    = "min_kitchen"
)

var requirementsRequired = []string{
	colDay, colSlot, colStartHour, colEndHour, colRequiredStaff,
}

// LoadRequirements reads the shift requirement table from a CSV file.
func LoadRequirements(path string, policy *config.Policy) ([]model.ShiftRequirement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open requirements %s: %w", path, err)
	}
	defer f.Close()

	reqs, err := ReadRequirements(f, policy)
	if err != nil {
		return nil, fmt.Errorf("requirements %s: %w", path, err)
	}
	return reqs, nil
}

// ReadRequirements parses the requirement table, fills quota defaults
// from the policy, annotates each row with its composite priority and
// returns the rows ordered descending by that priority. The sort is
// stable: rows of equal priority keep their input order, so identical
// inputs always allocate in the same sequence.
func ReadRequirements(r io.Reader, policy *config.Policy) ([]model.ShiftRequirement, error) {
	h, records, err := readTable(r, requirementsRequired)
	if err != nil {
		return nil, err
	}

	reqs := make([]model.ShiftRequirement, 0, len(records))
	for i, rec := range records {
		rowNum := i + 2

		day, err := policy.ResolveDayToken(h.field(rec, colDay))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid %s: %w", rowNum, colDay, err)
		}
		block, err := model.ParseBlock(h.field(rec, colSlot))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid %s: %w", rowNum, colSlot, err)
		}

		req := model.ShiftRequirement{Day: day, Block: block}

		req.StartHour, err = parseHour(h, rec, colStartHour, rowNum)
		if err != nil {
			return nil, err
		}
		req.EndHour, err = parseHour(h, rec, colEndHour, rowNum)
		if err != nil {
			return nil, err
		}
		if req.EndHour <= req.StartHour {
			return nil, fmt.Errorf("row %d: %s must be after %s (%d-%d)",
				rowNum, colEndHour, colStartHour, req.StartHour, req.EndHour)
		}

		req.RequiredStaff, err = parseCount(h, rec, colRequiredStaff, rowNum, -1)
		if err != nil {
			return nil, err
		}
		req.MinVeterans, err = parseCount(h, rec, colMinVeterans, rowNum, policy.DefaultMinVeterans)
		if err != nil {
			return nil, err
		}
		req.MinKitchen, err = parseCount(h, rec, colMinKitchen, rowNum, policy.DefaultMinKitchen)
		if err != nil {
			return nil, err
		}

		req.Priority = model.SlotPriority{
			Day:   policy.DayPriority(day),
			Block: policy.BlockPriority(block),
		}

		reqs = append(reqs, req)
	}

	sort.SliceStable(reqs, func(i, j int) bool {
		return reqs[i].Priority.After(reqs[j].Priority)
	})

	return reqs, nil
}

func parseHour(h header, record []string, col string, rowNum int) (int, error) {
	value := h.field(record, col)
	hour, err := strconv.Atoi(value)
	if err != nil || hour < 0 || hour > 24 {
		return 0, fmt.Errorf("row %d: invalid %s %q", rowNum, col, value)
	}
	return hour, nil
}

// parseCount parses a non-negative count column. A negative default
// means the column is required; otherwise an absent column or empty cell
// takes the default.
func parseCount(h header, record []string, col string, rowNum, def int) (int, error) {
	value := h.field(record, col)
	if value == "" {
		if def < 0 {
			return 0, fmt.Errorf("row %d: missing %s", rowNum, col)
		}
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("row %d: invalid %s %q", rowNum, col, value)
	}
	return n, nil
}
