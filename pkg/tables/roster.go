package tables

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/misenavi/shiftplanner/internal/config"
	"github.com/misenavi/shiftplanner/pkg/core/model"
)

// Roster column names.
const (
	colStaffID       = "staff_id"
	colName          = "name"
	colRole          = "role"
	colIsNewbie      = "is_newbie"
	colHourlyWage    = "hourly_wage"
	colMinShifts     = "min_shifts"
	colMaxShifts     = "max_shifts"
	colAvailableDays = "available_days"
	colCanLunch      = "can_lunch"
	colCanDinner     = "can_dinner"
)

var rosterRequired = []string{
	colStaffID, colName, colRole, colHourlyWage,
	colMinShifts, colMaxShifts, colAvailableDays,
}

var validate = validator.New()

// LoadRoster reads and normalizes the staff roster from a CSV file.
func LoadRoster(path string, policy *config.Policy) ([]model.Employee, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster %s: %w", path, err)
	}
	defer f.Close()

	roster, err := ReadRoster(f, policy)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return roster, nil
}

// ReadRoster parses the roster table. Availability strings are parsed
// into ordered weekday sets, boolean-like fields are normalized to strict
// 0/1, and every row is validated (positive wage, non-negative shift
// counts, min <= max) before any scheduling starts. A bad row fails the
// whole load; nothing is clamped or skipped silently.
func ReadRoster(r io.Reader, policy *config.Policy) ([]model.Employee, error) {
	h, records, err := readTable(r, rosterRequired)
	if err != nil {
		return nil, err
	}

	roster := make([]model.Employee, 0, len(records))
	for i, rec := range records {
		rowNum := i + 2 // 1-based, after the header

		emp := model.Employee{
			ID:   h.field(rec, colStaffID),
			Name: h.field(rec, colName),
			Role: h.field(rec, colRole),
		}

		emp.AvailableDays, err = parseAvailableDays(h.field(rec, colAvailableDays), policy)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		newbie, err := parseFlag(h, rec, colIsNewbie, false)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		emp.Newcomer = newbie

		emp.CanLunch, err = parseFlag(h, rec, colCanLunch, true)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		emp.CanDinner, err = parseFlag(h, rec, colCanDinner, true)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		emp.HourlyWage, err = strconv.ParseFloat(h.field(rec, colHourlyWage), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid %s %q", rowNum, colHourlyWage, h.field(rec, colHourlyWage))
		}
		emp.MinShifts, err = strconv.Atoi(h.field(rec, colMinShifts))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid %s %q", rowNum, colMinShifts, h.field(rec, colMinShifts))
		}
		emp.MaxShifts, err = strconv.Atoi(h.field(rec, colMaxShifts))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid %s %q", rowNum, colMaxShifts, h.field(rec, colMaxShifts))
		}

		if err := validate.Struct(emp); err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", rowNum, emp.ID, err)
		}

		roster = append(roster, emp)
	}

	return roster, nil
}

// parseAvailableDays parses a locale-specific availability string like
// "月,火, 金" or "Mon，Tue" into an ordered, deduplicated weekday set.
// Full-width commas and embedded spaces are tolerated and the Japanese
// 曜日 suffix is stripped before token resolution.
func parseAvailableDays(raw string, policy *config.Policy) ([]model.Weekday, error) {
	text := strings.ReplaceAll(raw, "曜日", "")
	text = strings.ReplaceAll(text, "，", ",")

	var days []model.Weekday
	seen := make(map[model.Weekday]bool)
	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		day, err := policy.ResolveDayToken(token)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", colAvailableDays, err)
		}
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	return days, nil
}

// parseFlag normalizes a boolean-like numeric column to strict 0/1. An
// absent column or empty cell takes the default; anything other than
// "0" or "1" is a data error.
func parseFlag(h header, record []string, col string, def bool) (bool, error) {
	value := h.field(record, col)
	switch value {
	case "":
		return def, nil
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("invalid %s %q, want 0 or 1", col, value)
}
