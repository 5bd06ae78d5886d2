package model

import (
	"fmt"
	"strings"
)

// Weekday is a canonical weekday, Monday-first to match the display
// ordering of the human-readable schedule view.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// ParseWeekday resolves an English weekday name or three-letter
// abbreviation, case-insensitive. Locale-specific tokens (e.g. Japanese
// day kanji) are resolved by the policy token table before falling back
// to this parser.
func ParseWeekday(token string) (Weekday, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	for i, name := range weekdayNames {
		lower := strings.ToLower(name)
		if t == lower || t == lower[:3] {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", token)
}

// Block is the time-block classification of a shift slot.
type Block string

const (
	BlockLunch  Block = "LUNCH"
	BlockDinner Block = "DINNER"
)

// ParseBlock resolves a block label, case-insensitive.
func ParseBlock(token string) (Block, error) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case string(BlockLunch):
		return BlockLunch, nil
	case string(BlockDinner):
		return BlockDinner, nil
	}
	return "", fmt.Errorf("unknown time block %q", token)
}

// Employee is one roster row. Loaded once at startup and treated as
// immutable for the rest of the run; the running assigned-count lives in
// the schedule engine, not here.
type Employee struct {
	ID            string `validate:"required"`
	Name          string `validate:"required"`
	Role          string
	Newcomer      bool
	AvailableDays []Weekday
	CanLunch      bool
	CanDinner     bool
	HourlyWage    float64 `validate:"gt=0"`
	MinShifts     int     `validate:"gte=0,ltefield=MaxShifts"`
	MaxShifts     int     `validate:"gte=0"`
}

// AvailableOn reports whether day is in the employee's availability set.
func (e Employee) AvailableOn(day Weekday) bool {
	for _, d := range e.AvailableDays {
		if d == day {
			return true
		}
	}
	return false
}

// CanWork reports whether the employee can cover the given time block.
func (e Employee) CanWork(block Block) bool {
	switch block {
	case BlockLunch:
		return e.CanLunch
	case BlockDinner:
		return e.CanDinner
	}
	return false
}

// IsKitchen reports whether the employee's role label marks them as
// kitchen staff, given the configured role keywords.
func (e Employee) IsKitchen(keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(e.Role, kw) {
			return true
		}
	}
	return false
}

// SlotPriority is the composite sort key for requirement rows: day
// priority class first, block priority second. Higher sorts earlier.
type SlotPriority struct {
	Day   int
	Block int
}

// After reports whether p outranks q.
func (p SlotPriority) After(q SlotPriority) bool {
	if p.Day != q.Day {
		return p.Day > q.Day
	}
	return p.Block > q.Block
}

// ShiftRequirement is one slot that needs staffing.
type ShiftRequirement struct {
	Day           Weekday
	Block         Block
	StartHour     int
	EndHour       int
	RequiredStaff int
	MinVeterans   int
	MinKitchen    int

	// Priority is derived by the requirement loader from the policy's
	// weekday priority table.
	Priority SlotPriority
}

// Hours returns the slot duration in hours.
func (r ShiftRequirement) Hours() float64 {
	return float64(r.EndHour - r.StartHour)
}

// ScheduleRow is one row of the raw schedule output: either one
// (slot, employee) assignment with its labor cost, or a shortage row with
// empty employee fields.
type ScheduleRow struct {
	Day        Weekday
	Block      Block
	StartHour  int
	EndHour    int
	StaffID    string
	Name       string
	Role       string
	Newcomer   bool
	HourlyWage float64
	SlotHours  float64
	LaborCost  float64
	Note       string
}

// IsShortage reports whether this row records an unfilled seat rather
// than an assignment.
func (r ScheduleRow) IsShortage() bool {
	return r.StaffID == ""
}

// StaffSummary is the per-employee rollup emitted after a run.
type StaffSummary struct {
	StaffID        string
	Name           string
	AssignedShifts int
	MinShifts      int
	MaxShifts      int
}

// HumanViewRow is one slot of the condensed human-readable view.
type HumanViewRow struct {
	Day       Weekday
	Block     Block
	Time      string
	StaffList string
	Detail    string
}
