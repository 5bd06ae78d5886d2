package tables

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/misenavi/shiftplanner/pkg/core/model"
)

// WriteSchedule writes the raw schedule table. Shortage rows keep their
// slot fields and note but leave every employee field empty.
func WriteSchedule(w io.Writer, rows []model.ScheduleRow) error {
	records := [][]string{{
		colDay, colSlot, colStartHour, colEndHour,
		colStaffID, colName, colRole, colIsNewbie,
		colHourlyWage, "slot_hours", "labor_cost", "note",
	}}

	for _, row := range rows {
		rec := []string{
			row.Day.String(),
			string(row.Block),
			strconv.Itoa(row.StartHour),
			strconv.Itoa(row.EndHour),
			row.StaffID,
			row.Name,
			row.Role,
			"",
			"",
			formatFloat(row.SlotHours),
			"",
			row.Note,
		}
		if !row.IsShortage() {
			rec[7] = flagString(row.Newcomer)
			rec[8] = formatFloat(row.HourlyWage)
			rec[10] = formatFloat(row.LaborCost)
		}
		records = append(records, rec)
	}

	return writeAll(w, records)
}

// WriteSummary writes the per-employee assignment summary.
func WriteSummary(w io.Writer, summary []model.StaffSummary) error {
	records := [][]string{{
		colStaffID, colName, "assigned_shifts", colMinShifts, colMaxShifts,
	}}
	for _, s := range summary {
		records = append(records, []string{
			s.StaffID,
			s.Name,
			strconv.Itoa(s.AssignedShifts),
			strconv.Itoa(s.MinShifts),
			strconv.Itoa(s.MaxShifts),
		})
	}
	return writeAll(w, records)
}

// WriteHumanView writes the condensed per-slot view.
func WriteHumanView(w io.Writer, view []model.HumanViewRow) error {
	records := [][]string{{colDay, colSlot, "time", "staff_list", "detail"}}
	for _, row := range view {
		records = append(records, []string{
			row.Day.String(),
			string(row.Block),
			row.Time,
			row.StaffList,
			row.Detail,
		})
	}
	return writeAll(w, records)
}

// SaveCSV writes one output table to a file via the given writer func.
func SaveCSV(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func flagString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
