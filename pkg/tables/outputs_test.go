package tables

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misenavi/shiftplanner/pkg/core/model"
)

func TestWriteSchedule_AssignmentAndShortageRows(t *testing.T) {
	rows := []model.ScheduleRow{
		{
			Day: model.Friday, Block: model.BlockDinner, StartHour: 17, EndHour: 22,
			StaffID: "S1", Name: "Tanaka", Role: "kitchen", Newcomer: false,
			HourlyWage: 1200, SlotHours: 5, LaborCost: 6000,
		},
		{
			Day: model.Friday, Block: model.BlockDinner, StartHour: 17, EndHour: 22,
			SlotHours: 5, Note: "understaffed",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSchedule(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t,
		"day,slot,start_hour,end_hour,staff_id,name,role,is_newbie,hourly_wage,slot_hours,labor_cost,note",
		lines[0])
	assert.Equal(t, "Friday,DINNER,17,22,S1,Tanaka,kitchen,0,1200,5,6000,", lines[1])
	assert.Equal(t, "Friday,DINNER,17,22,,,,,,5,,understaffed", lines[2])
}

func TestWriteSummary(t *testing.T) {
	summary := []model.StaffSummary{
		{StaffID: "S1", Name: "Tanaka", AssignedShifts: 3, MinShifts: 2, MaxShifts: 5},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, summary))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "staff_id,name,assigned_shifts,min_shifts,max_shifts", lines[0])
	assert.Equal(t, "S1,Tanaka,3,2,5", lines[1])
}

func TestWriteHumanView(t *testing.T) {
	view := []model.HumanViewRow{
		{
			Day: model.Monday, Block: model.BlockLunch, Time: "11-15",
			StaffList: "Tanaka(kitchen,veteran) / Sato(hall,newcomer)",
			Detail:    "staff 2 / kitchen 1 / newcomers 1",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHumanView(&buf, view))

	out := buf.String()
	assert.Contains(t, out, "day,slot,time,staff_list,detail")
	// The staff list holds commas, so the CSV writer quotes it
	assert.Contains(t, out, `Monday,LUNCH,11-15,"Tanaka(kitchen,veteran) / Sato(hall,newcomer)",staff 2 / kitchen 1 / newcomers 1`)
}
