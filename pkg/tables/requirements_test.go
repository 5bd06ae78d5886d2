package tables

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misenavi/shiftplanner/internal/config"
	"github.com/misenavi/shiftplanner/pkg/core/model"
)

func TestReadRequirements_QuotaDefaults(t *testing.T) {
	policy := config.Default()
	input := "day,slot,start_hour,end_hour,required_staff\n" +
		"月,LUNCH,11,15,2\n"

	reqs, err := ReadRequirements(strings.NewReader(input), policy)
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	assert.Equal(t, model.Monday, reqs[0].Day)
	assert.Equal(t, model.BlockLunch, reqs[0].Block)
	assert.Equal(t, 1, reqs[0].MinVeterans)
	assert.Equal(t, 1, reqs[0].MinKitchen)
}

func TestReadRequirements_QuotaOverrides(t *testing.T) {
	policy := config.Default()
	input := "day,slot,start_hour,end_hour,required_staff,min_veterans,min_kitchen\n" +
		"土,DINNER,17,23,4,2,0\n"

	reqs, err := ReadRequirements(strings.NewReader(input), policy)
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	assert.Equal(t, 2, reqs[0].MinVeterans)
	assert.Equal(t, 0, reqs[0].MinKitchen)
}

func TestReadRequirements_PriorityOrder(t *testing.T) {
	// Peak-day dinners come first, then peak lunches, Sunday, then the
	// base weekdays; dinner always outranks lunch within a day class.
	policy := config.Default()
	input := "day,slot,start_hour,end_hour,required_staff\n" +
		"月,LUNCH,11,15,1\n" +
		"日,DINNER,17,22,1\n" +
		"金,LUNCH,11,15,1\n" +
		"土,DINNER,18,23,1\n" +
		"金,DINNER,17,22,1\n"

	reqs, err := ReadRequirements(strings.NewReader(input), policy)
	require.NoError(t, err)
	require.Len(t, reqs, 5)

	type slot struct {
		day   model.Weekday
		block model.Block
	}
	got := make([]slot, len(reqs))
	for i, r := range reqs {
		got[i] = slot{r.Day, r.Block}
	}

	assert.Equal(t, []slot{
		{model.Saturday, model.BlockDinner},
		{model.Friday, model.BlockDinner},
		{model.Friday, model.BlockLunch},
		{model.Sunday, model.BlockDinner},
		{model.Monday, model.BlockLunch},
	}, got)
}

func TestReadRequirements_StableTieOrder(t *testing.T) {
	// Equal-priority rows keep their input order
	policy := config.Default()
	input := "day,slot,start_hour,end_hour,required_staff\n" +
		"金,DINNER,19,23,1\n" +
		"土,DINNER,17,19,1\n" +
		"金,DINNER,17,19,1\n"

	reqs, err := ReadRequirements(strings.NewReader(input), policy)
	require.NoError(t, err)
	require.Len(t, reqs, 3)

	assert.Equal(t, 19, reqs[0].StartHour)
	assert.Equal(t, model.Saturday, reqs[1].Day)
	assert.Equal(t, model.Friday, reqs[2].Day)
	assert.Equal(t, 17, reqs[2].StartHour)
}

func TestReadRequirements_Errors(t *testing.T) {
	policy := config.Default()
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "missing required column",
			input:   "day,slot,start_hour,end_hour\n月,LUNCH,11,15\n",
			wantErr: "missing required columns: required_staff",
		},
		{
			name:    "end before start",
			input:   "day,slot,start_hour,end_hour,required_staff\n月,LUNCH,15,11,2\n",
			wantErr: "end_hour must be after start_hour",
		},
		{
			name:    "unknown block",
			input:   "day,slot,start_hour,end_hour,required_staff\n月,BRUNCH,10,14,2\n",
			wantErr: "unknown time block",
		},
		{
			name:    "negative headcount",
			input:   "day,slot,start_hour,end_hour,required_staff\n月,LUNCH,11,15,-1\n",
			wantErr: "invalid required_staff",
		},
		{
			name:    "negative quota",
			input:   "day,slot,start_hour,end_hour,required_staff,min_veterans\n月,LUNCH,11,15,2,-1\n",
			wantErr: "invalid min_veterans",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRequirements(strings.NewReader(tt.input), policy)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
