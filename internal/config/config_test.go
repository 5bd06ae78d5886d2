package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misenavi/shiftplanner/pkg/core/model"
)

func TestDefault(t *testing.T) {
	policy := Default()

	assert.Equal(t, 1, policy.DefaultMinVeterans)
	assert.Equal(t, 1, policy.DefaultMinKitchen)
	assert.Equal(t, 3, policy.DayPriority(model.Friday))
	assert.Equal(t, 3, policy.DayPriority(model.Saturday))
	assert.Equal(t, 2, policy.DayPriority(model.Sunday))
	assert.Equal(t, 1, policy.DayPriority(model.Wednesday))
	assert.Equal(t, 2, policy.BlockPriority(model.BlockDinner))
	assert.Equal(t, 1, policy.BlockPriority(model.BlockLunch))
}

func TestPolicy_RequiresEveningVeteran(t *testing.T) {
	policy := Default()

	assert.True(t, policy.RequiresEveningVeteran(model.Friday, 17))
	assert.True(t, policy.RequiresEveningVeteran(model.Saturday, 19))
	assert.False(t, policy.RequiresEveningVeteran(model.Friday, 16))
	assert.False(t, policy.RequiresEveningVeteran(model.Monday, 20))
}

func TestPolicy_ResolveDayToken(t *testing.T) {
	policy := Default()

	tests := []struct {
		token string
		want  model.Weekday
	}{
		{"月", model.Monday},
		{"土", model.Saturday},
		{"日", model.Sunday},
		{"Friday", model.Friday},
		{"tue", model.Tuesday},
	}
	for _, tt := range tests {
		got, err := policy.ResolveDayToken(tt.token)
		require.NoError(t, err, tt.token)
		assert.Equal(t, tt.want, got, tt.token)
	}

	_, err := policy.ResolveDayToken("blursday")
	assert.Error(t, err)
}

func TestPolicy_IsKitchen(t *testing.T) {
	policy := Default()

	assert.True(t, policy.IsKitchen(model.Employee{Role: "キッチン補助"}))
	assert.True(t, policy.IsKitchen(model.Employee{Role: "kitchen lead"}))
	assert.False(t, policy.IsKitchen(model.Employee{Role: "ホール"}))
}

func TestLoadFromPath_Overrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	content := `
defaultMinVeterans: 2
eveningStartHour: 18
peakDays: [Thursday]
midDays: []
maxLaborRatio: 0.3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	policy, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 2, policy.DefaultMinVeterans)
	assert.Equal(t, 3, policy.DayPriority(model.Thursday))
	assert.Equal(t, 1, policy.DayPriority(model.Friday))
	assert.False(t, policy.RequiresEveningVeteran(model.Friday, 17))
	assert.True(t, policy.RequiresEveningVeteran(model.Friday, 18))
	assert.InDelta(t, 0.3, policy.MaxLaborRatio, 1e-9)

	// Fields omitted from the file keep their defaults
	assert.Equal(t, 1, policy.DefaultMinKitchen)
	assert.Equal(t, "understaffed", policy.UnderstaffedNote)
}

func TestLoadFromPath_InvalidDayName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("peakDays: [Smonday]\n"), 0644))

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "peakDays")
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
