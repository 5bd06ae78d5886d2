package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCostReport_ComputesRatio(t *testing.T) {
	report := BuildCostReport(175000, 700000, 0.25)

	assert.True(t, report.RatioKnown)
	assert.InDelta(t, 0.25, report.LaborRatio, 1e-9)
	assert.False(t, report.OverBudget, "ratio equal to the maximum is not over budget")
}

func TestBuildCostReport_OverBudget(t *testing.T) {
	report := BuildCostReport(200000, 700000, 0.25)

	assert.True(t, report.RatioKnown)
	assert.True(t, report.OverBudget)
}

func TestBuildCostReport_RatioUnavailable(t *testing.T) {
	tests := []struct {
		name        string
		targetSales float64
	}{
		{"zero target", 0},
		{"negative target", -100},
		{"infinite target", math.Inf(1)},
		{"nan target", math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := BuildCostReport(8800, tt.targetSales, 0.25)
			assert.False(t, report.RatioKnown)
			assert.False(t, report.OverBudget)
		})
	}
}
