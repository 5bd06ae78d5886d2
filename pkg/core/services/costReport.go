package services

import "math"

// CostReport compares the run's total labor cost against a target-sales
// figure. The labor ratio is a health check, not a constraint: exceeding
// the configured maximum is a warning and the run still succeeds.
type CostReport struct {
	TotalLaborCost float64
	TargetSales    float64
	MaxLaborRatio  float64

	// LaborRatio is TotalLaborCost / TargetSales. Only meaningful when
	// RatioKnown is true.
	LaborRatio float64

	// RatioKnown is false when the target sales figure is zero, negative
	// or not finite, in which case no ratio can be computed.
	RatioKnown bool

	// OverBudget reports whether the computed ratio exceeds MaxLaborRatio.
	OverBudget bool
}

// BuildCostReport computes the labor ratio report for a finished run.
func BuildCostReport(totalLaborCost, targetSales, maxLaborRatio float64) CostReport {
	report := CostReport{
		TotalLaborCost: totalLaborCost,
		TargetSales:    targetSales,
		MaxLaborRatio:  maxLaborRatio,
	}

	if targetSales <= 0 || math.IsInf(targetSales, 0) || math.IsNaN(targetSales) {
		return report
	}

	report.LaborRatio = totalLaborCost / targetSales
	report.RatioKnown = true
	report.OverBudget = report.LaborRatio > maxLaborRatio
	return report
}
