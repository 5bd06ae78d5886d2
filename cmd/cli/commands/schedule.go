package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/misenavi/shiftplanner/pkg/core/model"
	"github.com/misenavi/shiftplanner/pkg/core/services"
	"github.com/misenavi/shiftplanner/pkg/tables"
)

// ScheduleCmd creates the schedule command: the full load, allocate,
// report, write pipeline.
func ScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Allocate staff to shift slots and write the schedule tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			staffPath, _ := cmd.Flags().GetString("staff")
			reqPath, _ := cmd.Flags().GetString("requirements")
			outSchedule, _ := cmd.Flags().GetString("out-schedule")
			outSummary, _ := cmd.Flags().GetString("out-summary")
			outHuman, _ := cmd.Flags().GetString("out-human")

			targetSales := app.Policy.TargetSales
			if cmd.Flags().Changed("target-sales") {
				targetSales, _ = cmd.Flags().GetFloat64("target-sales")
			}
			maxRatio := app.Policy.MaxLaborRatio
			if cmd.Flags().Changed("max-labor-ratio") {
				maxRatio, _ = cmd.Flags().GetFloat64("max-labor-ratio")
			}

			roster, err := tables.LoadRoster(staffPath, app.Policy)
			if err != nil {
				return err
			}
			requirements, err := tables.LoadRequirements(reqPath, app.Policy)
			if err != nil {
				return err
			}

			result := services.ScheduleShifts(roster, requirements, app.Policy, app.Logger)

			services.SortForDisplay(result.Rows, app.Policy)
			view := services.BuildHumanView(result.Rows, app.Policy)
			report := services.BuildCostReport(result.TotalLaborCost, targetSales, maxRatio)

			if err := tables.SaveCSV(outSchedule, func(w io.Writer) error {
				return tables.WriteSchedule(w, result.Rows)
			}); err != nil {
				return err
			}
			if err := tables.SaveCSV(outSummary, func(w io.Writer) error {
				return tables.WriteSummary(w, result.Summary)
			}); err != nil {
				return err
			}
			if err := tables.SaveCSV(outHuman, func(w io.Writer) error {
				return tables.WriteHumanView(w, view)
			}); err != nil {
				return err
			}

			printRunReport(result, report, outSchedule, outSummary, outHuman)

			if report.RatioKnown && report.OverBudget {
				app.Logger.Warn("Labor ratio exceeds the configured maximum",
					zap.Float64("labor_ratio", report.LaborRatio),
					zap.Float64("max_labor_ratio", report.MaxLaborRatio))
			}

			return nil
		},
	}

	cmd.Flags().String("staff", "", "Path to the staff roster CSV")
	cmd.Flags().String("requirements", "", "Path to the shift requirements CSV")
	cmd.Flags().String("out-schedule", "weekly_shift_schedule.csv", "Output path for the raw schedule")
	cmd.Flags().String("out-summary", "weekly_shift_summary.csv", "Output path for the per-employee summary")
	cmd.Flags().String("out-human", "weekly_shift_human.csv", "Output path for the human-readable view")
	cmd.Flags().Float64("target-sales", 0, "Target sales for the labor ratio (default from policy)")
	cmd.Flags().Float64("max-labor-ratio", 0, "Maximum acceptable labor ratio (default from policy)")
	cmd.MarkFlagRequired("staff")
	cmd.MarkFlagRequired("requirements")

	return cmd
}

func printRunReport(result *services.ScheduleResult, report services.CostReport, outSchedule, outSummary, outHuman string) {
	shortages := 0
	for _, row := range result.Rows {
		if row.IsShortage() {
			shortages++
		}
	}

	fmt.Printf("\n✓ Schedule run %s complete\n\n", result.RunID)
	fmt.Printf("Schedule:   %s\n", outSchedule)
	fmt.Printf("Summary:    %s\n", outSummary)
	fmt.Printf("Human view: %s\n\n", outHuman)

	fmt.Printf("Total labor cost: %.0f\n", report.TotalLaborCost)
	if report.RatioKnown {
		fmt.Printf("Labor ratio:      %.1f%% (max %.1f%%)\n",
			report.LaborRatio*100, report.MaxLaborRatio*100)
		if report.OverBudget {
			fmt.Printf("⚠ Labor ratio exceeds the maximum - review headcounts or wages\n")
		}
	} else {
		fmt.Printf("Labor ratio:      unavailable (no valid target sales)\n")
	}
	if shortages > 0 {
		fmt.Printf("⚠ %d slot(s) understaffed - see %s\n", shortages, outSchedule)
	}
	fmt.Println()

	printSummary(result.Summary)
}

func printSummary(summary []model.StaffSummary) {
	fmt.Printf("Assignments per employee:\n")
	for _, s := range summary {
		marker := ""
		if s.AssignedShifts < s.MinShifts {
			marker = "  (below minimum)"
		}
		fmt.Printf("  %-8s %-12s %d shifts (min %d, max %d)%s\n",
			s.StaffID, s.Name, s.AssignedShifts, s.MinShifts, s.MaxShifts, marker)
	}
	fmt.Println()
}
