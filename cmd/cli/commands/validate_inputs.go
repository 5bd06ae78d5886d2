package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/misenavi/shiftplanner/pkg/tables"
)

// ValidateInputsCmd creates the validate command: a pre-flight check that
// loads both input tables and reports data errors without scheduling.
func ValidateInputsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the roster and requirement tables without scheduling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			staffPath, _ := cmd.Flags().GetString("staff")
			reqPath, _ := cmd.Flags().GetString("requirements")

			roster, err := tables.LoadRoster(staffPath, app.Policy)
			if err != nil {
				return err
			}
			app.Logger.Info("Roster validated", zap.Int("employees", len(roster)))

			requirements, err := tables.LoadRequirements(reqPath, app.Policy)
			if err != nil {
				return err
			}
			app.Logger.Info("Requirements validated", zap.Int("slots", len(requirements)))

			fmt.Printf("\n✓ Inputs valid\n\n")
			fmt.Printf("Roster:       %d employees\n", len(roster))
			fmt.Printf("Requirements: %d slots\n\n", len(requirements))

			return nil
		},
	}

	cmd.Flags().String("staff", "", "Path to the staff roster CSV")
	cmd.Flags().String("requirements", "", "Path to the shift requirements CSV")
	cmd.MarkFlagRequired("staff")
	cmd.MarkFlagRequired("requirements")

	return cmd
}
