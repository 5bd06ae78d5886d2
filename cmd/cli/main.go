package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/misenavi/shiftplanner/cmd/cli/commands"
	"github.com/misenavi/shiftplanner/internal/config"
	"github.com/misenavi/shiftplanner/pkg/utils/logging"
)

var (
	configPath string
	verbose    bool
	app        = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shiftplanner",
		Short: "Shiftplanner - allocate restaurant staff to weekly shift slots",
		Long: `A CLI tool that allocates a staff roster to a weekly shift requirement
table, honoring veteran and kitchen coverage quotas and per-employee shift
caps, and reports the resulting labor cost against a sales target.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(cmd.Name())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a scheduling policy YAML file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on the console")

	rootCmd.AddCommand(commands.ScheduleCmd(app))
	rootCmd.AddCommand(commands.ValidateInputsCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger and the scheduling policy
func initApp(commandName string) error {
	// Load .env if it exists, so SHIFTPLANNER_* variables can be kept
	// alongside the input files
	envPaths := []string{".env", "../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	var err error
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(commandName, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if configPath != "" {
		app.Policy, err = config.LoadFromPath(configPath)
	} else {
		app.Policy, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load scheduling policy: %w", err)
	}
	app.Logger.Debug("Scheduling policy loaded",
		zap.Int("default_min_veterans", app.Policy.DefaultMinVeterans),
		zap.Int("default_min_kitchen", app.Policy.DefaultMinKitchen))

	return nil
}
