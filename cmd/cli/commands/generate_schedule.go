package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gardaplan/gardaplan/pkg/core/services"
)

// GenerateScheduleCmd creates the generateSchedule command
func GenerateScheduleCmd(app *AppContext) *cobra.Command {
	var publish bool

	cmd := &cobra.Command{
		Use:   "generateSchedule <hospital_id> <month>",
		Short: "Generate the guard schedule for a hospital and month",
		Long: `Generate the guard schedule for a hospital and month (YYYY-MM).
Existing reservations are kept as-is; remaining slots are filled by the
assignment engine. Use --publish to persist the result.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hospitalID, monthArg := args[0], args[1]
			app.Logger.Debug("generateSchedule command",
				zap.String("hospital_id", hospitalID),
				zap.String("month", monthArg),
				zap.Bool("publish", publish))

			cfg, month, err := app.hospitalEngineConfig(hospitalID, monthArg)
			if err != nil {
				return err
			}

			result, err := services.GenerateSchedule(app.Ctx, app.Database, cfg, app.Logger, month)
			if err != nil {
				return fmt.Errorf("failed to generate schedule: %w", err)
			}

			fmt.Printf("\nSchedule for %s, %s\n\n", hospitalID, result.Month)
			fmt.Printf("%-12s %-10s %-22s %-22s %s\n", "Date", "Day", "Shift", "Assignee", "Status")
			fmt.Println("------------ ---------- ---------------------- ---------------------- ------------")

			dayNames := make(map[string]string, len(result.Days))
			for _, day := range result.Days {
				dayNames[day.Date] = day.DayName
			}

			for _, day := range result.Schedule {
				for _, shift := range day.Shifts {
					assignee := shift.AssigneeName
					if assignee == "" {
						assignee = "—"
					}
					status := shift.Status
					if shift.CarriedOver {
						status += " (existing)"
					}
					if shift.Emergency {
						status += " (emergency)"
					}
					fmt.Printf("%-12s %-10s %-22s %-22s %s\n", day.Date, dayNames[day.Date], shift.Type.Name, assignee, status)
				}
			}

			fmt.Println()
			if result.Report.IsValid {
				fmt.Println("✓ All shift slots are covered.")
			} else {
				fmt.Printf("✗ %d unfilled slot(s):\n", len(result.Report.Errors))
				for _, e := range result.Report.Errors {
					fmt.Printf("  - %s: %s\n", e.Date, e.ShiftName)
				}
			}
			fmt.Println()

			if !publish {
				fmt.Println("Preview only. Re-run with --publish to persist.")
				return nil
			}

			count, err := services.PublishSchedule(app.Ctx, app.Database, app.Logger, hospitalID, result.Schedule)
			if err != nil {
				return fmt.Errorf("failed to publish schedule: %w", err)
			}
			fmt.Printf("✓ Published %d shift record(s).\n", count)

			return nil
		},
	}

	cmd.Flags().BoolVar(&publish, "publish", false, "persist the generated schedule")

	return cmd
}
