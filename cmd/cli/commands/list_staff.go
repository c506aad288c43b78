package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gardaplan/gardaplan/pkg/core/services"
)

// ListStaffCmd creates the listStaff command
func ListStaffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listStaff <hospital_id>",
		Short: "List the roster for a hospital",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hospitalID := args[0]
			app.Logger.Debug("listStaff command", zap.String("hospital_id", hospitalID))

			staff, err := services.ListStaff(app.Ctx, app.Database, app.Logger, hospitalID)
			if err != nil {
				return fmt.Errorf("failed to list staff: %w", err)
			}

			if len(staff) == 0 {
				fmt.Printf("\nNo staff configured for %s.\n\n", hospitalID)
				return nil
			}

			fmt.Printf("\nStaff for %s (%d)\n\n", hospitalID, len(staff))
			fmt.Printf("%-10s %-22s %-10s %s\n", "ID", "Name", "Max/month", "Unavailable")
			fmt.Println("---------- ---------------------- ---------- ----------------------------")

			for _, s := range staff {
				maxShifts := "default"
				if s.MaxGuardsPerMonth > 0 {
					maxShifts = fmt.Sprintf("%d", s.MaxGuardsPerMonth)
				}
				unavailable := "—"
				if len(s.Unavailable) > 0 {
					unavailable = strings.Join(s.Unavailable, ", ")
				}
				fmt.Printf("%-10s %-22s %-10s %s\n", s.ID, s.Name, maxShifts, unavailable)
			}
			fmt.Println()

			return nil
		},
	}
}
