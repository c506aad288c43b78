package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gardaplan/gardaplan/pkg/core/services"
)

// QuotasCmd creates the quotas command
func QuotasCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "quotas <hospital_id> <month>",
		Short: "Show the advisory fair-share quotas for a hospital and month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hospitalID, monthArg := args[0], args[1]
			app.Logger.Debug("quotas command",
				zap.String("hospital_id", hospitalID),
				zap.String("month", monthArg))

			cfg, month, err := app.hospitalEngineConfig(hospitalID, monthArg)
			if err != nil {
				return err
			}

			quotas, err := services.QuotaReport(app.Ctx, app.Database, cfg, app.Logger, month)
			if err != nil {
				return fmt.Errorf("failed to compute quotas: %w", err)
			}

			fmt.Printf("\nFair quotas for %s, %s\n\n", hospitalID, monthArg)
			fmt.Printf("%-22s %-7s %s\n", "Staff", "Total", "By type")
			fmt.Println("---------------------- ------- ----------------------------")

			for _, q := range quotas {
				typeIDs := make([]string, 0, len(q.Quota.ByType))
				for typeID := range q.Quota.ByType {
					typeIDs = append(typeIDs, typeID)
				}
				sort.Strings(typeIDs)

				byType := ""
				for i, typeID := range typeIDs {
					if i > 0 {
						byType += ", "
					}
					byType += fmt.Sprintf("%s: %d", typeID, q.Quota.ByType[typeID])
				}

				fmt.Printf("%-22s %-7d %s\n", q.Name, q.Quota.Total, byType)
			}
			fmt.Println()

			return nil
		},
	}
}
