package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDashboardCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the staff dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			overview, err := app.Dashboard.Overview(cmd.Context())
			if err != nil {
				return err
			}

			stats := overview.Stats
			renderTable(app.Out,
				[]string{"Patients", "Bookings", "Tests done", "Pending reports", "Revenue", "Growth %"},
				[][]string{{
					formatID(stats.TotalPatients),
					formatID(stats.TotalBookings),
					formatID(stats.TestsCompleted),
					formatID(stats.PendingReports),
					formatAmount(stats.TotalRevenue),
					formatAmount(stats.MonthlyGrowth),
				}})

			fmt.Fprintln(app.Out, "\nBookings per month")
			monthRows := make([][]string, 0, len(overview.MonthlyBookings))
			for _, month := range overview.MonthlyBookings {
				monthRows = append(monthRows, []string{
					month.Month,
					formatID(month.Bookings),
					formatAmount(month.Revenue),
				})
			}
			renderTable(app.Out, []string{"Month", "Bookings", "Revenue"}, monthRows)

			fmt.Fprintln(app.Out, "\nTest distribution")
			distributionRows := make([][]string, 0, len(overview.TestDistribution))
			for _, entry := range overview.TestDistribution {
				distributionRows = append(distributionRows, []string{entry.Name, formatID(entry.Value)})
			}
			renderTable(app.Out, []string{"Test", "Count"}, distributionRows)

			fmt.Fprintln(app.Out, "\nRecent activity")
			activityRows := make([][]string, 0, len(overview.RecentActivity))
			for _, activity := range overview.RecentActivity {
				activityRows = append(activityRows, []string{
					activity.Time,
					activity.Type,
					activity.Message,
					activity.Status,
				})
			}
			renderTable(app.Out, []string{"Time", "Type", "Message", "Status"}, activityRows)
			return nil
		},
	}
}
