package cli

import (
	"fmt"
	"os"
	"pathlab-client/internal/pkg/dto/requests"
	"strconv"

	"github.com/spf13/cobra"
)

func newReportsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Generate and fetch finalized reports (staff only)",
	}
	cmd.AddCommand(
		newReportsListCommand(app),
		newReportsGetCommand(app),
		newReportsCreateCommand(app),
		newReportsDownloadCommand(app),
	)
	return cmd
}

func newReportsListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			reports, err := app.Reports.ListReports(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(reports))
			for _, report := range reports {
				rows = append(rows, []string{
					formatID(report.ID),
					formatID(report.BookingID),
					report.ReportFile,
					report.GeneratedAt,
				})
			}
			renderTable(app.Out, []string{"ID", "Booking", "File", "Generated"}, rows)
			return nil
		},
	}
}

func newReportsGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <report-id>",
		Short: "Show one report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			reportID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid report id %q", args[0])
			}
			report, err := app.Reports.FindReportByID(cmd.Context(), reportID)
			if err != nil {
				return err
			}
			renderTable(app.Out,
				[]string{"ID", "Booking", "File", "Generated by", "Generated"},
				[][]string{{
					formatID(report.ID),
					formatID(report.BookingID),
					report.ReportFile,
					formatID(report.GeneratedBy),
					report.GeneratedAt,
				}})
			return nil
		},
	}
}

func newReportsCreateCommand(app *App) *cobra.Command {
	request := &requests.CreateReportRequest{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Generate a report for a booking",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			report, err := app.Reports.CreateReport(cmd.Context(), request)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Created report #%d for booking #%d\n", report.ID, report.BookingID)
			return nil
		},
	}
	cmd.Flags().Int64Var(&request.BookingID, "booking", 0, "booking id")
	cmd.Flags().Int64Var(&request.GeneratedBy, "generated-by", 0, "generating staff account id")
	cmd.MarkFlagRequired("booking")
	return cmd
}

func newReportsDownloadCommand(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "download <report-id>",
		Short: "Download a report PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			reportID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid report id %q", args[0])
			}
			document, err := app.Reports.DownloadReport(cmd.Context(), reportID)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, document, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(app.Out, "Wrote %d bytes to %s\n", len(document), outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "report.pdf", "output file")
	return cmd
}
