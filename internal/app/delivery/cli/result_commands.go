package cli

import (
	"fmt"
	"os"
	"pathlab-client/internal/pkg/dto/requests"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newResultsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Enter and review test results (staff only)",
	}
	cmd.AddCommand(
		newResultsShowCommand(app),
		newResultsSaveCommand(app, false),
		newResultsSaveCommand(app, true),
		newResultsDeleteCommand(app),
		newResultsPDFCommand(app),
	)
	return cmd
}

func newResultsShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <booking-id>",
		Short: "Show the evaluated results of a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			bookingID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid booking id %q", args[0])
			}
			results, err := app.Results.FindResultsByBookingID(cmd.Context(), bookingID)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Booking #%d — %s (%s, %d)\n",
				results.BookingID, results.Patient.Name, results.Patient.Gender, results.Patient.Age)
			for _, group := range results.Tests {
				fmt.Fprintf(app.Out, "\n%s\n", group.TestName)
				if group.Interpretation != "" {
					fmt.Fprintf(app.Out, "Interpretation: %s\n", group.Interpretation)
				}
				rows := make([][]string, 0, len(group.Parameters))
				for _, parameter := range group.Parameters {
					rows = append(rows, []string{
						parameter.Name,
						parameter.Value,
						parameter.Unit,
						parameter.Status,
					})
				}
				renderTable(app.Out, []string{"Parameter", "Value", "Unit", "Status"}, rows)
			}
			return nil
		},
	}
}

// parseResultEntries turns "parameterID=value" flag values into result entries.
func parseResultEntries(specs []string) ([]requests.ResultEntry, error) {
	entries := make([]requests.ResultEntry, 0, len(specs))
	for _, spec := range specs {
		key, value, found := strings.Cut(spec, "=")
		if !found {
			return nil, fmt.Errorf("invalid result %q, want parameterID=value", spec)
		}
		parameterID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid parameter id in %q", spec)
		}
		entries = append(entries, requests.ResultEntry{ParameterID: parameterID, Value: value})
	}
	return entries, nil
}

func newResultsSaveCommand(app *App, update bool) *cobra.Command {
	request := &requests.SaveTestResultsRequest{}
	var entrySpecs []string

	use, short := "save <booking-id> <test-id>", "Save results for a booked test"
	if update {
		use, short = "update <booking-id> <test-id>", "Replace previously saved results"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			bookingID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid booking id %q", args[0])
			}
			testID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid test id %q", args[1])
			}
			entries, err := parseResultEntries(entrySpecs)
			if err != nil {
				return err
			}
			request.Results = entries

			save := app.Results.SaveResults
			if update {
				save = app.Results.UpdateResults
			}
			saved, err := save(cmd.Context(), bookingID, testID, request)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Saved %d result(s) for booking #%d test #%d\n",
				len(saved.SavedResults), saved.BookingID, saved.TestID)
			return nil
		},
	}
	cmd.Flags().Int64Var(&request.EnteredBy, "entered-by", 0, "entering staff account id")
	cmd.Flags().StringVar(&request.Interpretation, "interpretation", "", "overall interpretation")
	cmd.Flags().StringArrayVar(&entrySpecs, "result", nil, "result as parameterID=value (repeatable)")
	cmd.MarkFlagRequired("entered-by")
	cmd.MarkFlagRequired("result")
	return cmd
}

func newResultsDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <booking-id> <test-id>",
		Short: "Delete the results of a booked test",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			bookingID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid booking id %q", args[0])
			}
			testID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid test id %q", args[1])
			}
			if err := app.Results.DeleteResults(cmd.Context(), bookingID, testID); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Deleted results for booking #%d test #%d\n", bookingID, testID)
			return nil
		},
	}
}

func newResultsPDFCommand(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "pdf <booking-id>",
		Short: "Download the results report as a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			bookingID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid booking id %q", args[0])
			}
			document, err := app.Results.DownloadResultsPDF(cmd.Context(), bookingID)
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
	cmd.Flags().StringVar(&outPath, "out", "results.pdf", "output file")
	return cmd
}
