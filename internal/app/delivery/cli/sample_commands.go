package cli

import (
	"fmt"
	"pathlab-client/internal/pkg/dto/requests"
	"strconv"

	"github.com/spf13/cobra"
)

func newSamplesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Track collected samples (staff only)",
	}
	cmd.AddCommand(
		newSamplesListCommand(app),
		newSamplesGetCommand(app),
		newSamplesCreateCommand(app),
		newSamplesUpdateCommand(app),
		newSamplesDeleteCommand(app),
	)
	return cmd
}

func newSamplesListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			samples, err := app.Samples.ListSamples(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(samples))
			for _, sample := range samples {
				rows = append(rows, []string{
					formatID(sample.ID),
					formatID(sample.BookingID),
					sample.TestName,
					sample.Status,
					sample.CollectedAt,
				})
			}
			renderTable(app.Out, []string{"ID", "Booking", "Test", "Status", "Collected"}, rows)
			return nil
		},
	}
}

func newSamplesGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <sample-id>",
		Short: "Show one sample",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			sampleID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid sample id %q", args[0])
			}
			sample, err := app.Samples.FindSampleByID(cmd.Context(), sampleID)
			if err != nil {
				return err
			}
			renderTable(app.Out,
				[]string{"ID", "Booking", "Test", "Status", "Collected", "Notes"},
				[][]string{{
					formatID(sample.ID),
					formatID(sample.BookingID),
					sample.TestName,
					sample.Status,
					sample.CollectedAt,
					sample.Notes,
				}})
			return nil
		},
	}
}

func newSamplesCreateCommand(app *App) *cobra.Command {
	request := &requests.CreateSampleRequest{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a sample for a booked test",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			sample, err := app.Samples.CreateSample(cmd.Context(), request)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Created sample #%d (%s)\n", sample.ID, sample.Status)
			return nil
		},
	}
	cmd.Flags().Int64Var(&request.BookingID, "booking", 0, "booking id")
	cmd.Flags().Int64Var(&request.TestID, "test", 0, "test id")
	cmd.Flags().Int64Var(&request.CollectedBy, "collected-by", 0, "collecting staff account id")
	cmd.Flags().StringVar(&request.Notes, "notes", "", "collection notes")
	cmd.MarkFlagRequired("booking")
	cmd.MarkFlagRequired("test")
	return cmd
}

func newSamplesUpdateCommand(app *App) *cobra.Command {
	request := &requests.UpdateSampleRequest{}

	cmd := &cobra.Command{
		Use:   "update <sample-id>",
		Short: "Update a sample's status or notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			sampleID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid sample id %q", args[0])
			}
			sample, err := app.Samples.UpdateSample(cmd.Context(), sampleID, request)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Updated sample #%d (%s)\n", sample.ID, sample.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&request.Status, "status", "", "sample status (collection_pending or collected)")
	cmd.Flags().Int64Var(&request.CollectedBy, "collected-by", 0, "collecting staff account id")
	cmd.Flags().StringVar(&request.Notes, "notes", "", "collection notes")
	return cmd
}

func newSamplesDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <sample-id>",
		Short: "Delete a sample",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			sampleID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid sample id %q", args[0])
			}
			if err := app.Samples.DeleteSample(cmd.Context(), sampleID); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Deleted sample #%d\n", sampleID)
			return nil
		},
	}
}
