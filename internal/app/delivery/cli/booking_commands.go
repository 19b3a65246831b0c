package cli

import (
	"fmt"
	"pathlab-client/internal/pkg/dto/requests"
	"strconv"

	"github.com/spf13/cobra"
)

func newBookingsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Manage bookings (staff only)",
	}
	cmd.AddCommand(
		newBookingsListCommand(app),
		newBookingsGetCommand(app),
		newBookingsTestsCommand(app),
		newBookingsCreateCommand(app),
		newBookingsUpdateCommand(app),
		newBookingsDeleteCommand(app),
	)
	return cmd
}

func newBookingsListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			bookings, err := app.Bookings.ListBookings(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(bookings))
			for _, booking := range bookings {
				rows = append(rows, []string{
					formatID(booking.ID),
					booking.PatientName,
					booking.BookingDate,
					booking.Status,
				})
			}
			renderTable(app.Out, []string{"ID", "Patient", "Date", "Status"}, rows)
			return nil
		},
	}
}

func newBookingsGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <booking-id>",
		Short: "Show one booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			bookingID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid booking id %q", args[0])
			}
			booking, err := app.Bookings.FindBookingByID(cmd.Context(), bookingID)
			if err != nil {
				return err
			}
			renderTable(app.Out,
				[]string{"ID", "Patient", "Patient ID", "Date", "Status", "Created"},
				[][]string{{
					formatID(booking.ID),
					booking.PatientName,
					formatID(booking.PatientID),
					booking.BookingDate,
					booking.Status,
					booking.CreatedAt,
				}})
			return nil
		},
	}
}

func newBookingsTestsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tests <booking-id>",
		Short: "List the tests attached to a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			bookingID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid booking id %q", args[0])
			}
			bookingTests, err := app.Bookings.ListBookingTests(cmd.Context(), bookingID)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(bookingTests))
			for _, bookingTest := range bookingTests {
				rows = append(rows, []string{
					formatID(bookingTest.ID),
					formatID(bookingTest.TestID),
					bookingTest.TestName,
					bookingTest.Interpretation,
				})
			}
			renderTable(app.Out, []string{"ID", "Test ID", "Test", "Interpretation"}, rows)
			return nil
		},
	}
}

func newBookingsCreateCommand(app *App) *cobra.Command {
	request := &requests.CreateBookingRequest{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book tests for a patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			booking, err := app.Bookings.CreateBooking(cmd.Context(), request)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Created booking #%d for %s on %s\n",
				booking.ID, booking.PatientName, booking.BookingDate)
			return nil
		},
	}
	cmd.Flags().Int64Var(&request.PatientID, "patient", 0, "patient id")
	cmd.Flags().StringVar(&request.BookingDate, "date", "", "booking date (YYYY-MM-DD)")
	cmd.Flags().Int64SliceVar(&request.TestIDs, "test", nil, "test id (repeatable)")
	cmd.MarkFlagRequired("patient")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("test")
	return cmd
}

func newBookingsUpdateCommand(app *App) *cobra.Command {
	request := &requests.UpdateBookingRequest{}

	cmd := &cobra.Command{
		Use:   "update <booking-id>",
		Short: "Update a booking's date, status or tests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			bookingID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid booking id %q", args[0])
			}
			booking, err := app.Bookings.UpdateBooking(cmd.Context(), bookingID, request)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Updated booking #%d (%s, %s)\n",
				booking.ID, booking.BookingDate, booking.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&request.BookingDate, "date", "", "booking date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&request.Status, "status", "", "booking status (pending or completed)")
	cmd.Flags().Int64SliceVar(&request.TestIDs, "test", nil, "replacement test id (repeatable)")
	return cmd
}

func newBookingsDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <booking-id>",
		Short: "Delete a booking and everything attached to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			bookingID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid booking id %q", args[0])
			}
			if err := app.Bookings.DeleteBooking(cmd.Context(), bookingID); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Deleted booking #%d\n", bookingID)
			return nil
		},
	}
}
