package cli

import (
	"fmt"
	"pathlab-client/internal/pkg/dto/requests"
	"strconv"

	"github.com/spf13/cobra"
)

func newPortalCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portal",
		Short: "Patient self-service portal",
	}
	cmd.AddCommand(
		newPortalDashboardCommand(app),
		newPortalBookingsCommand(app),
		newPortalPaymentsCommand(app),
		newPortalProfileCommand(app),
		newPortalUpdateProfileCommand(app),
		newPortalUpdateTestsCommand(app),
	)
	return cmd
}

func newPortalDashboardCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your booking summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePatient(); err != nil {
				return err
			}
			dashboard, err := app.Portal.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			renderTable(app.Out,
				[]string{"Bookings", "Tests completed", "Pending tests"},
				[][]string{{
					formatID(dashboard.TotalBookings),
					formatID(dashboard.TotalTestsCompleted),
					formatID(dashboard.PendingTests),
				}})
			return nil
		},
	}
}

func newPortalBookingsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "List your bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePatient(); err != nil {
				return err
			}
			bookings, err := app.Portal.Bookings(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(bookings))
			for _, booking := range bookings {
				rows = append(rows, []string{
					formatID(booking.BookingID),
					booking.TestName,
					booking.BookingDate,
					booking.SampleStatus,
					booking.TestStatus,
				})
			}
			renderTable(app.Out, []string{"Booking", "Tests", "Date", "Sample", "Status"}, rows)
			return nil
		},
	}
}

func newPortalPaymentsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "payments",
		Short: "List your payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePatient(); err != nil {
				return err
			}
			payments, err := app.Portal.Payments(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(payments))
			for _, payment := range payments {
				rows = append(rows, []string{
					formatID(payment.PaymentID),
					formatID(payment.BookingID),
					formatAmount(payment.Amount),
					payment.Status,
					payment.PaidAt,
				})
			}
			renderTable(app.Out, []string{"Payment", "Booking", "Amount", "Status", "Paid"}, rows)
			return nil
		},
	}
}

func newPortalProfileCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePatient(); err != nil {
				return err
			}
			profile, err := app.Portal.Profile(cmd.Context())
			if err != nil {
				return err
			}
			renderTable(app.Out,
				[]string{"Name", "Email", "Contact", "Address"},
				[][]string{{profile.Name, profile.Email, profile.ContactNumber, profile.Address}})
			return nil
		},
	}
}

func newPortalUpdateProfileCommand(app *App) *cobra.Command {
	request := &requests.UpdateProfileRequest{}

	cmd := &cobra.Command{
		Use:   "update-profile",
		Short: "Update your contact details",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePatient(); err != nil {
				return err
			}
			profile, err := app.Portal.UpdateProfile(cmd.Context(), request)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Profile updated for %s\n", profile.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&request.Name, "name", "", "full name")
	cmd.Flags().StringVar(&request.ContactNumber, "contact", "", "contact number")
	cmd.Flags().StringVar(&request.Address, "address", "", "postal address")
	return cmd
}

func newPortalUpdateTestsCommand(app *App) *cobra.Command {
	request := &requests.UpdateBookingTestsRequest{}

	cmd := &cobra.Command{
		Use:   "update-tests <booking-id>",
		Short: "Change the tests on one of your pending bookings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePatient(); err != nil {
				return err
			}
			bookingID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid booking id %q", args[0])
			}
			booking, err := app.Portal.UpdateBookingTests(cmd.Context(), bookingID, request)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Booking #%d now covers: %s\n", booking.BookingID, booking.TestName)
			return nil
		},
	}
	cmd.Flags().Int64SliceVar(&request.TestIDs, "test", nil, "test id (repeatable)")
	cmd.MarkFlagRequired("test")
	return cmd
}
