package cli

import (
	"fmt"
	"os"
	"pathlab-client/internal/pkg/dto/requests"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newPaymentsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Manage payments (staff only)",
	}
	cmd.AddCommand(
		newPaymentsListCommand(app),
		newPaymentsGetCommand(app),
		newPaymentsCreateCommand(app),
		newPaymentsUpdateCommand(app),
		newPaymentsDeleteCommand(app),
		newPaymentsInvoiceCommand(app),
	)
	return cmd
}

func newPaymentsListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			payments, err := app.Payments.ListPayments(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(payments))
			for _, payment := range payments {
				rows = append(rows, []string{
					formatID(payment.ID),
					formatID(payment.BookingID),
					payment.PatientName,
					formatAmount(payment.TotalAmount),
					payment.Status,
					payment.PaidAt,
				})
			}
			renderTable(app.Out, []string{"ID", "Booking", "Patient", "Amount", "Status", "Paid"}, rows)
			return nil
		},
	}
}

func newPaymentsGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <payment-id>",
		Short: "Show one payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			paymentID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid payment id %q", args[0])
			}
			payment, err := app.Payments.FindPaymentByID(cmd.Context(), paymentID)
			if err != nil {
				return err
			}
			renderTable(app.Out,
				[]string{"ID", "Booking", "Patient", "Tests", "Amount", "Status", "Paid"},
				[][]string{{
					formatID(payment.ID),
					formatID(payment.BookingID),
					payment.PatientName,
					strings.Join(payment.TestNames, ", "),
					formatAmount(payment.TotalAmount),
					payment.Status,
					payment.PaidAt,
				}})
			return nil
		},
	}
}

func newPaymentsCreateCommand(app *App) *cobra.Command {
	request := &requests.CreatePaymentRequest{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a payment for a booking",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			payment, err := app.Payments.CreatePayment(cmd.Context(), request)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Created payment #%d (%s, %s)\n",
				payment.ID, formatAmount(payment.TotalAmount), payment.Status)
			return nil
		},
	}
	cmd.Flags().Int64Var(&request.BookingID, "booking", 0, "booking id")
	cmd.Flags().Float64Var(&request.Amount, "amount", 0, "payment amount")
	cmd.Flags().StringVar(&request.PaymentStatus, "status", "", "payment status (paid or pending)")
	cmd.Flags().StringVar(&request.PaidAt, "paid-at", "", "payment timestamp (RFC 3339, optional)")
	cmd.MarkFlagRequired("booking")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("status")
	return cmd
}

func newPaymentsUpdateCommand(app *App) *cobra.Command {
	request := &requests.UpdatePaymentRequest{}

	cmd := &cobra.Command{
		Use:   "update <payment-id>",
		Short: "Update a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			paymentID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid payment id %q", args[0])
			}
			payment, err := app.Payments.UpdatePayment(cmd.Context(), paymentID, request)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Updated payment #%d (%s, %s)\n",
				payment.ID, formatAmount(payment.TotalAmount), payment.Status)
			return nil
		},
	}
	cmd.Flags().Float64Var(&request.Amount, "amount", 0, "payment amount")
	cmd.Flags().StringVar(&request.PaymentStatus, "status", "", "payment status (paid or pending)")
	cmd.Flags().StringVar(&request.PaidAt, "paid-at", "", "payment timestamp (RFC 3339, optional)")
	return cmd
}

func newPaymentsDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <payment-id>",
		Short: "Delete a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			paymentID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid payment id %q", args[0])
			}
			if err := app.Payments.DeletePayment(cmd.Context(), paymentID); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Deleted payment #%d\n", paymentID)
			return nil
		},
	}
}

func newPaymentsInvoiceCommand(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "invoice <payment-id>",
		Short: "Download the invoice PDF for a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			paymentID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid payment id %q", args[0])
			}
			document, err := app.Payments.DownloadInvoicePDF(cmd.Context(), paymentID)
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
	cmd.Flags().StringVar(&outPath, "out", "invoice.pdf", "output file")
	return cmd
}
