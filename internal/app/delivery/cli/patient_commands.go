package cli

import (
	"fmt"
	"pathlab-client/internal/pkg/dto/requests"
	"strconv"

	"github.com/spf13/cobra"
)

func newPatientsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "Manage patients (staff only)",
	}
	cmd.AddCommand(
		newPatientsListCommand(app),
		newPatientsGetCommand(app),
		newPatientsCreateCommand(app),
		newPatientsUpdateCommand(app),
		newPatientsDeleteCommand(app),
	)
	return cmd
}

func newPatientsListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			patients, err := app.Patients.ListPatients(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(patients))
			for _, patient := range patients {
				rows = append(rows, []string{
					formatID(patient.ID),
					patient.Name,
					patient.Gender,
					patient.DateOfBirth,
					patient.Email,
					yesNo(patient.IsActive),
					formatID(patient.TotalBookings),
				})
			}
			renderTable(app.Out, []string{"ID", "Name", "Gender", "DOB", "Email", "Active", "Bookings"}, rows)
			return nil
		},
	}
}

func newPatientsGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <patient-id>",
		Short: "Show one patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			patientID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid patient id %q", args[0])
			}
			patient, err := app.Patients.FindPatientByID(cmd.Context(), patientID)
			if err != nil {
				return err
			}
			renderTable(app.Out,
				[]string{"ID", "Name", "Gender", "DOB", "Contact", "Email", "Address", "Active", "Last visit"},
				[][]string{{
					formatID(patient.ID),
					patient.Name,
					patient.Gender,
					patient.DateOfBirth,
					patient.ContactNumber,
					patient.Email,
					patient.Address,
					yesNo(patient.IsActive),
					patient.LastVisit,
				}})
			return nil
		},
	}
}

func newPatientsCreateCommand(app *App) *cobra.Command {
	request := &requests.CreatePatientRequest{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a patient on their behalf",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			patient, err := app.Patients.CreatePatient(cmd.Context(), request)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Created patient #%d (%s)\n", patient.ID, patient.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&request.Name, "name", "", "full name")
	cmd.Flags().StringVar(&request.Gender, "gender", "", "gender (M, F or O)")
	cmd.Flags().StringVar(&request.DateOfBirth, "date-of-birth", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&request.ContactNumber, "contact", "", "contact number")
	cmd.Flags().StringVar(&request.Email, "email", "", "account email")
	cmd.Flags().StringVar(&request.Password, "password", "", "initial password")
	cmd.Flags().StringVar(&request.Address, "address", "", "postal address")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("gender")
	cmd.MarkFlagRequired("date-of-birth")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newPatientsUpdateCommand(app *App) *cobra.Command {
	request := &requests.UpdatePatientRequest{}

	cmd := &cobra.Command{
		Use:   "update <patient-id>",
		Short: "Update a patient record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			patientID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid patient id %q", args[0])
			}
			patient, err := app.Patients.UpdatePatient(cmd.Context(), patientID, request)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Updated patient #%d (%s)\n", patient.ID, patient.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&request.Name, "name", "", "full name")
	cmd.Flags().StringVar(&request.Gender, "gender", "", "gender (M, F or O)")
	cmd.Flags().StringVar(&request.DateOfBirth, "date-of-birth", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&request.ContactNumber, "contact", "", "contact number")
	cmd.Flags().StringVar(&request.Email, "email", "", "account email")
	cmd.Flags().StringVar(&request.Password, "password", "", "new password (optional)")
	cmd.Flags().StringVar(&request.Address, "address", "", "postal address")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("gender")
	cmd.MarkFlagRequired("date-of-birth")
	cmd.MarkFlagRequired("email")
	return cmd
}

func newPatientsDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <patient-id>",
		Short: "Delete a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			patientID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid patient id %q", args[0])
			}
			if err := app.Patients.DeletePatient(cmd.Context(), patientID); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Deleted patient #%d\n", patientID)
			return nil
		},
	}
}
