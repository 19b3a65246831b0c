package cli

import (
	"fmt"
	"pathlab-client/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

func newLoginCommand(app *App) *cobra.Command {
	var email, password, userType string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the PathLab backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Session.Login(cmd.Context(), email, password, userType)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Logged in as %s (%s)\n", email, result.UserType)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&userType, "user-type", "", "account type hint (PATIENT or USER)")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Session.Logout(cmd.Context())
			fmt.Fprintln(app.Out, "Logged out")
			return nil
		},
	}
}

func newWhoamiCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Session.IsAuthenticated() {
				fmt.Fprintln(app.Out, "Not logged in")
				return nil
			}
			user := app.Session.CurrentUser()
			if user == nil {
				fmt.Fprintln(app.Out, "Logged in (profile unavailable)")
				return nil
			}
			fmt.Fprintf(app.Out, "%s (%s)\n", user.Email, user.UserType)
			return nil
		},
	}
}

func newRegisterCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
	}
	cmd.AddCommand(newRegisterPatientCommand(app), newRegisterUserCommand(app))
	return cmd
}

func newRegisterPatientCommand(app *App) *cobra.Command {
	request := &requests.RegisterPatientRequest{}

	cmd := &cobra.Command{
		Use:   "patient",
		Short: "Register a patient account",
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := app.Auth.RegisterPatient(cmd.Context(), request)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, response.Message)
			return nil
		},
	}
	cmd.Flags().StringVar(&request.Name, "name", "", "full name")
	cmd.Flags().StringVar(&request.Gender, "gender", "", "gender (M, F or O)")
	cmd.Flags().StringVar(&request.DateOfBirth, "date-of-birth", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&request.ContactNumber, "contact", "", "contact number")
	cmd.Flags().StringVar(&request.Email, "email", "", "account email")
	cmd.Flags().StringVar(&request.Password, "password", "", "account password")
	cmd.Flags().StringVar(&request.Address, "address", "", "postal address")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("gender")
	cmd.MarkFlagRequired("date-of-birth")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterUserCommand(app *App) *cobra.Command {
	request := &requests.RegisterUserRequest{}

	cmd := &cobra.Command{
		Use:   "user",
		Short: "Register a staff account (requires admin credentials)",
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := app.Auth.RegisterUser(cmd.Context(), request)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, response.Message)
			return nil
		},
	}
	cmd.Flags().StringVar(&request.Name, "name", "", "full name")
	cmd.Flags().StringVar(&request.Email, "email", "", "account email")
	cmd.Flags().StringVar(&request.Password, "password", "", "account password")
	cmd.Flags().StringVar(&request.Role, "role", "", "staff role (ADMIN, LAB_TECH or DOCTOR)")
	cmd.Flags().StringVar(&request.AdminEmail, "admin-email", "", "vouching admin email")
	cmd.Flags().StringVar(&request.AdminPassword, "admin-password", "", "vouching admin password")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("role")
	return cmd
}

func newVerifyEmailCommand(app *App) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "verify-email",
		Short: "Verify an account email with the mailed token",
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := app.Auth.VerifyEmail(cmd.Context(), token)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, response.Message)
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "verification token")
	cmd.MarkFlagRequired("token")
	return cmd
}

func newForgotPasswordCommand(app *App) *cobra.Command {
	request := &requests.ForgotPasswordRequest{}

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password reset link",
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := app.Auth.ForgotPassword(cmd.Context(), request)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, response.Message)
			return nil
		},
	}
	cmd.Flags().StringVar(&request.Email, "email", "", "account email")
	cmd.Flags().StringVar(&request.UserType, "user-type", "", "account type hint (PATIENT or USER)")
	cmd.MarkFlagRequired("email")
	return cmd
}

func newResetPasswordCommand(app *App) *cobra.Command {
	request := &requests.ResetPasswordRequest{}

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Reset the password with a reset token",
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := app.Auth.ResetPassword(cmd.Context(), request)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, response.Message)
			return nil
		},
	}
	cmd.Flags().StringVar(&request.Token, "token", "", "reset token")
	cmd.Flags().StringVar(&request.NewPassword, "new-password", "", "new password")
	cmd.MarkFlagRequired("token")
	cmd.MarkFlagRequired("new-password")
	return cmd
}
