package cli

import (
	"context"
	"io"
	"os"
	"pathlab-client/internal/app/config"
	"pathlab-client/internal/app/contracts"
	"pathlab-client/internal/app/services/core/auth"
	"pathlab-client/internal/app/services/core/bookings"
	"pathlab-client/internal/app/services/core/dashboard"
	"pathlab-client/internal/app/services/core/patients"
	"pathlab-client/internal/app/services/core/payments"
	"pathlab-client/internal/app/services/core/reports"
	"pathlab-client/internal/app/services/core/results"
	"pathlab-client/internal/app/services/core/samples"
	"pathlab-client/internal/app/services/core/session"
	"pathlab-client/internal/app/services/core/tests"
	"pathlab-client/internal/app/services/shared/restclient"
	"pathlab-client/internal/app/services/shared/sessionstorage"
	"pathlab-client/internal/pkg/constvars"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App bundles every client the commands need.
type App struct {
	Log       *zap.Logger
	Session   contracts.SessionService
	Auth      contracts.AuthClient
	Patients  contracts.PatientClient
	Portal    contracts.PatientPortalClient
	Tests     contracts.TestCatalogClient
	Bookings  contracts.BookingClient
	Samples   contracts.SampleClient
	Results   contracts.ResultClient
	Reports   contracts.ReportClient
	Payments  contracts.PaymentClient
	Dashboard contracts.DashboardClient
	Out       io.Writer
}

// sessionTokenSource defers to the session service once it exists. The
// rest client needs a token provider before the session service can be
// built, because the session service itself talks through the rest client.
type sessionTokenSource struct {
	session contracts.SessionService
}

func (s *sessionTokenSource) CurrentToken() string {
	if s.session == nil {
		return ""
	}
	return s.session.CurrentToken()
}

func NewApp(bootstrap *config.Bootstrap) *App {
	logger := bootstrap.Logger

	storage, err := sessionstorage.NewFileStorage(bootstrap.InternalConfig)
	if err != nil {
		logger.Warn("falling back to in-memory session storage", zap.Error(err))
		storage = sessionstorage.NewMemoryStorage()
	}

	tokenSource := &sessionTokenSource{}
	rc := restclient.NewRestClient(bootstrap.InternalConfig, tokenSource, logger)

	authClient := auth.NewAuthClient(rc, logger)
	sessionService := session.NewSessionService(authClient, storage, logger)
	tokenSource.session = sessionService

	return &App{
		Log:       logger,
		Session:   sessionService,
		Auth:      authClient,
		Patients:  patients.NewPatientClient(rc, logger),
		Portal:    patients.NewPatientPortalClient(rc, logger),
		Tests:     tests.NewTestCatalogClient(rc, logger),
		Bookings:  bookings.NewBookingClient(rc, logger),
		Samples:   samples.NewSampleClient(rc, logger),
		Results:   results.NewResultClient(rc, logger),
		Reports:   reports.NewReportClient(rc, logger),
		Payments:  payments.NewPaymentClient(rc, logger),
		Dashboard: dashboard.NewDashboardClient(rc, logger),
		Out:       os.Stdout,
	}
}

// NewRootCommand builds the pathlab command tree. Every invocation gets a
// request ID and a restored session before its RunE fires.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pathlab",
		Short:         "Command-line client for the PathLab Pro laboratory backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			requestID := constvars.REQUEST_ID_PREFIX + uuid.NewString()
			ctx := context.WithValue(cmd.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
			cmd.SetContext(ctx)
			app.Session.Initialize(ctx)
		},
	}

	rootCmd.AddCommand(
		newLoginCommand(app),
		newLogoutCommand(app),
		newWhoamiCommand(app),
		newRegisterCommand(app),
		newVerifyEmailCommand(app),
		newForgotPasswordCommand(app),
		newResetPasswordCommand(app),
		newPatientsCommand(app),
		newTestsCommand(app),
		newBookingsCommand(app),
		newSamplesCommand(app),
		newResultsCommand(app),
		newReportsCommand(app),
		newPaymentsCommand(app),
		newDashboardCommand(app),
		newPortalCommand(app),
	)
	return rootCmd
}
