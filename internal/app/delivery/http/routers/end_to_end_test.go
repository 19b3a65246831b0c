package routers

import (
	"context"
	"errors"
	"net/http/httptest"
	"pathlab-client/internal/app/config"
	"pathlab-client/internal/app/contracts"
	"pathlab-client/internal/app/services/core/auth"
	"pathlab-client/internal/app/services/core/bookings"
	"pathlab-client/internal/app/services/core/dashboard"
	"pathlab-client/internal/app/services/core/patients"
	"pathlab-client/internal/app/services/core/results"
	"pathlab-client/internal/app/services/core/session"
	"pathlab-client/internal/app/services/mockstore"
	"pathlab-client/internal/app/services/shared/restclient"
	"pathlab-client/internal/app/services/shared/sessionstorage"
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
	"pathlab-client/internal/pkg/exceptions"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// clientStack wires the real client services against a mock API server,
// the same way the CLI wires them against the production backend.
type clientStack struct {
	Session   contracts.SessionService
	Patients  contracts.PatientClient
	Portal    contracts.PatientPortalClient
	Bookings  contracts.BookingClient
	Results   contracts.ResultClient
	Dashboard contracts.DashboardClient
}

type deferredTokenSource struct {
	session contracts.SessionService
}

func (d *deferredTokenSource) CurrentToken() string {
	if d.session == nil {
		return ""
	}
	return d.session.CurrentToken()
}

func newClientStack(t *testing.T, server *httptest.Server) *clientStack {
	t.Helper()
	logger := zap.NewNop()
	tokenSource := &deferredTokenSource{}
	rc := restclient.NewRestClient(&config.InternalConfig{
		Backend: config.Backend{BaseUrl: server.URL + "/api"},
	}, tokenSource, logger)

	authClient := auth.NewAuthClient(rc, logger)
	sessionService := session.NewSessionService(authClient, sessionstorage.NewMemoryStorage(), logger)
	tokenSource.session = sessionService

	return &clientStack{
		Session:   sessionService,
		Patients:  patients.NewPatientClient(rc, logger),
		Portal:    patients.NewPatientPortalClient(rc, logger),
		Bookings:  bookings.NewBookingClient(rc, logger),
		Results:   results.NewResultClient(rc, logger),
		Dashboard: dashboard.NewDashboardClient(rc, logger),
	}
}

func TestStaffJourney(t *testing.T) {
	server, _ := newTestServer(t, testInternalConfig())
	stack := newClientStack(t, server)
	ctx := context.Background()

	result, err := stack.Session.Login(ctx, mockstore.SeedAdminEmail, mockstore.SeedAdminPassword, "")
	require.NoError(t, err)
	assert.Equal(t, constvars.UserTypeStaff, result.UserType)

	t.Run("lists the seeded patient", func(t *testing.T) {
		patientList, err := stack.Patients.ListPatients(ctx)
		require.NoError(t, err)
		require.Len(t, patientList, 1)
		assert.Equal(t, "Jane Doe", patientList[0].Name)
		assert.EqualValues(t, 1, patientList[0].TotalBookings)
	})

	t.Run("fetches evaluated booking results", func(t *testing.T) {
		bookingList, err := stack.Bookings.ListBookings(ctx)
		require.NoError(t, err)
		require.Len(t, bookingList, 1)

		bookingResults, err := stack.Results.FindResultsByBookingID(ctx, bookingList[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", bookingResults.Patient.Name)
		assert.Equal(t, constvars.GenderFemale, bookingResults.Patient.Gender)

		byName := map[string]responses.ParameterResult{}
		for _, group := range bookingResults.Tests {
			for _, parameter := range group.Parameters {
				byName[parameter.Name] = parameter
			}
		}

		// Jane is an adult female: 13.1 sits inside 12.0-15.5.
		hemoglobin, ok := byName["Hemoglobin"]
		require.True(t, ok)
		assert.Equal(t, "13.1", hemoglobin.Value)
		assert.Equal(t, constvars.ResultStatusNormal, hemoglobin.Status)

		wbc, ok := byName["WBC Count"]
		require.True(t, ok)
		assert.Equal(t, constvars.ResultStatusNormal, wbc.Status)

		// The lipid test has no results yet: parameters come back unvalued.
		cholesterol, ok := byName["Total Cholesterol"]
		require.True(t, ok)
		assert.Empty(t, cholesterol.Value)
		assert.Empty(t, cholesterol.Status)
	})

	t.Run("saving an out-of-range value flags it", func(t *testing.T) {
		bookingList, err := stack.Bookings.ListBookings(ctx)
		require.NoError(t, err)
		bookingID := bookingList[0].ID

		bookingTests, err := stack.Bookings.ListBookingTests(ctx, bookingID)
		require.NoError(t, err)

		var lipidTestID int64
		for _, bookingTest := range bookingTests {
			if bookingTest.TestName == "Lipid Profile" {
				lipidTestID = bookingTest.TestID
			}
		}
		require.NotZero(t, lipidTestID)

		bookingResults, err := stack.Results.FindResultsByBookingID(ctx, bookingID)
		require.NoError(t, err)
		var cholesterolParameterID int64
		for _, group := range bookingResults.Tests {
			for _, parameter := range group.Parameters {
				if parameter.Name == "Total Cholesterol" {
					cholesterolParameterID = parameter.ParameterID
				}
			}
		}
		require.NotZero(t, cholesterolParameterID)

		_, err = stack.Results.SaveResults(ctx, bookingID, lipidTestID, &requests.SaveTestResultsRequest{
			EnteredBy: 2,
			Results: []requests.ResultEntry{
				{ParameterID: cholesterolParameterID, Value: "245"},
			},
		})
		require.NoError(t, err)

		bookingResults, err = stack.Results.FindResultsByBookingID(ctx, bookingID)
		require.NoError(t, err)
		for _, group := range bookingResults.Tests {
			for _, parameter := range group.Parameters {
				if parameter.Name == "Total Cholesterol" {
					// 245 exceeds the 125-200 adult range.
					assert.Equal(t, constvars.ResultStatusHigh, parameter.Status)
				}
			}
		}
	})

	t.Run("downloads the results PDF", func(t *testing.T) {
		bookingList, err := stack.Bookings.ListBookings(ctx)
		require.NoError(t, err)

		document, err := stack.Results.DownloadResultsPDF(ctx, bookingList[0].ID)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(document), "%PDF"))
	})

	t.Run("assembles the dashboard overview", func(t *testing.T) {
		overview, err := stack.Dashboard.Overview(ctx)
		require.NoError(t, err)
		require.NotNil(t, overview.Stats)
		assert.EqualValues(t, 1, overview.Stats.TotalPatients)
		assert.EqualValues(t, 1, overview.Stats.TotalBookings)
		assert.NotEmpty(t, overview.TestDistribution)
	})
}

func TestPatientJourney(t *testing.T) {
	server, _ := newTestServer(t, testInternalConfig())
	stack := newClientStack(t, server)
	ctx := context.Background()

	result, err := stack.Session.Login(ctx, mockstore.SeedPatientEmail, mockstore.SeedPatientPassword, "")
	require.NoError(t, err)
	assert.Equal(t, constvars.UserTypePatient, result.UserType)

	t.Run("sees their own dashboard", func(t *testing.T) {
		portalDashboard, err := stack.Portal.Dashboard(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, portalDashboard.TotalBookings)
		assert.EqualValues(t, 1, portalDashboard.TotalTestsCompleted)
		assert.EqualValues(t, 1, portalDashboard.PendingTests)
	})

	t.Run("sees their bookings with joined test names", func(t *testing.T) {
		portalBookings, err := stack.Portal.Bookings(ctx)
		require.NoError(t, err)
		require.Len(t, portalBookings, 1)
		assert.Contains(t, portalBookings[0].TestName, "Complete Blood Count")
		assert.Contains(t, portalBookings[0].TestName, "Lipid Profile")
		assert.Equal(t, constvars.SampleStatusCollectionPending, portalBookings[0].SampleStatus)
		assert.Equal(t, constvars.BookingStatusPending, portalBookings[0].TestStatus)
	})

	t.Run("updates their own profile", func(t *testing.T) {
		profile, err := stack.Portal.UpdateProfile(ctx, &requests.UpdateProfileRequest{
			ContactNumber: "9990001111",
		})
		require.NoError(t, err)
		assert.Equal(t, "9990001111", profile.ContactNumber)
	})

	t.Run("is refused staff resources", func(t *testing.T) {
		_, err := stack.Patients.ListPatients(ctx)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("logout drops the session", func(t *testing.T) {
		stack.Session.Logout(ctx)
		assert.False(t, stack.Session.IsAuthenticated())

		_, err := stack.Portal.Dashboard(ctx)
		require.Error(t, err)
	})
}
