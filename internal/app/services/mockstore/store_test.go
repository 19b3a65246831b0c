package mockstore

import (
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededBookingID(t *testing.T, store *Store) int64 {
	t.Helper()
	bookings := store.ListBookings()
	require.Len(t, bookings, 1)
	return bookings[0].ID
}

func seededPatientID(t *testing.T, store *Store) int64 {
	t.Helper()
	patients := store.ListPatients()
	require.Len(t, patients, 1)
	return patients[0].ID
}

func testIDByName(t *testing.T, store *Store, name string) int64 {
	t.Helper()
	for _, test := range store.ListTests() {
		if test.TestName == name {
			return test.ID
		}
	}
	t.Fatalf("no seeded test named %q", name)
	return 0
}

func TestAuthenticate(t *testing.T) {
	store := NewStore()

	t.Run("accepts seeded credentials", func(t *testing.T) {
		account, err := store.Authenticate(SeedAdminEmail, SeedAdminPassword, "")
		require.NoError(t, err)
		assert.Equal(t, constvars.UserTypeStaff, account.UserType)
		assert.Equal(t, constvars.StaffRoleAdmin, account.Role)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		_, err := store.Authenticate(SeedAdminEmail, "nope", "")
		assert.Error(t, err)
	})

	t.Run("rejects a mismatched userType hint", func(t *testing.T) {
		_, err := store.Authenticate(SeedPatientEmail, SeedPatientPassword, constvars.UserTypeStaff)
		assert.Error(t, err)
	})

	t.Run("revoked token ids are remembered", func(t *testing.T) {
		assert.False(t, store.IsTokenRevoked("jti-1"))
		store.RevokeToken("jti-1")
		assert.True(t, store.IsTokenRevoked("jti-1"))
	})
}

func TestBookingLifecycle(t *testing.T) {
	store := NewStore()
	patientID := seededPatientID(t, store)
	cbcID := testIDByName(t, store, "Complete Blood Count")
	urinalysisID := testIDByName(t, store, "Urinalysis")

	booking, err := store.CreateBooking(&requests.CreateBookingRequest{
		PatientID:   patientID,
		BookingDate: "2026-03-01",
		TestIDs:     []int64{cbcID, urinalysisID},
	})
	require.NoError(t, err)
	assert.Equal(t, constvars.BookingStatusPending, booking.Status)
	assert.Equal(t, "Jane Doe", booking.PatientName)

	t.Run("creating a booking opens pending samples", func(t *testing.T) {
		var opened int
		for _, sample := range store.ListSamples() {
			if sample.BookingID == booking.ID {
				opened++
				assert.Equal(t, constvars.SampleStatusCollectionPending, sample.Status)
			}
		}
		assert.Equal(t, 2, opened)
	})

	t.Run("replacing the test set reconciles samples", func(t *testing.T) {
		lipidID := testIDByName(t, store, "Lipid Profile")
		_, err := store.UpdateBooking(booking.ID, &requests.UpdateBookingRequest{
			TestIDs: []int64{cbcID, lipidID},
		})
		require.NoError(t, err)

		testsWithSamples := map[int64]bool{}
		for _, sample := range store.ListSamples() {
			if sample.BookingID == booking.ID {
				testsWithSamples[sample.TestID] = true
			}
		}
		assert.True(t, testsWithSamples[cbcID])
		assert.True(t, testsWithSamples[lipidID])
		assert.False(t, testsWithSamples[urinalysisID])
	})

	t.Run("unknown tests are refused", func(t *testing.T) {
		_, err := store.CreateBooking(&requests.CreateBookingRequest{
			PatientID:   patientID,
			BookingDate: "2026-03-01",
			TestIDs:     []int64{99999},
		})
		assert.Error(t, err)
	})

	t.Run("deleting a booking cascades", func(t *testing.T) {
		require.NoError(t, store.DeleteBooking(booking.ID))

		_, err := store.FindBookingByID(booking.ID)
		assert.Error(t, err)
		for _, sample := range store.ListSamples() {
			assert.NotEqual(t, booking.ID, sample.BookingID)
		}
		_, err = store.ListBookingTests(booking.ID)
		assert.Error(t, err)
	})
}

func TestResultsLifecycle(t *testing.T) {
	store := NewStore()
	bookingID := seededBookingID(t, store)
	lipidID := testIDByName(t, store, "Lipid Profile")

	parameters, err := store.ListTestParameters(lipidID)
	require.NoError(t, err)
	require.Len(t, parameters, 1)

	t.Run("results can only target tests on the booking", func(t *testing.T) {
		urinalysisID := testIDByName(t, store, "Urinalysis")
		_, err := store.SaveResults(bookingID, urinalysisID, &requests.SaveTestResultsRequest{
			EnteredBy: 1,
			Results:   []requests.ResultEntry{{ParameterID: 1, Value: "x"}},
		})
		assert.Error(t, err)
	})

	t.Run("save then update round-trips the entries", func(t *testing.T) {
		saved, err := store.SaveResults(bookingID, lipidID, &requests.SaveTestResultsRequest{
			EnteredBy: 1,
			Results:   []requests.ResultEntry{{ParameterID: parameters[0].ID, Value: "180"}},
		})
		require.NoError(t, err)
		require.Len(t, saved.SavedResults, 1)
		assert.Equal(t, "180", saved.SavedResults[0].Value)

		updated, err := store.UpdateResults(bookingID, lipidID, &requests.SaveTestResultsRequest{
			EnteredBy: 1,
			Results:   []requests.ResultEntry{{ParameterID: parameters[0].ID, Value: "191"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "191", updated.SavedResults[0].Value)
	})

	t.Run("booking results join patient, tests and values", func(t *testing.T) {
		bookingResults, err := store.FindResultsByBookingID(bookingID)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", bookingResults.Patient.Name)
		assert.NotZero(t, bookingResults.Patient.Age)

		var lipidValue string
		for _, group := range bookingResults.Tests {
			if group.TestID == lipidID {
				require.Len(t, group.Parameters, 1)
				lipidValue = group.Parameters[0].Value
			}
		}
		assert.Equal(t, "191", lipidValue)
	})

	t.Run("delete removes one test's results only", func(t *testing.T) {
		require.NoError(t, store.DeleteResults(bookingID, lipidID))
		assert.Error(t, store.DeleteResults(bookingID, lipidID))

		// The seeded CBC results are still there.
		bookingResults, err := store.FindResultsByBookingID(bookingID)
		require.NoError(t, err)
		var cbcHasValues bool
		for _, group := range bookingResults.Tests {
			for _, parameter := range group.Parameters {
				if parameter.Value != "" {
					cbcHasValues = true
				}
			}
		}
		assert.True(t, cbcHasValues)
	})
}

func TestDashboardQueries(t *testing.T) {
	store := NewStore()

	t.Run("stats reflect the seed data", func(t *testing.T) {
		stats := store.DashboardStats()
		assert.EqualValues(t, 1, stats.TotalPatients)
		assert.EqualValues(t, 1, stats.TotalBookings)
		assert.EqualValues(t, 1, stats.TestsCompleted)
		assert.EqualValues(t, 950, stats.TotalRevenue)
		// The seeded booking has results and a report, nothing pending.
		assert.EqualValues(t, 0, stats.PendingReports)
	})

	t.Run("monthly bookings always covers the asked window", func(t *testing.T) {
		monthly := store.MonthlyBookings(4)
		assert.Len(t, monthly, 4)

		defaulted := store.MonthlyBookings(0)
		assert.Len(t, defaulted, 6)
	})

	t.Run("test distribution is sorted by popularity", func(t *testing.T) {
		distribution := store.TestDistribution()
		require.Len(t, distribution, 2)
		assert.GreaterOrEqual(t, distribution[0].Value, distribution[1].Value)
	})

	t.Run("recent activity honors the limit", func(t *testing.T) {
		activity := store.RecentActivity(1)
		assert.Len(t, activity, 1)
	})
}
