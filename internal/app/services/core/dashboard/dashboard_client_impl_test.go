package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"pathlab-client/internal/app/config"
	"pathlab-client/internal/app/contracts"
	"pathlab-client/internal/app/services/shared/restclient"
	"pathlab-client/internal/pkg/constvars"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDashboardTestClient(t *testing.T, handler http.Handler) (contracts.DashboardClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	rc := restclient.NewRestClient(&config.InternalConfig{
		Backend: config.Backend{BaseUrl: server.URL},
	}, nil, zap.NewNop())
	return NewDashboardClient(rc, zap.NewNop()), server
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.Write([]byte(body))
}

func TestDashboardOverview(t *testing.T) {
	t.Run("fetches all four widgets concurrently", func(t *testing.T) {
		var hits int32
		mux := http.NewServeMux()
		mux.HandleFunc("/dashboard/stats", func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			writeJSON(w, `{"totalPatients":5,"totalBookings":12,"testsCompleted":8,"pendingReports":2,"totalRevenue":5400,"monthlyGrowth":12.5}`)
		})
		mux.HandleFunc("/dashboard/monthly-bookings", func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			assert.Equal(t, "6", r.URL.Query().Get("months"))
			writeJSON(w, `[{"month":"Jan","bookings":3,"revenue":900},{"month":"Feb","bookings":9,"revenue":4500}]`)
		})
		mux.HandleFunc("/dashboard/test-distribution", func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			writeJSON(w, `[{"name":"Complete Blood Count","value":7}]`)
		})
		mux.HandleFunc("/dashboard/recent-activity", func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			assert.Equal(t, "10", r.URL.Query().Get("limit"))
			writeJSON(w, `[{"id":1,"type":"booking","message":"New booking","time":"2026-02-10T09:00:00Z","status":"pending"}]`)
		})

		client, _ := newDashboardTestClient(t, mux)
		overview, err := client.Overview(context.Background())
		require.NoError(t, err)
		assert.EqualValues(t, 4, atomic.LoadInt32(&hits))

		require.NotNil(t, overview.Stats)
		assert.EqualValues(t, 5, overview.Stats.TotalPatients)
		assert.Len(t, overview.MonthlyBookings, 2)
		assert.Len(t, overview.TestDistribution, 1)
		assert.Len(t, overview.RecentActivity, 1)
	})

	t.Run("one failed widget fails the whole overview", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/dashboard/stats", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `[]`)
		})

		client, _ := newDashboardTestClient(t, mux)
		overview, err := client.Overview(context.Background())
		assert.Error(t, err)
		assert.Nil(t, overview)
	})
}

func TestDashboardWidgets(t *testing.T) {
	t.Run("monthly bookings forwards the months parameter", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/dashboard/monthly-bookings", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "12", r.URL.Query().Get("months"))
			writeJSON(w, `[]`)
		})

		client, _ := newDashboardTestClient(t, mux)
		_, err := client.MonthlyBookings(context.Background(), 12)
		assert.NoError(t, err)
	})

	t.Run("recent activity forwards the limit parameter", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/dashboard/recent-activity", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "3", r.URL.Query().Get("limit"))
			writeJSON(w, `[]`)
		})

		client, _ := newDashboardTestClient(t, mux)
		_, err := client.RecentActivity(context.Background(), 3)
		assert.NoError(t, err)
	})
}
