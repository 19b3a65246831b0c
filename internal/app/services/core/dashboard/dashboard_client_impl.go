package dashboard

import (
	"context"
	"pathlab-client/internal/app/contracts"
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/responses"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

type dashboardClient struct {
	RestClient contracts.RestClient
	Log        *zap.Logger
}

func NewDashboardClient(restClient contracts.RestClient, logger *zap.Logger) contracts.DashboardClient {
	return &dashboardClient{RestClient: restClient, Log: logger}
}

func (c *dashboardClient) Stats(ctx context.Context) (*responses.DashboardStats, error) {
	stats := new(responses.DashboardStats)
	if err := c.RestClient.Get(ctx, constvars.EndpointDashboard+"/stats", stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *dashboardClient) MonthlyBookings(ctx context.Context, months int) ([]responses.MonthlyBooking, error) {
	var monthly []responses.MonthlyBooking
	path := constvars.EndpointDashboard + "/monthly-bookings?months=" + strconv.Itoa(months)
	if err := c.RestClient.Get(ctx, path, &monthly); err != nil {
		return nil, err
	}
	return monthly, nil
}

func (c *dashboardClient) TestDistribution(ctx context.Context) ([]responses.TestDistribution, error) {
	var distribution []responses.TestDistribution
	if err := c.RestClient.Get(ctx, constvars.EndpointDashboard+"/test-distribution", &distribution); err != nil {
		return nil, err
	}
	return distribution, nil
}

func (c *dashboardClient) RecentActivity(ctx context.Context, limit int) ([]responses.RecentActivity, error) {
	var activity []responses.RecentActivity
	path := constvars.EndpointDashboard + "/recent-activity?limit=" + strconv.Itoa(limit)
	if err := c.RestClient.Get(ctx, path, &activity); err != nil {
		return nil, err
	}
	return activity, nil
}

const (
	defaultOverviewMonths        = 6
	defaultOverviewActivityLimit = 10
)

// Overview fans the four widget fetches out concurrently and waits for all
// of them; a failed widget fails the overview with the first error seen.
func (c *dashboardClient) Overview(ctx context.Context) (*contracts.DashboardOverview, error) {
	overview := new(contracts.DashboardOverview)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	collect := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		stats, err := c.Stats(ctx)
		overview.Stats = stats
		collect(err)
	}()
	go func() {
		defer wg.Done()
		monthly, err := c.MonthlyBookings(ctx, defaultOverviewMonths)
		overview.MonthlyBookings = monthly
		collect(err)
	}()
	go func() {
		defer wg.Done()
		distribution, err := c.TestDistribution(ctx)
		overview.TestDistribution = distribution
		collect(err)
	}()
	go func() {
		defer wg.Done()
		activity, err := c.RecentActivity(ctx, defaultOverviewActivityLimit)
		overview.RecentActivity = activity
		collect(err)
	}()
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return overview, nil
}
