package contracts

import (
	"context"
	"pathlab-client/internal/pkg/dto/responses"
)

// DashboardOverview bundles the four widgets the staff landing page shows.
type DashboardOverview struct {
	Stats            *responses.DashboardStats
	MonthlyBookings  []responses.MonthlyBooking
	TestDistribution []responses.TestDistribution
	RecentActivity   []responses.RecentActivity
}

type DashboardClient interface {
	Stats(ctx context.Context) (*responses.DashboardStats, error)
	MonthlyBookings(ctx context.Context, months int) ([]responses.MonthlyBooking, error)
	TestDistribution(ctx context.Context) ([]responses.TestDistribution, error)
	RecentActivity(ctx context.Context, limit int) ([]responses.RecentActivity, error)

	// Overview issues all four fetches concurrently and settles when every
	// one of them has completed.
	Overview(ctx context.Context) (*DashboardOverview, error)
}
