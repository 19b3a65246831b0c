package responses

type DashboardStats struct {
	TotalPatients  int64   `json:"totalPatients"`
	TotalBookings  int64   `json:"totalBookings"`
	TestsCompleted int64   `json:"testsCompleted"`
	PendingReports int64   `json:"pendingReports"`
	TotalRevenue   float64 `json:"totalRevenue"`
	MonthlyGrowth  float64 `json:"monthlyGrowth"`
}

type MonthlyBooking struct {
	Month    string  `json:"month"`
	Bookings int64   `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type TestDistribution struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type RecentActivity struct {
	ID      int64  `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Time    string `json:"time"`
	Status  string `json:"status"`
}
