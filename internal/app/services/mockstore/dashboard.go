package mockstore

import (
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/responses"
	"sort"
	"strconv"
	"time"
)

func (s *Store) DashboardStats() *responses.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &responses.DashboardStats{
		TotalPatients: int64(len(s.patients)),
		TotalBookings: int64(len(s.bookings)),
	}

	for bookingID := range s.bookings {
		for range s.results[bookingID] {
			stats.TestsCompleted++
		}
	}

	reported := map[int64]struct{}{}
	for _, report := range s.reports {
		reported[report.BookingID] = struct{}{}
	}
	for bookingID := range s.results {
		if _, done := reported[bookingID]; !done {
			stats.PendingReports++
		}
	}

	var previousMonth, currentMonth float64
	now := time.Now().UTC()
	for _, payment := range s.payments {
		if payment.Status != constvars.PaymentStatusPaid {
			continue
		}
		stats.TotalRevenue += payment.Amount
		paidAt, err := time.Parse(timestampLayout, payment.PaidAt)
		if err != nil {
			continue
		}
		switch {
		case paidAt.Year() == now.Year() && paidAt.Month() == now.Month():
			currentMonth += payment.Amount
		case paidAt.Year() == now.AddDate(0, -1, 0).Year() && paidAt.Month() == now.AddDate(0, -1, 0).Month():
			previousMonth += payment.Amount
		}
	}
	if previousMonth > 0 {
		stats.MonthlyGrowth = (currentMonth - previousMonth) / previousMonth * 100
	}
	return stats
}

func (s *Store) MonthlyBookings(months int) []responses.MonthlyBooking {
	if months <= 0 {
		months = 6
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now().UTC()
	monthly := make([]responses.MonthlyBooking, 0, months)
	for offset := months - 1; offset >= 0; offset-- {
		month := now.AddDate(0, -offset, 0)
		entry := responses.MonthlyBooking{Month: month.Format("Jan")}

		for _, booking := range s.bookings {
			bookingDate, err := time.Parse(dateLayout, booking.BookingDate)
			if err != nil {
				continue
			}
			if bookingDate.Year() != month.Year() || bookingDate.Month() != month.Month() {
				continue
			}
			entry.Bookings++
			for _, payment := range s.payments {
				if payment.BookingID == booking.ID && payment.Status == constvars.PaymentStatusPaid {
					entry.Revenue += payment.Amount
				}
			}
		}
		monthly = append(monthly, entry)
	}
	return monthly
}

func (s *Store) TestDistribution() []responses.TestDistribution {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[int64]int64{}
	for _, records := range s.bookingTests {
		for _, bookingTest := range records {
			counts[bookingTest.TestID]++
		}
	}

	distribution := make([]responses.TestDistribution, 0, len(counts))
	for testID, count := range counts {
		test, ok := s.tests[testID]
		if !ok {
			continue
		}
		distribution = append(distribution, responses.TestDistribution{Name: test.TestName, Value: count})
	}
	sort.Slice(distribution, func(i, j int) bool {
		if distribution[i].Value != distribution[j].Value {
			return distribution[i].Value > distribution[j].Value
		}
		return distribution[i].Name < distribution[j].Name
	})
	return distribution
}

func (s *Store) RecentActivity(limit int) []responses.RecentActivity {
	if limit <= 0 {
		limit = 10
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	activity := make([]responses.RecentActivity, 0, len(s.bookings)+len(s.payments))
	for _, booking := range s.bookings {
		var patientName string
		if patient, ok := s.patients[booking.PatientID]; ok {
			patientName = patient.Name
		}
		activity = append(activity, responses.RecentActivity{
			ID:      booking.ID,
			Type:    "booking",
			Message: "Booking #" + strconv.FormatInt(booking.ID, 10) + " for " + patientName,
			Time:    booking.CreatedAt,
			Status:  booking.Status,
		})
	}
	for _, payment := range s.payments {
		activity = append(activity, responses.RecentActivity{
			ID:      payment.ID,
			Type:    "payment",
			Message: "Payment of " + strconv.FormatFloat(payment.Amount, 'f', 2, 64) + " for booking #" + strconv.FormatInt(payment.BookingID, 10),
			Time:    payment.PaidAt,
			Status:  payment.Status,
		})
	}

	sort.Slice(activity, func(i, j int) bool {
		if activity[i].Time != activity[j].Time {
			return activity[i].Time > activity[j].Time
		}
		return activity[i].ID > activity[j].ID
	})
	if len(activity) > limit {
		activity = activity[:limit]
	}
	return activity
}
