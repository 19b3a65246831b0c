package mockstore

import (
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
	"pathlab-client/internal/pkg/exceptions"
	"sort"
	"strings"
)

// Portal queries are scoped by the authenticated account's email, the way
// the real backend scopes them by the token subject.

func (s *Store) PatientDashboard(email string) (*responses.PatientDashboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	patient, ok := s.findPatientByEmail(email)
	if !ok {
		return nil, exceptions.ErrResourceNotFound("patient")
	}

	dashboard := &responses.PatientDashboard{}
	for _, booking := range s.bookings {
		if booking.PatientID != patient.ID {
			continue
		}
		dashboard.TotalBookings++
		for _, bookingTest := range s.bookingTests[booking.ID] {
			if s.testHasResults(booking.ID, bookingTest.TestID) {
				dashboard.TotalTestsCompleted++
			} else {
				dashboard.PendingTests++
			}
		}
	}
	return dashboard, nil
}

func (s *Store) PatientBookings(email string) ([]responses.PatientBooking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	patient, ok := s.findPatientByEmail(email)
	if !ok {
		return nil, exceptions.ErrResourceNotFound("patient")
	}

	var portalBookings []responses.PatientBooking
	for _, booking := range s.bookings {
		if booking.PatientID != patient.ID {
			continue
		}

		var testNames []string
		sampleStatus := constvars.SampleStatusCollected
		testStatus := constvars.BookingStatusCompleted
		for _, bookingTest := range s.bookingTests[booking.ID] {
			if test, exists := s.tests[bookingTest.TestID]; exists {
				testNames = append(testNames, test.TestName)
			}
			if !s.testHasResults(booking.ID, bookingTest.TestID) {
				testStatus = constvars.BookingStatusPending
			}
			for _, sample := range s.samples {
				if sample.BookingID == booking.ID && sample.TestID == bookingTest.TestID &&
					sample.Status != constvars.SampleStatusCollected {
					sampleStatus = constvars.SampleStatusCollectionPending
				}
			}
		}
		if len(s.bookingTests[booking.ID]) == 0 {
			sampleStatus = constvars.SampleStatusCollectionPending
			testStatus = constvars.BookingStatusPending
		}

		portalBookings = append(portalBookings, responses.PatientBooking{
			BookingID:    booking.ID,
			TestName:     strings.Join(testNames, ", "),
			BookingDate:  booking.BookingDate,
			SampleStatus: sampleStatus,
			TestStatus:   testStatus,
		})
	}
	sort.Slice(portalBookings, func(i, j int) bool { return portalBookings[i].BookingID < portalBookings[j].BookingID })
	return portalBookings, nil
}

func (s *Store) PatientPayments(email string) ([]responses.PatientPayment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	patient, ok := s.findPatientByEmail(email)
	if !ok {
		return nil, exceptions.ErrResourceNotFound("patient")
	}

	var portalPayments []responses.PatientPayment
	for _, payment := range s.payments {
		booking, exists := s.bookings[payment.BookingID]
		if !exists || booking.PatientID != patient.ID {
			continue
		}
		portalPayments = append(portalPayments, responses.PatientPayment{
			PaymentID: payment.ID,
			BookingID: payment.BookingID,
			PaidAt:    payment.PaidAt,
			Amount:    payment.Amount,
			Status:    payment.Status,
		})
	}
	sort.Slice(portalPayments, func(i, j int) bool { return portalPayments[i].PaymentID < portalPayments[j].PaymentID })
	return portalPayments, nil
}

func (s *Store) PatientProfile(email string) (*responses.PatientProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	patient, ok := s.findPatientByEmail(email)
	if !ok {
		return nil, exceptions.ErrResourceNotFound("patient")
	}
	return &responses.PatientProfile{
		ID:            patient.ID,
		Name:          patient.Name,
		Email:         patient.Email,
		ContactNumber: patient.ContactNumber,
		Address:       patient.Address,
	}, nil
}

func (s *Store) UpdatePatientProfile(email string, request *requests.UpdateProfileRequest) (*responses.PatientProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patient, ok := s.findPatientByEmail(email)
	if !ok {
		return nil, exceptions.ErrResourceNotFound("patient")
	}
	if request.Name != "" {
		patient.Name = request.Name
		if account, exists := s.accounts[email]; exists {
			account.Name = request.Name
		}
	}
	if request.ContactNumber != "" {
		patient.ContactNumber = request.ContactNumber
	}
	if request.Address != "" {
		patient.Address = request.Address
	}
	return &responses.PatientProfile{
		ID:            patient.ID,
		Name:          patient.Name,
		Email:         patient.Email,
		ContactNumber: patient.ContactNumber,
		Address:       patient.Address,
	}, nil
}

// UpdateOwnBookingTests lets a patient reshape a pending booking of theirs.
func (s *Store) UpdateOwnBookingTests(email string, bookingID int64, request *requests.UpdateBookingTestsRequest) (*responses.PatientBooking, error) {
	s.mu.Lock()

	patient, ok := s.findPatientByEmail(email)
	if !ok {
		s.mu.Unlock()
		return nil, exceptions.ErrResourceNotFound("patient")
	}
	booking, ok := s.bookings[bookingID]
	if !ok || booking.PatientID != patient.ID {
		s.mu.Unlock()
		return nil, exceptions.ErrResourceNotFound("booking")
	}
	for _, testID := range request.TestIDs {
		if _, exists := s.tests[testID]; !exists {
			s.mu.Unlock()
			return nil, exceptions.ErrResourceNotFound("test")
		}
	}
	s.replaceBookingTests(bookingID, request.TestIDs)
	s.mu.Unlock()

	portalBookings, err := s.PatientBookings(email)
	if err != nil {
		return nil, err
	}
	for i := range portalBookings {
		if portalBookings[i].BookingID == bookingID {
			return &portalBookings[i], nil
		}
	}
	return nil, exceptions.ErrResourceNotFound("booking")
}

// testHasResults reports whether results were entered for the booking test.
// Callers hold at least a read lock.
func (s *Store) testHasResults(bookingID, testID int64) bool {
	byTest, exists := s.results[bookingID]
	if !exists {
		return false
	}
	_, found := byTest[testID]
	return found
}
