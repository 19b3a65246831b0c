package mockstore

import (
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
	"pathlab-client/internal/pkg/exceptions"
	"sort"
	"time"
)

func (s *Store) toBookingResponse(record *BookingRecord) responses.Booking {
	var patientName string
	if patient, ok := s.patients[record.PatientID]; ok {
		patientName = patient.Name
	}
	return responses.Booking{
		ID:          record.ID,
		PatientID:   record.PatientID,
		PatientName: patientName,
		CreatedBy:   record.CreatedBy,
		BookingDate: record.BookingDate,
		Status:      record.Status,
		CreatedAt:   record.CreatedAt,
	}
}

func (s *Store) ListBookings() []responses.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]responses.Booking, 0, len(s.bookings))
	for _, record := range s.bookings {
		bookings = append(bookings, s.toBookingResponse(record))
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings
}

func (s *Store) FindBookingByID(bookingID int64) (*responses.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.bookings[bookingID]
	if !ok {
		return nil, exceptions.ErrResourceNotFound("booking")
	}
	booking := s.toBookingResponse(record)
	return &booking, nil
}

// CreateBooking also opens a collection-pending sample per ordered test,
// the same side effect the real backend has.
func (s *Store) CreateBooking(request *requests.CreateBookingRequest) (*responses.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.patients[request.PatientID]; !ok {
		return nil, exceptions.ErrResourceNotFound("patient")
	}
	for _, testID := range request.TestIDs {
		if _, ok := s.tests[testID]; !ok {
			return nil, exceptions.ErrResourceNotFound("test")
		}
	}

	record := &BookingRecord{
		ID:          s.allocateID(),
		PatientID:   request.PatientID,
		CreatedBy:   request.CreatedBy,
		BookingDate: request.BookingDate,
		Status:      constvars.BookingStatusPending,
		CreatedAt:   time.Now().UTC().Format(timestampLayout),
	}
	s.bookings[record.ID] = record
	s.replaceBookingTests(record.ID, request.TestIDs)

	booking := s.toBookingResponse(record)
	return &booking, nil
}

func (s *Store) UpdateBooking(bookingID int64, request *requests.UpdateBookingRequest) (*responses.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.bookings[bookingID]
	if !ok {
		return nil, exceptions.ErrResourceNotFound("booking")
	}
	if request.BookingDate != "" {
		record.BookingDate = request.BookingDate
	}
	if request.Status != "" {
		record.Status = request.Status
	}
	if request.TestIDs != nil {
		for _, testID := range request.TestIDs {
			if _, exists := s.tests[testID]; !exists {
				return nil, exceptions.ErrResourceNotFound("test")
			}
		}
		s.replaceBookingTests(bookingID, request.TestIDs)
	}

	booking := s.toBookingResponse(record)
	return &booking, nil
}

func (s *Store) DeleteBooking(bookingID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[bookingID]; !ok {
		return exceptions.ErrResourceNotFound("booking")
	}
	delete(s.bookings, bookingID)
	delete(s.bookingTests, bookingID)
	delete(s.results, bookingID)
	for sampleID, sample := range s.samples {
		if sample.BookingID == bookingID {
			delete(s.samples, sampleID)
		}
	}
	return nil
}

func (s *Store) ListBookingTests(bookingID int64) ([]responses.BookingTest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.bookings[bookingID]; !ok {
		return nil, exceptions.ErrResourceNotFound("booking")
	}
	bookingTests := make([]responses.BookingTest, 0, len(s.bookingTests[bookingID]))
	for _, record := range s.bookingTests[bookingID] {
		var testName, interpretation string
		if test, exists := s.tests[record.TestID]; exists {
			testName = test.TestName
		}
		if byTest, exists := s.results[bookingID]; exists {
			if result, found := byTest[record.TestID]; found {
				interpretation = result.Interpretation
			}
		}
		bookingTests = append(bookingTests, responses.BookingTest{
			ID:             record.ID,
			BookingID:      record.BookingID,
			TestID:         record.TestID,
			TestName:       testName,
			Interpretation: interpretation,
		})
	}
	return bookingTests, nil
}

// replaceBookingTests swaps the ordered test set and reconciles samples:
// new tests get a pending sample, removed tests lose theirs. Callers hold
// the lock.
func (s *Store) replaceBookingTests(bookingID int64, testIDs []int64) {
	kept := map[int64]struct{}{}
	for _, testID := range testIDs {
		kept[testID] = struct{}{}
	}

	existing := map[int64]struct{}{}
	for _, record := range s.bookingTests[bookingID] {
		existing[record.TestID] = struct{}{}
	}

	records := make([]*BookingTestRecord, 0, len(testIDs))
	for _, testID := range testIDs {
		records = append(records, &BookingTestRecord{
			ID:        s.allocateID(),
			BookingID: bookingID,
			TestID:    testID,
		})
		if _, had := existing[testID]; !had {
			sample := &SampleRecord{
				ID:        s.allocateID(),
				BookingID: bookingID,
				TestID:    testID,
				Status:    constvars.SampleStatusCollectionPending,
			}
			s.samples[sample.ID] = sample
		}
	}
	s.bookingTests[bookingID] = records

	for sampleID, sample := range s.samples {
		if sample.BookingID != bookingID {
			continue
		}
		if _, keep := kept[sample.TestID]; !keep {
			delete(s.samples, sampleID)
		}
	}
}
