package mockstore

import (
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
	"pathlab-client/internal/pkg/exceptions"
	"pathlab-client/internal/pkg/utils"
	"strconv"
	"time"
)

func (s *Store) SaveResults(bookingID, testID int64, request *requests.SaveTestResultsRequest) (*responses.SaveTestResults, error) {
	return s.storeResults(bookingID, testID, request, false)
}

func (s *Store) UpdateResults(bookingID, testID int64, request *requests.SaveTestResultsRequest) (*responses.SaveTestResults, error) {
	return s.storeResults(bookingID, testID, request, true)
}

func (s *Store) storeResults(bookingID, testID int64, request *requests.SaveTestResultsRequest, mustExist bool) (*responses.SaveTestResults, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[bookingID]; !ok {
		return nil, exceptions.ErrResourceNotFound("booking")
	}
	if !s.bookingHasTest(bookingID, testID) {
		return nil, exceptions.ErrResourceNotFound("booking test")
	}
	if mustExist {
		byTest, exists := s.results[bookingID]
		if !exists {
			return nil, exceptions.ErrResourceNotFound("results")
		}
		if _, found := byTest[testID]; !found {
			return nil, exceptions.ErrResourceNotFound("results")
		}
	}

	entries := make([]ResultEntryRecord, 0, len(request.Results))
	for _, entry := range request.Results {
		entries = append(entries, ResultEntryRecord{ParameterID: entry.ParameterID, Value: entry.Value})
	}
	record := &ResultRecord{
		BookingID:      bookingID,
		TestID:         testID,
		EnteredBy:      request.EnteredBy,
		Interpretation: request.Interpretation,
		CreatedAt:      time.Now().UTC().Format(timestampLayout),
		Entries:        entries,
	}
	if s.results[bookingID] == nil {
		s.results[bookingID] = map[int64]*ResultRecord{}
	}
	s.results[bookingID][testID] = record

	saved := make([]responses.SavedResultEntry, 0, len(entries))
	for _, entry := range entries {
		saved = append(saved, responses.SavedResultEntry{ParameterID: entry.ParameterID, Value: entry.Value})
	}
	return &responses.SaveTestResults{
		BookingID:    bookingID,
		TestID:       testID,
		EnteredBy:    record.EnteredBy,
		CreatedAt:    record.CreatedAt,
		SavedResults: saved,
	}, nil
}

func (s *Store) FindResultsByBookingID(bookingID int64) (*responses.BookingResults, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[bookingID]
	if !ok {
		return nil, exceptions.ErrResourceNotFound("booking")
	}
	patient, ok := s.patients[booking.PatientID]
	if !ok {
		return nil, exceptions.ErrResourceNotFound("patient")
	}

	groups := make([]responses.TestResultGroup, 0, len(s.bookingTests[bookingID]))
	for _, bookingTest := range s.bookingTests[bookingID] {
		test, exists := s.tests[bookingTest.TestID]
		if !exists {
			continue
		}

		var record *ResultRecord
		if byTest, found := s.results[bookingID]; found {
			record = byTest[bookingTest.TestID]
		}
		valuesByParameter := map[int64]string{}
		var interpretation string
		if record != nil {
			interpretation = record.Interpretation
			for _, entry := range record.Entries {
				valuesByParameter[entry.ParameterID] = entry.Value
			}
		}

		var sampleID int64
		for _, sample := range s.samples {
			if sample.BookingID == bookingID && sample.TestID == bookingTest.TestID {
				sampleID = sample.ID
				break
			}
		}

		parameters := make([]responses.ParameterResult, 0, len(s.testParameters[test.ID]))
		for _, parameter := range s.testParameters[test.ID] {
			parameters = append(parameters, responses.ParameterResult{
				ParameterID:    parameter.ID,
				Name:           parameter.Name,
				Unit:           parameter.Unit,
				RefRangeMale:   parameter.RefRangeMale,
				RefRangeFemale: parameter.RefRangeFemale,
				RefRangeChild:  parameter.RefRangeChild,
				Value:          valuesByParameter[parameter.ID],
			})
		}

		groups = append(groups, responses.TestResultGroup{
			TestID:          test.ID,
			SampleID:        sampleID,
			TestName:        test.TestName,
			TestDescription: test.Description,
			Interpretation:  interpretation,
			Parameters:      parameters,
		})
	}

	return &responses.BookingResults{
		BookingID: bookingID,
		Patient: responses.ResultPatientInfo{
			ID:     patient.ID,
			Name:   patient.Name,
			Age:    utils.CalculateAge(patient.DateOfBirth),
			Gender: patient.Gender,
		},
		Tests: groups,
	}, nil
}

func (s *Store) DeleteResults(bookingID, testID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byTest, exists := s.results[bookingID]
	if !exists {
		return exceptions.ErrResourceNotFound("results")
	}
	if _, found := byTest[testID]; !found {
		return exceptions.ErrResourceNotFound("results")
	}
	delete(byTest, testID)
	if len(byTest) == 0 {
		delete(s.results, bookingID)
	}
	return nil
}

func (s *Store) ResultsPDF(bookingID int64) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.bookings[bookingID]; !ok {
		return nil, exceptions.ErrResourceNotFound("booking")
	}
	return []byte(constvars.MockReportPDFHeader + strconv.FormatInt(bookingID, 10)), nil
}

// bookingHasTest reports whether the test is part of the booking's order.
// Callers hold the lock.
func (s *Store) bookingHasTest(bookingID, testID int64) bool {
	for _, bookingTest := range s.bookingTests[bookingID] {
		if bookingTest.TestID == testID {
			return true
		}
	}
	return false
}
