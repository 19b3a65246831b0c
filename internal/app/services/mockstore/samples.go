package mockstore

import (
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
	"pathlab-client/internal/pkg/exceptions"
	"sort"
	"time"
)

func (s *Store) toSampleResponse(record *SampleRecord) responses.Sample {
	var testName string
	if test, ok := s.tests[record.TestID]; ok {
		testName = test.TestName
	}
	return responses.Sample{
		ID:          record.ID,
		BookingID:   record.BookingID,
		TestID:      record.TestID,
		TestName:    testName,
		CollectedAt: record.CollectedAt,
		CollectedBy: record.CollectedBy,
		Status:      record.Status,
		Notes:       record.Notes,
	}
}

func (s *Store) ListSamples() []responses.Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	samples := make([]responses.Sample, 0, len(s.samples))
	for _, record := range s.samples {
		samples = append(samples, s.toSampleResponse(record))
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].ID < samples[j].ID })
	return samples
}

func (s *Store) FindSampleByID(sampleID int64) (*responses.Sample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.samples[sampleID]
	if !ok {
		return nil, exceptions.ErrResourceNotFound("sample")
	}
	sample := s.toSampleResponse(record)
	return &sample, nil
}

func (s *Store) CreateSample(request *requests.CreateSampleRequest) (*responses.Sample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[request.BookingID]; !ok {
		return nil, exceptions.ErrResourceNotFound("booking")
	}
	if _, ok := s.tests[request.TestID]; !ok {
		return nil, exceptions.ErrResourceNotFound("test")
	}

	record := &SampleRecord{
		ID:          s.allocateID(),
		BookingID:   request.BookingID,
		TestID:      request.TestID,
		CollectedBy: request.CollectedBy,
		Status:      constvars.SampleStatusCollectionPending,
		Notes:       request.Notes,
	}
	s.samples[record.ID] = record

	sample := s.toSampleResponse(record)
	return &sample, nil
}

func (s *Store) UpdateSample(sampleID int64, request *requests.UpdateSampleRequest) (*responses.Sample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.samples[sampleID]
	if !ok {
		return nil, exceptions.ErrResourceNotFound("sample")
	}
	if request.Status != "" && request.Status != record.Status {
		record.Status = request.Status
		if request.Status == constvars.SampleStatusCollected {
			record.CollectedAt = time.Now().UTC().Format(timestampLayout)
		} else {
			record.CollectedAt = ""
		}
	}
	if request.CollectedBy != 0 {
		record.CollectedBy = request.CollectedBy
	}
	if request.Notes != "" {
		record.Notes = request.Notes
	}

	sample := s.toSampleResponse(record)
	return &sample, nil
}

func (s *Store) DeleteSample(sampleID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.samples[sampleID]; !ok {
		return exceptions.ErrResourceNotFound("sample")
	}
	delete(s.samples, sampleID)
	return nil
}
