package mockstore

import (
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
	"pathlab-client/internal/pkg/exceptions"
	"sort"
)

func (s *Store) toTestResponse(record *TestRecord) responses.Test {
	parameters := make([]responses.TestParameter, 0, len(s.testParameters[record.ID]))
	for _, parameter := range s.testParameters[record.ID] {
		parameters = append(parameters, responses.TestParameter{
			ID:             parameter.ID,
			Name:           parameter.Name,
			Unit:           parameter.Unit,
			RefRangeMale:   parameter.RefRangeMale,
			RefRangeFemale: parameter.RefRangeFemale,
			RefRangeChild:  parameter.RefRangeChild,
		})
	}
	return responses.Test{
		ID:          record.ID,
		TestName:    record.TestName,
		Description: record.Description,
		SampleType:  record.SampleType,
		Price:       record.Price,
		Parameters:  parameters,
	}
}

func (s *Store) ListTests() []responses.Test {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tests := make([]responses.Test, 0, len(s.tests))
	for _, record := range s.tests {
		tests = append(tests, s.toTestResponse(record))
	}
	sort.Slice(tests, func(i, j int) bool { return tests[i].ID < tests[j].ID })
	return tests
}

func (s *Store) FindTestByID(testID int64) (*responses.Test, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.tests[testID]
	if !ok {
		return nil, exceptions.ErrResourceNotFound("test")
	}
	test := s.toTestResponse(record)
	return &test, nil
}

func (s *Store) CreateTest(request *requests.CreateTestRequest) (*responses.Test, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &TestRecord{
		ID:          s.allocateID(),
		TestName:    request.TestName,
		Description: request.Description,
		SampleType:  request.SampleType,
		Price:       request.Price,
	}
	s.tests[record.ID] = record
	s.replaceTestParameters(record.ID, request.Parameters)

	test := s.toTestResponse(record)
	return &test, nil
}

func (s *Store) UpdateTest(testID int64, request *requests.UpdateTestRequest) (*responses.Test, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.tests[testID]
	if !ok {
		return nil, exceptions.ErrResourceNotFound("test")
	}
	record.TestName = request.TestName
	record.Description = request.Description
	record.SampleType = request.SampleType
	record.Price = request.Price
	if request.Parameters != nil {
		s.replaceTestParameters(testID, request.Parameters)
	}

	test := s.toTestResponse(record)
	return &test, nil
}

func (s *Store) DeleteTest(testID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tests[testID]; !ok {
		return exceptions.ErrResourceNotFound("test")
	}
	delete(s.tests, testID)
	delete(s.testParameters, testID)
	return nil
}

func (s *Store) ListTestParameters(testID int64) ([]responses.TestParameter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.tests[testID]; !ok {
		return nil, exceptions.ErrResourceNotFound("test")
	}
	parameters := make([]responses.TestParameter, 0, len(s.testParameters[testID]))
	for _, parameter := range s.testParameters[testID] {
		parameters = append(parameters, responses.TestParameter{
			ID:             parameter.ID,
			Name:           parameter.Name,
			Unit:           parameter.Unit,
			RefRangeMale:   parameter.RefRangeMale,
			RefRangeFemale: parameter.RefRangeFemale,
			RefRangeChild:  parameter.RefRangeChild,
		})
	}
	return parameters, nil
}

// replaceTestParameters swaps the full parameter set. Callers hold the lock.
func (s *Store) replaceTestParameters(testID int64, payloads []requests.TestParameterPayload) {
	parameters := make([]*TestParameterRecord, 0, len(payloads))
	for _, payload := range payloads {
		parameters = append(parameters, &TestParameterRecord{
			ID:             s.allocateID(),
			TestID:         testID,
			Name:           payload.Name,
			Unit:           payload.Unit,
			RefRangeMale:   payload.RefRangeMale,
			RefRangeFemale: payload.RefRangeFemale,
			RefRangeChild:  payload.RefRangeChild,
		})
	}
	s.testParameters[testID] = parameters
}
