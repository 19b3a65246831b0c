package mockstore

import (
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
	"pathlab-client/internal/pkg/exceptions"
	"pathlab-client/internal/pkg/utils"
	"sort"
	"time"
)

// toPatientSummary derives the booking aggregates on the fly. Callers hold
// at least a read lock.
func (s *Store) toPatientSummary(record *PatientRecord) responses.PatientSummary {
	var totalBookings int64
	var lastVisit string
	for _, booking := range s.bookings {
		if booking.PatientID != record.ID {
			continue
		}
		totalBookings++
		if booking.BookingDate > lastVisit {
			lastVisit = booking.BookingDate
		}
	}
	return responses.PatientSummary{
		ID:            record.ID,
		Name:          record.Name,
		Gender:        record.Gender,
		DateOfBirth:   record.DateOfBirth,
		ContactNumber: record.ContactNumber,
		Email:         record.Email,
		Address:       record.Address,
		IsActive:      record.IsActive,
		CreatedAt:     record.CreatedAt,
		TotalBookings: totalBookings,
		LastVisit:     lastVisit,
	}
}

func (s *Store) ListPatients() []responses.PatientSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	patients := make([]responses.PatientSummary, 0, len(s.patients))
	for _, record := range s.patients {
		patients = append(patients, s.toPatientSummary(record))
	}
	sort.Slice(patients, func(i, j int) bool { return patients[i].ID < patients[j].ID })
	return patients
}

func (s *Store) FindPatientByID(patientID int64) (*responses.PatientSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.patients[patientID]
	if !ok {
		return nil, exceptions.ErrResourceNotFound("patient")
	}
	summary := s.toPatientSummary(record)
	return &summary, nil
}

func (s *Store) CreatePatient(request *requests.CreatePatientRequest) (*responses.PatientSummary, error) {
	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[request.Email]; exists {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	account := &Account{
		ID:           s.allocateID(),
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: passwordHash,
		UserType:     constvars.UserTypePatient,
		Verified:     true,
	}
	s.accounts[account.Email] = account

	record := &PatientRecord{
		ID:            s.allocateID(),
		AccountID:     account.ID,
		Name:          request.Name,
		Gender:        request.Gender,
		DateOfBirth:   request.DateOfBirth,
		ContactNumber: request.ContactNumber,
		Email:         request.Email,
		Address:       request.Address,
		IsActive:      true,
		CreatedAt:     time.Now().UTC().Format(timestampLayout),
	}
	s.patients[record.ID] = record

	summary := s.toPatientSummary(record)
	return &summary, nil
}

func (s *Store) UpdatePatient(patientID int64, request *requests.UpdatePatientRequest) (*responses.PatientSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.patients[patientID]
	if !ok {
		return nil, exceptions.ErrResourceNotFound("patient")
	}

	record.Name = request.Name
	record.Gender = request.Gender
	record.DateOfBirth = request.DateOfBirth
	record.ContactNumber = request.ContactNumber
	record.Address = request.Address
	if record.Email != request.Email {
		if _, exists := s.accounts[request.Email]; exists {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		if account, exists := s.accounts[record.Email]; exists {
			delete(s.accounts, record.Email)
			account.Email = request.Email
			s.accounts[request.Email] = account
		}
		record.Email = request.Email
	}
	if request.Password != "" {
		passwordHash, err := utils.HashPassword(request.Password)
		if err != nil {
			return nil, exceptions.ErrTokenGenerate(err)
		}
		if account, exists := s.accounts[record.Email]; exists {
			account.PasswordHash = passwordHash
		}
	}

	summary := s.toPatientSummary(record)
	return &summary, nil
}

func (s *Store) DeletePatient(patientID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.patients[patientID]
	if !ok {
		return exceptions.ErrResourceNotFound("patient")
	}
	delete(s.accounts, record.Email)
	delete(s.patients, patientID)
	return nil
}

func (s *Store) findPatientByEmail(email string) (*PatientRecord, bool) {
	for _, record := range s.patients {
		if record.Email == email {
			return record, true
		}
	}
	return nil, false
}
