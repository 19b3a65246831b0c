package mockstore

import (
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/exceptions"
	"pathlab-client/internal/pkg/utils"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = time.RFC3339
)

type Account struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	UserType     string
	Role         string
	Verified     bool
}

type PatientRecord struct {
	ID            int64
	AccountID     int64
	Name          string
	Gender        string
	DateOfBirth   string
	ContactNumber string
	Email         string
	Address       string
	IsActive      bool
	CreatedAt     string
}

type TestParameterRecord struct {
	ID             int64
	TestID         int64
	Name           string
	Unit           string
	RefRangeMale   string
	RefRangeFemale string
	RefRangeChild  string
}

type TestRecord struct {
	ID          int64
	TestName    string
	Description string
	SampleType  string
	Price       float64
}

type BookingRecord struct {
	ID          int64
	PatientID   int64
	CreatedBy   int64
	BookingDate string
	Status      string
	CreatedAt   string
}

type BookingTestRecord struct {
	ID        int64
	BookingID int64
	TestID    int64
}

type SampleRecord struct {
	ID          int64
	BookingID   int64
	TestID      int64
	CollectedAt string
	CollectedBy int64
	Status      string
	Notes       string
}

type ResultEntryRecord struct {
	ParameterID int64
	Value       string
}

type ResultRecord struct {
	BookingID      int64
	TestID         int64
	EnteredBy      int64
	Interpretation string
	CreatedAt      string
	Entries        []ResultEntryRecord
}

type PaymentRecord struct {
	ID        int64
	BookingID int64
	Amount    float64
	Status    string
	PaidAt    string
}

type ReportRecord struct {
	ID          int64
	BookingID   int64
	GeneratedBy int64
	ReportFile  string
	GeneratedAt string
}

// Store is the whole backend state behind the mock API. Everything lives in
// memory under one lock; the seed makes runs reproducible.
type Store struct {
	mu sync.RWMutex

	accounts       map[string]*Account
	patients       map[int64]*PatientRecord
	tests          map[int64]*TestRecord
	testParameters map[int64][]*TestParameterRecord
	bookings       map[int64]*BookingRecord
	bookingTests   map[int64][]*BookingTestRecord
	samples        map[int64]*SampleRecord
	results        map[int64]map[int64]*ResultRecord
	payments       map[int64]*PaymentRecord
	reports        map[int64]*ReportRecord

	verificationTokens map[string]string
	resetTokens        map[string]string
	revokedTokenIDs    map[string]struct{}

	nextID int64
}

func NewStore() *Store {
	store := &Store{
		accounts:           map[string]*Account{},
		patients:           map[int64]*PatientRecord{},
		tests:              map[int64]*TestRecord{},
		testParameters:     map[int64][]*TestParameterRecord{},
		bookings:           map[int64]*BookingRecord{},
		bookingTests:       map[int64][]*BookingTestRecord{},
		samples:            map[int64]*SampleRecord{},
		results:            map[int64]map[int64]*ResultRecord{},
		payments:           map[int64]*PaymentRecord{},
		reports:            map[int64]*ReportRecord{},
		verificationTokens: map[string]string{},
		resetTokens:        map[string]string{},
		revokedTokenIDs:    map[string]struct{}{},
	}
	store.seed()
	return store
}

// allocateID hands out process-wide unique IDs. Callers hold the lock.
func (s *Store) allocateID() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) Authenticate(email, password, userTypeHint string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[email]
	if !ok {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if userTypeHint != "" && account.UserType != userTypeHint {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !utils.CheckPasswordHash(password, account.PasswordHash) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	copied := *account
	return &copied, nil
}

func (s *Store) FindAccountByEmail(email string) (*Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[email]
	if !ok {
		return nil, false
	}
	copied := *account
	return &copied, true
}

// RegisterPatient creates the account plus its patient record and returns
// the email verification token the backend would have mailed out.
func (s *Store) RegisterPatient(request *requests.RegisterPatientRequest) (string, error) {
	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[request.Email]; exists {
		return "", exceptions.ErrEmailAlreadyExist(nil)
	}

	account := &Account{
		ID:           s.allocateID(),
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: passwordHash,
		UserType:     constvars.UserTypePatient,
	}
	s.accounts[account.Email] = account

	patient := &PatientRecord{
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
	s.patients[patient.ID] = patient

	token := uuid.NewString()
	s.verificationTokens[token] = account.Email
	return token, nil
}

func (s *Store) RegisterUser(request *requests.RegisterUserRequest) (string, error) {
	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[request.Email]; exists {
		return "", exceptions.ErrEmailAlreadyExist(nil)
	}

	account := &Account{
		ID:           s.allocateID(),
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: passwordHash,
		UserType:     constvars.UserTypeStaff,
		Role:         request.Role,
	}
	s.accounts[account.Email] = account

	token := uuid.NewString()
	s.verificationTokens[token] = account.Email
	return token, nil
}

func (s *Store) VerifyEmail(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email, ok := s.verificationTokens[token]
	if !ok {
		return exceptions.ErrResourceNotFound("verification token")
	}
	delete(s.verificationTokens, token)
	if account, exists := s.accounts[email]; exists {
		account.Verified = true
	}
	return nil
}

// CreateResetToken returns "" for an unknown email so callers can answer
// with the same message either way and not leak account existence.
func (s *Store) CreateResetToken(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[email]; !exists {
		return ""
	}
	token := uuid.NewString()
	s.resetTokens[token] = email
	return token
}

func (s *Store) ResetPassword(token, newPassword string) error {
	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return exceptions.ErrTokenGenerate(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email, ok := s.resetTokens[token]
	if !ok {
		return exceptions.ErrResourceNotFound("reset token")
	}
	account, exists := s.accounts[email]
	if !exists {
		return exceptions.ErrResourceNotFound("account")
	}
	delete(s.resetTokens, token)
	account.PasswordHash = passwordHash
	return nil
}

func (s *Store) RevokeToken(tokenID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revokedTokenIDs[tokenID] = struct{}{}
}

func (s *Store) IsTokenRevoked(tokenID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, revoked := s.revokedTokenIDs[tokenID]
	return revoked
}
