package session

import (
	"context"
	"pathlab-client/internal/app/contracts"
	"pathlab-client/internal/app/models"
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/exceptions"
	"pathlab-client/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionService struct {
	AuthClient contracts.AuthClient
	Storage    contracts.SessionStorage
	Log        *zap.Logger

	mu      sync.RWMutex
	session models.Session
	ready   bool
}

func NewSessionService(authClient contracts.AuthClient, storage contracts.SessionStorage, logger *zap.Logger) contracts.SessionService {
	return &sessionService{
		AuthClient: authClient,
		Storage:    storage,
		Log:        logger,
	}
}

// Initialize restores a persisted session. A corrupt or incomplete profile
// entry is deleted and ignored while the token, if any, is kept, mirroring
// how the browser client treated a half-broken sessionStorage.
func (s *sessionService) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.Storage.Get(constvars.StorageKeyAuthToken)
	if err != nil {
		s.Log.Warn("session cannot read persisted token", zap.Error(err))
		token = ""
	}

	var user *models.UserProfile
	rawUser, err := s.Storage.Get(constvars.StorageKeyAuthUser)
	if err != nil {
		s.Log.Warn("session cannot read persisted profile", zap.Error(err))
	} else if rawUser != "" {
		parsed := new(models.UserProfile)
		if err := json.Unmarshal([]byte(rawUser), parsed); err != nil {
			s.Log.Warn("session discarding corrupt persisted profile", zap.Error(err))
			s.dropProfileEntry()
		} else if parsed.Email == "" || !isKnownUserType(parsed.UserType) {
			s.Log.Warn("session discarding incomplete persisted profile",
				zap.String(constvars.LoggingUserTypeKey, parsed.UserType))
			s.dropProfileEntry()
		} else {
			user = parsed
		}
	}

	s.session = models.Session{Token: token, User: user}
	s.ready = true
}

// dropProfileEntry removes the persisted profile record. Callers hold the
// lock.
func (s *sessionService) dropProfileEntry() {
	if err := s.Storage.Delete(constvars.StorageKeyAuthUser); err != nil {
		s.Log.Warn("session cannot delete persisted profile entry", zap.Error(err))
	}
}

func isKnownUserType(userType string) bool {
	return userType == constvars.UserTypePatient || userType == constvars.UserTypeStaff
}

func (s *sessionService) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Login authenticates against the backend and, only once the response and
// its token check out, replaces the in-memory session. The role comes from
// the token's userType claim, never from the caller's hint.
func (s *sessionService) Login(ctx context.Context, email, password, userTypeHint string) (*models.LoginResult, error) {
	request := &requests.LoginRequest{
		Email:    email,
		Password: password,
		UserType: userTypeHint,
	}
	response, err := s.AuthClient.Login(ctx, request)
	if err != nil {
		return nil, err
	}
	if response.AccessToken == "" {
		return nil, exceptions.ErrInvalidLoginResponse()
	}
	userType, err := utils.ExtractUnverifiedClaim(response.AccessToken, constvars.JWTClaimUserType)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = models.Session{
		Token: response.AccessToken,
		User:  &models.UserProfile{Email: email, UserType: userType},
	}
	s.persistSession()
	return &models.LoginResult{Token: response.AccessToken, UserType: userType}, nil
}

// Logout tells the backend best-effort and always clears local state. A
// dead backend must never trap a user in a logged-in session.
func (s *sessionService) Logout(ctx context.Context) {
	if _, err := s.AuthClient.Logout(ctx); err != nil {
		s.Log.Warn("session logout request failed, clearing locally", zap.Error(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = models.Session{}
	if err := s.Storage.Delete(constvars.StorageKeyAuthToken); err != nil {
		s.Log.Warn("session cannot delete persisted token", zap.Error(err))
	}
	if err := s.Storage.Delete(constvars.StorageKeyAuthUser); err != nil {
		s.Log.Warn("session cannot delete persisted profile", zap.Error(err))
	}
}

func (s *sessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.IsAuthenticated()
}

func (s *sessionService) CurrentUser() *models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session.User == nil {
		return nil
	}
	user := *s.session.User
	return &user
}

func (s *sessionService) CurrentToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

// persistSession writes through to storage; failures degrade the session
// to memory-only rather than failing the login. Callers hold the lock.
func (s *sessionService) persistSession() {
	if err := s.Storage.Set(constvars.StorageKeyAuthToken, s.session.Token); err != nil {
		s.Log.Warn("session cannot persist token, continuing in memory", zap.Error(err))
	}
	rawUser, err := json.Marshal(s.session.User)
	if err != nil {
		s.Log.Warn("session cannot encode profile", zap.Error(err))
		return
	}
	if err := s.Storage.Set(constvars.StorageKeyAuthUser, string(rawUser)); err != nil {
		s.Log.Warn("session cannot persist profile, continuing in memory", zap.Error(err))
	}
}
