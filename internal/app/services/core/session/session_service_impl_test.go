package session

import (
	"context"
	"errors"
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
	"pathlab-client/internal/pkg/exceptions"
	"pathlab-client/internal/pkg/utils"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthClient struct {
	loginResponse *responses.JwtResponse
	loginErr      error
	lastLogin     *requests.LoginRequest
	logoutErr     error
	logoutCalled  bool
}

func (s *stubAuthClient) Login(ctx context.Context, request *requests.LoginRequest) (*responses.JwtResponse, error) {
	s.lastLogin = request
	return s.loginResponse, s.loginErr
}

func (s *stubAuthClient) Logout(ctx context.Context) (string, error) {
	s.logoutCalled = true
	return "", s.logoutErr
}

func (s *stubAuthClient) RegisterPatient(ctx context.Context, request *requests.RegisterPatientRequest) (*responses.MessageResponse, error) {
	return nil, nil
}

func (s *stubAuthClient) RegisterUser(ctx context.Context, request *requests.RegisterUserRequest) (*responses.MessageResponse, error) {
	return nil, nil
}

func (s *stubAuthClient) VerifyEmail(ctx context.Context, token string) (*responses.MessageResponse, error) {
	return nil, nil
}

func (s *stubAuthClient) ForgotPassword(ctx context.Context, request *requests.ForgotPasswordRequest) (*responses.MessageResponse, error) {
	return nil, nil
}

func (s *stubAuthClient) ResetPassword(ctx context.Context, request *requests.ResetPasswordRequest) (*responses.MessageResponse, error) {
	return nil, nil
}

type stubStorage struct {
	entries map[string]string
	setErr  error
}

func newStubStorage() *stubStorage {
	return &stubStorage{entries: map[string]string{}}
}

func (s *stubStorage) Get(key string) (string, error) {
	return s.entries[key], nil
}

func (s *stubStorage) Set(key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.entries[key] = value
	return nil
}

func (s *stubStorage) Delete(key string) error {
	delete(s.entries, key)
	return nil
}

func signedToken(t *testing.T, userType string) string {
	t.Helper()
	token, err := utils.GenerateAccessToken("jane.doe@example.com", userType, "jti-1", "test-secret", time.Minute)
	require.NoError(t, err)
	return token
}

func tokenWithoutUserType(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "jane.doe@example.com",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestSessionLogin(t *testing.T) {
	t.Run("takes the role from the token claim, not the hint", func(t *testing.T) {
		authClient := &stubAuthClient{
			loginResponse: &responses.JwtResponse{AccessToken: signedToken(t, constvars.UserTypePatient)},
		}
		storage := newStubStorage()
		service := NewSessionService(authClient, storage, zap.NewNop())

		result, err := service.Login(context.Background(), "jane.doe@example.com", "pw", constvars.UserTypeStaff)
		require.NoError(t, err)
		assert.Equal(t, constvars.UserTypePatient, result.UserType)
		assert.Equal(t, constvars.UserTypeStaff, authClient.lastLogin.UserType)

		user := service.CurrentUser()
		require.NotNil(t, user)
		assert.Equal(t, constvars.UserTypePatient, user.UserType)
		assert.True(t, service.IsAuthenticated())
	})

	t.Run("rejects a login response without a token and keeps state untouched", func(t *testing.T) {
		authClient := &stubAuthClient{loginResponse: &responses.JwtResponse{}}
		service := NewSessionService(authClient, newStubStorage(), zap.NewNop())

		_, err := service.Login(context.Background(), "jane.doe@example.com", "pw", "")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		assert.False(t, service.IsAuthenticated())
	})

	t.Run("fails closed on a token without a userType claim", func(t *testing.T) {
		authClient := &stubAuthClient{
			loginResponse: &responses.JwtResponse{AccessToken: tokenWithoutUserType(t)},
		}
		service := NewSessionService(authClient, newStubStorage(), zap.NewNop())

		_, err := service.Login(context.Background(), "jane.doe@example.com", "pw", "")
		require.Error(t, err)
		assert.False(t, service.IsAuthenticated())
	})

	t.Run("persists token and profile on success", func(t *testing.T) {
		authClient := &stubAuthClient{
			loginResponse: &responses.JwtResponse{AccessToken: signedToken(t, constvars.UserTypeStaff)},
		}
		storage := newStubStorage()
		service := NewSessionService(authClient, storage, zap.NewNop())

		_, err := service.Login(context.Background(), "admin@pathlab.local", "pw", "")
		require.NoError(t, err)
		assert.NotEmpty(t, storage.entries[constvars.StorageKeyAuthToken])
		assert.Contains(t, storage.entries[constvars.StorageKeyAuthUser], constvars.UserTypeStaff)
	})

	t.Run("a failing storage degrades the session to memory only", func(t *testing.T) {
		authClient := &stubAuthClient{
			loginResponse: &responses.JwtResponse{AccessToken: signedToken(t, constvars.UserTypePatient)},
		}
		storage := newStubStorage()
		storage.setErr = errors.New("disk full")
		service := NewSessionService(authClient, storage, zap.NewNop())

		result, err := service.Login(context.Background(), "jane.doe@example.com", "pw", "")
		require.NoError(t, err)
		assert.Equal(t, constvars.UserTypePatient, result.UserType)
		assert.True(t, service.IsAuthenticated())
		assert.Empty(t, storage.entries[constvars.StorageKeyAuthToken])
	})
}

func TestSessionInitialize(t *testing.T) {
	t.Run("restores a persisted session", func(t *testing.T) {
		storage := newStubStorage()
		storage.entries[constvars.StorageKeyAuthToken] = "persisted-token"
		storage.entries[constvars.StorageKeyAuthUser] = `{"email":"jane.doe@example.com","userType":"PATIENT"}`
		service := NewSessionService(&stubAuthClient{}, storage, zap.NewNop())

		assert.False(t, service.Ready())
		service.Initialize(context.Background())
		assert.True(t, service.Ready())
		assert.True(t, service.IsAuthenticated())
		assert.Equal(t, "persisted-token", service.CurrentToken())

		user := service.CurrentUser()
		require.NotNil(t, user)
		assert.Equal(t, constvars.UserTypePatient, user.UserType)
	})

	t.Run("drops a corrupt profile entry but keeps the token", func(t *testing.T) {
		storage := newStubStorage()
		storage.entries[constvars.StorageKeyAuthToken] = "persisted-token"
		storage.entries[constvars.StorageKeyAuthUser] = "{not json"
		service := NewSessionService(&stubAuthClient{}, storage, zap.NewNop())

		service.Initialize(context.Background())
		assert.True(t, service.IsAuthenticated())
		assert.Nil(t, service.CurrentUser())
		_, stillThere := storage.entries[constvars.StorageKeyAuthUser]
		assert.False(t, stillThere)
	})

	t.Run("drops a profile entry with empty fields but keeps the token", func(t *testing.T) {
		storage := newStubStorage()
		storage.entries[constvars.StorageKeyAuthToken] = "persisted-token"
		storage.entries[constvars.StorageKeyAuthUser] = `{"email":"","userType":""}`
		service := NewSessionService(&stubAuthClient{}, storage, zap.NewNop())

		service.Initialize(context.Background())
		assert.True(t, service.IsAuthenticated())
		assert.Nil(t, service.CurrentUser())
		_, stillThere := storage.entries[constvars.StorageKeyAuthUser]
		assert.False(t, stillThere)
	})

	t.Run("drops a profile entry with an unrecognized userType", func(t *testing.T) {
		storage := newStubStorage()
		storage.entries[constvars.StorageKeyAuthUser] = `{"email":"jane.doe@example.com","userType":"SUPERUSER"}`
		service := NewSessionService(&stubAuthClient{}, storage, zap.NewNop())

		service.Initialize(context.Background())
		assert.Nil(t, service.CurrentUser())
		_, stillThere := storage.entries[constvars.StorageKeyAuthUser]
		assert.False(t, stillThere)
	})

	t.Run("ready with no session means confirmed logged out", func(t *testing.T) {
		service := NewSessionService(&stubAuthClient{}, newStubStorage(), zap.NewNop())
		service.Initialize(context.Background())
		assert.True(t, service.Ready())
		assert.False(t, service.IsAuthenticated())
	})
}

func TestSessionLogout(t *testing.T) {
	t.Run("clears local state even when the backend call fails", func(t *testing.T) {
		authClient := &stubAuthClient{
			loginResponse: &responses.JwtResponse{AccessToken: signedToken(t, constvars.UserTypePatient)},
			logoutErr:     errors.New("connection refused"),
		}
		storage := newStubStorage()
		service := NewSessionService(authClient, storage, zap.NewNop())

		_, err := service.Login(context.Background(), "jane.doe@example.com", "pw", "")
		require.NoError(t, err)

		service.Logout(context.Background())
		assert.True(t, authClient.logoutCalled)
		assert.False(t, service.IsAuthenticated())
		assert.Empty(t, service.CurrentToken())
		assert.Empty(t, storage.entries[constvars.StorageKeyAuthToken])
		assert.Empty(t, storage.entries[constvars.StorageKeyAuthUser])
	})
}
