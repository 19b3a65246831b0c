package routers

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"pathlab-client/internal/app/config"
	"pathlab-client/internal/app/services/mockstore"
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Mock: config.Mock{
			EndpointPrefix:      "/api",
			JWTSecret:           "integration-secret",
			MaxRequests:         1000,
			LoginBurst:          50,
			AccessTokenTTLInSec: 900,
		},
	}
}

func newTestServer(t *testing.T, internalConfig *config.InternalConfig) (*httptest.Server, *mockstore.Store) {
	t.Helper()
	router, store := NewRouter(internalConfig, zap.NewNop())
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, store
}

func doJSON(t *testing.T, method, url, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func loginToken(t *testing.T, server *httptest.Server, email, password string) string {
	t.Helper()
	resp, raw := doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "", requests.LoginRequest{
		Email:    email,
		Password: password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	jwtResponse := responses.JwtResponse{}
	require.NoError(t, json.Unmarshal(raw, &jwtResponse))
	require.NotEmpty(t, jwtResponse.AccessToken)
	return jwtResponse.AccessToken
}

func TestLoginEndpoint(t *testing.T) {
	server, _ := newTestServer(t, testInternalConfig())

	t.Run("issues a bearer token for seeded credentials", func(t *testing.T) {
		resp, raw := doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "", requests.LoginRequest{
			Email:    mockstore.SeedAdminEmail,
			Password: mockstore.SeedAdminPassword,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		jwtResponse := responses.JwtResponse{}
		require.NoError(t, json.Unmarshal(raw, &jwtResponse))
		assert.NotEmpty(t, jwtResponse.AccessToken)
		assert.Equal(t, constvars.MsgTokenTypeBearer, jwtResponse.TokenType)
		assert.EqualValues(t, 900, jwtResponse.ExpiresIn)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "", requests.LoginRequest{
			Email:    mockstore.SeedAdminEmail,
			Password: "definitely-wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejects a userType hint that does not match the account", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "", requests.LoginRequest{
			Email:    mockstore.SeedPatientEmail,
			Password: mockstore.SeedPatientPassword,
			UserType: constvars.UserTypeStaff,
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestLogoutRevokesToken(t *testing.T) {
	server, _ := newTestServer(t, testInternalConfig())
	token := loginToken(t, server, mockstore.SeedAdminEmail, mockstore.SeedAdminPassword)

	resp, raw := doJSON(t, http.MethodGet, server.URL+"/api/patients", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	resp, raw = doJSON(t, http.MethodPost, server.URL+"/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, constvars.MsgLoggedOut, string(raw))
	assert.Contains(t, resp.Header.Get(constvars.HeaderContentType), constvars.MIMETextPlain)

	resp, _ = doJSON(t, http.MethodGet, server.URL+"/api/patients", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegistrationAndVerification(t *testing.T) {
	server, store := newTestServer(t, testInternalConfig())

	t.Run("patient registration then email verification", func(t *testing.T) {
		resp, raw := doJSON(t, http.MethodPost, server.URL+"/api/auth/register/patient", "", requests.RegisterPatientRequest{
			Name:        "Arjun Rao",
			Gender:      constvars.GenderMale,
			DateOfBirth: "1985-07-21",
			Email:       "arjun.rao@example.com",
			Password:    "Str0ng!pass",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

		message := responses.MessageResponse{}
		require.NoError(t, json.Unmarshal(raw, &message))
		assert.Equal(t, constvars.MsgRegistrationAccepted, message.Message)

		account, found := store.FindAccountByEmail("arjun.rao@example.com")
		require.True(t, found)
		assert.False(t, account.Verified)
	})

	t.Run("verify-email flips the account and burns the token", func(t *testing.T) {
		verificationToken, err := store.RegisterPatient(&requests.RegisterPatientRequest{
			Name:        "Meera Pillai",
			Gender:      constvars.GenderFemale,
			DateOfBirth: "1992-03-03",
			Email:       "meera.pillai@example.com",
			Password:    "Str0ng!pass",
		})
		require.NoError(t, err)

		resp, _ := doJSON(t, http.MethodGet, server.URL+"/api/auth/verify-email?token="+verificationToken, "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		account, found := store.FindAccountByEmail("meera.pillai@example.com")
		require.True(t, found)
		assert.True(t, account.Verified)

		resp, _ = doJSON(t, http.MethodGet, server.URL+"/api/auth/verify-email?token="+verificationToken, "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("staff registration needs an admin voucher", func(t *testing.T) {
		request := requests.RegisterUserRequest{
			Name:     "New Tech",
			Email:    "new.tech@pathlab.local",
			Password: "Str0ng!pass",
			Role:     constvars.StaffRoleLabTech,
		}
		resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/auth/register/user", "", request)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		request.AdminEmail = mockstore.SeedAdminEmail
		request.AdminPassword = mockstore.SeedAdminPassword
		resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/auth/register/user", "", request)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("lab tech credentials cannot vouch for staff", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/auth/register/user", "", requests.RegisterUserRequest{
			Name:          "Another Tech",
			Email:         "another.tech@pathlab.local",
			Password:      "Str0ng!pass",
			Role:          constvars.StaffRoleLabTech,
			AdminEmail:    mockstore.SeedLabTechEmail,
			AdminPassword: mockstore.SeedLabTechPassword,
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestPasswordReset(t *testing.T) {
	server, store := newTestServer(t, testInternalConfig())

	t.Run("forgot-password answers the same for unknown emails", func(t *testing.T) {
		resp, raw := doJSON(t, http.MethodPost, server.URL+"/api/auth/forgot-password", "", requests.ForgotPasswordRequest{
			Email: "nobody@example.com",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		message := responses.MessageResponse{}
		require.NoError(t, json.Unmarshal(raw, &message))
		assert.Equal(t, constvars.MsgPasswordResetSent, message.Message)
	})

	t.Run("reset token changes the password", func(t *testing.T) {
		resetToken := store.CreateResetToken(mockstore.SeedPatientEmail)
		require.NotEmpty(t, resetToken)

		resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/auth/reset-password", "", requests.ResetPasswordRequest{
			Token:       resetToken,
			NewPassword: "Fresh!Pass9",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		loginToken(t, server, mockstore.SeedPatientEmail, "Fresh!Pass9")
	})
}

func TestRoleEnforcement(t *testing.T) {
	server, _ := newTestServer(t, testInternalConfig())
	staffToken := loginToken(t, server, mockstore.SeedLabTechEmail, mockstore.SeedLabTechPassword)
	patientToken := loginToken(t, server, mockstore.SeedPatientEmail, mockstore.SeedPatientPassword)

	t.Run("protected routes need a token", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, server.URL+"/api/patients", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("patients cannot use staff resources", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, server.URL+"/api/patients", patientToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp, _ = doJSON(t, http.MethodGet, server.URL+"/api/dashboard/stats", patientToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("staff cannot use the patient portal", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, server.URL+"/api/patients/dashboard", staffToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("the test catalog is readable by both roles", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, server.URL+"/api/tests", staffToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doJSON(t, http.MethodGet, server.URL+"/api/tests", patientToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("catalog mutations stay staff-only", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/tests", patientToken, requests.CreateTestRequest{
			TestName:   "Thyroid Panel",
			SampleType: constvars.SampleTypeBlood,
			Price:      450,
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestLoginRateLimiter(t *testing.T) {
	internalConfig := testInternalConfig()
	internalConfig.Mock.LoginBurst = 2
	server, _ := newTestServer(t, internalConfig)

	body := requests.LoginRequest{Email: mockstore.SeedAdminEmail, Password: "wrong"}
	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "", body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "", body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, raw := doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Contains(t, string(raw), constvars.ErrDevTooManyLoginAttempts)
}
