package utils

import (
	"pathlab-client/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Secr3t!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Secr3t!pass", hash)

	assert.True(t, CheckPasswordHash("Secr3t!pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Run("signed token parses back with its claims", func(t *testing.T) {
		token, err := GenerateAccessToken("jane.doe@example.com", constvars.UserTypePatient, "jti-42", "secret", time.Minute)
		require.NoError(t, err)

		claims, err := ParseAccessToken(token, "secret")
		require.NoError(t, err)
		assert.Equal(t, "jane.doe@example.com", claims[constvars.JWTClaimSubject])
		assert.Equal(t, constvars.UserTypePatient, claims[constvars.JWTClaimUserType])
		assert.Equal(t, "jti-42", claims["jti"])
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := GenerateAccessToken("jane.doe@example.com", constvars.UserTypePatient, "jti-42", "secret", time.Minute)
		require.NoError(t, err)

		_, err = ParseAccessToken(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token, err := GenerateAccessToken("jane.doe@example.com", constvars.UserTypePatient, "jti-42", "secret", -time.Minute)
		require.NoError(t, err)

		_, err = ParseAccessToken(token, "secret")
		assert.Error(t, err)
	})
}

func TestExtractUnverifiedClaim(t *testing.T) {
	t.Run("reads the userType claim without the signing key", func(t *testing.T) {
		token, err := GenerateAccessToken("jane.doe@example.com", constvars.UserTypeStaff, "jti-1", "a-key-the-client-never-sees", time.Minute)
		require.NoError(t, err)

		userType, err := ExtractUnverifiedClaim(token, constvars.JWTClaimUserType)
		require.NoError(t, err)
		assert.Equal(t, constvars.UserTypeStaff, userType)
	})

	t.Run("fails on a missing claim", func(t *testing.T) {
		token, err := GenerateAccessToken("jane.doe@example.com", constvars.UserTypeStaff, "jti-1", "secret", time.Minute)
		require.NoError(t, err)

		_, err = ExtractUnverifiedClaim(token, "nonexistent")
		assert.Error(t, err)
	})

	t.Run("fails on garbage input", func(t *testing.T) {
		_, err := ExtractUnverifiedClaim("not.a.jwt", constvars.JWTClaimUserType)
		assert.Error(t, err)
	})
}

func TestCalculateAge(t *testing.T) {
	t.Run("counts full years only", func(t *testing.T) {
		dob := time.Now().AddDate(-30, 0, -1).Format("2006-01-02")
		assert.Equal(t, 30, CalculateAge(dob))
	})

	t.Run("birthday later this year has not happened yet", func(t *testing.T) {
		dob := time.Now().AddDate(-30, 0, 30).Format("2006-01-02")
		assert.Equal(t, 29, CalculateAge(dob))
	})

	t.Run("unparseable input yields zero", func(t *testing.T) {
		assert.Equal(t, 0, CalculateAge("12/04/1990"))
		assert.Equal(t, 0, CalculateAge(""))
	})

	t.Run("future date yields zero", func(t *testing.T) {
		dob := time.Now().AddDate(2, 0, 0).Format("2006-01-02")
		assert.Equal(t, 0, CalculateAge(dob))
	})
}
