package utils

import (
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/exceptions"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateAccessToken signs an HS256 access token the way the PathLab
// backend does: subject is the account email and the userType claim carries
// the authenticated role.
func GenerateAccessToken(email, userType, tokenID, secret string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		constvars.JWTClaimSubject:  email,
		constvars.JWTClaimUserType: userType,
		"jti":                      tokenID,
		"iat":                      now.Unix(),
		"exp":                      now.Add(ttl).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return tokenString, nil
}

// ParseAccessToken verifies the signature and returns the claims.
func ParseAccessToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return claims, nil
}

// ExtractUnverifiedClaim decodes the payload segment of a JWT without
// verifying its signature and returns the named string claim. The client
// has no signing key; it only needs the role the backend baked into the
// token it just handed us.
func ExtractUnverifiedClaim(tokenString, claimName string) (string, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return "", exceptions.ErrTokenNotDecodable(err)
	}

	value, ok := claims[claimName].(string)
	if !ok || value == "" {
		return "", exceptions.ErrTokenMissingRoleClaim()
	}
	return value, nil
}
