package middlewares

import (
	"context"
	"net/http"
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/exceptions"
	"pathlab-client/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

// AccessClaims is what the auth middleware leaves in the request context
// for handlers to consume.
type AccessClaims struct {
	Email    string
	UserType string
	TokenID  string
}

func ClaimsFromContext(ctx context.Context) (*AccessClaims, bool) {
	claims, ok := ctx.Value(constvars.CONTEXT_CLAIMS_KEY).(*AccessClaims)
	return claims, ok
}

// AuthMiddleware verifies the bearer token signature, rejects revoked
// tokens, and stashes the claims for downstream handlers.
func (m *Middlewares) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
			utils.WriteErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		tokenString := strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix)

		tokenClaims, err := utils.ParseAccessToken(tokenString, m.InternalConfig.Mock.JWTSecret)
		if err != nil {
			utils.WriteErrorResponse(m.Log, w, err)
			return
		}

		email, _ := tokenClaims[constvars.JWTClaimSubject].(string)
		userType, _ := tokenClaims[constvars.JWTClaimUserType].(string)
		tokenID, _ := tokenClaims["jti"].(string)
		if email == "" || userType == "" {
			utils.WriteErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(nil))
			return
		}
		if tokenID != "" && m.Store.IsTokenRevoked(tokenID) {
			m.Log.Warn("rejected revoked token",
				zap.String(constvars.LoggingEmailKey, email),
			)
			utils.WriteErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(nil))
			return
		}

		claims := &AccessClaims{Email: email, UserType: userType, TokenID: tokenID}
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_CLAIMS_KEY, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireStaff gates staff resources; patients get 403.
func (m *Middlewares) RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || claims.UserType != constvars.UserTypeStaff {
			utils.WriteErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePatient gates the patient portal.
func (m *Middlewares) RequirePatient(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || claims.UserType != constvars.UserTypePatient {
			utils.WriteErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed())
			return
		}
		next.ServeHTTP(w, r)
	})
}
