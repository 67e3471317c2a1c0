package middleware

import (
	"context"
	"net/http"
	"strings"

	"team-portal/backend/members-service/logging"
	"team-portal/backend/members-service/models"
	"team-portal/backend/members-service/utils"
)

type contextKey string

const sessionContextKey contextKey = "session"

// TokenRevoker proverava da li je token opozvan logout-om.
type TokenRevoker interface {
	IsRevoked(token string) bool
}

// TokenFromRequest izdvaja bearer token iz Authorization header-a.
func TokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// SessionFromContext vraća sesiju koju je middleware upisao u context.
func SessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(models.Session)
	return session, ok
}

// JWTAuthMiddleware validira token i gradi eksplicitnu sesiju u request
// context-u. Handleri čitaju sesiju iz context-a - nema globalnog stanja.
func JWTAuthMiddleware(revoker TokenRevoker, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logging.Logger.Warnf("Event ID: JWT_AUTH_MISSING_HEADER, Description: Authorization header missing for request to %s %s", r.Method, r.URL.Path)
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		if revoker != nil && revoker.IsRevoked(tokenStr) {
			logging.Logger.Warnf("Event ID: JWT_AUTH_REVOKED_TOKEN, Description: Revoked token used for request to %s %s", r.Method, r.URL.Path)
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		claims, err := utils.ValidateToken(tokenStr)
		if err != nil {
			logging.Logger.Warnf("Event ID: JWT_AUTH_INVALID_TOKEN, Description: Invalid token provided for request to %s %s: %v", r.Method, r.URL.Path, err)
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		session := models.Session{
			UserID: claims.Subject,
			Email:  claims.Email,
			Role:   claims.Role,
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin propušta samo sesije sa admin ulogom. Uloga se čita iz
// verifikovanih claim-ova, ne iz header-a koji klijent kontroliše.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok || !session.IsAdmin() {
			http.Error(w, "Access forbidden: insufficient permissions", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
