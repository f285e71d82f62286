package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/digimon/pkg/utils"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

// UserID returns the authenticated caller stored by AuthMiddleware.
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(UserIDKey).(int)
	return id, ok
}

// AuthMiddleware resolves "<token_type> <access_token>" into a user id or answers 401.
func AuthMiddleware(tokens JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenType, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
			if !ok || !strings.EqualFold(tokenType, TokenType) || token == "" {
				w.Header().Set("WWW-Authenticate", TokenType)
				utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimSpace(token))
			if err != nil {
				w.Header().Set("WWW-Authenticate", TokenType)
				utils.RespondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUserID is UserID for handlers: it answers 401 when the request carries no caller.
func RequireUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := UserID(r.Context())
	if !ok {
		w.Header().Set("WWW-Authenticate", TokenType)
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return 0, false
	}
	return id, true
}
