package handler

import (
	"context"
	"net/http"

	"github.com/podshelf/podshelf/internal/domain"
	"github.com/podshelf/podshelf/internal/service"
)

type contextKey string

const userContextKey contextKey = "user"

// authCookieName is the session cookie carrying the signed token.
const authCookieName = "auth_token"

// UserFromContext extracts the authenticated user from the request
// context. Returns nil if no user is authenticated.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// RequireAuth protects routes that need an authenticated session. It
// reads the auth cookie, validates the token, loads the user, and
// injects it into the request context. Unauthenticated requests get 401.
func RequireAuth(sessions *service.SessionService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := authenticateRequest(r, sessions)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "You must be signed in to do that.")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth attempts to authenticate but lets unauthenticated
// requests proceed without a user in context.
func OptionalAuth(sessions *service.SessionService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := authenticateRequest(r, sessions)
		if err == nil && user != nil {
			ctx := context.WithValue(r.Context(), userContextKey, user)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// SecurityHeaders sets baseline response headers on every request.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

func authenticateRequest(r *http.Request, sessions *service.SessionService) (*domain.User, error) {
	cookie, err := r.Cookie(authCookieName)
	if err != nil {
		return nil, err
	}

	userID, err := sessions.ValidateToken(cookie.Value)
	if err != nil {
		return nil, err
	}

	return sessions.UserByID(r.Context(), userID)
}
