package handler

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/podshelf/podshelf/internal/domain"
	"github.com/podshelf/podshelf/internal/service"
)

// AuthHandler handles signup, login, and logout requests.
type AuthHandler struct {
	sessions     *service.SessionService
	limiter      *service.TokenBucket
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions *service.SessionService, limiter *service.TokenBucket, cookieSecure bool) *AuthHandler {
	return &AuthHandler{sessions: sessions, limiter: limiter, cookieSecure: cookieSecure}
}

// HandleSignup processes a JSON signup request.
// POST /api/auth/signup
// Request:  {"email":"...","username":"...","password":"..."}
// Response: {"user": {...}}
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.sessions.Signup(r.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		writeDomainError(w, "signup user", err)
		return
	}

	if err := h.setSessionCookie(w, user); err != nil {
		slog.Error("issue token after signup", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"user": toUserDTO(user)})
}

// HandleLogin processes a JSON login request. Attempts are rate
// limited per client address.
// POST /api/auth/login
// Request:  {"email":"...","password":"..."}
// Response: {"user": {...}}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow(clientKey(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many login attempts. Try again shortly.")
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(w, "login user", err)
		return
	}

	if err := h.setSessionCookie(w, user); err != nil {
		slog.Error("issue token after login", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": toUserDTO(user)})
}

// HandleLogout clears the session and expires the cookie.
// POST /api/auth/logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		writeDomainError(w, "logout user", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleMe returns the authenticated user.
// GET /api/auth/me
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"user": toUserDTO(user)})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, user *domain.User) error {
	token, err := h.sessions.IssueToken(user)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours
	})
	return nil
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
