package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/podshelf/podshelf/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	usersKey   = "users"
	sessionKey = "session"
)

// sessionMarker is the persisted "current session" document.
type sessionMarker struct {
	UserID string `json:"userId"`
}

// SessionService owns the registered user list and the single current
// session. Every successful signup/login persists the user list and
// the session marker before returning; logout persists the cleared
// marker. Credential failures leave any existing session untouched.
type SessionService struct {
	store      domain.Store
	now        domain.Clock
	jwtSecret  []byte
	bcryptCost int

	mu      sync.Mutex
	users   []domain.User
	current *domain.User
}

// NewSessionService creates a SessionService. Call Load before use.
func NewSessionService(store domain.Store, now domain.Clock, jwtSecret string, bcryptCost int) *SessionService {
	return &SessionService{
		store:      store,
		now:        now,
		jwtSecret:  []byte(jwtSecret),
		bcryptCost: bcryptCost,
	}
}

// Load restores the registered users and the current-session marker
// from storage. A marker pointing at an unknown user is discarded.
func (s *SessionService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []domain.User
	if err := loadDoc(ctx, s.store, usersKey, &users); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("load users: %w", err)
	}
	s.users = users

	var marker sessionMarker
	if err := loadDoc(ctx, s.store, sessionKey, &marker); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("load session marker: %w", err)
	}
	s.current = nil
	if marker.UserID != "" {
		if u := s.findByIDLocked(marker.UserID); u != nil {
			s.current = u
		}
	}
	return nil
}

// Signup registers a new user and establishes it as the current
// session. Email uniqueness is checked with case-sensitive equality;
// a duplicate fails with ErrEmailExists and mutates nothing.
func (s *SessionService) Signup(ctx context.Context, email, username, password string) (*domain.User, error) {
	if email == "" || username == "" || password == "" {
		return nil, fmt.Errorf("%w: email, username, and password are required", domain.ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email address is malformed", domain.ErrInvalidInput)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			return nil, domain.ErrEmailExists
		}
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}

	s.users = append(s.users, user)
	if err := saveDoc(ctx, s.store, usersKey, s.users); err != nil {
		s.users = s.users[:len(s.users)-1]
		return nil, fmt.Errorf("persist users: %w", err)
	}

	if err := s.setCurrentLocked(ctx, &user); err != nil {
		return nil, err
	}
	return copyUser(&user), nil
}

// Login establishes the session for the user matching email and
// password exactly. On failure the previous session, if any, remains.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user *domain.User
	for i := range s.users {
		if s.users[i].Email == email {
			user = &s.users[i]
			break
		}
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.setCurrentLocked(ctx, user); err != nil {
		return nil, err
	}
	return copyUser(user), nil
}

// Logout clears the current session unconditionally and persists the
// cleared marker.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := saveDoc(ctx, s.store, sessionKey, sessionMarker{}); err != nil {
		return fmt.Errorf("persist session marker: %w", err)
	}
	return nil
}

// Current returns the currently authenticated user, or nil.
func (s *SessionService) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	return copyUser(s.current)
}

// UserByID returns a registered user by id.
func (s *SessionService) UserByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u := s.findByIDLocked(id); u != nil {
		return copyUser(u), nil
	}
	return nil, domain.ErrNotFound
}

// IssueToken signs a JWT identifying the user, used by the HTTP layer
// as its session cookie. Expiry is wall-clock: jwt validates exp
// against real time, so the injected clock is not used here.
func (s *SessionService) IssueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"email":    user.Email,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken parses and validates a token issued by IssueToken and
// returns the user id from the sub claim.
func (s *SessionService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", domain.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", domain.ErrUnauthenticated
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrUnauthenticated
	}
	return sub, nil
}

// setCurrentLocked persists the session marker and only then assigns
// the in-memory session, so a persist failure never leaves the two
// diverged. Callers hold s.mu.
func (s *SessionService) setCurrentLocked(ctx context.Context, user *domain.User) error {
	if err := saveDoc(ctx, s.store, sessionKey, sessionMarker{UserID: user.ID}); err != nil {
		return fmt.Errorf("persist session marker: %w", err)
	}
	s.current = user
	return nil
}

func (s *SessionService) findByIDLocked(id string) *domain.User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	return &c
}
