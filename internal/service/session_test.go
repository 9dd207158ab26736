package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/podshelf/podshelf/internal/domain"
	"github.com/podshelf/podshelf/internal/repository/memory"
	"github.com/podshelf/podshelf/internal/service"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestSessions(t *testing.T) (*service.SessionService, *memory.Store) {
	t.Helper()
	store := memory.New()
	// Bcrypt cost 4 keeps tests fast.
	sessions := service.NewSessionService(store, func() time.Time { return testTime }, testJWTSecret, 4)
	if err := sessions.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return sessions, store
}

func TestSessionService_Signup_Success(t *testing.T) {
	sessions, store := newTestSessions(t)
	ctx := context.Background()

	user, err := sessions.Signup(ctx, "new@example.com", "newuser", "password123")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if user.ID == "" {
		t.Fatal("expected user ID to be set")
	}
	if user.Email != "new@example.com" {
		t.Fatalf("expected email new@example.com, got %s", user.Email)
	}
	if !user.CreatedAt.Equal(testTime) {
		t.Fatalf("expected CreatedAt %v, got %v", testTime, user.CreatedAt)
	}
	if user.PasswordHash == "password123" {
		t.Fatal("password must not be stored in the clear")
	}

	current := sessions.Current()
	if current == nil || current.ID != user.ID {
		t.Fatal("expected signup to establish the session")
	}

	if _, err := store.Get(ctx, "users"); err != nil {
		t.Fatalf("expected users document to be persisted: %v", err)
	}
	if _, err := store.Get(ctx, "session"); err != nil {
		t.Fatalf("expected session marker to be persisted: %v", err)
	}
}

func TestSessionService_Signup_DuplicateEmail(t *testing.T) {
	sessions, store := newTestSessions(t)
	ctx := context.Background()

	if _, err := sessions.Signup(ctx, "dup@example.com", "user1", "password123"); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	before, err := store.Get(ctx, "users")
	if err != nil {
		t.Fatalf("read users: %v", err)
	}

	_, err = sessions.Signup(ctx, "dup@example.com", "user2", "password456")
	if !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	after, err := store.Get(ctx, "users")
	if err != nil {
		t.Fatalf("read users: %v", err)
	}
	if before != after {
		t.Fatal("failed signup must not mutate the stored user list")
	}
}

func TestSessionService_Signup_EmailCompareIsCaseSensitive(t *testing.T) {
	sessions, _ := newTestSessions(t)
	ctx := context.Background()

	if _, err := sessions.Signup(ctx, "Case@Example.com", "upper", "password123"); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	// A differently-cased email is a distinct identity.
	if _, err := sessions.Signup(ctx, "case@example.com", "lower", "password123"); err != nil {
		t.Fatalf("expected differently-cased email to register, got %v", err)
	}
}

func TestSessionService_Signup_InvalidInput(t *testing.T) {
	sessions, _ := newTestSessions(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		username string
		password string
	}{
		{"empty email", "", "name", "password123"},
		{"empty username", "a@b.com", "", "password123"},
		{"empty password", "a@b.com", "name", ""},
		{"short password", "a@b.com", "name", "short"},
		{"malformed email", "not-an-email", "name", "password123"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sessions.Signup(ctx, tc.email, tc.username, tc.password)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestSessionService_Login_Success(t *testing.T) {
	sessions, _ := newTestSessions(t)
	ctx := context.Background()

	if _, err := sessions.Signup(ctx, "login@example.com", "login", "password123"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if err := sessions.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	user, err := sessions.Login(ctx, "login@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	current := sessions.Current()
	if current == nil || current.ID != user.ID {
		t.Fatal("expected login to establish the session")
	}
}

func TestSessionService_Login_WrongPasswordKeepsSession(t *testing.T) {
	sessions, _ := newTestSessions(t)
	ctx := context.Background()

	alice, err := sessions.Signup(ctx, "alice@example.com", "alice", "password123")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	_, err = sessions.Login(ctx, "alice@example.com", "wrongpass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	current := sessions.Current()
	if current == nil || current.ID != alice.ID {
		t.Fatal("failed login must leave the existing session untouched")
	}
}

func TestSessionService_Login_UnknownEmail(t *testing.T) {
	sessions, _ := newTestSessions(t)

	_, err := sessions.Login(context.Background(), "nobody@example.com", "password123")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionService_Logout(t *testing.T) {
	sessions, _ := newTestSessions(t)
	ctx := context.Background()

	if _, err := sessions.Signup(ctx, "out@example.com", "out", "password123"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if err := sessions.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if sessions.Current() != nil {
		t.Fatal("expected no current session after logout")
	}

	// Logout with no session is still fine.
	if err := sessions.Logout(ctx); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
}

func TestSessionService_Load_RestoresSession(t *testing.T) {
	sessions, store := newTestSessions(t)
	ctx := context.Background()

	user, err := sessions.Signup(ctx, "persist@example.com", "persist", "password123")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	// A fresh service over the same store sees the same session.
	reloaded := service.NewSessionService(store, func() time.Time { return testTime }, testJWTSecret, 4)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	current := reloaded.Current()
	if current == nil || current.ID != user.ID {
		t.Fatal("expected reloaded service to restore the current session")
	}
	if _, err := reloaded.UserByID(ctx, user.ID); err != nil {
		t.Fatalf("UserByID after reload: %v", err)
	}
}

func TestSessionService_Tokens(t *testing.T) {
	sessions, _ := newTestSessions(t)
	ctx := context.Background()

	user, err := sessions.Signup(ctx, "token@example.com", "token", "password123")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	token, err := sessions.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	id, err := sessions.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if id != user.ID {
		t.Fatalf("expected subject %s, got %s", user.ID, id)
	}

	if _, err := sessions.ValidateToken("not-a-token"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for garbage token, got %v", err)
	}
}

func TestSessionService_LoginMarkerPersistFailureKeepsSession(t *testing.T) {
	ctx := context.Background()
	base := memory.New()

	seed := service.NewSessionService(base, func() time.Time { return testTime }, testJWTSecret, 4)
	if err := seed.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := seed.Signup(ctx, "alice@example.com", "alice", "password123"); err != nil {
		t.Fatalf("Signup alice: %v", err)
	}
	bob, err := seed.Signup(ctx, "bob@example.com", "bob", "password123")
	if err != nil {
		t.Fatalf("Signup bob: %v", err)
	}

	// The marker cannot be persisted, so a login attempt must not move
	// the in-memory session either.
	store := &failingStore{Store: base, failKey: "session"}
	sessions := service.NewSessionService(store, func() time.Time { return testTime }, testJWTSecret, 4)
	if err := sessions.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := sessions.Login(ctx, "alice@example.com", "password123"); err == nil {
		t.Fatal("expected login to fail when the marker cannot be persisted")
	}
	cur := sessions.Current()
	if cur == nil || cur.ID != bob.ID {
		t.Fatalf("expected the session to stay with %s, got %+v", bob.ID, cur)
	}
}
