package usecase

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"mailscope-backend/internal/admin/repository"
	"mailscope-backend/pkg/config"
)

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		AdminPassword:   "hunter2",
		SessionDuration: time.Hour,
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	uc := NewAdminUsecase(repository.NewMemorySessionRepository(), newTestConfig())

	if _, err := uc.Login("wrong", "10.0.0.1", "go-test"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("Login error = %v, want ErrInvalidPassword", err)
	}
}

func TestLogin_PasswordNotConfigured(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig()
	cfg.AdminPassword = ""
	uc := NewAdminUsecase(repository.NewMemorySessionRepository(), cfg)

	if _, err := uc.Login("anything", "", ""); !errors.Is(err, ErrPasswordNotConfigured) {
		t.Fatalf("Login error = %v, want ErrPasswordNotConfigured", err)
	}
}

func TestLogin_BcryptHashTakesPrecedence(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cure"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	cfg := newTestConfig()
	cfg.AdminPasswordHash = string(hash)
	uc := NewAdminUsecase(repository.NewMemorySessionRepository(), cfg)

	// The plaintext value is ignored once a hash is configured.
	if _, err := uc.Login("hunter2", "", ""); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("Login with plaintext fallback = %v, want ErrInvalidPassword", err)
	}
	if _, err := uc.Login("s3cure", "", ""); err != nil {
		t.Fatalf("Login with hashed password: %v", err)
	}
}

func TestLoginAndVerifyRoundtrip(t *testing.T) {
	t.Parallel()

	uc := NewAdminUsecase(repository.NewMemorySessionRepository(), newTestConfig())

	resp, err := uc.Login("hunter2", "10.0.0.1", "go-test")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if !resp.Success || resp.Token == "" {
		t.Fatalf("unexpected login response: %+v", resp)
	}
	if !resp.ExpiresAt.After(time.Now()) {
		t.Errorf("ExpiresAt %v is not in the future", resp.ExpiresAt)
	}

	session, err := uc.VerifySession(resp.Token)
	if err != nil {
		t.Fatalf("VerifySession error: %v", err)
	}
	if session.Username != "admin" {
		t.Errorf("Username = %q, want admin", session.Username)
	}
	if session.IPAddress != "10.0.0.1" || session.UserAgent != "go-test" {
		t.Errorf("client info not recorded: %+v", session)
	}
}

func TestVerifySession_RejectsForgedToken(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemorySessionRepository()
	uc := NewAdminUsecase(repo, newTestConfig())

	resp, err := uc.Login("hunter2", "", "")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	otherCfg := newTestConfig()
	otherCfg.JWTSecret = "different-secret"
	other := NewAdminUsecase(repo, otherCfg)

	if _, err := other.VerifySession(resp.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("VerifySession with wrong secret = %v, want ErrInvalidToken", err)
	}
	if _, err := uc.VerifySession(resp.Token + "x"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("VerifySession with tampered token = %v, want ErrInvalidToken", err)
	}
}

func TestVerifySession_ExpiredSession(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig()
	cfg.SessionDuration = -time.Minute
	uc := NewAdminUsecase(repository.NewMemorySessionRepository(), cfg)

	resp, err := uc.Login("hunter2", "", "")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	if _, err := uc.VerifySession(resp.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("VerifySession on expired session = %v, want ErrInvalidToken", err)
	}
}

func TestLogout_InvalidatesSession(t *testing.T) {
	t.Parallel()

	uc := NewAdminUsecase(repository.NewMemorySessionRepository(), newTestConfig())

	resp, err := uc.Login("hunter2", "", "")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	if err := uc.Logout(resp.Token); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	if _, err := uc.VerifySession(resp.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("VerifySession after logout = %v, want ErrInvalidToken", err)
	}
	if err := uc.Logout(resp.Token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("second Logout = %v, want ErrSessionNotFound", err)
	}
}
