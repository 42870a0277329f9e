package usecase

import (
	"errors"

	admindomain "mailscope-backend/internal/admin/domain"
	admindto "mailscope-backend/internal/admin/dto"
)

var (
	ErrInvalidPassword       = errors.New("invalid password")
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrSessionNotFound       = errors.New("session not found")
	ErrPasswordNotConfigured = errors.New("admin password not configured")
)

type AdminUsecase interface {
	// Login checks the operator password and, on success, issues a signed
	// token backed by a stored session.
	Login(password, ipAddress, userAgent string) (*admindto.LoginResponse, error)

	// Logout deactivates the session behind the token.
	Logout(token string) error

	// VerifySession checks the token signature and the stored session, and
	// touches the session's last-activity timestamp. The dashboard polls
	// this to confirm liveness.
	VerifySession(token string) (*admindomain.AdminSession, error)
}
