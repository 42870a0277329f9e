package repository

import (
	"errors"

	admindomain "mailscope-backend/internal/admin/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores issued admin sessions. FindActiveByToken only
// returns sessions that are active and not past their expiry.
type SessionRepository interface {
	Create(session *admindomain.AdminSession) error
	FindActiveByToken(token string) (*admindomain.AdminSession, error)

	// Deactivate marks the active session for token as inactive. Returns
	// ErrSessionNotFound when there is no active session for the token.
	Deactivate(token string) error

	// Touch updates the session's last-activity timestamp.
	Touch(id string) error
}
