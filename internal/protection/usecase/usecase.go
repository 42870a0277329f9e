package usecase

import (
	"errors"

	protectiondomain "mailscope-backend/internal/protection/domain"
	protectiondto "mailscope-backend/internal/protection/dto"
)

var (
	// ErrKeyRequired means the address is locked and no key was supplied.
	ErrKeyRequired = errors.New("access key required")
	// ErrInvalidKey means the supplied key does not match the stored one.
	ErrInvalidKey = errors.New("invalid access key")

	ErrInvalidEmail  = errors.New("invalid email address")
	ErrNoUpdates     = errors.New("no update operations supplied")
	ErrInvalidUpdate = errors.New("invalid update operation")
)

// AccessDecision is the outcome of the access gate for a target address.
// Granted must be true before a search for that address may run.
type AccessDecision struct {
	Protected bool
	Locked    bool
	Granted   bool
}

type ProtectionUsecase interface {
	// CheckAccess applies the gate rules in order: unknown or unlocked
	// addresses are always granted; locked addresses require the exact
	// stored key. A grant against a locked record bumps its access counter.
	// Key problems are reported via ErrKeyRequired / ErrInvalidKey alongside
	// the decision.
	CheckAccess(email, accessKey string) (*AccessDecision, error)

	ListProtectedEmails() ([]*protectiondomain.ProtectedEmail, *protectiondomain.StoreStats, error)
	AddProtectedEmail(email, accessKey string) (*protectiondomain.ProtectedEmail, error)
	UpdateProtectedEmail(req *protectiondto.UpdateProtectedEmailRequest) (*protectiondomain.ProtectedEmail, error)
	DeleteProtectedEmail(id string) error
}
