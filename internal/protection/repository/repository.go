package repository

import (
	"errors"

	protectiondomain "mailscope-backend/internal/protection/domain"
)

var (
	ErrDuplicateEmail = errors.New("email is already protected")
	ErrNotFound       = errors.New("protected email not found")
)

// Update is the tagged set of mutations a store accepts for an existing
// record. Nil fields are left untouched.
type Update struct {
	SetLocked    *bool
	SetAccessKey *string
}

// ProtectedEmailRepository abstracts the persistence backend. Two
// implementations exist: a postgres-backed one and a JSON-file one, selected
// by STORAGE_MODE. Email lookups are exact matches on the stored (lowercase)
// address; uniqueness on the address is enforced by the store itself.
type ProtectedEmailRepository interface {
	Create(record *protectiondomain.ProtectedEmail) error
	FindByEmail(email string) (*protectiondomain.ProtectedEmail, error)
	FindByID(id string) (*protectiondomain.ProtectedEmail, error)
	FindAll() ([]*protectiondomain.ProtectedEmail, error)
	Update(id string, update Update) (*protectiondomain.ProtectedEmail, error)
	Delete(id string) error

	// RecordAccess increments the access counter and stamps the last
	// successful verified access.
	RecordAccess(id string) error

	Stats() (*protectiondomain.StoreStats, error)
}
