package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	admindomain "mailscope-backend/internal/admin/domain"
)

// memorySessionRepository keeps sessions in process memory. Used in file
// storage mode, where losing sessions on restart just means logging in again.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*admindomain.AdminSession // keyed by token
}

// NewMemorySessionRepository creates a new instance of memorySessionRepository
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]*admindomain.AdminSession),
	}
}

func (r *memorySessionRepository) Create(session *admindomain.AdminSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session.ID = uuid.New().String()
	session.CreatedAt = time.Now()
	session.LastActivityAt = session.CreatedAt
	r.sessions[session.Token] = session
	return nil
}

func (r *memorySessionRepository) FindActiveByToken(token string) (*admindomain.AdminSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]
	if !ok || !session.IsActive || !session.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (r *memorySessionRepository) Deactivate(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[token]
	if !ok || !session.IsActive {
		return ErrSessionNotFound
	}
	session.IsActive = false
	return nil
}

func (r *memorySessionRepository) Touch(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, session := range r.sessions {
		if session.ID == id {
			session.LastActivityAt = time.Now()
			return nil
		}
	}
	return ErrSessionNotFound
}
