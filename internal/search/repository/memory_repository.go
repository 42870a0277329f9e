package repository

import (
	"sync"

	"github.com/google/uuid"

	searchdomain "mailscope-backend/internal/search/domain"
)

// maxMemoryEntries bounds the in-process audit trail.
const maxMemoryEntries = 1000

// memoryHistoryRepository keeps the audit trail in process memory, newest
// first. Used in file storage mode.
type memoryHistoryRepository struct {
	mu      sync.RWMutex
	entries []*searchdomain.SearchHistory
}

// NewMemoryHistoryRepository creates a new instance of memoryHistoryRepository
func NewMemoryHistoryRepository() SearchHistoryRepository {
	return &memoryHistoryRepository{}
}

func (r *memoryHistoryRepository) Record(entry *searchdomain.SearchHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	r.entries = append([]*searchdomain.SearchHistory{entry}, r.entries...)
	if len(r.entries) > maxMemoryEntries {
		r.entries = r.entries[:maxMemoryEntries]
	}
	return nil
}

func (r *memoryHistoryRepository) FindRecent(limit int) ([]*searchdomain.SearchHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]*searchdomain.SearchHistory, limit)
	copy(out, r.entries[:limit])
	return out, nil
}
