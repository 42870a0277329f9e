package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	protectiondomain "mailscope-backend/internal/protection/domain"
)

// fileData is the on-disk layout of the JSON store.
type fileData struct {
	Version         string                             `json:"version"`
	ProtectedEmails []*protectiondomain.ProtectedEmail `json:"protectedEmails"`
	Metadata        protectiondomain.StoreStats        `json:"metadata"`
	LastModified    time.Time                          `json:"lastModified"`
}

// fileRepository implements ProtectedEmailRepository on a single JSON file.
// Every mutation rewrites the whole file under the lock, which also gives us
// the uniqueness guarantee on the email column.
type fileRepository struct {
	path string
	mu   sync.RWMutex
	data *fileData
}

// NewFileRepository loads (or creates) the JSON store at path.
func NewFileRepository(path string) (ProtectedEmailRepository, error) {
	repo := &fileRepository{path: path}
	if err := repo.load(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *fileRepository) load() error {
	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		r.data = &fileData{
			Version:         "1.0.0",
			ProtectedEmails: []*protectiondomain.ProtectedEmail{},
		}
		if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
		return r.save()
	}
	if err != nil {
		return fmt.Errorf("read data file: %w", err)
	}

	var data fileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("decode data file %s: %w", r.path, err)
	}
	if data.ProtectedEmails == nil {
		data.ProtectedEmails = []*protectiondomain.ProtectedEmail{}
	}
	r.data = &data
	return nil
}

// save rewrites the file. Callers must hold the write lock.
func (r *fileRepository) save() error {
	r.data.Metadata = r.countStats()
	r.data.LastModified = time.Now()

	raw, err := json.MarshalIndent(r.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, raw, 0o644)
}

func (r *fileRepository) countStats() protectiondomain.StoreStats {
	stats := protectiondomain.StoreStats{Total: int64(len(r.data.ProtectedEmails))}
	for _, record := range r.data.ProtectedEmails {
		if record.IsLocked {
			stats.Locked++
		}
	}
	stats.Unlocked = stats.Total - stats.Locked
	return stats
}

func (r *fileRepository) Create(record *protectiondomain.ProtectedEmail) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.data.ProtectedEmails {
		if existing.Email == record.Email {
			return ErrDuplicateEmail
		}
	}

	record.ID = uuid.New().String()
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()
	r.data.ProtectedEmails = append(r.data.ProtectedEmails, record)

	// A failed write must not leave the cache ahead of the file.
	if err := r.save(); err != nil {
		r.data.ProtectedEmails = r.data.ProtectedEmails[:len(r.data.ProtectedEmails)-1]
		return err
	}
	return nil
}

func (r *fileRepository) FindByEmail(email string) (*protectiondomain.ProtectedEmail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, record := range r.data.ProtectedEmails {
		if record.Email == email {
			copied := *record
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fileRepository) FindByID(id string) (*protectiondomain.ProtectedEmail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record := r.findByIDLocked(id)
	if record == nil {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

func (r *fileRepository) findByIDLocked(id string) *protectiondomain.ProtectedEmail {
	for _, record := range r.data.ProtectedEmails {
		if record.ID == id {
			return record
		}
	}
	return nil
}

func (r *fileRepository) FindAll() ([]*protectiondomain.ProtectedEmail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*protectiondomain.ProtectedEmail, 0, len(r.data.ProtectedEmails))
	for _, record := range r.data.ProtectedEmails {
		copied := *record
		records = append(records, &copied)
	}
	return records, nil
}

func (r *fileRepository) Update(id string, update Update) (*protectiondomain.ProtectedEmail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := r.findByIDLocked(id)
	if record == nil {
		return nil, ErrNotFound
	}

	prev := *record
	if update.SetLocked != nil {
		record.IsLocked = *update.SetLocked
	}
	if update.SetAccessKey != nil {
		record.AccessKey = *update.SetAccessKey
	}
	record.UpdatedAt = time.Now()

	if err := r.save(); err != nil {
		*record = prev
		return nil, err
	}
	copied := *record
	return &copied, nil
}

func (r *fileRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, record := range r.data.ProtectedEmails {
		if record.ID != id {
			continue
		}

		prev := r.data.ProtectedEmails
		remaining := make([]*protectiondomain.ProtectedEmail, 0, len(prev)-1)
		remaining = append(remaining, prev[:i]...)
		remaining = append(remaining, prev[i+1:]...)
		r.data.ProtectedEmails = remaining

		if err := r.save(); err != nil {
			r.data.ProtectedEmails = prev
			return err
		}
		return nil
	}
	return ErrNotFound
}

func (r *fileRepository) RecordAccess(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := r.findByIDLocked(id)
	if record == nil {
		return ErrNotFound
	}

	prev := *record
	now := time.Now()
	record.AccessCount++
	record.LastAccessedAt = &now
	record.UpdatedAt = now

	if err := r.save(); err != nil {
		*record = prev
		return err
	}
	return nil
}

func (r *fileRepository) Stats() (*protectiondomain.StoreStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := r.countStats()
	return &stats, nil
}
