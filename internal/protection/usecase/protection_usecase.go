package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	protectiondomain "mailscope-backend/internal/protection/domain"
	protectiondto "mailscope-backend/internal/protection/dto"
	"mailscope-backend/internal/protection/repository"
)

// protectionUsecase implements ProtectionUsecase
type protectionUsecase struct {
	repo repository.ProtectedEmailRepository
}

// NewProtectionUsecase creates a new instance of protectionUsecase
func NewProtectionUsecase(repo repository.ProtectedEmailRepository) ProtectionUsecase {
	return &protectionUsecase{
		repo: repo,
	}
}

func (u *protectionUsecase) CheckAccess(email, accessKey string) (*AccessDecision, error) {
	record, err := u.repo.FindByEmail(normalizeEmail(email))
	if err != nil {
		return nil, err
	}

	// Unknown or unlocked addresses are open to everyone.
	if record == nil || !record.IsLocked {
		return &AccessDecision{Protected: record != nil, Granted: true}, nil
	}

	if accessKey == "" {
		return &AccessDecision{Protected: true, Locked: true}, ErrKeyRequired
	}

	// Exact, case-sensitive comparison against the stored key.
	if record.AccessKey != accessKey {
		return &AccessDecision{Protected: true, Locked: true}, ErrInvalidKey
	}

	if err := u.repo.RecordAccess(record.ID); err != nil {
		return nil, err
	}
	return &AccessDecision{Protected: true, Granted: true}, nil
}

func (u *protectionUsecase) ListProtectedEmails() ([]*protectiondomain.ProtectedEmail, *protectiondomain.StoreStats, error) {
	records, err := u.repo.FindAll()
	if err != nil {
		return nil, nil, err
	}
	stats, err := u.repo.Stats()
	if err != nil {
		return nil, nil, err
	}
	return records, stats, nil
}

func (u *protectionUsecase) AddProtectedEmail(email, accessKey string) (*protectiondomain.ProtectedEmail, error) {
	email = normalizeEmail(email)
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	if accessKey == "" {
		accessKey = GenerateAccessKey()
	}

	record := &protectiondomain.ProtectedEmail{
		Email:     email,
		AccessKey: accessKey,
		IsLocked:  true,
	}
	if err := u.repo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (u *protectionUsecase) UpdateProtectedEmail(req *protectiondto.UpdateProtectedEmailRequest) (*protectiondomain.ProtectedEmail, error) {
	update := repository.Update{SetLocked: req.SetLocked}

	switch {
	case req.RotateKey && req.SetAccessKey != nil:
		return nil, fmt.Errorf("%w: rotateKey and setAccessKey are mutually exclusive", ErrInvalidUpdate)
	case req.RotateKey:
		key := GenerateAccessKey()
		update.SetAccessKey = &key
	case req.SetAccessKey != nil:
		if *req.SetAccessKey == "" {
			return nil, fmt.Errorf("%w: access key must not be empty", ErrInvalidUpdate)
		}
		update.SetAccessKey = req.SetAccessKey
	}

	if update.SetLocked == nil && update.SetAccessKey == nil {
		return nil, ErrNoUpdates
	}

	return u.repo.Update(req.ID, update)
}

func (u *protectionUsecase) DeleteProtectedEmail(id string) error {
	return u.repo.Delete(id)
}

// GenerateAccessKey returns a prefixed opaque key, e.g. WRG-3F8A21C4-MBX9K2.
func GenerateAccessKey() string {
	random := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	stamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	return fmt.Sprintf("WRG-%s-%s", random, stamp)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
