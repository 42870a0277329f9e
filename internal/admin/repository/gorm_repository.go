package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	admindomain "mailscope-backend/internal/admin/domain"
)

// gormSessionRepository implements SessionRepository on postgres
type gormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new instance of gormSessionRepository
func NewGormSessionRepository(db *gorm.DB) SessionRepository {
	return &gormSessionRepository{
		db: db,
	}
}

func (r *gormSessionRepository) Create(session *admindomain.AdminSession) error {
	session.ID = uuid.New().String()
	session.CreatedAt = time.Now()
	session.LastActivityAt = session.CreatedAt
	return r.db.Create(session).Error
}

func (r *gormSessionRepository) FindActiveByToken(token string) (*admindomain.AdminSession, error) {
	var session admindomain.AdminSession
	err := r.db.
		Where("token = ? AND is_active = ? AND expires_at > ?", token, true, time.Now()).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *gormSessionRepository) Deactivate(token string) error {
	result := r.db.Model(&admindomain.AdminSession{}).
		Where("token = ? AND is_active = ?", token, true).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *gormSessionRepository) Touch(id string) error {
	return r.db.Model(&admindomain.AdminSession{}).
		Where("id = ?", id).
		Update("last_activity_at", time.Now()).Error
}
