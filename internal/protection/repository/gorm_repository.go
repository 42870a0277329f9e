package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	protectiondomain "mailscope-backend/internal/protection/domain"
)

// gormRepository implements ProtectedEmailRepository on postgres
type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new instance of gormRepository
func NewGormRepository(db *gorm.DB) ProtectedEmailRepository {
	return &gormRepository{
		db: db,
	}
}

func (r *gormRepository) Create(record *protectiondomain.ProtectedEmail) error {
	record.ID = uuid.New().String()
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	err := r.db.Create(record).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *gormRepository) FindByEmail(email string) (*protectiondomain.ProtectedEmail, error) {
	var record protectiondomain.ProtectedEmail
	err := r.db.Where("email = ?", email).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *gormRepository) FindByID(id string) (*protectiondomain.ProtectedEmail, error) {
	var record protectiondomain.ProtectedEmail
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *gormRepository) FindAll() ([]*protectiondomain.ProtectedEmail, error) {
	var records []*protectiondomain.ProtectedEmail
	err := r.db.Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *gormRepository) Update(id string, update Update) (*protectiondomain.ProtectedEmail, error) {
	record, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}

	if update.SetLocked != nil {
		record.IsLocked = *update.SetLocked
	}
	if update.SetAccessKey != nil {
		record.AccessKey = *update.SetAccessKey
	}
	record.UpdatedAt = time.Now()

	if err := r.db.Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *gormRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&protectiondomain.ProtectedEmail{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepository) RecordAccess(id string) error {
	now := time.Now()
	return r.db.Model(&protectiondomain.ProtectedEmail{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"access_count":     gorm.Expr("access_count + 1"),
			"last_accessed_at": now,
			"updated_at":       now,
		}).Error
}

func (r *gormRepository) Stats() (*protectiondomain.StoreStats, error) {
	var stats protectiondomain.StoreStats

	model := r.db.Model(&protectiondomain.ProtectedEmail{})
	if err := model.Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&protectiondomain.ProtectedEmail{}).Where("is_locked = ?", true).Count(&stats.Locked).Error; err != nil {
		return nil, err
	}
	stats.Unlocked = stats.Total - stats.Locked

	return &stats, nil
}
