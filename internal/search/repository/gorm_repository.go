package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	searchdomain "mailscope-backend/internal/search/domain"
)

// gormHistoryRepository implements SearchHistoryRepository on postgres
type gormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new instance of gormHistoryRepository
func NewGormHistoryRepository(db *gorm.DB) SearchHistoryRepository {
	return &gormHistoryRepository{
		db: db,
	}
}

func (r *gormHistoryRepository) Record(entry *searchdomain.SearchHistory) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	return r.db.Create(entry).Error
}

func (r *gormHistoryRepository) FindRecent(limit int) ([]*searchdomain.SearchHistory, error) {
	var entries []*searchdomain.SearchHistory
	err := r.db.Order("searched_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
