package repository

import (
	"fmt"

	"gorm.io/gorm"

	"mailscope-backend/pkg/config"
)

// NewSearchHistoryRepository selects the audit-trail backend from
// STORAGE_MODE. db may be nil in file mode.
func NewSearchHistoryRepository(cfg *config.Config, db *gorm.DB) (SearchHistoryRepository, error) {
	switch cfg.StorageMode {
	case "", "postgres":
		if db == nil {
			return nil, fmt.Errorf("postgres storage mode requires a database connection")
		}
		return NewGormHistoryRepository(db), nil
	case "file":
		return NewMemoryHistoryRepository(), nil
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s", cfg.StorageMode)
	}
}
