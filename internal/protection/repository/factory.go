package repository

import (
	"fmt"

	"gorm.io/gorm"

	"mailscope-backend/pkg/config"
)

// NewProtectedEmailRepository selects the persistence backend from
// STORAGE_MODE. db may be nil in file mode.
func NewProtectedEmailRepository(cfg *config.Config, db *gorm.DB) (ProtectedEmailRepository, error) {
	switch cfg.StorageMode {
	case "", "postgres":
		if db == nil {
			return nil, fmt.Errorf("postgres storage mode requires a database connection")
		}
		return NewGormRepository(db), nil
	case "file":
		return NewFileRepository(cfg.DataFile)
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s", cfg.StorageMode)
	}
}
