package repository

import (
	"fmt"

	"gorm.io/gorm"

	"mailscope-backend/pkg/config"
)

// NewSessionRepository selects the session backend from STORAGE_MODE.
// db may be nil in file mode.
func NewSessionRepository(cfg *config.Config, db *gorm.DB) (SessionRepository, error) {
	switch cfg.StorageMode {
	case "", "postgres":
		if db == nil {
			return nil, fmt.Errorf("postgres storage mode requires a database connection")
		}
		return NewGormSessionRepository(db), nil
	case "file":
		return NewMemorySessionRepository(), nil
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s", cfg.StorageMode)
	}
}
