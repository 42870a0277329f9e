package main

import (
	"log"

	"gorm.io/gorm"

	api "mailscope-backend/cmd/api"
	admindomain "mailscope-backend/internal/admin/domain"
	adminRepo "mailscope-backend/internal/admin/repository"
	adminUsecase "mailscope-backend/internal/admin/usecase"
	protectiondomain "mailscope-backend/internal/protection/domain"
	protectionRepo "mailscope-backend/internal/protection/repository"
	protectionUsecase "mailscope-backend/internal/protection/usecase"
	searchdomain "mailscope-backend/internal/search/domain"
	searchRepo "mailscope-backend/internal/search/repository"
	searchUsecase "mailscope-backend/internal/search/usecase"
	"mailscope-backend/pkg/config"
	"mailscope-backend/pkg/database"
	"mailscope-backend/pkg/filter"
	"mailscope-backend/pkg/imap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database (postgres mode only; file mode runs without one)
	var db *gorm.DB
	if cfg.StorageMode == "" || cfg.StorageMode == "postgres" {
		var err error
		db, err = database.NewPostgresConnection(cfg)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		// Auto-migrate database schemas
		if err := db.AutoMigrate(&protectiondomain.ProtectedEmail{}, &admindomain.AdminSession{}, &searchdomain.SearchHistory{}); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
	} else {
		log.Printf("Storage mode %q, postgres disabled", cfg.StorageMode)
	}

	// Initialize repositories (dependency injection)
	protectedEmailRepo, err := protectionRepo.NewProtectedEmailRepository(cfg, db)
	if err != nil {
		log.Fatal("Failed to initialize protected email store:", err)
	}
	sessionRepo, err := adminRepo.NewSessionRepository(cfg, db)
	if err != nil {
		log.Fatal("Failed to initialize session store:", err)
	}
	historyRepo, err := searchRepo.NewSearchHistoryRepository(cfg, db)
	if err != nil {
		log.Fatal("Failed to initialize search history store:", err)
	}

	// Initialize IMAP service and verification filter
	mailbox := imap.NewService(cfg)
	verificationFilter := filter.New(filter.DefaultDenylist)

	// Initialize use cases (dependency injection)
	protectionUsecaseInstance := protectionUsecase.NewProtectionUsecase(protectedEmailRepo)
	adminUsecaseInstance := adminUsecase.NewAdminUsecase(sessionRepo, cfg)
	searchUsecaseInstance := searchUsecase.NewSearchUsecase(mailbox, verificationFilter, historyRepo)

	// Initialize HTTP handler
	handler := api.NewHandler(searchUsecaseInstance, protectionUsecaseInstance, adminUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
