package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminDelivery "mailscope-backend/internal/admin/delivery"
	adminUsecase "mailscope-backend/internal/admin/usecase"
	protectionDelivery "mailscope-backend/internal/protection/delivery"
	protectionUsecase "mailscope-backend/internal/protection/usecase"
	searchDelivery "mailscope-backend/internal/search/delivery"
	searchUsecase "mailscope-backend/internal/search/usecase"
	"mailscope-backend/pkg/config"
)

func SetupRoutes(r *gin.Engine, searchUc searchUsecase.SearchUsecase, protectionUc protectionUsecase.ProtectionUsecase, adminUc adminUsecase.AdminUsecase, cfg *config.Config) {
	searchHandler := searchDelivery.NewSearchHandler(searchUc)
	protectionHandler := protectionDelivery.NewProtectionHandler(protectionUc)
	adminHandler := adminDelivery.NewAdminHandler(adminUc)
	adminAuth := adminDelivery.AdminMiddleware(adminDelivery.NewCredentialVerifier(cfg, adminUc))

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Visitor-facing routes: the access gate, then the search itself
		api.POST("/verify-access", protectionHandler.VerifyAccess)
		api.POST("/search", searchHandler.Search)

		// Admin session routes
		admin := api.Group("/admin")
		{
			admin.POST("/login", adminHandler.Login)
			admin.POST("/logout", adminHandler.Logout)
			admin.POST("/verify", adminHandler.Verify)
		}

		// Protected-email administration (admin credential required)
		protected := api.Group("/protected-emails")
		protected.Use(adminAuth)
		{
			protected.GET("", protectionHandler.List)
			protected.POST("", protectionHandler.Create)
			protected.PATCH("", protectionHandler.Update)
			protected.DELETE("", protectionHandler.Delete)
		}

		api.GET("/search-history", adminAuth, searchHandler.History)
	}
}
