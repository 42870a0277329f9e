package api

import (
	"github.com/gin-gonic/gin"

	adminUsecase "mailscope-backend/internal/admin/usecase"
	protectionUsecase "mailscope-backend/internal/protection/usecase"
	searchUsecase "mailscope-backend/internal/search/usecase"
	"mailscope-backend/pkg/config"
)

type Handler struct {
	searchUsecase     searchUsecase.SearchUsecase
	protectionUsecase protectionUsecase.ProtectionUsecase
	adminUsecase      adminUsecase.AdminUsecase
	config            *config.Config
}

func NewHandler(searchUc searchUsecase.SearchUsecase, protectionUc protectionUsecase.ProtectionUsecase, adminUc adminUsecase.AdminUsecase, cfg *config.Config) *Handler {
	return &Handler{
		searchUsecase:     searchUc,
		protectionUsecase: protectionUc,
		adminUsecase:      adminUc,
		config:            cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, X-Admin-Key, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.searchUsecase, h.protectionUsecase, h.adminUsecase, h.config)

	return r.Run(addr)
}
