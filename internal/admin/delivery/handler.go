package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	admindto "mailscope-backend/internal/admin/dto"
	"mailscope-backend/internal/admin/usecase"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req admindto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	resp, err := h.adminUsecase.Login(req.Password, c.ClientIP(), c.Request.UserAgent())
	switch {
	case errors.Is(err, usecase.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
	case errors.Is(err, usecase.ErrPasswordNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "admin password not configured"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
	default:
		c.JSON(http.StatusOK, resp)
	}
}

func (h *AdminHandler) Logout(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no token provided"})
		return
	}

	err := h.adminUsecase.Logout(token)
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged out successfully"})
	}
}

func (h *AdminHandler) Verify(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, admindto.VerifyResponse{})
		return
	}

	session, err := h.adminUsecase.VerifySession(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, admindto.VerifyResponse{})
		return
	}

	c.JSON(http.StatusOK, admindto.VerifyResponse{
		Success: true,
		Valid:   true,
		Session: &admindto.SessionInfo{
			ID:             session.ID,
			Username:       session.Username,
			CreatedAt:      session.CreatedAt,
			ExpiresAt:      session.ExpiresAt,
			LastActivityAt: session.LastActivityAt,
		},
	})
}
