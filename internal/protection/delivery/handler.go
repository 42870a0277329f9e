package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	protectiondto "mailscope-backend/internal/protection/dto"
	"mailscope-backend/internal/protection/repository"
	"mailscope-backend/internal/protection/usecase"
)

type ProtectionHandler struct {
	protectionUsecase usecase.ProtectionUsecase
}

func NewProtectionHandler(protectionUsecase usecase.ProtectionUsecase) *ProtectionHandler {
	return &ProtectionHandler{
		protectionUsecase: protectionUsecase,
	}
}

// VerifyAccess is the public gate callers must pass before searching a
// protected address. Key-required and invalid-key outcomes get distinct
// authorization statuses.
func (h *ProtectionHandler) VerifyAccess(c *gin.Context) {
	var req protectiondto.VerifyAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	decision, err := h.protectionUsecase.CheckAccess(req.Email, req.AccessKey)
	switch {
	case errors.Is(err, usecase.ErrKeyRequired):
		c.JSON(http.StatusUnauthorized, protectiondto.VerifyAccessResponse{
			Protected: true,
			Locked:    true,
			Message:   "Access key required",
		})
	case errors.Is(err, usecase.ErrInvalidKey):
		c.JSON(http.StatusForbidden, protectiondto.VerifyAccessResponse{
			Protected: true,
			Locked:    true,
			Message:   "Invalid access key",
		})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify access"})
	case !decision.Protected:
		c.JSON(http.StatusOK, protectiondto.VerifyAccessResponse{
			Success: true,
			Message: "Email is not protected",
		})
	default:
		c.JSON(http.StatusOK, protectiondto.VerifyAccessResponse{
			Success:   true,
			Protected: true,
			Message:   "Access granted",
		})
	}
}

func (h *ProtectionHandler) List(c *gin.Context) {
	emails, stats, err := h.protectionUsecase.ListProtectedEmails()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get protected emails"})
		return
	}

	c.JSON(http.StatusOK, protectiondto.ProtectedEmailListResponse{
		Success: true,
		Emails:  emails,
		Stats:   stats,
	})
}

func (h *ProtectionHandler) Create(c *gin.Context) {
	var req protectiondto.CreateProtectedEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	record, err := h.protectionUsecase.AddProtectedEmail(req.Email, req.AccessKey)
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email address"})
	case errors.Is(err, repository.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "email is already protected"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add protected email"})
	default:
		c.JSON(http.StatusOK, protectiondto.ProtectedEmailResponse{Success: true, Email: record})
	}
}

func (h *ProtectionHandler) Update(c *gin.Context) {
	var req protectiondto.UpdateProtectedEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email ID is required"})
		return
	}

	record, err := h.protectionUsecase.UpdateProtectedEmail(&req)
	switch {
	case errors.Is(err, usecase.ErrNoUpdates), errors.Is(err, usecase.ErrInvalidUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "email not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update protected email"})
	default:
		c.JSON(http.StatusOK, protectiondto.ProtectedEmailResponse{Success: true, Email: record})
	}
}

func (h *ProtectionHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email ID is required"})
		return
	}

	err := h.protectionUsecase.DeleteProtectedEmail(id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "email not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete protected email"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "email deleted successfully"})
	}
}
