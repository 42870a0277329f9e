package delivery

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	searchdto "mailscope-backend/internal/search/dto"
	"mailscope-backend/internal/search/usecase"
	"mailscope-backend/pkg/imap"
)

type SearchHandler struct {
	searchUsecase usecase.SearchUsecase
}

func NewSearchHandler(searchUsecase usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{
		searchUsecase: searchUsecase,
	}
}

func (h *SearchHandler) Search(c *gin.Context) {
	var req searchdto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "targetEmail is required and must be a valid email address"})
		return
	}

	resp, err := h.searchUsecase.Search(req.TargetEmail, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		// Transport details stay in the log; the caller gets a stable message.
		log.Printf("search: %s: %v", req.TargetEmail, err)
		if errors.Is(err, imap.ErrCredentialsNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "IMAP credentials not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search emails"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SearchHandler) History(c *gin.Context) {
	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := h.searchUsecase.RecentHistory(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get search history"})
		return
	}

	c.JSON(http.StatusOK, searchdto.HistoryResponse{Success: true, History: entries})
}
