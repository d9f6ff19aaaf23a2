package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/symptocare/symptocare/internal/logger"
	"github.com/symptocare/symptocare/internal/types"
	"github.com/symptocare/symptocare/internal/types/interfaces"
)

// InsightHandler serves the summarization endpoints.
type InsightHandler struct {
	summaryService interfaces.SummaryService
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(summaryService interfaces.SummaryService) *InsightHandler {
	return &InsightHandler{summaryService: summaryService}
}

// WeeklySummary handles GET /insights/summary. A missing user_id is rejected
// before any external call is made; a fetch failure surfaces as a generic 500.
func (h *InsightHandler) WeeklySummary(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	ctx := c.Request.Context()
	summary, err := h.summaryService.WeeklySummary(ctx, userID)
	if err != nil {
		logger.Errorf(ctx, "weekly summary failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate weekly summary"})
		return
	}

	c.JSON(http.StatusOK, types.SummaryResponse{Summary: summary})
}

// SummarizeEntries handles POST /weekly-summary, running the pipeline directly
// on caller-supplied entries with no fetch step.
func (h *InsightHandler) SummarizeEntries(c *gin.Context) {
	var req types.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	entries := types.NormalizeEntries(req.Entries)
	summary := h.summaryService.SummarizeEntries(c.Request.Context(), entries)

	c.JSON(http.StatusOK, types.SummaryResponse{Summary: summary})
}
