package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all HTTP endpoints onto the engine.
func RegisterRoutes(r *gin.Engine, insightHandler *InsightHandler, chatHandler *ChatHandler) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "SymptoCare API is running."})
	})

	r.GET("/insights/summary", insightHandler.WeeklySummary)
	r.POST("/weekly-summary", insightHandler.SummarizeEntries)
	r.POST("/chat", chatHandler.Chat)
}
