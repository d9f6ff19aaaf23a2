package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/symptocare/symptocare/internal/types"
	"github.com/symptocare/symptocare/internal/types/interfaces"
)

// ChatHandler serves the interactive chat endpoint.
type ChatHandler struct {
	chatService interfaces.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService interfaces.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat handles POST /chat. The reply is always computed; the exchange is
// logged only when the caller presented a bearer token, and that write never
// touches the response.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	ctx := c.Request.Context()
	reply := h.chatService.Reply(ctx, &req)

	if token := bearerToken(c.GetHeader("Authorization")); token != "" {
		h.chatService.LogExchange(ctx, subjectFromToken(token), req.ThreadID, reply)
	}

	c.JSON(http.StatusOK, types.ChatResponse{Reply: reply})
}

// bearerToken extracts the token from an Authorization header, or "".
func bearerToken(header string) string {
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// subjectFromToken reads the sub claim for row attribution. The token is not
// verified here; the store's own row-level policies are the authority.
func subjectFromToken(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
