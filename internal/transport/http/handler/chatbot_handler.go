package handler

import (
	"github.com/gin-gonic/gin"

	"smartfarm-api/internal/feature/chatbot"
	"smartfarm-api/internal/transport/http/apperr"
	"smartfarm-api/internal/transport/http/response"
)

type ChatbotHandler struct {
	svc *chatbot.Service
}

func NewChatbotHandler(svc *chatbot.Service) *ChatbotHandler {
	return &ChatbotHandler{svc: svc}
}

func (h *ChatbotHandler) Mount(private *gin.RouterGroup) {
	private.POST("/query", h.Query)
}

type chatbotQueryIn struct {
	Query string `json:"query" binding:"required"`
}

// Query POST /api/chatbot/query
// 上游失败直接上抛（502），不重试
func (h *ChatbotHandler) Query(c *gin.Context) {
	var in chatbotQueryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.BadRequest("query is required"))
		return
	}
	answer, err := h.svc.Answer(c.Request.Context(), in.Query)
	if err != nil {
		response.Fail(c, apperr.Upstream("chatbot service unavailable", err))
		return
	}
	response.JSON(c, 200, gin.H{
		"message":  "Chatbot response",
		"query":    in.Query,
		"response": answer,
	})
}
