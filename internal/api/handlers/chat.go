package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexvelboy/contact-api/internal/api/dto/v1/chat"
	"github.com/alexvelboy/contact-api/internal/chatbot"
)

type ChatHandler struct{}

func NewChatHandler() *ChatHandler {
	return &ChatHandler{}
}

// Respond returns the scripted reply for a chat widget message
func (h *ChatHandler) Respond(c *gin.Context) {
	var req chat.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, chat.ChatError{Error: "Message is required."})
		return
	}

	c.JSON(http.StatusOK, chat.ChatResponse{
		Reply: chatbot.Reply(req.Message, req.Lang),
	})
}
