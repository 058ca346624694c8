package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectmentor/projectmentor-backend/internal/repository"
	"github.com/projectmentor/projectmentor-backend/internal/service"
)

// ============================================
// Chat Handler
// ============================================

type ChatHandler struct {
	chatService service.ChatService
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

type sendMessageRequest struct {
	TeamCode string               `json:"teamCode" binding:"required"`
	Sender   repository.PersonRef `json:"sender" binding:"required"`
	Content  string               `json:"content" binding:"required"`
}

// Send - Append a chat message; muted senders are rejected
// POST /messages
func (h *ChatHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	msg, err := h.chatService.Send(c.Request.Context(), &repository.Message{
		TeamCode: req.TeamCode,
		Sender:   req.Sender,
		Content:  req.Content,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": msg})
}

// List - Oldest-first message log for a team
// GET /messages/:teamCode
func (h *ChatHandler) List(c *gin.Context) {
	messages, err := h.chatService.List(c.Request.Context(), c.Param("teamCode"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
}

// TogglePin - Flip a message's pinned flag
// PUT /messages/:id/pin
func (h *ChatHandler) TogglePin(c *gin.Context) {
	msg, err := h.chatService.TogglePin(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

// Delete - Hard-delete a message; a missing id is not an error
// DELETE /messages/:id
func (h *ChatHandler) Delete(c *gin.Context) {
	if err := h.chatService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Deleted"})
}
