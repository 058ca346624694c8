package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectmentor/projectmentor-backend/internal/service"
)

// ============================================
// Handlers Container
// ============================================

// Handlers contains all HTTP handlers
type Handlers struct {
	Team    *TeamHandler
	Project *ProjectHandler
	Task    *TaskHandler
	Chat    *ChatHandler
}

// NewHandlers creates all handlers
func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Team:    &TeamHandler{teamService: services.Team, membershipService: services.Membership},
		Project: &ProjectHandler{projectService: services.Project},
		Task:    &TaskHandler{taskService: services.Task},
		Chat:    &ChatHandler{chatService: services.Chat},
	}
}

// handleServiceError maps service errors onto HTTP status codes. Every
// payload carries success:false and the error message under "error";
// the allocation endpoint overrides this to use "message".
func handleServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, service.ErrTeamNotFound),
		errors.Is(err, service.ErrRequestNotFound),
		errors.Is(err, service.ErrProjectNotFound),
		errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, service.ErrSubmissionNotFound),
		errors.Is(err, service.ErrMessageNotFound),
		errors.Is(err, service.ErrMemberNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrTeamCodeExists),
		errors.Is(err, service.ErrRequestPending),
		errors.Is(err, service.ErrRequestHandled),
		errors.Is(err, service.ErrAlreadyMember),
		errors.Is(err, service.ErrProjectLocked),
		errors.Is(err, service.ErrTemplateTaken):
		status = http.StatusConflict
	case errors.Is(err, service.ErrNoProject),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrNoTemplates),
		errors.Is(err, service.ErrTemplatesExhausted):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidLeader),
		errors.Is(err, service.ErrNotTeamMember):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrMuted):
		status = http.StatusForbidden
	}

	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}
