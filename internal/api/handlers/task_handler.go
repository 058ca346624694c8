package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/projectmentor/projectmentor-backend/internal/repository"
	"github.com/projectmentor/projectmentor-backend/internal/service"
)

// ============================================
// Task & Submission Handler
// ============================================

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

type createTaskRequest struct {
	TeamCode    string                `json:"teamCode" binding:"required"`
	Title       string                `json:"title" binding:"required"`
	Description string                `json:"description"`
	AssignedTo  *repository.PersonRef `json:"assignedTo"`
	Deadline    *time.Time            `json:"deadline"`
	Phase       string                `json:"phase"`
}

// CreateTask - Leader adds a task against the locked project
// POST /tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), &repository.Task{
		TeamCode:    req.TeamCode,
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Deadline:    req.Deadline,
		Phase:       req.Phase,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "task": task})
}

// ListTasks - Newest-first task list for a team
// GET /tasks/team/:teamCode
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Request.Context(), c.Param("teamCode"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "tasks": tasks})
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateTask - Overwrite a task's status
// PUT /tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	task, err := h.taskService.UpdateTaskStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "task": task})
}

type createSubmissionRequest struct {
	TeamCode string               `json:"teamCode" binding:"required"`
	TaskID   *string              `json:"taskId"`
	Member   repository.PersonRef `json:"member" binding:"required"`
	WorkLink string               `json:"workLink"`
	Comments string               `json:"comments"`
}

// CreateSubmission - Member submits work, optionally against a task
// POST /submissions
func (h *TaskHandler) CreateSubmission(c *gin.Context) {
	var req createSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	sub, err := h.taskService.CreateSubmission(c.Request.Context(), &repository.Submission{
		TeamCode: req.TeamCode,
		TaskID:   req.TaskID,
		Member:   req.Member,
		WorkLink: req.WorkLink,
		Comments: req.Comments,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "submission": sub})
}

// ListSubmissions - Newest-first submissions for a team
// GET /submissions/:teamCode
func (h *TaskHandler) ListSubmissions(c *gin.Context) {
	subs, err := h.taskService.ListSubmissions(c.Request.Context(), c.Param("teamCode"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "submissions": subs})
}

// UpdateSubmission - Review a submission; approval completes its task
// PUT /submissions/:id
func (h *TaskHandler) UpdateSubmission(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	sub, err := h.taskService.UpdateSubmissionStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "submission": sub})
}
