package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectmentor/projectmentor-backend/internal/service"
)

// ============================================
// Project Handler
// ============================================

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

type generateProjectRequest struct {
	Domain     string `json:"domain"`
	Type       string `json:"type"`
	SkillLevel string `json:"skillLevel"`
	TeamName   string `json:"teamName"`
	TeamCode   string `json:"teamCode"`
}

// Generate - Propose up to 3 unused templates for the requested criteria
// POST /generate-project
func (h *ProjectHandler) Generate(c *gin.Context) {
	var req generateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	candidates, err := h.projectService.Generate(c.Request.Context(), req.Domain, req.Type, req.SkillLevel)
	if err != nil {
		// Allocation failures report under "message", not "error".
		if errors.Is(err, service.ErrNoTemplates) || errors.Is(err, service.ErrTemplatesExhausted) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "projects": candidates})
}

type lockProjectRequest struct {
	TemplateID       int      `json:"templateId" binding:"required"`
	TeamID           string   `json:"teamId" binding:"required"`
	ProjectName      string   `json:"projectName"`
	Domain           string   `json:"domain"`
	Type             string   `json:"type"`
	SkillLevel       string   `json:"skillLevel"`
	ProblemStatement string   `json:"problemStatement"`
	ProposedSolution string   `json:"proposedSolution"`
	KeyFeatures      []string `json:"keyFeatures"`
	LeaderName       string   `json:"leaderName"`
	LeaderEmail      string   `json:"leaderEmail"`
	TeamName         string   `json:"teamName"`
}

// Lock - Materialize the chosen template as the team's project
// POST /lock-project
// The teamId field carries the team code; the original client sends it
// under that name.
func (h *ProjectHandler) Lock(c *gin.Context) {
	var req lockProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	project, err := h.projectService.Lock(c.Request.Context(), service.LockInput{
		TeamCode:         req.TeamID,
		TemplateID:       req.TemplateID,
		ProjectName:      req.ProjectName,
		Domain:           req.Domain,
		Type:             req.Type,
		SkillLevel:       req.SkillLevel,
		ProblemStatement: req.ProblemStatement,
		ProposedSolution: req.ProposedSolution,
		KeyFeatures:      req.KeyFeatures,
		LeaderName:       req.LeaderName,
		LeaderEmail:      req.LeaderEmail,
		TeamName:         req.TeamName,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"projectId": project.ID,
		"message":   "Project locked successfully",
	})
}

// GetByTeam - Fetch the team's locked project, or null before lock
// GET /projects/team/:teamCode
func (h *ProjectHandler) GetByTeam(c *gin.Context) {
	project, err := h.projectService.GetByTeamCode(c.Request.Context(), c.Param("teamCode"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if project == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "project": nil, "message": "No project locked yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}

// The four field endpoints below serve one text blob each. They are
// POST because the original client calls them that way.

// GetRoadmap - POST /projects/:id/roadmap
func (h *ProjectHandler) GetRoadmap(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fieldError(c, err)
		return
	}

	roadmap := project.Roadmap
	if roadmap == "" {
		roadmap = project.DetailedRoadmap
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "roadmap": roadmap})
}

// GetTasks - POST /projects/:id/tasks
func (h *ProjectHandler) GetTasks(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fieldError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "tasks": project.Tasks})
}

// GetSummary - POST /projects/:id/summary
func (h *ProjectHandler) GetSummary(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fieldError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "summary": project.Summary})
}

// GetVivaQA - POST /projects/:id/viva-qa
func (h *ProjectHandler) GetVivaQA(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fieldError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "vivaQA": project.VivaQA})
}

// fieldError keeps the field endpoints' not-found payload under
// "message" the way the original responds.
func (h *ProjectHandler) fieldError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrProjectNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Project not found"})
		return
	}
	handleServiceError(c, err)
}
