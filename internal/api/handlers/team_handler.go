package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectmentor/projectmentor-backend/internal/service"
)

// ============================================
// Team Handler
// ============================================

type TeamHandler struct {
	teamService       service.TeamService
	membershipService service.MembershipService
}

func NewTeamHandler(teamService service.TeamService, membershipService service.MembershipService) *TeamHandler {
	return &TeamHandler{
		teamService:       teamService,
		membershipService: membershipService,
	}
}

type createTeamRequest struct {
	TeamName    string `json:"teamName" binding:"required"`
	TeamCode    string `json:"teamCode" binding:"required"`
	LeaderID    string `json:"leaderId"`
	LeaderName  string `json:"leaderName"`
	LeaderEmail string `json:"leaderEmail"`
}

// Create - Create a new team with an empty roster
// POST /teams
func (h *TeamHandler) Create(c *gin.Context) {
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), req.TeamName, req.TeamCode, req.LeaderID, req.LeaderName, req.LeaderEmail)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "team": team})
}

// Get - Fetch a team with its members
// GET /teams/:teamCode
func (h *TeamHandler) Get(c *gin.Context) {
	team, err := h.teamService.GetByCode(c.Request.Context(), c.Param("teamCode"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "team": team})
}

type sendTeamCodeRequest struct {
	LeaderEmail string `json:"leaderEmail" binding:"required"`
	LeaderName  string `json:"leaderName"`
	TeamName    string `json:"teamName"`
	TeamCode    string `json:"teamCode" binding:"required"`
}

// SendTeamCode - Mail the team code to the leader
// POST /send-team-code
func (h *TeamHandler) SendTeamCode(c *gin.Context) {
	var req sendTeamCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.teamService.SendTeamCode(c.Request.Context(), req.LeaderEmail, req.LeaderName, req.TeamName, req.TeamCode); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	TeamCode string `json:"teamCode" binding:"required"`
}

// LeaderLogin - Identity-by-code lookup for the leader dashboard
// POST /leader-login
func (h *TeamHandler) LeaderLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	session, err := h.teamService.LeaderLogin(c.Request.Context(), req.TeamCode, req.Email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"teamName":        session.TeamName,
		"teamCode":        session.TeamCode,
		"projectLocked":   session.ProjectLocked,
		"selectedProject": session.SelectedProject,
		"token":           session.Token,
	})
}

// MemberLogin - Identity-by-code lookup for an accepted member
// POST /member-login
func (h *TeamHandler) MemberLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	session, err := h.teamService.MemberLogin(c.Request.Context(), req.TeamCode, req.Email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"teamName": session.TeamName,
		"teamCode": session.TeamCode,
		"member":   session.Member,
		"token":    session.Token,
	})
}

type createMemberRequestBody struct {
	TeamCode    string `json:"teamCode" binding:"required"`
	TeamName    string `json:"teamName"`
	MemberName  string `json:"memberName" binding:"required"`
	MemberEmail string `json:"memberEmail" binding:"required"`
	MemberUID   string `json:"memberUid"`
}

// CreateRequest - Member asks to join a team
// POST /member-requests
func (h *TeamHandler) CreateRequest(c *gin.Context) {
	var req createMemberRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	request, err := h.membershipService.CreateRequest(c.Request.Context(), req.TeamCode, req.MemberName, req.MemberEmail, req.MemberUID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "request": request})
}

// ListRequests - Pending join requests for the leader UI
// GET /member-requests/:teamCode
func (h *TeamHandler) ListRequests(c *gin.Context) {
	requests, err := h.membershipService.ListPending(c.Request.Context(), c.Param("teamCode"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "requests": requests})
}

type acceptMemberRequest struct {
	RequestID string `json:"requestId" binding:"required"`
}

// AcceptMember - Accept a pending join request
// POST /teams/:teamCode/accept-member
func (h *TeamHandler) AcceptMember(c *gin.Context) {
	var req acceptMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.membershipService.Accept(c.Request.Context(), c.Param("teamCode"), req.RequestID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RejectMember - Reject a pending join request
// PUT /member-requests/:requestId/reject
func (h *TeamHandler) RejectMember(c *gin.Context) {
	if err := h.membershipService.Reject(c.Request.Context(), c.Param("requestId")); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Member rejected successfully"})
}

// ToggleMute - Flip a member's mute flag
// PUT /teams/:teamCode/members/:email/mute
func (h *TeamHandler) ToggleMute(c *gin.Context) {
	member, err := h.teamService.ToggleMute(c.Request.Context(), c.Param("teamCode"), c.Param("email"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "member": member})
}

// RemoveMember - Remove a member from the roster
// DELETE /teams/:teamCode/members/:email
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	team, err := h.teamService.RemoveMember(c.Request.Context(), c.Param("teamCode"), c.Param("email"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "team": team})
}
