package service

import (
	"context"
	"errors"
	"time"

	"github.com/projectmentor/projectmentor-backend/internal/config"
	"github.com/projectmentor/projectmentor-backend/internal/email"
	"github.com/projectmentor/projectmentor-backend/internal/repository"
)

// Service errors. Handlers surface these messages to the UI verbatim,
// so they are phrased for the end user.
var (
	ErrTeamNotFound       = errors.New("Team not found")
	ErrTeamCodeExists     = errors.New("Team code already exists")
	ErrRequestNotFound    = errors.New("Request not found")
	ErrRequestPending     = errors.New("Request already pending")
	ErrRequestHandled     = errors.New("Request already handled")
	ErrAlreadyMember      = errors.New("Member already in this team")
	ErrMemberNotFound     = errors.New("Member not found")
	ErrNotTeamMember      = errors.New("Member not found in this team. Please accept request first.")
	ErrInvalidLeader      = errors.New("Invalid Leader Email for this Team Code.")
	ErrProjectNotFound    = errors.New("Project not found")
	ErrNoProject          = errors.New("Project not locked yet")
	ErrProjectLocked      = errors.New("Project already locked for this team")
	ErrTemplateTaken      = errors.New("Template already taken by another team. Please generate again.")
	ErrNoTemplates        = errors.New("No templates available for this domain / type / level.")
	ErrTemplatesExhausted = errors.New("All templates for this combination are already used by other teams.")
	ErrTaskNotFound       = errors.New("Task not found")
	ErrSubmissionNotFound = errors.New("Submission not found")
	ErrInvalidStatus      = errors.New("Invalid status value")
	ErrMuted              = errors.New("You are muted.")
	ErrMessageNotFound    = errors.New("Message not found")
)

// Cache is the subset of the Redis wrapper the services use. It stays
// optional: a nil Cache disables caching without disabling anything
// else.
type Cache interface {
	SetCache(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	GetCache(ctx context.Context, key string, dest interface{}) error
	InvalidateCache(ctx context.Context, pattern string) error
}

// ============================================
// Services Container
// ============================================

type Services struct {
	Team       TeamService
	Membership MembershipService
	Project    ProjectService
	Task       TaskService
	Chat       ChatService
}

// ServiceDeps contains all dependencies needed to create services
type ServiceDeps struct {
	Config   *config.Config
	Repos    *repository.Repositories
	EmailSvc *email.Service
	Cache    Cache
}

func NewServices(deps *ServiceDeps) *Services {
	return &Services{
		Team: NewTeamService(
			deps.Config,
			deps.Repos.TeamRepo,
			deps.Repos.ProjectRepo,
			deps.EmailSvc,
		),
		Membership: NewMembershipService(
			deps.Repos.TeamRepo,
			deps.Repos.MemberRequestRepo,
			deps.EmailSvc,
		),
		Project: NewProjectService(
			deps.Repos.TeamRepo,
			deps.Repos.ProjectRepo,
			deps.EmailSvc,
			deps.Cache,
		),
		Task: NewTaskService(
			deps.Repos.TeamRepo,
			deps.Repos.ProjectRepo,
			deps.Repos.TaskRepo,
			deps.Repos.SubmissionRepo,
		),
		Chat: NewChatService(
			deps.Repos.TeamRepo,
			deps.Repos.MessageRepo,
		),
	}
}
