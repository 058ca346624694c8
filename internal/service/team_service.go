package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/projectmentor/projectmentor-backend/internal/config"
	"github.com/projectmentor/projectmentor-backend/internal/email"
	"github.com/projectmentor/projectmentor-backend/internal/repository"
)

// ============================================
// Team Service
// ============================================

// LeaderSession is the leader-login result
type LeaderSession struct {
	TeamName        string  `json:"teamName"`
	TeamCode        string  `json:"teamCode"`
	ProjectLocked   bool    `json:"projectLocked"`
	SelectedProject *string `json:"selectedProject"`
	Token           string  `json:"token,omitempty"`
}

// MemberSession is the member-login result
type MemberSession struct {
	TeamName string                 `json:"teamName"`
	TeamCode string                 `json:"teamCode"`
	Member   *repository.TeamMember `json:"member"`
	Token    string                 `json:"token,omitempty"`
}

// TeamService defines team directory operations
type TeamService interface {
	Create(ctx context.Context, teamName, teamCode, leaderID, leaderName, leaderEmail string) (*repository.Team, error)
	GetByCode(ctx context.Context, teamCode string) (*repository.Team, error)
	SendTeamCode(ctx context.Context, leaderEmail, leaderName, teamName, teamCode string) error

	LeaderLogin(ctx context.Context, teamCode, email string) (*LeaderSession, error)
	MemberLogin(ctx context.Context, teamCode, email string) (*MemberSession, error)

	// Member moderation (leader)
	ToggleMute(ctx context.Context, teamCode, memberEmail string) (*repository.TeamMember, error)
	RemoveMember(ctx context.Context, teamCode, memberEmail string) (*repository.Team, error)
}

type teamService struct {
	cfg         *config.Config
	teamRepo    repository.TeamRepository
	projectRepo repository.ProjectRepository
	emailSvc    *email.Service
}

// NewTeamService creates a new team service
func NewTeamService(cfg *config.Config, teamRepo repository.TeamRepository, projectRepo repository.ProjectRepository, emailSvc *email.Service) TeamService {
	return &teamService{
		cfg:         cfg,
		teamRepo:    teamRepo,
		projectRepo: projectRepo,
		emailSvc:    emailSvc,
	}
}

func (s *teamService) Create(ctx context.Context, teamName, teamCode, leaderID, leaderName, leaderEmail string) (*repository.Team, error) {
	existing, err := s.teamRepo.FindByCode(ctx, teamCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTeamCodeExists
	}

	team := &repository.Team{
		TeamName:    teamName,
		TeamCode:    teamCode,
		LeaderID:    leaderID,
		LeaderName:  leaderName,
		LeaderEmail: leaderEmail,
		Members:     []*repository.TeamMember{},
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		// The unique index closes the window between the check above
		// and the insert.
		if errors.Is(err, repository.ErrDuplicateTeamCode) {
			return nil, ErrTeamCodeExists
		}
		return nil, err
	}
	return team, nil
}

func (s *teamService) GetByCode(ctx context.Context, teamCode string) (*repository.Team, error) {
	team, err := s.teamRepo.FindByCode(ctx, teamCode)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	members, err := s.teamRepo.FindMembers(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	team.Members = members
	return team, nil
}

func (s *teamService) SendTeamCode(ctx context.Context, leaderEmail, leaderName, teamName, teamCode string) error {
	if s.emailSvc == nil {
		log.Println("[Team] Email not configured, team code not sent")
		return nil
	}
	return s.emailSvc.SendTeamCode(leaderEmail, email.TeamCodeData{
		LeaderName: leaderName,
		TeamName:   teamName,
		TeamCode:   teamCode,
	})
}

func (s *teamService) LeaderLogin(ctx context.Context, teamCode, loginEmail string) (*LeaderSession, error) {
	team, err := s.teamRepo.FindByCode(ctx, teamCode)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	if !strings.EqualFold(team.LeaderEmail, loginEmail) {
		return nil, ErrInvalidLeader
	}

	project, err := s.projectRepo.FindByTeamID(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	session := &LeaderSession{
		TeamName:      team.TeamName,
		TeamCode:      team.TeamCode,
		ProjectLocked: project != nil,
	}
	if project != nil {
		session.SelectedProject = &project.ProjectName
	}

	token, err := newDashboardToken(s.cfg.JWTSecret, team.TeamCode, team.LeaderEmail, "leader", s.cfg.JWTExpiry)
	if err != nil {
		return nil, err
	}
	session.Token = token
	return session, nil
}

func (s *teamService) MemberLogin(ctx context.Context, teamCode, loginEmail string) (*MemberSession, error) {
	team, err := s.teamRepo.FindByCode(ctx, teamCode)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	member, err := s.teamRepo.FindMemberByEmail(ctx, team.ID, loginEmail)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrNotTeamMember
	}

	token, err := newDashboardToken(s.cfg.JWTSecret, team.TeamCode, member.Email, "member", s.cfg.JWTExpiry)
	if err != nil {
		return nil, err
	}

	return &MemberSession{
		TeamName: team.TeamName,
		TeamCode: team.TeamCode,
		Member:   member,
		Token:    token,
	}, nil
}

func (s *teamService) ToggleMute(ctx context.Context, teamCode, memberEmail string) (*repository.TeamMember, error) {
	team, err := s.teamRepo.FindByCode(ctx, teamCode)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	member, err := s.teamRepo.ToggleMute(ctx, team.ID, memberEmail)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

func (s *teamService) RemoveMember(ctx context.Context, teamCode, memberEmail string) (*repository.Team, error) {
	team, err := s.teamRepo.FindByCode(ctx, teamCode)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	if err := s.teamRepo.RemoveMember(ctx, team.ID, memberEmail); err != nil {
		return nil, err
	}

	members, err := s.teamRepo.FindMembers(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	team.Members = members
	return team, nil
}
