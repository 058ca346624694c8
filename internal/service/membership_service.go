package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/projectmentor/projectmentor-backend/internal/email"
	"github.com/projectmentor/projectmentor-backend/internal/repository"
)

// ============================================
// Membership Service (join-request lifecycle)
// ============================================

// MembershipService drives the join-request state machine:
// pending -> accepted | rejected, both terminal.
type MembershipService interface {
	CreateRequest(ctx context.Context, teamCode, memberName, memberEmail, memberUID string) (*repository.MemberRequest, error)
	ListPending(ctx context.Context, teamCode string) ([]*repository.MemberRequest, error)
	Accept(ctx context.Context, teamCode, requestID string) error
	Reject(ctx context.Context, requestID string) error
}

type membershipService struct {
	teamRepo    repository.TeamRepository
	requestRepo repository.MemberRequestRepository
	emailSvc    *email.Service
}

// NewMembershipService creates a new membership service
func NewMembershipService(teamRepo repository.TeamRepository, requestRepo repository.MemberRequestRepository, emailSvc *email.Service) MembershipService {
	return &membershipService{
		teamRepo:    teamRepo,
		requestRepo: requestRepo,
		emailSvc:    emailSvc,
	}
}

func (s *membershipService) CreateRequest(ctx context.Context, teamCode, memberName, memberEmail, memberUID string) (*repository.MemberRequest, error) {
	team, err := s.teamRepo.FindByCode(ctx, teamCode)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	existing, err := s.requestRepo.FindPending(ctx, teamCode, memberEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrRequestPending
	}

	request := &repository.MemberRequest{
		TeamName:    team.TeamName,
		TeamCode:    teamCode,
		MemberName:  memberName,
		MemberEmail: memberEmail,
		MemberUID:   memberUID,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		if errors.Is(err, repository.ErrDuplicatePendingRequest) {
			return nil, ErrRequestPending
		}
		return nil, err
	}
	return request, nil
}

func (s *membershipService) ListPending(ctx context.Context, teamCode string) ([]*repository.MemberRequest, error) {
	return s.requestRepo.FindPendingByTeam(ctx, teamCode)
}

func (s *membershipService) Accept(ctx context.Context, teamCode, requestID string) error {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	// A request belongs to exactly one team; an id from some other
	// team's request list does not exist as far as this team cares.
	if request == nil || !strings.EqualFold(request.TeamCode, teamCode) {
		return ErrRequestNotFound
	}
	if request.Status != repository.RequestPending {
		return ErrRequestHandled
	}

	team, err := s.teamRepo.FindByCode(ctx, teamCode)
	if err != nil {
		return err
	}
	if team == nil {
		return ErrTeamNotFound
	}

	member := &repository.TeamMember{
		TeamID: team.ID,
		Name:   request.MemberName,
		Email:  request.MemberEmail,
		UID:    request.MemberUID,
	}
	if err := s.teamRepo.AddMember(ctx, member); err != nil {
		if errors.Is(err, repository.ErrDuplicateMember) {
			return ErrAlreadyMember
		}
		return err
	}

	if err := s.requestRepo.UpdateStatus(ctx, requestID, repository.RequestAccepted); err != nil {
		return err
	}

	// Welcome mail is best effort; the member is already in.
	if s.emailSvc != nil {
		if err := s.emailSvc.SendWelcome(request.MemberEmail, email.WelcomeData{
			MemberName: request.MemberName,
			TeamName:   team.TeamName,
		}); err != nil {
			log.Printf("[Membership] Welcome email failed for %s: %v", request.MemberEmail, err)
		}
	}

	return nil
}

func (s *membershipService) Reject(ctx context.Context, requestID string) error {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request == nil {
		return ErrRequestNotFound
	}
	if request.Status != repository.RequestPending {
		return ErrRequestHandled
	}
	return s.requestRepo.UpdateStatus(ctx, requestID, repository.RequestRejected)
}
