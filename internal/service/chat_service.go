package service

import (
	"context"

	"github.com/projectmentor/projectmentor-backend/internal/repository"
)

// ChatService defines team chat operations
type ChatService interface {
	Send(ctx context.Context, msg *repository.Message) (*repository.Message, error)
	List(ctx context.Context, teamCode string) ([]*repository.Message, error)
	TogglePin(ctx context.Context, id string) (*repository.Message, error)
	Delete(ctx context.Context, id string) error
}

type chatService struct {
	teamRepo    repository.TeamRepository
	messageRepo repository.MessageRepository
}

// NewChatService creates a new chat service
func NewChatService(teamRepo repository.TeamRepository, messageRepo repository.MessageRepository) ChatService {
	return &chatService{
		teamRepo:    teamRepo,
		messageRepo: messageRepo,
	}
}

// Send records a chat message. Muted members are rejected before
// anything is written. A sender who is not on the roster (the leader,
// or a team that no longer exists) is let through unmuted.
func (s *chatService) Send(ctx context.Context, msg *repository.Message) (*repository.Message, error) {
	team, err := s.teamRepo.FindByCode(ctx, msg.TeamCode)
	if err != nil {
		return nil, err
	}
	if team != nil {
		member, err := s.teamRepo.FindMemberByEmail(ctx, team.ID, msg.Sender.Email)
		if err != nil {
			return nil, err
		}
		if member != nil && member.IsMuted {
			return nil, ErrMuted
		}
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *chatService) List(ctx context.Context, teamCode string) ([]*repository.Message, error) {
	return s.messageRepo.FindByTeamCode(ctx, teamCode)
}

func (s *chatService) TogglePin(ctx context.Context, id string) (*repository.Message, error) {
	msg, err := s.messageRepo.TogglePin(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, ErrMessageNotFound
	}
	return msg, nil
}

// Delete removes a message. Deleting an id that is already gone is not
// an error.
func (s *chatService) Delete(ctx context.Context, id string) error {
	return s.messageRepo.Delete(ctx, id)
}
