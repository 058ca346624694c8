package service

// In-memory repository fakes for service tests. They emulate the
// constraint behavior of the Postgres implementations, including the
// unique indexes and case-insensitive matching on team codes and
// emails.

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/projectmentor/projectmentor-backend/internal/config"
	"github.com/projectmentor/projectmentor-backend/internal/repository"
)

var memIDCounter int

func nextID() string {
	memIDCounter++
	return fmt.Sprintf("id-%d", memIDCounter)
}

// ============================================
// Team repo fake
// ============================================

type memTeamRepo struct {
	teams   []*repository.Team
	members []*repository.TeamMember
}

func (r *memTeamRepo) Create(_ context.Context, team *repository.Team) error {
	for _, t := range r.teams {
		if strings.EqualFold(t.TeamCode, team.TeamCode) {
			return repository.ErrDuplicateTeamCode
		}
	}
	team.ID = nextID()
	team.CreatedAt = time.Now()
	team.UpdatedAt = team.CreatedAt
	r.teams = append(r.teams, team)
	return nil
}

func (r *memTeamRepo) FindByCode(_ context.Context, teamCode string) (*repository.Team, error) {
	for _, t := range r.teams {
		if strings.EqualFold(t.TeamCode, teamCode) {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memTeamRepo) AddMember(_ context.Context, member *repository.TeamMember) error {
	for _, m := range r.members {
		if m.TeamID == member.TeamID && strings.EqualFold(m.Email, member.Email) {
			return repository.ErrDuplicateMember
		}
	}
	member.ID = nextID()
	member.JoinedAt = time.Now()
	r.members = append(r.members, member)
	return nil
}

func (r *memTeamRepo) FindMembers(_ context.Context, teamID string) ([]*repository.TeamMember, error) {
	var out []*repository.TeamMember
	for _, m := range r.members {
		if m.TeamID == teamID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memTeamRepo) FindMemberByEmail(_ context.Context, teamID, email string) (*repository.TeamMember, error) {
	for _, m := range r.members {
		if m.TeamID == teamID && strings.EqualFold(m.Email, email) {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memTeamRepo) RemoveMember(_ context.Context, teamID, email string) error {
	kept := r.members[:0]
	for _, m := range r.members {
		if !(m.TeamID == teamID && strings.EqualFold(m.Email, email)) {
			kept = append(kept, m)
		}
	}
	r.members = kept
	return nil
}

func (r *memTeamRepo) ToggleMute(_ context.Context, teamID, email string) (*repository.TeamMember, error) {
	for _, m := range r.members {
		if m.TeamID == teamID && strings.EqualFold(m.Email, email) {
			m.IsMuted = !m.IsMuted
			return m, nil
		}
	}
	return nil, nil
}

// ============================================
// Member request repo fake
// ============================================

type memRequestRepo struct {
	requests []*repository.MemberRequest
}

func (r *memRequestRepo) Create(_ context.Context, req *repository.MemberRequest) error {
	for _, existing := range r.requests {
		if existing.Status == repository.RequestPending &&
			strings.EqualFold(existing.TeamCode, req.TeamCode) &&
			strings.EqualFold(existing.MemberEmail, req.MemberEmail) {
			return repository.ErrDuplicatePendingRequest
		}
	}
	req.ID = nextID()
	if req.Status == "" {
		req.Status = repository.RequestPending
	}
	req.CreatedAt = time.Now()
	r.requests = append(r.requests, req)
	return nil
}

func (r *memRequestRepo) FindByID(_ context.Context, id string) (*repository.MemberRequest, error) {
	for _, req := range r.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return nil, nil
}

func (r *memRequestRepo) FindPending(_ context.Context, teamCode, email string) (*repository.MemberRequest, error) {
	for _, req := range r.requests {
		if req.Status == repository.RequestPending &&
			strings.EqualFold(req.TeamCode, teamCode) &&
			strings.EqualFold(req.MemberEmail, email) {
			return req, nil
		}
	}
	return nil, nil
}

func (r *memRequestRepo) FindPendingByTeam(_ context.Context, teamCode string) ([]*repository.MemberRequest, error) {
	var out []*repository.MemberRequest
	for _, req := range r.requests {
		if req.Status == repository.RequestPending && strings.EqualFold(req.TeamCode, teamCode) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *memRequestRepo) UpdateStatus(_ context.Context, id, status string) error {
	for _, req := range r.requests {
		if req.ID == id {
			req.Status = status
			return nil
		}
	}
	return nil
}

func (r *memRequestRepo) DeleteOlderThan(_ context.Context, status string, olderThan time.Time) (int, error) {
	kept := r.requests[:0]
	deleted := 0
	for _, req := range r.requests {
		if req.Status == status && req.CreatedAt.Before(olderThan) {
			deleted++
			continue
		}
		kept = append(kept, req)
	}
	r.requests = kept
	return deleted, nil
}

// ============================================
// Project repo fake
// ============================================

type memProjectRepo struct {
	projects []*repository.Project
}

func (r *memProjectRepo) Create(_ context.Context, project *repository.Project) error {
	for _, p := range r.projects {
		if p.TeamID == project.TeamID {
			return repository.ErrDuplicateProject
		}
		if strings.EqualFold(p.Domain, project.Domain) &&
			strings.EqualFold(p.Type, project.Type) &&
			p.TemplateID == project.TemplateID {
			return repository.ErrTemplateTaken
		}
	}
	project.ID = nextID()
	project.Locked = true
	project.CreatedAt = time.Now()
	r.projects = append(r.projects, project)
	return nil
}

func (r *memProjectRepo) FindByID(_ context.Context, id string) (*repository.Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProjectRepo) FindByTeamID(_ context.Context, teamID string) (*repository.Project, error) {
	for _, p := range r.projects {
		if p.TeamID == teamID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProjectRepo) FindUsedTemplateIDs(_ context.Context, domain, projType string) ([]int, error) {
	var out []int
	for _, p := range r.projects {
		if strings.EqualFold(p.Domain, domain) && strings.EqualFold(p.Type, projType) {
			out = append(out, p.TemplateID)
		}
	}
	return out, nil
}

// ============================================
// Task & submission repo fakes
// ============================================

type memTaskRepo struct {
	tasks []*repository.Task
}

func (r *memTaskRepo) Create(_ context.Context, task *repository.Task) error {
	task.ID = nextID()
	if task.Status == "" {
		task.Status = repository.TaskPending
	}
	if task.Phase == "" {
		task.Phase = "Phase 1"
	}
	task.CreatedAt = time.Now()
	r.tasks = append(r.tasks, task)
	return nil
}

func (r *memTaskRepo) FindByID(_ context.Context, id string) (*repository.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *memTaskRepo) FindByTeamCode(_ context.Context, teamCode string) ([]*repository.Task, error) {
	var out []*repository.Task
	for _, t := range r.tasks {
		if strings.EqualFold(t.TeamCode, teamCode) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTaskRepo) UpdateStatus(_ context.Context, id, status string) (*repository.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id {
			t.Status = status
			return t, nil
		}
	}
	return nil, nil
}

type memSubmissionRepo struct {
	submissions []*repository.Submission
}

func (r *memSubmissionRepo) Create(_ context.Context, sub *repository.Submission) error {
	sub.ID = nextID()
	if sub.Status == "" {
		sub.Status = repository.SubmissionPending
	}
	sub.CreatedAt = time.Now()
	r.submissions = append(r.submissions, sub)
	return nil
}

func (r *memSubmissionRepo) FindByID(_ context.Context, id string) (*repository.Submission, error) {
	for _, s := range r.submissions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *memSubmissionRepo) FindByTeamCode(_ context.Context, teamCode string) ([]*repository.Submission, error) {
	var out []*repository.Submission
	for _, s := range r.submissions {
		if strings.EqualFold(s.TeamCode, teamCode) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSubmissionRepo) UpdateStatus(_ context.Context, id, status string) (*repository.Submission, error) {
	for _, s := range r.submissions {
		if s.ID == id {
			s.Status = status
			return s, nil
		}
	}
	return nil, nil
}

// ============================================
// Message repo fake
// ============================================

type memMessageRepo struct {
	messages []*repository.Message
}

func (r *memMessageRepo) Create(_ context.Context, msg *repository.Message) error {
	msg.ID = nextID()
	msg.CreatedAt = time.Now()
	r.messages = append(r.messages, msg)
	return nil
}

func (r *memMessageRepo) FindByID(_ context.Context, id string) (*repository.Message, error) {
	for _, m := range r.messages {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memMessageRepo) FindByTeamCode(_ context.Context, teamCode string) ([]*repository.Message, error) {
	var out []*repository.Message
	for _, m := range r.messages {
		if strings.EqualFold(m.TeamCode, teamCode) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMessageRepo) TogglePin(_ context.Context, id string) (*repository.Message, error) {
	for _, m := range r.messages {
		if m.ID == id {
			m.IsPinned = !m.IsPinned
			return m, nil
		}
	}
	return nil, nil
}

func (r *memMessageRepo) Delete(_ context.Context, id string) error {
	kept := r.messages[:0]
	for _, m := range r.messages {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	r.messages = kept
	return nil
}

// ============================================
// Test wiring helpers
// ============================================

type testEnv struct {
	teams       *memTeamRepo
	requests    *memRequestRepo
	projects    *memProjectRepo
	tasks       *memTaskRepo
	submissions *memSubmissionRepo
	messages    *memMessageRepo
	services    *Services
}

func newTestEnv() *testEnv {
	env := &testEnv{
		teams:       &memTeamRepo{},
		requests:    &memRequestRepo{},
		projects:    &memProjectRepo{},
		tasks:       &memTaskRepo{},
		submissions: &memSubmissionRepo{},
		messages:    &memMessageRepo{},
	}
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: 24}
	env.services = &Services{
		Team:       NewTeamService(cfg, env.teams, env.projects, nil),
		Membership: NewMembershipService(env.teams, env.requests, nil),
		Project:    NewProjectService(env.teams, env.projects, nil, nil),
		Task:       NewTaskService(env.teams, env.projects, env.tasks, env.submissions),
		Chat:       NewChatService(env.teams, env.messages),
	}
	return env
}

func (e *testEnv) createTeam(ctx context.Context, name, code, leaderEmail string) *repository.Team {
	team, err := e.services.Team.Create(ctx, name, code, "leader-uid", "Leader", leaderEmail)
	if err != nil {
		panic(err)
	}
	return team
}
