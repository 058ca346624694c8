package service

import (
	"context"

	"github.com/projectmentor/projectmentor-backend/internal/repository"
)

var validTaskStatuses = map[string]bool{
	repository.TaskPending:    true,
	repository.TaskInProgress: true,
	repository.TaskSubmitted:  true,
	repository.TaskCompleted:  true,
}

var validSubmissionStatuses = map[string]bool{
	repository.SubmissionPending:       true,
	repository.SubmissionApproved:      true,
	repository.SubmissionNeedsRevision: true,
}

// TaskService defines task and submission operations
type TaskService interface {
	CreateTask(ctx context.Context, task *repository.Task) (*repository.Task, error)
	ListTasks(ctx context.Context, teamCode string) ([]*repository.Task, error)
	UpdateTaskStatus(ctx context.Context, id, status string) (*repository.Task, error)
	CreateSubmission(ctx context.Context, sub *repository.Submission) (*repository.Submission, error)
	ListSubmissions(ctx context.Context, teamCode string) ([]*repository.Submission, error)
	UpdateSubmissionStatus(ctx context.Context, id, status string) (*repository.Submission, error)
}

type taskService struct {
	teamRepo       repository.TeamRepository
	projectRepo    repository.ProjectRepository
	taskRepo       repository.TaskRepository
	submissionRepo repository.SubmissionRepository
}

// NewTaskService creates a new task service
func NewTaskService(teamRepo repository.TeamRepository, projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository, submissionRepo repository.SubmissionRepository) TaskService {
	return &taskService{
		teamRepo:       teamRepo,
		projectRepo:    projectRepo,
		taskRepo:       taskRepo,
		submissionRepo: submissionRepo,
	}
}

// CreateTask adds a task for a team. Tasks only exist against a locked
// project, so the project check comes before the insert.
func (s *taskService) CreateTask(ctx context.Context, task *repository.Task) (*repository.Task, error) {
	team, err := s.teamRepo.FindByCode(ctx, task.TeamCode)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	project, err := s.projectRepo.FindByTeamID(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNoProject
	}
	task.ProjectID = project.ID

	if task.Status == "" {
		task.Status = repository.TaskPending
	}
	if !validTaskStatuses[task.Status] {
		return nil, ErrInvalidStatus
	}
	if task.Phase == "" {
		task.Phase = "Phase 1"
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, teamCode string) ([]*repository.Task, error) {
	return s.taskRepo.FindByTeamCode(ctx, teamCode)
}

func (s *taskService) UpdateTaskStatus(ctx context.Context, id, status string) (*repository.Task, error) {
	if !validTaskStatuses[status] {
		return nil, ErrInvalidStatus
	}
	task, err := s.taskRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// CreateSubmission records a member's submitted work. When it is tied
// to a task, that task flips to submitted in the same call.
func (s *taskService) CreateSubmission(ctx context.Context, sub *repository.Submission) (*repository.Submission, error) {
	if sub.TaskID != nil {
		task, err := s.taskRepo.FindByID(ctx, *sub.TaskID)
		if err != nil {
			return nil, err
		}
		if task == nil {
			return nil, ErrTaskNotFound
		}
	}

	if sub.Status == "" {
		sub.Status = repository.SubmissionPending
	}
	if !validSubmissionStatuses[sub.Status] {
		return nil, ErrInvalidStatus
	}

	if err := s.submissionRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	if sub.TaskID != nil {
		if _, err := s.taskRepo.UpdateStatus(ctx, *sub.TaskID, repository.TaskSubmitted); err != nil {
			return nil, err
		}
	}
	return sub, nil
}

func (s *taskService) ListSubmissions(ctx context.Context, teamCode string) ([]*repository.Submission, error) {
	return s.submissionRepo.FindByTeamCode(ctx, teamCode)
}

// UpdateSubmissionStatus reviews a submission. Approving one that is
// linked to a task also completes the task.
func (s *taskService) UpdateSubmissionStatus(ctx context.Context, id, status string) (*repository.Submission, error) {
	if !validSubmissionStatuses[status] {
		return nil, ErrInvalidStatus
	}

	sub, err := s.submissionRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubmissionNotFound
	}

	if status == repository.SubmissionApproved && sub.TaskID != nil {
		if _, err := s.taskRepo.UpdateStatus(ctx, *sub.TaskID, repository.TaskCompleted); err != nil {
			return nil, err
		}
	}
	return sub, nil
}
