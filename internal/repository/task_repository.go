package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PersonRef is a denormalized snapshot of a person (not a live
// reference to a member record).
type PersonRef struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	UID   string `json:"uid"`
}

// Task statuses. Transitions are caller-driven: any status string from
// the set overwrites the prior one unconditionally. Submissions also
// move tasks to submitted/completed as side effects.
const (
	TaskPending    = "pending"
	TaskInProgress = "in-progress"
	TaskSubmitted  = "submitted"
	TaskCompleted  = "completed"
)

// Submission statuses
const (
	SubmissionPending       = "pending"
	SubmissionApproved      = "approved"
	SubmissionNeedsRevision = "needs-revision"
)

// Task is one unit of work on a team's locked project.
type Task struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	TeamCode    string     `json:"teamCode"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssignedTo  *PersonRef `json:"assignedTo,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Phase       string     `json:"phase"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Submission is submitted work, optionally linked to a task.
type Submission struct {
	ID        string    `json:"id"`
	TaskID    *string   `json:"taskId,omitempty"`
	TeamCode  string    `json:"teamCode"`
	Member    PersonRef `json:"member"`
	WorkLink  string    `json:"workLink"`
	Comments  string    `json:"comments"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// TaskRepository defines task data operations
type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	FindByID(ctx context.Context, id string) (*Task, error)
	FindByTeamCode(ctx context.Context, teamCode string) ([]*Task, error)
	UpdateStatus(ctx context.Context, id, status string) (*Task, error)
}

// SubmissionRepository defines submission data operations
type SubmissionRepository interface {
	Create(ctx context.Context, submission *Submission) error
	FindByID(ctx context.Context, id string) (*Submission, error)
	FindByTeamCode(ctx context.Context, teamCode string) ([]*Submission, error)
	UpdateStatus(ctx context.Context, id, status string) (*Submission, error)
}

// ============================================
// PostgreSQL Task Repository Implementation
// ============================================

type pgTaskRepository struct {
	pool *pgxpool.Pool
}

// NewPgTaskRepository creates a new PostgreSQL task repository
func NewPgTaskRepository(pool *pgxpool.Pool) TaskRepository {
	return &pgTaskRepository{pool: pool}
}

func (r *pgTaskRepository) Create(ctx context.Context, task *Task) error {
	if task.Phase == "" {
		task.Phase = "Phase 1"
	}
	if task.Status == "" {
		task.Status = TaskPending
	}
	var name, email, uid *string
	if task.AssignedTo != nil {
		name, email, uid = &task.AssignedTo.Name, &task.AssignedTo.Email, &task.AssignedTo.UID
	}
	query := `
		INSERT INTO tasks (project_id, team_code, title, description,
			assignee_name, assignee_email, assignee_uid, deadline, phase, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`
	return r.pool.QueryRow(ctx, query,
		task.ProjectID, task.TeamCode, task.Title, task.Description,
		name, email, uid, task.Deadline, task.Phase, task.Status,
	).Scan(&task.ID, &task.CreatedAt)
}

const taskColumns = `id, project_id, team_code, title, description,
	assignee_name, assignee_email, assignee_uid, deadline, phase, status, created_at`

func scanTask(row pgx.Row) (*Task, error) {
	task := &Task{}
	var name, email, uid *string
	err := row.Scan(
		&task.ID, &task.ProjectID, &task.TeamCode, &task.Title, &task.Description,
		&name, &email, &uid, &task.Deadline, &task.Phase, &task.Status, &task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if name != nil || email != nil || uid != nil {
		task.AssignedTo = &PersonRef{}
		if name != nil {
			task.AssignedTo.Name = *name
		}
		if email != nil {
			task.AssignedTo.Email = *email
		}
		if uid != nil {
			task.AssignedTo.UID = *uid
		}
	}
	return task, nil
}

func (r *pgTaskRepository) FindByID(ctx context.Context, id string) (*Task, error) {
	task, err := scanTask(r.pool.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return task, err
}

func (r *pgTaskRepository) FindByTeamCode(ctx context.Context, teamCode string) ([]*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE LOWER(team_code) = LOWER($1) ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, teamCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *pgTaskRepository) UpdateStatus(ctx context.Context, id, status string) (*Task, error) {
	query := `UPDATE tasks SET status = $2 WHERE id = $1 RETURNING ` + taskColumns
	task, err := scanTask(r.pool.QueryRow(ctx, query, id, status))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return task, err
}

// ============================================
// PostgreSQL Submission Repository Implementation
// ============================================

type pgSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubmissionRepository creates a new PostgreSQL submission repository
func NewPgSubmissionRepository(pool *pgxpool.Pool) SubmissionRepository {
	return &pgSubmissionRepository{pool: pool}
}

func (r *pgSubmissionRepository) Create(ctx context.Context, submission *Submission) error {
	if submission.Status == "" {
		submission.Status = SubmissionPending
	}
	query := `
		INSERT INTO submissions (task_id, team_code, member_name, member_email, member_uid,
			work_link, comments, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	return r.pool.QueryRow(ctx, query,
		submission.TaskID, submission.TeamCode,
		submission.Member.Name, submission.Member.Email, submission.Member.UID,
		submission.WorkLink, submission.Comments, submission.Status,
	).Scan(&submission.ID, &submission.CreatedAt)
}

const submissionColumns = `id, task_id, team_code, member_name, member_email, member_uid,
	work_link, comments, status, created_at`

func scanSubmission(row pgx.Row) (*Submission, error) {
	submission := &Submission{}
	err := row.Scan(
		&submission.ID, &submission.TaskID, &submission.TeamCode,
		&submission.Member.Name, &submission.Member.Email, &submission.Member.UID,
		&submission.WorkLink, &submission.Comments, &submission.Status, &submission.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return submission, nil
}

func (r *pgSubmissionRepository) FindByID(ctx context.Context, id string) (*Submission, error) {
	submission, err := scanSubmission(r.pool.QueryRow(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return submission, err
}

func (r *pgSubmissionRepository) FindByTeamCode(ctx context.Context, teamCode string) ([]*Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE LOWER(team_code) = LOWER($1) ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, teamCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := []*Submission{}
	for rows.Next() {
		submission, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, submission)
	}
	return submissions, nil
}

func (r *pgSubmissionRepository) UpdateStatus(ctx context.Context, id, status string) (*Submission, error) {
	query := `UPDATE submissions SET status = $2 WHERE id = $1 RETURNING ` + submissionColumns
	submission, err := scanSubmission(r.pool.QueryRow(ctx, query, id, status))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return submission, err
}
