package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Duplicate-key sentinels. The schema enforces the uniqueness rules
// (team code, one pending request per member, one project per team,
// one team per template); repositories translate the violations so
// services never see raw pg errors.
var (
	ErrDuplicateTeamCode       = errors.New("team code already exists")
	ErrDuplicateMember         = errors.New("member already in team")
	ErrDuplicatePendingRequest = errors.New("pending request already exists")
	ErrDuplicateProject        = errors.New("team already has a project")
	ErrTemplateTaken           = errors.New("template already taken")
)

// Repositories holds all repository implementations
type Repositories struct {
	TeamRepo          TeamRepository
	MemberRequestRepo MemberRequestRepository
	ProjectRepo       ProjectRepository
	TaskRepo          TaskRepository
	SubmissionRepo    SubmissionRepository
	MessageRepo       MessageRepository
}

// NewRepositories creates all PostgreSQL repositories
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		TeamRepo:          NewPgTeamRepository(pool),
		MemberRequestRepo: NewPgMemberRequestRepository(pool),
		ProjectRepo:       NewPgProjectRepository(pool),
		TaskRepo:          NewPgTaskRepository(pool),
		SubmissionRepo:    NewPgSubmissionRepository(pool),
		MessageRepo:       NewPgMessageRepository(pool),
	}
}

// isUniqueViolation reports whether err is a unique violation on the
// named constraint (empty name matches any unique violation).
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != "23505" {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
