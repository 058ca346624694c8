package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ============================================
// Team Models
// ============================================

// Team represents a team with its leader snapshot and embedded members
type Team struct {
	ID          string        `json:"id"`
	TeamName    string        `json:"teamName"`
	TeamCode    string        `json:"teamCode"`
	LeaderID    string        `json:"leaderId"`
	LeaderName  string        `json:"leaderName"`
	LeaderEmail string        `json:"leaderEmail"`
	Members     []*TeamMember `json:"members"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// TeamMember is one member of a team. Members exist only inside their
// team; there is no standalone member identity.
type TeamMember struct {
	ID       string    `json:"id"`
	TeamID   string    `json:"-"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	UID      string    `json:"uid"`
	IsMuted  bool      `json:"isMuted"`
	JoinedAt time.Time `json:"joinedDate"`
}

// MemberRequest is a request to join a team.
// Lifecycle: pending -> accepted | rejected (terminal).
type MemberRequest struct {
	ID          string    `json:"id"`
	TeamName    string    `json:"teamName"`
	TeamCode    string    `json:"teamCode"`
	MemberName  string    `json:"memberName"`
	MemberEmail string    `json:"memberEmail"`
	MemberUID   string    `json:"memberUid"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"timestamp"`
}

// Member request statuses
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

// ============================================
// Team Repository Interface
// ============================================

// TeamRepository defines team data operations. Team codes are matched
// case-insensitively everywhere, as are member emails.
type TeamRepository interface {
	Create(ctx context.Context, team *Team) error
	FindByCode(ctx context.Context, teamCode string) (*Team, error)

	// Member operations
	AddMember(ctx context.Context, member *TeamMember) error
	FindMembers(ctx context.Context, teamID string) ([]*TeamMember, error)
	FindMemberByEmail(ctx context.Context, teamID, email string) (*TeamMember, error)
	RemoveMember(ctx context.Context, teamID, email string) error
	ToggleMute(ctx context.Context, teamID, email string) (*TeamMember, error)
}

// MemberRequestRepository defines join-request data operations
type MemberRequestRepository interface {
	Create(ctx context.Context, request *MemberRequest) error
	FindByID(ctx context.Context, id string) (*MemberRequest, error)
	FindPending(ctx context.Context, teamCode, email string) (*MemberRequest, error)
	FindPendingByTeam(ctx context.Context, teamCode string) ([]*MemberRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
	DeleteOlderThan(ctx context.Context, status string, olderThan time.Time) (int, error)
}

// ============================================
// PostgreSQL Team Repository Implementation
// ============================================

type pgTeamRepository struct {
	pool *pgxpool.Pool
}

// NewPgTeamRepository creates a new PostgreSQL team repository
func NewPgTeamRepository(pool *pgxpool.Pool) TeamRepository {
	return &pgTeamRepository{pool: pool}
}

func (r *pgTeamRepository) Create(ctx context.Context, team *Team) error {
	query := `
		INSERT INTO teams (team_name, team_code, leader_id, leader_name, leader_email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		team.TeamName, team.TeamCode, team.LeaderID, team.LeaderName, team.LeaderEmail,
	).Scan(&team.ID, &team.CreatedAt, &team.UpdatedAt)
	if isUniqueViolation(err, "teams_team_code_key") {
		return ErrDuplicateTeamCode
	}
	return err
}

func (r *pgTeamRepository) FindByCode(ctx context.Context, teamCode string) (*Team, error) {
	query := `
		SELECT id, team_name, team_code, leader_id, leader_name, leader_email, created_at, updated_at
		FROM teams WHERE LOWER(team_code) = LOWER($1)
	`
	team := &Team{}
	err := r.pool.QueryRow(ctx, query, teamCode).Scan(
		&team.ID, &team.TeamName, &team.TeamCode,
		&team.LeaderID, &team.LeaderName, &team.LeaderEmail,
		&team.CreatedAt, &team.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return team, nil
}

func (r *pgTeamRepository) AddMember(ctx context.Context, member *TeamMember) error {
	query := `
		INSERT INTO team_members (team_id, name, email, uid)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_muted, joined_at
	`
	err := r.pool.QueryRow(ctx, query, member.TeamID, member.Name, member.Email, member.UID).
		Scan(&member.ID, &member.IsMuted, &member.JoinedAt)
	if isUniqueViolation(err, "team_members_email_key") {
		return ErrDuplicateMember
	}
	return err
}

func (r *pgTeamRepository) FindMembers(ctx context.Context, teamID string) ([]*TeamMember, error) {
	query := `
		SELECT id, team_id, name, email, uid, is_muted, joined_at
		FROM team_members WHERE team_id = $1
		ORDER BY joined_at
	`
	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []*TeamMember{}
	for rows.Next() {
		member := &TeamMember{}
		if err := rows.Scan(
			&member.ID, &member.TeamID, &member.Name, &member.Email,
			&member.UID, &member.IsMuted, &member.JoinedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}

func (r *pgTeamRepository) FindMemberByEmail(ctx context.Context, teamID, email string) (*TeamMember, error) {
	query := `
		SELECT id, team_id, name, email, uid, is_muted, joined_at
		FROM team_members WHERE team_id = $1 AND LOWER(email) = LOWER($2)
	`
	member := &TeamMember{}
	err := r.pool.QueryRow(ctx, query, teamID, email).Scan(
		&member.ID, &member.TeamID, &member.Name, &member.Email,
		&member.UID, &member.IsMuted, &member.JoinedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (r *pgTeamRepository) RemoveMember(ctx context.Context, teamID, email string) error {
	query := `DELETE FROM team_members WHERE team_id = $1 AND LOWER(email) = LOWER($2)`
	_, err := r.pool.Exec(ctx, query, teamID, email)
	return err
}

func (r *pgTeamRepository) ToggleMute(ctx context.Context, teamID, email string) (*TeamMember, error) {
	query := `
		UPDATE team_members SET is_muted = NOT is_muted
		WHERE team_id = $1 AND LOWER(email) = LOWER($2)
		RETURNING id, team_id, name, email, uid, is_muted, joined_at
	`
	member := &TeamMember{}
	err := r.pool.QueryRow(ctx, query, teamID, email).Scan(
		&member.ID, &member.TeamID, &member.Name, &member.Email,
		&member.UID, &member.IsMuted, &member.JoinedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return member, nil
}

// ============================================
// PostgreSQL Member Request Repository Implementation
// ============================================

type pgMemberRequestRepository struct {
	pool *pgxpool.Pool
}

// NewPgMemberRequestRepository creates a new PostgreSQL member request repository
func NewPgMemberRequestRepository(pool *pgxpool.Pool) MemberRequestRepository {
	return &pgMemberRequestRepository{pool: pool}
}

func (r *pgMemberRequestRepository) Create(ctx context.Context, request *MemberRequest) error {
	request.Status = RequestPending
	query := `
		INSERT INTO member_requests (team_name, team_code, member_name, member_email, member_uid, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		request.TeamName, request.TeamCode, request.MemberName,
		request.MemberEmail, request.MemberUID, request.Status,
	).Scan(&request.ID, &request.CreatedAt)
	if isUniqueViolation(err, "member_requests_pending_key") {
		return ErrDuplicatePendingRequest
	}
	return err
}

func (r *pgMemberRequestRepository) FindByID(ctx context.Context, id string) (*MemberRequest, error) {
	query := `
		SELECT id, team_name, team_code, member_name, member_email, member_uid, status, created_at
		FROM member_requests WHERE id = $1
	`
	request := &MemberRequest{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.TeamName, &request.TeamCode, &request.MemberName,
		&request.MemberEmail, &request.MemberUID, &request.Status, &request.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (r *pgMemberRequestRepository) FindPending(ctx context.Context, teamCode, email string) (*MemberRequest, error) {
	query := `
		SELECT id, team_name, team_code, member_name, member_email, member_uid, status, created_at
		FROM member_requests
		WHERE LOWER(team_code) = LOWER($1) AND LOWER(member_email) = LOWER($2) AND status = 'pending'
	`
	request := &MemberRequest{}
	err := r.pool.QueryRow(ctx, query, teamCode, email).Scan(
		&request.ID, &request.TeamName, &request.TeamCode, &request.MemberName,
		&request.MemberEmail, &request.MemberUID, &request.Status, &request.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (r *pgMemberRequestRepository) FindPendingByTeam(ctx context.Context, teamCode string) ([]*MemberRequest, error) {
	query := `
		SELECT id, team_name, team_code, member_name, member_email, member_uid, status, created_at
		FROM member_requests
		WHERE LOWER(team_code) = LOWER($1) AND status = 'pending'
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, teamCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []*MemberRequest{}
	for rows.Next() {
		request := &MemberRequest{}
		if err := rows.Scan(
			&request.ID, &request.TeamName, &request.TeamCode, &request.MemberName,
			&request.MemberEmail, &request.MemberUID, &request.Status, &request.CreatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, nil
}

func (r *pgMemberRequestRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE member_requests SET status = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, status)
	return err
}

func (r *pgMemberRequestRepository) DeleteOlderThan(ctx context.Context, status string, olderThan time.Time) (int, error) {
	query := `DELETE FROM member_requests WHERE status = $1 AND created_at < $2`
	result, err := r.pool.Exec(ctx, query, status, olderThan)
	if err != nil {
		return 0, err
	}
	return int(result.RowsAffected()), nil
}
