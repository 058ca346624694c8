package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Project is a team's locked project, carrying the content derived
// from the chosen template. Immutable once created.
type Project struct {
	ID              string    `json:"id"`
	TeamID          string    `json:"teamId"`
	Domain          string    `json:"domain"`
	Type            string    `json:"type"`
	SkillLevel      string    `json:"skillLevel"`
	TemplateID      int       `json:"templateId"`
	ProjectName     string    `json:"projectName"`
	Description     string    `json:"description"`
	Roadmap         string    `json:"roadmap"`
	DetailedRoadmap string    `json:"detailedRoadmap"`
	Tasks           string    `json:"tasks"`
	Summary         string    `json:"summary"`
	VivaQA          string    `json:"vivaQA"`
	KeyFeatures     []string  `json:"keyFeatures"`
	Locked          bool      `json:"locked"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ProjectRepository defines project data operations
type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	FindByID(ctx context.Context, id string) (*Project, error)
	FindByTeamID(ctx context.Context, teamID string) (*Project, error)
	FindUsedTemplateIDs(ctx context.Context, domain, projType string) ([]int, error)
}

// ============================================
// PostgreSQL Project Repository Implementation
// ============================================

type pgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a new PostgreSQL project repository
func NewPgProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &pgProjectRepository{pool: pool}
}

func (r *pgProjectRepository) Create(ctx context.Context, project *Project) error {
	project.Locked = true
	query := `
		INSERT INTO projects (team_id, domain, type, skill_level, template_id, project_name,
			description, roadmap, detailed_roadmap, tasks, summary, viva_qa, key_features, locked)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		project.TeamID, project.Domain, project.Type, project.SkillLevel,
		project.TemplateID, project.ProjectName, project.Description,
		project.Roadmap, project.DetailedRoadmap, project.Tasks,
		project.Summary, project.VivaQA, project.KeyFeatures, project.Locked,
	).Scan(&project.ID, &project.CreatedAt)
	if isUniqueViolation(err, "projects_team_key") {
		return ErrDuplicateProject
	}
	if isUniqueViolation(err, "projects_template_key") {
		return ErrTemplateTaken
	}
	return err
}

func (r *pgProjectRepository) FindByID(ctx context.Context, id string) (*Project, error) {
	query := `
		SELECT id, team_id, domain, type, skill_level, template_id, project_name,
			description, roadmap, detailed_roadmap, tasks, summary, viva_qa, key_features, locked, created_at
		FROM projects WHERE id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *pgProjectRepository) FindByTeamID(ctx context.Context, teamID string) (*Project, error) {
	query := `
		SELECT id, team_id, domain, type, skill_level, template_id, project_name,
			description, roadmap, detailed_roadmap, tasks, summary, viva_qa, key_features, locked, created_at
		FROM projects WHERE team_id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, teamID))
}

func (r *pgProjectRepository) scanOne(row pgx.Row) (*Project, error) {
	project := &Project{}
	err := row.Scan(
		&project.ID, &project.TeamID, &project.Domain, &project.Type,
		&project.SkillLevel, &project.TemplateID, &project.ProjectName,
		&project.Description, &project.Roadmap, &project.DetailedRoadmap,
		&project.Tasks, &project.Summary, &project.VivaQA,
		&project.KeyFeatures, &project.Locked, &project.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (r *pgProjectRepository) FindUsedTemplateIDs(ctx context.Context, domain, projType string) ([]int, error) {
	query := `SELECT template_id FROM projects WHERE domain = $1 AND type = $2`
	rows, err := r.pool.Query(ctx, query, domain, projType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
