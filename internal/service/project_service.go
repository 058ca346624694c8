package service

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/projectmentor/projectmentor-backend/internal/catalog"
	"github.com/projectmentor/projectmentor-backend/internal/email"
	"github.com/projectmentor/projectmentor-backend/internal/repository"
)

// Placeholder blobs used when the chosen template id is not in the
// catalog (or the template carries no blob). Lock never fails for a
// missing template.
const (
	placeholderRoadmap = "Roadmap not available."
	placeholderTasks   = "Tasks not available."
	placeholderSummary = "Summary not available."
	placeholderVivaQA  = "Viva QA not available."
)

const projectCacheTTL = 5 * time.Minute

// Candidate is one allocation result, annotated with the requesting
// team's normalized domain/type/level rather than the template's own.
type Candidate struct {
	TemplateID       int      `json:"templateId"`
	Title            string   `json:"title"`
	ProblemStatement string   `json:"problemStatement"`
	ProposedSolution string   `json:"proposedSolution"`
	KeyFeatures      []string `json:"keyFeatures"`
	Domain           string   `json:"domain"`
	Type             string   `json:"type"`
	SkillLevel       string   `json:"skillLevel"`
}

// LockInput carries everything lock-project needs.
type LockInput struct {
	TeamCode         string
	TemplateID       int
	ProjectName      string
	Domain           string
	Type             string
	SkillLevel       string
	ProblemStatement string
	ProposedSolution string
	KeyFeatures      []string
	LeaderName       string
	LeaderEmail      string
	TeamName         string
}

// ProjectService defines the allocation engine and the project store
type ProjectService interface {
	Generate(ctx context.Context, domain, projType, skillLevel string) ([]Candidate, error)
	Lock(ctx context.Context, in LockInput) (*repository.Project, error)
	GetByTeamCode(ctx context.Context, teamCode string) (*repository.Project, error)
	GetByID(ctx context.Context, id string) (*repository.Project, error)
}

type projectService struct {
	teamRepo    repository.TeamRepository
	projectRepo repository.ProjectRepository
	emailSvc    *email.Service
	cache       Cache
}

// NewProjectService creates a new project service
func NewProjectService(teamRepo repository.TeamRepository, projectRepo repository.ProjectRepository, emailSvc *email.Service, cache Cache) ProjectService {
	return &projectService{
		teamRepo:    teamRepo,
		projectRepo: projectRepo,
		emailSvc:    emailSvc,
		cache:       cache,
	}
}

// Generate filters the catalog, subtracts templates already claimed by
// any team for this (domain, type), and returns up to 3 random
// candidates. Read-only: nothing is reserved until Lock, so two teams
// generating concurrently may see the same template. Lock settles it.
func (s *projectService) Generate(ctx context.Context, domain, projType, skillLevel string) ([]Candidate, error) {
	normDomain := catalog.NormalizeDomain(domain)
	normType := catalog.NormalizeType(projType)
	level := catalog.NormalizeSkillLevel(skillLevel)

	candidates := catalog.Filter(normDomain, normType, level)
	if len(candidates) == 0 {
		return nil, ErrNoTemplates
	}

	usedIDs, err := s.projectRepo.FindUsedTemplateIDs(ctx, normDomain, normType)
	if err != nil {
		return nil, err
	}
	used := make(map[int]bool, len(usedIDs))
	for _, id := range usedIDs {
		used[id] = true
	}

	available := candidates[:0:0]
	for _, tpl := range candidates {
		if !used[tpl.ID] {
			available = append(available, tpl)
		}
	}
	if len(available) == 0 {
		return nil, ErrTemplatesExhausted
	}

	rand.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})

	count := len(available)
	if count > 3 {
		count = 3
	}

	selected := make([]Candidate, 0, count)
	for _, tpl := range available[:count] {
		selected = append(selected, Candidate{
			TemplateID:       tpl.ID,
			Title:            tpl.Title,
			ProblemStatement: tpl.ProblemStatement,
			ProposedSolution: tpl.ProposedSolution,
			KeyFeatures:      tpl.KeyFeatures,
			Domain:           normDomain,
			Type:             normType,
			SkillLevel:       level,
		})
	}
	return selected, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Lock materializes the chosen template as the team's one project.
// Exclusivity (one project per team, one team per template) is
// enforced by the unique indexes; violations come back as conflicts
// the caller can retry with another template.
func (s *projectService) Lock(ctx context.Context, in LockInput) (*repository.Project, error) {
	team, err := s.teamRepo.FindByCode(ctx, in.TeamCode)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	roadmapText := placeholderRoadmap
	tasksText := placeholderTasks
	summaryText := placeholderSummary
	vivaQAText := placeholderVivaQA
	var templateFeatures []string

	if tpl, ok := catalog.FindByID(in.TemplateID); ok {
		roadmapText = firstNonEmpty(tpl.RoadmapText, placeholderRoadmap)
		tasksText = firstNonEmpty(tpl.TasksText, placeholderTasks)
		summaryText = firstNonEmpty(tpl.SummaryText, placeholderSummary)
		vivaQAText = firstNonEmpty(tpl.VivaQAText, placeholderVivaQA)
		templateFeatures = tpl.KeyFeatures
	}

	// Caller-supplied features win; template features are the fallback.
	features := in.KeyFeatures
	if len(features) == 0 {
		features = templateFeatures
	}
	if features == nil {
		features = []string{}
	}

	project := &repository.Project{
		TeamID:          team.ID,
		Domain:          catalog.NormalizeDomain(in.Domain),
		Type:            catalog.NormalizeType(in.Type),
		SkillLevel:      catalog.NormalizeSkillLevel(in.SkillLevel),
		TemplateID:      in.TemplateID,
		ProjectName:     in.ProjectName,
		Description:     in.ProblemStatement + "\n\n" + in.ProposedSolution,
		Roadmap:         roadmapText,
		DetailedRoadmap: roadmapText,
		Tasks:           tasksText,
		Summary:         summaryText,
		VivaQA:          vivaQAText,
		KeyFeatures:     features,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		if errors.Is(err, repository.ErrDuplicateProject) {
			return nil, ErrProjectLocked
		}
		if errors.Is(err, repository.ErrTemplateTaken) {
			return nil, ErrTemplateTaken
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateCache(ctx, projectCacheKey(in.TeamCode)); err != nil {
			log.Printf("[Project] Cache invalidation failed: %v", err)
		}
	}

	// The project is locked; a failed mail never rolls it back.
	if s.emailSvc != nil {
		if err := s.emailSvc.SendProjectLocked(in.LeaderEmail, email.ProjectLockedData{
			LeaderName:  in.LeaderName,
			TeamName:    in.TeamName,
			ProjectName: in.ProjectName,
		}); err != nil {
			log.Printf("[Project] Lock email failed for %s: %v", in.LeaderEmail, err)
		}
	}

	return project, nil
}

func projectCacheKey(teamCode string) string {
	return "project:team:" + strings.ToLower(teamCode)
}

// GetByTeamCode returns the team's locked project, or nil if the team
// exists but has not locked one yet.
func (s *projectService) GetByTeamCode(ctx context.Context, teamCode string) (*repository.Project, error) {
	team, err := s.teamRepo.FindByCode(ctx, teamCode)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	if s.cache != nil {
		var cached repository.Project
		if err := s.cache.GetCache(ctx, projectCacheKey(teamCode), &cached); err == nil {
			return &cached, nil
		}
	}

	project, err := s.projectRepo.FindByTeamID(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	if project != nil && s.cache != nil {
		if err := s.cache.SetCache(ctx, projectCacheKey(teamCode), project, projectCacheTTL); err != nil {
			log.Printf("[Project] Cache set failed: %v", err)
		}
	}
	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*repository.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}
