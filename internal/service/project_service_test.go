package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/projectmentor/projectmentor-backend/internal/catalog"
)

func TestGenerate_ReturnsAtMostThreeMatchingCandidates(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	candidates, err := env.services.Project.Generate(ctx, "healthcare", "mini", "beginner")
	require.NoError(t, err)
	require.NotEmpty(t, candidates)
	require.LessOrEqual(t, len(candidates), 3)

	for _, c := range candidates {
		// Annotated with the requester's normalized values
		require.Equal(t, "Healthcare", c.Domain)
		require.Equal(t, "Mini Project", c.Type)
		require.Equal(t, "beginner", c.SkillLevel)

		tpl, ok := catalog.FindByID(c.TemplateID)
		require.True(t, ok)
		require.Equal(t, "Healthcare", tpl.Domain)
		require.Equal(t, "Mini Project", tpl.Type)
		require.True(t, tpl.HasSkillTag("beginner"))
	}
}

func TestGenerate_NoTemplatesForCombination(t *testing.T) {
	env := newTestEnv()
	_, err := env.services.Project.Generate(context.Background(), "Agriculture", "Mini Project", "beginner")
	require.ErrorIs(t, err, ErrNoTemplates)
}

func TestGenerate_ExhaustionAfterAllTemplatesLocked(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	pool := catalog.Filter("Healthcare", "Mini Project", "beginner")
	require.NotEmpty(t, pool)

	// One team locks each template in the pool
	for i, tpl := range pool {
		code := fmt.Sprintf("TM%02d", i)
		env.createTeam(ctx, "Team "+code, code, fmt.Sprintf("lead%d@example.com", i))
		_, err := env.services.Project.Lock(ctx, LockInput{
			TeamCode:   code,
			TemplateID: tpl.ID,
			Domain:     "Healthcare",
			Type:       "Mini Project",
			SkillLevel: "beginner",
		})
		require.NoError(t, err)
	}

	env.createTeam(ctx, "Late Team", "LATE01", "late@example.com")
	_, err := env.services.Project.Generate(ctx, "Healthcare", "Mini Project", "beginner")
	require.ErrorIs(t, err, ErrTemplatesExhausted)
}

func TestGenerate_ExcludesUsedTemplates(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")
	_, err := env.services.Project.Lock(ctx, LockInput{
		TeamCode:   "AB12CD",
		TemplateID: 101,
		Domain:     "Healthcare",
		Type:       "Mini Project",
		SkillLevel: "beginner",
	})
	require.NoError(t, err)

	candidates, err := env.services.Project.Generate(ctx, "Healthcare", "Mini Project", "beginner")
	require.NoError(t, err)
	for _, c := range candidates {
		require.NotEqual(t, 101, c.TemplateID)
	}
}

func TestLock_CreatesProjectFromTemplate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")

	project, err := env.services.Project.Lock(ctx, LockInput{
		TeamCode:         "AB12CD",
		TemplateID:       101,
		ProjectName:      "Medicine Reminder",
		Domain:           "healthcare",
		Type:             "mini",
		SkillLevel:       "beginner",
		ProblemStatement: "People forget doses.",
		ProposedSolution: "An app that reminds them.",
	})
	require.NoError(t, err)
	require.True(t, project.Locked)
	require.Equal(t, "Healthcare", project.Domain)
	require.Equal(t, "Mini Project", project.Type)
	require.Equal(t, "People forget doses.\n\nAn app that reminds them.", project.Description)

	tpl, ok := catalog.FindByID(101)
	require.True(t, ok)
	require.Equal(t, tpl.KeyFeatures, project.KeyFeatures)
}

func TestLock_UnknownTemplateGetsPlaceholders(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")

	project, err := env.services.Project.Lock(ctx, LockInput{
		TeamCode:    "AB12CD",
		TemplateID:  999,
		ProjectName: "Mystery Project",
	})
	require.NoError(t, err)
	require.Equal(t, "Roadmap not available.", project.Roadmap)
	require.Equal(t, "Tasks not available.", project.Tasks)
	require.Equal(t, "Summary not available.", project.Summary)
	require.Equal(t, "Viva QA not available.", project.VivaQA)
	require.Empty(t, project.KeyFeatures)
}

func TestLock_CallerFeaturesWin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")

	project, err := env.services.Project.Lock(ctx, LockInput{
		TeamCode:    "AB12CD",
		TemplateID:  101,
		Domain:      "Healthcare",
		Type:        "Mini Project",
		KeyFeatures: []string{"Custom feature"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Custom feature"}, project.KeyFeatures)
}

func TestLock_SecondLockConflicts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")

	_, err := env.services.Project.Lock(ctx, LockInput{
		TeamCode: "AB12CD", TemplateID: 101, Domain: "Healthcare", Type: "Mini Project",
	})
	require.NoError(t, err)

	_, err = env.services.Project.Lock(ctx, LockInput{
		TeamCode: "AB12CD", TemplateID: 102, Domain: "Healthcare", Type: "Mini Project",
	})
	require.ErrorIs(t, err, ErrProjectLocked)
}

func TestLock_TemplateTakenByOtherTeam(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")
	env.createTeam(ctx, "Defenders", "EF34GH", "matt@example.com")

	_, err := env.services.Project.Lock(ctx, LockInput{
		TeamCode: "AB12CD", TemplateID: 101, Domain: "Healthcare", Type: "Mini Project",
	})
	require.NoError(t, err)

	_, err = env.services.Project.Lock(ctx, LockInput{
		TeamCode: "EF34GH", TemplateID: 101, Domain: "Healthcare", Type: "Mini Project",
	})
	require.ErrorIs(t, err, ErrTemplateTaken)
}

func TestLock_TeamNotFound(t *testing.T) {
	env := newTestEnv()
	_, err := env.services.Project.Lock(context.Background(), LockInput{
		TeamCode: "NOPE99", TemplateID: 101,
	})
	require.ErrorIs(t, err, ErrTeamNotFound)
}

func TestGetByTeamCode(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")

	// Team exists, no project yet: nil with no error
	project, err := env.services.Project.GetByTeamCode(ctx, "AB12CD")
	require.NoError(t, err)
	require.Nil(t, project)

	_, err = env.services.Project.GetByTeamCode(ctx, "NOPE99")
	require.ErrorIs(t, err, ErrTeamNotFound)

	locked, err := env.services.Project.Lock(ctx, LockInput{
		TeamCode: "AB12CD", TemplateID: 101, Domain: "Healthcare", Type: "Mini Project",
	})
	require.NoError(t, err)

	project, err = env.services.Project.GetByTeamCode(ctx, "ab12cd")
	require.NoError(t, err)
	require.NotNil(t, project)
	require.Equal(t, locked.ID, project.ID)
}

func TestGetByID_NotFound(t *testing.T) {
	env := newTestEnv()
	_, err := env.services.Project.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrProjectNotFound)
}
