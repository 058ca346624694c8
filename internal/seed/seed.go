// internal/seed/seed.go
package seed

import (
	"context"
	"log"

	"github.com/projectmentor/projectmentor-backend/internal/catalog"
	"github.com/projectmentor/projectmentor-backend/internal/repository"
)

// SeedData creates a demo team so the dashboards render against an
// empty database. Runs in non-production environments only.
func SeedData(repos *repository.Repositories) {
	ctx := context.Background()

	// Skip if the demo team already exists
	existing, _ := repos.TeamRepo.FindByCode(ctx, "DEMO01")
	if existing != nil {
		log.Println("[Seed] Demo data already exists, skipping...")
		return
	}

	log.Println("[Seed] Creating demo data...")

	// ============================================
	// TEAM: Avengers, led by Aarav
	// ============================================
	team := &repository.Team{
		TeamName:    "Avengers",
		TeamCode:    "DEMO01",
		LeaderID:    "seed-leader-uid",
		LeaderName:  "Aarav Sharma",
		LeaderEmail: "aarav.sharma@example.com",
	}
	if err := repos.TeamRepo.Create(ctx, team); err != nil {
		log.Printf("[Seed] Failed to create demo team: %v", err)
		return
	}

	members := []*repository.TeamMember{
		{TeamID: team.ID, Name: "Priya Patel", Email: "priya.patel@example.com", UID: "seed-member-1"},
		{TeamID: team.ID, Name: "Rohan Mehta", Email: "rohan.mehta@example.com", UID: "seed-member-2"},
	}
	for _, m := range members {
		if err := repos.TeamRepo.AddMember(ctx, m); err != nil {
			log.Printf("[Seed] Failed to add member %s: %v", m.Email, err)
		}
	}

	// One pending request so the leader dashboard has something to act on
	repos.MemberRequestRepo.Create(ctx, &repository.MemberRequest{
		TeamName:    team.TeamName,
		TeamCode:    team.TeamCode,
		MemberName:  "Sneha Iyer",
		MemberEmail: "sneha.iyer@example.com",
		MemberUID:   "seed-member-3",
		Status:      repository.RequestPending,
	})

	// ============================================
	// LOCKED PROJECT from the catalog
	// ============================================
	tpl, ok := catalog.FindByID(101)
	if !ok {
		log.Println("[Seed] Template 101 missing from catalog, skipping project")
		return
	}

	project := &repository.Project{
		TeamID:          team.ID,
		Domain:          tpl.Domain,
		Type:            tpl.Type,
		SkillLevel:      "beginner",
		TemplateID:      tpl.ID,
		ProjectName:     tpl.Title,
		Description:     tpl.ProblemStatement + "\n\n" + tpl.ProposedSolution,
		Roadmap:         tpl.RoadmapText,
		DetailedRoadmap: tpl.RoadmapText,
		Tasks:           tpl.TasksText,
		Summary:         tpl.SummaryText,
		VivaQA:          tpl.VivaQAText,
		KeyFeatures:     tpl.KeyFeatures,
	}
	if err := repos.ProjectRepo.Create(ctx, project); err != nil {
		log.Printf("[Seed] Failed to create demo project: %v", err)
		return
	}

	// ============================================
	// TASKS, one per phase, plus a reviewed submission
	// ============================================
	tasks := []*repository.Task{
		{
			ProjectID:   project.ID,
			TeamCode:    team.TeamCode,
			Title:       "Set up the repository and CI",
			Description: "Initialize the codebase, linting and a basic pipeline.",
			Phase:       "Phase 1",
			Status:      repository.TaskCompleted,
			AssignedTo:  &repository.PersonRef{Name: members[0].Name, Email: members[0].Email, UID: members[0].UID},
		},
		{
			ProjectID:   project.ID,
			TeamCode:    team.TeamCode,
			Title:       "Design the data model",
			Description: "Entities, relations and an ER diagram.",
			Phase:       "Phase 1",
			Status:      repository.TaskInProgress,
			AssignedTo:  &repository.PersonRef{Name: members[1].Name, Email: members[1].Email, UID: members[1].UID},
		},
		{
			ProjectID:   project.ID,
			TeamCode:    team.TeamCode,
			Title:       "Build the first screen",
			Description: "Login and landing page wired to the API.",
			Phase:       "Phase 2",
			Status:      repository.TaskPending,
		},
	}
	for _, t := range tasks {
		if err := repos.TaskRepo.Create(ctx, t); err != nil {
			log.Printf("[Seed] Failed to create demo task %q: %v", t.Title, err)
		}
	}

	if tasks[0].ID != "" {
		repos.SubmissionRepo.Create(ctx, &repository.Submission{
			TaskID:   &tasks[0].ID,
			TeamCode: team.TeamCode,
			Member:   repository.PersonRef{Name: members[0].Name, Email: members[0].Email, UID: members[0].UID},
			WorkLink: "https://github.com/example/demo-repo",
			Comments: "Repo scaffolded, CI green.",
			Status:   repository.SubmissionApproved,
		})
	}

	// ============================================
	// CHAT
	// ============================================
	messages := []*repository.Message{
		{TeamCode: team.TeamCode, Sender: repository.PersonRef{Name: team.LeaderName, Email: team.LeaderEmail, UID: team.LeaderID}, Content: "Welcome aboard! Project is locked, check your tasks."},
		{TeamCode: team.TeamCode, Sender: repository.PersonRef{Name: members[0].Name, Email: members[0].Email, UID: members[0].UID}, Content: "Repo is up, CI passing."},
	}
	for _, m := range messages {
		repos.MessageRepo.Create(ctx, m)
	}
	if messages[0].ID != "" {
		repos.MessageRepo.TogglePin(ctx, messages[0].ID)
	}

	log.Println("[Seed] Demo team DEMO01 created with project, tasks and chat")
}
