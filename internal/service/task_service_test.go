package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/projectmentor/projectmentor-backend/internal/repository"
)

func lockDemoProject(t *testing.T, env *testEnv, teamCode string) {
	t.Helper()
	_, err := env.services.Project.Lock(context.Background(), LockInput{
		TeamCode: teamCode, TemplateID: 101, Domain: "Healthcare", Type: "Mini Project",
	})
	require.NoError(t, err)
}

func TestCreateTask(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")
	lockDemoProject(t, env, "AB12CD")

	task, err := env.services.Task.CreateTask(ctx, &repository.Task{
		TeamCode: "AB12CD",
		Title:    "Design the schema",
	})
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	require.NotEmpty(t, task.ProjectID)
	require.Equal(t, repository.TaskPending, task.Status)
	require.Equal(t, "Phase 1", task.Phase)
}

func TestCreateTask_RequiresTeamAndProject(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.services.Task.CreateTask(ctx, &repository.Task{TeamCode: "NOPE99", Title: "x"})
	require.ErrorIs(t, err, ErrTeamNotFound)

	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")
	_, err = env.services.Task.CreateTask(ctx, &repository.Task{TeamCode: "AB12CD", Title: "x"})
	require.ErrorIs(t, err, ErrNoProject)
}

func TestUpdateTaskStatus(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")
	lockDemoProject(t, env, "AB12CD")

	task, err := env.services.Task.CreateTask(ctx, &repository.Task{TeamCode: "AB12CD", Title: "x"})
	require.NoError(t, err)

	updated, err := env.services.Task.UpdateTaskStatus(ctx, task.ID, repository.TaskInProgress)
	require.NoError(t, err)
	require.Equal(t, repository.TaskInProgress, updated.Status)

	_, err = env.services.Task.UpdateTaskStatus(ctx, task.ID, "archived")
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = env.services.Task.UpdateTaskStatus(ctx, "missing", repository.TaskCompleted)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestCreateSubmission_CascadesTaskToSubmitted(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")
	lockDemoProject(t, env, "AB12CD")

	task, err := env.services.Task.CreateTask(ctx, &repository.Task{TeamCode: "AB12CD", Title: "x"})
	require.NoError(t, err)

	sub, err := env.services.Task.CreateSubmission(ctx, &repository.Submission{
		TeamCode: "AB12CD",
		TaskID:   &task.ID,
		Member:   repository.PersonRef{Name: "Peter", Email: "peter@example.com", UID: "uid-p"},
		WorkLink: "https://example.com/work",
	})
	require.NoError(t, err)
	require.Equal(t, repository.SubmissionPending, sub.Status)

	got, err := env.tasks.FindByID(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, repository.TaskSubmitted, got.Status)
}

func TestCreateSubmission_UnlinkedLeavesTasksAlone(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")
	lockDemoProject(t, env, "AB12CD")

	task, err := env.services.Task.CreateTask(ctx, &repository.Task{TeamCode: "AB12CD", Title: "x"})
	require.NoError(t, err)

	_, err = env.services.Task.CreateSubmission(ctx, &repository.Submission{
		TeamCode: "AB12CD",
		Member:   repository.PersonRef{Name: "Peter", Email: "peter@example.com"},
	})
	require.NoError(t, err)

	got, err := env.tasks.FindByID(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, repository.TaskPending, got.Status)
}

func TestCreateSubmission_UnknownTask(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	missing := "missing-task"
	_, err := env.services.Task.CreateSubmission(ctx, &repository.Submission{
		TeamCode: "AB12CD",
		TaskID:   &missing,
		Member:   repository.PersonRef{Name: "Peter"},
	})
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestApproveSubmission_CompletesLinkedTask(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")
	lockDemoProject(t, env, "AB12CD")

	task, err := env.services.Task.CreateTask(ctx, &repository.Task{TeamCode: "AB12CD", Title: "x"})
	require.NoError(t, err)

	sub, err := env.services.Task.CreateSubmission(ctx, &repository.Submission{
		TeamCode: "AB12CD",
		TaskID:   &task.ID,
		Member:   repository.PersonRef{Name: "Peter"},
	})
	require.NoError(t, err)

	updated, err := env.services.Task.UpdateSubmissionStatus(ctx, sub.ID, repository.SubmissionApproved)
	require.NoError(t, err)
	require.Equal(t, repository.SubmissionApproved, updated.Status)

	got, err := env.tasks.FindByID(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, repository.TaskCompleted, got.Status)
}

func TestNeedsRevision_DoesNotTouchTask(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")
	lockDemoProject(t, env, "AB12CD")

	task, err := env.services.Task.CreateTask(ctx, &repository.Task{TeamCode: "AB12CD", Title: "x"})
	require.NoError(t, err)

	sub, err := env.services.Task.CreateSubmission(ctx, &repository.Submission{
		TeamCode: "AB12CD",
		TaskID:   &task.ID,
		Member:   repository.PersonRef{Name: "Peter"},
	})
	require.NoError(t, err)

	_, err = env.services.Task.UpdateSubmissionStatus(ctx, sub.ID, repository.SubmissionNeedsRevision)
	require.NoError(t, err)

	got, err := env.tasks.FindByID(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, repository.TaskSubmitted, got.Status)
}

func TestUpdateSubmissionStatus_Validation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.services.Task.UpdateSubmissionStatus(ctx, "any", "reviewed")
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = env.services.Task.UpdateSubmissionStatus(ctx, "missing", repository.SubmissionApproved)
	require.ErrorIs(t, err, ErrSubmissionNotFound)
}
