package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/projectmentor/projectmentor-backend/internal/repository"
)

func TestCreateRequest(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")

	request, err := env.services.Membership.CreateRequest(ctx, "AB12CD", "Peter", "peter@example.com", "uid-p")
	require.NoError(t, err)
	require.Equal(t, repository.RequestPending, request.Status)
	require.Equal(t, "Avengers", request.TeamName)

	_, err = env.services.Membership.CreateRequest(ctx, "AB12CD", "Nobody", "x@y.com", "uid-x")
	require.NoError(t, err)

	_, err = env.services.Membership.CreateRequest(ctx, "ZZ99ZZ", "Peter", "peter@example.com", "uid-p")
	require.ErrorIs(t, err, ErrTeamNotFound)
}

func TestCreateRequest_DuplicatePending(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")

	_, err := env.services.Membership.CreateRequest(ctx, "AB12CD", "Peter", "a@x.com", "uid-p")
	require.NoError(t, err)

	// Second request while the first is pending, regardless of casing
	_, err = env.services.Membership.CreateRequest(ctx, "ab12cd", "Peter", "A@X.COM", "uid-p")
	require.ErrorIs(t, err, ErrRequestPending)
}

func TestAcceptRequest(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")

	request, err := env.services.Membership.CreateRequest(ctx, "AB12CD", "Peter", "peter@example.com", "uid-p")
	require.NoError(t, err)

	require.NoError(t, env.services.Membership.Accept(ctx, "AB12CD", request.ID))

	// Member is on the roster now
	session, err := env.services.Team.MemberLogin(ctx, "AB12CD", "peter@example.com")
	require.NoError(t, err)
	require.Equal(t, "Peter", session.Member.Name)

	// Request left the pending queue
	pending, err := env.services.Membership.ListPending(ctx, "AB12CD")
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestAcceptRequest_DoubleAccept(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")

	request, err := env.services.Membership.CreateRequest(ctx, "AB12CD", "Peter", "peter@example.com", "uid-p")
	require.NoError(t, err)

	require.NoError(t, env.services.Membership.Accept(ctx, "AB12CD", request.ID))
	require.ErrorIs(t, env.services.Membership.Accept(ctx, "AB12CD", request.ID), ErrRequestHandled)

	// Roster still has exactly one entry for the member
	team, err := env.services.Team.GetByCode(ctx, "AB12CD")
	require.NoError(t, err)
	require.Len(t, team.Members, 1)
}

func TestAcceptRequest_TeamCodeMismatch(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")
	env.createTeam(ctx, "Defenders", "EF34GH", "matt@example.com")

	request, err := env.services.Membership.CreateRequest(ctx, "AB12CD", "Peter", "peter@example.com", "uid-p")
	require.NoError(t, err)

	// A request id only resolves under its own team's code
	require.ErrorIs(t, env.services.Membership.Accept(ctx, "EF34GH", request.ID), ErrRequestNotFound)
	require.NoError(t, env.services.Membership.Accept(ctx, "AB12CD", request.ID))
}

func TestRejectRequest(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.createTeam(ctx, "Avengers", "AB12CD", "tony@example.com")

	request, err := env.services.Membership.CreateRequest(ctx, "AB12CD", "Peter", "peter@example.com", "uid-p")
	require.NoError(t, err)

	require.NoError(t, env.services.Membership.Reject(ctx, request.ID))
	require.ErrorIs(t, env.services.Membership.Reject(ctx, request.ID), ErrRequestHandled)
	require.ErrorIs(t, env.services.Membership.Reject(ctx, "missing-id"), ErrRequestNotFound)

	// Rejection does not add a member
	_, err = env.services.Team.MemberLogin(ctx, "AB12CD", "peter@example.com")
	require.ErrorIs(t, err, ErrNotTeamMember)

	// A rejected request no longer blocks a fresh one
	_, err = env.services.Membership.CreateRequest(ctx, "AB12CD", "Peter", "peter@example.com", "uid-p")
	require.NoError(t, err)
}
