package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitlink/backend/internal/apperr"
	"fitlink/backend/internal/models"
	"fitlink/backend/internal/social"
	"fitlink/backend/internal/store"
)

func newActivityFixture(t *testing.T) (*ActivityService, *social.Graph, store.Store) {
	t.Helper()
	st := store.NewMemoryStore()
	graph := social.NewGraph(st)
	return NewActivityService(st, graph), graph, st
}

func seedServiceUser(t *testing.T, st store.Store, id, email string, role models.Role) {
	t.Helper()
	require.NoError(t, st.Users().Insert(context.Background(), &models.User{
		ID: id, Email: email, Role: role,
	}))
}

func TestActivityCreateAndGetVisibility(t *testing.T) {
	svc, _, st := newActivityFixture(t)
	ctx := context.Background()
	seedServiceUser(t, st, "u1", "u1@example.com", models.RoleUser)
	seedServiceUser(t, st, "u2", "u2@example.com", models.RoleUser)
	seedServiceUser(t, st, "admin", "admin@example.com", models.RoleAdmin)

	created, err := svc.Create(ctx, "u1", CreateActivityInput{
		UserID:      "u1",
		Description: "Ran 5km",
		Duration:    30,
		Date:        time.Date(2024, 5, 1, 7, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// Owner sees it.
	got, err := svc.Get(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ran 5km", got.Description)

	// A different non-admin user is forbidden.
	_, err = svc.Get(ctx, "u2", created.ID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	// An admin sees the same payload the owner sees.
	adminView, err := svc.Get(ctx, "admin", created.ID)
	require.NoError(t, err)
	assert.Equal(t, got, adminView)
}

func TestActivityCreateForbiddenForOtherUser(t *testing.T) {
	svc, _, st := newActivityFixture(t)
	ctx := context.Background()
	seedServiceUser(t, st, "u1", "u1@example.com", models.RoleUser)
	seedServiceUser(t, st, "u2", "u2@example.com", models.RoleUser)
	seedServiceUser(t, st, "admin", "admin@example.com", models.RoleAdmin)

	_, err := svc.Create(ctx, "u2", CreateActivityInput{UserID: "u1", Description: "x", Duration: 10})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	// Admins may create on behalf of anyone.
	_, err = svc.Create(ctx, "admin", CreateActivityInput{UserID: "u1", Description: "x", Duration: 10})
	assert.NoError(t, err)
}

func TestActivityCreateValidation(t *testing.T) {
	svc, _, st := newActivityFixture(t)
	ctx := context.Background()
	seedServiceUser(t, st, "u1", "u1@example.com", models.RoleUser)

	_, err := svc.Create(ctx, "u1", CreateActivityInput{UserID: "u1", Description: "x", Duration: 0})
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))

	_, err = svc.Create(ctx, "u1", CreateActivityInput{UserID: "u1", Description: "", Duration: 10})
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
}

func TestActivityGetNotFoundBeforeForbidden(t *testing.T) {
	svc, _, st := newActivityFixture(t)
	ctx := context.Background()
	seedServiceUser(t, st, "u1", "u1@example.com", models.RoleUser)

	// A missing record is NotFound even for an actor who could never access it.
	_, err := svc.Get(ctx, "u1", "missing")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestActivityGetUnauthenticated(t *testing.T) {
	svc, _, _ := newActivityFixture(t)

	_, err := svc.Get(context.Background(), "", "whatever")
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))

	_, err = svc.Get(context.Background(), "ghost", "whatever")
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}

func TestActivityListRestrictedToOwnerAndAdmin(t *testing.T) {
	svc, _, st := newActivityFixture(t)
	ctx := context.Background()
	seedServiceUser(t, st, "u1", "u1@example.com", models.RoleUser)
	seedServiceUser(t, st, "u2", "u2@example.com", models.RoleUser)
	seedServiceUser(t, st, "admin", "admin@example.com", models.RoleAdmin)

	_, err := svc.Create(ctx, "u1", CreateActivityInput{UserID: "u1", Description: "x", Duration: 10})
	require.NoError(t, err)

	list, err := svc.List(ctx, "u1", "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.List(ctx, "u2", "u1")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	list, err = svc.List(ctx, "admin", "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestActivityFriendFeed(t *testing.T) {
	svc, graph, st := newActivityFixture(t)
	ctx := context.Background()
	seedServiceUser(t, st, "u1", "u1@example.com", models.RoleUser)
	seedServiceUser(t, st, "u2", "u2@example.com", models.RoleUser)
	seedServiceUser(t, st, "u3", "u3@example.com", models.RoleUser)

	_, err := svc.Create(ctx, "u1", CreateActivityInput{UserID: "u1", Description: "Ran 5km", Duration: 30})
	require.NoError(t, err)

	// Not friends yet: forbidden.
	_, err = svc.FriendFeed(ctx, "u2", "u1")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	link, err := graph.SendFriendRequest(ctx, "u2", "u1@example.com")
	require.NoError(t, err)
	_, err = graph.AcceptFriendRequest(ctx, "u1", link.ID)
	require.NoError(t, err)

	feed, err := svc.FriendFeed(ctx, "u2", "u1")
	require.NoError(t, err)
	assert.Len(t, feed, 1)

	// A non-friend is still forbidden, and an unknown target is NotFound.
	_, err = svc.FriendFeed(ctx, "u3", "u1")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	_, err = svc.FriendFeed(ctx, "u2", "ghost")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestActivityUpdate(t *testing.T) {
	svc, _, st := newActivityFixture(t)
	ctx := context.Background()
	seedServiceUser(t, st, "u1", "u1@example.com", models.RoleUser)
	seedServiceUser(t, st, "u2", "u2@example.com", models.RoleUser)

	created, err := svc.Create(ctx, "u1", CreateActivityInput{UserID: "u1", Description: "Ran 5km", Duration: 30})
	require.NoError(t, err)

	desc := "Ran 10km"
	dur := 55
	updated, err := svc.Update(ctx, "u1", created.ID, UpdateActivityInput{Description: &desc, Duration: &dur})
	require.NoError(t, err)
	assert.Equal(t, "Ran 10km", updated.Description)
	assert.Equal(t, 55, updated.Duration)

	_, err = svc.Update(ctx, "u2", created.ID, UpdateActivityInput{Description: &desc})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	bad := 0
	_, err = svc.Update(ctx, "u1", created.ID, UpdateActivityInput{Duration: &bad})
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
}

func TestActivityDelete(t *testing.T) {
	svc, _, st := newActivityFixture(t)
	ctx := context.Background()
	seedServiceUser(t, st, "u1", "u1@example.com", models.RoleUser)
	seedServiceUser(t, st, "u2", "u2@example.com", models.RoleUser)

	created, err := svc.Create(ctx, "u1", CreateActivityInput{UserID: "u1", Description: "x", Duration: 10})
	require.NoError(t, err)

	err = svc.Delete(ctx, "u2", created.ID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	require.NoError(t, svc.Delete(ctx, "u1", created.ID))

	_, err = svc.Get(ctx, "u1", created.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
