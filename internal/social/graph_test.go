package social

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitlink/backend/internal/apperr"
	"fitlink/backend/internal/models"
	"fitlink/backend/internal/store"
)

func newTestGraph(t *testing.T) (*Graph, store.Store) {
	t.Helper()
	st := store.NewMemoryStore()
	return NewGraph(st), st
}

func seedUser(t *testing.T, st store.Store, id, email string) *models.User {
	t.Helper()
	user := &models.User{ID: id, Email: email, FirstName: "First-" + id, LastName: "Last-" + id, Role: models.RoleUser}
	require.NoError(t, st.Users().Insert(context.Background(), user))
	return user
}

func TestSendFriendRequest(t *testing.T) {
	graph, st := newTestGraph(t)
	ctx := context.Background()
	seedUser(t, st, "alice", "alice@example.com")
	seedUser(t, st, "bob", "bob@example.com")

	link, err := graph.SendFriendRequest(ctx, "alice", "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", link.UserID)
	assert.Equal(t, "bob", link.FriendID)
	assert.Equal(t, models.StatusPending, link.Status)
	assert.NotEmpty(t, link.ID)
}

func TestSendFriendRequestUnknownEmail(t *testing.T) {
	graph, st := newTestGraph(t)
	seedUser(t, st, "alice", "alice@example.com")

	_, err := graph.SendFriendRequest(context.Background(), "alice", "nobody@example.com")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestSendFriendRequestToSelf(t *testing.T) {
	graph, st := newTestGraph(t)
	seedUser(t, st, "alice", "alice@example.com")

	_, err := graph.SendFriendRequest(context.Background(), "alice", "alice@example.com")
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
}

func TestSendFriendRequestDuplicate(t *testing.T) {
	graph, st := newTestGraph(t)
	ctx := context.Background()
	seedUser(t, st, "alice", "alice@example.com")
	seedUser(t, st, "bob", "bob@example.com")

	_, err := graph.SendFriendRequest(ctx, "alice", "bob@example.com")
	require.NoError(t, err)

	_, err = graph.SendFriendRequest(ctx, "alice", "bob@example.com")
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestSendFriendRequestOppositeDirectionConflicts(t *testing.T) {
	graph, st := newTestGraph(t)
	ctx := context.Background()
	seedUser(t, st, "alice", "alice@example.com")
	seedUser(t, st, "bob", "bob@example.com")

	_, err := graph.SendFriendRequest(ctx, "alice", "bob@example.com")
	require.NoError(t, err)

	// A pending request from alice to bob blocks bob from requesting alice.
	_, err = graph.SendFriendRequest(ctx, "bob", "alice@example.com")
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestSendFriendRequestAfterAcceptConflicts(t *testing.T) {
	graph, st := newTestGraph(t)
	ctx := context.Background()
	seedUser(t, st, "alice", "alice@example.com")
	seedUser(t, st, "bob", "bob@example.com")

	link, err := graph.SendFriendRequest(ctx, "alice", "bob@example.com")
	require.NoError(t, err)
	_, err = graph.AcceptFriendRequest(ctx, "bob", link.ID)
	require.NoError(t, err)

	_, err = graph.SendFriendRequest(ctx, "bob", "alice@example.com")
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestAcceptFriendRequest(t *testing.T) {
	graph, st := newTestGraph(t)
	ctx := context.Background()
	seedUser(t, st, "alice", "alice@example.com")
	seedUser(t, st, "bob", "bob@example.com")

	link, err := graph.SendFriendRequest(ctx, "alice", "bob@example.com")
	require.NoError(t, err)

	accepted, err := graph.AcceptFriendRequest(ctx, "bob", link.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, accepted.Status)

	// Accept is symmetric in visibility: both sides see each other.
	aliceFriends, err := graph.ListFriends(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, "bob", aliceFriends[0].Profile.ID)
	assert.Equal(t, "bob@example.com", aliceFriends[0].Profile.Email)

	bobFriends, err := graph.ListFriends(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobFriends, 1)
	assert.Equal(t, "alice", bobFriends[0].Profile.ID)
}

func TestAcceptFriendRequestOnlyRecipient(t *testing.T) {
	graph, st := newTestGraph(t)
	ctx := context.Background()
	seedUser(t, st, "alice", "alice@example.com")
	seedUser(t, st, "bob", "bob@example.com")
	seedUser(t, st, "carol", "carol@example.com")

	link, err := graph.SendFriendRequest(ctx, "alice", "bob@example.com")
	require.NoError(t, err)

	// Neither the requester nor a third party may accept.
	_, err = graph.AcceptFriendRequest(ctx, "alice", link.ID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	_, err = graph.AcceptFriendRequest(ctx, "carol", link.ID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestAcceptFriendRequestNotFound(t *testing.T) {
	graph, st := newTestGraph(t)
	seedUser(t, st, "alice", "alice@example.com")

	_, err := graph.AcceptFriendRequest(context.Background(), "alice", "missing")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestRejectFriendRequestDeletesLink(t *testing.T) {
	graph, st := newTestGraph(t)
	ctx := context.Background()
	seedUser(t, st, "alice", "alice@example.com")
	seedUser(t, st, "bob", "bob@example.com")

	link, err := graph.SendFriendRequest(ctx, "alice", "bob@example.com")
	require.NoError(t, err)

	require.NoError(t, graph.RejectFriendRequest(ctx, "bob", link.ID))

	// The link is gone; a later accept on the same id is NotFound.
	_, err = graph.AcceptFriendRequest(ctx, "bob", link.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// And the pair is free to try again.
	_, err = graph.SendFriendRequest(ctx, "bob", "alice@example.com")
	assert.NoError(t, err)
}

func TestRejectFriendRequestOnlyRecipient(t *testing.T) {
	graph, st := newTestGraph(t)
	ctx := context.Background()
	seedUser(t, st, "alice", "alice@example.com")
	seedUser(t, st, "bob", "bob@example.com")

	link, err := graph.SendFriendRequest(ctx, "alice", "bob@example.com")
	require.NoError(t, err)

	err = graph.RejectFriendRequest(ctx, "alice", link.ID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestRemoveFriend(t *testing.T) {
	graph, st := newTestGraph(t)
	ctx := context.Background()
	seedUser(t, st, "alice", "alice@example.com")
	seedUser(t, st, "bob", "bob@example.com")

	link, err := graph.SendFriendRequest(ctx, "alice", "bob@example.com")
	require.NoError(t, err)
	_, err = graph.AcceptFriendRequest(ctx, "bob", link.ID)
	require.NoError(t, err)

	require.NoError(t, graph.RemoveFriend(ctx, "alice", "bob"))

	aliceFriends, err := graph.ListFriends(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, aliceFriends)

	bobFriends, err := graph.ListFriends(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, bobFriends)
}

func TestRemoveFriendIsIdempotent(t *testing.T) {
	graph, st := newTestGraph(t)
	ctx := context.Background()
	seedUser(t, st, "alice", "alice@example.com")
	seedUser(t, st, "bob", "bob@example.com")

	assert.NoError(t, graph.RemoveFriend(ctx, "alice", "bob"))
	assert.NoError(t, graph.RemoveFriend(ctx, "alice", "bob"))
}

func TestListPendingRequests(t *testing.T) {
	graph, st := newTestGraph(t)
	ctx := context.Background()
	seedUser(t, st, "alice", "alice@example.com")
	seedUser(t, st, "bob", "bob@example.com")
	seedUser(t, st, "carol", "carol@example.com")

	_, err := graph.SendFriendRequest(ctx, "alice", "bob@example.com")
	require.NoError(t, err)
	_, err = graph.SendFriendRequest(ctx, "carol", "bob@example.com")
	require.NoError(t, err)

	// Only incoming requests are listed, with the requester's profile.
	requests, err := graph.ListPendingRequests(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, requests, 2)
	for _, r := range requests {
		assert.Equal(t, models.StatusPending, r.Status)
		assert.Contains(t, []string{"alice", "carol"}, r.Profile.ID)
	}

	// The requester has no incoming requests.
	requests, err = graph.ListPendingRequests(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, requests)
}

// interleavedStore wraps a MemoryStore and fires a hook after the first
// FriendLinks().GetByID, emulating a mutation that commits between a
// lifecycle operation's initial read and its locked re-read.
type interleavedStore struct {
	store.Store
	afterFirstGet func()
	gets          int
}

func (s *interleavedStore) FriendLinks() store.FriendLinkStore {
	return &interleavedLinks{FriendLinkStore: s.Store.FriendLinks(), parent: s}
}

type interleavedLinks struct {
	store.FriendLinkStore
	parent *interleavedStore
}

func (l *interleavedLinks) GetByID(ctx context.Context, id string) (*models.FriendLink, error) {
	link, err := l.FriendLinkStore.GetByID(ctx, id)
	l.parent.gets++
	if l.parent.gets == 1 && l.parent.afterFirstGet != nil {
		l.parent.afterFirstGet()
	}
	return link, err
}

func TestAcceptAfterInterleavedRejectStaysDeleted(t *testing.T) {
	raw := store.NewMemoryStore()
	ctx := context.Background()
	seedUser(t, raw, "alice", "alice@example.com")
	seedUser(t, raw, "bob", "bob@example.com")

	wrapped := &interleavedStore{Store: raw}
	graph := NewGraph(wrapped)

	link, err := graph.SendFriendRequest(ctx, "alice", "bob@example.com")
	require.NoError(t, err)

	// The reject commits after accept has read the link but before it holds
	// the pair lock.
	wrapped.afterFirstGet = func() {
		require.NoError(t, raw.FriendLinks().Delete(ctx, link.ID))
	}

	_, err = graph.AcceptFriendRequest(ctx, "bob", link.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// The rejected link must stay deleted and no friendship may appear.
	got, err := raw.FriendLinks().GetByID(ctx, link.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	aliceFriends, err := graph.ListFriends(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, aliceFriends)

	// The pair is free again: a fresh request must not conflict.
	_, err = graph.SendFriendRequest(ctx, "bob", "alice@example.com")
	assert.NoError(t, err)
}

func TestRejectAfterInterleavedRemovalStaysDeleted(t *testing.T) {
	raw := store.NewMemoryStore()
	ctx := context.Background()
	seedUser(t, raw, "alice", "alice@example.com")
	seedUser(t, raw, "bob", "bob@example.com")

	wrapped := &interleavedStore{Store: raw}
	graph := NewGraph(wrapped)

	link, err := graph.SendFriendRequest(ctx, "alice", "bob@example.com")
	require.NoError(t, err)

	wrapped.afterFirstGet = func() {
		require.NoError(t, raw.FriendLinks().Delete(ctx, link.ID))
	}

	err = graph.RejectFriendRequest(ctx, "bob", link.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestAreFriends(t *testing.T) {
	graph, st := newTestGraph(t)
	ctx := context.Background()
	seedUser(t, st, "alice", "alice@example.com")
	seedUser(t, st, "bob", "bob@example.com")

	friends, err := graph.AreFriends(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, friends)

	link, err := graph.SendFriendRequest(ctx, "alice", "bob@example.com")
	require.NoError(t, err)

	// Pending is not friendship yet.
	friends, err = graph.AreFriends(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.False(t, friends)

	_, err = graph.AcceptFriendRequest(ctx, "bob", link.ID)
	require.NoError(t, err)

	friends, err = graph.AreFriends(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.True(t, friends)
}
