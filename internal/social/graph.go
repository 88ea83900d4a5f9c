// Package social owns the friend-request lifecycle. A relationship is one
// FriendLink row: directed while pending, symmetric once accepted. Rejecting
// a request or removing a friend deletes the row.
package social

import (
	"context"
	"log/slog"
	"time"

	"fitlink/backend/internal/apperr"
	"fitlink/backend/internal/models"
	"fitlink/backend/internal/store"
)

// Profile is the minimal counterpart view joined onto friend listings.
type Profile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FriendView is one entry of a friend or pending-request listing: the link
// plus the other participant's profile.
type FriendView struct {
	LinkID  string                  `json:"link_id"`
	Status  models.FriendshipStatus `json:"status"`
	Since   time.Time               `json:"since"`
	Profile Profile                 `json:"profile"`
}

// Graph manages friend links on top of the injected store.
type Graph struct {
	store store.Store
	pairs *pairLocks
}

// NewGraph constructs a Graph.
func NewGraph(s store.Store) *Graph {
	return &Graph{store: s, pairs: newPairLocks()}
}

// SendFriendRequest creates a pending link from requester to the user owning
// recipientEmail. Any existing link between the pair, in either direction and
// either state, is a conflict.
func (g *Graph) SendFriendRequest(ctx context.Context, requesterID, recipientEmail string) (*models.FriendLink, error) {
	recipient, err := g.store.Users().GetByEmail(ctx, recipientEmail)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, apperr.NotFound("user not found")
	}
	if recipient.ID == requesterID {
		return nil, apperr.Invalid("cannot send friend request to yourself")
	}

	// The conflict check and the insert must not interleave with another
	// request for the same pair.
	unlock := g.pairs.lock(requesterID, recipient.ID)
	defer unlock()

	existing, err := g.store.FriendLinks().ListBetween(ctx, requesterID, recipient.ID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperr.Conflict("friend request already sent or friendship already exists")
	}

	link := &models.FriendLink{
		UserID:   requesterID,
		FriendID: recipient.ID,
		Status:   models.StatusPending,
	}
	if err := g.store.FriendLinks().Insert(ctx, link); err != nil {
		return nil, err
	}

	slog.Info("friend request sent", "requester", requesterID, "recipient", recipient.ID)
	return link, nil
}

// lockLink resolves the request's pair lock and re-reads the link under it.
// The first read only names the pair; a reject or removal may commit between
// that read and lock acquisition, so every check runs against the locked
// re-read.
func (g *Graph) lockLink(ctx context.Context, requestID string) (*models.FriendLink, func(), error) {
	link, err := g.store.FriendLinks().GetByID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}
	if link == nil {
		return nil, nil, apperr.NotFound("friend request not found")
	}

	unlock := g.pairs.lock(link.UserID, link.FriendID)

	link, err = g.store.FriendLinks().GetByID(ctx, requestID)
	if err != nil {
		unlock()
		return nil, nil, err
	}
	if link == nil {
		unlock()
		return nil, nil, apperr.NotFound("friend request not found")
	}
	return link, unlock, nil
}

// AcceptFriendRequest transitions a link to accepted. Only the recipient of
// the request may accept it.
func (g *Graph) AcceptFriendRequest(ctx context.Context, actorID, requestID string) (*models.FriendLink, error) {
	link, unlock, err := g.lockLink(ctx, requestID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if link.FriendID != actorID {
		return nil, apperr.Forbidden("you can only accept your own friend requests")
	}

	link.Status = models.StatusAccepted
	if err := g.store.FriendLinks().Update(ctx, link); err != nil {
		return nil, err
	}

	slog.Info("friend request accepted", "requester", link.UserID, "recipient", link.FriendID)
	return link, nil
}

// RejectFriendRequest deletes a request addressed to the actor. No trace of
// the request survives.
func (g *Graph) RejectFriendRequest(ctx context.Context, actorID, requestID string) error {
	link, unlock, err := g.lockLink(ctx, requestID)
	if err != nil {
		return err
	}
	defer unlock()

	if link.FriendID != actorID {
		return apperr.Forbidden("you can only reject your own friend requests")
	}

	return g.store.FriendLinks().Delete(ctx, link.ID)
}

// RemoveFriend deletes every link between the actor and friendID, in either
// direction. Removing a non-existent friendship is a silent no-op.
func (g *Graph) RemoveFriend(ctx context.Context, actorID, friendID string) error {
	unlock := g.pairs.lock(actorID, friendID)
	defer unlock()

	links, err := g.store.FriendLinks().ListBetween(ctx, actorID, friendID)
	if err != nil {
		return err
	}
	for _, link := range links {
		if err := g.store.FriendLinks().Delete(ctx, link.ID); err != nil {
			return err
		}
	}
	return nil
}

// AreFriends reports whether the two users share an accepted link.
func (g *Graph) AreFriends(ctx context.Context, userID, otherID string) (bool, error) {
	links, err := g.store.FriendLinks().ListBetween(ctx, userID, otherID)
	if err != nil {
		return false, err
	}
	for _, link := range links {
		if link.Status == models.StatusAccepted {
			return true, nil
		}
	}
	return false, nil
}

// ListFriends returns the actor's accepted friendships with the counterpart
// profile resolved, regardless of which side of the link the actor is on.
func (g *Graph) ListFriends(ctx context.Context, actorID string) ([]FriendView, error) {
	links, err := g.store.FriendLinks().ListForUser(ctx, actorID, models.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return g.joinProfiles(ctx, actorID, links)
}

// ListPendingRequests returns requests addressed to the actor that are still
// awaiting an answer, with the requester's profile resolved.
func (g *Graph) ListPendingRequests(ctx context.Context, actorID string) ([]FriendView, error) {
	links, err := g.store.FriendLinks().ListIncoming(ctx, actorID, models.StatusPending)
	if err != nil {
		return nil, err
	}
	return g.joinProfiles(ctx, actorID, links)
}

func (g *Graph) joinProfiles(ctx context.Context, actorID string, links []models.FriendLink) ([]FriendView, error) {
	views := make([]FriendView, 0, len(links))
	for _, link := range links {
		otherID := link.OtherSide(actorID)

		profile := Profile{ID: otherID, FirstName: "Unknown", LastName: "User"}
		other, err := g.store.Users().GetByID(ctx, otherID)
		if err != nil {
			return nil, err
		}
		if other != nil {
			profile = Profile{
				ID:        other.ID,
				Email:     other.Email,
				FirstName: other.FirstName,
				LastName:  other.LastName,
			}
		}

		views = append(views, FriendView{
			LinkID:  link.ID,
			Status:  link.Status,
			Since:   link.CreatedAt,
			Profile: profile,
		})
	}
	return views, nil
}
