package service

import (
	"context"
	"time"

	"fitlink/backend/internal/apperr"
	"fitlink/backend/internal/models"
	"fitlink/backend/internal/policy"
	"fitlink/backend/internal/store"
)

// FriendChecker answers whether two users are friends. Satisfied by
// social.Graph.
type FriendChecker interface {
	AreFriends(ctx context.Context, userID, otherID string) (bool, error)
}

// ActivityService gates activity CRUD behind the authorization policy.
// Every read/mutate of an existing record resolves the record first, so a
// missing activity is NotFound even for actors who could never access it.
type ActivityService struct {
	store   store.Store
	friends FriendChecker
}

// NewActivityService constructs an ActivityService.
func NewActivityService(s store.Store, friends FriendChecker) *ActivityService {
	return &ActivityService{store: s, friends: friends}
}

// CreateActivityInput carries the fields of a new activity.
type CreateActivityInput struct {
	UserID      string
	Description string
	Duration    int
	Date        time.Time
}

// UpdateActivityInput carries a partial update; nil fields are left as-is.
type UpdateActivityInput struct {
	Description *string
	Duration    *int
	Date        *time.Time
}

// Create inserts an activity for input.UserID. Only the owner or an admin
// may create it.
func (s *ActivityService) Create(ctx context.Context, actorID string, input CreateActivityInput) (*models.Activity, error) {
	actor, err := resolveActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return nil, err
	}
	if actor.ID != input.UserID && actor.Role != models.RoleAdmin {
		return nil, apperr.Forbidden("cannot create activities for another user")
	}
	if input.Duration <= 0 {
		return nil, apperr.Invalid("duration must be a positive number of minutes")
	}
	if input.Description == "" {
		return nil, apperr.Invalid("description is required")
	}

	activity := &models.Activity{
		UserID:      input.UserID,
		Description: input.Description,
		Duration:    input.Duration,
		Date:        input.Date,
	}
	if err := s.store.Activities().Insert(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// Get returns a single activity visible to the actor.
func (s *ActivityService) Get(ctx context.Context, actorID, activityID string) (*models.Activity, error) {
	actor, err := resolveActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return nil, err
	}
	activity, err := s.store.Activities().GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, apperr.NotFound("activity not found")
	}
	if !policy.CanAccessActivity(actor, activity) {
		return nil, apperr.Forbidden("not allowed to access this activity")
	}
	return activity, nil
}

// List returns every activity owned by targetUserID. Restricted to the owner
// and admins.
func (s *ActivityService) List(ctx context.Context, actorID, targetUserID string) ([]models.Activity, error) {
	actor, err := resolveActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return nil, err
	}
	if actor.ID != targetUserID && actor.Role != models.RoleAdmin {
		return nil, apperr.Forbidden("not allowed to list this user's activities")
	}
	return s.store.Activities().ListByUser(ctx, targetUserID)
}

// FriendFeed returns targetUserID's activities for an actor who is their
// friend. Owners and admins pass without a friendship.
func (s *ActivityService) FriendFeed(ctx context.Context, actorID, targetUserID string) ([]models.Activity, error) {
	actor, err := resolveActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return nil, err
	}
	target, err := s.store.Users().GetByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperr.NotFound("user not found")
	}
	if actor.ID != targetUserID && actor.Role != models.RoleAdmin {
		friends, err := s.friends.AreFriends(ctx, actor.ID, targetUserID)
		if err != nil {
			return nil, err
		}
		if !friends {
			return nil, apperr.Forbidden("activities are only visible to friends")
		}
	}
	return s.store.Activities().ListByUser(ctx, targetUserID)
}

// Update applies a partial update to an activity visible to the actor.
func (s *ActivityService) Update(ctx context.Context, actorID, activityID string, input UpdateActivityInput) (*models.Activity, error) {
	actor, err := resolveActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return nil, err
	}
	activity, err := s.store.Activities().GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, apperr.NotFound("activity not found")
	}
	if !policy.CanAccessActivity(actor, activity) {
		return nil, apperr.Forbidden("not allowed to access this activity")
	}

	if input.Description != nil {
		if *input.Description == "" {
			return nil, apperr.Invalid("description is required")
		}
		activity.Description = *input.Description
	}
	if input.Duration != nil {
		if *input.Duration <= 0 {
			return nil, apperr.Invalid("duration must be a positive number of minutes")
		}
		activity.Duration = *input.Duration
	}
	if input.Date != nil {
		activity.Date = *input.Date
	}

	if err := s.store.Activities().Update(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// Delete removes an activity visible to the actor.
func (s *ActivityService) Delete(ctx context.Context, actorID, activityID string) error {
	actor, err := resolveActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return err
	}
	activity, err := s.store.Activities().GetByID(ctx, activityID)
	if err != nil {
		return err
	}
	if activity == nil {
		return apperr.NotFound("activity not found")
	}
	if !policy.CanAccessActivity(actor, activity) {
		return apperr.Forbidden("not allowed to access this activity")
	}
	return s.store.Activities().Delete(ctx, activity.ID)
}
