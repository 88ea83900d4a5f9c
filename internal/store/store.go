// Package store defines the persistence abstraction the core depends on.
// Absence of a record is reported as a nil row with a nil error; a non-nil
// error always means the underlying store itself failed.
package store

import (
	"context"

	"fitlink/backend/internal/models"
)

// Store bundles the per-collection stores behind a single injection point.
type Store interface {
	Users() UserStore
	Activities() ActivityStore
	FriendLinks() FriendLinkStore
	ExerciseTypes() ExerciseTypeStore
}

// UserStore persists user rows.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.User, error)
}

// ActivityStore persists activity rows.
type ActivityStore interface {
	Insert(ctx context.Context, activity *models.Activity) error
	GetByID(ctx context.Context, id string) (*models.Activity, error)
	Update(ctx context.Context, activity *models.Activity) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]models.Activity, error)
}

// FriendLinkStore persists friend links. ListBetween and ListForUser match
// links regardless of which side the given user is on.
type FriendLinkStore interface {
	Insert(ctx context.Context, link *models.FriendLink) error
	GetByID(ctx context.Context, id string) (*models.FriendLink, error)
	Update(ctx context.Context, link *models.FriendLink) error
	Delete(ctx context.Context, id string) error
	ListBetween(ctx context.Context, userID, otherID string) ([]models.FriendLink, error)
	ListForUser(ctx context.Context, userID string, status models.FriendshipStatus) ([]models.FriendLink, error)
	ListIncoming(ctx context.Context, userID string, status models.FriendshipStatus) ([]models.FriendLink, error)
	DeleteForUser(ctx context.Context, userID string) error
}

// ExerciseTypeStore persists the exercise-type catalog.
type ExerciseTypeStore interface {
	Insert(ctx context.Context, et *models.ExerciseType) error
	GetByID(ctx context.Context, id string) (*models.ExerciseType, error)
	GetByName(ctx context.Context, name string) (*models.ExerciseType, error)
	Update(ctx context.Context, et *models.ExerciseType) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.ExerciseType, error)
}
