package service

import (
	"context"

	"fitlink/backend/internal/apperr"
	"fitlink/backend/internal/models"
	"fitlink/backend/internal/store"
)

// resolveActor loads the acting user. An empty or unknown id means the
// request carries no usable identity.
func resolveActor(ctx context.Context, users store.UserStore, actorID string) (*models.User, error) {
	if actorID == "" {
		return nil, apperr.Unauthenticated("not authenticated")
	}
	actor, err := users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, apperr.Unauthenticated("authenticated user no longer exists")
	}
	return actor, nil
}
