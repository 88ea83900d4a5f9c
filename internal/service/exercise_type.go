package service

import (
	"context"

	"fitlink/backend/internal/apperr"
	"fitlink/backend/internal/models"
	"fitlink/backend/internal/store"
)

// ExerciseTypeService manages the exercise-type catalog. Reads are open to
// any authenticated caller; writes are admin-only.
type ExerciseTypeService struct {
	store store.Store
}

// NewExerciseTypeService constructs an ExerciseTypeService.
func NewExerciseTypeService(s store.Store) *ExerciseTypeService {
	return &ExerciseTypeService{store: s}
}

// ExerciseTypeInput carries the fields of a catalog entry.
type ExerciseTypeInput struct {
	Name        string
	Description string
}

func (s *ExerciseTypeService) requireAdmin(ctx context.Context, actorID string) error {
	actor, err := resolveActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return err
	}
	if actor.Role != models.RoleAdmin {
		return apperr.Forbidden("only admins can manage exercise types")
	}
	return nil
}

// Create adds a catalog entry. Names are unique.
func (s *ExerciseTypeService) Create(ctx context.Context, actorID string, input ExerciseTypeInput) (*models.ExerciseType, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, apperr.Invalid("name is required")
	}

	existing, err := s.store.ExerciseTypes().GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("exercise type already exists")
	}

	et := &models.ExerciseType{Name: input.Name, Description: input.Description}
	if err := s.store.ExerciseTypes().Insert(ctx, et); err != nil {
		return nil, err
	}
	return et, nil
}

// Get returns a single catalog entry.
func (s *ExerciseTypeService) Get(ctx context.Context, id string) (*models.ExerciseType, error) {
	et, err := s.store.ExerciseTypes().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if et == nil {
		return nil, apperr.NotFound("exercise type not found")
	}
	return et, nil
}

// List returns the whole catalog.
func (s *ExerciseTypeService) List(ctx context.Context) ([]models.ExerciseType, error) {
	return s.store.ExerciseTypes().List(ctx)
}

// Update renames or re-describes a catalog entry.
func (s *ExerciseTypeService) Update(ctx context.Context, actorID, id string, input ExerciseTypeInput) (*models.ExerciseType, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	et, err := s.store.ExerciseTypes().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if et == nil {
		return nil, apperr.NotFound("exercise type not found")
	}
	if input.Name == "" {
		return nil, apperr.Invalid("name is required")
	}

	if input.Name != et.Name {
		existing, err := s.store.ExerciseTypes().GetByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperr.Conflict("exercise type already exists")
		}
	}

	et.Name = input.Name
	et.Description = input.Description
	if err := s.store.ExerciseTypes().Update(ctx, et); err != nil {
		return nil, err
	}
	return et, nil
}

// Delete removes a catalog entry.
func (s *ExerciseTypeService) Delete(ctx context.Context, actorID, id string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}

	et, err := s.store.ExerciseTypes().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if et == nil {
		return apperr.NotFound("exercise type not found")
	}
	return s.store.ExerciseTypes().Delete(ctx, et.ID)
}
