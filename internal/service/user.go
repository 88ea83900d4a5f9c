package service

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"fitlink/backend/internal/apperr"
	"fitlink/backend/internal/models"
	"fitlink/backend/internal/policy"
	"fitlink/backend/internal/store"
)

// UserService gates user CRUD behind the authorization policy and owns
// registration and credential checks.
type UserService struct {
	store store.Store
}

// NewUserService constructs a UserService.
func NewUserService(s store.Store) *UserService {
	return &UserService{store: s}
}

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// UpdateUserInput carries a partial update; nil fields are left as-is. Role
// changes are admin-only.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Role      *models.Role
}

// Register creates a new account with role user.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if input.Email == "" {
		return nil, apperr.Invalid("email is required")
	}
	if len(input.Password) < 8 {
		return nil, apperr.Invalid("password must be at least 8 characters")
	}

	existing, err := s.store.Users().GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         models.RoleUser,
	}
	if err := s.store.Users().Insert(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("user registered", "user", user.ID)
	return user, nil
}

// Authenticate checks email/password credentials and returns the account.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Unauthenticated("invalid credentials")
	}
	return user, nil
}

// Get returns a user record the actor may manage.
func (s *UserService) Get(ctx context.Context, actorID, targetID string) (*models.User, error) {
	actor, err := resolveActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return nil, err
	}
	target, err := s.store.Users().GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperr.NotFound("user not found")
	}
	if !policy.CanManageUser(actor, target) {
		return nil, apperr.Forbidden("not allowed to access this user")
	}
	return target, nil
}

// List returns every user. Admin only, regardless of target identity.
func (s *UserService) List(ctx context.Context, actorID string) ([]models.User, error) {
	actor, err := resolveActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return nil, err
	}
	if !policy.CanListAllUsers(actor) {
		return nil, apperr.Forbidden("only admins can list users")
	}
	return s.store.Users().List(ctx)
}

// Update applies a partial update to a user the actor may manage. Only
// admins may change roles.
func (s *UserService) Update(ctx context.Context, actorID, targetID string, input UpdateUserInput) (*models.User, error) {
	actor, err := resolveActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return nil, err
	}
	target, err := s.store.Users().GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperr.NotFound("user not found")
	}
	if !policy.CanManageUser(actor, target) {
		return nil, apperr.Forbidden("not allowed to access this user")
	}

	if input.FirstName != nil {
		target.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		target.LastName = *input.LastName
	}
	if input.Role != nil {
		if actor.Role != models.RoleAdmin {
			return nil, apperr.Forbidden("only admins can change roles")
		}
		if !input.Role.Valid() {
			return nil, apperr.Invalid("unknown role")
		}
		target.Role = *input.Role
	}

	if err := s.store.Users().Update(ctx, target); err != nil {
		return nil, err
	}
	return target, nil
}

// Delete removes a user the actor may manage, along with every friend link
// the user participates in. Activities are left in place; nothing in the
// data model defines a cascade for them.
func (s *UserService) Delete(ctx context.Context, actorID, targetID string) error {
	actor, err := resolveActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return err
	}
	target, err := s.store.Users().GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return apperr.NotFound("user not found")
	}
	if !policy.CanManageUser(actor, target) {
		return apperr.Forbidden("not allowed to access this user")
	}

	if err := s.store.FriendLinks().DeleteForUser(ctx, target.ID); err != nil {
		return err
	}
	if err := s.store.Users().Delete(ctx, target.ID); err != nil {
		return err
	}

	slog.Info("user deleted", "user", target.ID, "actor", actor.ID)
	return nil
}
