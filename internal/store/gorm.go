package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlink/backend/internal/models"
)

// GormStore implements Store on top of a gorm connection.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an already-connected gorm handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Users() UserStore                 { return gormUsers{s.db} }
func (s *GormStore) Activities() ActivityStore        { return gormActivities{s.db} }
func (s *GormStore) FriendLinks() FriendLinkStore     { return gormFriendLinks{s.db} }
func (s *GormStore) ExerciseTypes() ExerciseTypeStore { return gormExerciseTypes{s.db} }

type gormUsers struct{ db *gorm.DB }

func (g gormUsers) Insert(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return g.db.WithContext(ctx).Create(user).Error
}

func (g gormUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := g.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (g gormUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := g.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (g gormUsers) Update(ctx context.Context, user *models.User) error {
	return g.db.WithContext(ctx).Save(user).Error
}

func (g gormUsers) Delete(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error
}

func (g gormUsers) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := g.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

type gormActivities struct{ db *gorm.DB }

func (g gormActivities) Insert(ctx context.Context, activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	return g.db.WithContext(ctx).Create(activity).Error
}

func (g gormActivities) GetByID(ctx context.Context, id string) (*models.Activity, error) {
	var activity models.Activity
	err := g.db.WithContext(ctx).First(&activity, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (g gormActivities) Update(ctx context.Context, activity *models.Activity) error {
	return g.db.WithContext(ctx).Save(activity).Error
}

func (g gormActivities) Delete(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Delete(&models.Activity{}, "id = ?", id).Error
}

func (g gormActivities) ListByUser(ctx context.Context, userID string) ([]models.Activity, error) {
	var activities []models.Activity
	err := g.db.WithContext(ctx).Where("user_id = ?", userID).Order("date desc").Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

type gormFriendLinks struct{ db *gorm.DB }

func (g gormFriendLinks) Insert(ctx context.Context, link *models.FriendLink) error {
	if link.ID == "" {
		link.ID = uuid.NewString()
	}
	return g.db.WithContext(ctx).Create(link).Error
}

func (g gormFriendLinks) GetByID(ctx context.Context, id string) (*models.FriendLink, error) {
	var link models.FriendLink
	err := g.db.WithContext(ctx).First(&link, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (g gormFriendLinks) Update(ctx context.Context, link *models.FriendLink) error {
	return g.db.WithContext(ctx).Save(link).Error
}

func (g gormFriendLinks) Delete(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Delete(&models.FriendLink{}, "id = ?", id).Error
}

func (g gormFriendLinks) ListBetween(ctx context.Context, userID, otherID string) ([]models.FriendLink, error) {
	var links []models.FriendLink
	err := g.db.WithContext(ctx).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, otherID, otherID, userID).
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (g gormFriendLinks) ListForUser(ctx context.Context, userID string, status models.FriendshipStatus) ([]models.FriendLink, error) {
	var links []models.FriendLink
	err := g.db.WithContext(ctx).
		Where("(user_id = ? OR friend_id = ?) AND status = ?", userID, userID, status).
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (g gormFriendLinks) ListIncoming(ctx context.Context, userID string, status models.FriendshipStatus) ([]models.FriendLink, error) {
	var links []models.FriendLink
	err := g.db.WithContext(ctx).
		Where("friend_id = ? AND status = ?", userID, status).
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (g gormFriendLinks) DeleteForUser(ctx context.Context, userID string) error {
	return g.db.WithContext(ctx).
		Where("user_id = ? OR friend_id = ?", userID, userID).
		Delete(&models.FriendLink{}).Error
}

type gormExerciseTypes struct{ db *gorm.DB }

func (g gormExerciseTypes) Insert(ctx context.Context, et *models.ExerciseType) error {
	if et.ID == "" {
		et.ID = uuid.NewString()
	}
	return g.db.WithContext(ctx).Create(et).Error
}

func (g gormExerciseTypes) GetByID(ctx context.Context, id string) (*models.ExerciseType, error) {
	var et models.ExerciseType
	err := g.db.WithContext(ctx).First(&et, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &et, nil
}

func (g gormExerciseTypes) GetByName(ctx context.Context, name string) (*models.ExerciseType, error) {
	var et models.ExerciseType
	err := g.db.WithContext(ctx).First(&et, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &et, nil
}

func (g gormExerciseTypes) Update(ctx context.Context, et *models.ExerciseType) error {
	return g.db.WithContext(ctx).Save(et).Error
}

func (g gormExerciseTypes) Delete(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Delete(&models.ExerciseType{}, "id = ?", id).Error
}

func (g gormExerciseTypes) List(ctx context.Context) ([]models.ExerciseType, error) {
	var types []models.ExerciseType
	if err := g.db.WithContext(ctx).Order("name").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
