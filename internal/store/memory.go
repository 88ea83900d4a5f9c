package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"fitlink/backend/internal/models"
)

// MemoryStore keeps every collection in process memory. It backs tests and
// the local STORE_DRIVER=memory mode.
type MemoryStore struct {
	mu            sync.RWMutex
	users         map[string]models.User
	activities    map[string]models.Activity
	friendLinks   map[string]models.FriendLink
	exerciseTypes map[string]models.ExerciseType
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[string]models.User),
		activities:    make(map[string]models.Activity),
		friendLinks:   make(map[string]models.FriendLink),
		exerciseTypes: make(map[string]models.ExerciseType),
	}
}

func (s *MemoryStore) Users() UserStore                 { return memUsers{s} }
func (s *MemoryStore) Activities() ActivityStore        { return memActivities{s} }
func (s *MemoryStore) FriendLinks() FriendLinkStore     { return memFriendLinks{s} }
func (s *MemoryStore) ExerciseTypes() ExerciseTypeStore { return memExerciseTypes{s} }

type memUsers struct{ s *MemoryStore }

func (m memUsers) Insert(ctx context.Context, user *models.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	m.s.users[user.ID] = *user
	return nil
}

func (m memUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	user, ok := m.s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (m memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	for _, user := range m.s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (m memUsers) Update(ctx context.Context, user *models.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if _, ok := m.s.users[user.ID]; !ok {
		return fmt.Errorf("update user %s: row does not exist", user.ID)
	}
	user.UpdatedAt = time.Now().UTC()
	m.s.users[user.ID] = *user
	return nil
}

func (m memUsers) Delete(ctx context.Context, id string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	delete(m.s.users, id)
	return nil
}

func (m memUsers) List(ctx context.Context) ([]models.User, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	users := make([]models.User, 0, len(m.s.users))
	for _, user := range m.s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

type memActivities struct{ s *MemoryStore }

func (m memActivities) Insert(ctx context.Context, activity *models.Activity) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	activity.CreatedAt = now
	activity.UpdatedAt = now
	m.s.activities[activity.ID] = *activity
	return nil
}

func (m memActivities) GetByID(ctx context.Context, id string) (*models.Activity, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	activity, ok := m.s.activities[id]
	if !ok {
		return nil, nil
	}
	return &activity, nil
}

func (m memActivities) Update(ctx context.Context, activity *models.Activity) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if _, ok := m.s.activities[activity.ID]; !ok {
		return fmt.Errorf("update activity %s: row does not exist", activity.ID)
	}
	activity.UpdatedAt = time.Now().UTC()
	m.s.activities[activity.ID] = *activity
	return nil
}

func (m memActivities) Delete(ctx context.Context, id string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	delete(m.s.activities, id)
	return nil
}

func (m memActivities) ListByUser(ctx context.Context, userID string) ([]models.Activity, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	activities := make([]models.Activity, 0)
	for _, activity := range m.s.activities {
		if activity.UserID == userID {
			activities = append(activities, activity)
		}
	}
	sort.Slice(activities, func(i, j int) bool { return activities[i].Date.After(activities[j].Date) })
	return activities, nil
}

type memFriendLinks struct{ s *MemoryStore }

func (m memFriendLinks) Insert(ctx context.Context, link *models.FriendLink) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if link.ID == "" {
		link.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	link.CreatedAt = now
	link.UpdatedAt = now
	m.s.friendLinks[link.ID] = *link
	return nil
}

func (m memFriendLinks) GetByID(ctx context.Context, id string) (*models.FriendLink, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	link, ok := m.s.friendLinks[id]
	if !ok {
		return nil, nil
	}
	return &link, nil
}

func (m memFriendLinks) Update(ctx context.Context, link *models.FriendLink) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if _, ok := m.s.friendLinks[link.ID]; !ok {
		return fmt.Errorf("update friend link %s: row does not exist", link.ID)
	}
	link.UpdatedAt = time.Now().UTC()
	m.s.friendLinks[link.ID] = *link
	return nil
}

func (m memFriendLinks) Delete(ctx context.Context, id string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	delete(m.s.friendLinks, id)
	return nil
}

func (m memFriendLinks) ListBetween(ctx context.Context, userID, otherID string) ([]models.FriendLink, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	links := make([]models.FriendLink, 0)
	for _, link := range m.s.friendLinks {
		if (link.UserID == userID && link.FriendID == otherID) ||
			(link.UserID == otherID && link.FriendID == userID) {
			links = append(links, link)
		}
	}
	return links, nil
}

func (m memFriendLinks) ListForUser(ctx context.Context, userID string, status models.FriendshipStatus) ([]models.FriendLink, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	links := make([]models.FriendLink, 0)
	for _, link := range m.s.friendLinks {
		if link.Involves(userID) && link.Status == status {
			links = append(links, link)
		}
	}
	return links, nil
}

func (m memFriendLinks) ListIncoming(ctx context.Context, userID string, status models.FriendshipStatus) ([]models.FriendLink, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	links := make([]models.FriendLink, 0)
	for _, link := range m.s.friendLinks {
		if link.FriendID == userID && link.Status == status {
			links = append(links, link)
		}
	}
	return links, nil
}

func (m memFriendLinks) DeleteForUser(ctx context.Context, userID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	for id, link := range m.s.friendLinks {
		if link.Involves(userID) {
			delete(m.s.friendLinks, id)
		}
	}
	return nil
}

type memExerciseTypes struct{ s *MemoryStore }

func (m memExerciseTypes) Insert(ctx context.Context, et *models.ExerciseType) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if et.ID == "" {
		et.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	et.CreatedAt = now
	et.UpdatedAt = now
	m.s.exerciseTypes[et.ID] = *et
	return nil
}

func (m memExerciseTypes) GetByID(ctx context.Context, id string) (*models.ExerciseType, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	et, ok := m.s.exerciseTypes[id]
	if !ok {
		return nil, nil
	}
	return &et, nil
}

func (m memExerciseTypes) GetByName(ctx context.Context, name string) (*models.ExerciseType, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	for _, et := range m.s.exerciseTypes {
		if et.Name == name {
			found := et
			return &found, nil
		}
	}
	return nil, nil
}

func (m memExerciseTypes) Update(ctx context.Context, et *models.ExerciseType) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if _, ok := m.s.exerciseTypes[et.ID]; !ok {
		return fmt.Errorf("update exercise type %s: row does not exist", et.ID)
	}
	et.UpdatedAt = time.Now().UTC()
	m.s.exerciseTypes[et.ID] = *et
	return nil
}

func (m memExerciseTypes) Delete(ctx context.Context, id string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	delete(m.s.exerciseTypes, id)
	return nil
}

func (m memExerciseTypes) List(ctx context.Context) ([]models.ExerciseType, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	types := make([]models.ExerciseType, 0, len(m.s.exerciseTypes))
	for _, et := range m.s.exerciseTypes {
		types = append(types, et)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Name < types[j].Name })
	return types, nil
}
