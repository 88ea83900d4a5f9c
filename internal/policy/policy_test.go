package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fitlink/backend/internal/models"
)

func TestCanAccessActivity(t *testing.T) {
	owner := &models.User{ID: "u1", Role: models.RoleUser}
	admin := &models.User{ID: "a1", Role: models.RoleAdmin}
	stranger := &models.User{ID: "u2", Role: models.RoleUser}
	activity := &models.Activity{ID: "act1", UserID: "u1"}

	assert.True(t, CanAccessActivity(owner, activity))
	assert.True(t, CanAccessActivity(admin, activity))
	assert.False(t, CanAccessActivity(stranger, activity))
}

func TestCanAccessActivityDeniesOnMissingData(t *testing.T) {
	activity := &models.Activity{ID: "act1", UserID: "u1"}

	assert.False(t, CanAccessActivity(nil, activity))
	assert.False(t, CanAccessActivity(&models.User{ID: "u1"}, nil))
	// Zero-value actor must not match a zero-value owner.
	assert.False(t, CanAccessActivity(&models.User{}, &models.Activity{}))
}

func TestCanManageUser(t *testing.T) {
	self := &models.User{ID: "u1", Role: models.RoleUser}
	admin := &models.User{ID: "a1", Role: models.RoleAdmin}
	other := &models.User{ID: "u2", Role: models.RoleUser}

	assert.True(t, CanManageUser(self, self))
	assert.True(t, CanManageUser(admin, self))
	assert.False(t, CanManageUser(other, self))
	assert.False(t, CanManageUser(nil, self))
	assert.False(t, CanManageUser(self, nil))
}

func TestCanListAllUsers(t *testing.T) {
	assert.True(t, CanListAllUsers(&models.User{ID: "a1", Role: models.RoleAdmin}))
	assert.False(t, CanListAllUsers(&models.User{ID: "u1", Role: models.RoleUser}))
	assert.False(t, CanListAllUsers(nil))
}
