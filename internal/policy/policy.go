// Package policy holds the pure authorization predicates. They never error
// and never touch storage; missing data denies.
package policy

import "fitlink/backend/internal/models"

// CanAccessActivity reports whether actor may read or mutate the activity.
// Owners and admins qualify.
func CanAccessActivity(actor *models.User, activity *models.Activity) bool {
	if actor == nil || activity == nil || actor.ID == "" {
		return false
	}
	return actor.ID == activity.UserID || actor.Role == models.RoleAdmin
}

// CanManageUser reports whether actor may read or mutate the target user.
// Users manage themselves; admins manage anyone.
func CanManageUser(actor, target *models.User) bool {
	if actor == nil || target == nil || actor.ID == "" {
		return false
	}
	return actor.ID == target.ID || actor.Role == models.RoleAdmin
}

// CanListAllUsers reports whether actor may enumerate every user.
func CanListAllUsers(actor *models.User) bool {
	return actor != nil && actor.Role == models.RoleAdmin
}
