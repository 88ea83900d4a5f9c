package models

import "time"

// FriendshipStatus defines the state of a relationship between two users.
type FriendshipStatus string

const (
	// StatusPending means a friend request has been sent but not yet accepted.
	StatusPending FriendshipStatus = "pending"

	// StatusAccepted means the friend request was accepted, and the users are now friends.
	StatusAccepted FriendshipStatus = "accepted"
)

// FriendLink is a single row per relationship: directed while pending
// (UserID sent the request to FriendID), symmetric once accepted. Rejected
// or removed relationships are deleted, not archived.
type FriendLink struct {
	ID       string           `gorm:"primaryKey;size:36" json:"id"`
	UserID   string           `gorm:"size:36;not null;index" json:"user_id"`
	FriendID string           `gorm:"size:36;not null;index" json:"friend_id"`
	Status   FriendshipStatus `gorm:"type:varchar(20);not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Involves reports whether userID is either participant of the link.
func (l FriendLink) Involves(userID string) bool {
	return l.UserID == userID || l.FriendID == userID
}

// OtherSide returns the participant that is not userID.
func (l FriendLink) OtherSide(userID string) string {
	if l.UserID == userID {
		return l.FriendID
	}
	return l.UserID
}
