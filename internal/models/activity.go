package models

import "time"

// Activity is a logged workout owned by exactly one user.
type Activity struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"size:36;not null;index" json:"user_id"`
	Description string    `gorm:"size:1024;not null" json:"description"`
	Duration    int       `gorm:"not null" json:"duration"` // minutes
	Date        time.Time `json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
