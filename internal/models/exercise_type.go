package models

import "time"

// ExerciseType is a catalog entry maintained by admins.
type ExerciseType struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"size:255;unique;not null" json:"name"`
	Description string `gorm:"size:1024" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
