package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	Name           string
	ProfilePicture string

	// Deterministic meal ids the user has opted out of. Generated meals are
	// never stored; membership in this set is the only durable fact about them.
	BlockedMeals datatypes.JSONSlice[string]

	ResetToken    string
	ResetTokenExp time.Time
}
