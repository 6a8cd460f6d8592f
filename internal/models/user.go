// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Gender is the closed set of accepted gender values.
type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderOther       Gender = "other"
	GenderUnspecified Gender = "prefer not to say"
)

// ValidGender reports whether g is one of the accepted gender values.
func ValidGender(g Gender) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderUnspecified:
		return true
	}
	return false
}

// MaxBioLen is the maximum bio length in characters.
const MaxBioLen = 250

// User represents an account in the Linkup application.
// The password hash is never serialized.
type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	NameFirst     string         `gorm:"not null" json:"nameFirst"`
	NameLast      string         `gorm:"not null" json:"nameLast"`
	Email         string         `gorm:"unique;not null" json:"email"`
	EmailVerified bool           `gorm:"default:false" json:"emailVerified"`
	Password      string         `gorm:"not null" json:"-"`
	Gender        Gender         `gorm:"type:varchar(20);not null" json:"gender"`
	Avatar        string         `json:"avatar,omitempty"`
	Age           *int           `json:"age,omitempty"`
	Bio           string         `gorm:"size:250" json:"bio,omitempty"`
	IsPrivate     bool           `gorm:"default:false" json:"isPrivate"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// UserSummary is the public-safe projection of a user used in relationship
// lists and feed author fields.
type UserSummary struct {
	ID        uint   `json:"id"`
	NameFirst string `json:"nameFirst"`
	NameLast  string `json:"nameLast"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar,omitempty"`
}

// Summary returns the public-safe projection of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		NameFirst: u.NameFirst,
		NameLast:  u.NameLast,
		Email:     u.Email,
		Avatar:    u.Avatar,
	}
}
