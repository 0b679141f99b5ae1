// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered identity in the system.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the display name chosen at registration.
	Name string `gorm:"size:100;not null"`

	// Email is the login key. It is unique across all users and matched
	// case-sensitively.
	Email string `gorm:"uniqueIndex;size:150;not null"`

	// Password is the bcrypt hash of the user's secret. Plaintext is never
	// stored.
	Password string `gorm:"size:255;not null" json:"-"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
