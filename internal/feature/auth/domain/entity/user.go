// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account in the system.
// It contains the identity fields exposed to clients and the
// credential used for authentication.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Fname is the user's first name.
	Fname string `gorm:"size:255;not null"`

	// Lname is the user's last name.
	Lname string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This must never store plaintext and is never serialized in responses.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
