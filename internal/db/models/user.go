package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// UserStatus represents the activation state of a user account.
type UserStatus string

const (
	// UserStatusActive indicates the account may log in and author content.
	UserStatusActive UserStatus = "ACTIVE"
	// UserStatusSuspended indicates the account is blocked from logging in.
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// User represents a registered account in the system.
// Users authenticate with email and password and receive role memberships
// through the user_roles join table.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Name is the display name of the user.
	Name string `gorm:"size:100;not null" json:"name"`
	// Email is the unique login identifier; uniqueness is checked before create.
	Email string `gorm:"unique;size:255;not null" json:"email"`
	// Password is the Argon2id hashed password. Never serialized.
	Password string `gorm:"size:255;not null" json:"-"`
	// Avatar is an optional reference to an uploaded profile image.
	Avatar string `gorm:"size:255" json:"avatar,omitempty"`
	// Status indicates whether the account is ACTIVE or SUSPENDED.
	Status UserStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	// Roles are the role memberships of this user (many-to-many via user_roles).
	Roles []Role `gorm:"many2many:user_roles;" json:"roles,omitempty"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// It uses the default Argon2id parameters for secure password hashing.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the user's stored hashed password.
// Returns true on match, false otherwise; mismatch is never reported as an error.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
