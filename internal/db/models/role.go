package models

import "time"

// DefaultRoleName is the role every new signup is enrolled into.
// It must exist before signups are accepted; the daemon seeds it on first start.
const DefaultRoleName = "BASIC"

// Role represents a named role users can be members of (e.g. "BASIC").
type Role struct {
	// ID is the unique identifier for the role.
	ID uint `gorm:"primaryKey" json:"id"`
	// Name is the unique name of the role.
	Name string `gorm:"unique;size:100;not null" json:"name"`
	// CreatedAt is the timestamp when the role was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the role was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Role model.
func (Role) TableName() string {
	return "roles"
}
