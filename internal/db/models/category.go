package models

import "time"

// Category represents a content category. Categories may nest through
// ParentID (self-referential, no cycle validation).
type Category struct {
	// ID is the unique identifier for the category.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Name is the unique name of the category.
	Name string `gorm:"unique;size:100;not null" json:"name"`
	// Description provides a human-readable explanation of the category.
	Description string `gorm:"size:255" json:"description"`
	// ParentID optionally references the parent category for nesting.
	ParentID *uint64 `gorm:"column:parent_id" json:"parent_id,omitempty"`
	// CreatedAt is the timestamp when the category was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the category was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Category model.
func (Category) TableName() string {
	return "categories"
}
