package models

import "time"

// Tag represents a content tag with a unique name and a URL slug.
type Tag struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"unique;size:100;not null" json:"name"`
	Slug      string    `gorm:"size:100;not null" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Tag model.
func (Tag) TableName() string {
	return "tags"
}
