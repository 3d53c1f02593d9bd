package models

import "time"

// ContentStatus represents the publishing state of a content item.
type ContentStatus string

const (
	// ContentStatusDraft indicates the content is not yet published.
	ContentStatusDraft ContentStatus = "DRAFT"
	// ContentStatusPublished indicates the content is publicly visible.
	ContentStatusPublished ContentStatus = "PUBLISHED"
	// ContentStatusArchived indicates the content has been retired.
	ContentStatusArchived ContentStatus = "ARCHIVED"
)

// Content represents an article authored by a user.
// Only the author may mutate it, and every successful update first snapshots
// the pre-update title and body into a Revision row.
type Content struct {
	// ID is the unique identifier for the content item.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Title is globally unique; uniqueness is checked before create.
	Title string `gorm:"unique;size:255;not null" json:"title"`
	// Slug is the URL fragment for the item, with spaces normalized to hyphens.
	Slug string `gorm:"size:255;not null" json:"slug"`
	// Body is the article text.
	Body string `gorm:"type:text;not null" json:"body"`
	// Image is the public path of the uploaded cover file; required at create.
	Image string `gorm:"size:255;not null" json:"image"`
	// CategoryID references the category the item is filed under.
	CategoryID uint64 `gorm:"column:category_id;not null" json:"category_id"`
	// Category is the associated category (loaded via foreign key).
	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
	// Status is the publishing state (DRAFT, PUBLISHED or ARCHIVED).
	Status ContentStatus `gorm:"type:varchar(20);not null" json:"status"`
	// AuthorID is the user who created the item; stamped from the
	// authenticated identity, never client-supplied.
	AuthorID uint64 `gorm:"column:author_id;not null" json:"author_id"`
	// Author is the associated user (loaded via foreign key).
	Author User `gorm:"foreignKey:AuthorID" json:"-"`
	// CreatedAt is the timestamp when the content was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the content was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Content model.
func (Content) TableName() string {
	return "content"
}
