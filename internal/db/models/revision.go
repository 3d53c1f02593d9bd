package models

import "time"

// Revision is an immutable snapshot of a content item taken immediately
// before an update. One row exists per update of its parent content; rows are
// never modified or deleted independently.
type Revision struct {
	// ID is the unique identifier for the revision.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// ContentID references the content this revision belongs to.
	ContentID uint64 `gorm:"column:content_id;not null;index" json:"content_id"`
	// Title is the pre-update title of the content.
	Title string `gorm:"size:255;not null" json:"title"`
	// Body is the pre-update body of the content.
	Body string `gorm:"type:text;not null" json:"body"`
	// AuthorID is the user who performed the update that produced this snapshot.
	AuthorID uint64 `gorm:"column:author_id;not null" json:"author_id"`
	// CreatedAt is the timestamp when the snapshot was taken (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the database table name for the Revision model.
func (Revision) TableName() string {
	return "revisions"
}
