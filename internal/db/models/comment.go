package models

import "time"

// CommentStatus represents the moderation state of a comment.
// Comments start PENDING; moderation moves them between APPROVED and
// REJECTED but never back to PENDING.
type CommentStatus string

const (
	// CommentStatusPending is the initial state of every new comment.
	CommentStatusPending CommentStatus = "PENDING"
	// CommentStatusApproved marks the comment visible to general readers.
	CommentStatusApproved CommentStatus = "APPROVED"
	// CommentStatusRejected hides the comment outside moderation endpoints.
	CommentStatusRejected CommentStatus = "REJECTED"
)

// Comment represents a reader comment on a content item.
type Comment struct {
	// ID is the unique identifier for the comment.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// ContentID references the content the comment was left on.
	ContentID uint64 `gorm:"column:content_id;not null;index" json:"content_id"`
	// UserID references the commenter.
	UserID uint64 `gorm:"column:user_id;not null" json:"user_id"`
	// Comment is the comment text.
	Comment string `gorm:"type:text;not null" json:"comment"`
	// Status is the moderation state (PENDING, APPROVED or REJECTED).
	Status CommentStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	// CreatedAt is the timestamp when the comment was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the comment was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Comment model.
func (Comment) TableName() string {
	return "comments"
}
