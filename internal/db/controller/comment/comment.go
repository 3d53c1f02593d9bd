// Package comment provides CRUD and moderation operations for comments.
//
// Moderation is a one-way state machine: PENDING moves to APPROVED or
// REJECTED exactly once, and a transition into the comment's current state is
// refused rather than treated as an idempotent success.
package comment

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/db/models"
)

var (
	// ErrCommentNotFound is returned when a comment is not found.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrCommentEmpty is returned when attempting to create a comment with no text.
	ErrCommentEmpty = errors.New("comment text cannot be empty")
	// ErrAlreadyApproved is returned when approving a comment that is already approved.
	ErrAlreadyApproved = errors.New("comment is already approved")
	// ErrAlreadyRejected is returned when rejecting a comment that is already rejected.
	ErrAlreadyRejected = errors.New("comment is already rejected")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create creates a new comment on a content item in the PENDING state.
func Create(db *gorm.DB, contentID, userID uint64, text string) (*models.Comment, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if text == "" {
		return nil, ErrCommentEmpty
	}

	comment := &models.Comment{
		ContentID: contentID,
		UserID:    userID,
		Comment:   text,
		Status:    models.CommentStatusPending,
	}

	result := db.Create(comment)
	if result.Error != nil {
		return nil, result.Error
	}

	return comment, nil
}

// GetApproved retrieves the APPROVED comments of a content item. PENDING and
// REJECTED comments are invisible outside the moderation endpoints.
func GetApproved(db *gorm.DB, contentID uint64) ([]models.Comment, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	comments := make([]models.Comment, 0)
	result := db.Where("content_id = ? AND status = ?", contentID, models.CommentStatusApproved).
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}

	return comments, nil
}

// Approve transitions a comment to APPROVED. Approving an already-approved
// comment fails and leaves the row unchanged.
func Approve(db *gorm.DB, id uint64) (*models.Comment, error) {
	return setStatus(db, id, models.CommentStatusApproved, ErrAlreadyApproved)
}

// Reject transitions a comment to REJECTED. Rejecting an already-rejected
// comment fails and leaves the row unchanged.
func Reject(db *gorm.DB, id uint64) (*models.Comment, error) {
	return setStatus(db, id, models.CommentStatusRejected, ErrAlreadyRejected)
}

func setStatus(
	db *gorm.DB,
	id uint64,
	target models.CommentStatus,
	alreadyErr error,
) (*models.Comment, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var comment models.Comment
	result := db.First(&comment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, result.Error
	}

	if comment.Status == target {
		return nil, alreadyErr
	}

	result = db.Model(&comment).Update("status", target)
	if result.Error != nil {
		return nil, result.Error
	}

	return &comment, nil
}

// Delete deletes a comment by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}

	return nil
}
