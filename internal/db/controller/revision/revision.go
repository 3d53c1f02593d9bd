// Package revision provides read access to content revision snapshots.
// Revisions are written by the content controller only; they are immutable
// and never deleted independently of their parent content.
package revision

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/db/models"
)

var (
	// ErrRevisionNotFound is returned when a revision is not found.
	ErrRevisionNotFound = errors.New("revision not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetByID retrieves a single revision by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.Revision, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var revision models.Revision
	result := db.First(&revision, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRevisionNotFound
		}
		return nil, result.Error
	}

	return &revision, nil
}

// GetByContent retrieves all revisions of a content item, oldest first.
// A content item that was never updated yields an empty slice.
func GetByContent(db *gorm.DB, contentID uint64) ([]models.Revision, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	revisions := make([]models.Revision, 0)
	result := db.Where("content_id = ?", contentID).Order("id ASC").Find(&revisions)
	if result.Error != nil {
		return nil, result.Error
	}

	return revisions, nil
}
