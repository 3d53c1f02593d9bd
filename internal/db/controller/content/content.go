// Package content provides CRUD operations for content items, enforcing the
// author-only mutation gate and the revision snapshot taken on every update.
package content

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/db/models"
)

var (
	// ErrContentNotFound is returned when a content item is not found.
	ErrContentNotFound = errors.New("content not found")
	// ErrTitleAlreadyExists is returned when a content item with the same title already exists.
	ErrTitleAlreadyExists = errors.New("content with this title already exists")
	// ErrNotAuthor is returned when a mutation is attempted by someone other than the author.
	ErrNotAuthor = errors.New("not the author of this content")
	// ErrNoFieldsToUpdate is returned when an update payload carries no recognized field.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// NormalizeSlug replaces spaces with hyphens in a slug.
func NormalizeSlug(slug string) string {
	return strings.ReplaceAll(slug, " ", "-")
}

// GetByID retrieves a content item by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.Content, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var content models.Content
	result := db.First(&content, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, result.Error
	}

	return &content, nil
}

// GetBySlug retrieves a content item by its slug.
func GetBySlug(db *gorm.DB, slug string) (*models.Content, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var content models.Content
	result := db.Where("slug = ?", slug).First(&content)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, result.Error
	}

	return &content, nil
}

// GetAll retrieves all content items. An empty table yields an empty slice.
func GetAll(db *gorm.DB) ([]models.Content, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	items := make([]models.Content, 0)
	result := db.Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// Create creates a new content item for the given author after checking title
// uniqueness. The slug is normalized (spaces become hyphens) before storage.
func Create(
	db *gorm.DB,
	title, slug, body, image string,
	categoryID uint64,
	status models.ContentStatus,
	authorID uint64,
) (*models.Content, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.Content
	result := db.Where("title = ?", title).First(&existing)
	if result.Error == nil {
		return nil, ErrTitleAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	content := &models.Content{
		Title:      title,
		Slug:       NormalizeSlug(slug),
		Body:       body,
		Image:      image,
		CategoryID: categoryID,
		Status:     status,
		AuthorID:   authorID,
	}

	result = db.Create(content)
	if result.Error != nil {
		return nil, result.Error
	}

	return content, nil
}

// Update applies the given fields to a content item on behalf of authorID.
// The author gate is checked first; on a mismatch nothing is written. The
// pre-update title and body are snapshotted into a revision row inside the
// same transaction as the update, so an update is never observable without
// its revision.
func Update(db *gorm.DB, id, authorID uint64, fields map[string]interface{}) (*models.Content, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	var content models.Content
	result := db.First(&content, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, result.Error
	}

	if content.AuthorID != authorID {
		return nil, ErrNotAuthor
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		revision := &models.Revision{
			ContentID: content.ID,
			Title:     content.Title,
			Body:      content.Body,
			AuthorID:  authorID,
		}
		if err := tx.Create(revision).Error; err != nil {
			return err
		}

		return tx.Model(&content).Updates(fields).Error
	})
	if err != nil {
		return nil, err
	}

	return &content, nil
}

// Delete deletes a content item on behalf of authorID, enforcing the same
// author gate as Update.
func Delete(db *gorm.DB, id, authorID uint64) error {
	if db == nil {
		return ErrDBNil
	}

	var content models.Content
	result := db.First(&content, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return result.Error
	}

	if content.AuthorID != authorID {
		return ErrNotAuthor
	}

	return db.Delete(&content).Error
}
