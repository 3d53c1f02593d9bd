// Package tag provides CRUD operations for content tags.
package tag

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/db/models"
)

var (
	// ErrTagNotFound is returned when a tag is not found.
	ErrTagNotFound = errors.New("tag not found")
	// ErrTagNameEmpty is returned when attempting to create a tag with an empty name or slug.
	ErrTagNameEmpty = errors.New("tag name and slug cannot be empty")
	// ErrTagAlreadyExists is returned when a tag with the same name already exists.
	ErrTagAlreadyExists = errors.New("tag already exists")
	// ErrNoFieldsToUpdate is returned when an update payload carries no recognized field.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetByID retrieves a tag by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.Tag, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var tag models.Tag
	result := db.First(&tag, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, result.Error
	}

	return &tag, nil
}

// GetAll retrieves all tags. An empty table yields an empty slice.
func GetAll(db *gorm.DB) ([]models.Tag, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	tags := make([]models.Tag, 0)
	result := db.Find(&tags)
	if result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

// Create creates a new tag after checking name uniqueness.
func Create(db *gorm.DB, name, slug string) (*models.Tag, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" || slug == "" {
		return nil, ErrTagNameEmpty
	}

	var existing models.Tag
	result := db.Where("name = ?", name).First(&existing)
	if result.Error == nil {
		return nil, ErrTagAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	tag := &models.Tag{
		Name: name,
		Slug: slug,
	}

	result = db.Create(tag)
	if result.Error != nil {
		return nil, result.Error
	}

	return tag, nil
}

// Update applies the given fields to an existing tag by ID.
func Update(db *gorm.DB, id uint64, fields map[string]interface{}) (*models.Tag, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	var tag models.Tag
	result := db.First(&tag, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, result.Error
	}

	result = db.Model(&tag).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}

	return &tag, nil
}

// Delete deletes a tag by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Tag{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTagNotFound
	}

	return nil
}
