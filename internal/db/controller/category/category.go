// Package category provides CRUD operations for content categories.
package category

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryNameEmpty is returned when attempting to create a category with an empty name.
	ErrCategoryNameEmpty = errors.New("category name cannot be empty")
	// ErrCategoryAlreadyExists is returned when a category with the same name already exists.
	ErrCategoryAlreadyExists = errors.New("category already exists")
	// ErrNoFieldsToUpdate is returned when an update payload carries no recognized field.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetByID retrieves a category by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.Category, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var category models.Category
	result := db.First(&category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, result.Error
	}

	return &category, nil
}

// GetAll retrieves all categories. An empty table yields an empty slice.
func GetAll(db *gorm.DB) ([]models.Category, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	categories := make([]models.Category, 0)
	result := db.Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

// Create creates a new category after checking name uniqueness.
// ParentID may be nil for a top-level category; nesting is not cycle-checked.
func Create(db *gorm.DB, name, description string, parentID *uint64) (*models.Category, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrCategoryNameEmpty
	}

	var existing models.Category
	result := db.Where(nameQueryPattern, name).First(&existing)
	if result.Error == nil {
		return nil, ErrCategoryAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	category := &models.Category{
		Name:        name,
		Description: description,
		ParentID:    parentID,
	}

	result = db.Create(category)
	if result.Error != nil {
		return nil, result.Error
	}

	return category, nil
}

// Update applies the given fields to an existing category by ID.
// Absent fields are left untouched; an empty field map is rejected.
func Update(db *gorm.DB, id uint64, fields map[string]interface{}) (*models.Category, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	var category models.Category
	result := db.First(&category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, result.Error
	}

	result = db.Model(&category).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}

	return &category, nil
}

// Delete deletes a category by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
