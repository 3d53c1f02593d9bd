// Package user provides lookups and mutations for user accounts.
package user

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/db/models"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrNoFieldsToUpdate is returned when an update payload carries no recognized field.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetByEmail retrieves a user by email, the login identifier.
func GetByEmail(db *gorm.DB, email string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var user models.User
	result := db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	return &user, nil
}

// GetByID retrieves a user by ID.
func GetByID(db *gorm.DB, id uint64) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var user models.User
	result := db.First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	return &user, nil
}

// GetAllWithRoles retrieves all users with their role memberships preloaded.
func GetAllWithRoles(db *gorm.DB) ([]models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	users := make([]models.User, 0)
	result := db.Preload("Roles").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

// Update applies the given fields to an existing user by ID.
// Absent fields are left untouched; an empty field map is rejected.
func Update(db *gorm.DB, id uint64, fields map[string]interface{}) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	var user models.User
	result := db.First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	result = db.Model(&user).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}

// Delete deletes a user by ID. Role memberships cascade through the join table.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
