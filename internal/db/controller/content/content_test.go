package content

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	revisioncontroller "github.com/inkpress/inkpress/internal/db/controller/revision"
	"github.com/inkpress/inkpress/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database with an author and a
// category seeded, since every content row references both.
func setupTestDB(t *testing.T) (*gorm.DB, *models.User, *models.Category) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Content{},
		&models.Revision{},
	)
	require.NoError(t, err, "failed to migrate test database")

	author := &models.User{
		Name:     "Author",
		Email:    "author@example.com",
		Password: models.HashPassword("password123"),
		Status:   models.UserStatusActive,
	}
	require.NoError(t, db.Create(author).Error)

	category := &models.Category{Name: "News"}
	require.NoError(t, db.Create(category).Error)

	return db, author, category
}

func TestNormalizeSlug(t *testing.T) {
	testCases := []struct {
		name     string
		slug     string
		expected string
	}{
		{name: "no spaces", slug: "hello-world", expected: "hello-world"},
		{name: "single space", slug: "hello world", expected: "hello-world"},
		{name: "multiple spaces", slug: "a b c", expected: "a-b-c"},
		{name: "empty", slug: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeSlug(tc.slug))
		})
	}
}

func TestCreate(t *testing.T) {
	db, author, category := setupTestDB(t)

	t.Run("nil database", func(t *testing.T) {
		item, err := Create(nil, "t", "s", "b", "", category.ID, models.ContentStatusDraft, author.ID)
		require.ErrorIs(t, err, ErrDBNil)
		assert.Nil(t, item)
	})

	t.Run("successful create normalizes slug", func(t *testing.T) {
		item, err := Create(
			db, "First Post", "first post", "body text", "/uploads/a.png",
			category.ID, models.ContentStatusDraft, author.ID,
		)
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "first-post", item.Slug)
		assert.Equal(t, author.ID, item.AuthorID)
	})

	t.Run("duplicate title", func(t *testing.T) {
		item, err := Create(
			db, "First Post", "other-slug", "other body", "",
			category.ID, models.ContentStatusDraft, author.ID,
		)
		require.ErrorIs(t, err, ErrTitleAlreadyExists)
		assert.Nil(t, item)
	})
}

func TestUpdate(t *testing.T) {
	db, author, category := setupTestDB(t)

	other := &models.User{
		Name:     "Other",
		Email:    "other@example.com",
		Password: models.HashPassword("password123"),
		Status:   models.UserStatusActive,
	}
	require.NoError(t, db.Create(other).Error)

	item, err := Create(
		db, "Editable", "editable", "original body", "",
		category.ID, models.ContentStatusDraft, author.ID,
	)
	require.NoError(t, err)

	t.Run("empty field map", func(t *testing.T) {
		updated, err := Update(db, item.ID, author.ID, map[string]interface{}{})
		require.ErrorIs(t, err, ErrNoFieldsToUpdate)
		assert.Nil(t, updated)
	})

	t.Run("content not found", func(t *testing.T) {
		updated, err := Update(db, 9999, author.ID, map[string]interface{}{"body": "x"})
		require.ErrorIs(t, err, ErrContentNotFound)
		assert.Nil(t, updated)
	})

	t.Run("non author is rejected without side effects", func(t *testing.T) {
		updated, err := Update(db, item.ID, other.ID, map[string]interface{}{"body": "hijacked"})
		require.ErrorIs(t, err, ErrNotAuthor)
		assert.Nil(t, updated)

		current, err := GetByID(db, item.ID)
		require.NoError(t, err)
		assert.Equal(t, "original body", current.Body)

		revisions, err := revisioncontroller.GetByContent(db, item.ID)
		require.NoError(t, err)
		assert.Empty(t, revisions)
	})

	t.Run("update snapshots pre-update state", func(t *testing.T) {
		_, err := Update(db, item.ID, author.ID, map[string]interface{}{
			"title": "Edited",
			"body":  "new body",
		})
		require.NoError(t, err)

		current, err := GetByID(db, item.ID)
		require.NoError(t, err)
		assert.Equal(t, "Edited", current.Title)
		assert.Equal(t, "new body", current.Body)

		revisions, err := revisioncontroller.GetByContent(db, item.ID)
		require.NoError(t, err)
		require.Len(t, revisions, 1)
		assert.Equal(t, "Editable", revisions[0].Title)
		assert.Equal(t, "original body", revisions[0].Body)
		assert.Equal(t, author.ID, revisions[0].AuthorID)
	})

	t.Run("revisions accumulate oldest first", func(t *testing.T) {
		_, err := Update(db, item.ID, author.ID, map[string]interface{}{"body": "third body"})
		require.NoError(t, err)

		revisions, err := revisioncontroller.GetByContent(db, item.ID)
		require.NoError(t, err)
		require.Len(t, revisions, 2)
		assert.Equal(t, "original body", revisions[0].Body)
		assert.Equal(t, "new body", revisions[1].Body)
	})
}

func TestDelete(t *testing.T) {
	db, author, category := setupTestDB(t)

	other := &models.User{
		Name:     "Other",
		Email:    "other2@example.com",
		Password: models.HashPassword("password123"),
		Status:   models.UserStatusActive,
	}
	require.NoError(t, db.Create(other).Error)

	item, err := Create(
		db, "Deletable", "deletable", "body", "",
		category.ID, models.ContentStatusDraft, author.ID,
	)
	require.NoError(t, err)

	t.Run("nil database", func(t *testing.T) {
		require.ErrorIs(t, Delete(nil, item.ID, author.ID), ErrDBNil)
	})

	t.Run("content not found", func(t *testing.T) {
		require.ErrorIs(t, Delete(db, 9999, author.ID), ErrContentNotFound)
	})

	t.Run("non author is rejected", func(t *testing.T) {
		require.ErrorIs(t, Delete(db, item.ID, other.ID), ErrNotAuthor)

		_, err := GetByID(db, item.ID)
		require.NoError(t, err)
	})

	t.Run("author can delete", func(t *testing.T) {
		require.NoError(t, Delete(db, item.ID, author.ID))

		_, err := GetByID(db, item.ID)
		require.ErrorIs(t, err, ErrContentNotFound)
	})
}

func TestGetBySlug(t *testing.T) {
	db, author, category := setupTestDB(t)

	_, err := Create(
		db, "Sluggable", "sluggable post", "body", "",
		category.ID, models.ContentStatusPublished, author.ID,
	)
	require.NoError(t, err)

	t.Run("found by normalized slug", func(t *testing.T) {
		item, err := GetBySlug(db, "sluggable-post")
		require.NoError(t, err)
		assert.Equal(t, "Sluggable", item.Title)
	})

	t.Run("not found", func(t *testing.T) {
		item, err := GetBySlug(db, "missing")
		require.ErrorIs(t, err, ErrContentNotFound)
		assert.Nil(t, item)
	})
}
