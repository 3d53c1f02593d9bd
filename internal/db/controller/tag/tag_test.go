package tag

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Tag{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestCreate(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		tagName       string
		slug          string
		expectedError error
	}{
		{name: "nil database", dbParam: nil, tagName: "go", slug: "go", expectedError: ErrDBNil},
		{name: "empty name", dbParam: db, tagName: "", slug: "go", expectedError: ErrTagNameEmpty},
		{name: "empty slug", dbParam: db, tagName: "go", slug: "", expectedError: ErrTagNameEmpty},
		{name: "successful create", dbParam: db, tagName: "go", slug: "go"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tag, err := Create(tc.dbParam, tc.tagName, tc.slug)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, tag)
			} else {
				require.NoError(t, err)
				require.NotNil(t, tag)
				assert.NotZero(t, tag.ID)
			}
		})
	}

	t.Run("duplicate name", func(t *testing.T) {
		tag, err := Create(db, "go", "golang")
		require.ErrorIs(t, err, ErrTagAlreadyExists)
		assert.Nil(t, tag)
	})
}

func TestUpdate(t *testing.T) {
	db := setupTestDB(t)

	t.Run("tag not found", func(t *testing.T) {
		tag, err := Update(db, 9999, map[string]interface{}{"name": "x"})
		require.ErrorIs(t, err, ErrTagNotFound)
		assert.Nil(t, tag)
	})

	t.Run("empty field map", func(t *testing.T) {
		tag, err := Update(db, 1, map[string]interface{}{})
		require.ErrorIs(t, err, ErrNoFieldsToUpdate)
		assert.Nil(t, tag)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		created, err := Create(db, "kubernetes", "k8s")
		require.NoError(t, err)

		_, err = Update(db, created.ID, map[string]interface{}{"slug": "kubernetes"})
		require.NoError(t, err)

		updated, err := GetByID(db, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "kubernetes", updated.Name)
		assert.Equal(t, "kubernetes", updated.Slug)
	})
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	t.Run("tag not found", func(t *testing.T) {
		require.ErrorIs(t, Delete(db, 9999), ErrTagNotFound)
	})

	t.Run("successful delete", func(t *testing.T) {
		created, err := Create(db, "temp", "temp")
		require.NoError(t, err)

		require.NoError(t, Delete(db, created.ID))

		_, err = GetByID(db, created.ID)
		require.ErrorIs(t, err, ErrTagNotFound)
	})
}

func TestGetAll(t *testing.T) {
	db := setupTestDB(t)

	t.Run("empty table yields empty slice", func(t *testing.T) {
		tags, err := GetAll(db)
		require.NoError(t, err)
		assert.Empty(t, tags)
		assert.NotNil(t, tags)
	})

	t.Run("returns all tags", func(t *testing.T) {
		_, err := Create(db, "a", "a")
		require.NoError(t, err)
		_, err = Create(db, "b", "b")
		require.NoError(t, err)

		tags, err := GetAll(db)
		require.NoError(t, err)
		assert.Len(t, tags, 2)
	})
}
