package auth

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/db/models"
	"github.com/inkpress/inkpress/internal/token"
)

func setupService(t *testing.T, seedRole bool) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.User{}, &models.Role{}, &models.UserRole{})
	require.NoError(t, err, "failed to migrate test database")

	if seedRole {
		require.NoError(t, db.Create(&models.Role{Name: models.DefaultRoleName}).Error)
	}

	return NewService(db, token.NewIssuer("test-secret", 0)), db
}

func validInput() SignupInput {
	return SignupInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	}
}

func TestSignup(t *testing.T) {
	t.Run("missing default role", func(t *testing.T) {
		svc, _ := setupService(t, false)

		err := svc.Signup(validInput())
		require.ErrorIs(t, err, ErrRoleNotConfigured)
	})

	t.Run("invalid payload", func(t *testing.T) {
		svc, _ := setupService(t, true)

		testCases := []struct {
			name   string
			mutate func(*SignupInput)
		}{
			{name: "empty name", mutate: func(in *SignupInput) { in.Name = "" }},
			{name: "bad email", mutate: func(in *SignupInput) { in.Email = "not-an-email" }},
			{name: "short password", mutate: func(in *SignupInput) { in.Password = "short" }},
			{name: "unknown status", mutate: func(in *SignupInput) { in.Status = "FROZEN" }},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				in := validInput()
				tc.mutate(&in)

				err := svc.Signup(in)
				require.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})

	t.Run("successful signup creates user and membership", func(t *testing.T) {
		svc, db := setupService(t, true)

		require.NoError(t, svc.Signup(validInput()))

		var created models.User
		require.NoError(t, db.Preload("Roles").Where("email = ?", "alice@example.com").First(&created).Error)

		assert.Equal(t, models.UserStatusActive, created.Status)
		assert.NotEqual(t, "password123", created.Password, "password must be stored hashed")
		assert.True(t, created.VerifyPassword("password123"))
		require.Len(t, created.Roles, 1)
		assert.Equal(t, models.DefaultRoleName, created.Roles[0].Name)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, _ := setupService(t, true)

		require.NoError(t, svc.Signup(validInput()))
		require.ErrorIs(t, svc.Signup(validInput()), ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	svc, _ := setupService(t, true)
	require.NoError(t, svc.Signup(validInput()))

	t.Run("missing credentials", func(t *testing.T) {
		_, err := svc.Login("", "password123")
		require.ErrorIs(t, err, ErrMissingCredentials)

		_, err = svc.Login("alice@example.com", "")
		require.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login("nobody@example.com", "password123")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("alice@example.com", "wrong-password")
		require.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("successful login issues verifiable token", func(t *testing.T) {
		tok, err := svc.Login("alice@example.com", "password123")
		require.NoError(t, err)
		require.NotEmpty(t, tok)

		email, err := token.NewIssuer("test-secret", 0).Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", email)
	})
}
