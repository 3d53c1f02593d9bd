package user

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/auth"
	"github.com/inkpress/inkpress/internal/config"
	"github.com/inkpress/inkpress/internal/db/models"
	"github.com/inkpress/inkpress/internal/token"
	"github.com/inkpress/inkpress/internal/upload"
	authmw "github.com/inkpress/inkpress/internal/web/middleware/auth"
)

func setupApp(t *testing.T, seedRole bool) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.User{}, &models.Role{}, &models.UserRole{})
	require.NoError(t, err, "failed to migrate test database")

	if seedRole {
		require.NoError(t, db.Create(&models.Role{Name: models.DefaultRoleName}).Error)
	}

	cfg := &config.Config{}
	tokens := token.NewIssuer("test-secret", 0)
	uploads := upload.NewStore(t.TempDir(), "/uploads")

	app := fiber.New()
	api := app.Group("/api")

	var h Service
	err = h.Init(api, cfg, db, auth.NewService(db, tokens), uploads, authmw.New(db, tokens))
	require.NoError(t, err)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, body, bearer string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, payload
}

const signupBody = `{"name":"Alice","email":"alice@example.com","password":"password123"}`

func TestSignupEndpoint(t *testing.T) {
	t.Run("missing default role", func(t *testing.T) {
		app, _ := setupApp(t, false)

		status, _ := doJSON(t, app, fiber.MethodPost, "/api/signup", signupBody, "")
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("invalid payload", func(t *testing.T) {
		app, _ := setupApp(t, true)

		status, _ := doJSON(t, app, fiber.MethodPost, "/api/signup",
			`{"name":"Alice","email":"alice@example.com","password":"short"}`, "")
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("successful signup", func(t *testing.T) {
		app, db := setupApp(t, true)

		status, _ := doJSON(t, app, fiber.MethodPost, "/api/signup", signupBody, "")
		assert.Equal(t, fiber.StatusOK, status)

		var count int64
		require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		app, _ := setupApp(t, true)

		status, _ := doJSON(t, app, fiber.MethodPost, "/api/signup", signupBody, "")
		require.Equal(t, fiber.StatusOK, status)

		status, _ = doJSON(t, app, fiber.MethodPost, "/api/signup", signupBody, "")
		assert.Equal(t, fiber.StatusConflict, status)
	})
}

func TestLoginEndpoint(t *testing.T) {
	app, _ := setupApp(t, true)

	status, _ := doJSON(t, app, fiber.MethodPost, "/api/signup", signupBody, "")
	require.Equal(t, fiber.StatusOK, status)

	t.Run("missing credentials", func(t *testing.T) {
		status, _ := doJSON(t, app, fiber.MethodPost, "/api/login",
			`{"email":"alice@example.com"}`, "")
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("unknown user", func(t *testing.T) {
		status, _ := doJSON(t, app, fiber.MethodPost, "/api/login",
			`{"email":"nobody@example.com","password":"password123"}`, "")
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("wrong password conflicts", func(t *testing.T) {
		status, _ := doJSON(t, app, fiber.MethodPost, "/api/login",
			`{"email":"alice@example.com","password":"wrong-password"}`, "")
		assert.Equal(t, fiber.StatusConflict, status)
	})

	t.Run("successful login returns token", func(t *testing.T) {
		status, payload := doJSON(t, app, fiber.MethodPost, "/api/login",
			`{"email":"alice@example.com","password":"password123"}`, "")
		require.Equal(t, fiber.StatusOK, status)

		var body struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(payload, &body))
		assert.NotEmpty(t, body.Token)
	})
}

func TestDetailsEndpoint(t *testing.T) {
	app, _ := setupApp(t, true)

	status, _ := doJSON(t, app, fiber.MethodPost, "/api/signup", signupBody, "")
	require.Equal(t, fiber.StatusOK, status)

	t.Run("requires authentication", func(t *testing.T) {
		status, _ := doJSON(t, app, fiber.MethodGet, "/api/details", "", "")
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("returns user without password", func(t *testing.T) {
		status, payload := doJSON(t, app, fiber.MethodPost, "/api/login",
			`{"email":"alice@example.com","password":"password123"}`, "")
		require.Equal(t, fiber.StatusOK, status)

		var login struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(payload, &login))

		status, payload = doJSON(t, app, fiber.MethodGet, "/api/details", "", login.Token)
		require.Equal(t, fiber.StatusOK, status)

		assert.Contains(t, string(payload), "alice@example.com")
		assert.NotContains(t, string(payload), "password")
	})
}

func TestUpdateAndDeleteEndpoints(t *testing.T) {
	app, db := setupApp(t, true)

	status, _ := doJSON(t, app, fiber.MethodPost, "/api/signup", signupBody, "")
	require.Equal(t, fiber.StatusOK, status)

	_, payload := doJSON(t, app, fiber.MethodPost, "/api/login",
		`{"email":"alice@example.com","password":"password123"}`, "")

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(payload, &login))

	t.Run("empty update is rejected", func(t *testing.T) {
		status, _ := doJSON(t, app, fiber.MethodPatch, "/api/update-details/1", `{}`, login.Token)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("updates name only", func(t *testing.T) {
		status, _ := doJSON(t, app, fiber.MethodPatch, "/api/update-details/1",
			`{"name":"Alicia"}`, login.Token)
		assert.Equal(t, fiber.StatusOK, status)

		var updated models.User
		require.NoError(t, db.First(&updated, 1).Error)
		assert.Equal(t, "Alicia", updated.Name)
		assert.Equal(t, "alice@example.com", updated.Email)
	})

	t.Run("unknown user id", func(t *testing.T) {
		status, _ := doJSON(t, app, fiber.MethodPatch, "/api/update-details/9999",
			`{"name":"x"}`, login.Token)
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("delete removes the account", func(t *testing.T) {
		status, _ := doJSON(t, app, fiber.MethodDelete, "/api/delete/1", "", login.Token)
		assert.Equal(t, fiber.StatusOK, status)

		var count int64
		require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
		assert.EqualValues(t, 0, count)
	})
}
