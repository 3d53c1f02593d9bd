// Package user provides the signup, login and account management endpoints.
package user

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/auth"
	"github.com/inkpress/inkpress/internal/config"
	rolecontroller "github.com/inkpress/inkpress/internal/db/controller/role"
	usercontroller "github.com/inkpress/inkpress/internal/db/controller/user"
	"github.com/inkpress/inkpress/internal/db/models"
	"github.com/inkpress/inkpress/internal/upload"
	"github.com/inkpress/inkpress/internal/web/handler"
	authmw "github.com/inkpress/inkpress/internal/web/middleware/auth"
)

// Service is the user handler service.
type Service struct {
	handler.Service
	cfg     *config.Config
	db      *gorm.DB
	auth    *auth.Service
	uploads *upload.Store
}

// Handler is the user handler.
var Handler = Service{}

// Init initializes the user handler and registers its routes.
func (s *Service) Init(
	router fiber.Router,
	cfg *config.Config,
	db *gorm.DB,
	authService *auth.Service,
	uploads *upload.Store,
	guard fiber.Handler,
) error {
	if router == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.auth = authService
	s.uploads = uploads

	router.Post("/signup", s.Signup)
	router.Post("/login", s.Login)
	router.Get("/details", guard, s.Details)
	router.Patch("/update-details/:userId", guard, s.UpdateDetails)
	router.Delete("/delete/:userId", guard, s.Delete)
	router.Get("/roles", s.Roles)
	router.Get("/all-users", s.AllUsers)

	return nil
}

// Signup handles new user registration.
func (s *Service) Signup(c *fiber.Ctx) error {
	var in auth.SignupInput
	if err := c.BodyParser(&in); err != nil {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := s.auth.Signup(in); err != nil {
		switch {
		case errors.Is(err, auth.ErrRoleNotConfigured):
			return handler.JSONMsg(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, auth.ErrInvalidInput):
			return handler.JSONMsg(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, auth.ErrEmailTaken):
			return handler.JSONMsg(c, fiber.StatusConflict, err.Error())
		default:
			log.Error().Err(err).Msg("signup failed")

			return handler.JSONInternal(c, err)
		}
	}

	return handler.JSONMsg(c, fiber.StatusOK, "User created successfully")
}

// Login handles credential verification and token issuance.
func (s *Service) Login(c *fiber.Ctx) error {
	var in struct {
		Email    string `form:"email"    json:"email"`
		Password string `form:"password" json:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	tok, err := s.auth.Login(in.Email, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingCredentials):
			return handler.JSONMsg(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, auth.ErrUserNotFound):
			return handler.JSONMsg(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, auth.ErrInvalidPassword):
			return handler.JSONMsg(c, fiber.StatusConflict, err.Error())
		default:
			log.Error().Err(err).Msg("login failed")

			return handler.JSONInternal(c, err)
		}
	}

	return c.JSON(fiber.Map{"token": tok})
}

// Details returns the user resolved from the bearer token.
func (s *Service) Details(c *fiber.Ctx) error {
	principal, ok := authmw.CurrentPrincipal(c)
	if !ok {
		return handler.JSONMsg(c, fiber.StatusUnauthorized, "not authenticated")
	}

	usr, err := usercontroller.GetByID(s.db, principal.UserID)
	if err != nil {
		if errors.Is(err, usercontroller.ErrUserNotFound) {
			return handler.JSONMsg(c, fiber.StatusNotFound, err.Error())
		}

		return handler.JSONInternal(c, err)
	}

	return c.JSON(fiber.Map{"user": usr})
}

// UpdateDetails applies a partial update to a user account. Absent fields are
// left untouched; an uploaded "avatar" file replaces the avatar reference.
func (s *Service) UpdateDetails(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c, "userId")
	if !ok {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "no user id found in params")
	}

	var in struct {
		Name     string `form:"name"     json:"name"`
		Email    string `form:"email"    json:"email"`
		Password string `form:"password" json:"password"`
		Status   string `form:"status"   json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	fields := map[string]interface{}{}
	if in.Name != "" {
		fields["name"] = in.Name
	}
	if in.Email != "" {
		fields["email"] = in.Email
	}
	if in.Password != "" {
		fields["password"] = models.HashPassword(in.Password)
	}
	if in.Status != "" {
		fields["status"] = in.Status
	}

	if avatar, err := s.uploads.Save(c, "avatar"); err == nil {
		fields["avatar"] = avatar.PublicPath
	} else if !errors.Is(err, upload.ErrNoFile) {
		return handler.JSONMsg(c, fiber.StatusBadRequest, err.Error())
	}

	if _, err := usercontroller.Update(s.db, id, fields); err != nil {
		switch {
		case errors.Is(err, usercontroller.ErrNoFieldsToUpdate):
			return handler.JSONMsg(c, fiber.StatusBadRequest, "no new changes found to update")
		case errors.Is(err, usercontroller.ErrUserNotFound):
			return handler.JSONMsg(c, fiber.StatusNotFound, "no user with such id found")
		default:
			log.Error().Err(err).Uint64("user_id", id).Msg("failed to update user")

			return handler.JSONInternal(c, err)
		}
	}

	return handler.JSONMsg(c, fiber.StatusOK, "User details updated successfully")
}

// Delete removes a user account.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c, "userId")
	if !ok {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "no user id found in params")
	}

	if err := usercontroller.Delete(s.db, id); err != nil {
		if errors.Is(err, usercontroller.ErrUserNotFound) {
			return handler.JSONMsg(c, fiber.StatusNotFound, "no user with such id found")
		}

		log.Error().Err(err).Uint64("user_id", id).Msg("failed to delete user")

		return handler.JSONInternal(c, err)
	}

	return handler.JSONMsg(c, fiber.StatusOK, "User deleted successfully")
}

// Roles lists all configured roles.
func (s *Service) Roles(c *fiber.Ctx) error {
	roles, err := rolecontroller.GetAll(s.db)
	if err != nil {
		return handler.JSONInternal(c, err)
	}

	return c.JSON(fiber.Map{"roles": roles})
}

// AllUsers lists all users including their role memberships.
func (s *Service) AllUsers(c *fiber.Ctx) error {
	users, err := usercontroller.GetAllWithRoles(s.db)
	if err != nil {
		return handler.JSONInternal(c, err)
	}

	return c.JSON(fiber.Map{"users": users})
}
