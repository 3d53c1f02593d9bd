package auth

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/db/controller/role"
	"github.com/inkpress/inkpress/internal/db/controller/user"
	"github.com/inkpress/inkpress/internal/db/models"
	"github.com/inkpress/inkpress/internal/token"
)

// Service orchestrates signup and login.
type Service struct {
	db       *gorm.DB
	tokens   *token.Issuer
	validate *validator.Validate
}

// NewService creates a new auth service.
func NewService(db *gorm.DB, tokens *token.Issuer) *Service {
	return &Service{
		db:       db,
		tokens:   tokens,
		validate: validator.New(),
	}
}

// SignupInput is the validated signup payload.
type SignupInput struct {
	Name     string            `form:"name"     json:"name"     validate:"required,min=1,max=100"`
	Email    string            `form:"email"    json:"email"    validate:"required,email,max=255"`
	Password string            `form:"password" json:"password" validate:"required,min=8"`
	Avatar   string            `form:"avatar"   json:"avatar"   validate:"omitempty,max=255"`
	Status   models.UserStatus `form:"status"   json:"status"   validate:"omitempty,oneof=ACTIVE SUSPENDED"`
}

// Signup registers a new user.
//
// Preconditions are checked in order: the BASIC role must exist
// (ErrRoleNotConfigured), the payload must validate (ErrInvalidInput), and
// the email must be unused (ErrEmailTaken). On success the password is hashed
// and the user row plus its BASIC role membership are created in a single
// transaction, so both exist or neither does. The created record is never
// returned.
func (s *Service) Signup(in SignupInput) error {
	basicRole, err := role.GetByName(s.db, models.DefaultRoleName)
	if err != nil {
		if errors.Is(err, role.ErrRoleNotFound) {
			return ErrRoleNotConfigured
		}
		return fmt.Errorf("failed to look up default role: %w", err)
	}

	if err = s.validate.Struct(in); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			ve := validationErrors[0]
			return fmt.Errorf("%w: field '%s' failed validation tag '%s'",
				ErrInvalidInput, ve.Field(), ve.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, err = user.GetByEmail(s.db, in.Email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	if in.Status == "" {
		in.Status = models.UserStatusActive
	}

	newUser := models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: models.HashPassword(in.Password),
		Avatar:   in.Avatar,
		Status:   in.Status,
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		membership := models.UserRole{
			UserID: newUser.ID,
			RoleID: basicRole.ID,
		}
		if err := tx.Create(&membership).Error; err != nil {
			return fmt.Errorf("failed to create role membership: %w", err)
		}

		return nil
	})
}

// Login verifies the credentials and issues a bearer token carrying the
// user's email claim. The stored hash is never returned.
func (s *Service) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}

	existing, err := user.GetByEmail(s.db, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !existing.VerifyPassword(password) {
		return "", ErrInvalidPassword
	}

	return s.tokens.Issue(existing.Email)
}
