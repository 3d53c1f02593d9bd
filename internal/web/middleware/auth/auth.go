// Package auth provides the bearer-token middleware protecting mutating API
// routes. Each request either ends up with a typed Principal attached to the
// fiber context or is rejected before the handler runs.
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/db/controller/user"
	"github.com/inkpress/inkpress/internal/token"
	"github.com/inkpress/inkpress/internal/web/handler"
)

// Principal is the authenticated identity resolved from a bearer token.
type Principal struct {
	UserID uint64
	Email  string
}

const localsPrincipalKey = "principal"

// New creates the bearer middleware. A missing or malformed Authorization
// header and a token failing verification are both rejected as 401; a token
// that verifies but whose email no longer resolves to a user (for example
// after the account was deleted) is rejected as 403.
func New(db *gorm.DB, tokens *token.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return handler.JSONMsg(c, fiber.StatusUnauthorized, "authorization header missing")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return handler.JSONMsg(c, fiber.StatusUnauthorized, "invalid authorization header")
		}

		email, err := tokens.Verify(parts[1])
		if err != nil {
			return handler.JSONMsg(c, fiber.StatusUnauthorized, "invalid token")
		}

		usr, err := user.GetByEmail(db, email)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return handler.JSONMsg(c, fiber.StatusForbidden, "no user found for this token")
			}

			log.Error().Err(err).Msg("failed to resolve token user")

			return handler.JSONMsg(c, fiber.StatusInternalServerError, err.Error())
		}

		c.Locals(localsPrincipalKey, Principal{
			UserID: usr.ID,
			Email:  usr.Email,
		})

		return c.Next()
	}
}

// CurrentPrincipal returns the identity attached by the middleware.
// The second return value is false on routes the middleware did not run on.
func CurrentPrincipal(c *fiber.Ctx) (Principal, bool) {
	p, ok := c.Locals(localsPrincipalKey).(Principal)

	return p, ok
}
