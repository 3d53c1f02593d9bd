// Package revision provides read access to content revision history.
package revision

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/config"
	revisioncontroller "github.com/inkpress/inkpress/internal/db/controller/revision"
	"github.com/inkpress/inkpress/internal/web/handler"
)

// Service is the revision handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the revision handler.
var Handler = Service{}

// Init initializes the revision handler and registers its routes.
func (s *Service) Init(router fiber.Router, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error {
	if router == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	router.Get("/content/:contentId/revisions", guard, s.ListByContent)
	router.Get("/revision/:revisionId", guard, s.Get)

	return nil
}

// ListByContent returns the revisions of a content item, oldest first.
func (s *Service) ListByContent(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c, "contentId")
	if !ok {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "no content id found in params")
	}

	revisions, err := revisioncontroller.GetByContent(s.db, id)
	if err != nil {
		return handler.JSONInternal(c, err)
	}

	return c.JSON(fiber.Map{"revisions": revisions})
}

// Get returns a single revision.
func (s *Service) Get(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c, "revisionId")
	if !ok {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "no revision id found in params")
	}

	rev, err := revisioncontroller.GetByID(s.db, id)
	if err != nil {
		if errors.Is(err, revisioncontroller.ErrRevisionNotFound) {
			return handler.JSONMsg(c, fiber.StatusNotFound, "no revision with such id found")
		}

		return handler.JSONInternal(c, err)
	}

	return c.JSON(fiber.Map{"revision": rev})
}
