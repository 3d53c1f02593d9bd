// Package tag provides the tag management endpoints.
package tag

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/config"
	tagcontroller "github.com/inkpress/inkpress/internal/db/controller/tag"
	"github.com/inkpress/inkpress/internal/web/handler"
)

// Service is the tag handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the tag handler.
var Handler = Service{}

// Init initializes the tag handler and registers its routes.
func (s *Service) Init(router fiber.Router, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error {
	if router == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	router.Post("/add-tag", guard, s.Create)
	router.Get("/tag", s.List)
	router.Patch("/update-tag/:tagId", guard, s.Update)
	router.Delete("/delete-tag/:tagId", guard, s.Delete)

	return nil
}

// Create adds a new tag.
func (s *Service) Create(c *fiber.Ctx) error {
	var in struct {
		Name string `form:"name" json:"name"`
		Slug string `form:"slug" json:"slug"`
	}
	if err := c.BodyParser(&in); err != nil {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	if _, err := tagcontroller.Create(s.db, in.Name, in.Slug); err != nil {
		switch {
		case errors.Is(err, tagcontroller.ErrTagNameEmpty):
			return handler.JSONMsg(c, fiber.StatusBadRequest, "tag name and slug are required")
		case errors.Is(err, tagcontroller.ErrTagAlreadyExists):
			return handler.JSONMsg(c, fiber.StatusConflict, "tag with this name already exists")
		default:
			log.Error().Err(err).Str("name", in.Name).Msg("failed to create tag")

			return handler.JSONInternal(c, err)
		}
	}

	return handler.JSONMsg(c, fiber.StatusOK, "Tag created successfully")
}

// List returns all tags.
func (s *Service) List(c *fiber.Ctx) error {
	tags, err := tagcontroller.GetAll(s.db)
	if err != nil {
		return handler.JSONInternal(c, err)
	}

	return c.JSON(fiber.Map{"tags": tags})
}

// Update applies a partial update to a tag.
func (s *Service) Update(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c, "tagId")
	if !ok {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "no tag id found in params")
	}

	var in struct {
		Name string `form:"name" json:"name"`
		Slug string `form:"slug" json:"slug"`
	}
	if err := c.BodyParser(&in); err != nil {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	fields := map[string]interface{}{}
	if in.Name != "" {
		fields["name"] = in.Name
	}
	if in.Slug != "" {
		fields["slug"] = in.Slug
	}

	if _, err := tagcontroller.Update(s.db, id, fields); err != nil {
		switch {
		case errors.Is(err, tagcontroller.ErrNoFieldsToUpdate):
			return handler.JSONMsg(c, fiber.StatusBadRequest, "no new changes found to update")
		case errors.Is(err, tagcontroller.ErrTagNotFound):
			return handler.JSONMsg(c, fiber.StatusNotFound, "no tag with such id found")
		default:
			log.Error().Err(err).Uint64("tag_id", id).Msg("failed to update tag")

			return handler.JSONInternal(c, err)
		}
	}

	return handler.JSONMsg(c, fiber.StatusOK, "Tag updated successfully")
}

// Delete removes a tag.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c, "tagId")
	if !ok {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "no tag id found in params")
	}

	if err := tagcontroller.Delete(s.db, id); err != nil {
		if errors.Is(err, tagcontroller.ErrTagNotFound) {
			return handler.JSONMsg(c, fiber.StatusNotFound, "no tag with such id found")
		}

		log.Error().Err(err).Uint64("tag_id", id).Msg("failed to delete tag")

		return handler.JSONInternal(c, err)
	}

	return handler.JSONMsg(c, fiber.StatusOK, "Tag deleted successfully")
}
