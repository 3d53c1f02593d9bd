// Package category provides the category management endpoints.
package category

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/config"
	categorycontroller "github.com/inkpress/inkpress/internal/db/controller/category"
	"github.com/inkpress/inkpress/internal/web/handler"
)

// Service is the category handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the category handler.
var Handler = Service{}

// Init initializes the category handler and registers its routes.
func (s *Service) Init(router fiber.Router, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error {
	if router == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	router.Post("/add-category", guard, s.Create)
	router.Get("/category", s.List)
	router.Patch("/update-category/:categoryId", guard, s.Update)
	router.Delete("/delete-category/:categoryId", guard, s.Delete)

	return nil
}

// Create adds a new category.
func (s *Service) Create(c *fiber.Ctx) error {
	var in struct {
		Name        string  `form:"name"        json:"name"`
		Description string  `form:"description" json:"description"`
		ParentID    *uint64 `form:"parentId"    json:"parentId"`
	}
	if err := c.BodyParser(&in); err != nil {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	if _, err := categorycontroller.Create(s.db, in.Name, in.Description, in.ParentID); err != nil {
		switch {
		case errors.Is(err, categorycontroller.ErrCategoryNameEmpty):
			return handler.JSONMsg(c, fiber.StatusBadRequest, "category name is required")
		case errors.Is(err, categorycontroller.ErrCategoryAlreadyExists):
			return handler.JSONMsg(c, fiber.StatusConflict, "category with this name already exists")
		default:
			log.Error().Err(err).Str("name", in.Name).Msg("failed to create category")

			return handler.JSONInternal(c, err)
		}
	}

	return handler.JSONMsg(c, fiber.StatusOK, "Category created successfully")
}

// List returns all categories.
func (s *Service) List(c *fiber.Ctx) error {
	categories, err := categorycontroller.GetAll(s.db)
	if err != nil {
		return handler.JSONInternal(c, err)
	}

	return c.JSON(fiber.Map{"categories": categories})
}

// Update applies a partial update to a category.
func (s *Service) Update(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c, "categoryId")
	if !ok {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "no category id found in params")
	}

	var in struct {
		Name        string  `form:"name"        json:"name"`
		Description string  `form:"description" json:"description"`
		ParentID    *uint64 `form:"parentId"    json:"parentId"`
	}
	if err := c.BodyParser(&in); err != nil {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	fields := map[string]interface{}{}
	if in.Name != "" {
		fields["name"] = in.Name
	}
	if in.Description != "" {
		fields["description"] = in.Description
	}
	if in.ParentID != nil {
		fields["parent_id"] = *in.ParentID
	}

	if _, err := categorycontroller.Update(s.db, id, fields); err != nil {
		switch {
		case errors.Is(err, categorycontroller.ErrNoFieldsToUpdate):
			return handler.JSONMsg(c, fiber.StatusBadRequest, "no new changes found to update")
		case errors.Is(err, categorycontroller.ErrCategoryNotFound):
			return handler.JSONMsg(c, fiber.StatusNotFound, "no category with such id found")
		default:
			log.Error().Err(err).Uint64("category_id", id).Msg("failed to update category")

			return handler.JSONInternal(c, err)
		}
	}

	return handler.JSONMsg(c, fiber.StatusOK, "Category updated successfully")
}

// Delete removes a category.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c, "categoryId")
	if !ok {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "no category id found in params")
	}

	if err := categorycontroller.Delete(s.db, id); err != nil {
		if errors.Is(err, categorycontroller.ErrCategoryNotFound) {
			return handler.JSONMsg(c, fiber.StatusNotFound, "no category with such id found")
		}

		log.Error().Err(err).Uint64("category_id", id).Msg("failed to delete category")

		return handler.JSONInternal(c, err)
	}

	return handler.JSONMsg(c, fiber.StatusOK, "Category deleted successfully")
}
