// Package content provides the content management endpoints. Writes are
// gated on the authenticated author and every update snapshots a revision.
package content

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/config"
	categorycontroller "github.com/inkpress/inkpress/internal/db/controller/category"
	contentcontroller "github.com/inkpress/inkpress/internal/db/controller/content"
	"github.com/inkpress/inkpress/internal/db/models"
	"github.com/inkpress/inkpress/internal/upload"
	"github.com/inkpress/inkpress/internal/web/handler"
	authmw "github.com/inkpress/inkpress/internal/web/middleware/auth"
)

// Service is the content handler service.
type Service struct {
	handler.Service
	cfg     *config.Config
	db      *gorm.DB
	uploads *upload.Store
}

// Handler is the content handler.
var Handler = Service{}

// Init initializes the content handler and registers its routes.
func (s *Service) Init(
	router fiber.Router,
	cfg *config.Config,
	db *gorm.DB,
	uploads *upload.Store,
	guard fiber.Handler,
) error {
	if router == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.uploads = uploads

	router.Get("/content", s.List)
	router.Get("/content/slug/:slug", s.GetBySlug)
	router.Post("/add-content", guard, s.Create)
	router.Patch("/update-content/:contentId", guard, s.Update)
	router.Delete("/delete-content/:contentId", guard, s.Delete)

	return nil
}

func validStatus(status models.ContentStatus) bool {
	switch status {
	case models.ContentStatusDraft, models.ContentStatusPublished, models.ContentStatusArchived:
		return true
	default:
		return false
	}
}

// List returns all content items.
func (s *Service) List(c *fiber.Ctx) error {
	items, err := contentcontroller.GetAll(s.db)
	if err != nil {
		return handler.JSONInternal(c, err)
	}

	return c.JSON(fiber.Map{"content": items})
}

// GetBySlug returns a single content item by its slug.
func (s *Service) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "no slug found in params")
	}

	item, err := contentcontroller.GetBySlug(s.db, slug)
	if err != nil {
		if errors.Is(err, contentcontroller.ErrContentNotFound) {
			return handler.JSONMsg(c, fiber.StatusNotFound, "no content with such slug found")
		}

		return handler.JSONInternal(c, err)
	}

	return c.JSON(fiber.Map{"content": item})
}

// Create adds a new content item authored by the authenticated user. The
// "image" file is stored before the database checks run; every failure after
// that point removes the stored file again.
func (s *Service) Create(c *fiber.Ctx) error {
	principal, ok := authmw.CurrentPrincipal(c)
	if !ok {
		return handler.JSONMsg(c, fiber.StatusUnauthorized, "not authenticated")
	}

	var in struct {
		Title      string `form:"title"      json:"title"`
		Slug       string `form:"slug"       json:"slug"`
		Body       string `form:"body"       json:"body"`
		CategoryID uint64 `form:"categoryId" json:"categoryId"`
		Status     string `form:"status"     json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	if in.Title == "" || in.Slug == "" || in.Body == "" || in.CategoryID == 0 {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "title, slug, body and category are required")
	}

	status := models.ContentStatus(in.Status)
	if !validStatus(status) {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "invalid content status")
	}

	file, err := s.uploads.Save(c, "image")
	if err != nil {
		if errors.Is(err, upload.ErrNoFile) {
			return handler.JSONMsg(c, fiber.StatusBadRequest, "image file is required")
		}

		return handler.JSONMsg(c, fiber.StatusBadRequest, err.Error())
	}

	if _, err = categorycontroller.GetByID(s.db, in.CategoryID); err != nil {
		s.uploads.Remove(file)

		if errors.Is(err, categorycontroller.ErrCategoryNotFound) {
			return handler.JSONMsg(c, fiber.StatusNotFound, "no category with such id found")
		}

		return handler.JSONInternal(c, err)
	}

	_, err = contentcontroller.Create(
		s.db, in.Title, in.Slug, in.Body, file.PublicPath, in.CategoryID, status, principal.UserID,
	)
	if err != nil {
		s.uploads.Remove(file)

		if errors.Is(err, contentcontroller.ErrTitleAlreadyExists) {
			return handler.JSONMsg(c, fiber.StatusConflict, "content with this title already exists")
		}

		log.Error().Err(err).Str("title", in.Title).Msg("failed to create content")

		return handler.JSONInternal(c, err)
	}

	return handler.JSONMsg(c, fiber.StatusOK, "Content created successfully")
}

// Update applies a partial update to a content item. Only the author may
// update it; the pre-update state is kept as a revision.
func (s *Service) Update(c *fiber.Ctx) error {
	principal, ok := authmw.CurrentPrincipal(c)
	if !ok {
		return handler.JSONMsg(c, fiber.StatusUnauthorized, "not authenticated")
	}

	id, ok := handler.ParamID(c, "contentId")
	if !ok {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "no content id found in params")
	}

	var in struct {
		Title      string  `form:"title"      json:"title"`
		Slug       string  `form:"slug"       json:"slug"`
		Body       string  `form:"body"       json:"body"`
		CategoryID *uint64 `form:"categoryId" json:"categoryId"`
		Status     string  `form:"status"     json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	fields := map[string]interface{}{}
	if in.Title != "" {
		fields["title"] = in.Title
	}
	if in.Slug != "" {
		fields["slug"] = contentcontroller.NormalizeSlug(in.Slug)
	}
	if in.Body != "" {
		fields["body"] = in.Body
	}
	if in.CategoryID != nil {
		fields["category_id"] = *in.CategoryID
	}
	if in.Status != "" {
		if !validStatus(models.ContentStatus(in.Status)) {
			return handler.JSONMsg(c, fiber.StatusBadRequest, "invalid content status")
		}
		fields["status"] = in.Status
	}

	if file, err := s.uploads.Save(c, "image"); err == nil {
		fields["image"] = file.PublicPath
	} else if !errors.Is(err, upload.ErrNoFile) {
		return handler.JSONMsg(c, fiber.StatusBadRequest, err.Error())
	}

	if _, err := contentcontroller.Update(s.db, id, principal.UserID, fields); err != nil {
		switch {
		case errors.Is(err, contentcontroller.ErrNoFieldsToUpdate):
			return handler.JSONMsg(c, fiber.StatusBadRequest, "no new changes found to update")
		case errors.Is(err, contentcontroller.ErrContentNotFound):
			return handler.JSONMsg(c, fiber.StatusNotFound, "no content with such id found")
		case errors.Is(err, contentcontroller.ErrNotAuthor):
			return handler.JSONMsg(c, fiber.StatusForbidden, "cannot update other author's content")
		default:
			log.Error().Err(err).Uint64("content_id", id).Msg("failed to update content")

			return handler.JSONInternal(c, err)
		}
	}

	return handler.JSONMsg(c, fiber.StatusOK, "Content updated successfully")
}

// Delete removes a content item. Only the author may delete it.
func (s *Service) Delete(c *fiber.Ctx) error {
	principal, ok := authmw.CurrentPrincipal(c)
	if !ok {
		return handler.JSONMsg(c, fiber.StatusUnauthorized, "not authenticated")
	}

	id, ok := handler.ParamID(c, "contentId")
	if !ok {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "no content id found in params")
	}

	if err := contentcontroller.Delete(s.db, id, principal.UserID); err != nil {
		switch {
		case errors.Is(err, contentcontroller.ErrContentNotFound):
			return handler.JSONMsg(c, fiber.StatusNotFound, "no content with such id found")
		case errors.Is(err, contentcontroller.ErrNotAuthor):
			return handler.JSONMsg(c, fiber.StatusForbidden, "cannot delete other author's content")
		default:
			log.Error().Err(err).Uint64("content_id", id).Msg("failed to delete content")

			return handler.JSONInternal(c, err)
		}
	}

	return handler.JSONMsg(c, fiber.StatusOK, "Content deleted successfully")
}
