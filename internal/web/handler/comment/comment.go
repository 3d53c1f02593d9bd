// Package comment provides the comment and moderation endpoints. New
// comments start out pending and only approved ones show up in listings.
package comment

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/config"
	commentcontroller "github.com/inkpress/inkpress/internal/db/controller/comment"
	"github.com/inkpress/inkpress/internal/web/handler"
	authmw "github.com/inkpress/inkpress/internal/web/middleware/auth"
)

// Service is the comment handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the comment handler.
var Handler = Service{}

// Init initializes the comment handler and registers its routes.
func (s *Service) Init(router fiber.Router, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error {
	if router == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	router.Post("/content/:contentId/comments", guard, s.Create)
	router.Get("/content/:contentId/comments", guard, s.ListApproved)
	router.Patch("/comment/approve/:commentId", guard, s.Approve)
	router.Patch("/comment/reject/:commentId", guard, s.Reject)
	router.Delete("/comment/delete/:commentId", guard, s.Delete)

	return nil
}

// Create adds a new pending comment by the authenticated user.
func (s *Service) Create(c *fiber.Ctx) error {
	principal, ok := authmw.CurrentPrincipal(c)
	if !ok {
		return handler.JSONMsg(c, fiber.StatusUnauthorized, "not authenticated")
	}

	contentID, ok := handler.ParamID(c, "contentId")
	if !ok {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "no content id found in params")
	}

	var in struct {
		Comment string `form:"comment" json:"comment"`
	}
	if err := c.BodyParser(&in); err != nil {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	if _, err := commentcontroller.Create(s.db, contentID, principal.UserID, in.Comment); err != nil {
		if errors.Is(err, commentcontroller.ErrCommentEmpty) {
			return handler.JSONMsg(c, fiber.StatusBadRequest, "comment text is required")
		}

		log.Error().Err(err).Uint64("content_id", contentID).Msg("failed to create comment")

		return handler.JSONInternal(c, err)
	}

	return handler.JSONMsg(c, fiber.StatusOK, "Comment created successfully")
}

// ListApproved returns the approved comments of a content item.
func (s *Service) ListApproved(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c, "contentId")
	if !ok {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "no content id found in params")
	}

	comments, err := commentcontroller.GetApproved(s.db, id)
	if err != nil {
		return handler.JSONInternal(c, err)
	}

	return c.JSON(fiber.Map{"comments": comments})
}

// Approve marks a pending or rejected comment as approved.
func (s *Service) Approve(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c, "commentId")
	if !ok {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "no comment id found in params")
	}

	if _, err := commentcontroller.Approve(s.db, id); err != nil {
		switch {
		case errors.Is(err, commentcontroller.ErrCommentNotFound):
			return handler.JSONMsg(c, fiber.StatusNotFound, "no comment with such id found")
		case errors.Is(err, commentcontroller.ErrAlreadyApproved):
			return handler.JSONMsg(c, fiber.StatusBadRequest, "comment is already approved")
		default:
			log.Error().Err(err).Uint64("comment_id", id).Msg("failed to approve comment")

			return handler.JSONInternal(c, err)
		}
	}

	return handler.JSONMsg(c, fiber.StatusOK, "Comment approved successfully")
}

// Reject marks a pending or approved comment as rejected.
func (s *Service) Reject(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c, "commentId")
	if !ok {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "no comment id found in params")
	}

	if _, err := commentcontroller.Reject(s.db, id); err != nil {
		switch {
		case errors.Is(err, commentcontroller.ErrCommentNotFound):
			return handler.JSONMsg(c, fiber.StatusNotFound, "no comment with such id found")
		case errors.Is(err, commentcontroller.ErrAlreadyRejected):
			return handler.JSONMsg(c, fiber.StatusBadRequest, "comment is already rejected")
		default:
			log.Error().Err(err).Uint64("comment_id", id).Msg("failed to reject comment")

			return handler.JSONInternal(c, err)
		}
	}

	return handler.JSONMsg(c, fiber.StatusOK, "Comment rejected successfully")
}

// Delete removes a comment.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c, "commentId")
	if !ok {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "no comment id found in params")
	}

	if err := commentcontroller.Delete(s.db, id); err != nil {
		if errors.Is(err, commentcontroller.ErrCommentNotFound) {
			return handler.JSONMsg(c, fiber.StatusNotFound, "no comment with such id found")
		}

		log.Error().Err(err).Uint64("comment_id", id).Msg("failed to delete comment")

		return handler.JSONInternal(c, err)
	}

	return handler.JSONMsg(c, fiber.StatusOK, "Comment deleted successfully")
}
