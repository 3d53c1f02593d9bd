// Package setting provides the site settings endpoints.
package setting

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/config"
	settingcontroller "github.com/inkpress/inkpress/internal/db/controller/setting"
	"github.com/inkpress/inkpress/internal/web/handler"
)

// Service is the setting handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the setting handler.
var Handler = Service{}

// Init initializes the setting handler and registers its routes.
func (s *Service) Init(router fiber.Router, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error {
	if router == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	router.Post("/settings/create", guard, s.Create)
	router.Get("/settings", s.List)
	router.Patch("/settings/update/:settingId", guard, s.Update)
	router.Delete("/settings/delete/:settingId", guard, s.Delete)

	return nil
}

// Create adds a new setting.
func (s *Service) Create(c *fiber.Ctx) error {
	var in struct {
		Key       string `form:"key"       json:"key"`
		Value     string `form:"value"     json:"value"`
		GroupName string `form:"groupName" json:"groupName"`
	}
	if err := c.BodyParser(&in); err != nil {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	if _, err := settingcontroller.Create(s.db, in.Key, in.Value, in.GroupName); err != nil {
		switch {
		case errors.Is(err, settingcontroller.ErrSettingKeyEmpty):
			return handler.JSONMsg(c, fiber.StatusBadRequest, "setting key is required")
		case errors.Is(err, settingcontroller.ErrSettingAlreadyExists):
			return handler.JSONMsg(c, fiber.StatusConflict, "setting with this key already exists")
		default:
			log.Error().Err(err).Str("key", in.Key).Msg("failed to create setting")

			return handler.JSONInternal(c, err)
		}
	}

	return handler.JSONMsg(c, fiber.StatusOK, "Setting created successfully")
}

// List returns all settings.
func (s *Service) List(c *fiber.Ctx) error {
	settings, err := settingcontroller.GetAll(s.db)
	if err != nil {
		return handler.JSONInternal(c, err)
	}

	return c.JSON(fiber.Map{"settings": settings})
}

// Update applies a partial update to a setting.
func (s *Service) Update(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c, "settingId")
	if !ok {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "no setting id found in params")
	}

	var in struct {
		Value     string `form:"value"     json:"value"`
		GroupName string `form:"groupName" json:"groupName"`
	}
	if err := c.BodyParser(&in); err != nil {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "invalid request body")
	}

	fields := map[string]interface{}{}
	if in.Value != "" {
		fields["value"] = in.Value
	}
	if in.GroupName != "" {
		fields["group_name"] = in.GroupName
	}

	if _, err := settingcontroller.Update(s.db, id, fields); err != nil {
		switch {
		case errors.Is(err, settingcontroller.ErrNoFieldsToUpdate):
			return handler.JSONMsg(c, fiber.StatusBadRequest, "no new changes found to update")
		case errors.Is(err, settingcontroller.ErrSettingNotFound):
			return handler.JSONMsg(c, fiber.StatusNotFound, "no setting with such id found")
		default:
			log.Error().Err(err).Uint64("setting_id", id).Msg("failed to update setting")

			return handler.JSONInternal(c, err)
		}
	}

	return handler.JSONMsg(c, fiber.StatusOK, "Setting updated successfully")
}

// Delete removes a setting.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c, "settingId")
	if !ok {
		return handler.JSONMsg(c, fiber.StatusBadRequest, "no setting id found in params")
	}

	if err := settingcontroller.Delete(s.db, id); err != nil {
		if errors.Is(err, settingcontroller.ErrSettingNotFound) {
			return handler.JSONMsg(c, fiber.StatusNotFound, "no setting with such id found")
		}

		log.Error().Err(err).Uint64("setting_id", id).Msg("failed to delete setting")

		return handler.JSONInternal(c, err)
	}

	return handler.JSONMsg(c, fiber.StatusOK, "Setting deleted successfully")
}
