package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/config"
)

// Service is the interface for a web handler service. Handlers needing more
// collaborators (auth service, upload store, route guard) take them as extra
// Init parameters.
type Service interface {
	Init(router fiber.Router, cfg *config.Config, db *gorm.DB) error
}
