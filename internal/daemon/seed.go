package daemon

import (
	"gorm.io/gorm"

	"github.com/rs/zerolog/log"

	"github.com/inkpress/inkpress/internal/config"
	"github.com/inkpress/inkpress/internal/db/models"
)

func seed(_ *config.Config, db *gorm.DB) {
	// Seed the default role if the roles table is empty. Signup refuses to
	// create accounts while this role is missing.

	var count int64
	db.Model(&models.Role{}).Count(&count)
	if count == 0 {
		result := db.Create(&models.Role{Name: models.DefaultRoleName})
		if result.Error != nil {
			log.Fatal().Err(result.Error).Msg("failed to seed default role")
		}

		log.Info().Str("role", models.DefaultRoleName).Msg("seeded default role")
	}
}
