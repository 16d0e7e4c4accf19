package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoVisitorDash/GoVisitorDash/internal/config"
	"github.com/GoVisitorDash/GoVisitorDash/internal/db/controller/sitetext"
)

func seed(_ *config.Config, db *gorm.DB) {
	// Seed the homepage texts with defaults, insert-if-absent only.
	if err := sitetext.SeedDefaults(db); err != nil {
		log.Fatal().Err(err).Msg("failed to seed site texts")
	}
}
