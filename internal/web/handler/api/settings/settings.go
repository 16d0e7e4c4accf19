// Package settings provides the JSON API for updating the homepage texts.
package settings

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoVisitorDash/GoVisitorDash/internal/config"
	"github.com/GoVisitorDash/GoVisitorDash/internal/db/controller/sitetext"
	"github.com/GoVisitorDash/GoVisitorDash/internal/web/handler"
)

const (
	// Path is the path of the settings update command.
	Path = "/api/settings"
)

// Service is the settings API handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the settings API handler.
var Handler = Service{}

// Init initializes the settings API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg

	app.Post(Path, s.Post)
}

// Post updates the values of the known site text keys present in the body.
// Keys outside the known set are silently ignored and never inserted.
func (s *Service) Post(c *fiber.Ctx) error {
	var values map[string]string

	if err := json.Unmarshal(c.Body(), &values); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid JSON body",
		})
	}

	if err := sitetext.Update(s.db, values); err != nil {
		log.Error().Err(err).Msg("failed to update site texts")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to update settings",
		})
	}

	log.Info().Int("key_count", len(values)).Msg("site texts updated")

	return c.JSON(fiber.Map{"success": true})
}
