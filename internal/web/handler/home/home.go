// Package home serves the public landing page with the operator-editable
// texts substituted into the template.
package home

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoVisitorDash/GoVisitorDash/internal/config"
	"github.com/GoVisitorDash/GoVisitorDash/internal/db/controller/sitetext"
	"github.com/GoVisitorDash/GoVisitorDash/internal/web/handler"
)

const (
	// Path is the path to the landing page.
	Path = handler.RootPath

	// TemplateName is the name of the landing page template.
	TemplateName = "home/index"
)

// Service is the landing page handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the landing page handler.
var Handler = Service{}

// Init initializes the landing page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)
}

// Get renders the landing page.
func (s *Service) Get(c *fiber.Ctx) error {
	texts, err := sitetext.Values(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load site texts")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load page")
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":       s.cfg.Title,
		"WelcomeText": texts[sitetext.KeyWelcomeText],
		"ButtonText":  texts[sitetext.KeyButtonText],
		"ModalTitle":  texts[sitetext.KeyModalTitle],
		"ModalBody":   texts[sitetext.KeyModalBody],
	})
}
