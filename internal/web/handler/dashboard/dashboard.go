// Package dashboard provides the management view over all recorded visits.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoVisitorDash/GoVisitorDash/internal/config"
	"github.com/GoVisitorDash/GoVisitorDash/internal/db/controller/sitetext"
	"github.com/GoVisitorDash/GoVisitorDash/internal/db/controller/visitor"
	"github.com/GoVisitorDash/GoVisitorDash/internal/web/handler"
	"github.com/GoVisitorDash/GoVisitorDash/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.RootPath + "dashboard"

	// APIPath is the alias under the api route group.
	APIPath = "/api/access/dashboard"

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard/dashboard"

	// maxPlainRows is the largest row count rendered without the scroll
	// constraint on the table region.
	maxPlainRows = 10
)

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)
	app.Get(APIPath, s.Get)
}

// Get handles the dashboard page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Live Visitor Dashboard", "dashboard")

	visitors, err := visitor.All(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load visitors")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load visitors")
	}

	texts, err := sitetext.Values(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load site texts")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load settings")
	}

	rows := buildRows(visitors)

	log.Debug().Int("visitor_count", len(rows)).Msg("dashboard rendered")

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Rows":       rows,
		"Settings":   texts,
		"Scrollable": len(rows) > maxPlainRows,
	}, handler.BaseLayout)
}
