// Package track accepts the browser-reported visit payload, runs it through
// the ingestion pipeline and redirects the visitor onward. The response is
// always the redirect: neither enrichment nor store failures are surfaced
// to the visitor.
package track

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoVisitorDash/GoVisitorDash/internal/config"
	pipeline "github.com/GoVisitorDash/GoVisitorDash/internal/track"
	"github.com/GoVisitorDash/GoVisitorDash/internal/web/handler"
)

const (
	// Path is the path of the tracking endpoint.
	Path = "/track"
)

// Service is the tracking handler service.
type Service struct {
	handler.Service
	cfg     *config.Config
	tracker *pipeline.Service
}

// Handler is the tracking handler.
var Handler = Service{}

// Init initializes the tracking handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, tracker *pipeline.Service) {
	if app == nil || cfg == nil || tracker == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.tracker = tracker

	app.Post(Path, s.Post)
}

// Post records the visit and redirects the visitor to the configured target.
func (s *Service) Post(c *fiber.Ctx) error {
	var payload pipeline.Payload

	// An empty or unparseable body records a bare visit instead of failing.
	if body := c.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			log.Debug().Err(err).Msg("unparseable tracking payload, recording bare visit")

			payload = pipeline.Payload{}
		}
	}

	addr, err := s.tracker.Ingest(
		c.UserContext(),
		c.IP(),
		c.Get(fiber.HeaderUserAgent),
		payload,
	)
	if err != nil {
		// The tracking surface stays silent about failures.
		log.Error().Err(err).Str("address", addr).Msg("failed to store visit")
	} else {
		log.Debug().Str("address", addr).Msg("visit recorded")
	}

	return c.Redirect(s.cfg.Webserver.RedirectTarget, fiber.StatusFound)
}
