// Package visitors provides the JSON API for visitor management commands.
package visitors

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoVisitorDash/GoVisitorDash/internal/config"
	"github.com/GoVisitorDash/GoVisitorDash/internal/db/controller/visitor"
	"github.com/GoVisitorDash/GoVisitorDash/internal/web/handler"
)

const (
	// DeletePath is the path of the visitor delete command.
	DeletePath = "/api/visitors/delete"
)

// DeleteRequest is the body of a visitor delete command.
type DeleteRequest struct {
	Address string `json:"address" validate:"required"`
}

// Service is the visitors API handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the visitors API handler.
var Handler = Service{}

// Init initializes the visitors API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	app.Post(DeletePath, s.Delete)
}

// Delete removes the snapshot for the requested address. Deleting an
// address without a snapshot still succeeds.
func (s *Service) Delete(c *fiber.Ctx) error {
	var req DeleteRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid JSON body",
		})
	}

	if err := s.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "address is required",
		})
	}

	if err := visitor.Delete(s.db, req.Address); err != nil {
		log.Error().Err(err).Str("address", req.Address).Msg("failed to delete visitor")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to delete visitor",
		})
	}

	log.Info().Str("address", req.Address).Msg("visitor deleted")

	return c.JSON(fiber.Map{"success": true})
}
