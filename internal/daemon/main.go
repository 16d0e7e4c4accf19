// Package daemon assembles the service: database, migration, seeding and
// the web service.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GoVisitorDash/GoVisitorDash/internal/config"
	"github.com/GoVisitorDash/GoVisitorDash/internal/db/dsn"
	"github.com/GoVisitorDash/GoVisitorDash/internal/db/models"
	"github.com/GoVisitorDash/GoVisitorDash/internal/enrich"
	"github.com/GoVisitorDash/GoVisitorDash/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService web.Service
	port       int
}

// Start starts the Daemon's web service and blocks until it stops.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	var dbDriver gorm.Dialector

	switch cfg.DB.Engine {
	case config.EngineMySQL:
		dbDriver = gormmysql.Open(dsn.Create(cfg))
	case config.EnginePostgres:
		dbDriver = gormpostgres.Open(dsn.Create(cfg))
	default:
		// single local database file
		dbDriver = sqlite.Open(dsn.Create(cfg))
	}

	db, err := gorm.Open(dbDriver, &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	// table creation is idempotent, safe on every startup
	if err = db.AutoMigrate(
		&models.Visitor{},
		&models.Setting{},
	); err != nil {
		panic("failed to migrate database")
	}

	seed(cfg, db)

	return &Daemon{
		webService: *web.New(cfg, db, enrich.New(cfg.Enrichment)),
		port:       cfg.Webserver.Port,
	}
}
