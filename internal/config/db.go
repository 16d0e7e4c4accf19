package config

// Supported database engines.
const (
	EngineSQLite   = "sqlite"
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"

	// DefaultSQLitePath is the single local database file used by default.
	DefaultSQLitePath = "./visitors.db"
)

// DB holds the database configuration settings.
type DB struct {
	Engine   string // sqlite (default), mysql or postgres
	Path     string // database file, sqlite only
	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}
