package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownDBEngine error if config db.engine is not sqlite, mysql or postgres.
	ErrUnknownDBEngine = errors.New("toml config db.engine must be sqlite, mysql or postgres")

	// ErrIncompleteDBConfig error if a server based db engine misses host or name.
	ErrIncompleteDBConfig = errors.New("toml config db.host and db.name are required for mysql and postgres")
)
