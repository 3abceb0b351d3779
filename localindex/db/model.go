package db

import (
	"database/sql"

	"github.com/pantierra/phenocam-finder/util"
)

// ConnectionProvider is a function that can provide a database connection.
type ConnectionProvider func(util.LogContext) (*sql.DB, error)
