package record

import (
	"database/sql"
)

// PostgresStore records games in the games table created by the sql/ migrations
type PostgresStore struct {
	sqlStore
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore returns a store on an open postgres connection
// Use db.Open and db.Migrate to prepare the connection
func NewPostgresStore(conn *sql.DB) *PostgresStore {
	return &PostgresStore{
		sqlStore: sqlStore{db: conn},
	}
}
