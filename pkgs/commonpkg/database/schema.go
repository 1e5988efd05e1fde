package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

const sqliteCallRecordsTable = `
CREATE TABLE IF NOT EXISTS call_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	call_id VARCHAR(36) NOT NULL UNIQUE,
	method VARCHAR(8) NOT NULL,
	route TEXT NOT NULL,
	status_code INTEGER NOT NULL DEFAULT 0,
	attempts INTEGER NOT NULL DEFAULT 1,
	duration_ms INTEGER NOT NULL DEFAULT 0,
	error TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

const postgresCallRecordsTable = `
CREATE TABLE IF NOT EXISTS call_records (
	id SERIAL PRIMARY KEY,
	call_id VARCHAR(36) NOT NULL UNIQUE,
	method VARCHAR(8) NOT NULL,
	route TEXT NOT NULL,
	status_code INTEGER NOT NULL DEFAULT 0,
	attempts INTEGER NOT NULL DEFAULT 1,
	duration_ms BIGINT NOT NULL DEFAULT 0,
	error TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// CreateJournalTables creates the call journal tables for the db dialect
func CreateJournalTables(db *sqlx.DB) error {
	table := sqliteCallRecordsTable
	if db.DriverName() == DRIVER_POSTGRES {
		table = postgresCallRecordsTable
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_call_records_route ON call_records(route);",
		"CREATE INDEX IF NOT EXISTS idx_call_records_created_at ON call_records(created_at);",
	}

	for _, query := range append([]string{table}, indexes...) {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create journal table: %w", err)
		}
	}

	log.WithField("driver", db.DriverName()).Debugln("journal tables are ready")
	return nil
}
