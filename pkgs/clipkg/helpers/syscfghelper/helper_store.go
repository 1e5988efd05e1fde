package syscfghelper

import (
	"path/filepath"

	"github.com/WangWilly/unisat-connector/pkgs/commonpkg/database"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////

const SQLITE_DB_FILE = "journal.db"

////////////////////////////////////////////////////////////////////////////////

// GetDatabaseConfig returns the journal store, defaulting to a sqlite file in
// the state dir.
func (h *helper) GetDatabaseConfig() database.DatabaseConfig {
	dbConfig := h.sysConfig.Journal.Database
	if dbConfig.Type == "" {
		dbConfig.Type = database.DATABASE_TYPE_SQLITE
	}
	if dbConfig.Type == database.DATABASE_TYPE_SQLITE && dbConfig.Path == "" {
		dbConfig.Path = filepath.Join(h.stateDir, SQLITE_DB_FILE)
	}
	return dbConfig
}

// GetJournalDB connects the journal store once and makes sure its table exists.
func (h *helper) GetJournalDB() (*sqlx.DB, error) {
	if h.db != nil {
		return h.db, nil
	}

	db, err := database.ConnectWithConfig(h.GetDatabaseConfig())
	if err != nil {
		return nil, err
	}
	if err := database.CreateJournalTables(db); err != nil {
		db.Close()
		return nil, err
	}
	log.WithField("caller", "syscfghelper.GetJournalDB").Debugln("journal is ready")

	h.db = db
	return db, nil
}
