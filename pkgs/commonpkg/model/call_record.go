package model

import (
	"database/sql"
	"time"
)

// CallRecord is one journal row: a finished call to the indexer service.
type CallRecord struct {
	Id         sql.NullInt64 `db:"id"`
	CallId     string        `db:"call_id"`
	Method     string        `db:"method"`
	Route      string        `db:"route"`
	StatusCode int           `db:"status_code"`
	Attempts   int           `db:"attempts"`
	DurationMs int64         `db:"duration_ms"`
	Error      string        `db:"error"`
	CreatedAt  time.Time     `db:"created_at"`
}

// RouteCount is the number of journaled calls per route.
type RouteCount struct {
	Route  string `db:"route"`
	Count  int64  `db:"count"`
	Failed int64  `db:"failed"`
}
