package journalrepo

import (
	"context"
	"time"

	"github.com/WangWilly/unisat-connector/pkgs/commonpkg/model"
	"github.com/jmoiron/sqlx"
)

type repo struct{}

func New() *repo {
	return &repo{}
}

////////////////////////////////////////////////////////////////////////////////

func (r *repo) Create(ctx context.Context, db *sqlx.DB, rec *model.CallRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	stmt := `INSERT INTO call_records (call_id, method, route, status_code, attempts, duration_ms, error, created_at)
			 VALUES (:call_id, :method, :route, :status_code, :attempts, :duration_ms, :error, :created_at)
			`
	_, err := db.NamedExecContext(ctx, stmt, rec)
	return err
}

////////////////////////////////////////////////////////////////////////////////

// ListRecent returns the latest limit records, newest first.
func (r *repo) ListRecent(ctx context.Context, db *sqlx.DB, limit int) ([]*model.CallRecord, error) {
	stmt := db.Rebind(`SELECT * FROM call_records ORDER BY created_at DESC, id DESC LIMIT ?`)
	res := []*model.CallRecord{}
	err := db.SelectContext(ctx, &res, stmt, limit)
	return res, err
}

func (r *repo) GetByCallId(ctx context.Context, db *sqlx.DB, callId string) (*model.CallRecord, error) {
	stmt := db.Rebind(`SELECT * FROM call_records WHERE call_id = ?`)
	res := &model.CallRecord{}
	err := db.GetContext(ctx, res, stmt, callId)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *repo) CountByRoute(ctx context.Context, db *sqlx.DB) ([]*model.RouteCount, error) {
	stmt := `SELECT route,
				COUNT(*) AS count,
				SUM(CASE WHEN error <> '' THEN 1 ELSE 0 END) AS failed
			 FROM call_records
			 GROUP BY route
			 ORDER BY count DESC, route ASC`
	res := []*model.RouteCount{}
	err := db.SelectContext(ctx, &res, stmt)
	return res, err
}

////////////////////////////////////////////////////////////////////////////////

// DeleteBefore prunes records older than t and reports how many went.
func (r *repo) DeleteBefore(ctx context.Context, db *sqlx.DB, t time.Time) (int64, error) {
	stmt := db.Rebind(`DELETE FROM call_records WHERE created_at < ?`)
	result, err := db.ExecContext(ctx, stmt, t)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
