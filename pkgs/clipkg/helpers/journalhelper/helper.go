package journalhelper

import (
	"context"
	"time"

	"github.com/WangWilly/unisat-connector/pkgs/commonpkg/clients/unisatclient"
	"github.com/WangWilly/unisat-connector/pkgs/commonpkg/model"
	"github.com/WangWilly/unisat-connector/pkgs/commonpkg/repos/journalrepo"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////

// journal write timeout, independent of the caller's context
const WRITE_TIMEOUT = 5 * time.Second

type JournalRepo interface {
	Create(ctx context.Context, db *sqlx.DB, rec *model.CallRecord) error
}

type helper struct {
	db     *sqlx.DB
	repo   JournalRepo
	logger *log.Entry
}

func New(db *sqlx.DB) *helper {
	return &helper{
		db:     db,
		repo:   journalrepo.New(),
		logger: log.WithField("caller", "journalhelper"),
	}
}

////////////////////////////////////////////////////////////////////////////////

// Observer returns the call observer to hand to unisatclient.WithCallObserver.
func (h *helper) Observer() unisatclient.CallObserver {
	return h.Record
}

// Record stores one finished call. A failed write is logged and dropped; the
// journal never fails a call.
func (h *helper) Record(ctx context.Context, info unisatclient.CallInfo) {
	rec := ToCallRecord(info)

	// the call's own context may already be cancelled
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), WRITE_TIMEOUT)
	defer cancel()

	if err := h.repo.Create(writeCtx, h.db, rec); err != nil {
		h.logger.WithFields(log.Fields{
			"call_id": info.ID,
			"route":   info.Route,
		}).Warnln("failed to journal call:", err)
	}
}

func ToCallRecord(info unisatclient.CallInfo) *model.CallRecord {
	rec := &model.CallRecord{
		CallId:     info.ID,
		Method:     info.Method,
		Route:      info.Route,
		StatusCode: info.StatusCode,
		Attempts:   info.Attempts,
		DurationMs: info.Duration.Milliseconds(),
	}
	if info.Err != nil {
		rec.Error = info.Err.Error()
	}
	return rec
}
