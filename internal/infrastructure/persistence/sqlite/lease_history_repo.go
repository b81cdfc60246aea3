package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/kioskclock/internal/domain/entity"
	"github.com/bnema/kioskclock/internal/domain/repository"
	"github.com/bnema/kioskclock/internal/logging"
)

// Timestamps are stored as Unix milliseconds.

const (
	insertLease = `INSERT INTO lease_history (id, backend, cause, acquired_at, ended_at, end_reason)
VALUES (?, ?, ?, ?, ?, ?)`
	markLeaseEnded = `UPDATE lease_history SET ended_at = ?, end_reason = ?
WHERE id = ? AND ended_at IS NULL`
	selectRecentLeases = `SELECT id, backend, cause, acquired_at, ended_at, end_reason
FROM lease_history ORDER BY acquired_at DESC, rowid DESC LIMIT ?`
	deleteEndedBefore = `DELETE FROM lease_history WHERE ended_at IS NOT NULL AND ended_at < ?`
)

type leaseHistoryRepo struct {
	db *sql.DB
}

// NewLeaseHistoryRepository creates an SQLite-backed lease history repository.
func NewLeaseHistoryRepository(db *sql.DB) repository.LeaseHistoryRepository {
	return &leaseHistoryRepo{db: db}
}

func (r *leaseHistoryRepo) Save(ctx context.Context, record *entity.LeaseRecord) error {
	logging.FromContext(ctx).Debug().
		Str("lease_id", record.ID).
		Str("backend", record.Backend).
		Msg("saving lease record")

	var endedAt sql.NullInt64
	var reason sql.NullString
	if record.EndedAt != nil {
		endedAt = sql.NullInt64{Int64: record.EndedAt.UnixMilli(), Valid: true}
		reason = sql.NullString{String: string(record.EndReason), Valid: record.EndReason != ""}
	}

	_, err := r.db.ExecContext(ctx, insertLease,
		record.ID, record.Backend, record.Trigger, record.AcquiredAt.UnixMilli(), endedAt, reason)
	if err != nil {
		return fmt.Errorf("save lease %s: %w", record.ID, err)
	}
	return nil
}

func (r *leaseHistoryRepo) MarkEnded(ctx context.Context, id string, endedAt time.Time, reason entity.LeaseEndReason) error {
	if _, err := r.db.ExecContext(ctx, markLeaseEnded, endedAt.UnixMilli(), string(reason), id); err != nil {
		return fmt.Errorf("mark lease %s ended: %w", id, err)
	}
	return nil
}

func (r *leaseHistoryRepo) GetRecent(ctx context.Context, limit int) ([]*entity.LeaseRecord, error) {
	rows, err := r.db.QueryContext(ctx, selectRecentLeases, limit)
	if err != nil {
		return nil, fmt.Errorf("query leases: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []*entity.LeaseRecord{}
	for rows.Next() {
		var (
			rec        entity.LeaseRecord
			acquiredAt int64
			endedAt    sql.NullInt64
			reason     sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.Backend, &rec.Trigger, &acquiredAt, &endedAt, &reason); err != nil {
			return nil, fmt.Errorf("scan lease: %w", err)
		}
		rec.AcquiredAt = time.UnixMilli(acquiredAt)
		if endedAt.Valid {
			t := time.UnixMilli(endedAt.Int64)
			rec.EndedAt = &t
		}
		if reason.Valid {
			rec.EndReason = entity.LeaseEndReason(reason.String)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leases: %w", err)
	}
	return records, nil
}

func (r *leaseHistoryRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteEndedBefore, cutoff.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("delete leases: %w", err)
	}
	return res.RowsAffected()
}
