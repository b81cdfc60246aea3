package repository

import (
	"context"
	"time"

	"github.com/bnema/kioskclock/internal/domain/entity"
)

//go:generate mockgen -source=lease_history.go -destination=mocks/mock_lease_history.go -package=mocks

// LeaseHistoryRepository persists granted wake-lock leases and how they ended.
type LeaseHistoryRepository interface {
	// Save stores a newly granted lease.
	Save(ctx context.Context, record *entity.LeaseRecord) error

	// MarkEnded sets the end time and reason of a lease.
	// Ending an unknown or already ended lease is not an error.
	MarkEnded(ctx context.Context, id string, endedAt time.Time, reason entity.LeaseEndReason) error

	// GetRecent returns up to limit leases, newest first.
	GetRecent(ctx context.Context, limit int) ([]*entity.LeaseRecord, error)

	// DeleteBefore removes ended leases that ended before cutoff.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
