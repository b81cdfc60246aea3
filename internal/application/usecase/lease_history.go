package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/bnema/kioskclock/internal/domain/entity"
	"github.com/bnema/kioskclock/internal/domain/repository"
	"github.com/bnema/kioskclock/internal/logging"
)

const defaultHistoryLimit = 20

// ListLeaseHistoryUseCase returns recent wake-lock leases.
type ListLeaseHistoryUseCase struct {
	repo repository.LeaseHistoryRepository
}

// NewListLeaseHistoryUseCase creates a new ListLeaseHistoryUseCase.
func NewListLeaseHistoryUseCase(repo repository.LeaseHistoryRepository) *ListLeaseHistoryUseCase {
	return &ListLeaseHistoryUseCase{repo: repo}
}

// ListLeaseHistoryOutput holds the leases and aggregate figures.
type ListLeaseHistoryOutput struct {
	Records []*entity.LeaseRecord
	// TotalHeld sums the durations of the returned leases.
	TotalHeld time.Duration
	Revoked   int
}

// Execute lists up to limit leases, newest first. limit <= 0 uses the default.
func (uc *ListLeaseHistoryUseCase) Execute(ctx context.Context, limit int, now time.Time) (*ListLeaseHistoryOutput, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	records, err := uc.repo.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list lease history: %w", err)
	}

	out := &ListLeaseHistoryOutput{Records: records}
	for _, r := range records {
		out.TotalHeld += r.Duration(now)
		if r.EndReason == entity.LeaseEndRevoked {
			out.Revoked++
		}
	}
	return out, nil
}

// PruneLeaseHistoryUseCase deletes ended leases past the retention window.
type PruneLeaseHistoryUseCase struct {
	repo  repository.LeaseHistoryRepository
	clock clock.Clock
}

// NewPruneLeaseHistoryUseCase creates a new PruneLeaseHistoryUseCase.
func NewPruneLeaseHistoryUseCase(repo repository.LeaseHistoryRepository, clk clock.Clock) *PruneLeaseHistoryUseCase {
	if clk == nil {
		clk = clock.New()
	}
	return &PruneLeaseHistoryUseCase{repo: repo, clock: clk}
}

// Execute removes leases that ended more than retentionDays ago.
// A retentionDays of 0 or less disables pruning.
func (uc *PruneLeaseHistoryUseCase) Execute(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoff := uc.clock.Now().AddDate(0, 0, -retentionDays)
	deleted, err := uc.repo.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune lease history: %w", err)
	}

	if deleted > 0 {
		logging.FromContext(ctx).Info().
			Int64("deleted", deleted).
			Int("retention_days", retentionDays).
			Msg("pruned lease history")
	}
	return deleted, nil
}
