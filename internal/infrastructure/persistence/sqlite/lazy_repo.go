package sqlite

import (
	"context"
	"time"

	"github.com/bnema/kioskclock/internal/domain/entity"
	"github.com/bnema/kioskclock/internal/domain/repository"
)

type lazyLeaseHistoryRepo struct {
	lazy *LazyDB
}

// NewLazyLeaseHistoryRepository returns a repository that opens the database
// on its first call.
func NewLazyLeaseHistoryRepository(lazy *LazyDB) repository.LeaseHistoryRepository {
	return &lazyLeaseHistoryRepo{lazy: lazy}
}

func (r *lazyLeaseHistoryRepo) repo(ctx context.Context) (repository.LeaseHistoryRepository, error) {
	db, err := r.lazy.DB(ctx)
	if err != nil {
		return nil, err
	}
	return NewLeaseHistoryRepository(db), nil
}

func (r *lazyLeaseHistoryRepo) Save(ctx context.Context, record *entity.LeaseRecord) error {
	repo, err := r.repo(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, record)
}

func (r *lazyLeaseHistoryRepo) MarkEnded(ctx context.Context, id string, endedAt time.Time, reason entity.LeaseEndReason) error {
	repo, err := r.repo(ctx)
	if err != nil {
		return err
	}
	return repo.MarkEnded(ctx, id, endedAt, reason)
}

func (r *lazyLeaseHistoryRepo) GetRecent(ctx context.Context, limit int) ([]*entity.LeaseRecord, error) {
	repo, err := r.repo(ctx)
	if err != nil {
		return nil, err
	}
	return repo.GetRecent(ctx, limit)
}

func (r *lazyLeaseHistoryRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	repo, err := r.repo(ctx)
	if err != nil {
		return 0, err
	}
	return repo.DeleteBefore(ctx, cutoff)
}
