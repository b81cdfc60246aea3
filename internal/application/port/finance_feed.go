package port

import (
	"context"

	"github.com/bnema/kioskclock/internal/domain/entity"
)

// FinanceFeedSource loads the finance document the display renders.
type FinanceFeedSource interface {
	// Location describes where the feed is read from (path or URL).
	Location() string

	Load(ctx context.Context) (*entity.FinanceFeed, error)
}
