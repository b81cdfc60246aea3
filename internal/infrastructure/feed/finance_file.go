// Package feed reads the data documents the kiosk page renders.
package feed

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/kioskclock/internal/application/port"
	"github.com/bnema/kioskclock/internal/domain/entity"
	"github.com/bnema/kioskclock/internal/logging"
)

var _ port.FinanceFeedSource = (*FinanceFile)(nil)

// FinanceFile loads finance.json from disk. The file is written by an
// external fetcher; it is only read here.
type FinanceFile struct {
	path string
}

// NewFinanceFile creates a source for path.
func NewFinanceFile(path string) *FinanceFile {
	return &FinanceFile{path: path}
}

// Location returns the file path.
func (f *FinanceFile) Location() string { return f.path }

// Load reads and decodes the feed.
func (f *FinanceFile) Load(ctx context.Context) (*entity.FinanceFeed, error) {
	if f.path == "" {
		return nil, fmt.Errorf("finance feed: no path configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("finance feed: %w", err)
	}

	feed, err := entity.ParseFinanceFeed(data)
	if err != nil {
		return nil, fmt.Errorf("finance feed %s: %w", f.path, err)
	}

	logging.FromContext(ctx).Debug().
		Str("path", f.path).
		Int("items", len(feed.Items)).
		Msg("finance feed loaded")

	return feed, nil
}
