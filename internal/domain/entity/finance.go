package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// DefaultFinanceStaleAfter is how old a finance feed may get before the display flags it.
const DefaultFinanceStaleAfter = time.Hour

// FinanceItem is one ticker row of the finance feed.
type FinanceItem struct {
	Name     string  `json:"name"`
	Symbol   string  `json:"symbol"`
	Price    float64 `json:"price"`
	Change   float64 `json:"change"`
	Currency string  `json:"currency"`
	Status   string  `json:"status,omitempty"`
}

// FinanceMeta describes when and how the feed was produced.
type FinanceMeta struct {
	UpdatedAt time.Time `json:"updated_at"`
	Status    string    `json:"status"`
	Source    string    `json:"source"`
}

// FinanceFeed is the finance.json document consumed by the display.
// Meta is nil for the legacy bare-array format.
type FinanceFeed struct {
	Meta  *FinanceMeta  `json:"meta,omitempty"`
	Items []FinanceItem `json:"data"`
}

// ParseFinanceFeed decodes both the {meta, data} document and the legacy array.
func ParseFinanceFeed(data []byte) (*FinanceFeed, error) {
	var items []FinanceItem
	if err := json.Unmarshal(data, &items); err == nil {
		return &FinanceFeed{Items: items}, nil
	}

	var feed FinanceFeed
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("decode finance feed: %w", err)
	}
	if feed.Items == nil {
		return nil, fmt.Errorf("decode finance feed: missing data array")
	}
	return &feed, nil
}

// IsStale reports whether the feed is older than maxAge at now.
// Feeds without metadata are never stale since their age is unknown.
func (f *FinanceFeed) IsStale(now time.Time, maxAge time.Duration) bool {
	if f.Meta == nil || f.Meta.UpdatedAt.IsZero() {
		return false
	}
	return now.Sub(f.Meta.UpdatedAt) > maxAge
}
