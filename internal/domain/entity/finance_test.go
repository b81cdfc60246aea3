package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFinanceFeed_WithMeta(t *testing.T) {
	doc := `{
  "meta": {"updated_at": "2026-03-01T09:00:00+09:00", "status": "partial_success", "source": "FinanceDataReader"},
  "data": [
    {"name": "KOSPI", "symbol": "^KS11", "price": 2650.5, "change": -0.42, "currency": "KRW", "status": "success"},
    {"name": "Gold", "symbol": "GC=F", "price": 0, "change": 0, "currency": "USD", "status": "failed"}
  ]
}`
	feed, err := ParseFinanceFeed([]byte(doc))
	require.NoError(t, err)
	require.NotNil(t, feed.Meta)
	assert.Equal(t, "partial_success", feed.Meta.Status)
	require.Len(t, feed.Items, 2)
	assert.Equal(t, "^KS11", feed.Items[0].Symbol)
	assert.InDelta(t, -0.42, feed.Items[0].Change, 1e-9)
	assert.Equal(t, "failed", feed.Items[1].Status)
}

func TestParseFinanceFeed_LegacyArray(t *testing.T) {
	feed, err := ParseFinanceFeed([]byte(`[{"name":"Bitcoin","symbol":"BTC-USD","price":64000,"change":1.5,"currency":"USD"}]`))
	require.NoError(t, err)
	assert.Nil(t, feed.Meta)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "Bitcoin", feed.Items[0].Name)
}

func TestParseFinanceFeed_Invalid(t *testing.T) {
	_, err := ParseFinanceFeed([]byte(`{"meta": {}}`))
	assert.Error(t, err)

	_, err = ParseFinanceFeed([]byte(`not json`))
	assert.Error(t, err)
}

func TestFinanceFeed_IsStale(t *testing.T) {
	updated := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	feed := &FinanceFeed{Meta: &FinanceMeta{UpdatedAt: updated}}

	assert.False(t, feed.IsStale(updated.Add(59*time.Minute), DefaultFinanceStaleAfter))
	assert.False(t, feed.IsStale(updated.Add(time.Hour), DefaultFinanceStaleAfter))
	assert.True(t, feed.IsStale(updated.Add(61*time.Minute), DefaultFinanceStaleAfter))

	legacy := &FinanceFeed{}
	assert.False(t, legacy.IsStale(updated.Add(24*time.Hour), DefaultFinanceStaleAfter))
}
