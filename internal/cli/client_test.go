package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kioskclock/internal/infrastructure/httpapi"
)

func TestDialAddr(t *testing.T) {
	tests := []struct {
		listen string
		want   string
	}{
		{"127.0.0.1:7788", "127.0.0.1:7788"},
		{"0.0.0.0:7788", "127.0.0.1:7788"},
		{":7788", "127.0.0.1:7788"},
		{"[::]:7788", "127.0.0.1:7788"},
		{"kiosk.local:80", "kiosk.local:80"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dialAddr(tt.listen), tt.listen)
	}
}

func TestStatusClient_WakeLock(t *testing.T) {
	acquired := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/wakelock", r.URL.Path)
		_ = json.NewEncoder(w).Encode(httpapi.WakeLockResponse{Held: true, Backend: "portal", AcquiredAt: &acquired})
	}))
	defer srv.Close()

	c := NewStatusClient(strings.TrimPrefix(srv.URL, "http://"), time.Second)
	view, err := c.WakeLock(context.Background())
	require.NoError(t, err)
	assert.True(t, view.Held)
	assert.Equal(t, "portal", view.Backend)
	require.NotNil(t, view.AcquiredAt)
	assert.True(t, acquired.Equal(*view.AcquiredAt))
}

func TestStatusClient_WakeLockBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewStatusClient(strings.TrimPrefix(srv.URL, "http://"), time.Second)
	_, err := c.WakeLock(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}
