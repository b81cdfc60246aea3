package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/bnema/kioskclock/internal/cli/styles"
	"github.com/bnema/kioskclock/internal/infrastructure/httpapi"
)

// StatusClient queries a running daemon over its local HTTP API.
type StatusClient struct {
	baseURL string
	http    *http.Client
}

// NewStatusClient creates a client for the daemon listening on listen.
// Wildcard hosts are dialed on loopback.
func NewStatusClient(listen string, timeout time.Duration) *StatusClient {
	return &StatusClient{
		baseURL: "http://" + dialAddr(listen),
		http:    &http.Client{Timeout: timeout},
	}
}

// Addr returns the base URL the client talks to.
func (c *StatusClient) Addr() string {
	return c.baseURL
}

// WakeLock fetches the daemon's current wake-lock state.
func (c *StatusClient) WakeLock(ctx context.Context) (styles.WakeLockView, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/wakelock", http.NoBody)
	if err != nil {
		return styles.WakeLockView{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return styles.WakeLockView{}, fmt.Errorf("query daemon: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return styles.WakeLockView{}, fmt.Errorf("query daemon: unexpected status %s", resp.Status)
	}

	var body httpapi.WakeLockResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return styles.WakeLockView{}, fmt.Errorf("decode wake lock status: %w", err)
	}

	return styles.WakeLockView{
		Held:       body.Held,
		Pending:    body.Pending,
		Backend:    body.Backend,
		AcquiredAt: body.AcquiredAt,
	}, nil
}

func dialAddr(listen string) string {
	host, port, err := net.SplitHostPort(listen)
	if err != nil {
		return listen
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}
