package idle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/kioskclock/internal/application/port"
	"github.com/bnema/kioskclock/internal/domain/entity"
	"github.com/bnema/kioskclock/internal/logging"
)

var _ port.WakeLockPlatform = (*ChainPlatform)(nil)

// ChainPlatform tries backends in order and uses the first that grants a lease.
type ChainPlatform struct {
	backends []port.WakeLockPlatform
}

// NewChainPlatform creates a chain over backends, in preference order.
func NewChainPlatform(backends ...port.WakeLockPlatform) *ChainPlatform {
	return &ChainPlatform{backends: backends}
}

// Name lists the chained backends.
func (c *ChainPlatform) Name() string {
	names := make([]string, 0, len(c.backends))
	for _, b := range c.backends {
		names = append(names, b.Name())
	}
	return strings.Join(names, ",")
}

// Backends returns the chained platforms.
func (c *ChainPlatform) Backends() []port.WakeLockPlatform {
	return c.backends
}

// Supported reports whether any backend is supported.
func (c *ChainPlatform) Supported(ctx context.Context) bool {
	for _, b := range c.backends {
		if b.Supported(ctx) {
			return true
		}
	}
	return false
}

// Request asks each backend in turn. Backends report their own absence as
// port.ErrUnsupported, so no extra Supported round trip is made here. When
// all fail, a denial wins over other errors so the manager keeps waiting for
// a user gesture.
func (c *ChainPlatform) Request(ctx context.Context, kind entity.LeaseKind) (port.Lease, error) {
	log := logging.FromContext(ctx)

	var denied, lastErr error
	for _, b := range c.backends {
		lease, err := b.Request(ctx, kind)
		if err == nil {
			return lease, nil
		}

		log.Debug().Err(err).Str("backend", b.Name()).Msg("idle: backend refused lease, trying next")
		switch {
		case errors.Is(err, port.ErrNotAllowed):
			if denied == nil {
				denied = err
			}
		case errors.Is(err, port.ErrUnsupported):
		default:
			lastErr = err
		}
	}

	switch {
	case denied != nil:
		return nil, denied
	case lastErr != nil:
		return nil, lastErr
	default:
		return nil, fmt.Errorf("%w: no backend available (%s)", port.ErrUnsupported, c.Name())
	}
}
