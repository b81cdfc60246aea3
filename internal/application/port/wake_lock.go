package port

import (
	"context"
	"errors"

	"github.com/bnema/kioskclock/internal/domain/entity"
)

var (
	// ErrUnsupported means the platform has no lease-based sleep prevention.
	ErrUnsupported = errors.New("wake lock unsupported")

	// ErrNotAllowed means the platform refused the request, typically because
	// it did not originate from a direct user action. A later attempt may succeed.
	ErrNotAllowed = errors.New("wake lock not allowed")
)

// WakeLockPlatform grants leases that keep the display awake.
type WakeLockPlatform interface {
	// Name identifies the backend in logs and history.
	Name() string

	// Supported reports whether this runtime can grant leases at all.
	Supported(ctx context.Context) bool

	// Request asks for a lease of the given kind.
	// Fails with ErrUnsupported or ErrNotAllowed (possibly wrapped), or a platform error.
	Request(ctx context.Context, kind entity.LeaseKind) (Lease, error)
}

// Lease is one granted platform lease.
type Lease interface {
	// Backend names the platform that granted the lease.
	Backend() string

	// Revoked reports whether the platform has ended the lease on its own.
	Revoked() bool

	// OnRevoked registers fn to run once when the platform revokes the lease.
	// fn runs on its own goroutine, promptly if the lease is already revoked.
	// The returned detach stops fn from running. Only one listener is kept;
	// registering again replaces it.
	OnRevoked(fn func()) (detach func())

	// End releases the lease. Ending an already revoked lease is a no-op.
	End(ctx context.Context) error
}

// TriggerHandler receives host events that drive the keep-alive manager.
type TriggerHandler interface {
	HandleTrigger(ctx context.Context, trigger entity.Trigger)
}
