package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/bnema/kioskclock/internal/application/port"
	"github.com/bnema/kioskclock/internal/domain/entity"
	"github.com/bnema/kioskclock/internal/domain/repository"
	"github.com/bnema/kioskclock/internal/logging"
)

// WakeLockStatus is a read-only view of the keep-alive state.
type WakeLockStatus struct {
	Held       bool
	Pending    bool
	Backend    string
	AcquiredAt time.Time
}

// lockState is the single lease slot. held implies handle != nil.
type lockState struct {
	handle     port.Lease
	held       bool
	detach     func()
	recordID   string
	acquiredAt time.Time
}

// KeepAwakeUseCase keeps at most one screen wake-lock lease while the display
// is shown. Every platform failure degrades to "screen may sleep"; nothing is
// returned to callers, who observe the outcome through IsHeld.
type KeepAwakeUseCase struct {
	platform port.WakeLockPlatform
	history  repository.LeaseHistoryRepository
	clock    clock.Clock

	mu      sync.Mutex
	state   lockState
	pending bool
	// epoch is bumped by Release so a request that resolves afterwards is ended.
	epoch uint64
	// generation identifies the stored lease for revocation callbacks.
	generation uint64
}

// NewKeepAwakeUseCase creates the manager. history may be nil.
func NewKeepAwakeUseCase(
	platform port.WakeLockPlatform,
	history repository.LeaseHistoryRepository,
	clk clock.Clock,
) *KeepAwakeUseCase {
	if clk == nil {
		clk = clock.New()
	}
	return &KeepAwakeUseCase{
		platform: platform,
		history:  history,
		clock:    clk,
	}
}

// Acquire requests a lease unless one is held or already being requested.
func (uc *KeepAwakeUseCase) Acquire(ctx context.Context) {
	uc.acquire(ctx, "manual")
}

// HandleTrigger maps a host event to the matching keep-alive action.
func (uc *KeepAwakeUseCase) HandleTrigger(ctx context.Context, trigger entity.Trigger) {
	ctx = logging.WithTrigger(ctx, trigger.String())

	switch trigger {
	case entity.TriggerMount, entity.TriggerVisible, entity.TriggerInteraction:
		uc.acquire(ctx, trigger.String())
	case entity.TriggerUnmount:
		uc.Release(ctx)
	default:
		logging.FromContext(ctx).Trace().Msg("wake lock: trigger ignored")
	}
}

// IsHeld reports whether a non-revoked lease is currently stored.
func (uc *KeepAwakeUseCase) IsHeld() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state.held
}

// Status returns a snapshot of the current state.
func (uc *KeepAwakeUseCase) Status() WakeLockStatus {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	status := WakeLockStatus{
		Held:    uc.state.held,
		Pending: uc.pending,
	}
	if uc.state.handle != nil {
		status.Backend = uc.state.handle.Backend()
		status.AcquiredAt = uc.state.acquiredAt
	}
	return status
}

func (uc *KeepAwakeUseCase) acquire(ctx context.Context, trigger string) {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	if uc.state.held || uc.pending {
		pending := uc.pending
		uc.mu.Unlock()
		log.Trace().Bool("pending", pending).Msg("wake lock: already held, skipping request")
		return
	}
	uc.pending = true
	epoch := uc.epoch
	uc.mu.Unlock()

	if !uc.platform.Supported(ctx) {
		uc.clearPending()
		log.Warn().Str("backend", uc.platform.Name()).Msg("wake lock: not supported, screen may sleep")
		return
	}

	lease, err := uc.platform.Request(ctx, entity.LeaseKindScreen)
	if err != nil {
		uc.clearPending()
		logRequestError(ctx, uc.platform.Name(), err)
		return
	}

	uc.mu.Lock()
	if reason, drop := uc.rejectLocked(lease, epoch); drop {
		uc.pending = false
		uc.mu.Unlock()
		if uc.dropLease(ctx, lease, reason) {
			now := uc.clock.Now()
			uc.recordGranted(context.WithoutCancel(ctx), &entity.LeaseRecord{
				ID:         uuid.NewString(),
				Backend:    lease.Backend(),
				Trigger:    trigger,
				AcquiredAt: now,
				EndedAt:    &now,
				EndReason:  reason,
			})
		}
		return
	}
	uc.mu.Unlock()

	// Revocation may arrive long after the triggering request is gone.
	bgCtx := context.WithoutCancel(ctx)
	now := uc.clock.Now()
	recordID := uuid.NewString()

	// The row is written while the slot is still pending, so every
	// MarkEnded for this lease lands on an existing row.
	uc.recordGranted(bgCtx, &entity.LeaseRecord{
		ID:         recordID,
		Backend:    lease.Backend(),
		Trigger:    trigger,
		AcquiredAt: now,
	})

	uc.mu.Lock()
	uc.pending = false
	if reason, drop := uc.rejectLocked(lease, epoch); drop {
		uc.mu.Unlock()
		uc.dropLease(ctx, lease, reason)
		uc.recordEnded(bgCtx, recordID, reason)
		return
	}
	uc.generation++
	gen := uc.generation
	uc.state = lockState{
		handle:     lease,
		held:       true,
		recordID:   recordID,
		acquiredAt: now,
	}
	uc.mu.Unlock()

	detach := lease.OnRevoked(func() { uc.handleRevoked(bgCtx, gen) })

	uc.mu.Lock()
	if uc.generation != gen || uc.state.handle != lease {
		uc.mu.Unlock()
		if detach != nil {
			detach()
		}
		return
	}
	uc.state.detach = detach
	uc.mu.Unlock()

	log.Info().Str("backend", lease.Backend()).Str("lease_id", recordID).Msg("wake lock: active")
}

// rejectLocked reports whether a freshly granted lease must not be stored.
// uc.mu must be held.
func (uc *KeepAwakeUseCase) rejectLocked(lease port.Lease, epoch uint64) (entity.LeaseEndReason, bool) {
	switch {
	case lease.Revoked():
		return entity.LeaseEndRevoked, true
	case uc.epoch != epoch:
		return entity.LeaseEndSuperseded, true
	case uc.state.handle != nil:
		return entity.LeaseEndDuplicate, true
	default:
		return "", false
	}
}

// Release ends the stored lease, if any. It also invalidates any request
// still in flight so its result is ended instead of stored.
func (uc *KeepAwakeUseCase) Release(ctx context.Context) {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	uc.epoch++
	st := uc.state
	uc.state = lockState{}
	uc.mu.Unlock()

	if st.handle == nil {
		return
	}

	if st.detach != nil {
		st.detach()
	}
	if err := st.handle.End(ctx); err != nil {
		log.Warn().Err(err).Str("backend", st.handle.Backend()).Msg("wake lock: failed to end lease")
	}

	log.Info().Str("lease_id", st.recordID).Msg("wake lock: released")
	uc.recordEnded(context.WithoutCancel(ctx), st.recordID, entity.LeaseEndReleased)
}

func (uc *KeepAwakeUseCase) handleRevoked(ctx context.Context, gen uint64) {
	uc.mu.Lock()
	if uc.generation != gen || uc.state.handle == nil {
		uc.mu.Unlock()
		return
	}
	st := uc.state
	uc.state = lockState{}
	uc.mu.Unlock()

	logging.FromContext(ctx).Info().
		Str("backend", st.handle.Backend()).
		Str("lease_id", st.recordID).
		Msg("wake lock: revoked by platform, waiting for next trigger")
	uc.recordEnded(ctx, st.recordID, entity.LeaseEndRevoked)
}

// dropLease ends a lease that must not be stored. It returns false when the
// platform already revoked it and there was nothing to end.
func (uc *KeepAwakeUseCase) dropLease(ctx context.Context, lease port.Lease, reason entity.LeaseEndReason) bool {
	log := logging.FromContext(ctx)

	if reason == entity.LeaseEndRevoked {
		log.Debug().Str("backend", lease.Backend()).Msg("wake lock: lease revoked before it was stored")
		return false
	}

	log.Debug().Str("backend", lease.Backend()).Str("reason", string(reason)).Msg("wake lock: ending unstored lease")
	if err := lease.End(ctx); err != nil {
		log.Warn().Err(err).Str("backend", lease.Backend()).Msg("wake lock: failed to end unstored lease")
	}
	return true
}

func (uc *KeepAwakeUseCase) clearPending() {
	uc.mu.Lock()
	uc.pending = false
	uc.mu.Unlock()
}

func (uc *KeepAwakeUseCase) recordGranted(ctx context.Context, record *entity.LeaseRecord) {
	if uc.history == nil {
		return
	}
	if err := uc.history.Save(ctx, record); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("lease_id", record.ID).Msg("wake lock: failed to record lease")
	}
}

func (uc *KeepAwakeUseCase) recordEnded(ctx context.Context, id string, reason entity.LeaseEndReason) {
	if uc.history == nil || id == "" {
		return
	}
	if err := uc.history.MarkEnded(ctx, id, uc.clock.Now(), reason); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("lease_id", id).Msg("wake lock: failed to record lease end")
	}
}

func logRequestError(ctx context.Context, backend string, err error) {
	log := logging.FromContext(ctx)

	switch {
	case errors.Is(err, port.ErrUnsupported):
		log.Warn().Err(err).Str("backend", backend).Msg("wake lock: not supported, screen may sleep")
	case errors.Is(err, port.ErrNotAllowed):
		// Expected when the request did not come from a user gesture.
		log.Info().Err(err).Str("backend", backend).Msg("wake lock: request not allowed, retrying on next trigger")
	default:
		log.Warn().Err(err).Str("backend", backend).Msg("wake lock: request failed, screen may sleep")
	}
}
