package idle

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevocation_FiresListenerOnce(t *testing.T) {
	var r revocation
	var calls atomic.Int32
	done := make(chan struct{}, 2)

	r.OnRevoked(func() {
		calls.Add(1)
		done <- struct{}{}
	})

	assert.False(t, r.Revoked())
	assert.True(t, r.revoke())
	assert.False(t, r.revoke())
	assert.True(t, r.Revoked())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listener not called")
	}
	assert.Never(t, func() bool { return calls.Load() > 1 }, 50*time.Millisecond, 10*time.Millisecond)
}

func TestRevocation_LateListenerRunsPromptly(t *testing.T) {
	var r revocation
	r.revoke()

	done := make(chan struct{})
	r.OnRevoked(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listener registered after revocation not called")
	}
}

func TestRevocation_DetachSuppressesListener(t *testing.T) {
	var r revocation
	var called atomic.Bool

	detach := r.OnRevoked(func() { called.Store(true) })
	detach()
	r.revoke()

	assert.Never(t, called.Load, 50*time.Millisecond, 10*time.Millisecond)
}

func TestRevocation_StaleDetachKeepsNewListener(t *testing.T) {
	var r revocation
	done := make(chan struct{})

	oldDetach := r.OnRevoked(func() {})
	r.OnRevoked(func() { close(done) })
	oldDetach()
	r.revoke()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("replacement listener was detached by the stale handle")
	}
}

func TestRevocation_RetireIsSilent(t *testing.T) {
	var r revocation
	var called atomic.Bool
	r.OnRevoked(func() { called.Store(true) })

	assert.True(t, r.retire())
	assert.False(t, r.retire())
	assert.False(t, r.revoke(), "revoke after End is a no-op")
	assert.True(t, r.Revoked())

	assert.Never(t, called.Load, 50*time.Millisecond, 10*time.Millisecond)
}
