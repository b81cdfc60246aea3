package idle

import "sync"

// revocation implements the single-listener, fire-once part of port.Lease.
type revocation struct {
	mu       sync.Mutex
	revoked  bool
	listener func()
	token    uint64
}

func (r *revocation) Revoked() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.revoked
}

func (r *revocation) OnRevoked(fn func()) func() {
	r.mu.Lock()
	if r.revoked {
		r.mu.Unlock()
		go fn()
		return func() {}
	}
	r.token++
	token := r.token
	r.listener = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		if r.token == token {
			r.listener = nil
		}
		r.mu.Unlock()
	}
}

// revoke marks the lease revoked and fires the listener once.
// It returns false when the lease was already revoked or ended.
func (r *revocation) revoke() bool {
	r.mu.Lock()
	if r.revoked {
		r.mu.Unlock()
		return false
	}
	r.revoked = true
	fn := r.listener
	r.listener = nil
	r.mu.Unlock()

	if fn != nil {
		go fn()
	}
	return true
}

// retire marks the lease gone without notifying anyone. Used by End.
func (r *revocation) retire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.revoked {
		return false
	}
	r.revoked = true
	r.listener = nil
	return true
}
