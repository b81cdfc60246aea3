// Package bootstrap wires the kioskclock daemon together.
package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/bnema/kioskclock/internal/logging"
)

// StartupTimer tracks how long each startup phase took.
// Thread-safe for use with parallel initialization.
type StartupTimer struct {
	clock  clock.Clock
	start  time.Time
	phases map[string]time.Duration
	order  []string // insertion order for logging
	last   time.Time
	mu     sync.Mutex
}

// NewStartupTimer creates a timer starting at clk.Now(). A nil clk uses the wall clock.
func NewStartupTimer(clk clock.Clock) *StartupTimer {
	if clk == nil {
		clk = clock.New()
	}
	now := clk.Now()
	return &StartupTimer{
		clock:  clk,
		start:  now,
		phases: make(map[string]time.Duration),
		last:   now,
	}
}

// Mark records the duration since the last mark (or start) for the given phase.
func (t *StartupTimer) Mark(phase string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	if _, seen := t.phases[phase]; !seen {
		t.order = append(t.order, phase)
	}
	t.phases[phase] = now.Sub(t.last)
	t.last = now
}

// Phase returns the recorded duration of phase.
func (t *StartupTimer) Phase(phase string) (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	d, ok := t.phases[phase]
	return d, ok
}

// Total returns the time elapsed since the timer was created.
func (t *StartupTimer) Total() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.clock.Since(t.start)
}

// Log writes all phases at debug level.
func (t *StartupTimer) Log(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).Debug().Dur("total", t.clock.Since(t.start))
	for _, phase := range t.order {
		event = event.Dur(phase, t.phases[phase])
	}
	event.Msg("startup timing")
}
