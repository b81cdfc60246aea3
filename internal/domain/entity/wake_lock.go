package entity

import (
	"fmt"
	"time"
)

// LeaseKind identifies what a platform lease keeps alive.
type LeaseKind string

// LeaseKindScreen keeps the display from dimming or sleeping.
const LeaseKindScreen LeaseKind = "screen"

// Trigger is an external event that may cause the keep-alive manager to act.
type Trigger int

const (
	TriggerMount Trigger = iota
	TriggerVisible
	TriggerHidden
	TriggerInteraction
	TriggerUnmount
)

func (t Trigger) String() string {
	switch t {
	case TriggerMount:
		return "mount"
	case TriggerVisible:
		return "visible"
	case TriggerHidden:
		return "hidden"
	case TriggerInteraction:
		return "interaction"
	case TriggerUnmount:
		return "unmount"
	default:
		return fmt.Sprintf("trigger(%d)", int(t))
	}
}

// ParseVisibility maps a page visibility state to its trigger.
func ParseVisibility(state string) (Trigger, error) {
	switch state {
	case "visible":
		return TriggerVisible, nil
	case "hidden":
		return TriggerHidden, nil
	default:
		return 0, fmt.Errorf("unknown visibility state %q", state)
	}
}

// LeaseEndReason records how a lease stopped being held. Superseded marks a
// grant that resolved after the display was released.
type LeaseEndReason string

const (
	LeaseEndReleased   LeaseEndReason = "released"
	LeaseEndRevoked    LeaseEndReason = "revoked"
	LeaseEndDuplicate  LeaseEndReason = "duplicate"
	LeaseEndSuperseded LeaseEndReason = "superseded"
)

// LeaseRecord is one granted lease as kept in the history store.
type LeaseRecord struct {
	ID         string
	Backend    string
	Trigger    string
	AcquiredAt time.Time
	EndedAt    *time.Time
	EndReason  LeaseEndReason
}

// Active reports whether the lease has not ended yet.
func (r *LeaseRecord) Active() bool {
	return r.EndedAt == nil
}

// Duration returns how long the lease was held, measured up to now when still active.
func (r *LeaseRecord) Duration(now time.Time) time.Duration {
	if r.EndedAt != nil {
		return r.EndedAt.Sub(r.AcquiredAt)
	}
	return now.Sub(r.AcquiredAt)
}
