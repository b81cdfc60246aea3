package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"

	"github.com/bnema/kioskclock/internal/domain/entity"
)

// LeaseTableColumns returns columns for the lease history table.
func LeaseTableColumns() []table.Column {
	return []table.Column{
		{Title: "Acquired", Width: 20},
		{Title: "Backend", Width: 12},
		{Title: "Trigger", Width: 12},
		{Title: "Held", Width: 10},
		{Title: "Ended", Width: 10},
	}
}

// LeaseRow converts a lease record to a table row. Active leases are
// measured up to now.
func LeaseRow(r *entity.LeaseRecord, now time.Time) table.Row {
	ended := "active"
	if !r.Active() {
		ended = string(r.EndReason)
	}
	return table.Row{
		r.AcquiredAt.Local().Format("2006-01-02 15:04:05"),
		r.Backend,
		r.Trigger,
		FormatDuration(r.Duration(now)),
		ended,
	}
}

// FormatDuration renders a duration compactly: 45s, 12m, 3h05m, 2d4h.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	default:
		days := int(d.Hours()) / 24
		return fmt.Sprintf("%dd%dh", days, int(d.Hours())%24)
	}
}
