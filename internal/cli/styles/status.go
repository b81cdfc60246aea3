package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// WakeLockView is what the status renderer needs from the daemon.
type WakeLockView struct {
	Held       bool       `json:"held"`
	Pending    bool       `json:"pending"`
	Backend    string     `json:"backend,omitempty"`
	AcquiredAt *time.Time `json:"acquired_at,omitempty"`
}

// StatusRenderer renders the daemon's wake-lock state.
type StatusRenderer struct {
	theme *Theme
}

// NewStatusRenderer creates a new StatusRenderer.
func NewStatusRenderer(theme *Theme) *StatusRenderer {
	return &StatusRenderer{theme: theme}
}

// Render renders the state as a single line followed by the lease age when held.
func (r *StatusRenderer) Render(v WakeLockView, now time.Time) string {
	icon := IconMoon
	style := r.theme.Subtle
	label := "Released"
	switch {
	case v.Held:
		icon = IconSun
		style = r.theme.SuccessStyle
		label = "Held"
	case v.Pending:
		icon = IconClock
		style = r.theme.WarningStyle
		label = "Requesting"
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Center,
		style.Render(icon),
		" ",
		r.theme.Title.Render("Screen wake lock"),
		" ",
		r.theme.BadgeMuted.Render(style.Render(label)),
	)

	if !v.Held {
		return line
	}

	detail := r.theme.Subtle.Render("via ") + r.theme.Highlight.Render(v.Backend)
	if v.AcquiredAt != nil {
		detail += r.theme.Subtle.Render(fmt.Sprintf(" for %s", FormatDuration(now.Sub(*v.AcquiredAt))))
	}
	return line + "\n  " + detail
}

// RenderUnreachable renders the line shown when the daemon cannot be queried.
func (r *StatusRenderer) RenderUnreachable(addr string, err error) string {
	return fmt.Sprintf(
		"%s %s %s\n  %s",
		r.theme.ErrorStyle.Render(IconX),
		r.theme.Title.Render("Daemon unreachable at"),
		r.theme.Normal.Render(addr),
		r.theme.Subtle.Render(err.Error()),
	)
}
