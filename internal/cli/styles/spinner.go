package styles

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerType selects a spinner animation.
type SpinnerType int

const (
	SpinnerDots SpinnerType = iota
	SpinnerPulse
	SpinnerMoon
)

var spinners = map[SpinnerType]spinner.Spinner{
	SpinnerDots:  spinner.Dot,
	SpinnerPulse: spinner.Pulse,
	SpinnerMoon:  spinner.Moon,
}

// NewSpinner creates an accent-colored spinner. Unknown types fall back to dots.
func NewSpinner(theme *Theme, kind SpinnerType) spinner.Model {
	s, ok := spinners[kind]
	if !ok {
		s = spinner.Dot
	}
	return spinner.New(
		spinner.WithSpinner(s),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
	)
}

// Loading renders a spinner frame followed by a muted message.
func Loading(theme *Theme, s spinner.Model, message string) string {
	return lipgloss.JoinHorizontal(lipgloss.Center, s.View(), " ", theme.Subtle.Render(message))
}
