// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGo        = "" // go gopher

	// Doctor / diagnostics
	IconDoctor  = "" // stethoscope
	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconPlug    = "" // plug
	IconChart   = "" // line chart

	IconDatabase = "" // database

	// Wake lock
	IconSun   = "" // sun (held)
	IconMoon  = "" // moon (released)
	IconClock = "" // clock
)
