package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/kioskclock/internal/domain/build"
)

// clockLogo is drawn next to the build info.
const clockLogo = ` ▄████▄
██  █ ██
██  ▀▀██
██    ██
 ▀████▀`

// AboutRenderer renders build info next to the logo, fastfetch style.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders build info with the logo on the left.
func (r *AboutRenderer) Render(info build.Info) string {
	logo := r.theme.Highlight.MarginTop(1).MarginLeft(2).Render(clockLogo)
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", r.infoLines(info))
}

func (r *AboutRenderer) infoLines(info build.Info) string {
	fields := []struct{ icon, key, value string }{
		{IconVersion, "Version", info.Version},
		{IconGitBranch, "Commit", info.Commit},
		{IconCalendar, "Built", info.BuildDate},
		{IconGo, "Go", info.GoVersion},
	}

	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	lines := make([]string, 0, len(fields)+3)
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("%s %s %s", icon.Render(f.icon), r.theme.Subtle.Render(f.key), r.theme.Highlight.Render(f.value)))
	}

	lines = append(lines,
		"",
		icon.Render(IconGithub)+" "+r.theme.Subtle.Render(build.RepoURL()),
		icon.Render(IconHeart)+" "+r.theme.Subtle.Render("by")+" "+r.theme.Highlight.Render(strings.Join(build.Contributors(), ", ")),
	)
	return strings.Join(lines, "\n")
}
