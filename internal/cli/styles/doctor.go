package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	statusYes = "Yes"
	statusNo  = "No"
)

type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

type DoctorReport struct {
	OverallOK bool
	Bus       string
	Backends  []DoctorBackendCheck
	Feed      *DoctorFeedReport
}

type DoctorBackendCheck struct {
	Name      string
	Supported bool
}

type DoctorFeedReport struct {
	Location  string
	Loaded    bool
	Error     string
	Items     int
	UpdatedAt time.Time
	Status    string
	Stale     bool
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	header := r.renderHeader(report.OverallOK)

	sections := []string{r.renderBackends(report.Bus, report.Backends)}
	if report.Feed != nil {
		sections = append(sections, r.renderFeed(*report.Feed))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", strings.Join(sections, "\n\n"))
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderBackends(bus string, checks []DoctorBackendCheck) string {
	lines := make([]string, 0, len(checks)+2)

	if strings.TrimSpace(bus) != "" {
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.Subtle.Render("Session bus"), r.theme.Normal.Render(bus)))
	} else {
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.Subtle.Render("No session bus")))
	}

	if len(checks) == 0 {
		lines = append(lines, r.theme.WarningStyle.Render("No backends configured"))
	}
	for _, c := range checks {
		icon := IconCheck
		statusStyle := r.theme.SuccessStyle
		status := "Available"
		if !c.Supported {
			icon = IconX
			statusStyle = r.theme.ErrorStyle
			status = "Unavailable"
		}
		lines = append(lines, fmt.Sprintf(
			"%s %s %s",
			statusStyle.Render(icon),
			r.theme.Normal.Render(c.Name),
			r.theme.BadgeMuted.Render(statusStyle.Render(status)),
		))
	}

	return r.theme.Section(IconPlug, "Wake lock", strings.Join(lines, "\n"))
}

func (r *DoctorRenderer) renderFeed(f DoctorFeedReport) string {
	lines := []string{fmt.Sprintf("%s %s", r.theme.Subtle.Render("Location"), r.theme.Normal.Render(f.Location))}

	if !f.Loaded {
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(f.Error)))
	} else {
		freshIcon := IconCheck
		freshStyle := r.theme.SuccessStyle
		freshText := statusNo
		if f.Stale {
			freshIcon = IconWarning
			freshStyle = r.theme.WarningStyle
			freshText = statusYes
		}
		lines = append(lines,
			fmt.Sprintf("%s %s", r.theme.Subtle.Render("Items"), r.theme.Normal.Render(fmt.Sprintf("%d", f.Items))),
			fmt.Sprintf("%s %s", r.theme.Subtle.Render("Updated"), r.theme.Normal.Render(formatTimestamp(f.UpdatedAt))),
			fmt.Sprintf("%s %s %s", freshStyle.Render(freshIcon), r.theme.Subtle.Render("Stale"), freshStyle.Render(freshText)),
		)
		if f.Status != "" {
			lines = append(lines, fmt.Sprintf("%s %s", r.theme.Subtle.Render("Status"), r.theme.Normal.Render(f.Status)))
		}
	}

	return r.theme.Section(IconChart, "Finance feed", strings.Join(lines, "\n"))
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
