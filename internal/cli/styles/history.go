package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/kioskclock/internal/domain/entity"
)

// HistoryRenderer renders lease history as a static table.
type HistoryRenderer struct {
	theme *Theme
}

// NewHistoryRenderer creates a new HistoryRenderer.
func NewHistoryRenderer(theme *Theme) *HistoryRenderer {
	return &HistoryRenderer{theme: theme}
}

// Render renders the summary badges and one row per record.
func (r *HistoryRenderer) Render(records []*entity.LeaseRecord, totalHeld time.Duration, revoked int, now time.Time) string {
	t := r.theme
	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		t.Highlight.Render(IconDatabase),
		" ",
		t.Title.Render("Lease history"),
		" ",
		t.Badge.Render(fmt.Sprintf("%d leases", len(records))),
		" ",
		t.BadgeMuted.Render(FormatDuration(totalHeld)+" held"),
		" ",
		t.BadgeMuted.Render(fmt.Sprintf("%d revoked", revoked)),
	)

	if len(records) == 0 {
		return header + "\n\n" + t.Subtle.Render("No leases recorded yet")
	}

	columns := LeaseTableColumns()
	cell := func(s string, width int) string {
		return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(s)
	}

	headerCells := make([]string, len(columns))
	for i, c := range columns {
		headerCells[i] = t.Highlight.Render(cell(c.Title, c.Width))
	}

	lines := []string{strings.Join(headerCells, " ")}
	for _, rec := range records {
		row := LeaseRow(rec, now)
		cells := make([]string, len(columns))
		for i, c := range columns {
			style := t.Normal
			if i == len(columns)-1 {
				style = r.endStyle(rec)
			}
			cells[i] = style.Render(cell(row[i], c.Width))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return header + "\n\n" + strings.Join(lines, "\n")
}

func (r *HistoryRenderer) endStyle(rec *entity.LeaseRecord) lipgloss.Style {
	if rec.Active() {
		return r.theme.SuccessStyle
	}
	switch rec.EndReason {
	case entity.LeaseEndRevoked:
		return r.theme.WarningStyle
	case entity.LeaseEndDuplicate, entity.LeaseEndSuperseded:
		return r.theme.Subtle
	default:
		return r.theme.Normal
	}
}
