package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/kioskclock/internal/infrastructure/config"
)

// Palette is the set of base colors a Theme is derived from.
type Palette struct {
	Background     string
	SurfaceVariant string
	Text           string
	Muted          string
	Accent         string
	Border         string
	Error          string
	Warning        string
	Success        string
}

// Theme holds the colors and pre-built styles every renderer shares.
type Theme struct {
	Background     lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// DefaultDarkPalette returns the dark palette used for terminal output.
// The accent matches the clock face default.
func DefaultDarkPalette() Palette {
	return Palette{
		Background:     "#0a0a0b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4A90E2",
		Border:         "#333333",
		Error:          "#ef4444",
		Warning:        "#f59e0b",
		Success:        "#4ade80",
	}
}

// NewTheme creates a Theme from config. Only appearance.accent is
// configurable; a nil config yields the default palette.
func NewTheme(cfg *config.Config) *Theme {
	p := DefaultDarkPalette()
	if cfg != nil && cfg.Appearance.Accent != "" {
		p.Accent = cfg.Appearance.Accent
	}
	return NewThemeFromPalette(p)
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p Palette) *Theme {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),

		Title:        fg(p.Text).Bold(true),
		Normal:       fg(p.Text),
		Subtle:       fg(p.Muted),
		Highlight:    fg(p.Accent).Bold(true),
		ErrorStyle:   fg(p.Error),
		WarningStyle: fg(p.Warning),
		SuccessStyle: fg(p.Success),
	}

	t.Badge = fg(p.Background).Background(t.Accent).Padding(0, 1)
	t.BadgeMuted = fg(p.Text).Background(t.SurfaceVariant).Padding(0, 1)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
	t.BoxHeader = t.Title.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)

	return t
}

// Section renders a boxed block with an icon header.
func (t *Theme) Section(icon, title, body string) string {
	return t.Box.Render(t.BoxHeader.Render(t.Highlight.Render(icon)+" "+title) + "\n" + body)
}
