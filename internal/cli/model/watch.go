// Package model holds the Bubble Tea models behind interactive commands.
package model

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/kioskclock/internal/cli/styles"
)

// FetchFunc returns the daemon's current wake-lock state.
type FetchFunc func(ctx context.Context) (styles.WakeLockView, error)

// WatchModel polls the daemon and renders its wake-lock state live.
type WatchModel struct {
	ctx      context.Context
	fetch    FetchFunc
	interval time.Duration
	addr     string
	now      func() time.Time

	theme    *styles.Theme
	spinner  spinner.Model
	view     styles.WakeLockView
	loaded   bool
	err      error
	lastPoll time.Time
}

// NewWatchModel creates a watch model polling fetch every interval.
func NewWatchModel(ctx context.Context, theme *styles.Theme, addr string, fetch FetchFunc, interval time.Duration) WatchModel {
	return WatchModel{
		ctx:      ctx,
		fetch:    fetch,
		interval: interval,
		addr:     addr,
		now:      time.Now,
		theme:    theme,
		spinner:  styles.NewSpinner(theme, styles.SpinnerPulse),
	}
}

// statusMsg carries one poll result.
type statusMsg struct {
	view styles.WakeLockView
	err  error
	at   time.Time
}

// pollMsg asks for the next poll.
type pollMsg struct{}

// Init implements tea.Model.
func (m WatchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.poll)
}

func (m WatchModel) poll() tea.Msg {
	view, err := m.fetch(m.ctx)
	return statusMsg{view: view, err: err, at: m.now()}
}

func (m WatchModel) scheduleNext() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return pollMsg{} })
}

// Update implements tea.Model.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			return m, m.poll
		}

	case statusMsg:
		m.loaded = true
		m.err = msg.err
		m.lastPoll = msg.at
		if msg.err == nil {
			m.view = msg.view
		}
		return m, m.scheduleNext()

	case pollMsg:
		return m, m.poll

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m WatchModel) View() string {
	t := m.theme

	if !m.loaded {
		return t.Box.Render(styles.Loading(t, m.spinner, "Contacting "+m.addr+"..."))
	}

	renderer := styles.NewStatusRenderer(t)
	var body string
	if m.err != nil {
		body = renderer.RenderUnreachable(m.addr, m.err)
	} else {
		body = renderer.Render(m.view, m.now())
	}

	footer := lipgloss.JoinHorizontal(
		lipgloss.Center,
		m.spinner.View(),
		" ",
		t.Subtle.Render("updated "+m.lastPoll.Format("15:04:05")+" · r refresh · q quit"),
	)

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, body, "", footer))
}

// Err returns the last poll error, if any.
func (m WatchModel) Err() error {
	return m.err
}
