package model

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kioskclock/internal/cli/styles"
)

func newTestWatch(fetch FetchFunc) WatchModel {
	theme := styles.NewThemeFromPalette(styles.DefaultDarkPalette())
	m := NewWatchModel(context.Background(), theme, "127.0.0.1:7788", fetch, time.Second)
	m.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	return m
}

func TestWatchModel_PollCallsFetch(t *testing.T) {
	calls := 0
	m := newTestWatch(func(context.Context) (styles.WakeLockView, error) {
		calls++
		return styles.WakeLockView{Held: true, Backend: "portal"}, nil
	})

	msg := m.poll()
	got, ok := msg.(statusMsg)
	require.True(t, ok)
	assert.Equal(t, 1, calls)
	assert.True(t, got.view.Held)
	assert.NoError(t, got.err)
}

func TestWatchModel_StatusMsgUpdatesViewAndSchedulesPoll(t *testing.T) {
	m := newTestWatch(nil)
	assert.Contains(t, m.View(), "Contacting 127.0.0.1:7788")

	updated, cmd := m.Update(statusMsg{view: styles.WakeLockView{Held: true, Backend: "screensaver"}, at: m.now()})
	require.NotNil(t, cmd)

	wm := updated.(WatchModel)
	assert.True(t, wm.loaded)
	assert.NoError(t, wm.Err())
	assert.Contains(t, wm.View(), "screensaver")
	assert.Contains(t, wm.View(), "Held")
}

func TestWatchModel_ErrorKeepsLastView(t *testing.T) {
	m := newTestWatch(nil)
	updated, _ := m.Update(statusMsg{view: styles.WakeLockView{Held: true, Backend: "portal"}, at: m.now()})
	updated, _ = updated.Update(statusMsg{err: errors.New("connection refused"), at: m.now()})

	wm := updated.(WatchModel)
	assert.EqualError(t, wm.Err(), "connection refused")
	assert.True(t, wm.view.Held)
	assert.Contains(t, wm.View(), "connection refused")
}

func TestWatchModel_PollMsgTriggersFetch(t *testing.T) {
	calls := 0
	m := newTestWatch(func(context.Context) (styles.WakeLockView, error) {
		calls++
		return styles.WakeLockView{}, nil
	})

	_, cmd := m.Update(pollMsg{})
	require.NotNil(t, cmd)
	_, ok := cmd().(statusMsg)
	assert.True(t, ok)
	assert.Equal(t, 1, calls)
}

func TestWatchModel_QuitKeys(t *testing.T) {
	m := newTestWatch(nil)
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}
