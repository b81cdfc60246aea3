package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrigger_String(t *testing.T) {
	assert.Equal(t, "mount", TriggerMount.String())
	assert.Equal(t, "visible", TriggerVisible.String())
	assert.Equal(t, "interaction", TriggerInteraction.String())
	assert.Equal(t, "unmount", TriggerUnmount.String())
	assert.Equal(t, "trigger(42)", Trigger(42).String())
}

func TestParseVisibility(t *testing.T) {
	got, err := ParseVisibility("visible")
	require.NoError(t, err)
	assert.Equal(t, TriggerVisible, got)

	got, err = ParseVisibility("hidden")
	require.NoError(t, err)
	assert.Equal(t, TriggerHidden, got)

	_, err = ParseVisibility("prerender")
	assert.Error(t, err)
}

func TestLeaseRecord_Duration(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	r := &LeaseRecord{AcquiredAt: start}

	assert.True(t, r.Active())
	assert.Equal(t, 2*time.Hour, r.Duration(start.Add(2*time.Hour)))

	end := start.Add(30 * time.Minute)
	r.EndedAt = &end
	assert.False(t, r.Active())
	assert.Equal(t, 30*time.Minute, r.Duration(start.Add(2*time.Hour)))
}
