package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" warn ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: zerolog.InfoLevel, Format: "json"}, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("backend", "portal").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"backend":"portal"`)
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: zerolog.DebugLevel, Format: "json"}, &buf)
	ctx := WithContext(context.Background(), logger)

	ctx = WithComponent(ctx, "wakelock")
	FromContext(WithTrigger(ctx, "interaction")).Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"wakelock"`)
	assert.Contains(t, out, `"trigger":"interaction"`)
}

func TestFromContext_WithoutLoggerIsNoop(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	log.Info().Msg("dropped")
}

func TestLogRotator_RotatesWhenFull(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorConfig{Dir: dir, FileName: "test.log", MaxSizeMB: 1, MaxBackups: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	chunk := []byte(strings.Repeat("x", 600*1024))
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "test.log.") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)

	info, err := os.Stat(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestLogRotator_KeepsMaxBackups(t *testing.T) {
	dir := t.TempDir()
	clk := clock.NewMock()
	clk.Set(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	r, err := NewLogRotator(RotatorConfig{Dir: dir, FileName: "test.log", MaxSizeMB: 1, MaxBackups: 2, Clock: clk})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	chunk := []byte(strings.Repeat("x", 600*1024))
	for range 4 {
		_, err = r.Write(chunk)
		require.NoError(t, err)
		clk.Add(time.Second)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "test.log.*"))
	require.NoError(t, err)
	assert.Len(t, matches, 2)
	assert.NotContains(t, matches, filepath.Join(dir, "test.log.20260301T100001.000"), "oldest backup is pruned")
}

func TestLogRotator_CompressesBackups(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorConfig{Dir: dir, FileName: "test.log", MaxSizeMB: 1, Compress: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	chunk := []byte(strings.Repeat("x", 600*1024))
	for range 2 {
		_, err = r.Write(chunk)
		require.NoError(t, err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "test.log.*"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.True(t, strings.HasSuffix(matches[0], ".gz"))
}

func TestNewWithFile_Disabled(t *testing.T) {
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{Enabled: false})
	require.NoError(t, err)
	defer cleanup()
	logger.Info().Msg("ok")
}

func TestNewWithFile_WritesJSONFile(t *testing.T) {
	dir := t.TempDir()
	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.InfoLevel, Format: "console", TimeFormat: "15:04:05"},
		FileConfig{Enabled: true, Dir: dir},
	)
	require.NoError(t, err)

	logger.Info().Str("k", "v").Msg("to file")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, "kioskclock.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"k":"v"`)
}
