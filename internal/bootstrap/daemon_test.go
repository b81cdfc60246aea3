package bootstrap

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/bnema/kioskclock/internal/application/port/mocks"
	"github.com/bnema/kioskclock/internal/application/usecase"
	"github.com/bnema/kioskclock/internal/domain/entity"
	repomocks "github.com/bnema/kioskclock/internal/domain/repository/mocks"
	"github.com/bnema/kioskclock/internal/infrastructure/config"
	"github.com/bnema/kioskclock/internal/infrastructure/idle"
	"github.com/bnema/kioskclock/internal/logging"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

// grantingPlatform returns a platform that grants one lease, and that lease.
func grantingPlatform(t *testing.T) (*mocks.MockWakeLockPlatform, *mocks.MockLease) {
	t.Helper()
	lease := mocks.NewMockLease(t)
	lease.EXPECT().Backend().Return("fake").Maybe()
	lease.EXPECT().Revoked().Return(false).Maybe()
	lease.EXPECT().OnRevoked(mock.Anything).Return(func() {}).Once()
	lease.EXPECT().End(mock.Anything).Return(nil).Once()

	platform := mocks.NewMockWakeLockPlatform(t)
	platform.EXPECT().Name().Return("fake").Maybe()
	platform.EXPECT().Supported(mock.Anything).Return(true).Maybe()
	platform.EXPECT().Request(mock.Anything, entity.LeaseKindScreen).Return(lease, nil).Once()
	return platform, lease
}

func TestDaemon_RunHoldsLockUntilCancelled(t *testing.T) {
	platform, _ := grantingPlatform(t)
	d := newDaemon(usecase.NewKeepAwakeUseCase(platform, nil, nil))

	heldDuringService := make(chan bool, 1)
	d.addService("probe", func(ctx context.Context) error {
		heldDuringService <- d.Manager.IsHeld()
		<-ctx.Done()
		return nil
	})

	ctx, cancel := context.WithCancel(testContext())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	select {
	case held := <-heldDuringService:
		assert.True(t, held, "lock is acquired before services start")
	case <-time.After(2 * time.Second):
		t.Fatal("service never started")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("daemon did not stop")
	}
	assert.False(t, d.Manager.IsHeld(), "released on teardown")
}

func TestDaemon_ServiceFailureStopsAndReleases(t *testing.T) {
	platform, _ := grantingPlatform(t)
	d := newDaemon(usecase.NewKeepAwakeUseCase(platform, nil, nil))

	boom := errors.New("address in use")
	d.addService("httpapi", func(context.Context) error { return boom })
	d.addService("other", func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})

	err := d.Run(testContext())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "httpapi")
	assert.False(t, d.Manager.IsHeld())
}

func TestDaemon_PrunesHistory(t *testing.T) {
	platform, _ := grantingPlatform(t)

	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockLeaseHistoryRepository(ctrl)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().MarkEnded(gomock.Any(), gomock.Any(), gomock.Any(), entity.LeaseEndReleased).Return(nil)

	clk := clock.NewMock()
	clk.Set(time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))
	repo.EXPECT().DeleteBefore(gomock.Any(), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)).Return(int64(2), nil)

	d := newDaemon(usecase.NewKeepAwakeUseCase(platform, repo, nil))
	d.prune = usecase.NewPruneLeaseHistoryUseCase(repo, clk)
	d.retentionDays = 30

	ctx, cancel := context.WithCancel(testContext())
	d.addService("stop", func(context.Context) error {
		cancel()
		return nil
	})

	require.NoError(t, d.Run(ctx))
}

func TestDaemon_CloseRunsClosersInReverse(t *testing.T) {
	d := newDaemon(nil)
	var order []string
	d.closers = append(d.closers,
		func() error { order = append(order, "db"); return nil },
		func() error { order = append(order, "bus"); return nil },
	)

	d.Close()
	d.Close()

	assert.Equal(t, []string{"bus", "db"}, order)
}

func TestNewBackends(t *testing.T) {
	backends := NewBackends(nil, config.WakeLockConfig{
		Backends: []string{config.BackendScreenSaver, "unknown", config.BackendPortal},
		Reason:   "kiosk",
		AppID:    "kioskclock",
	})

	require.Len(t, backends, 2)
	assert.Equal(t, idle.ScreenSaverBackend, backends[0].Name())
	assert.Equal(t, idle.PortalBackend, backends[1].Name())
}

func TestNewDaemon_WithoutBusOrServer(t *testing.T) {
	t.Setenv("DBUS_SESSION_BUS_ADDRESS", "unix:path=/nonexistent/kioskclock-test-bus")

	cfg := config.DefaultConfig()
	cfg.Server.Enabled = false
	cfg.History.Enabled = false

	d, err := NewDaemon(testContext(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(d.Close)

	assert.Empty(t, d.services)
	assert.Nil(t, d.prune)
	assert.False(t, d.Manager.IsHeld())
}

func TestStartupTimer(t *testing.T) {
	clk := clock.NewMock()
	timer := NewStartupTimer(clk)

	clk.Add(40 * time.Millisecond)
	timer.Mark("bus")
	clk.Add(10 * time.Millisecond)
	timer.Mark("first_acquire")

	bus, ok := timer.Phase("bus")
	require.True(t, ok)
	assert.Equal(t, 40*time.Millisecond, bus)

	acquire, _ := timer.Phase("first_acquire")
	assert.Equal(t, 10*time.Millisecond, acquire)
	assert.Equal(t, 50*time.Millisecond, timer.Total())

	_, ok = timer.Phase("missing")
	assert.False(t, ok)

	timer.Log(testContext())
}
