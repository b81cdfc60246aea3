package idle

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kioskclock/internal/application/port"
	"github.com/bnema/kioskclock/internal/application/port/mocks"
	"github.com/bnema/kioskclock/internal/domain/entity"
)

func newBackend(t *testing.T, name string, supported bool) *mocks.MockWakeLockPlatform {
	t.Helper()
	b := newRequestBackend(t, name)
	b.EXPECT().Supported(mock.Anything).Return(supported).Maybe()
	return b
}

// newRequestBackend has no Supported expectation, so a Request that checks
// support again fails the test.
func newRequestBackend(t *testing.T, name string) *mocks.MockWakeLockPlatform {
	t.Helper()
	b := mocks.NewMockWakeLockPlatform(t)
	b.EXPECT().Name().Return(name).Maybe()
	return b
}

func unsupported(name string) error {
	return fmt.Errorf("%s inhibit: %w: org.freedesktop.DBus.Error.ServiceUnknown", name, port.ErrUnsupported)
}

func TestChainPlatform_Name(t *testing.T) {
	chain := NewChainPlatform(newBackend(t, "portal", true), newBackend(t, "screensaver", true))
	assert.Equal(t, "portal,screensaver", chain.Name())
	assert.Len(t, chain.Backends(), 2)
}

func TestChainPlatform_Supported(t *testing.T) {
	ctx := context.Background()
	assert.True(t, NewChainPlatform(newBackend(t, "portal", false), newBackend(t, "screensaver", true)).Supported(ctx))
	assert.False(t, NewChainPlatform(newBackend(t, "portal", false), newBackend(t, "screensaver", false)).Supported(ctx))
}

func TestChainPlatform_SkipsUnsupported(t *testing.T) {
	ctx := context.Background()
	first := newRequestBackend(t, "portal")
	first.EXPECT().Request(mock.Anything, entity.LeaseKindScreen).Return(nil, unsupported("portal")).Once()
	second := newRequestBackend(t, "screensaver")
	lease := mocks.NewMockLease(t)
	second.EXPECT().Request(mock.Anything, entity.LeaseKindScreen).Return(lease, nil).Once()

	got, err := NewChainPlatform(first, second).Request(ctx, entity.LeaseKindScreen)
	require.NoError(t, err)
	assert.Same(t, lease, got)
}

func TestChainPlatform_RequestDoesNotRecheckSupport(t *testing.T) {
	ctx := context.Background()
	first := newRequestBackend(t, "portal")
	lease := mocks.NewMockLease(t)
	first.EXPECT().Request(mock.Anything, entity.LeaseKindScreen).Return(lease, nil).Once()
	second := newRequestBackend(t, "screensaver")

	got, err := NewChainPlatform(first, second).Request(ctx, entity.LeaseKindScreen)
	require.NoError(t, err)
	assert.Same(t, lease, got)
}

func TestChainPlatform_FallsThroughOnError(t *testing.T) {
	ctx := context.Background()
	first := newRequestBackend(t, "portal")
	first.EXPECT().Request(mock.Anything, entity.LeaseKindScreen).Return(nil, errors.New("portal crashed")).Once()
	second := newRequestBackend(t, "screensaver")
	lease := mocks.NewMockLease(t)
	second.EXPECT().Request(mock.Anything, entity.LeaseKindScreen).Return(lease, nil).Once()

	got, err := NewChainPlatform(first, second).Request(ctx, entity.LeaseKindScreen)
	require.NoError(t, err)
	assert.Same(t, lease, got)
}

func TestChainPlatform_PrefersDenial(t *testing.T) {
	ctx := context.Background()
	first := newRequestBackend(t, "portal")
	first.EXPECT().Request(mock.Anything, entity.LeaseKindScreen).
		Return(nil, fmt.Errorf("portal inhibit: %w", port.ErrNotAllowed)).Once()
	second := newRequestBackend(t, "screensaver")
	second.EXPECT().Request(mock.Anything, entity.LeaseKindScreen).Return(nil, errors.New("timeout")).Once()

	_, err := NewChainPlatform(first, second).Request(ctx, entity.LeaseKindScreen)
	assert.ErrorIs(t, err, port.ErrNotAllowed)
}

func TestChainPlatform_RealErrorBeatsUnsupported(t *testing.T) {
	ctx := context.Background()
	first := newRequestBackend(t, "portal")
	first.EXPECT().Request(mock.Anything, entity.LeaseKindScreen).Return(nil, errors.New("timeout")).Once()
	second := newRequestBackend(t, "screensaver")
	second.EXPECT().Request(mock.Anything, entity.LeaseKindScreen).Return(nil, unsupported("screensaver")).Once()

	_, err := NewChainPlatform(first, second).Request(ctx, entity.LeaseKindScreen)
	require.Error(t, err)
	assert.NotErrorIs(t, err, port.ErrUnsupported)
	assert.Contains(t, err.Error(), "timeout")
}

func TestChainPlatform_NothingSupported(t *testing.T) {
	ctx := context.Background()
	first := newRequestBackend(t, "portal")
	first.EXPECT().Request(mock.Anything, entity.LeaseKindScreen).Return(nil, unsupported("portal")).Once()
	second := newRequestBackend(t, "screensaver")
	second.EXPECT().Request(mock.Anything, entity.LeaseKindScreen).Return(nil, unsupported("screensaver")).Once()

	_, err := NewChainPlatform(first, second).Request(ctx, entity.LeaseKindScreen)
	assert.ErrorIs(t, err, port.ErrUnsupported)
}

func TestChainPlatform_Empty(t *testing.T) {
	chain := NewChainPlatform()
	assert.False(t, chain.Supported(context.Background()))
	_, err := chain.Request(context.Background(), entity.LeaseKindScreen)
	assert.ErrorIs(t, err, port.ErrUnsupported)
}
