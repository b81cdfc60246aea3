package idle

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/bnema/kioskclock/internal/application/port"
	"github.com/bnema/kioskclock/internal/domain/entity"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMapDBusError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"service unknown", dbus.Error{Name: "org.freedesktop.DBus.Error.ServiceUnknown"}, port.ErrUnsupported},
		{"unknown method", &dbus.Error{Name: "org.freedesktop.DBus.Error.UnknownMethod"}, port.ErrUnsupported},
		{"not supported", dbus.Error{Name: "org.freedesktop.DBus.Error.NotSupported"}, port.ErrUnsupported},
		{"access denied", dbus.Error{Name: "org.freedesktop.DBus.Error.AccessDenied"}, port.ErrNotAllowed},
		{"portal not allowed", &dbus.Error{Name: "org.freedesktop.portal.Error.NotAllowed"}, port.ErrNotAllowed},
		{"wrapped", fmt.Errorf("call: %w", dbus.Error{Name: "org.freedesktop.DBus.Error.NameHasNoOwner"}), port.ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapDBusError(tt.err)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapDBusError_PassesThroughOtherErrors(t *testing.T) {
	assert.NoError(t, mapDBusError(nil))

	plain := errors.New("broken pipe")
	assert.Same(t, plain, mapDBusError(plain))

	failed := dbus.Error{Name: "org.freedesktop.DBus.Error.Failed"}
	got := mapDBusError(failed)
	assert.NotErrorIs(t, got, port.ErrUnsupported)
	assert.NotErrorIs(t, got, port.ErrNotAllowed)
}

func TestOwnerLost(t *testing.T) {
	const name = "org.freedesktop.portal.Desktop"
	sig := func(body ...interface{}) *dbus.Signal {
		return &dbus.Signal{Name: "org.freedesktop.DBus.NameOwnerChanged", Body: body}
	}

	assert.True(t, ownerLost(sig(name, ":1.5", ""), name))
	assert.False(t, ownerLost(sig(name, "", ":1.7"), name), "name acquired")
	assert.False(t, ownerLost(sig("org.other", ":1.5", ""), name), "other name")
	assert.False(t, ownerLost(sig(name, ":1.5"), name), "short body")
	assert.False(t, ownerLost(&dbus.Signal{Name: "org.freedesktop.DBus.NameLost", Body: []interface{}{name, "", ""}}, name))
	assert.False(t, ownerLost(nil, name))
}

func TestResponseCode(t *testing.T) {
	code, ok := responseCode(&dbus.Signal{Body: []interface{}{uint32(2), map[string]dbus.Variant{}}})
	require.True(t, ok)
	assert.Equal(t, uint32(2), code)

	_, ok = responseCode(&dbus.Signal{})
	assert.False(t, ok)

	_, ok = responseCode(&dbus.Signal{Body: []interface{}{"nope"}})
	assert.False(t, ok)
}

func TestSessionBusAddress(t *testing.T) {
	t.Setenv("DBUS_SESSION_BUS_ADDRESS", "unix:path=/tmp/test-bus")
	assert.Equal(t, "unix:path=/tmp/test-bus", SessionBusAddress())

	t.Setenv("DBUS_SESSION_BUS_ADDRESS", "")
	assert.Regexp(t, `^unix:path=/run/user/\d+/bus$`, SessionBusAddress())
}

func TestPlatformsWithoutBus(t *testing.T) {
	ctx := context.Background()

	for _, p := range []port.WakeLockPlatform{
		NewPortalPlatform(nil, "kiosk"),
		NewScreenSaverPlatform(nil, "kioskclock", "kiosk"),
	} {
		t.Run(p.Name(), func(t *testing.T) {
			assert.False(t, p.Supported(ctx))

			lease, err := p.Request(ctx, entity.LeaseKindScreen)
			assert.Nil(t, lease)
			assert.ErrorIs(t, err, port.ErrUnsupported)
		})
	}
}
