// Package idle keeps the display awake through the desktop session's D-Bus
// inhibition services (XDG portal, freedesktop ScreenSaver).
package idle

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/godbus/dbus/v5"
	"golang.org/x/sys/unix"

	"github.com/bnema/kioskclock/internal/application/port"
)

const (
	dbusInterface      = "org.freedesktop.DBus"
	nameOwnerChanged   = "NameOwnerChanged"
	propertiesGet      = "org.freedesktop.DBus.Properties.Get"
	portalNotAllowed   = "org.freedesktop.portal.Error.NotAllowed"
	dbusErrPrefix      = "org.freedesktop.DBus.Error."
	sessionBusEnvVar   = "DBUS_SESSION_BUS_ADDRESS"
	userBusPathPattern = "unix:path=/run/user/%d/bus"
)

// SessionBusAddress returns the session bus address from the environment,
// falling back to the systemd user bus socket. Kiosk services started by
// systemd often run without the variable set.
func SessionBusAddress() string {
	if addr := os.Getenv(sessionBusEnvVar); addr != "" {
		return addr
	}
	return fmt.Sprintf(userBusPathPattern, unix.Getuid())
}

// ConnectSessionBus opens a private connection to the session bus.
func ConnectSessionBus(ctx context.Context) (*dbus.Conn, error) {
	conn, err := dbus.Connect(SessionBusAddress(), dbus.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	return conn, nil
}

// mapDBusError classifies D-Bus failures into the wake-lock error taxonomy.
func mapDBusError(err error) error {
	if err == nil {
		return nil
	}

	var name string
	var dbusErr dbus.Error
	var dbusErrPtr *dbus.Error
	switch {
	case errors.As(err, &dbusErr):
		name = dbusErr.Name
	case errors.As(err, &dbusErrPtr):
		name = dbusErrPtr.Name
	default:
		return err
	}

	switch name {
	case dbusErrPrefix + "ServiceUnknown",
		dbusErrPrefix + "UnknownMethod",
		dbusErrPrefix + "UnknownObject",
		dbusErrPrefix + "UnknownInterface",
		dbusErrPrefix + "NameHasNoOwner",
		dbusErrPrefix + "NotSupported":
		return fmt.Errorf("%w: %s", port.ErrUnsupported, name)
	case dbusErrPrefix + "AccessDenied",
		dbusErrPrefix + "AuthFailed",
		dbusErrPrefix + "InteractiveAuthorizationRequired",
		portalNotAllowed:
		return fmt.Errorf("%w: %s", port.ErrNotAllowed, name)
	default:
		return err
	}
}

// ownerLost reports whether sig announces that name lost its bus owner.
func ownerLost(sig *dbus.Signal, name string) bool {
	if sig == nil || sig.Name != dbusInterface+"."+nameOwnerChanged || len(sig.Body) < 3 {
		return false
	}
	changed, ok := sig.Body[0].(string)
	if !ok || changed != name {
		return false
	}
	newOwner, ok := sig.Body[2].(string)
	return ok && newOwner == ""
}

func ownerChangedMatch(name string) []dbus.MatchOption {
	return []dbus.MatchOption{
		dbus.WithMatchInterface(dbusInterface),
		dbus.WithMatchMember(nameOwnerChanged),
		dbus.WithMatchArg(0, name),
	}
}

func nameHasOwner(ctx context.Context, conn *dbus.Conn, name string) (bool, error) {
	var has bool
	err := conn.BusObject().CallWithContext(ctx, dbusInterface+".NameHasOwner", 0, name).Store(&has)
	return has, err
}

// signalAction is what a bus signal means for a granted lease.
type signalAction int

const (
	signalIgnore signalAction = iota
	// signalCompleted: the portal answered the request successfully.
	signalCompleted
	signalRevoked
)

// classifySignal maps a signal to its effect on a lease granted by the
// service owning the bus name owner. handle is the portal Request path,
// empty when the lease has none. A nil signal means the connection closed.
func classifySignal(sig *dbus.Signal, handle dbus.ObjectPath, owner string) signalAction {
	if sig == nil {
		return signalRevoked
	}
	if handle != "" && sig.Path == handle && sig.Name == requestIface+".Response" {
		if code, _ := responseCode(sig); code == 0 {
			return signalCompleted
		}
		return signalRevoked
	}
	if ownerLost(sig, owner) {
		return signalRevoked
	}
	return signalIgnore
}
