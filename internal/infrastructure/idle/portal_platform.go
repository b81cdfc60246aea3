package idle

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"

	"github.com/bnema/kioskclock/internal/application/port"
	"github.com/bnema/kioskclock/internal/domain/entity"
	"github.com/bnema/kioskclock/internal/logging"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalInterface = "org.freedesktop.portal.Inhibit"
	requestIface    = "org.freedesktop.portal.Request"

	// org.freedesktop.portal.Inhibit flags
	flagLogout     = 1
	flagUserSwitch = 2
	flagSuspend    = 4
	flagIdle       = 8

	// PortalBackend is the backend name of the XDG desktop portal platform.
	PortalBackend = "portal"
)

// Compile-time interface check.
var _ port.WakeLockPlatform = (*PortalPlatform)(nil)

// PortalPlatform grants wake-lock leases through the XDG Desktop Portal.
// This works on Wayland with any compositor (GNOME, KDE, sway, hyprland, etc.).
type PortalPlatform struct {
	conn   *dbus.Conn
	reason string
}

// NewPortalPlatform creates a portal platform on conn. A nil conn yields a
// platform that reports itself unsupported.
func NewPortalPlatform(conn *dbus.Conn, reason string) *PortalPlatform {
	return &PortalPlatform{conn: conn, reason: reason}
}

// Name implements port.WakeLockPlatform.
func (p *PortalPlatform) Name() string { return PortalBackend }

// Supported checks that the portal exposes the Inhibit interface.
func (p *PortalPlatform) Supported(ctx context.Context) bool {
	log := logging.FromContext(ctx)

	if p.conn == nil {
		return false
	}

	var version dbus.Variant
	err := p.conn.Object(portalDest, portalPath).CallWithContext(ctx, propertiesGet, 0,
		portalInterface, "version").Store(&version)
	if err != nil {
		log.Debug().Err(err).Msg("idle: portal not available")
		return false
	}

	log.Trace().Interface("version", version.Value()).Msg("idle: portal available")
	return true
}

// Request calls Inhibit(window, flags, options) -> handle.
func (p *PortalPlatform) Request(ctx context.Context, kind entity.LeaseKind) (port.Lease, error) {
	if p.conn == nil {
		return nil, fmt.Errorf("portal inhibit: %w: no session bus", port.ErrUnsupported)
	}
	if kind != entity.LeaseKindScreen {
		return nil, fmt.Errorf("portal inhibit: %w: lease kind %q", port.ErrUnsupported, kind)
	}

	// Subscribe before the call so an immediate Response is not missed.
	token := "kioskclock_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	expected := requestPath(p.conn, token)

	lease := newPortalLease(p.conn, expected)
	if err := lease.subscribe(); err != nil {
		return nil, fmt.Errorf("portal inhibit: subscribe: %w", err)
	}

	options := map[string]dbus.Variant{
		"reason":       dbus.MakeVariant(p.reason),
		"handle_token": dbus.MakeVariant(token),
	}

	var handle dbus.ObjectPath
	err := p.conn.Object(portalDest, portalPath).CallWithContext(ctx, portalInterface+".Inhibit", 0,
		"",                           // window identifier (empty for non-sandboxed)
		uint32(flagIdle|flagSuspend), // inhibit idle and suspend
		options,
	).Store(&handle)
	if err != nil {
		lease.unsubscribe()
		return nil, fmt.Errorf("portal inhibit: %w", mapDBusError(err))
	}

	if handle != expected {
		// Older portals ignore handle_token; follow the returned path instead.
		lease.unsubscribe()
		lease = newPortalLease(p.conn, handle)
		if err := lease.subscribe(); err != nil {
			_ = p.conn.Object(portalDest, handle).CallWithContext(ctx, requestIface+".Close", 0).Err
			return nil, fmt.Errorf("portal inhibit: subscribe: %w", err)
		}
	}

	go lease.watch(context.WithoutCancel(ctx))

	logging.FromContext(ctx).Debug().
		Str("handle", string(handle)).
		Str("reason", p.reason).
		Msg("idle: portal inhibit granted")

	return lease, nil
}

// requestPath predicts the Request object path for a handle token.
func requestPath(conn *dbus.Conn, token string) dbus.ObjectPath {
	sender := ""
	if names := conn.Names(); len(names) > 0 {
		sender = strings.ReplaceAll(strings.TrimPrefix(names[0], ":"), ".", "_")
	}
	return dbus.ObjectPath(portalPath + "/request/" + sender + "/" + token)
}

type portalLease struct {
	revocation

	conn    *dbus.Conn
	handle  dbus.ObjectPath
	signals chan *dbus.Signal
	stop    chan struct{}

	stateMu sync.Mutex
	// completed is true once the portal sent Response 0; the Request object is
	// gone and must not be closed.
	completed bool
	stopOnce  sync.Once
}

func newPortalLease(conn *dbus.Conn, handle dbus.ObjectPath) *portalLease {
	return &portalLease{
		conn:    conn,
		handle:  handle,
		signals: make(chan *dbus.Signal, 8),
		stop:    make(chan struct{}),
	}
}

func (l *portalLease) Backend() string { return PortalBackend }

func (l *portalLease) responseMatch() []dbus.MatchOption {
	return []dbus.MatchOption{
		dbus.WithMatchObjectPath(l.handle),
		dbus.WithMatchInterface(requestIface),
		dbus.WithMatchMember("Response"),
	}
}

func (l *portalLease) subscribe() error {
	if err := l.conn.AddMatchSignal(l.responseMatch()...); err != nil {
		return err
	}
	if err := l.conn.AddMatchSignal(ownerChangedMatch(portalDest)...); err != nil {
		_ = l.conn.RemoveMatchSignal(l.responseMatch()...)
		return err
	}
	l.conn.Signal(l.signals)
	return nil
}

func (l *portalLease) unsubscribe() {
	l.conn.RemoveSignal(l.signals)
	_ = l.conn.RemoveMatchSignal(l.responseMatch()...)
	_ = l.conn.RemoveMatchSignal(ownerChangedMatch(portalDest)...)
}

// watch turns portal signals into revocation until the lease is ended.
func (l *portalLease) watch(ctx context.Context) {
	defer l.unsubscribe()
	l.consume(ctx)
}

func (l *portalLease) consume(ctx context.Context) {
	log := logging.FromContext(ctx).With().Str("handle", string(l.handle)).Logger()

	for {
		select {
		case <-l.stop:
			return
		case sig, ok := <-l.signals:
			if !ok {
				sig = nil
			}
			switch classifySignal(sig, l.handle, portalDest) {
			case signalCompleted:
				l.stateMu.Lock()
				l.completed = true
				l.stateMu.Unlock()
				log.Debug().Msg("idle: request completed by portal")
			case signalRevoked:
				log.Debug().Bool("closed", sig == nil).Msg("idle: portal ended inhibition")
				l.revoke()
				return
			}
		}
	}
}

// End closes the request unless the portal already completed or revoked it.
func (l *portalLease) End(ctx context.Context) error {
	active := l.retire()
	l.stopOnce.Do(func() { close(l.stop) })

	if !active {
		return nil
	}

	l.stateMu.Lock()
	completed := l.completed
	l.stateMu.Unlock()
	if completed {
		return nil
	}

	if err := l.conn.Object(portalDest, l.handle).CallWithContext(ctx, requestIface+".Close", 0).Err; err != nil {
		return fmt.Errorf("portal close: %w", mapDBusError(err))
	}
	return nil
}

// responseCode extracts the response code of a Request.Response signal.
// 0 = success, 1 = cancelled by user, 2 = ended otherwise.
func responseCode(sig *dbus.Signal) (uint32, bool) {
	if len(sig.Body) == 0 {
		return 0, false
	}
	code, ok := sig.Body[0].(uint32)
	return code, ok
}
