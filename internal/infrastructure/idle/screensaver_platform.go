package idle

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/kioskclock/internal/application/port"
	"github.com/bnema/kioskclock/internal/domain/entity"
	"github.com/bnema/kioskclock/internal/logging"
)

const (
	screenSaverDest  = "org.freedesktop.ScreenSaver"
	screenSaverPath  = "/org/freedesktop/ScreenSaver"
	screenSaverIface = "org.freedesktop.ScreenSaver"

	// ScreenSaverBackend is the backend name of the freedesktop ScreenSaver platform.
	ScreenSaverBackend = "screensaver"
)

var _ port.WakeLockPlatform = (*ScreenSaverPlatform)(nil)

// ScreenSaverPlatform grants leases through org.freedesktop.ScreenSaver
// (KDE, Xfce, GNOME on X11 and most X11 lockers).
type ScreenSaverPlatform struct {
	conn   *dbus.Conn
	appID  string
	reason string
}

// NewScreenSaverPlatform creates a screensaver platform on conn.
func NewScreenSaverPlatform(conn *dbus.Conn, appID, reason string) *ScreenSaverPlatform {
	return &ScreenSaverPlatform{conn: conn, appID: appID, reason: reason}
}

// Name implements port.WakeLockPlatform.
func (p *ScreenSaverPlatform) Name() string { return ScreenSaverBackend }

// Supported reports whether a screensaver service owns its bus name.
func (p *ScreenSaverPlatform) Supported(ctx context.Context) bool {
	if p.conn == nil {
		return false
	}
	has, err := nameHasOwner(ctx, p.conn, screenSaverDest)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("idle: screensaver lookup failed")
		return false
	}
	return has
}

// Request calls Inhibit(application_name, reason) -> cookie.
func (p *ScreenSaverPlatform) Request(ctx context.Context, kind entity.LeaseKind) (port.Lease, error) {
	if p.conn == nil {
		return nil, fmt.Errorf("screensaver inhibit: %w: no session bus", port.ErrUnsupported)
	}
	if kind != entity.LeaseKindScreen {
		return nil, fmt.Errorf("screensaver inhibit: %w: lease kind %q", port.ErrUnsupported, kind)
	}

	lease := &screenSaverLease{
		conn:    p.conn,
		signals: make(chan *dbus.Signal, 8),
		stop:    make(chan struct{}),
	}
	if err := p.conn.AddMatchSignal(ownerChangedMatch(screenSaverDest)...); err != nil {
		return nil, fmt.Errorf("screensaver inhibit: subscribe: %w", err)
	}
	p.conn.Signal(lease.signals)

	err := p.conn.Object(screenSaverDest, screenSaverPath).CallWithContext(ctx, screenSaverIface+".Inhibit", 0,
		p.appID, p.reason).Store(&lease.cookie)
	if err != nil {
		lease.unsubscribe()
		return nil, fmt.Errorf("screensaver inhibit: %w", mapDBusError(err))
	}

	go lease.watch(context.WithoutCancel(ctx))

	logging.FromContext(ctx).Debug().Uint32("cookie", lease.cookie).Msg("idle: screensaver inhibit granted")
	return lease, nil
}

type screenSaverLease struct {
	revocation

	conn     *dbus.Conn
	cookie   uint32
	signals  chan *dbus.Signal
	stop     chan struct{}
	stopOnce sync.Once
}

func (l *screenSaverLease) Backend() string { return ScreenSaverBackend }

func (l *screenSaverLease) unsubscribe() {
	l.conn.RemoveSignal(l.signals)
	_ = l.conn.RemoveMatchSignal(ownerChangedMatch(screenSaverDest)...)
}

// watch revokes the lease when the screensaver service goes away, since the
// service forgets every cookie it handed out.
func (l *screenSaverLease) watch(ctx context.Context) {
	defer l.unsubscribe()
	l.consume(ctx)
}

func (l *screenSaverLease) consume(ctx context.Context) {
	for {
		select {
		case <-l.stop:
			return
		case sig, ok := <-l.signals:
			if !ok {
				sig = nil
			}
			if classifySignal(sig, "", screenSaverDest) == signalRevoked {
				logging.FromContext(ctx).Debug().Bool("closed", sig == nil).Msg("idle: screensaver left the bus")
				l.revoke()
				return
			}
		}
	}
}

// End calls UnInhibit with the lease cookie.
func (l *screenSaverLease) End(ctx context.Context) error {
	active := l.retire()
	l.stopOnce.Do(func() { close(l.stop) })

	if !active {
		return nil
	}

	err := l.conn.Object(screenSaverDest, screenSaverPath).CallWithContext(ctx, screenSaverIface+".UnInhibit", 0,
		l.cookie).Err
	if err != nil {
		return fmt.Errorf("screensaver uninhibit: %w", mapDBusError(err))
	}
	return nil
}
