package idle

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/kioskclock/internal/application/port"
	"github.com/bnema/kioskclock/internal/domain/entity"
	"github.com/bnema/kioskclock/internal/logging"
)

const activeChanged = "ActiveChanged"

// Screensaver interfaces that broadcast ActiveChanged(bool).
var screenSaverSignalIfaces = []string{
	"org.freedesktop.ScreenSaver",
	"org.gnome.ScreenSaver",
}

// VisibilityWatcher turns screensaver activation into visibility triggers:
// the display is hidden while the screensaver runs and visible again after.
type VisibilityWatcher struct {
	conn    *dbus.Conn
	handler port.TriggerHandler
}

// NewVisibilityWatcher creates a watcher forwarding to handler.
func NewVisibilityWatcher(conn *dbus.Conn, handler port.TriggerHandler) *VisibilityWatcher {
	return &VisibilityWatcher{conn: conn, handler: handler}
}

// Run blocks until ctx is done or the bus connection closes.
func (w *VisibilityWatcher) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)

	if w.conn == nil {
		log.Debug().Msg("idle: no session bus, visibility watcher disabled")
		<-ctx.Done()
		return nil
	}

	for _, iface := range screenSaverSignalIfaces {
		if err := w.conn.AddMatchSignal(
			dbus.WithMatchInterface(iface),
			dbus.WithMatchMember(activeChanged),
		); err != nil {
			return fmt.Errorf("watch %s: %w", iface, err)
		}
	}

	signals := make(chan *dbus.Signal, 16)
	w.conn.Signal(signals)
	defer func() {
		w.conn.RemoveSignal(signals)
		for _, iface := range screenSaverSignalIfaces {
			_ = w.conn.RemoveMatchSignal(
				dbus.WithMatchInterface(iface),
				dbus.WithMatchMember(activeChanged),
			)
		}
	}()

	log.Debug().Msg("idle: visibility watcher started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig, ok := <-signals:
			if !ok {
				return fmt.Errorf("visibility watcher: session bus closed")
			}
			trigger, match := triggerFromSignal(sig)
			if !match {
				continue
			}
			log.Debug().Str("signal", sig.Name).Str("trigger", trigger.String()).Msg("idle: screensaver state changed")
			w.handler.HandleTrigger(ctx, trigger)
		}
	}
}

// triggerFromSignal maps an ActiveChanged signal to a visibility trigger.
func triggerFromSignal(sig *dbus.Signal) (entity.Trigger, bool) {
	if sig == nil || len(sig.Body) < 1 {
		return 0, false
	}

	known := false
	for _, iface := range screenSaverSignalIfaces {
		if sig.Name == iface+"."+activeChanged {
			known = true
			break
		}
	}
	if !known {
		return 0, false
	}

	active, ok := sig.Body[0].(bool)
	if !ok {
		return 0, false
	}
	if active {
		return entity.TriggerHidden, true
	}
	return entity.TriggerVisible, true
}
