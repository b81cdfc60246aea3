package port

import "context"

// AutostartStatus describes the session autostart entry.
type AutostartStatus struct {
	EntryPath      string
	Installed      bool
	ExecutablePath string
}

// Autostart manages the entry that starts the daemon with the display session.
type Autostart interface {
	Status(ctx context.Context) (*AutostartStatus, error)
	Install(ctx context.Context) (string, error)
	Remove(ctx context.Context) error
}
