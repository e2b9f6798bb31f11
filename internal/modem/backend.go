package modem

import (
	"sort"

	"github.com/FuriLabs/obex-capabilities/internal/model"
)

// Backend is a modem service reachable over D-Bus.
type Backend interface {
	Metadata() BackendMetadata
	// Probe opens its own bus connection, reads the first modem and closes
	// the connection again. Any error means the backend is unusable.
	Probe() (*model.Modem, error)
}

// BackendMetadata describes a backend for logging and ordering.
type BackendMetadata struct {
	Name        string // internal key, e.g. "modemmanager"
	DisplayName string // human-readable, e.g. "ModemManager"
	BusName     string // well-known D-Bus name
	Priority    int    // lower is tried first
}

var registry []func(Dialer) Backend

// Register adds a backend factory to the global registry.
// Each backend calls this in its init().
func Register(factory func(Dialer) Backend) {
	registry = append(registry, factory)
}

// All returns fresh instances of every registered backend in priority order.
func All(dial Dialer) []Backend {
	out := make([]Backend, len(registry))
	for i, f := range registry {
		out[i] = f(dial)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Metadata().Priority < out[j].Metadata().Priority
	})
	return out
}
