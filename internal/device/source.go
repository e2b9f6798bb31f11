package device

import (
	"github.com/FuriLabs/obex-capabilities/internal/config"
	"github.com/sirupsen/logrus"
)

// Source identifies the hardware through one family of system files.
type Source interface {
	Metadata() SourceMetadata
	// Detect reports whether this source applies to the running machine.
	Detect() bool
	Manufacturer() (string, error)
	Model() (string, error)
	Codename() (string, error)
}

// SourceMetadata describes a source for logging.
type SourceMetadata struct {
	Name        string // internal key, e.g. "dmi"
	DisplayName string // human-readable, e.g. "x86 (DMI)"
	DetectHint  string // file whose presence selects the source
}

// Sources returns the platform probes in the order they are tried.
func Sources(paths *config.Paths, logger logrus.FieldLogger) []Source {
	return []Source{
		&X86Source{Paths: paths},
		&ARMSource{Paths: paths, Logger: logger},
	}
}
