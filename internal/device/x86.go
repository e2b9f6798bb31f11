package device

import (
	"path/filepath"

	"github.com/FuriLabs/obex-capabilities/internal/config"
	"github.com/FuriLabs/obex-capabilities/internal/sysinfo"
	"github.com/FuriLabs/obex-capabilities/internal/util"
)

// X86Source reads the DMI tables exposed by PC-class firmware.
type X86Source struct {
	Paths *config.Paths
}

func (s *X86Source) Metadata() SourceMetadata {
	return SourceMetadata{
		Name:        "dmi",
		DisplayName: "x86",
		DetectHint:  filepath.Join(s.Paths.DMIDir, sysinfo.DMIProductName),
	}
}

func (s *X86Source) Detect() bool {
	return sysinfo.HasDMI(s.Paths.DMIDir)
}

func (s *X86Source) Manufacturer() (string, error) {
	return sysinfo.ReadDMI(s.Paths.DMIDir, sysinfo.DMISysVendor)
}

func (s *X86Source) Model() (string, error) {
	return sysinfo.ReadDMI(s.Paths.DMIDir, sysinfo.DMIProductName)
}

// Codename derives an identifier from the product name since DMI has no
// codename of its own.
func (s *X86Source) Codename() (string, error) {
	product, err := s.Model()
	if err != nil {
		return "", err
	}
	return util.SanitizeID(product), nil
}
