package device

import (
	"path/filepath"

	"github.com/FuriLabs/obex-capabilities/internal/config"
	"github.com/FuriLabs/obex-capabilities/internal/sysinfo"
	"github.com/sirupsen/logrus"
)

// ARMSource identifies device-tree based hardware. Each field is taken from
// the first of: Droidian override file, postmarketOS deviceinfo, Android
// vendor build.prop, the device tree itself. Unreadable deviceinfo or
// build.prop files are logged and skipped.
type ARMSource struct {
	Paths  *config.Paths
	Logger logrus.FieldLogger

	loaded     bool
	deviceinfo *sysinfo.Properties
	buildProp  *sysinfo.Properties
}

func (s *ARMSource) Metadata() SourceMetadata {
	return SourceMetadata{
		Name:        "devicetree",
		DisplayName: "ARM",
		DetectHint:  s.Paths.DeviceTreeCompatible,
	}
}

func (s *ARMSource) Detect() bool {
	return sysinfo.Exists(s.Paths.DeviceTreeCompatible)
}

func (s *ARMSource) Manufacturer() (string, error) {
	if v, ok, err := s.lookup("obex-manufacturer", "deviceinfo_manufacturer", "ro.product.vendor.manufacturer"); ok || err != nil {
		return v, err
	}
	vendor, _, err := sysinfo.ReadCompatible(s.Paths.DeviceTreeCompatible)
	return vendor, err
}

func (s *ARMSource) Model() (string, error) {
	if v, ok, err := s.lookup("obex-model", "deviceinfo_name", "ro.product.vendor.model"); ok || err != nil {
		return v, err
	}
	if sysinfo.Exists(s.Paths.DeviceTreeModel) {
		return sysinfo.ReadDeviceTreeModel(s.Paths.DeviceTreeModel)
	}
	_, codename, err := sysinfo.ReadCompatible(s.Paths.DeviceTreeCompatible)
	return codename, err
}

func (s *ARMSource) Codename() (string, error) {
	if v, ok, err := s.lookup("obex-codename", "deviceinfo_codename", "ro.product.board", "ro.product.vendor.device"); ok || err != nil {
		return v, err
	}
	_, codename, err := sysinfo.ReadCompatible(s.Paths.DeviceTreeCompatible)
	return codename, err
}

// lookup walks the vendor-provided sources for a field. Empty values count
// as missing.
func (s *ARMSource) lookup(overrideFile, deviceinfoKey string, propKeys ...string) (string, bool, error) {
	if s.Paths.OverrideDir != "" {
		path := filepath.Join(s.Paths.OverrideDir, overrideFile)
		if sysinfo.Exists(path) {
			v, err := sysinfo.ReadTrimmed(path)
			if err != nil || v != "" {
				return v, true, err
			}
		}
	}

	s.load()

	if v, ok := s.deviceinfo.Lookup(deviceinfoKey); ok && v != "" {
		return v, true, nil
	}

	for _, key := range propKeys {
		if v, ok := s.buildProp.Lookup(key); ok && v != "" {
			return v, true, nil
		}
	}

	return "", false, nil
}

func (s *ARMSource) load() {
	if s.loaded {
		return
	}

	s.deviceinfo = s.readOptional(s.Paths.DeviceInfo)
	s.buildProp = s.readOptional(s.Paths.BuildProps...)
	s.loaded = true
}

func (s *ARMSource) readOptional(paths ...string) *sysinfo.Properties {
	props, err := sysinfo.ReadProperties(paths...)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("Ignoring unreadable property file")
		}
		return nil
	}
	return props
}
