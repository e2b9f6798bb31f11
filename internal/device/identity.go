package device

import (
	"github.com/FuriLabs/obex-capabilities/internal/config"
	"github.com/FuriLabs/obex-capabilities/internal/model"
	"github.com/FuriLabs/obex-capabilities/internal/sysinfo"
	"github.com/sirupsen/logrus"
)

// identity resolves the fields every real device shares. Each value is
// computed on first use and kept in its field afterwards.
type identity struct {
	paths  *config.Paths
	modem  *model.Modem
	logger logrus.FieldLogger

	uniqueID  *string
	osRelease *string
}

func newIdentity(paths *config.Paths, modem *model.Modem, logger logrus.FieldLogger) *identity {
	return &identity{paths: paths, modem: modem, logger: logger}
}

// UniqueID is the modem IMEI when a modem was found, the machine-id otherwise.
func (id *identity) UniqueID() (string, error) {
	if id.uniqueID != nil {
		return *id.uniqueID, nil
	}

	var v string
	if id.modem != nil {
		id.logger.Debug("Found modem, using IMEI")
		v = id.modem.IMEI
	} else {
		id.logger.Debug("No modem available, using machine-id")
		var err error
		if v, err = sysinfo.ReadMachineID(id.paths.MachineID); err != nil {
			return "", err
		}
	}

	id.uniqueID = &v
	return v, nil
}

// OSRelease is the VERSION_ID of os-release, used for both the software and
// the OS version.
func (id *identity) OSRelease() (string, error) {
	if id.osRelease != nil {
		return *id.osRelease, nil
	}

	v, err := sysinfo.ReadOSVersion(id.paths.OSRelease)
	if err != nil {
		return "", err
	}

	id.osRelease = &v
	return v, nil
}
