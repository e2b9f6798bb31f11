package device

import (
	"github.com/FuriLabs/obex-capabilities/internal/config"
	"github.com/FuriLabs/obex-capabilities/internal/log"
	"github.com/FuriLabs/obex-capabilities/internal/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Resolve identifies the running device. modem may be nil; when set its
// IMEI becomes the unique ID. Unknown hardware yields the fabricated device,
// only unreadable required files are errors.
func Resolve(cfg *config.Config, modem *model.Modem, logger logrus.FieldLogger) (model.Device, error) {
	if cfg.Mock.Device {
		logger.Debug("MOCK_DEVICE set, using fabricated device")
		return model.FabricatedDevice(), nil
	}

	return resolve(Sources(&cfg.Paths, logger), newIdentity(&cfg.Paths, modem, logger), logger)
}

func resolve(sources []Source, id *identity, logger logrus.FieldLogger) (model.Device, error) {
	for _, src := range sources {
		meta := src.Metadata()
		if !src.Detect() {
			logger.WithField("hint", meta.DetectHint).Debugf("Device is not %s", meta.DisplayName)
			continue
		}

		logger.Debugf("Device is %s", meta.DisplayName)
		d, err := build(src, id)
		if err != nil {
			return model.Device{}, errors.Wrapf(err, "%s device", meta.DisplayName)
		}
		return d, nil
	}

	log.Critical(logger, "Device not implemented!")
	return model.FabricatedDevice(), nil
}

func build(src Source, id *identity) (model.Device, error) {
	var (
		d   model.Device
		err error
	)

	if d.Manufacturer, err = src.Manufacturer(); err != nil {
		return model.Device{}, err
	}
	if d.Model, err = src.Model(); err != nil {
		return model.Device{}, err
	}
	if d.Codename, err = src.Codename(); err != nil {
		return model.Device{}, err
	}
	if d.UniqueID, err = id.UniqueID(); err != nil {
		return model.Device{}, err
	}
	if d.SoftwareVersion, err = id.OSRelease(); err != nil {
		return model.Device{}, err
	}
	if d.OSVersion, err = id.OSRelease(); err != nil {
		return model.Device{}, err
	}

	return d, nil
}
