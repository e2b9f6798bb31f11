package modem

import (
	"github.com/FuriLabs/obex-capabilities/internal/config"
	"github.com/FuriLabs/obex-capabilities/internal/model"
	"github.com/sirupsen/logrus"
)

// ProbeResult holds the outcome of a single backend attempt.
type ProbeResult struct {
	Name string
	Err  error
}

// Resolve returns the modem reported by the first working backend, or nil
// when none responds. Backend failures are logged as warnings only.
func Resolve(cfg *config.Config, logger logrus.FieldLogger) (*model.Modem, []ProbeResult) {
	if cfg.Mock.Modem {
		logger.Debug("MOCK_MODEM set, using fabricated modem")
		return model.FabricatedModem(), nil
	}

	return probe(All(SystemBus), logger)
}

func probe(backends []Backend, logger logrus.FieldLogger) (*model.Modem, []ProbeResult) {
	var results []ProbeResult

	for _, b := range backends {
		meta := b.Metadata()
		logger.Debugf("Trying to access %s D-Bus interface", meta.DisplayName)

		m, err := b.Probe()
		if err != nil {
			perr := &ProbeError{Backend: meta.DisplayName, Err: err}
			results = append(results, ProbeResult{Name: meta.DisplayName, Err: perr})
			logger.WithField("backend", meta.Name).Warnf("Unable to use %s D-Bus interface: %v", meta.DisplayName, err)
			continue
		}

		logger.WithField("backend", meta.Name).Debugf("Found modem\n%s", m)
		results = append(results, ProbeResult{Name: meta.DisplayName})
		return m, results
	}

	logger.Debug("No suitable modem backend available")
	return nil, results
}
