package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns the diagnostic logger. Everything goes to stderr since stdout
// carries the capability document. Warnings and above are shown unless
// debug is set.
func New(debug bool) *logrus.Logger {
	return newLogger(os.Stderr, debug)
}

func newLogger(w io.Writer, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})

	logger.Level = logrus.WarnLevel
	if debug {
		logger.Level = logrus.DebugLevel
	}

	return logger
}

// Critical logs a condition the tool recovers from but that means the
// output is not describing real hardware.
func Critical(logger logrus.FieldLogger, msg string) {
	logger.WithField("severity", "critical").Error(msg)
}
