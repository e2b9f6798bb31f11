package modem

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNoModem           = errors.New("no modem found")
	ErrMissingProperty   = errors.New("missing modem property")
	ErrMalformedLocation = errors.New("malformed 3GPP location")
)

// ProbeError wraps an error with the backend that produced it.
type ProbeError struct {
	Backend string
	Err     error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Backend, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}
