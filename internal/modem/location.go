package modem

import (
	"strings"

	"github.com/pkg/errors"
)

// locationFields is the number of fields in a ModemManager 3GPP location:
// MCC, MNC, LAC, CI and TAC.
const locationFields = 5

// ParseLocation extracts MCC and MNC from a ModemManager 3GPP location
// string such as "310,410,1a2b,3c4d5e,0".
func ParseLocation(s string) (mcc, mnc string, err error) {
	fields := strings.Split(s, ",")
	if len(fields) < locationFields {
		return "", "", errors.Wrapf(ErrMalformedLocation, "%q has %d fields, want %d", s, len(fields), locationFields)
	}
	return fields[0], fields[1], nil
}
