// Package sysinfo reads the system files that describe the running device:
// os-release, machine-id, device-tree and DMI pseudo-files, and the vendor
// property files shipped by Android-based and postmarketOS images.
package sysinfo

import (
	"bytes"
	"os"
	"strings"

	"github.com/pkg/errors"
)

var ErrMalformedCompatible = errors.New("malformed device-tree compatible string")

// Exists reports whether path can be stat'ed.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadTrimmed returns the content of path with surrounding whitespace removed.
func ReadTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return strings.TrimSpace(string(data)), nil
}

// ReadMachineID returns the single-line machine identifier.
func ReadMachineID(path string) (string, error) {
	return ReadTrimmed(path)
}

// firstRecord returns the data up to the first NUL byte.
func firstRecord(data []byte) string {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	return string(data)
}

// ParseCompatible splits the first record of a device-tree compatible
// string into vendor and codename, e.g. "acme,widget\x00acme,soc\x00".
func ParseCompatible(data []byte) (vendor, codename string, err error) {
	record := strings.TrimSpace(firstRecord(data))
	vendor, codename, ok := strings.Cut(record, ",")
	if !ok {
		return "", "", errors.Wrapf(ErrMalformedCompatible, "%q", record)
	}
	return vendor, codename, nil
}

// ReadCompatible reads and parses the device-tree compatible file.
func ReadCompatible(path string) (vendor, codename string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", errors.Wrapf(err, "reading %s", path)
	}
	return ParseCompatible(data)
}

// ReadDeviceTreeModel returns the first record of the device-tree model file.
func ReadDeviceTreeModel(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return strings.TrimSpace(firstRecord(data)), nil
}
