package sysinfo

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ParseOSRelease returns the VERSION_ID value of os-release data, matching
// the key case-insensitively. A missing key yields "".
func ParseOSRelease(data []byte) string {
	for _, kv := range parseKeyValues(data) {
		if strings.EqualFold(kv.Key, "version_id") {
			return kv.Value
		}
	}
	return ""
}

// ReadOSVersion reads the os-release file at path.
func ReadOSVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading os-release %s", path)
	}
	return ParseOSRelease(data), nil
}
