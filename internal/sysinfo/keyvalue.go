package sysinfo

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

type keyValue struct {
	Key   string
	Value string
}

// parseKeyValues returns the key=value lines of data in file order. Lines
// are split on the first '='; values lose surrounding whitespace and double
// quotes. Comment lines are skipped. Line length is unbounded.
func parseKeyValues(data []byte) []keyValue {
	var out []keyValue
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		out = append(out, keyValue{
			Key:   strings.TrimSpace(key),
			Value: strings.ReplaceAll(strings.TrimSpace(value), `"`, ""),
		})
	}
	return out
}

// Properties is an ordered key=value file such as build.prop or deviceinfo.
type Properties struct {
	Path    string
	entries []keyValue
}

// ParseProperties parses key=value data.
func ParseProperties(data []byte) *Properties {
	return &Properties{entries: parseKeyValues(data)}
}

// Lookup returns the value of the first entry named key.
func (p *Properties) Lookup(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	for _, kv := range p.entries {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// ReadProperties reads the first existing file from paths. It returns nil
// without error when none exists.
func ReadProperties(paths ...string) (*Properties, error) {
	for _, path := range paths {
		if path == "" || !Exists(path) {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		props := ParseProperties(data)
		props.Path = path
		return props, nil
	}
	return nil, nil
}
