package sysinfo

import (
	"path/filepath"
)

// DMI attribute file names under /sys/class/dmi/id.
const (
	DMISysVendor   = "sys_vendor"
	DMIProductName = "product_name"
)

// ReadDMI returns the trimmed content of a DMI attribute file.
func ReadDMI(dir, name string) (string, error) {
	return ReadTrimmed(filepath.Join(dir, name))
}

// HasDMI reports whether the DMI product name is exposed under dir.
func HasDMI(dir string) bool {
	return Exists(filepath.Join(dir, DMIProductName))
}
