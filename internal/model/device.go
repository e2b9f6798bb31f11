package model

import "fmt"

// Device is the identity snapshot of the machine we are running on.
type Device struct {
	Manufacturer    string
	Model           string
	Codename        string
	UniqueID        string
	SoftwareVersion string
	OSVersion       string
}

// FabricatedDevice returns the fixed device used for tests and as the
// last-resort fallback when no platform probe matches.
func FabricatedDevice() Device {
	return Device{
		Manufacturer:    "Manufacturer",
		Model:           "Phone",
		Codename:        "my-awesome-codename",
		UniqueID:        "123456789012345",
		SoftwareVersion: "1.0.0",
		OSVersion:       "2.0.0",
	}
}

func (d Device) String() string {
	return fmt.Sprintf("DEVICE\n  Manufacturer: %s\n  Model: %s\n  Codename: %s\n  Unique ID: %s\n  Software version: %s\n  OS version: %s",
		d.Manufacturer, d.Model, d.Codename, d.UniqueID, d.SoftwareVersion, d.OSVersion)
}
