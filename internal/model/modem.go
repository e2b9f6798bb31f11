package model

import "fmt"

// Modem holds what a modem backend reported about the cellular modem.
// A nil *Modem means no backend could be queried.
type Modem struct {
	Backend string
	IMEI    string
	Network string
	MCC     string
	MNC     string
}

// FabricatedModem returns the fixed modem used when probing is overridden.
func FabricatedModem() *Modem {
	return &Modem{
		Backend: "mock",
		IMEI:    "123456789012345",
		Network: "NetworkName",
		MCC:     "123",
		MNC:     "42",
	}
}

func (m *Modem) String() string {
	if m == nil {
		return "NETWORK (none)"
	}
	return fmt.Sprintf("NETWORK (%s)\n  Modem: %s\n  IMEI: %s\n  MCC: %s\n  MNC: %s",
		m.Backend, m.Network, m.IMEI, m.MCC, m.MNC)
}
