package capability

import "github.com/FuriLabs/obex-capabilities/internal/model"

// Renderer defines the interface for capability document generators.
type Renderer interface {
	Render(device model.Device, modem *model.Modem) (string, error)
}

// Generate renders the OBEX capability XML for device and, when not nil,
// the network information of modem.
func Generate(device model.Device, modem *model.Modem) (string, error) {
	r := &XMLRenderer{Indent: 1}
	return r.Render(device, modem)
}
