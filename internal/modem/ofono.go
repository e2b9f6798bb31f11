package modem

import (
	"github.com/FuriLabs/obex-capabilities/internal/model"
	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"
)

const (
	ofonoName                      = "org.ofono"
	ofonoObjectPath                = "/"
	ofonoMethodGetModems           = "org.ofono.Manager.GetModems"
	ofonoMethodNetworkRegistration = "org.ofono.NetworkRegistration.GetProperties"
	ofonoMethodModem               = "org.ofono.Modem.GetProperties"
)

func init() {
	Register(func(d Dialer) Backend { return &OfonoBackend{Dial: d} })
}

// OfonoBackend reads the modem through oFono.
type OfonoBackend struct {
	Dial Dialer
}

// ofonoModem is one entry of the a(oa{sv}) GetModems reply.
type ofonoModem struct {
	Path       dbus.ObjectPath
	Properties map[string]dbus.Variant
}

func (b *OfonoBackend) Metadata() BackendMetadata {
	return BackendMetadata{
		Name:        "ofono",
		DisplayName: "oFono",
		BusName:     ofonoName,
		Priority:    20,
	}
}

func (b *OfonoBackend) Probe() (*model.Modem, error) {
	conn, err := dial(b.Dial)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var modems []ofonoModem
	if err := conn.Object(ofonoName, ofonoObjectPath).Call(ofonoMethodGetModems, 0).Store(&modems); err != nil {
		return nil, errors.Wrap(err, "enumerating modems")
	}
	if len(modems) == 0 {
		return nil, ErrNoModem
	}

	obj := conn.Object(ofonoName, modems[0].Path)

	var registration map[string]dbus.Variant
	if err := obj.Call(ofonoMethodNetworkRegistration, 0).Store(&registration); err != nil {
		return nil, errors.Wrap(err, "getting network registration")
	}

	m := &model.Modem{Backend: b.Metadata().DisplayName}
	if m.MCC, err = stringFromMap(registration, "MobileCountryCode"); err != nil {
		return nil, err
	}
	if m.MNC, err = stringFromMap(registration, "MobileNetworkCode"); err != nil {
		return nil, err
	}
	if m.Network, err = stringFromMap(registration, "Name"); err != nil {
		return nil, err
	}

	var props map[string]dbus.Variant
	if err := obj.Call(ofonoMethodModem, 0).Store(&props); err != nil {
		return nil, errors.Wrap(err, "getting modem properties")
	}
	if m.IMEI, err = stringFromMap(props, "Serial"); err != nil {
		return nil, err
	}

	return m, nil
}
