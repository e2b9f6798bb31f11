package modem

import (
	"sort"

	"github.com/FuriLabs/obex-capabilities/internal/model"
	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"
)

const (
	mmName               = "org.freedesktop.ModemManager1"
	mmObjectPath         = "/org/freedesktop/ModemManager1"
	mmInterfaceModem3gpp = "org.freedesktop.ModemManager1.Modem.Modem3gpp"
	mmMethodGetLocation  = "org.freedesktop.ModemManager1.Modem.Location.GetLocation"

	// MM_MODEM_LOCATION_SOURCE_3GPP_LAC_CI
	mmLocation3GPP uint32 = 1
)

func init() {
	Register(func(d Dialer) Backend { return &ModemManagerBackend{Dial: d} })
}

// ModemManagerBackend reads the modem through ModemManager.
type ModemManagerBackend struct {
	Dial Dialer
}

func (b *ModemManagerBackend) Metadata() BackendMetadata {
	return BackendMetadata{
		Name:        "modemmanager",
		DisplayName: "ModemManager",
		BusName:     mmName,
		Priority:    10,
	}
}

func (b *ModemManagerBackend) Probe() (*model.Modem, error) {
	conn, err := dial(b.Dial)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var objects map[dbus.ObjectPath]map[string]map[string]dbus.Variant
	if err := conn.Object(mmName, mmObjectPath).Call(objectManagerMethod, 0).Store(&objects); err != nil {
		return nil, errors.Wrap(err, "enumerating modems")
	}
	if len(objects) == 0 {
		return nil, ErrNoModem
	}

	obj := conn.Object(mmName, firstPath(objects))

	imei, err := stringProperty(obj, mmInterfaceModem3gpp+".Imei")
	if err != nil {
		return nil, err
	}

	network, err := stringProperty(obj, mmInterfaceModem3gpp+".OperatorName")
	if err != nil {
		return nil, err
	}

	var locations map[uint32]dbus.Variant
	if err := obj.Call(mmMethodGetLocation, 0).Store(&locations); err != nil {
		return nil, errors.Wrap(err, "getting location")
	}
	v, ok := locations[mmLocation3GPP]
	if !ok {
		return nil, errors.Wrap(ErrMissingProperty, "3GPP location")
	}
	location, err := asString(v, "3GPP location")
	if err != nil {
		return nil, err
	}

	mcc, mnc, err := ParseLocation(location)
	if err != nil {
		return nil, err
	}

	return &model.Modem{
		Backend: b.Metadata().DisplayName,
		IMEI:    imei,
		Network: network,
		MCC:     mcc,
		MNC:     mnc,
	}, nil
}

// firstPath picks the lowest object path so the choice does not depend on
// map iteration order.
func firstPath(objects map[dbus.ObjectPath]map[string]map[string]dbus.Variant) dbus.ObjectPath {
	paths := make([]string, 0, len(objects))
	for p := range objects {
		paths = append(paths, string(p))
	}
	sort.Strings(paths)
	return dbus.ObjectPath(paths[0])
}
