package modem

import (
	"errors"

	"github.com/godbus/dbus/v5"
)

// fakeObject implements the dbus.BusObject methods the backends call.
// Anything else panics through the nil embedded interface.
type fakeObject struct {
	dbus.BusObject
	calls map[string][]interface{}
	props map[string]interface{}
}

func (o *fakeObject) Call(method string, _ dbus.Flags, _ ...interface{}) *dbus.Call {
	body, ok := o.calls[method]
	if !ok {
		return &dbus.Call{Err: errors.New("unknown method " + method)}
	}
	return &dbus.Call{Body: body}
}

func (o *fakeObject) GetProperty(p string) (dbus.Variant, error) {
	v, ok := o.props[p]
	if !ok {
		return dbus.Variant{}, errors.New("unknown property " + p)
	}
	return dbus.MakeVariant(v), nil
}

// fakeConn serves fakeObjects keyed by "dest path".
type fakeConn struct {
	objects map[string]*fakeObject
	closed  int
}

func (c *fakeConn) Object(dest string, path dbus.ObjectPath) dbus.BusObject {
	if o, ok := c.objects[dest+" "+string(path)]; ok {
		return o
	}
	return &fakeObject{}
}

func (c *fakeConn) Close() error {
	c.closed++
	return nil
}

func (c *fakeConn) dialer() Dialer {
	return func() (Conn, error) { return c, nil }
}

func failingDialer(err error) Dialer {
	return func() (Conn, error) { return nil, err }
}

func modemManagerBus(location string) *fakeConn {
	return &fakeConn{objects: map[string]*fakeObject{
		mmName + " " + mmObjectPath: {
			calls: map[string][]interface{}{
				objectManagerMethod: {map[dbus.ObjectPath]map[string]map[string]dbus.Variant{
					"/org/freedesktop/ModemManager1/Modem/1": {},
					"/org/freedesktop/ModemManager1/Modem/0": {},
				}},
			},
		},
		mmName + " /org/freedesktop/ModemManager1/Modem/0": {
			calls: map[string][]interface{}{
				mmMethodGetLocation: {map[uint32]dbus.Variant{
					mmLocation3GPP: dbus.MakeVariant(location),
				}},
			},
			props: map[string]interface{}{
				mmInterfaceModem3gpp + ".Imei":         "490154203237518",
				mmInterfaceModem3gpp + ".OperatorName": "T-Mobile",
			},
		},
	}}
}

func ofonoBus() *fakeConn {
	return &fakeConn{objects: map[string]*fakeObject{
		ofonoName + " " + ofonoObjectPath: {
			calls: map[string][]interface{}{
				// a(oa{sv}) as decoded off the wire
				ofonoMethodGetModems: {[][]interface{}{
					{dbus.ObjectPath("/ril_0"), map[string]dbus.Variant{"Powered": dbus.MakeVariant(true)}},
					{dbus.ObjectPath("/ril_1"), map[string]dbus.Variant{}},
				}},
			},
		},
		ofonoName + " /ril_0": {
			calls: map[string][]interface{}{
				ofonoMethodNetworkRegistration: {map[string]dbus.Variant{
					"MobileCountryCode": dbus.MakeVariant("208"),
					"MobileNetworkCode": dbus.MakeVariant("15"),
					"Name":              dbus.MakeVariant("Free"),
					"Status":            dbus.MakeVariant("registered"),
				}},
				ofonoMethodModem: {map[string]dbus.Variant{
					"Serial":  dbus.MakeVariant("356938035643809"),
					"Powered": dbus.MakeVariant(true),
				}},
			},
		},
	}}
}
