package modem

import (
	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"
)

const objectManagerMethod = "org.freedesktop.DBus.ObjectManager.GetManagedObjects"

// Conn is the part of *dbus.Conn the backends need.
type Conn interface {
	Object(dest string, path dbus.ObjectPath) dbus.BusObject
	Close() error
}

// Dialer opens a new bus connection.
type Dialer func() (Conn, error)

// SystemBus opens a private connection to the system bus.
func SystemBus() (Conn, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func dial(d Dialer) (Conn, error) {
	if d == nil {
		d = SystemBus
	}
	conn, err := d()
	if err != nil {
		return nil, errors.Wrap(err, "connecting to system bus")
	}
	return conn, nil
}

// stringProperty reads a string property through org.freedesktop.DBus.Properties.
func stringProperty(obj dbus.BusObject, name string) (string, error) {
	v, err := obj.GetProperty(name)
	if err != nil {
		return "", errors.Wrapf(err, "getting %s", name)
	}
	return asString(v, name)
}

// stringFromMap extracts a string entry from a property dictionary.
func stringFromMap(props map[string]dbus.Variant, key string) (string, error) {
	v, ok := props[key]
	if !ok {
		return "", errors.Wrap(ErrMissingProperty, key)
	}
	return asString(v, key)
}

func asString(v dbus.Variant, name string) (string, error) {
	s, ok := v.Value().(string)
	if !ok {
		return "", errors.Wrapf(ErrMissingProperty, "%s is %s, not a string", name, v.Signature())
	}
	return s, nil
}
