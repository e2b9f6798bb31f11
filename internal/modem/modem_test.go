package modem

import (
	"bytes"
	"errors"
	"testing"

	"github.com/FuriLabs/obex-capabilities/internal/config"
	"github.com/FuriLabs/obex-capabilities/internal/model"
	"github.com/godbus/dbus/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	logger.Level = logrus.DebugLevel
	return logger, &buf
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		input   string
		mcc     string
		mnc     string
		wantErr bool
	}{
		{"310,410,0,0,7", "310", "410", false},
		{"208,15,1a2b,3c4d5e,ff", "208", "15", false},
		{"001,01,0,0,0,extra", "001", "01", false},
		{"310,410,0", "", "", true},
		{"310,410,0,0", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mcc, mnc, err := ParseLocation(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedLocation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mcc, mcc)
			assert.Equal(t, tt.mnc, mnc)
		})
	}
}

func TestModemManagerBackend(t *testing.T) {
	bus := modemManagerBus("310,410,1a2b,3c4d5e,0")
	b := &ModemManagerBackend{Dial: bus.dialer()}

	m, err := b.Probe()
	require.NoError(t, err)

	assert.Equal(t, &model.Modem{
		Backend: "ModemManager",
		IMEI:    "490154203237518",
		Network: "T-Mobile",
		MCC:     "310",
		MNC:     "410",
	}, m)
	assert.Equal(t, 1, bus.closed)
}

func TestModemManagerMalformedLocation(t *testing.T) {
	bus := modemManagerBus("310,410,0")
	b := &ModemManagerBackend{Dial: bus.dialer()}

	m, err := b.Probe()
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrMalformedLocation)
	assert.Equal(t, 1, bus.closed)
}

func TestModemManagerNoModems(t *testing.T) {
	bus := &fakeConn{objects: map[string]*fakeObject{
		mmName + " " + mmObjectPath: {
			calls: map[string][]interface{}{
				objectManagerMethod: {map[dbus.ObjectPath]map[string]map[string]dbus.Variant{}},
			},
		},
	}}
	b := &ModemManagerBackend{Dial: bus.dialer()}

	_, err := b.Probe()
	assert.ErrorIs(t, err, ErrNoModem)
	assert.Equal(t, 1, bus.closed)
}

func TestModemManagerMissingProperty(t *testing.T) {
	bus := modemManagerBus("310,410,0,0,7")
	delete(bus.objects[mmName+" /org/freedesktop/ModemManager1/Modem/0"].props, mmInterfaceModem3gpp+".OperatorName")
	b := &ModemManagerBackend{Dial: bus.dialer()}

	_, err := b.Probe()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OperatorName")
}

func TestModemManagerNoLocation(t *testing.T) {
	bus := modemManagerBus("310,410,0,0,7")
	bus.objects[mmName+" /org/freedesktop/ModemManager1/Modem/0"].calls[mmMethodGetLocation] = []interface{}{
		map[uint32]dbus.Variant{4: dbus.MakeVariant("52.0,4.0")},
	}
	b := &ModemManagerBackend{Dial: bus.dialer()}

	_, err := b.Probe()
	assert.ErrorIs(t, err, ErrMissingProperty)
}

func TestModemManagerDialError(t *testing.T) {
	b := &ModemManagerBackend{Dial: failingDialer(errors.New("connection refused"))}

	_, err := b.Probe()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestOfonoBackend(t *testing.T) {
	bus := ofonoBus()
	b := &OfonoBackend{Dial: bus.dialer()}

	m, err := b.Probe()
	require.NoError(t, err)

	assert.Equal(t, &model.Modem{
		Backend: "oFono",
		IMEI:    "356938035643809",
		Network: "Free",
		MCC:     "208",
		MNC:     "15",
	}, m)
	assert.Equal(t, 1, bus.closed)
}

func TestOfonoNoModems(t *testing.T) {
	bus := &fakeConn{objects: map[string]*fakeObject{
		ofonoName + " " + ofonoObjectPath: {
			calls: map[string][]interface{}{
				ofonoMethodGetModems: {[][]interface{}{}},
			},
		},
	}}
	b := &OfonoBackend{Dial: bus.dialer()}

	_, err := b.Probe()
	assert.ErrorIs(t, err, ErrNoModem)
}

func TestOfonoNotRegistered(t *testing.T) {
	bus := ofonoBus()
	bus.objects[ofonoName+" /ril_0"].calls[ofonoMethodNetworkRegistration] = []interface{}{
		map[string]dbus.Variant{"Status": dbus.MakeVariant("searching")},
	}
	b := &OfonoBackend{Dial: bus.dialer()}

	m, err := b.Probe()
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrMissingProperty)
}

func TestOfonoWrongPropertyType(t *testing.T) {
	bus := ofonoBus()
	bus.objects[ofonoName+" /ril_0"].calls[ofonoMethodModem] = []interface{}{
		map[string]dbus.Variant{"Serial": dbus.MakeVariant(uint32(42))},
	}
	b := &OfonoBackend{Dial: bus.dialer()}

	_, err := b.Probe()
	assert.ErrorIs(t, err, ErrMissingProperty)
}

func TestAllPriorityOrder(t *testing.T) {
	backends := All(nil)
	require.Len(t, backends, 2)
	assert.Equal(t, "modemmanager", backends[0].Metadata().Name)
	assert.Equal(t, "ofono", backends[1].Metadata().Name)
}

func TestProbePrefersModemManager(t *testing.T) {
	logger, _ := testLogger()
	backends := []Backend{
		&ModemManagerBackend{Dial: modemManagerBus("310,410,0,0,7").dialer()},
		&OfonoBackend{Dial: ofonoBus().dialer()},
	}

	m, results := probe(backends, logger)
	require.NotNil(t, m)
	assert.Equal(t, "ModemManager", m.Backend)
	assert.Equal(t, "310", m.MCC)
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
}

func TestProbeFallsBackToOfono(t *testing.T) {
	logger, buf := testLogger()
	backends := []Backend{
		&ModemManagerBackend{Dial: failingDialer(errors.New("no such service"))},
		&OfonoBackend{Dial: ofonoBus().dialer()},
	}

	m, results := probe(backends, logger)
	require.NotNil(t, m)
	assert.Equal(t, "oFono", m.Backend)

	require.Len(t, results, 2)
	var perr *ProbeError
	require.ErrorAs(t, results[0].Err, &perr)
	assert.Equal(t, "ModemManager", perr.Backend)
	assert.NoError(t, results[1].Err)

	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), "Unable to use ModemManager D-Bus interface")
}

func TestProbeNoBackend(t *testing.T) {
	logger, _ := testLogger()
	backends := []Backend{
		&ModemManagerBackend{Dial: modemManagerBus("310,410").dialer()},
		&OfonoBackend{Dial: failingDialer(errors.New("no such service"))},
	}

	m, results := probe(backends, logger)
	assert.Nil(t, m)
	require.Len(t, results, 2)
	assert.ErrorIs(t, results[0].Err, ErrMalformedLocation)
	assert.Error(t, results[1].Err)
}

func TestResolveMock(t *testing.T) {
	logger, _ := testLogger()
	cfg := config.Defaults()
	cfg.Mock.Modem = true

	m, results := Resolve(cfg, logger)
	assert.Equal(t, model.FabricatedModem(), m)
	assert.Empty(t, results)
}
