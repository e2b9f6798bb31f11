package config

import (
	"strings"

	"github.com/jeremywohl/flatten"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ErrConfig = errors.New("configuration error")

const (
	mockDeviceKey = "override.mock_device"
	mockModemKey  = "override.mock_modem"
)

// envBindings maps config keys to the environment variables allowed to
// override them. Nothing else is read from the environment.
var envBindings = map[string]string{
	"paths.os_release": "OS_RELEASE_PATH",
	"paths.machine_id": "MACHINE_ID_PATH",
	"paths.deviceinfo": "DEVICEINFO_PATH",
	mockDeviceKey:      "MOCK_DEVICE",
	mockModemKey:       "MOCK_MODEM",
}

type Config struct {
	Debug bool  `mapstructure:"debug"`
	Paths Paths `mapstructure:"paths"`
	Mock  Mock  `mapstructure:"mock"`
}

// Paths lists every file the probes read.
type Paths struct {
	OSRelease            string   `mapstructure:"os_release"`
	MachineID            string   `mapstructure:"machine_id"`
	DeviceInfo           string   `mapstructure:"deviceinfo"`
	DeviceTreeCompatible string   `mapstructure:"device_tree_compatible"`
	DeviceTreeModel      string   `mapstructure:"device_tree_model"`
	DMIDir               string   `mapstructure:"dmi_dir"`
	OverrideDir          string   `mapstructure:"override_dir"` // Droidian obex-* files
	BuildProps           []string `mapstructure:"build_props"`  // first existing wins
}

// Mock forces the fabricated device and/or modem instead of probing.
type Mock struct {
	Device bool `mapstructure:"device"`
	Modem  bool `mapstructure:"modem"`
}

// Defaults returns the compiled-in configuration.
func Defaults() *Config {
	return &Config{
		Paths: Paths{
			OSRelease:            "/etc/os-release",
			MachineID:            "/etc/machine-id",
			DeviceInfo:           "/etc/deviceinfo",
			DeviceTreeCompatible: "/proc/device-tree/compatible",
			DeviceTreeModel:      "/proc/device-tree/model",
			DMIDir:               "/sys/class/dmi/id",
			OverrideDir:          "/usr/lib/droidian/device",
			BuildProps: []string{
				"/var/lib/lxc/android/rootfs/vendor/build.prop",
				"/android/vendor/build.prop",
				"/vendor/build.prop",
			},
		},
	}
}

// Load builds the configuration from the defaults and the environment.
func Load(debug bool) (*Config, error) {
	v := viper.New()
	cfg := Defaults()

	if err := cfg.bindVars(v); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(ErrConfig, "unmarshal: "+err.Error())
	}

	cfg.Mock.Device = enabled(v.GetString(mockDeviceKey))
	cfg.Mock.Modem = enabled(v.GetString(mockModemKey))
	cfg.Debug = debug

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// bindVars registers every field of cfg as a viper default so Unmarshal
// keeps them, then binds the allowed environment variables.
func (cfg *Config) bindVars(v *viper.Viper) error {
	flat, err := cfg.flatten()
	if err != nil {
		return err
	}

	for k, val := range flat {
		v.SetDefault(k, val)
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return errors.Wrap(ErrConfig, "env var bind error: "+err.Error())
		}
	}

	return nil
}

func (cfg *Config) flatten() (map[string]interface{}, error) {
	nested := map[string]interface{}{}
	if err := mapstructure.Decode(cfg, &nested); err != nil {
		return nil, errors.Wrap(err, "Unable to decode config")
	}

	flat, err := flatten.Flatten(nested, "", flatten.DotStyle)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to flatten config")
	}

	return flat, nil
}

func (cfg *Config) validate() error {
	if cfg == nil {
		return ErrConfig
	}

	if cfg.Paths.OSRelease == "" {
		return errors.Wrap(ErrConfig, "no os-release path")
	}

	if cfg.Paths.MachineID == "" {
		return errors.Wrap(ErrConfig, "no machine-id path")
	}

	return nil
}

// AsLogFields returns the configuration as flat logrus fields.
func (cfg *Config) AsLogFields() logrus.Fields {
	flat, err := cfg.flatten()
	if err != nil {
		return logrus.Fields{"config_error": err.Error()}
	}
	return logrus.Fields(flat)
}

// enabled reports whether an override variable is switched on. Any value
// other than empty, "0" or "false" counts.
func enabled(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && s != "0" && !strings.EqualFold(s, "false")
}
