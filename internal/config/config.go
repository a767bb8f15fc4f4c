// Package config loads runtime settings from defaults, an optional config
// file, PROVISION_* environment variables and command-line flags, in
// increasing order of precedence. Settings are read only; nothing is ever
// written back.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/allbin/provision"
	"github.com/allbin/provision/serial"
	"github.com/spf13/viper"
)

// Keys shared by flags, environment variables and config files
const (
	KeyPort         = "port"
	KeyBaud         = "baud"
	KeyReadTimeout  = "read-timeout"
	KeyWriteTimeout = "write-timeout"
	KeySyncWrites   = "sync-writes"
	KeyMarkers      = "markers"
	KeyEnumerator   = "enumerator"
	KeyLogLevel     = "log-level"
)

// EnvPrefix is prepended to upper-cased keys, with dashes as underscores
const EnvPrefix = "PROVISION"

// Enumerator names
const (
	EnumeratorSystem = "system"
	EnumeratorSysfs  = "sysfs"
)

var ErrUnknownEnumerator = errors.New("unknown enumerator")

// Config is the resolved runtime configuration
type Config struct {
	Port         string // empty means detect
	BaudRate     int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	SyncWrites   bool
	Markers      []string
	Enumerator   string
	LogLevel     string
}

// New returns a viper instance with defaults and environment binding set up
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPort, "")
	v.SetDefault(KeyBaud, 115200)
	v.SetDefault(KeyReadTimeout, 2*time.Second)
	v.SetDefault(KeyWriteTimeout, provision.DefaultWriteTimeout)
	v.SetDefault(KeySyncWrites, false)
	v.SetDefault(KeyMarkers, provision.DefaultMarkers)
	v.SetDefault(KeyEnumerator, EnumeratorSystem)
	v.SetDefault(KeyLogLevel, "warn")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile merges the config file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

// Load resolves and validates the configuration held by v
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:         strings.TrimSpace(v.GetString(KeyPort)),
		BaudRate:     v.GetInt(KeyBaud),
		ReadTimeout:  v.GetDuration(KeyReadTimeout),
		WriteTimeout: v.GetDuration(KeyWriteTimeout),
		SyncWrites:   v.GetBool(KeySyncWrites),
		Markers:      markers(v),
		Enumerator:   strings.ToLower(v.GetString(KeyEnumerator)),
		LogLevel:     v.GetString(KeyLogLevel),
	}

	if _, err := serial.NewConfig(cfg.SerialOptions()...); err != nil {
		return Config{}, fmt.Errorf("invalid serial settings (baud %d, read timeout %v): %w", cfg.BaudRate, cfg.ReadTimeout, err)
	}
	if cfg.WriteTimeout <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %v", KeyWriteTimeout, cfg.WriteTimeout)
	}
	if _, err := cfg.Lister(); err != nil {
		return Config{}, err
	}
	if len(cfg.Markers) == 0 {
		cfg.Markers = provision.DefaultMarkers
	}
	return cfg, nil
}

// markers reads the marker list. Environment variables arrive as a single
// comma separated string; markers may themselves contain spaces.
func markers(v *viper.Viper) []string {
	raw, ok := v.Get(KeyMarkers).(string)
	if !ok {
		return v.GetStringSlice(KeyMarkers)
	}

	var out []string
	for _, m := range strings.Split(raw, ",") {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}

// SerialOptions returns the port options for the configured line settings
func (c Config) SerialOptions() []serial.Option {
	opts := []serial.Option{
		serial.WithBaudRate(c.BaudRate),
		serial.WithReadTimeout(c.ReadTimeout),
	}
	if c.SyncWrites {
		opts = append(opts, serial.WithSyncWrite())
	}
	return opts
}

// Lister returns the port enumerator selected by Enumerator
func (c Config) Lister() (provision.Lister, error) {
	switch c.Enumerator {
	case EnumeratorSystem, "":
		return provision.SystemLister, nil
	case EnumeratorSysfs:
		return provision.SysfsLister, nil
	default:
		return nil, fmt.Errorf("%w %q (want %s or %s)", ErrUnknownEnumerator, c.Enumerator, EnumeratorSystem, EnumeratorSysfs)
	}
}
