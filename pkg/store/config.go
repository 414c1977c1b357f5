package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultKey is the storage slot holding the serialised timeline.
	DefaultKey = "timelineData"
	// DefaultAddr is where `timeline serve` listens unless configured.
	DefaultAddr = "127.0.0.1:8080"
)

// Driver selects the local key/value backend.
type Driver string

const (
	DriverDiskv  Driver = "diskv"
	DriverSQLite Driver = "sqlite"
	DriverMemory Driver = "memory"
)

type Config interface {
	BasePath() string
	Driver() Driver
	Key() string
	Addr() string
}

// LoadConfig reads .timeline.yaml (if any) and TIMELINE_* environment
// variables on top of the defaults.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.timeline")
	v.SetDefault("driver", string(DriverDiskv))
	v.SetDefault("key", DefaultKey)
	v.SetDefault("addr", DefaultAddr)
	v.SetConfigName(".timeline") // .yaml is implicit
	v.SetEnvPrefix("TIMELINE")
	v.AutomaticEnv()

	if override := os.Getenv("TIMELINE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	driver, err := ParseDriver(v.GetString("driver"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:       path,
		DriverName: driver,
		StoreKey:   v.GetString("key"),
		ListenAddr: v.GetString("addr"),
	}, nil
}

// ParseDriver validates a driver name; empty selects diskv.
func ParseDriver(raw string) (Driver, error) {
	switch d := Driver(strings.ToLower(strings.TrimSpace(raw))); d {
	case "":
		return DriverDiskv, nil
	case DriverDiskv, DriverSQLite, DriverMemory:
		return d, nil
	default:
		return "", fmt.Errorf("store: unknown driver %q", raw)
	}
}

// StaticConfig is a Config with fixed values, handy for tests and flags.
func StaticConfig(path string, driver Driver) Config {
	return &fileConfig{Path: path, DriverName: driver, StoreKey: DefaultKey, ListenAddr: DefaultAddr}
}

// WithOverrides layers non-empty values over base.
func WithOverrides(base Config, path string, driver Driver, key, addr string) Config {
	cfg := &fileConfig{
		Path:       base.BasePath(),
		DriverName: base.Driver(),
		StoreKey:   base.Key(),
		ListenAddr: base.Addr(),
	}
	if path != "" {
		cfg.Path = path
	}
	if driver != "" {
		cfg.DriverName = driver
	}
	if key != "" {
		cfg.StoreKey = key
	}
	if addr != "" {
		cfg.ListenAddr = addr
	}
	return cfg
}

type fileConfig struct {
	Path       string `json:"path"`
	DriverName Driver `json:"driver"`
	StoreKey   string `json:"key"`
	ListenAddr string `json:"addr"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Driver() Driver {
	if f.DriverName == "" {
		return DriverDiskv
	}
	return f.DriverName
}

func (f *fileConfig) Key() string {
	if f.StoreKey == "" {
		return DefaultKey
	}
	return f.StoreKey
}

func (f *fileConfig) Addr() string {
	if f.ListenAddr == "" {
		return DefaultAddr
	}
	return f.ListenAddr
}
