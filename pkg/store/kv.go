// Package store holds the local key/value backends that persist the timeline.
package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Read when the key has never been written.
var ErrNotFound = errors.New("store: key not found")

// KV is the persistence contract: whole values written and read under a key.
type KV interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	Erase(key string) error
	// Watch streams a notification whenever key changes on disk, including
	// writes by other processes. The channel closes when ctx is done.
	Watch(ctx context.Context, key string) (<-chan Event, error)
	Close() error
}

// Open creates the KV selected by cfg, loading the default config when nil.
func Open(cfg Config) (KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch d := cfg.Driver(); d {
	case DriverDiskv:
		return NewDiskv(cfg.BasePath())
	case DriverSQLite:
		return NewSQLite(cfg.BasePath())
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown driver %q", d)
	}
}
