package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

const valueExt = ".json"

type diskvKV struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskv stores each key as <basePath>/<key>.json.
func NewDiskv(basePath string) (KV, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	// CacheSizeMax stays zero: other processes may rewrite the file at any time.
	return &diskvKV{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
		}),
		basePath: basePath,
	}, nil
}

func (k *diskvKV) Read(key string) ([]byte, error) {
	val, err := k.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (k *diskvKV) Write(key string, val []byte) error {
	return k.d.Write(key, val)
}

func (k *diskvKV) Erase(key string) error {
	if err := k.d.Erase(key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (k *diskvKV) Watch(ctx context.Context, key string) (<-chan Event, error) {
	target := filepath.Join(k.basePath, key+valueExt)
	return watchFiles(ctx, k.basePath, key, func(name string) bool {
		return filepath.Clean(name) == target
	})
}

func (k *diskvKV) Close() error {
	return nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s + valueExt,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, valueExt)
}
