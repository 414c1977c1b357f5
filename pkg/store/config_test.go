package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDriver(t *testing.T) {
	for in, want := range map[string]Driver{
		"":        DriverDiskv,
		"diskv":   DriverDiskv,
		" SQLite": DriverSQLite,
		"memory":  DriverMemory,
	} {
		got, err := ParseDriver(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseDriver("redis")
	assert.Error(t, err)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	data := "path: " + filepath.Join(dir, "data") + "\ndriver: sqlite\nkey: myTimeline\naddr: 127.0.0.1:9999\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".timeline.yaml"), []byte(data), 0o644))
	t.Setenv("TIMELINE_CONFIG_PATH", dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.BasePath())
	assert.Equal(t, DriverSQLite, cfg.Driver())
	assert.Equal(t, "myTimeline", cfg.Key())
	assert.Equal(t, "127.0.0.1:9999", cfg.Addr())
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("TIMELINE_CONFIG_PATH", t.TempDir())
	t.Setenv("TIMELINE_DRIVER", "memory")
	t.Setenv("TIMELINE_PATH", "/tmp/somewhere")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Driver())
	assert.Equal(t, "/tmp/somewhere", cfg.BasePath())
	assert.Equal(t, DefaultKey, cfg.Key())
}

func TestWithOverrides(t *testing.T) {
	base := StaticConfig("/data", DriverDiskv)

	cfg := WithOverrides(base, "", DriverSQLite, "", "0.0.0.0:80")
	assert.Equal(t, "/data", cfg.BasePath())
	assert.Equal(t, DriverSQLite, cfg.Driver())
	assert.Equal(t, DefaultKey, cfg.Key())
	assert.Equal(t, "0.0.0.0:80", cfg.Addr())

	assert.Equal(t, DriverDiskv, base.Driver(), "base is not modified")
}
