package options

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/printers"
	"tableflip.dev/timeline/pkg/store"
)

func TestParseID(t *testing.T) {
	id, err := ParseID(" 1704412800000 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1704412800000 {
		t.Fatalf("unexpected id %d", id)
	}
	if _, err := ParseID("abc"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestOutputFormat(t *testing.T) {
	o := &OutputOptions{Output: "yaml"}
	f, err := o.Format()
	if err != nil || f != printers.FormatYAML {
		t.Fatalf("expected yaml, got %q, %v", f, err)
	}
	o.JSON = true
	if f, _ := o.Format(); f != printers.FormatJSON {
		t.Fatalf("expected --json to win, got %q", f)
	}
}

func TestConfirmerYes(t *testing.T) {
	o := &ConfirmOptions{Yes: true}
	c, err := o.Confirmer(&cobra.Command{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok, _ := c.Confirm(app.DeletePrompt); !ok {
		t.Fatalf("expected --yes to confirm")
	}
}

func TestConfirmerRefusesNonTerminal(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("y\n"))
	cmd.SetOut(&bytes.Buffer{})

	o := &ConfirmOptions{}
	if _, err := o.Confirmer(cmd); !errors.Is(err, ErrNotInteractive) {
		t.Fatalf("expected ErrNotInteractive, got %v", err)
	}
}

func TestStoreConfigOverrides(t *testing.T) {
	t.Setenv("TIMELINE_CONFIG_PATH", t.TempDir())
	dir := t.TempDir()

	o := &StoreOptions{Path: dir, Driver: "sqlite", Key: "other"}
	cfg, err := o.Config()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BasePath() != dir || cfg.Driver() != store.DriverSQLite || cfg.Key() != "other" {
		t.Fatalf("overrides not applied: %s %s %s", cfg.BasePath(), cfg.Driver(), cfg.Key())
	}

	o.Driver = "redis"
	if _, err := o.Config(); err == nil {
		t.Fatalf("expected unknown driver error")
	}
}

func TestMCPEndpoint(t *testing.T) {
	o := &MCPOptions{Host: " ", Port: 8081, Path: "mcp"}
	addr, path, err := o.Endpoint()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr != "127.0.0.1:8081" {
		t.Fatalf("unexpected addr %q", addr)
	}
	if path != "/mcp" {
		t.Fatalf("unexpected path %q", path)
	}

	o = &MCPOptions{Host: "::1", Port: 0, Path: "/rpc"}
	if addr, _, _ := o.Endpoint(); addr != "[::1]:0" {
		t.Fatalf("unexpected addr %q", addr)
	}

	o.Port = 70000
	if _, _, err := o.Endpoint(); err == nil {
		t.Fatalf("expected invalid port error")
	}
}
