package options

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// ServeOptions configure the HTTP listeners.
type ServeOptions struct {
	Addr    string
	TLSCert string
	TLSKey  string
	Watch   bool
}

func AddServeArgs(cmd *cobra.Command, o *ServeOptions) {
	cmd.Flags().StringVar(&o.Addr, "addr", "",
		"Listen address. Defaults to the config file or 127.0.0.1:8080.")
	cmd.Flags().StringVar(&o.TLSCert, "tls-cert", "",
		"TLS certificate file for HTTPS.")
	cmd.Flags().StringVar(&o.TLSKey, "tls-key", "",
		"TLS private key file for HTTPS.")
	AddWatchArg(cmd, &o.Watch)
}

// AddWatchArg registers --watch, on by default.
func AddWatchArg(cmd *cobra.Command, watch *bool) {
	cmd.Flags().BoolVar(watch, "watch", true,
		"Reload when another process changes the timeline.")
}

// MCPOptions configure the MCP server transport.
type MCPOptions struct {
	Transport string
	Host      string
	Port      int
	Path      string
	TLSCert   string
	TLSKey    string
	Watch     bool
}

func AddMCPArgs(cmd *cobra.Command, o *MCPOptions) {
	cmd.Flags().StringVar(&o.Transport, "transport", "http",
		"Transport to use: http or stdio.")
	cmd.Flags().StringVar(&o.Host, "http-host", "127.0.0.1",
		"Host or interface for the HTTP transport.")
	cmd.Flags().IntVar(&o.Port, "http-port", 8081,
		"Port for the HTTP transport, 0 for a random one.")
	cmd.Flags().StringVar(&o.Path, "http-path", "/mcp",
		"HTTP endpoint path.")
	cmd.Flags().StringVar(&o.TLSCert, "http-tls-cert", "",
		"TLS certificate file for HTTPS.")
	cmd.Flags().StringVar(&o.TLSKey, "http-tls-key", "",
		"TLS private key file for HTTPS.")
	AddWatchArg(cmd, &o.Watch)
}

// Endpoint returns the listen address and the normalized endpoint path.
func (o *MCPOptions) Endpoint() (string, string, error) {
	if o.Port < 0 || o.Port > 65535 {
		return "", "", fmt.Errorf("invalid http-port %d", o.Port)
	}
	host := strings.TrimSpace(o.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	path := strings.TrimSpace(o.Path)
	if path == "" {
		path = "/mcp"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return net.JoinHostPort(host, strconv.Itoa(o.Port)), path, nil
}
