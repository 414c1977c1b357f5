package commands

import (
	"fmt"
	"net"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/runner/serve"
)

func addServe(topLevel *cobra.Command) {
	sv := &options.ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the timeline widget over HTTP",
		Long: `Serve the timeline page. The page adds, expands and deletes entries in
place and stays in sync with other browsers and with changes made from the CLI.`,
		Example: `
timeline serve
timeline serve --addr :8080
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := loadTimeline()
			if err != nil {
				return err
			}
			defer s.Close()

			addr := strings.TrimSpace(sv.Addr)
			if addr == "" {
				addr = s.Config.Addr()
			}

			runner := serve.Runner{
				Timeline:   s.Timeline,
				ListenAddr: addr,
				ServerCert: strings.TrimSpace(sv.TLSCert),
				ServerKey:  strings.TrimSpace(sv.TLSKey),
				Watch:      sv.Watch,
			}
			runner.OnListening = func(a net.Addr) {
				scheme := "http"
				if runner.ServerCert != "" && runner.ServerKey != "" {
					scheme = "https"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Timeline listening on %s://%s/\n", scheme, displayAddr(a))
			}
			return runner.Do(cmd.Context())
		},
	}

	options.AddServeArgs(cmd, sv)
	topLevel.AddCommand(cmd)
}

// displayAddr turns a listener address into something a browser can open.
func displayAddr(a net.Addr) string {
	tcpAddr, ok := a.(*net.TCPAddr)
	if !ok {
		return a.String()
	}
	host := "127.0.0.1"
	if tcpAddr.IP != nil && !tcpAddr.IP.IsUnspecified() {
		host = tcpAddr.IP.String()
	}
	return net.JoinHostPort(host, fmt.Sprint(tcpAddr.Port))
}
