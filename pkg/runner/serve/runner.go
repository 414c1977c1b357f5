package serve

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/store"
)

// Runner serves the timeline page over HTTP.
type Runner struct {
	Timeline *app.Timeline

	ListenAddr  string
	OnListening func(net.Addr)
	ServerCert  string
	ServerKey   string
	// Watch reloads the page when another process changes storage.
	Watch bool
}

// Do blocks serving until ctx is cancelled.
func (r Runner) Do(ctx context.Context) error {
	if r.Timeline == nil {
		return errors.New("serve runner requires a timeline")
	}
	if (r.ServerCert != "" && r.ServerKey == "") || (r.ServerCert == "" && r.ServerKey != "") {
		return errors.New("both tls cert and key must be provided")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if r.Watch {
		if err := r.Timeline.Watch(ctx); err != nil {
			return err
		}
	}

	listenAddr := r.ListenAddr
	if listenAddr == "" {
		listenAddr = store.DefaultAddr
	}

	httpSrv := &http.Server{
		Handler:           NewHandler(r.Timeline),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}

	if r.OnListening != nil {
		r.OnListening(ln.Addr())
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if r.ServerCert != "" && r.ServerKey != "" {
		err = httpSrv.ServeTLS(ln, r.ServerCert, r.ServerKey)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
