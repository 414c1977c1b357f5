package serve

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"tableflip.dev/timeline/pkg/app"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// hub pushes freshly rendered container markup to every connected page
// whenever the timeline changes.
type hub struct {
	timeline *app.Timeline
}

func newHub(t *app.Timeline) *hub {
	return &hub{timeline: t}
}

func (h *hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an error response.
		return
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	changes := h.timeline.Subscribe(ctx)

	// Pages never send anything; reading detects the close.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(h.timeline.Render())); err != nil {
				return
			}
		}
	}
}
