package serve

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/render"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	// fetchHeader marks requests made by the page script, which expect the
	// container fragment back instead of a redirect.
	fetchHeader = "X-Requested-With"
)

type handler struct {
	timeline *app.Timeline
	hub      *hub
}

// NewHandler routes the timeline page, its form actions and the live
// update socket. State-changing requests from other origins are refused.
func NewHandler(t *app.Timeline) http.Handler {
	h := &handler{timeline: t, hub: newHub(t)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.page)
	mux.HandleFunc("GET /entries", h.container)
	mux.HandleFunc("POST /entries", h.add)
	mux.HandleFunc("POST /entries/{id}/toggle", h.toggle)
	mux.HandleFunc("POST /entries/{id}/delete", h.delete)
	mux.HandleFunc("GET /ws", h.hub.ServeHTTP)
	return http.NewCrossOriginProtection().Handler(mux)
}

func (h *handler) page(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, http.StatusOK, h.timeline.RenderPage())
}

func (h *handler) container(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, http.StatusOK, h.timeline.Render())
}

func (h *handler) add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, "invalid form: "+err.Error(), http.StatusBadRequest)
		return
	}
	date := strings.TrimSpace(r.FormValue("date"))
	title := strings.TrimSpace(r.FormValue("title"))
	if date == "" || title == "" {
		http.Error(w, "date and title are required", http.StatusBadRequest)
		return
	}

	if _, err := h.timeline.Add(date, title, r.FormValue("description"), strings.TrimSpace(r.FormValue("image"))); err != nil {
		fmt.Fprintf(os.Stderr, "serve: add: %v\n", err)
		http.Error(w, "could not save entry", http.StatusInternalServerError)
		return
	}
	h.done(w, r)
}

func (h *handler) toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}
	if _, err := h.timeline.Get(id); err != nil {
		http.NotFound(w, r)
		return
	}
	h.timeline.Toggle(id)
	h.done(w, r)
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}
	if err := r.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, "invalid form: "+err.Error(), http.StatusBadRequest)
		return
	}

	confirmed := app.ConfirmFunc(func(string) (bool, error) {
		return r.FormValue("confirm") == "yes", nil
	})
	removed, err := h.timeline.Delete(id, confirmed)
	switch {
	case errors.Is(err, app.ErrNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		fmt.Fprintf(os.Stderr, "serve: delete %d: %v\n", id, err)
		http.Error(w, "could not delete entry", http.StatusInternalServerError)
		return
	}

	if !removed {
		// Without the page script nobody asked the user yet.
		e, err := h.timeline.Get(id)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		writeHTML(w, http.StatusOK, render.ConfirmDelete(e))
		return
	}
	h.done(w, r)
}

// done answers a successful mutation: the fresh container for the page
// script, a redirect back to the page for plain form posts.
func (h *handler) done(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get(fetchHeader) != "" {
		writeHTML(w, http.StatusOK, h.timeline.Render())
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func entryID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
