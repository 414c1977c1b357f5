package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"tableflip.dev/timeline/pkg/entry"
	"tableflip.dev/timeline/pkg/render"
	"tableflip.dev/timeline/pkg/store"
)

// ErrNotFound is returned when an operation names an id that is not listed.
var ErrNotFound = errors.New("app: entry not found")

// DeletePrompt is the question put to a Confirmer before removing an entry.
const DeletePrompt = "Delete this timeline entry?"

// Confirmer decides whether a destructive action goes ahead.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) (bool, error)

func (f ConfirmFunc) Confirm(prompt string) (bool, error) { return f(prompt) }

// Confirmed approves every prompt. Use it where the caller already asked the
// user, e.g. a browser confirm() in front of the HTTP request.
var Confirmed Confirmer = ConfirmFunc(func(string) (bool, error) { return true, nil })

// Timeline owns the in-memory list of entries and mirrors it to a KV slot.
// Every surface (web, CLI, TUI, MCP) shares one Timeline.
type Timeline struct {
	kv  store.KV
	key string
	now func() time.Time

	mu          sync.Mutex
	entries     []*entry.Entry
	expanded    int64
	hasExpanded bool
	last        []byte

	subMu   sync.Mutex
	subs    map[int]chan struct{}
	nextSub int
}

// Option tweaks a Timeline at load time.
type Option func(*Timeline)

// WithClock overrides the time source used to stamp new ids.
func WithClock(now func() time.Time) Option {
	return func(t *Timeline) { t.now = now }
}

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(t *Timeline) {
		if key != "" {
			t.key = key
		}
	}
}

// Load reads the persisted list. Absent or unparsable data yields an empty
// timeline; only storage failures are returned.
func Load(kv store.KV, opts ...Option) (*Timeline, error) {
	if kv == nil {
		return nil, errors.New("app: no persistence configured")
	}
	t := &Timeline{
		kv:   kv,
		key:  store.DefaultKey,
		now:  time.Now,
		subs: make(map[int]chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	if _, err := t.reload(); err != nil {
		return nil, err
	}
	return t, nil
}

// reload replaces the list with the stored one and reports whether the
// stored bytes differed from what was last seen. The read happens under mu so
// a concurrent Add or Delete cannot persist between the read and the swap.
func (t *Timeline) reload() (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := t.kv.Read(t.key)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return false, fmt.Errorf("app: read %s: %w", t.key, err)
	}
	if t.last != nil && string(data) == string(t.last) {
		return false, nil
	}
	t.last = append([]byte{}, data...)

	list, err := entry.Unmarshal(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "app: ignoring unreadable %s: %v\n", t.key, err)
		list = []*entry.Entry{}
	}
	t.entries = list
	if t.hasExpanded && t.indexLocked(t.expanded) < 0 {
		t.hasExpanded = false
	}
	return true, nil
}

// Reload re-reads storage after an external change and notifies subscribers
// if the list changed.
func (t *Timeline) Reload() error {
	changed, err := t.reload()
	if err != nil {
		return err
	}
	if changed {
		t.notify()
	}
	return nil
}

// Entries returns a copy of the list in display order.
func (t *Timeline) Entries() []*entry.Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*entry.Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Clone()
	}
	return out
}

// Len is the number of entries.
func (t *Timeline) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Get returns a copy of the entry with id.
func (t *Timeline) Get(id int64) (*entry.Entry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i := t.indexLocked(id); i >= 0 {
		return t.entries[i].Clone(), nil
	}
	return nil, ErrNotFound
}

// Add stamps a new entry with the current time, inserts it in date order and
// persists the list. The entry stays in memory even if persisting fails.
func (t *Timeline) Add(date, title, description, image string) (*entry.Entry, error) {
	t.mu.Lock()
	e := entry.New(t.now(), date, title, description, image)
	for t.indexLocked(e.ID) >= 0 {
		e.ID++
	}
	t.entries = append(t.entries, e)
	entry.Sort(t.entries)
	err := t.persistLocked()
	t.mu.Unlock()

	t.notify()
	return e.Clone(), err
}

// Delete asks c for confirmation and, if given, removes every entry with id
// and persists. A declined prompt changes nothing and reports false.
func (t *Timeline) Delete(id int64, c Confirmer) (bool, error) {
	t.mu.Lock()
	known := t.indexLocked(id) >= 0
	t.mu.Unlock()
	if !known {
		return false, ErrNotFound
	}

	if c == nil {
		return false, errors.New("app: delete requires a confirmer")
	}
	ok, err := c.Confirm(DeletePrompt)
	if err != nil || !ok {
		return false, err
	}

	t.mu.Lock()
	kept := t.entries[:0]
	removed := false
	for _, e := range t.entries {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	t.entries = kept
	if t.hasExpanded && t.expanded == id {
		t.hasExpanded = false
	}
	err = t.persistLocked()
	t.mu.Unlock()

	t.notify()
	return removed, err
}

// Toggle collapses every other entry and flips id. It returns whether id is
// expanded afterwards; unknown ids are ignored.
func (t *Timeline) Toggle(id int64) bool {
	t.mu.Lock()
	if t.indexLocked(id) < 0 {
		t.mu.Unlock()
		return false
	}
	if t.hasExpanded && t.expanded == id {
		t.hasExpanded = false
	} else {
		t.expanded = id
		t.hasExpanded = true
	}
	open := t.hasExpanded
	t.mu.Unlock()

	t.notify()
	return open
}

// Expanded returns the id of the expanded entry, if any.
func (t *Timeline) Expanded() (int64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.expanded, t.hasExpanded
}

// Persist overwrites the storage slot with the whole list.
func (t *Timeline) Persist() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.persistLocked()
}

func (t *Timeline) persistLocked() error {
	data, err := entry.Marshal(t.entries)
	if err != nil {
		return fmt.Errorf("app: encode timeline: %w", err)
	}
	if err := t.kv.Write(t.key, data); err != nil {
		return fmt.Errorf("app: write %s: %w", t.key, err)
	}
	t.last = data
	return nil
}

func (t *Timeline) indexLocked(id int64) int {
	for i, e := range t.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Item is one rendered entry with its actions bound to the entry id.
type Item struct {
	Entry    *entry.Entry
	Expanded bool
	Toggle   func() bool
	Delete   func(c Confirmer) (bool, error)
}

// Items snapshots the list for display.
func (t *Timeline) Items() []Item {
	t.mu.Lock()
	defer t.mu.Unlock()
	items := make([]Item, 0, len(t.entries))
	for _, e := range t.entries {
		id := e.ID
		items = append(items, Item{
			Entry:    e.Clone(),
			Expanded: t.hasExpanded && t.expanded == id,
			Toggle:   func() bool { return t.Toggle(id) },
			Delete:   func(c Confirmer) (bool, error) { return t.Delete(id, c) },
		})
	}
	return items
}

// Render returns the container markup for the current list.
func (t *Timeline) Render() string {
	return render.Container(t.renderItems())
}

// RenderPage returns the full HTML document for the current list.
func (t *Timeline) RenderPage() string {
	return render.Page(t.renderItems())
}

func (t *Timeline) renderItems() []render.Item {
	items := t.Items()
	out := make([]render.Item, len(items))
	for i, it := range items {
		out[i] = render.Item{Entry: it.Entry, Expanded: it.Expanded}
	}
	return out
}

// Subscribe returns a channel that receives a signal after every change. The
// channel is closed when ctx is done.
func (t *Timeline) Subscribe(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{}, 1)
	t.subMu.Lock()
	id := t.nextSub
	t.nextSub++
	t.subs[id] = ch
	t.subMu.Unlock()

	go func() {
		<-ctx.Done()
		t.subMu.Lock()
		delete(t.subs, id)
		close(ch)
		t.subMu.Unlock()
	}()
	return ch
}

func (t *Timeline) notify() {
	t.subMu.Lock()
	defer t.subMu.Unlock()
	for _, ch := range t.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Watch reloads the list whenever storage changes underneath it, until ctx
// is done.
func (t *Timeline) Watch(ctx context.Context) error {
	events, err := t.kv.Watch(ctx, t.key)
	if err != nil {
		return err
	}
	go func() {
		for range events {
			if err := t.Reload(); err != nil {
				fmt.Fprintf(os.Stderr, "app: reload: %v\n", err)
			}
		}
	}()
	return nil
}
