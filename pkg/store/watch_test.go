package store

import (
	"context"
	"testing"
	"time"
)

func TestDiskvWatchEmitsKeyChanges(t *testing.T) {
	base := t.TempDir()
	kv, err := NewDiskv(base)
	if err != nil {
		t.Fatalf("open diskv: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := kv.Watch(ctx, DefaultKey)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := kv.Write(DefaultKey, []byte(`[]`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case evt := <-ch:
		if evt.Key != DefaultKey {
			t.Fatalf("expected key %q, got %q", DefaultKey, evt.Key)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestDiskvWatchIgnoresOtherKeys(t *testing.T) {
	base := t.TempDir()
	kv, err := NewDiskv(base)
	if err != nil {
		t.Fatalf("open diskv: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := kv.Watch(ctx, DefaultKey)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	if err := kv.Write("other", []byte(`[]`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case evt := <-ch:
		t.Fatalf("unexpected event %+v", evt)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	kv, err := NewDiskv(t.TempDir())
	if err != nil {
		t.Fatalf("open diskv: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := kv.Watch(ctx, DefaultKey)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			// A stray event is fine; the next receive must observe the close.
			<-ch
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch channel not closed after cancel")
	}
}

func TestEventThrottleCoalesces(t *testing.T) {
	th := newEventThrottle(20 * time.Millisecond)
	defer th.Stop()

	got := make(chan Event, 8)
	send := func(ev Event) { got <- ev }
	for i := 0; i < 5; i++ {
		th.Enqueue(Event{Key: "k"}, send)
	}

	select {
	case ev := <-got:
		if ev.Key != "k" {
			t.Fatalf("unexpected key %q", ev.Key)
		}
	case <-time.After(time.Second):
		t.Fatal("throttle never flushed")
	}
	select {
	case ev := <-got:
		t.Fatalf("expected a single coalesced event, got extra %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}
