package watch_test

import (
	"context"
	"testing"
	"time"

	"github.com/sharedstate/blackboard/lib/board"
	"github.com/sharedstate/blackboard/lib/watch"
)

func TestKeysDeliversChanges(t *testing.T) {
	b := board.New(nil)
	defer b.Close()

	ch, stop := watch.Keys[int](b, "counter", 4)
	defer stop()

	board.Write(b, "counter", 1)
	board.Write(b, "counter", 2)

	for want := 1; want <= 2; want++ {
		select {
		case ev := <-ch:
			if ev.Key != "counter" || ev.Value != want {
				t.Errorf("expected (counter, %d), got (%q, %d)", want, ev.Key, ev.Value)
			}
		default:
			t.Fatalf("event %d not delivered", want)
		}
	}
}

func TestKeysDropsWhenFull(t *testing.T) {
	b := board.New(nil)
	defer b.Close()

	ch, stop := watch.Keys[int](b, "counter", 1)
	defer stop()

	// second write must not block the writer; it is dropped
	board.Write(b, "counter", 1)
	board.Write(b, "counter", 2)

	ev := <-ch
	if ev.Value != 1 {
		t.Errorf("expected first event retained, got %d", ev.Value)
	}
	select {
	case ev := <-ch:
		t.Errorf("expected overflow event dropped, got %d", ev.Value)
	default:
	}
}

func TestStopReleasesSubscription(t *testing.T) {
	b := board.New(nil)
	defer b.Close()

	ch, stop := watch.Keys[int](b, "counter", 4)
	stop()
	stop() // idempotent

	board.Write(b, "counter", 1)

	select {
	case ev := <-ch:
		t.Errorf("stopped watcher received %d", ev.Value)
	default:
	}
}

func TestStopKeepsOtherShapesArmed(t *testing.T) {
	b := board.New(nil)
	defer b.Close()

	fired := 0
	board.SubscribeKey[int](b, "counter", func(string) { fired++ })

	_, stop := watch.Keys[int](b, "counter", 1)
	stop()

	board.Write(b, "counter", 1)
	if fired != 1 {
		t.Errorf("key-only callback disturbed by watcher stop, fired %d times", fired)
	}
}

func TestAwait(t *testing.T) {
	b := board.New(nil)
	defer b.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		ev, err := watch.Await[string](context.Background(), b, "status")
		if err != nil {
			t.Errorf("Await returned error: %v", err)
			return
		}
		if ev.Value != "ready" {
			t.Errorf("expected %q, got %q", "ready", ev.Value)
		}
	}()

	// give the waiter a moment to subscribe, then publish
	for i := 0; i < 100; i++ {
		board.Write(b, "status", "ready")
		select {
		case <-done:
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
	t.Fatalf("Await never observed the write")
}

func TestAwaitCancellation(t *testing.T) {
	b := board.New(nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := watch.Await[int](ctx, b, "never"); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
