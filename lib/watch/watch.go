// Package watch layers channel-based change watching on top of a Board.
// It turns the at-most-one key+value callback slot of a (type, key) pair
// into a Go channel, which composes with select loops, contexts and
// fan-in much better than raw callbacks.
package watch

import (
	"context"
	"sync/atomic"

	"github.com/sharedstate/blackboard/lib/board"
)

// Event is one observed overwrite of a key.
type Event[T any] struct {
	Key   string
	Value T
}

// Keys subscribes to overwrites of key for value type T and forwards them
// into the returned channel. Sends are non-blocking: when the channel buffer
// is full the event is dropped rather than stalling the writer, so a slow
// consumer misses updates instead of backpressuring the Board.
//
// A watcher occupies the key+value callback slot for (T, key); installing a
// watcher replaces a previously registered key+value callback and vice
// versa.
//
// The returned stop function releases the subscription. The channel is never
// closed (a callback may still be in flight on another goroutine when stop
// returns); consumers should select on their own cancellation signal.
func Keys[T any](b *board.Board, key string, buffer int) (<-chan Event[T], func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event[T], buffer)
	var stopped atomic.Bool

	board.SubscribeKeyValue[T](b, key, func(k string, v T) {
		if stopped.Load() {
			return
		}
		select {
		case ch <- Event[T]{Key: k, Value: v}:
		default:
			// drop, slow consumer
		}
	})

	stop := func() {
		if stopped.CompareAndSwap(false, true) {
			// Clear only the key+value slot; other shapes the caller may
			// have registered stay armed.
			board.SubscribeKeyValue[T](b, key, nil)
		}
	}
	return ch, stop
}

// Await blocks until key is next overwritten for value type T, or until ctx
// is done. It subscribes, waits for one event, and unsubscribes before
// returning.
func Await[T any](ctx context.Context, b *board.Board, key string) (Event[T], error) {
	ch, stop := Keys[T](b, key, 1)
	defer stop()

	select {
	case ev := <-ch:
		return ev, nil
	case <-ctx.Done():
		return Event[T]{}, ctx.Err()
	}
}
