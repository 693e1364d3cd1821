package board

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Callback Shapes
// --------------------------------------------------------------------------

// KeyCallback is invoked with the key whose value was overwritten.
type KeyCallback func(key string)

// ValueCallback is invoked with the newly committed value.
type ValueCallback[T any] func(value T)

// KeyValueCallback is invoked with both the key and the newly committed value.
type KeyValueCallback[T any] func(key string, value T)

// --------------------------------------------------------------------------
// Type-Erased Capability Surface
// --------------------------------------------------------------------------

// table is the type-erased surface the Board relies on to sweep tables of
// unknown value types. It covers exactly the four operations the Board needs
// without knowing T; everything typed goes through valueTable[T] directly.
type table interface {
	// wipeKey removes the value entry for key (callbacks stay registered).
	wipeKey(key string)
	// wipeAll removes every value entry (callbacks stay registered).
	wipeAll()
	// unsubscribe removes all three callback shapes for key.
	unsubscribe(key string)
	// clearCallbacks removes every callback of every shape.
	clearCallbacks()
	// entries reports the number of value entries.
	entries() int
	// callbacks reports the number of registered callbacks across all shapes.
	callbacks() int
}

// --------------------------------------------------------------------------
// Typed Table
// --------------------------------------------------------------------------

// valueTable holds all state for a single value type: the key-value entries
// plus one callback registry per shape. At most one callback of each shape is
// registered per key; registering again replaces.
//
// All maps are xsync maps, so every single-key operation is atomic without a
// table-wide lock. Cross-key consistency is the Board's concern, not ours.
type valueTable[T any] struct {
	values *xsync.MapOf[string, T]

	keySubs  *xsync.MapOf[string, KeyCallback]
	valSubs  *xsync.MapOf[string, ValueCallback[T]]
	pairSubs *xsync.MapOf[string, KeyValueCallback[T]]
}

func newValueTable[T any]() *valueTable[T] {
	return &valueTable[T]{
		values:   xsync.NewMapOf[string, T](),
		keySubs:  xsync.NewMapOf[string, KeyCallback](),
		valSubs:  xsync.NewMapOf[string, ValueCallback[T]](),
		pairSubs: xsync.NewMapOf[string, KeyValueCallback[T]](),
	}
}

// write commits value at key, overwriting any prior entry, and returns the
// committed value as read back from storage. Commit and read-back happen in
// one atomic step so callbacks raised for this write observe the entry this
// write produced, not the caller's argument.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (t *valueTable[T]) write(key string, value T) T {
	committed, _ := t.values.Compute(key, func(_ T, _ bool) (T, bool) {
		return value, false
	})
	return committed
}

// read returns the value stored at key. If the key was never written, a zero
// value of T is inserted into the table and returned; the materialization is
// atomic and idempotent, so concurrent first reads agree on one entry.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (t *valueTable[T]) read(key string) (value T, materialized bool) {
	var zero T
	actual, loaded := t.values.LoadOrStore(key, zero)
	return actual, !loaded
}

// lookup returns the value stored at key without materializing anything.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (t *valueTable[T]) lookup(key string) (T, bool) {
	return t.values.Load(key)
}

// raise invokes the registered callbacks for key in the fixed order
// key-only, value-only, key+value, each only if registered. It returns the
// number of callbacks invoked. Panics inside a callback propagate.
func (t *valueTable[T]) raise(key string, committed T) int {
	fired := 0
	if cb, ok := t.keySubs.Load(key); ok {
		cb(key)
		fired++
	}
	if cb, ok := t.valSubs.Load(key); ok {
		cb(committed)
		fired++
	}
	if cb, ok := t.pairSubs.Load(key); ok {
		cb(key, committed)
		fired++
	}
	return fired
}

// --------------------------------------------------------------------------
// table Interface Implementation
// --------------------------------------------------------------------------

func (t *valueTable[T]) wipeKey(key string) {
	t.values.Delete(key)
}

func (t *valueTable[T]) wipeAll() {
	t.values.Clear()
}

func (t *valueTable[T]) unsubscribe(key string) {
	t.keySubs.Delete(key)
	t.valSubs.Delete(key)
	t.pairSubs.Delete(key)
}

func (t *valueTable[T]) clearCallbacks() {
	t.keySubs.Clear()
	t.valSubs.Clear()
	t.pairSubs.Clear()
}

func (t *valueTable[T]) entries() int {
	return t.values.Size()
}

func (t *valueTable[T]) callbacks() int {
	return t.keySubs.Size() + t.valSubs.Size() + t.pairSubs.Size()
}
