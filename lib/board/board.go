package board

import (
	"fmt"
	"reflect"
	"sync"
)

// --------------------------------------------------------------------------
// Board
// --------------------------------------------------------------------------

// Board is the coordinating store object. It owns one typed table per value
// type ever used with it, created lazily on first use and released only when
// the Board is closed.
//
// A Board is safe for concurrent use by multiple goroutines. Callbacks run
// synchronously on the goroutine that performed the triggering write, after
// the value has been committed and with no Board lock held, so a callback may
// freely call back into the Board (see package documentation).
//
// Using a closed Board is a programmer error and panics.
type Board struct {
	// mu guards the tables registry only; table contents are managed by the
	// tables themselves.
	mu     sync.RWMutex
	tables map[reflect.Type]table // nil once closed

	stats *boardMetrics // nil unless enabled via Options
}

// Options configures a Board during initialization.
type Options struct {
	// Metrics enables per-board operation counters, exposed in Prometheus
	// text format via Board.WritePrometheus.
	Metrics bool
}

// New creates a fresh, empty Board.
func New(opts *Options) *Board {
	b := &Board{
		tables: make(map[reflect.Type]table),
	}
	if opts != nil && opts.Metrics {
		b.stats = newBoardMetrics()
	}
	return b
}

// Close releases every typed table together with its values and callback
// registrations. Any data operation after Close panics. Closing an already
// closed Board is a no-op.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tables = nil
}

// Ready reports whether the Board is usable, i.e. has not been closed.
func (b *Board) Ready() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tables != nil
}

// --------------------------------------------------------------------------
// Table Resolution
// --------------------------------------------------------------------------

// tableFor resolves the typed table for T, creating it if create is set and
// no table exists yet. The returned bool is false only when create is false
// and T has never been used with this Board.
//
// The registry is keyed by reflect.Type, which is unique per value type
// within a process run. Retrieval uses a checked assertion: a registered
// table whose concrete type does not match T indicates registry corruption
// and panics.
func tableFor[T any](b *Board, create bool) (*valueTable[T], bool) {
	typ := reflect.TypeOf((*T)(nil)).Elem()

	// Fast path: read lock only.
	b.mu.RLock()
	if b.tables == nil {
		b.mu.RUnlock()
		panic("board: use of closed Board")
	}
	tbl, ok := b.tables[typ]
	b.mu.RUnlock()

	if !ok {
		if !create {
			return nil, false
		}

		b.mu.Lock()
		if b.tables == nil {
			b.mu.Unlock()
			panic("board: use of closed Board")
		}
		// Re-check under the write lock in case another goroutine created
		// the table meanwhile.
		tbl, ok = b.tables[typ]
		if !ok {
			tbl = newValueTable[T]()
			b.tables[typ] = tbl
		}
		b.mu.Unlock()
	}

	vt, ok := tbl.(*valueTable[T])
	if !ok {
		panic(fmt.Sprintf("board: table registered for %v has concrete type %T", typ, tbl))
	}
	return vt, true
}

// snapshot returns the current set of tables for a type-agnostic sweep.
// Sweeps never create tables.
func (b *Board) snapshot() []table {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.tables == nil {
		panic("board: use of closed Board")
	}
	tables := make([]table, 0, len(b.tables))
	for _, tbl := range b.tables {
		tables = append(tables, tbl)
	}
	return tables
}

// --------------------------------------------------------------------------
// Type-Agnostic Sweeps
// --------------------------------------------------------------------------

// WipeKey removes the value entry for key from every table the Board
// currently owns, regardless of value type. Keys that are absent in a table
// are ignored. Callback registrations are not touched.
func (b *Board) WipeKey(key string) {
	for _, tbl := range b.snapshot() {
		tbl.wipeKey(key)
	}
	b.stats.countWipe()
}

// WipeAll clears all value entries in every table. If wipeCallbacks is set,
// every callback registration is removed as well; otherwise subscriptions
// stay armed and fire again on the next write.
func (b *Board) WipeAll(wipeCallbacks bool) {
	for _, tbl := range b.snapshot() {
		tbl.wipeAll()
		if wipeCallbacks {
			tbl.clearCallbacks()
		}
	}
	b.stats.countWipe()
}

// UnsubscribeAll removes all three callback shapes for key from every table
// the Board currently owns. Value entries are not touched.
func (b *Board) UnsubscribeAll(key string) {
	for _, tbl := range b.snapshot() {
		tbl.unsubscribe(key)
	}
}
