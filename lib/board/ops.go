package board

// Typed operations are package-level generic functions rather than methods
// because Go methods cannot introduce type parameters. They all resolve the
// typed table for T first, creating it on first use.

// Write stores a copy of value at key in T's table, overwriting any prior
// entry, then raises the callbacks registered for key in the fixed order
// key-only, value-only, key+value. Each callback observes the committed
// value as read back from storage, not the caller's argument.
//
// A panic inside a callback propagates to the caller of Write.
//
// Thread-safety: This function is thread-safe and can be called concurrently,
// including from within a callback raised by another write.
func Write[T any](b *Board, key string, value T) {
	tbl, _ := tableFor[T](b, true)
	committed := tbl.write(key, value)
	b.stats.countWrite()
	b.stats.countCallbacks(tbl.raise(key, committed))
}

// WriteSilent stores a copy of value at key in T's table without raising any
// callbacks. Otherwise identical to Write.
func WriteSilent[T any](b *Board, key string, value T) {
	tbl, _ := tableFor[T](b, true)
	tbl.write(key, value)
	b.stats.countWrite()
}

// Read returns the value stored at key in T's table. If key was never
// written for T, a zero value of T is inserted into the table and returned;
// repeated reads of a missing key are idempotent and observe that one entry.
// Use Lookup to read without materializing.
func Read[T any](b *Board, key string) T {
	tbl, _ := tableFor[T](b, true)
	value, materialized := tbl.read(key)
	b.stats.countRead(materialized)
	return value
}

// Lookup returns the value stored at key in T's table and whether such an
// entry exists. Unlike Read it never modifies the Board: no table is created
// for T and no entry is materialized on a miss.
func Lookup[T any](b *Board, key string) (T, bool) {
	tbl, ok := tableFor[T](b, false)
	b.stats.countRead(false)
	if !ok {
		var zero T
		return zero, false
	}
	return tbl.lookup(key)
}

// Wipe removes the value entry for key from T's table only. Entries for the
// same key under other value types are untouched. Absent keys are ignored.
func Wipe[T any](b *Board, key string) {
	tbl, _ := tableFor[T](b, true)
	tbl.wipeKey(key)
	b.stats.countWipe()
}

// SubscribeKey registers fn as the key-only callback for key in T's table,
// replacing any previous key-only callback for that key. A nil fn removes
// the registration.
func SubscribeKey[T any](b *Board, key string, fn KeyCallback) {
	tbl, _ := tableFor[T](b, true)
	if fn == nil {
		tbl.keySubs.Delete(key)
		return
	}
	tbl.keySubs.Store(key, fn)
}

// SubscribeValue registers fn as the value-only callback for key in T's
// table, replacing any previous value-only callback for that key. A nil fn
// removes the registration.
func SubscribeValue[T any](b *Board, key string, fn ValueCallback[T]) {
	tbl, _ := tableFor[T](b, true)
	if fn == nil {
		tbl.valSubs.Delete(key)
		return
	}
	tbl.valSubs.Store(key, fn)
}

// SubscribeKeyValue registers fn as the key+value callback for key in T's
// table, replacing any previous key+value callback for that key. A nil fn
// removes the registration.
func SubscribeKeyValue[T any](b *Board, key string, fn KeyValueCallback[T]) {
	tbl, _ := tableFor[T](b, true)
	if fn == nil {
		tbl.pairSubs.Delete(key)
		return
	}
	tbl.pairSubs.Store(key, fn)
}

// Unsubscribe removes all three callback shapes for key in T's table.
// Callbacks for other keys, or for the same key under other value types,
// stay registered.
func Unsubscribe[T any](b *Board, key string) {
	tbl, ok := tableFor[T](b, false)
	if !ok {
		return
	}
	tbl.unsubscribe(key)
}
