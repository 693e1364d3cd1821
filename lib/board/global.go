package board

import "sync/atomic"

// The process-wide default board. Components that cannot share a *Board
// handle (plugins, far-apart subsystems) go through this instead; everything
// else should prefer an explicitly owned Board from New.
var global atomic.Pointer[Board]

// Create installs a fresh, empty default board. If one already exists it is
// torn down first and replaced — creation is idempotent by replacement, not
// by no-op. The boolean result always reports success; it exists so callers
// written against the create-may-fail contract keep working.
func Create() bool {
	old := global.Swap(New(nil))
	if old != nil {
		old.Close()
	}
	return true
}

// Destroy tears down the default board together with all its tables, values
// and callback registrations. Calling Destroy when no default board exists
// is a no-op.
func Destroy() {
	old := global.Swap(nil)
	if old != nil {
		old.Close()
	}
}

// IsReady reports whether a default board currently exists.
func IsReady() bool {
	b := global.Load()
	return b != nil && b.Ready()
}

// Default returns the process-wide default board. It panics when Create has
// not been called (or Destroy was): using the default board without a prior
// Create is a programmer error, mirroring data operations on a closed Board.
func Default() *Board {
	b := global.Load()
	if b == nil {
		panic("board: default board not created")
	}
	return b
}
