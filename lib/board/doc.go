// Package board implements an in-process, heterogeneous key-value store
// ("blackboard"): callers write and read values of arbitrary, per-call
// statically known types under string keys, and may register
// change-notification callbacks fired whenever a key's value is overwritten.
// It lets decoupled components of one process share state without direct
// references to one another.
//
// The package focuses on:
//   - Typed storage: one table per value type, resolved through generics
//   - Change notification: three callback shapes per key per type
//   - Type-agnostic sweeps across all tables via an erased capability surface
//   - Safe concurrent use, including reentrant use from inside callbacks
//
// Key Components:
//
//   - Board: the coordinator. It owns a registry of typed tables keyed by
//     reflect.Type, created lazily the first time a value type is used and
//     released only by Close. Boards are explicit objects constructed with
//     New; a process-wide default board is available through Create /
//     Destroy / Default for components that cannot share a handle.
//
//   - Typed operations: because Go methods cannot introduce type parameters,
//     the typed surface consists of package-level generic functions taking
//     the Board as their first argument: Write, WriteSilent, Read, Lookup,
//     Wipe, SubscribeKey, SubscribeValue, SubscribeKeyValue, Unsubscribe.
//     Type-agnostic operations (WipeKey, WipeAll, UnsubscribeAll, Info,
//     Ready, Close) are ordinary methods.
//
//   - Callback shapes: per key and value type, at most one key-only, one
//     value-only and one key+value callback may be registered; registering
//     again replaces. A write raises them in exactly that order, each with
//     the committed value as read back from storage.
//
// Note on Read semantics:
//
// Read on a key never written for T inserts a zero value of T into the
// table and returns it. This auto-materializing miss is part of the
// contract and is idempotent: subsequent reads observe the materialized
// entry. Lookup is the non-mutating alternative and reports presence
// explicitly.
//
// Note on Concurrency:
//
// Tables are backed by xsync maps, so every single-key operation commits
// atomically and a torn value is never observed; the Board itself only
// locks the table registry, briefly, on the lazy-create path and for
// sweeps. Callbacks are dispatched synchronously on the writing goroutine
// after the value is committed and with no Board lock held. A callback may
// therefore write, read, subscribe or wipe on the same Board without any
// reentrant-lock machinery and without deadlocking other goroutines.
//
// The relaxation compared to one global lock: operations on different keys
// are not serialized against each other, and when two goroutines race a
// write to the same key, last-write-wins for the stored value while both
// writers raise their callbacks (each observing a committed value current
// at read-back time). Within one write, callback order is always
// key-only, value-only, key+value.
//
// Errors are deliberately absent from the surface: the store performs no
// I/O, misses on read materialize and misses on wipe or unsubscribe are
// no-ops. The only failures are programmer errors — using a closed Board,
// or a corrupted type registry — and those panic.
package board
