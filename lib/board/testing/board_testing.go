package testing

import (
	"sync"
	"testing"

	"github.com/sharedstate/blackboard/lib/board"
)

// BoardFactory is a function that creates a new Board instance for a test.
type BoardFactory func() *board.Board

// RunBoardTests runs a comprehensive conformance suite against a Board
// implementation configuration (e.g. with and without metrics enabled).
func RunBoardTests(t *testing.T, name string, factory BoardFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("RoundTrip", func(t *testing.T) {
			testRoundTrip(t, factory())
		})

		t.Run("DefaultOnMiss", func(t *testing.T) {
			testDefaultOnMiss(t, factory())
		})

		t.Run("TypeIsolation", func(t *testing.T) {
			testTypeIsolation(t, factory())
		})

		t.Run("CallbackOrder", func(t *testing.T) {
			testCallbackOrder(t, factory())
		})

		t.Run("SilentWrite", func(t *testing.T) {
			testSilentWrite(t, factory())
		})

		t.Run("ReplaceRegistration", func(t *testing.T) {
			testReplaceRegistration(t, factory())
		})

		t.Run("TargetedUnsubscribe", func(t *testing.T) {
			testTargetedUnsubscribe(t, factory())
		})

		t.Run("UnsubscribeAll", func(t *testing.T) {
			testUnsubscribeAll(t, factory())
		})

		t.Run("WipeKey", func(t *testing.T) {
			testWipeKey(t, factory())
		})

		t.Run("WipeAll", func(t *testing.T) {
			testWipeAll(t, factory())
		})

		t.Run("ReentrantCallback", func(t *testing.T) {
			testReentrantCallback(t, factory())
		})

		t.Run("CallbackPanicPropagates", func(t *testing.T) {
			testCallbackPanicPropagates(t, factory())
		})

		t.Run("Lifecycle", func(t *testing.T) {
			testLifecycle(t, factory())
		})

		t.Run("ConcurrentIntegrity", func(t *testing.T) {
			testConcurrentIntegrity(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testRoundTrip(t *testing.T, b *board.Board) {
	defer b.Close()

	type endpoint struct {
		Host string
		Port int
	}

	board.Write(b, "Number", 42)
	board.Write(b, "Ratio", 3.25)
	board.Write(b, "Name", "blackboard")
	board.Write(b, "Target", endpoint{Host: "localhost", Port: 8080})

	if got := board.Read[int](b, "Number"); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := board.Read[float64](b, "Ratio"); got != 3.25 {
		t.Errorf("expected 3.25, got %f", got)
	}
	if got := board.Read[string](b, "Name"); got != "blackboard" {
		t.Errorf("expected %q, got %q", "blackboard", got)
	}
	want := endpoint{Host: "localhost", Port: 8080}
	if got := board.Read[endpoint](b, "Target"); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	// overwrite in place, no history
	board.Write(b, "Number", 7)
	if got := board.Read[int](b, "Number"); got != 7 {
		t.Errorf("expected overwritten value 7, got %d", got)
	}
}

func testDefaultOnMiss(t *testing.T, b *board.Board) {
	defer b.Close()

	// Lookup never creates a table for an unused type.
	if _, ok := board.Lookup[uint32](b, "missing"); ok {
		t.Errorf("Lookup on unused type reported a hit")
	}
	if got := b.Info().Types; got != 0 {
		t.Errorf("Lookup materialized a table, Types = %d", got)
	}

	// Read on a miss returns the zero value and materializes the entry.
	if got := board.Read[float64](b, "Other"); got != 0.0 {
		t.Errorf("expected zero value 0.0, got %f", got)
	}
	if _, ok := board.Lookup[float64](b, "Other"); !ok {
		t.Errorf("read-on-miss did not materialize the entry")
	}

	// Idempotent: a second read observes the same materialized default.
	if got := board.Read[float64](b, "Other"); got != 0.0 {
		t.Errorf("expected idempotent default 0.0, got %f", got)
	}
	if got := b.Info().Entries; got != 1 {
		t.Errorf("expected exactly one materialized entry, got %d", got)
	}
}

func testTypeIsolation(t *testing.T, b *board.Board) {
	defer b.Close()

	board.Write(b, "k", 1)
	board.Write(b, "k", 2.0)
	board.Write(b, "k", "three")

	if got := board.Read[int](b, "k"); got != 1 {
		t.Errorf("int entry disturbed, got %d", got)
	}
	if got := board.Read[float64](b, "k"); got != 2.0 {
		t.Errorf("float64 entry disturbed, got %f", got)
	}

	// A typed wipe removes only its own type's entry.
	board.Wipe[int](b, "k")
	if _, ok := board.Lookup[int](b, "k"); ok {
		t.Errorf("int entry survived Wipe[int]")
	}
	if got, ok := board.Lookup[float64](b, "k"); !ok || got != 2.0 {
		t.Errorf("float64 entry lost by Wipe[int]: %f, %v", got, ok)
	}
	if got, ok := board.Lookup[string](b, "k"); !ok || got != "three" {
		t.Errorf("string entry lost by Wipe[int]: %q, %v", got, ok)
	}
}

func testCallbackOrder(t *testing.T, b *board.Board) {
	defer b.Close()

	var order []string

	board.SubscribeKey[int](b, "k", func(key string) {
		if key != "k" {
			t.Errorf("key-only callback got key %q", key)
		}
		order = append(order, "key")
	})
	board.SubscribeValue[int](b, "k", func(v int) {
		if v != 99 {
			t.Errorf("value-only callback got %d", v)
		}
		order = append(order, "value")
	})
	board.SubscribeKeyValue[int](b, "k", func(key string, v int) {
		if key != "k" || v != 99 {
			t.Errorf("key+value callback got (%q, %d)", key, v)
		}
		order = append(order, "pair")
	})

	board.Write(b, "k", 99)

	if len(order) != 3 || order[0] != "key" || order[1] != "value" || order[2] != "pair" {
		t.Errorf("expected callback order [key value pair], got %v", order)
	}

	// Callbacks fire per write, not once.
	board.Write(b, "k", 99)
	if len(order) != 6 {
		t.Errorf("expected callbacks to fire again on overwrite, got %d calls", len(order))
	}

	// Writes to other keys of the same type stay silent.
	board.Write(b, "other", 1)
	if len(order) != 6 {
		t.Errorf("write to unrelated key fired callbacks")
	}
}

func testSilentWrite(t *testing.T, b *board.Board) {
	defer b.Close()

	fired := 0
	board.SubscribeKey[int](b, "k", func(string) { fired++ })
	board.SubscribeValue[int](b, "k", func(int) { fired++ })
	board.SubscribeKeyValue[int](b, "k", func(string, int) { fired++ })

	board.WriteSilent(b, "k", 1)

	if fired != 0 {
		t.Errorf("WriteSilent fired %d callbacks", fired)
	}
	if got := board.Read[int](b, "k"); got != 1 {
		t.Errorf("WriteSilent did not store the value, got %d", got)
	}
}

func testReplaceRegistration(t *testing.T, b *board.Board) {
	defer b.Close()

	firstFired := 0
	secondFired := 0

	board.SubscribeValue[int](b, "k", func(int) { firstFired++ })
	board.SubscribeValue[int](b, "k", func(int) { secondFired++ })

	board.Write(b, "k", 1)

	if firstFired != 0 {
		t.Errorf("replaced callback still fired %d times", firstFired)
	}
	if secondFired != 1 {
		t.Errorf("replacing callback fired %d times, expected 1", secondFired)
	}
}

func testTargetedUnsubscribe(t *testing.T, b *board.Board) {
	defer b.Close()

	intK := 0
	intOther := 0
	floatK := 0

	board.SubscribeValue[int](b, "k", func(int) { intK++ })
	board.SubscribeValue[int](b, "other", func(int) { intOther++ })
	board.SubscribeValue[float64](b, "k", func(float64) { floatK++ })

	board.Unsubscribe[int](b, "k")

	board.Write(b, "k", 1)
	board.Write(b, "other", 1)
	board.Write(b, "k", 1.0)

	if intK != 0 {
		t.Errorf("unsubscribed (int, k) callback fired %d times", intK)
	}
	if intOther != 1 {
		t.Errorf("(int, other) callback fired %d times, expected 1", intOther)
	}
	if floatK != 1 {
		t.Errorf("(float64, k) callback fired %d times, expected 1", floatK)
	}
}

func testUnsubscribeAll(t *testing.T, b *board.Board) {
	defer b.Close()

	fired := 0
	board.SubscribeKey[int](b, "k", func(string) { fired++ })
	board.SubscribeValue[float64](b, "k", func(float64) { fired++ })
	board.SubscribeKeyValue[string](b, "k", func(string, string) { fired++ })
	board.SubscribeValue[int](b, "other", func(int) { fired++ })

	b.UnsubscribeAll("k")

	board.Write(b, "k", 1)
	board.Write(b, "k", 1.0)
	board.Write(b, "k", "v")

	if fired != 0 {
		t.Errorf("callbacks for key survived UnsubscribeAll, fired %d times", fired)
	}

	board.Write(b, "other", 1)
	if fired != 1 {
		t.Errorf("callback for unrelated key lost by UnsubscribeAll")
	}
}

func testWipeKey(t *testing.T, b *board.Board) {
	defer b.Close()

	board.Write(b, "k", 1)
	board.Write(b, "k", 2.0)
	board.Write(b, "keep", "v")

	b.WipeKey("k")

	if _, ok := board.Lookup[int](b, "k"); ok {
		t.Errorf("int entry survived WipeKey")
	}
	if _, ok := board.Lookup[float64](b, "k"); ok {
		t.Errorf("float64 entry survived WipeKey")
	}
	if got, ok := board.Lookup[string](b, "keep"); !ok || got != "v" {
		t.Errorf("unrelated key lost by WipeKey")
	}

	// wiping a key nobody wrote is a no-op, not an error
	b.WipeKey("nonexistent")
}

func testWipeAll(t *testing.T, b *board.Board) {
	defer b.Close()

	fired := 0
	board.SubscribeValue[int](b, "k", func(int) { fired++ })
	board.Write(b, "k", 1)
	board.Write(b, "x", 2.0)

	// values go, registrations stay armed
	b.WipeAll(false)

	if got := b.Info().Entries; got != 0 {
		t.Errorf("WipeAll(false) left %d entries", got)
	}
	board.Write(b, "k", 2)
	if fired != 2 {
		t.Errorf("callback disarmed by WipeAll(false), fired %d times", fired)
	}

	// with wipeCallbacks the registrations go too
	b.WipeAll(true)
	board.Write(b, "k", 3)
	if fired != 2 {
		t.Errorf("callback survived WipeAll(true)")
	}
}

func testReentrantCallback(t *testing.T, b *board.Board) {
	defer b.Close()

	board.SubscribeValue[int](b, "trigger", func(v int) {
		// A callback may call back into the board on the same goroutine.
		board.Write(b, "derived", v*2)
		if got := board.Read[int](b, "trigger"); got != v {
			t.Errorf("callback observed %d instead of committed %d", got, v)
		}
		board.SubscribeKey[string](b, "late", func(string) {})
	})

	board.Write(b, "trigger", 21)

	if got := board.Read[int](b, "derived"); got != 42 {
		t.Errorf("reentrant write lost, got %d", got)
	}
}

func testCallbackPanicPropagates(t *testing.T, b *board.Board) {
	defer b.Close()

	board.SubscribeValue[int](b, "k", func(int) {
		panic("callback failure")
	})

	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("panic in callback did not reach the Write caller")
			}
		}()
		board.Write(b, "k", 7)
	}()

	// the value commits before callbacks are raised, so the write survives
	// the panicking callback
	if got, ok := board.Lookup[int](b, "k"); !ok || got != 7 {
		t.Errorf("value lost to callback panic: got %d, present=%v", got, ok)
	}

	// the board stays usable afterwards
	board.Unsubscribe[int](b, "k")
	board.Write(b, "k", 8)
	if got := board.Read[int](b, "k"); got != 8 {
		t.Errorf("board unusable after callback panic, got %d", got)
	}
}

func testLifecycle(t *testing.T, b *board.Board) {
	if !b.Ready() {
		t.Errorf("fresh board not ready")
	}

	board.Write(b, "Number", 42)
	if got := board.Read[int](b, "Number"); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}

	b.Close()
	if b.Ready() {
		t.Errorf("closed board still ready")
	}
	b.Close() // idempotent

	defer func() {
		if recover() == nil {
			t.Errorf("data operation on closed board did not panic")
		}
	}()
	board.Read[int](b, "Number")
}

func testConcurrentIntegrity(t *testing.T, b *board.Board) {
	defer b.Close()

	// pair carries the tearing detector: both halves are always written
	// with the same value, so any observed pair with A != B is torn.
	type pair struct {
		A uint64
		B uint64
	}

	const (
		goroutines = 8
		iterations = 2000
	)

	var wg sync.WaitGroup
	wg.Add(goroutines * 2)

	for g := 0; g < goroutines; g++ {
		go func(seed uint64) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				v := seed*uint64(iterations) + uint64(i)
				board.Write(b, "counter", pair{A: v, B: v})
			}
		}(uint64(g))

		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				got := board.Read[pair](b, "counter")
				if got.A != got.B {
					t.Errorf("torn value observed: %+v", got)
					return
				}
			}
		}()
	}

	wg.Wait()
}
