package testing

import (
	"strconv"
	"testing"

	"github.com/sharedstate/blackboard/lib/board"
)

// RunBoardBenchmarks runs all benchmarks for a Board configuration.
func RunBoardBenchmarks(b *testing.B, name string, factory BoardFactory) {
	b.Run("Write", func(b *testing.B) {
		benchmarkWrite(b, factory())
	})

	b.Run("WriteExisting", func(b *testing.B) {
		benchmarkWriteExisting(b, factory())
	})

	b.Run("WriteWithCallbacks", func(b *testing.B) {
		benchmarkWriteWithCallbacks(b, factory())
	})

	b.Run("Read", func(b *testing.B) {
		benchmarkRead(b, factory())
	})

	b.Run("Lookup", func(b *testing.B) {
		benchmarkLookup(b, factory())
	})

	b.Run("MixedUsage", func(b *testing.B) {
		benchmarkMixedUsage(b, factory())
	})
}

// --------------------------------------------------------------------------
// Benchmark functions
// --------------------------------------------------------------------------

func benchmarkWrite(b *testing.B, bd *board.Board) {
	b.Cleanup(bd.Close)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			board.WriteSilent(bd, "bench-"+strconv.Itoa(counter%1024), counter)
			counter++
		}
	})
}

func benchmarkWriteExisting(b *testing.B, bd *board.Board) {
	b.Cleanup(bd.Close)

	board.WriteSilent(bd, "bench", 0)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			board.WriteSilent(bd, "bench", counter)
			counter++
		}
	})
}

func benchmarkWriteWithCallbacks(b *testing.B, bd *board.Board) {
	b.Cleanup(bd.Close)

	sink := 0
	board.SubscribeKey[int](bd, "bench", func(string) { sink++ })
	board.SubscribeValue[int](bd, "bench", func(int) { sink++ })
	board.SubscribeKeyValue[int](bd, "bench", func(string, int) { sink++ })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Write(bd, "bench", i)
	}
}

func benchmarkRead(b *testing.B, bd *board.Board) {
	b.Cleanup(bd.Close)

	for i := 0; i < 1024; i++ {
		board.WriteSilent(bd, "bench-"+strconv.Itoa(i), i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			_ = board.Read[int](bd, "bench-"+strconv.Itoa(counter%1024))
			counter++
		}
	})
}

func benchmarkLookup(b *testing.B, bd *board.Board) {
	b.Cleanup(bd.Close)

	for i := 0; i < 1024; i++ {
		board.WriteSilent(bd, "bench-"+strconv.Itoa(i), i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			_, _ = board.Lookup[int](bd, "bench-"+strconv.Itoa(counter%1024))
			counter++
		}
	})
}

func benchmarkMixedUsage(b *testing.B, bd *board.Board) {
	b.Cleanup(bd.Close)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			key := "bench-" + strconv.Itoa(counter%256)
			switch counter % 4 {
			case 0:
				board.WriteSilent(bd, key, counter)
			case 1, 2:
				_ = board.Read[int](bd, key)
			case 3:
				board.Wipe[int](bd, key)
			}
			counter++
		}
	})
}
