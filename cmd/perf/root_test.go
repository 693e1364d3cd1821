package perf

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestMeasureRunsExactOpCount(t *testing.T) {
	origThreads, origOps := perfThreads, perfOps
	defer func() {
		perfThreads, perfOps = origThreads, origOps
	}()

	// ops deliberately not divisible by threads
	perfThreads = 4
	perfOps = 10

	var calls atomic.Int64
	timer := measure(func(worker, i int) {
		calls.Add(1)
	})

	if got := calls.Load(); got != 10 {
		t.Errorf("expected 10 op invocations, got %d", got)
	}
	if got := timer.Snapshot().Count(); got != 10 {
		t.Errorf("expected 10 timed samples, got %d", got)
	}
}

func TestMeasureIndicesCoverAllOps(t *testing.T) {
	origThreads, origOps := perfThreads, perfOps
	defer func() {
		perfThreads, perfOps = origThreads, origOps
	}()

	perfThreads = 3
	perfOps = 7

	var mu sync.Mutex
	seen := make(map[int]int)
	measure(func(worker, i int) {
		mu.Lock()
		seen[i]++
		mu.Unlock()
	})

	for i := 0; i < perfOps; i++ {
		if seen[i] != 1 {
			t.Errorf("op index %d ran %d times, expected 1", i, seen[i])
		}
	}
}
