// Package perf benchmarks the board's hot paths in-process and reports
// latency percentiles.
package perf

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rcrowley/go-metrics"
	"github.com/sharedstate/blackboard/cmd/util"
	"github.com/sharedstate/blackboard/lib/board"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	PerfCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Benchmark write/read/callback paths of an in-process board",
		RunE:    run,
		PreRunE: processConfig,
	}

	perfThreads = 8
	perfKeys    = 1024
	perfOps     = 200_000
)

func init() {
	cobra.OnInitialize(util.InitConfig)

	key := "threads"
	PerfCmd.Flags().Int(key, 8, util.WrapString("Number of concurrent worker goroutines"))
	key = "keys"
	PerfCmd.Flags().Int(key, 1024, util.WrapString("How many distinct keys to spread operations over"))
	key = "ops"
	PerfCmd.Flags().Int(key, 200_000, util.WrapString("Total operations per benchmark"))
}

func processConfig(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	perfThreads = viper.GetInt("threads")
	perfKeys = viper.GetInt("keys")
	perfOps = viper.GetInt("ops")
	return nil
}

func run(_ *cobra.Command, _ []string) error {
	fmt.Println("blackboard performance test")
	fmt.Printf("threads=%d keys=%d ops=%d\n\n", perfThreads, perfKeys, perfOps)

	b := board.New(nil)
	defer b.Close()

	report("write", measure(func(worker, i int) {
		board.WriteSilent(b, benchKey(i), i)
	}))

	report("read", measure(func(worker, i int) {
		_ = board.Read[int](b, benchKey(i))
	}))

	// arm all three shapes on every key, then measure the raising write
	for i := 0; i < perfKeys; i++ {
		sink := 0
		key := benchKey(i)
		board.SubscribeKey[int](b, key, func(string) { sink++ })
		board.SubscribeValue[int](b, key, func(int) { sink++ })
		board.SubscribeKeyValue[int](b, key, func(string, int) { sink++ })
	}
	report("write+callbacks", measure(func(worker, i int) {
		board.Write(b, benchKey(i), i)
	}))

	return nil
}

func benchKey(i int) string {
	return "__perf" + strconv.Itoa(i%perfKeys)
}

// measure runs exactly perfOps invocations of op across perfThreads
// goroutines and times each invocation. The remainder of perfOps divided by
// perfThreads is spread over the first workers so no operation is dropped.
func measure(op func(worker, i int)) metrics.Timer {
	timer := metrics.NewTimer()

	var wg sync.WaitGroup
	wg.Add(perfThreads)
	next := 0
	for w := 0; w < perfThreads; w++ {
		n := perfOps / perfThreads
		if w < perfOps%perfThreads {
			n++
		}
		go func(worker, first, n int) {
			defer wg.Done()
			for i := 0; i < n; i++ {
				began := time.Now()
				op(worker, first+i)
				timer.UpdateSince(began)
			}
		}(w, next, n)
		next += n
	}
	wg.Wait()

	return timer
}

func report(name string, timer metrics.Timer) {
	snapshot := timer.Snapshot()
	ps := snapshot.Percentiles([]float64{0.5, 0.95, 0.99})
	fmt.Printf("%-16s %8d ops   mean %8.0f ns   p50 %8.0f ns   p95 %8.0f ns   p99 %8.0f ns\n",
		name, snapshot.Count(), snapshot.Mean(), ps[0], ps[1], ps[2])
}
