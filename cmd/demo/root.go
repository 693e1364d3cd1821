// Package demo walks through the blackboard's public surface with a scripted
// sequence: lifecycle, typed reads and writes, callbacks, and wipes.
package demo

import (
	"fmt"
	"os"

	"github.com/sharedstate/blackboard/lib/board"
	"github.com/spf13/cobra"
)

var DemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted walk-through of the store",
	Run:   run,
}

func run(_ *cobra.Command, _ []string) {
	fmt.Println("-- lifecycle --")
	if board.Create() {
		fmt.Println("default board created")
	}
	fmt.Printf("ready: %v\n", board.IsReady())
	board.Destroy()
	fmt.Printf("ready after destroy: %v\n", board.IsReady())

	// everything below uses an explicitly owned board
	b := board.New(&board.Options{Metrics: true})
	defer b.Close()

	fmt.Println()
	fmt.Println("-- typed reads and writes --")
	board.Write(b, "UserInteger", 42)
	board.Write(b, "UserFloat", 3.14)
	board.Write(b, "UserValue", "hello blackboard")

	type color struct{ R, G, B, A uint8 }
	// same key, different type: entries coexist independently
	board.Write(b, "UserValue", color{R: 255, G: 128, B: 0, A: 255})

	fmt.Printf("int   UserInteger = %d\n", board.Read[int](b, "UserInteger"))
	fmt.Printf("float UserFloat   = %v\n", board.Read[float64](b, "UserFloat"))
	fmt.Printf("str   UserValue   = %q\n", board.Read[string](b, "UserValue"))
	fmt.Printf("color UserValue   = %+v\n", board.Read[color](b, "UserValue"))
	fmt.Printf("float Missing     = %v (materialized zero value)\n", board.Read[float64](b, "Missing"))

	fmt.Println()
	fmt.Println("-- callbacks --")
	board.SubscribeKey[int](b, "Counter", func(key string) {
		fmt.Printf("  key-only:  %s changed\n", key)
	})
	board.SubscribeValue[int](b, "Counter", func(v int) {
		fmt.Printf("  value-only: now %d\n", v)
	})
	board.SubscribeKeyValue[int](b, "Counter", func(key string, v int) {
		fmt.Printf("  key+value: %s = %d\n", key, v)
	})

	fmt.Println("write Counter=1 (callbacks raised in order):")
	board.Write(b, "Counter", 1)
	fmt.Println("silent write Counter=2 (no callbacks):")
	board.WriteSilent(b, "Counter", 2)
	fmt.Printf("Counter is %d\n", board.Read[int](b, "Counter"))

	fmt.Println()
	fmt.Println("-- wipes --")
	board.Wipe[int](b, "UserInteger")
	_, ok := board.Lookup[int](b, "UserInteger")
	fmt.Printf("UserInteger after typed wipe: present=%v\n", ok)

	b.WipeKey("UserValue")
	_, strOk := board.Lookup[string](b, "UserValue")
	_, colorOk := board.Lookup[color](b, "UserValue")
	fmt.Printf("UserValue after WipeKey: string=%v color=%v\n", strOk, colorOk)

	b.WipeAll(false)
	fmt.Println("WipeAll(false): values cleared, subscriptions stay armed:")
	board.Write(b, "Counter", 3)

	fmt.Println()
	fmt.Println("-- board info and metrics --")
	info := b.Info()
	fmt.Printf("types=%d entries=%d callbacks=%d\n", info.Types, info.Entries, info.Callbacks)
	b.WritePrometheus(os.Stdout)
}
