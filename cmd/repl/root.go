// Package repl provides a line-oriented interactive harness that exercises
// one in-process board through its public operations.
package repl

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sharedstate/blackboard/lib/board"
	"github.com/spf13/cobra"
)

var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively exercise a board from the terminal",
	Long: `Start an interactive prompt against a fresh in-process board.

Values are typed; every data command names one of the supported value
types (int, float, string, bool). Type "help" at the prompt for the
command list.`,
	RunE: run,
}

const replHelp = `commands:
  set <type> <key> <value>     write (raises callbacks)
  setq <type> <key> <value>    write silently
  get <type> <key>             read (materializes a zero value on miss)
  lookup <type> <key>          read without materializing
  del <type> <key>             wipe the entry for one type
  delkey <key>                 wipe the entry for every type
  wipe [callbacks]             clear all entries, optionally all callbacks
  sub <type> <key>             print a line whenever the key changes
  unsub <type> <key>           drop all callback shapes for (type, key)
  unsuball <key>               drop callbacks for key across all types
  info                         show board shape
  metrics                      dump operation counters
  quit                         exit

types: int, float, string, bool`

func run(_ *cobra.Command, _ []string) error {
	b := board.New(&board.Options{Metrics: true})
	defer b.Close()

	fmt.Println("blackboard repl - type 'help' for commands")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch cmd := fields[0]; cmd {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Println(replHelp)
		case "set", "setq":
			if len(fields) != 4 {
				fmt.Printf("usage: %s <type> <key> <value>\n", cmd)
				continue
			}
			if err := write(b, fields[1], fields[2], fields[3], cmd == "setq"); err != nil {
				fmt.Println(err)
			}
		case "get":
			if len(fields) != 3 {
				fmt.Println("usage: get <type> <key>")
				continue
			}
			if err := read(b, fields[1], fields[2]); err != nil {
				fmt.Println(err)
			}
		case "lookup":
			if len(fields) != 3 {
				fmt.Println("usage: lookup <type> <key>")
				continue
			}
			if err := lookup(b, fields[1], fields[2]); err != nil {
				fmt.Println(err)
			}
		case "del":
			if len(fields) != 3 {
				fmt.Println("usage: del <type> <key>")
				continue
			}
			if err := forType(fields[1], fields[2], b, board.Wipe[int], board.Wipe[float64], board.Wipe[string], board.Wipe[bool]); err != nil {
				fmt.Println(err)
			}
		case "delkey":
			if len(fields) != 2 {
				fmt.Println("usage: delkey <key>")
				continue
			}
			b.WipeKey(fields[1])
		case "wipe":
			b.WipeAll(len(fields) > 1 && fields[1] == "callbacks")
		case "sub":
			if len(fields) != 3 {
				fmt.Println("usage: sub <type> <key>")
				continue
			}
			if err := subscribe(b, fields[1], fields[2]); err != nil {
				fmt.Println(err)
			}
		case "unsub":
			if len(fields) != 3 {
				fmt.Println("usage: unsub <type> <key>")
				continue
			}
			if err := forType(fields[1], fields[2], b, board.Unsubscribe[int], board.Unsubscribe[float64], board.Unsubscribe[string], board.Unsubscribe[bool]); err != nil {
				fmt.Println(err)
			}
		case "unsuball":
			if len(fields) != 2 {
				fmt.Println("usage: unsuball <key>")
				continue
			}
			b.UnsubscribeAll(fields[1])
		case "info":
			printInfo(b)
		case "metrics":
			b.WritePrometheus(os.Stdout)
		default:
			fmt.Printf("unknown command %q - type 'help'\n", cmd)
		}
	}
}

// forType dispatches a key-only operation to the instantiation matching the
// named value type.
func forType(typeName, key string, b *board.Board, intFn, floatFn func(*board.Board, string), strFn, boolFn func(*board.Board, string)) error {
	switch typeName {
	case "int":
		intFn(b, key)
	case "float":
		floatFn(b, key)
	case "string":
		strFn(b, key)
	case "bool":
		boolFn(b, key)
	default:
		return fmt.Errorf("unknown type %q (int, float, string, bool)", typeName)
	}
	return nil
}

func write(b *board.Board, typeName, key, raw string, silent bool) error {
	store := func(put func(), putSilent func()) {
		if silent {
			putSilent()
		} else {
			put()
		}
	}
	switch typeName {
	case "int":
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("not an int: %q", raw)
		}
		store(func() { board.Write(b, key, v) }, func() { board.WriteSilent(b, key, v) })
	case "float":
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("not a float: %q", raw)
		}
		store(func() { board.Write(b, key, v) }, func() { board.WriteSilent(b, key, v) })
	case "string":
		store(func() { board.Write(b, key, raw) }, func() { board.WriteSilent(b, key, raw) })
	case "bool":
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("not a bool: %q", raw)
		}
		store(func() { board.Write(b, key, v) }, func() { board.WriteSilent(b, key, v) })
	default:
		return fmt.Errorf("unknown type %q (int, float, string, bool)", typeName)
	}
	return nil
}

func read(b *board.Board, typeName, key string) error {
	switch typeName {
	case "int":
		fmt.Println(board.Read[int](b, key))
	case "float":
		fmt.Println(board.Read[float64](b, key))
	case "string":
		fmt.Printf("%q\n", board.Read[string](b, key))
	case "bool":
		fmt.Println(board.Read[bool](b, key))
	default:
		return fmt.Errorf("unknown type %q (int, float, string, bool)", typeName)
	}
	return nil
}

func lookup(b *board.Board, typeName, key string) error {
	print := func(v any, ok bool) {
		if !ok {
			fmt.Println("(absent)")
			return
		}
		fmt.Printf("%v\n", v)
	}
	switch typeName {
	case "int":
		v, ok := board.Lookup[int](b, key)
		print(v, ok)
	case "float":
		v, ok := board.Lookup[float64](b, key)
		print(v, ok)
	case "string":
		v, ok := board.Lookup[string](b, key)
		print(v, ok)
	case "bool":
		v, ok := board.Lookup[bool](b, key)
		print(v, ok)
	default:
		return fmt.Errorf("unknown type %q (int, float, string, bool)", typeName)
	}
	return nil
}

func subscribe(b *board.Board, typeName, key string) error {
	switch typeName {
	case "int":
		board.SubscribeKeyValue[int](b, key, func(k string, v int) {
			fmt.Printf("[change] int %s = %d\n", k, v)
		})
	case "float":
		board.SubscribeKeyValue[float64](b, key, func(k string, v float64) {
			fmt.Printf("[change] float %s = %v\n", k, v)
		})
	case "string":
		board.SubscribeKeyValue[string](b, key, func(k string, v string) {
			fmt.Printf("[change] string %s = %q\n", k, v)
		})
	case "bool":
		board.SubscribeKeyValue[bool](b, key, func(k string, v bool) {
			fmt.Printf("[change] bool %s = %v\n", k, v)
		})
	default:
		return fmt.Errorf("unknown type %q (int, float, string, bool)", typeName)
	}
	return nil
}

func printInfo(b *board.Board) {
	info := b.Info()
	fmt.Printf("types=%d entries=%d callbacks=%d\n", info.Types, info.Entries, info.Callbacks)
	for _, tbl := range info.Tables {
		fmt.Printf("  %-12s entries=%-4d callbacks=%d\n", tbl.Type, tbl.Entries, tbl.Callbacks)
	}
}
