package board_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sharedstate/blackboard/lib/board"
)

func TestWritePrometheus(t *testing.T) {
	b := board.New(&board.Options{Metrics: true})
	defer b.Close()

	board.SubscribeKey[int](b, "k", func(string) {})
	board.Write(b, "k", 1)
	board.Read[int](b, "k")
	board.Read[float64](b, "miss")
	board.Lookup[int](b, "k")
	board.Lookup[uint64](b, "absent") // unused type, still a counted read
	b.WipeKey("k")

	var buf bytes.Buffer
	b.WritePrometheus(&buf)
	out := buf.String()

	for _, want := range []string{
		"blackboard_writes_total 1",
		"blackboard_reads_total 4",
		"blackboard_reads_materialized_total 1",
		"blackboard_wipes_total 1",
		"blackboard_callbacks_fired_total 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics output missing %q:\n%s", want, out)
		}
	}
}

func TestWritePrometheusDisabled(t *testing.T) {
	b := board.New(nil)
	defer b.Close()

	board.Write(b, "k", 1)

	var buf bytes.Buffer
	b.WritePrometheus(&buf)
	if buf.Len() != 0 {
		t.Errorf("metrics output on a board without metrics enabled: %q", buf.String())
	}
}
