package board_test

import (
	"testing"

	"github.com/sharedstate/blackboard/lib/board"
)

func TestInfo(t *testing.T) {
	b := board.New(nil)
	defer b.Close()

	board.Write(b, "a", 1)
	board.Write(b, "b", 2)
	board.Write(b, "a", 1.5)
	board.SubscribeKey[int](b, "a", func(string) {})
	board.SubscribeValue[int](b, "a", func(int) {})

	info := b.Info()

	if info.Types != 2 {
		t.Errorf("expected 2 types, got %d", info.Types)
	}
	if info.Entries != 3 {
		t.Errorf("expected 3 entries, got %d", info.Entries)
	}
	if info.Callbacks != 2 {
		t.Errorf("expected 2 callbacks, got %d", info.Callbacks)
	}

	// tables are reported in deterministic (sorted) order
	if len(info.Tables) != 2 || info.Tables[0].Type != "float64" || info.Tables[1].Type != "int" {
		t.Errorf("unexpected table listing: %+v", info.Tables)
	}
	if info.Tables[1].Entries != 2 || info.Tables[1].Callbacks != 2 {
		t.Errorf("unexpected int table stats: %+v", info.Tables[1])
	}

	if info.KeySpread.Max != 2 || info.KeySpread.Min != 1 {
		t.Errorf("unexpected key spread: %+v", info.KeySpread)
	}
}
