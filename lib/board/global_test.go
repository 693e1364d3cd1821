package board_test

import (
	"testing"

	"github.com/sharedstate/blackboard/lib/board"
)

func TestGlobalLifecycle(t *testing.T) {
	// make sure earlier tests leave no default board behind
	board.Destroy()

	if board.IsReady() {
		t.Fatalf("IsReady true before Create")
	}

	if !board.Create() {
		t.Fatalf("Create failed")
	}
	defer board.Destroy()

	if !board.IsReady() {
		t.Fatalf("IsReady false after Create")
	}

	board.Write(board.Default(), "Number", 42)
	if got := board.Read[int](board.Default(), "Number"); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}

	// Create replaces: the old default board is torn down, the new one is
	// empty.
	old := board.Default()
	if !board.Create() {
		t.Fatalf("second Create failed")
	}
	if old.Ready() {
		t.Errorf("previous default board not closed by Create")
	}
	if _, ok := board.Lookup[int](board.Default(), "Number"); ok {
		t.Errorf("replacement default board inherited state")
	}

	board.Destroy()
	if board.IsReady() {
		t.Errorf("IsReady true after Destroy")
	}
	board.Destroy() // no-op
}

func TestDefaultPanicsWhenAbsent(t *testing.T) {
	board.Destroy()

	defer func() {
		if recover() == nil {
			t.Errorf("Default did not panic without a created board")
		}
	}()
	board.Default()
}
